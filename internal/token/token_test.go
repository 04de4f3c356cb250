package token

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestScannerAdvanceAndPeek(t *testing.T) {
	s := NewScanner("<div>")
	assert.Equal(t, s.Peek(0), byte('<'))
	assert.Equal(t, s.Peek(1), byte('d'))
	assert.Equal(t, s.Advance(4), "<div")
	assert.Equal(t, s.Pos(), 4)
	assert.Equal(t, s.AdvanceByte(), byte('>'))
	assert.Assert(t, s.AtEnd())
}

func TestScannerMatchLiteral(t *testing.T) {
	s := NewScanner("DOCTYPE html")
	assert.Assert(t, s.MatchLiteralFold("doctype"))
	s.SkipWhitespace()
	assert.Equal(t, s.Peek(0), byte('h'))
	assert.Assert(t, !s.MatchLiteral("HTML"))
	assert.Assert(t, s.MatchLiteralFold("HTML"))
	assert.Assert(t, s.AtEnd())
}

func TestScannerReadUntil(t *testing.T) {
	s := NewScanner("hello</div>world")
	text, found := s.ReadUntil("</div>")
	assert.Equal(t, text, "hello")
	assert.Assert(t, found)
	assert.Assert(t, s.MatchLiteral("</div>"))
	rest, found := s.ReadUntil("!!!")
	assert.Equal(t, rest, "world")
	assert.Assert(t, !found)
	assert.Assert(t, s.AtEnd())
}

func TestScannerReadUntilFold(t *testing.T) {
	s := NewScanner("console.log('hi')</SCRIPT> tail")
	text, found := s.ReadUntilFold("</script>")
	assert.Equal(t, text, "console.log('hi')")
	assert.Assert(t, found)
}

func TestScannerAdvanceKeepsCursorInLockstep(t *testing.T) {
	s := NewScanner("abcdef")
	s.Advance(2)
	s.AdvanceByte()
	s.SkipWhitespace()
	// Pos must reflect every advance, proving the shared cursor and the
	// scanner's own index never drift apart.
	assert.Equal(t, s.Pos(), 3)
	assert.Equal(t, s.Peek(0), byte('d'))
}

func TestUnescapeEntities(t *testing.T) {
	assert.Equal(t, UnescapeEntities("a&amp;b&lt;c"), "a&b<c")
}

func TestNameClassifiers(t *testing.T) {
	assert.Assert(t, IsNameStart('a'))
	assert.Assert(t, IsNameStart(':'))
	assert.Assert(t, !IsNameStart('-'))
	assert.Assert(t, IsNameChar('-'))
	assert.Assert(t, IsNameChar('9'))
	assert.Assert(t, !IsNameChar(' '))
}
