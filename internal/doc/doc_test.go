package doc

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestFlatWidthText(t *testing.T) {
	assert.Equal(t, FlatWidth(TextStr("hello")), 5)
}

func TestFlatWidthConcat(t *testing.T) {
	d := ConcatOf(TextStr("a"), TextStr("bc"), SoftlineDoc)
	assert.Equal(t, FlatWidth(d), 3)
}

func TestFlatWidthHardlineIsInfinite(t *testing.T) {
	d := ConcatOf(TextStr("a"), HardlineDoc)
	assert.Equal(t, FlatWidth(d), Infinite)
}

func TestFlatWidthGroupCachesAtConstruction(t *testing.T) {
	g := NewGroup(TextStr("abcdef"))
	assert.Equal(t, g.FlatWidthCached(), 6)
	assert.Equal(t, FlatWidth(g), 6)
}

func TestBrokenGroupIsInfiniteWidth(t *testing.T) {
	g := BrokenGroupOf(TextStr("short"))
	assert.Equal(t, FlatWidth(g), Infinite)
}

func TestJoin(t *testing.T) {
	d := Join(TextStr(", "), []Doc{TextStr("a"), TextStr("b"), TextStr("c")})
	assert.Equal(t, FlatWidth(d), 1+2+1+2+1)
}

func TestJoinEmpty(t *testing.T) {
	d := Join(TextStr(", "), nil)
	assert.Equal(t, FlatWidth(d), 0)
}

func TestDisplayWidthWideRune(t *testing.T) {
	// A CJK ideograph occupies two display columns.
	assert.Equal(t, FlatWidth(TextStr("中")), 2)
}

func TestDisplayWidthCombiningMark(t *testing.T) {
	assert.Equal(t, FlatWidth(TextStr("é")), 1)
}
