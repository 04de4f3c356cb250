// Package token provides the character-level scanning primitives spec
// section 4.1 describes: case-insensitive matchers, whitespace skipping,
// read-until scanning, entity recognition and name-character classifiers.
// The per-dialect delimiter families ({{/}}, {%/%}, {#/#}, {{#/}}) are
// recognized by internal/parser (delimitersFor) on top of these
// matchers, not here. Grounded on internal/token.go's
// method shape (Next/TagName/TagAttr/Raw/Text), generalized from
// Astro-only delimiters to the full per-dialect set.
package token

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/markup-fmt/markup-fmt/internal/rawcursor"
)

// Scanner wraps a rawcursor.Cursor with the higher-level matchers the
// parser needs: case-insensitive literal matching, whitespace skipping,
// and entity decoding. It never backtracks except for the one-token
// lookahead spec section 4.1 allows (e.g. deciding whether `<` followed
// by whitespace is text, not a tag open, per HTML).
type Scanner struct {
	Src    string
	cursor *rawcursor.Cursor
	pos    int // current absolute byte offset (kept in lockstep with cursor)
}

func NewScanner(src string) *Scanner {
	return &Scanner{Src: src, cursor: rawcursor.New(src)}
}

// Pos returns the current absolute byte offset.
func (s *Scanner) Pos() int {
	return s.pos
}

func (s *Scanner) AtEnd() bool {
	return s.pos >= len(s.Src)
}

// Peek returns the byte at offset bytes ahead of the cursor, 0 at EOF.
func (s *Scanner) Peek(offset int) byte {
	i := s.pos + offset
	if i < 0 || i >= len(s.Src) {
		return 0
	}
	return s.Src[i]
}

// Advance consumes n bytes and returns them. The underlying cursor's
// pending lexeme is moved and immediately shifted, so its Offset()
// ledger stays in lockstep with Scanner's own index (spec section 4.1's
// "absolute-offset bookkeeping").
func (s *Scanner) Advance(n int) string {
	end := s.pos + n
	if end > len(s.Src) {
		end = len(s.Src)
	}
	out := s.Src[s.pos:end]
	n = end - s.pos
	if n > 0 {
		s.cursor.Move(n)
		s.cursor.Shift()
	}
	s.pos = end
	return out
}

// AdvanceByte consumes a single byte.
func (s *Scanner) AdvanceByte() byte {
	if s.AtEnd() {
		return 0
	}
	c := s.Src[s.pos]
	s.cursor.Move(1)
	s.cursor.Shift()
	s.pos++
	return c
}

// MatchLiteral reports whether lit occurs at the cursor, case-sensitively,
// and consumes it if so.
func (s *Scanner) MatchLiteral(lit string) bool {
	if strings.HasPrefix(s.Src[s.pos:], lit) {
		s.Advance(len(lit))
		return true
	}
	return false
}

// MatchLiteralFold is MatchLiteral's case-insensitive counterpart, used
// for tag names, doctype keywords, and raw-text end tags (spec section
// 4.2: "Tag names compared case-insensitively").
func (s *Scanner) MatchLiteralFold(lit string) bool {
	rest := s.Src[s.pos:]
	if len(rest) < len(lit) {
		return false
	}
	if strings.EqualFold(rest[:len(lit)], lit) {
		s.Advance(len(lit))
		return true
	}
	return false
}

// HasPrefixFold peeks whether lit occurs at the cursor, case-insensitively,
// without consuming.
func (s *Scanner) HasPrefixFold(lit string) bool {
	rest := s.Src[s.pos:]
	return len(rest) >= len(lit) && strings.EqualFold(rest[:len(lit)], lit)
}

// SkipWhitespace consumes ASCII whitespace and returns how many bytes
// were skipped.
func (s *Scanner) SkipWhitespace() int {
	start := s.pos
	n := 0
	for start+n < len(s.Src) && isSpace(s.Src[start+n]) {
		n++
	}
	if n > 0 {
		s.Advance(n)
	}
	return n
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

// ReadUntil consumes bytes up to (not including) the next occurrence of
// stop, or to EOF if stop never occurs. Returns the consumed text and
// whether stop was found.
func (s *Scanner) ReadUntil(stop string) (string, bool) {
	idx := strings.Index(s.Src[s.pos:], stop)
	if idx < 0 {
		text := s.Src[s.pos:]
		s.Advance(len(s.Src) - s.pos)
		return text, false
	}
	text := s.Src[s.pos : s.pos+idx]
	s.Advance(idx)
	return text, true
}

// ReadUntilFold is ReadUntil with case-insensitive matching of stop,
// used for raw-text elements' end tags (spec section 4.2).
func (s *Scanner) ReadUntilFold(stop string) (string, bool) {
	rest := s.Src[s.pos:]
	lowerRest := strings.ToLower(rest)
	idx := strings.Index(lowerRest, strings.ToLower(stop))
	if idx < 0 {
		s.Advance(len(rest))
		return rest, false
	}
	text := rest[:idx]
	s.Advance(idx)
	return text, true
}

// UnescapeEntities decodes character/entity references the way spec
// section 4.1 requires ("entity recognition"), delegated to
// golang.org/x/net/html, which both the teacher and this module use for
// tag-name interning elsewhere.
func UnescapeEntities(s string) string {
	return html.UnescapeString(s)
}

// IsNameStart/IsNameChar implement the ASCII subset of the HTML tag-name
// and attribute-name grammar (spec section 4.1: "attribute name/value
// boundaries").
func IsNameStart(c byte) bool {
	return c == '_' || c == ':' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func IsNameChar(c byte) bool {
	return IsNameStart(c) || c == '-' || c == '.' || (c >= '0' && c <= '9')
}
