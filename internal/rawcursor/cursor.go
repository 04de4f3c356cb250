// Package rawcursor provides the byte-oriented cursor the tokenizer scans
// source text with: peek/advance/mark primitives plus absolute-offset
// bookkeeping for loc.Span construction (spec section 4.1). Grounded on
// github.com/tdewolff/parse/v2/buffer, the lexing-buffer library the
// teacher itself reaches for when it needs a real cursor rather than
// hand-rolling one (internal/transform/scope-css.go imports
// github.com/tdewolff/parse/css for the same reason) — rather than
// reproducing the teacher's hand-rolled internal/token.go readByte/Buffered
// bookkeeping by hand.
package rawcursor

import (
	"strings"

	"github.com/tdewolff/parse/v2/buffer"
)

// Cursor wraps a buffer.Lexer with the single-pass, one-token-lookahead
// access pattern spec section 4.1 describes: peek ahead without
// committing, then Shift to consume what was matched.
type Cursor struct {
	lex *buffer.Lexer
	src string
}

func New(src string) *Cursor {
	return &Cursor{
		lex: buffer.NewLexer(strings.NewReader(src)),
		src: src,
	}
}

// Peek returns the byte at offset bytes ahead of the cursor, or 0 at EOF.
func (c *Cursor) Peek(offset int) byte {
	return c.lex.Peek(offset)
}

// Pos returns the number of bytes already consumed by Move/Shift calls
// since the last Shift, i.e. the length of the pending lexeme.
func (c *Cursor) Pos() int {
	return c.lex.Pos()
}

// Offset returns the absolute byte offset of the cursor in the original
// source, usable directly as a loc.Loc.Start.
func (c *Cursor) Offset() int {
	return c.lex.Offset()
}

// Move advances the pending lexeme by n bytes without consuming it.
func (c *Cursor) Move(n int) {
	c.lex.Move(n)
}

// Skip discards the pending lexeme without returning it (used after a
// peek-only decision, e.g. skipping insignificant whitespace).
func (c *Cursor) Skip() {
	c.lex.Skip()
}

// Shift consumes and returns the pending lexeme.
func (c *Cursor) Shift() []byte {
	return c.lex.Shift()
}

// AtEnd reports whether the cursor has reached the end of input.
func (c *Cursor) AtEnd() bool {
	return c.Peek(0) == 0 && c.lex.Err() != nil
}

// Err returns the underlying read error, io.EOF at normal end of input.
func (c *Cursor) Err() error {
	return c.lex.Err()
}
