// Package loc provides the span and diagnostic-location primitives shared
// by the tokenizer, parser, and printer. Nodes and tokens reference spans
// rather than duplicating source text.
package loc

type Loc struct {
	// This is the 0-based index of this location from the start of the file, in bytes
	Start int
}

type Range struct {
	Loc Loc
	Len int
}

func (r Range) End() int {
	return r.Loc.Start + r.Len
}

// Span is a range of bytes in a Tokenizer's buffer. The start is inclusive,
// the end is exclusive.
type Span struct {
	Start, End int
}

func (s Span) Len() int {
	return s.End - s.Start
}

// Slice returns the text the span covers in src.
func (s Span) Slice(src string) string {
	return src[s.Start:s.End]
}
