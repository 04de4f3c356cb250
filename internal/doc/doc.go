// Package doc implements the Wadler/Prettier-style pretty-printing
// calculus spec section 4.3 specifies: a tree of layout primitives that
// the renderer (internal/render) lays out against a target column width
// by a best-fit algorithm.
//
// No example repo in the retrieval pack implements a doc-IR combinator
// algebra of this shape (checked: no group/softline/fill type anywhere
// under _examples or other_examples — see DESIGN.md), so this package is
// original work against spec section 4.3's own description rather than a
// port of a corpus file. It borrows the teacher's buffer-and-helper-method
// style for the eventual renderer (internal/render), not for this package,
// which is a plain value algebra.
package doc

// Doc is a node in the pretty-printing IR. The concrete types below are
// the only implementations; external packages build docs by calling the
// constructor functions, never by implementing Doc themselves.
type Doc interface {
	doc()
}

// Text is a literal string with a known display width (spec section 4.3).
type Text struct {
	S     string
	Width int
}

func (Text) doc() {}

// TextStr builds a Text doc, measuring width in the ASCII-common fast
// path and falling back to rune-aware measurement for non-ASCII content.
func TextStr(s string) Text {
	return Text{S: s, Width: displayWidth(s)}
}

// Concat is an ordered sequence of docs laid out one after another.
type Concat []Doc

func (Concat) doc() {}

// Line is a newline if the enclosing group breaks, a single space
// otherwise.
type lineKind int

const (
	kindLine lineKind = iota
	kindSoftline
	kindHardline
	kindLiteralline
)

type Line struct {
	Kind lineKind
}

func (Line) doc() {}

var (
	LineDoc        = Line{Kind: kindLine}
	SoftlineDoc    = Line{Kind: kindSoftline}
	HardlineDoc    = Line{Kind: kindHardline}
	LinelitDoc     = Line{Kind: kindLiteralline}
)

func (l Line) IsHard() bool {
	return l.Kind == kindHardline || l.Kind == kindLiteralline
}

func (l Line) IsLiteral() bool {
	return l.Kind == kindLiteralline
}

// Indent increases the current indent level by one step for D.
type Indent struct {
	D Doc
}

func (Indent) doc() {}

// Dedent decreases the current indent level by one step for D.
type Dedent struct {
	D Doc
}

func (Dedent) doc() {}

// Align adds N additional columns of indent for D (spec section 4.3), on
// top of whatever Indent/Dedent nesting is already in effect.
type Align struct {
	N int
	D Doc
}

func (Align) doc() {}

// Group is an atomic layout unit: either the whole group fits flat on the
// remaining line, or every softline/line it directly or transitively
// encloses (not crossing a nested Group) expands (spec section 4.3).
//
// FlatWidth is cached at build time (NewGroup computes it once) so the
// renderer never recomputes flatness from scratch, per spec section 9's
// performance note ("cache flat width per group during building").
type Group struct {
	D           Doc
	ShouldBreak bool // force-broken group, e.g. a source that already spanned lines
	flatWidth   int
	flatValid   bool
}

func (*Group) doc() {}

// NewGroup builds a Group and caches its flat width immediately.
func NewGroup(d Doc) *Group {
	g := &Group{D: d}
	g.flatWidth = FlatWidth(d)
	g.flatValid = true
	return g
}

// FlatWidthCached returns the cached flat width, computing it if this
// Group was constructed by hand rather than via NewGroup.
func (g *Group) FlatWidthCached() int {
	if !g.flatValid {
		g.flatWidth = FlatWidth(g.D)
		g.flatValid = true
	}
	return g.flatWidth
}

// Fill packs items greedily: each Line between items may break
// independently, minimizing height subject to width (spec section 4.3).
// Items and separators alternate: Items[0], Items[1] (typically a Line),
// Items[2], ...
type Fill struct {
	Items []Doc
}

func (Fill) doc() {}

// IfBreak renders Break when the enclosing group breaks, Flat otherwise.
type IfBreak struct {
	Break Doc
	Flat  Doc
}

func (IfBreak) doc() {}

// --- constructor helpers, used pervasively by internal/printer ---

func TextOf(s string) Doc            { return TextStr(s) }
func ConcatOf(ds ...Doc) Doc         { return Concat(ds) }
func IndentOf(d Doc) Doc             { return Indent{D: d} }
func DedentOf(d Doc) Doc             { return Dedent{D: d} }
func AlignOf(n int, d Doc) Doc       { return Align{N: n, D: d} }
func GroupOf(d Doc) Doc              { return NewGroup(d) }
func BrokenGroupOf(d Doc) Doc {
	g := NewGroup(d)
	g.ShouldBreak = true
	return g
}
func FillOf(items ...Doc) Doc { return Fill{Items: items} }
func IfBreakOf(brk, flat Doc) Doc { return IfBreak{Break: brk, Flat: flat} }

// Join concatenates parts with sep between each, the way the teacher
// joins attribute lists and children by hand throughout printer.go's
// JS-codegen helpers, but as a doc combinator instead of string
// concatenation.
func Join(sep Doc, parts []Doc) Doc {
	if len(parts) == 0 {
		return Concat(nil)
	}
	out := make(Concat, 0, len(parts)*2-1)
	for i, p := range parts {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, p)
	}
	return out
}

// Nil is the empty doc.
var Nil Doc = Concat(nil)

func displayWidth(s string) int {
	w := 0
	for _, r := range s {
		w += runeWidth(r)
	}
	return w
}

// runeWidth approximates Unicode display width: most East-Asian wide
// scripts are 2 columns, combining marks are 0, everything else is 1.
// This is a deliberately small approximation (spec section 4.3 only
// requires "Unicode width for non-ASCII", not full grapheme clustering).
func runeWidth(r rune) int {
	switch {
	case r == 0:
		return 0
	case r < 0x20:
		return 0
	case r < 0x7f:
		return 1
	case isCombining(r):
		return 0
	case isWide(r):
		return 2
	default:
		return 1
	}
}

func isCombining(r rune) bool {
	return (r >= 0x0300 && r <= 0x036F) || (r >= 0x1AB0 && r <= 0x1AFF)
}

func isWide(r rune) bool {
	return (r >= 0x1100 && r <= 0x115F) ||
		(r >= 0x2E80 && r <= 0xA4CF && r != 0x303F) ||
		(r >= 0xAC00 && r <= 0xD7A3) ||
		(r >= 0xF900 && r <= 0xFAFF) ||
		(r >= 0xFF00 && r <= 0xFF60) ||
		(r >= 0xFFE0 && r <= 0xFFE6) ||
		(r >= 0x20000 && r <= 0x3FFFD)
}

// FlatWidth computes the column width d would occupy if every Line/Softline
// in it rendered flat (spec section 4.3's "Flat width" glossary entry).
// Hardline/Literalline make a subtree's flat width effectively infinite,
// since a group containing one can never render flat.
const Infinite = 1 << 30

func FlatWidth(d Doc) int {
	switch v := d.(type) {
	case Text:
		return v.Width
	case Concat:
		total := 0
		for _, part := range v {
			w := FlatWidth(part)
			if w >= Infinite {
				return Infinite
			}
			total += w
		}
		return total
	case Line:
		if v.IsHard() {
			return Infinite
		}
		if v.Kind == kindSoftline {
			return 0
		}
		return 1
	case Indent:
		return FlatWidth(v.D)
	case Dedent:
		return FlatWidth(v.D)
	case Align:
		return FlatWidth(v.D)
	case *Group:
		return g_flatWidth(v)
	case Fill:
		total := 0
		for _, item := range v.Items {
			w := FlatWidth(item)
			if w >= Infinite {
				return Infinite
			}
			total += w
		}
		return total
	case IfBreak:
		return FlatWidth(v.Flat)
	}
	return 0
}

func g_flatWidth(g *Group) int {
	if g.ShouldBreak {
		return Infinite
	}
	return g.FlatWidthCached()
}
