// Package render implements the best-fit layout algorithm spec section
// 4.5 specifies: a stateless-apart-from-buffer renderer that walks doc-IR
// with an explicit command stack (rather than recursion) so its running
// time is linear in doc-IR size, per spec section 9's performance note.
//
// Like internal/doc, this has no corpus precedent (no Wadler-style
// renderer anywhere in the pack — see DESIGN.md); it is written in the
// teacher's buffer-and-helper-method printer idiom
// (internal/printer/printer.go's p.print/p.printf/p.println over a
// []byte buffer) even though the algorithm itself is original against
// spec section 4.5's description.
package render

import (
	"strings"

	"github.com/markup-fmt/markup-fmt/internal/doc"
)

// Options parameterizes the renderer: print width, indent width, tabs
// vs spaces, and line terminator (spec section 6).
type Options struct {
	PrintWidth  int
	IndentWidth int
	UseTabs     bool
	LineBreak   string // "\n" or "\r\n"
}

type mode int

const (
	modeBreak mode = iota
	modeFlat
)

// indentation is a precomputed literal string plus its display length,
// so Align's extra columns and Indent's indent-width steps compose
// without re-deriving one from the other at render time.
type indentation struct {
	value  string
	length int
}

func (o Options) rootIndent() indentation {
	return indentation{}
}

func (o Options) indentStep(ind indentation) indentation {
	if o.UseTabs {
		return indentation{value: ind.value + "\t", length: ind.length + o.IndentWidth}
	}
	pad := strings.Repeat(" ", o.IndentWidth)
	return indentation{value: ind.value + pad, length: ind.length + o.IndentWidth}
}

func (o Options) dedentStep(ind indentation) indentation {
	step := o.IndentWidth
	if o.UseTabs {
		if len(ind.value) == 0 {
			return ind
		}
		return indentation{value: ind.value[:len(ind.value)-1], length: ind.length - step}
	}
	if ind.length < step {
		return indentation{}
	}
	return indentation{value: ind.value[:len(ind.value)-step], length: ind.length - step}
}

func (o Options) alignStep(ind indentation, n int) indentation {
	return indentation{value: ind.value + strings.Repeat(" ", n), length: ind.length + n}
}

type command struct {
	ind  indentation
	mode mode
	d    doc.Doc
}

// Render lays d out against opts.PrintWidth and returns the final string.
// The renderer is total and deterministic (spec section 4.3's renderer
// contract).
func Render(d doc.Doc, opts Options) string {
	if opts.PrintWidth <= 0 {
		opts.PrintWidth = 80
	}
	if opts.IndentWidth <= 0 {
		opts.IndentWidth = 2
	}
	if opts.LineBreak == "" {
		opts.LineBreak = "\n"
	}

	var out strings.Builder
	pos := 0
	cmds := []command{{ind: opts.rootIndent(), mode: modeBreak, d: d}}

	pop := func() command {
		c := cmds[len(cmds)-1]
		cmds = cmds[:len(cmds)-1]
		return c
	}
	push := func(c command) { cmds = append(cmds, c) }

	for len(cmds) > 0 {
		c := pop()
		switch v := c.d.(type) {
		case doc.Text:
			out.WriteString(v.S)
			pos += v.Width

		case doc.Concat:
			for i := len(v) - 1; i >= 0; i-- {
				push(command{ind: c.ind, mode: c.mode, d: v[i]})
			}

		case doc.Indent:
			push(command{ind: opts.indentStep(c.ind), mode: c.mode, d: v.D})

		case doc.Dedent:
			push(command{ind: opts.dedentStep(c.ind), mode: c.mode, d: v.D})

		case doc.Align:
			push(command{ind: opts.alignStep(c.ind, v.N), mode: c.mode, d: v.D})

		case *doc.Group:
			if v.ShouldBreak {
				push(command{ind: c.ind, mode: modeBreak, d: v.D})
				continue
			}
			if fits(pos, v.FlatWidthCached(), opts.PrintWidth) {
				push(command{ind: c.ind, mode: modeFlat, d: v.D})
			} else {
				push(command{ind: c.ind, mode: modeBreak, d: v.D})
			}

		case doc.IfBreak:
			if c.mode == modeBreak {
				push(command{ind: c.ind, mode: c.mode, d: v.Break})
			} else {
				push(command{ind: c.ind, mode: c.mode, d: v.Flat})
			}

		case doc.Fill:
			pos = renderFill(&out, pos, c, v, opts, push)

		case doc.Line:
			pos = renderLine(&out, pos, c, v, opts)

		default:
			// Nil/unknown docs render as nothing.
		}
	}

	return out.String()
}

func renderLine(out *strings.Builder, pos int, c command, v doc.Line, opts Options) int {
	if c.mode == modeFlat && !v.IsHard() {
		if v.Kind == doc.SoftlineDoc.Kind {
			return pos
		}
		out.WriteByte(' ')
		return pos + 1
	}
	if v.IsLiteral() {
		out.WriteString(opts.LineBreak)
		return 0
	}
	trimTrailingSpace(out)
	out.WriteString(opts.LineBreak)
	out.WriteString(c.ind.value)
	return c.ind.length
}

func renderFill(out *strings.Builder, pos int, c command, v doc.Fill, opts Options, push func(command)) int {
	items := v.Items
	if len(items) == 0 {
		return pos
	}
	content := items[0]
	contentWidth := doc.FlatWidth(content)
	contentFits := fits(pos, contentWidth, opts.PrintWidth)

	if len(items) == 1 {
		m := modeBreak
		if contentFits {
			m = modeFlat
		}
		push(command{ind: c.ind, mode: m, d: content})
		return pos
	}

	sep := items[1]
	if len(items) == 2 {
		m := modeBreak
		if contentFits {
			m = modeFlat
		}
		push(command{ind: c.ind, mode: m, d: sep})
		push(command{ind: c.ind, mode: m, d: content})
		return pos
	}

	remaining := doc.Fill{Items: items[2:]}
	secondContent := items[2]
	pairWidth := contentWidth + doc.FlatWidth(sep) + doc.FlatWidth(secondContent)
	pairFits := fits(pos, pairWidth, opts.PrintWidth)

	push(command{ind: c.ind, mode: c.mode, d: remaining})
	switch {
	case pairFits:
		push(command{ind: c.ind, mode: modeFlat, d: sep})
		push(command{ind: c.ind, mode: modeFlat, d: content})
	case contentFits:
		push(command{ind: c.ind, mode: modeBreak, d: sep})
		push(command{ind: c.ind, mode: modeFlat, d: content})
	default:
		push(command{ind: c.ind, mode: modeBreak, d: sep})
		push(command{ind: c.ind, mode: modeBreak, d: content})
	}
	return pos
}

func trimTrailingSpace(out *strings.Builder) {
	s := out.String()
	trimmed := strings.TrimRight(s, " \t")
	if len(trimmed) == len(s) {
		return
	}
	out.Reset()
	out.WriteString(trimmed)
}

// fits reports whether a doc of flatWidth columns starting at pos fits
// within printWidth (spec section 4.5's "fits" judgment), treating an
// Infinite flat width (a hardline/literalline inside the subtree) as
// never fitting.
func fits(pos, flatWidth, printWidth int) bool {
	if flatWidth >= doc.Infinite {
		return false
	}
	return pos+flatWidth <= printWidth
}
