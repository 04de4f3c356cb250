// Package markupfmt is the primary entry point spec section 6 describes:
// a function taking source text, a language tag, an options value, and
// an external-formatter callback, returning either formatted text or a
// FormatError.
//
// Grounded on the teacher's root-level print-to-source.go/transform.go
// Transform() entry point shape (parse, then print, returning ([]byte,
// error)), generalized to the dialect-parameterized parse/print/render
// pipeline this module implements instead of Astro-to-JS compilation.
package markupfmt

import (
	"fmt"

	"github.com/markup-fmt/markup-fmt/internal/ast"
	"github.com/markup-fmt/markup-fmt/internal/dialect"
	"github.com/markup-fmt/markup-fmt/internal/doc"
	"github.com/markup-fmt/markup-fmt/internal/handler"
	"github.com/markup-fmt/markup-fmt/internal/loc"
	"github.com/markup-fmt/markup-fmt/internal/options"
	"github.com/markup-fmt/markup-fmt/internal/parser"
	"github.com/markup-fmt/markup-fmt/internal/printer"
	"github.com/markup-fmt/markup-fmt/internal/render"
)

// LanguageTag selects which dialect's parser/printer rules apply; it is
// the public alias of internal/dialect.Tag so callers outside this
// module's own packages never need to import internal/dialect directly.
type LanguageTag = dialect.Tag

const (
	HTML       = dialect.Html
	XML        = dialect.Xml
	Vue        = dialect.Vue
	Svelte     = dialect.Svelte
	Astro      = dialect.Astro
	Angular    = dialect.Angular
	Jinja      = dialect.Jinja
	Twig       = dialect.Twig
	Nunjucks   = dialect.Nunjucks
	Vento      = dialect.Vento
	Mustache   = dialect.Mustache
	Handlebars = dialect.Handlebars
)

// Options is the public alias of internal/options.Options.
type Options = options.Options

// DefaultOptions returns the option set spec section 6's default column
// describes.
func DefaultOptions() Options {
	return options.Default()
}

// EmbedDescriptor and EmbedFormatter are the public aliases of the
// external-formatter callback contract (spec section 6).
type EmbedDescriptor = printer.EmbedDescriptor
type EmbedFormatter = printer.EmbedFormatter

// FormatErrorKind distinguishes the two FormatError variants spec
// section 6/7 name.
type FormatErrorKind int

const (
	SyntaxErrorKind FormatErrorKind = iota
	ExternalErrorKind
)

// FormatError is the union type Format returns on failure: either a
// single SyntaxError (parsing could not continue) or an External
// aggregate of one or more embed-callback failures (spec section 7).
type FormatError struct {
	Kind     FormatErrorKind
	Syntax   *loc.SyntaxError
	External []error
}

func (e *FormatError) Error() string {
	switch e.Kind {
	case SyntaxErrorKind:
		return e.Syntax.Error()
	default:
		return fmt.Sprintf("external formatter failed for %d region(s)", len(e.External))
	}
}

// Format parses src under tag, builds doc-IR via internal/printer, and
// renders it via internal/render, invoking embed for every embedded code
// region it encounters (spec section 6's primary entry point).
//
// On a parse failure, returns a FormatError{Kind: SyntaxErrorKind}. If
// every embed callback invocation succeeded, returns the formatted
// string. If one or more failed, per spec section 7 the output is
// discarded and a FormatError{Kind: ExternalErrorKind} is returned
// instead, so callers never see a partial success silently.
func Format(src string, tag LanguageTag, opts Options, embed EmbedFormatter) (string, error) {
	root, err := parser.Parse(src, tag, parser.ParseOptions{HTMLParseJSExpressions: opts.HTMLParseJSExpressions})
	if err != nil {
		se, ok := err.(*loc.SyntaxError)
		if !ok {
			se = &loc.SyntaxError{Msg: err.Error()}
		}
		return "", &FormatError{Kind: SyntaxErrorKind, Syntax: se}
	}

	if ignored, ok := fileIgnored(root, src, opts); ok {
		return ignored, nil
	}

	h := handler.NewHandler(src, "")
	p := printer.New(src, tag, opts, h, embed)
	d := doc.ConcatOf(p.PrintDocument(root), doc.HardlineDoc)

	if failures := p.Failures(); len(failures) > 0 {
		return "", &FormatError{Kind: ExternalErrorKind, External: failures}
	}

	out := render.Render(d, render.Options{
		PrintWidth:  opts.PrintWidth,
		IndentWidth: opts.IndentWidth,
		UseTabs:     opts.UseTabs,
		LineBreak:   opts.LineBreak.String(),
	})
	return out, nil
}

// fileIgnored reports whether root's first non-whitespace child is a
// comment matching ignoreFileCommentDirective (spec section 4.4's
// whole-file skip), in which case src is returned verbatim.
func fileIgnored(root *ast.Node, src string, opts Options) (string, bool) {
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == ast.TextNode && c.IsAllWhitespace {
			continue
		}
		if c.Type == ast.CommentNode && trimSpace(c.Data) == opts.IgnoreFileCommentDirective {
			return src, true
		}
		break
	}
	return "", false
}

func trimSpace(s string) string {
	i, j := 0, len(s)
	for i < j && isSpace(s[i]) {
		i++
	}
	for j > i && isSpace(s[j-1]) {
		j--
	}
	return s[i:j]
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}
