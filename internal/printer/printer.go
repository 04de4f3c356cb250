// Package printer builds doc-IR from an ast.Node tree (spec section
// 4.4: "Traverses the AST once, carrying a context stack of ambient
// policies"). Grounded on the teacher's internal/printer/printer.go
// buffer-and-helper-method style (a `printer` struct holding
// sourcetext/opts/handler, with small p.print/p.printf/p.println
// helpers) even though the teacher emits JS text directly and this
// printer emits doc.Doc values for internal/render to lay out.
package printer

import (
	"strings"

	"github.com/dlclark/regexp2"
	"github.com/iancoleman/strcase"

	"github.com/markup-fmt/markup-fmt/internal/ast"
	"github.com/markup-fmt/markup-fmt/internal/dialect"
	"github.com/markup-fmt/markup-fmt/internal/doc"
	"github.com/markup-fmt/markup-fmt/internal/handler"
	"github.com/markup-fmt/markup-fmt/internal/helpers"
	"github.com/markup-fmt/markup-fmt/internal/options"
)

// EmbedDescriptor is passed to the external-formatter callback (spec
// section 6: "a descriptor (language hint, parent tag kind, current
// indentation as columns)").
type EmbedDescriptor struct {
	Lang       string
	ParentTag  string
	Indent     int
}

// EmbedFormatter is the external callback the core invokes for
// <script>/<style>/custom-block/front-matter bodies.
type EmbedFormatter func(code string, d EmbedDescriptor) (string, error)

// EmbedFailure records one callback failure for the External error
// aggregate (spec section 7).
type EmbedFailure struct {
	Lang string
	Err  error
}

func (f *EmbedFailure) Error() string {
	return f.Lang + ": " + f.Err.Error()
}

func (f *EmbedFailure) Unwrap() error {
	return f.Err
}

// printer walks one AST under one dialect and options, accumulating
// doc-IR. Grounded on the teacher's printer struct shape
// (sourcetext/opts/handler fields); ours adds dialect and the embed
// callback in place of the teacher's JS-codegen state.
type printer struct {
	src     string
	dialect dialect.Tag
	opts    options.Options
	h       *handler.Handler
	embed   EmbedFormatter
	fails   []*EmbedFailure

	// vForRe recognizes the `item(, index) (in|of) list` pattern spec
	// section 4.4 names for vForDelimiterStyle rewriting. dlclark/regexp2
	// is used here (rather than stdlib regexp) because the teacher's own
	// ignore-directive and v-for pattern matching elsewhere in the pack
	// reaches for regexp2's backtracking engine for lookaround; see
	// DESIGN.md.
	vForRe *regexp2.Regexp
}

var vForPattern = regexp2.MustCompile(`^\s*([^,]+?)(?:\s*,\s*([^)\s]+))?\s+(in|of)\s+(.+)$`, regexp2.None)

// New constructs a printer.
func New(src string, d dialect.Tag, opts options.Options, h *handler.Handler, embed EmbedFormatter) *printer {
	return &printer{src: src, dialect: d, opts: opts, h: h, embed: embed, vForRe: vForPattern}
}

// Failures returns the accumulated embed-callback errors (spec section 7
// External).
func (p *printer) Failures() []error {
	out := make([]error, len(p.fails))
	for i, f := range p.fails {
		out[i] = f
	}
	return out
}

// PrintDocument builds the top-level doc-IR for root through
// printChildrenFill: words of text children are joined by lines,
// siblingSeparator (a hardline, or a space between chained Angular
// control-flow blocks) is injected before each non-text child, and
// whitespace-only text between siblings contributes nothing unless the
// whitespace mode is strict.
func (p *printer) PrintDocument(root *ast.Node) doc.Doc {
	return p.printChildrenFill(root, printCtx{
		whitespace:  p.opts.WhitespaceSensitivity,
		parentTag:   "",
		isComponent: false,
		indent:      0,
	})
}

// printCtx is the "context stack of ambient policies" spec section 4.4
// names: current whitespace-sensitivity mode, the parent tag (for
// inline-adjacency decisions), whether the parent is a component, and
// the current indent depth in steps (used only for the embed
// descriptor's Indent, since internal/render tracks real indent itself).
// Only element nesting adds a step; template blocks and Angular
// control-flow bodies pass their ctx through unchanged.
type printCtx struct {
	whitespace  options.WhitespaceSensitivity
	parentTag   string
	isComponent bool
	indent      int
}

func (p *printer) PrintNode(n *ast.Node, ctx printCtx) doc.Doc {
	switch n.Type {
	case ast.ElementNode:
		return p.printElement(n, ctx)
	case ast.TextNode:
		return p.printText(n, ctx)
	case ast.CommentNode:
		return p.printComment(n)
	case ast.DoctypeNode:
		return p.printDoctype(n)
	case ast.CDATANode:
		return doc.ConcatOf(doc.TextOf("<![CDATA["), p.literalBlock(n.Data), doc.TextOf("]]>"))
	case ast.TemplateNode:
		return p.printTemplateNode(n, ctx)
	case ast.AngularControlFlowNode:
		return p.printAngularControlFlow(n, ctx)
	default:
		return doc.Nil
	}
}

// isIgnoredSubtree reports whether n directly follows a comment sibling
// carrying the ignore-subtree directive (spec section 3 invariant 5 /
// section 4.4 "Comment handling").
func isIgnoredSubtree(n *ast.Node) bool {
	prev := n.PrevSibling
	for prev != nil && prev.Type == ast.TextNode && prev.IsAllWhitespace {
		prev = prev.PrevSibling
	}
	return prev != nil && prev.Type == ast.CommentNode && prev.Ignore == ast.IgnoreSubtree
}

func (p *printer) verbatim(n *ast.Node) doc.Doc {
	return p.literalBlock(p.src[n.Span.Start:n.Span.End])
}

// literalBlock splits s on newlines and renders each one with
// doc.LinelitDoc, the verbatim-passage primitive spec section 4.3 names.
func (p *printer) literalBlock(s string) doc.Doc {
	lines := strings.Split(s, "\n")
	parts := make([]doc.Doc, 0, len(lines)*2-1)
	for i, line := range lines {
		if i > 0 {
			parts = append(parts, doc.LinelitDoc)
		}
		parts = append(parts, doc.TextOf(line))
	}
	return doc.ConcatOf(parts...)
}

// --- elements ---

func (p *printer) printElement(n *ast.Node, ctx printCtx) doc.Doc {
	if isIgnoredSubtree(n) {
		return p.verbatim(n)
	}

	isComponent := p.dialect.IsComponentDialect() && isComponentName(n.Data)
	name := p.normalizeTagName(n.Data, isComponent)

	openHead := p.printOpenTagHead(n, name, isComponent)

	if n.ClosingForm == ast.VoidImplicit || (n.ClosingForm == ast.SelfClosed && n.Empty()) {
		return doc.GroupOf(doc.ConcatOf(openHead, p.selfClosingTail(n, isComponent)))
	}

	if n.RawTextElement {
		return doc.ConcatOf(openHead, doc.TextOf(">"), p.printEmbeddedBody(n, name, ctx.indent*p.opts.IndentWidth), doc.TextOf("</"+name+">"))
	}

	childCtx := printCtx{
		whitespace:  p.childWhitespace(n, isComponent),
		parentTag:   n.Data,
		isComponent: isComponent,
		indent:      ctx.indent + 1,
	}

	if n.Empty() {
		return doc.GroupOf(doc.ConcatOf(openHead, doc.TextOf(">"), p.emptyChildrenBreak(), doc.TextOf("</"+name+">")))
	}

	childrenDoc := p.printChildrenFill(n, childCtx)
	body := p.wrapChildren(childrenDoc, childCtx)

	return doc.GroupOf(doc.ConcatOf(openHead, doc.TextOf(">"), body, doc.TextOf("</"+name+">")))
}

func (p *printer) emptyChildrenBreak() doc.Doc {
	switch p.opts.ClosingTagLineBreakEmpty {
	case options.ClosingTagAlways:
		return doc.HardlineDoc
	case options.ClosingTagNever:
		return doc.Nil
	default:
		return doc.SoftlineDoc
	}
}

func (p *printer) wrapChildren(children doc.Doc, ctx printCtx) doc.Doc {
	return doc.ConcatOf(
		doc.IndentOf(doc.ConcatOf(doc.SoftlineDoc, children)),
		doc.SoftlineDoc,
	)
}

func isComponentName(name string) bool {
	if name == "" {
		return false
	}
	first := name[0]
	if first >= 'A' && first <= 'Z' {
		return true
	}
	return strings.Contains(name, "-") && !isKnownCustomElementException(name)
}

func isKnownCustomElementException(name string) bool {
	return false
}

// normalizeTagName applies vueComponentCase to multi-word component tag
// names (spec section 4.4: "normalized per vueComponentCase only when
// the tag has at least two word segments").
func (p *printer) normalizeTagName(name string, isComponent bool) string {
	if p.dialect != dialect.Vue || !isComponent {
		return name
	}
	if !hasMultipleWordSegments(name) {
		return name
	}
	switch p.opts.VueComponentCase {
	case options.ComponentCasePascal:
		return strcase.ToCamel(name)
	case options.ComponentCaseKebab:
		return strcase.ToKebab(name)
	default:
		return name
	}
}

func hasMultipleWordSegments(name string) bool {
	if strings.Contains(name, "-") {
		return true
	}
	upperCount := 0
	for _, r := range name {
		if r >= 'A' && r <= 'Z' {
			upperCount++
		}
	}
	return upperCount > 1
}

// printOpenTagHead implements spec section 4.4's attribute layout
// decision tree.
func (p *printer) printOpenTagHead(n *ast.Node, name string, isComponent bool) doc.Doc {
	head := doc.TextOf("<" + name)
	if len(n.Attr) == 0 {
		return head
	}

	attrDocs := make([]doc.Doc, 0, len(n.Attr))
	for _, a := range n.Attr {
		attrDocs = append(attrDocs, p.printAttribute(a, isComponent))
	}

	if len(n.Attr) == 1 && p.opts.SingleAttrSameLine {
		return doc.ConcatOf(head, doc.TextOf(" "), attrDocs[0])
	}

	var layout doc.Doc
	switch {
	case p.opts.MaxAttrsPerLine > 0:
		layout = p.attrRows(attrDocs, p.opts.MaxAttrsPerLine)
	case p.opts.PreferAttrsSingleLine:
		layout = doc.IndentOf(doc.ConcatOf(doc.LineDoc, doc.Join(doc.LineDoc, attrDocs)))
	default:
		if p.sourceAttrsOnSeparateLines(n) {
			layout = doc.BrokenGroupOf(doc.IndentOf(doc.ConcatOf(doc.HardlineDoc, doc.Join(doc.HardlineDoc, attrDocs))))
		} else {
			layout = doc.IndentOf(doc.ConcatOf(doc.LineDoc, doc.Join(doc.LineDoc, attrDocs)))
		}
	}

	closeBracketBreak := doc.SoftlineDoc
	if p.opts.ClosingBracketSameLine {
		closeBracketBreak = doc.Nil
	}
	return doc.ConcatOf(head, layout, closeBracketBreak)
}

// sourceAttrsOnSeparateLines reports whether any two attributes in n's
// source span were written on different lines (spec section 4.4 rule
// 4: "respect the source's line-break pattern").
func (p *printer) sourceAttrsOnSeparateLines(n *ast.Node) bool {
	if len(n.Attr) < 2 {
		return false
	}
	firstLine := -1
	for _, a := range n.Attr {
		line := strings.Count(p.src[:min(a.KeyLoc.Start, len(p.src))], "\n")
		if firstLine == -1 {
			firstLine = line
			continue
		}
		if line != firstLine {
			return true
		}
	}
	return false
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func (p *printer) attrRows(attrs []doc.Doc, perRow int) doc.Doc {
	var rows []doc.Doc
	for i := 0; i < len(attrs); i += perRow {
		end := i + perRow
		if end > len(attrs) {
			end = len(attrs)
		}
		rows = append(rows, doc.Join(doc.TextOf(" "), attrs[i:end]))
	}
	return doc.IndentOf(doc.ConcatOf(doc.HardlineDoc, doc.Join(doc.HardlineDoc, rows)))
}

// selfClosingTail decides between `/>`, ` />`, and the forced `></name>`
// open/close pair, per spec section 4.4's category mapping.
func (p *printer) selfClosingTail(n *ast.Node, isComponent bool) doc.Doc {
	resolved, hasSpace := p.resolveSelfClosing(n, isComponent)
	if !resolved {
		return doc.TextOf("></" + n.Data + ">")
	}
	if hasSpace {
		return doc.TextOf(" />")
	}
	return doc.TextOf("/>")
}

func (p *printer) resolveSelfClosing(n *ast.Node, isComponent bool) (selfClose, withSpace bool) {
	withSpace = true
	var t options.TriState
	switch {
	case isComponent:
		t = p.opts.SelfClosing.Component
	case n.Namespace == ast.SVGNamespace:
		t = p.opts.SelfClosing.SVG
		withSpace = false
	case n.Namespace == ast.MathMLNamespace:
		t = p.opts.SelfClosing.MathML
		withSpace = false
	case n.ClosingForm == ast.VoidImplicit:
		t = p.opts.SelfClosing.HTMLVoid
	default:
		t = p.opts.SelfClosing.HTMLNormal
	}
	fallback := n.ClosingForm == ast.VoidImplicit || n.ClosingForm == ast.SelfClosed
	return t.Bool(fallback), withSpace
}

// childWhitespace resolves the effective whitespace-sensitivity mode for
// n's children (spec section 4.4's css/strict/ignore rule set).
func (p *printer) childWhitespace(n *ast.Node, isComponent bool) options.WhitespaceSensitivity {
	effective := p.opts.EffectiveWhitespaceSensitivity(isComponent)
	if effective != options.WhitespaceCSS {
		return effective
	}
	if dialect.IsInlineElement(strings.ToLower(n.Data)) {
		return options.WhitespaceStrict
	}
	return options.WhitespaceIgnore
}

// printChildrenFill groups n's children into a doc.Fill so inline text
// wraps at whitespace boundaries (spec section 4.4 "Text children").
func (p *printer) printChildrenFill(n *ast.Node, ctx printCtx) doc.Doc {
	var items []doc.Doc
	first := true
	var prev *ast.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == ast.TextNode {
			for i, word := range splitFillWords(c.Data, ctx.whitespace == options.WhitespaceStrict) {
				if i > 0 || !first {
					items = append(items, doc.LineDoc)
				}
				items = append(items, doc.TextOf(word))
				first = false
			}
			continue
		}
		if !first {
			items = append(items, p.siblingSeparator(prev, c))
		}
		items = append(items, p.PrintNode(c, ctx))
		first = false
		prev = c
	}
	if len(items) == 0 {
		return doc.Nil
	}
	return doc.Fill{Items: items}
}

// siblingSeparator chooses the join between two non-text siblings: a
// hardline, or (when angularNextControlFlowSameLine is set and cur
// continues prev's control-flow chain) a single space so `}` and the
// next `@else`/`@case`/... sit on one line.
func (p *printer) siblingSeparator(prev, cur *ast.Node) doc.Doc {
	if prev != nil && prev.Type == ast.AngularControlFlowNode &&
		cur.Type == ast.AngularControlFlowNode &&
		p.opts.AngularNextControlFlowSameLine &&
		isAngularContinuationKeyword(cur.ControlFlowKeyword) {
		return doc.TextOf(" ")
	}
	return doc.HardlineDoc
}

func isAngularContinuationKeyword(keyword string) bool {
	switch keyword {
	case "else", "else if", "case", "default", "empty", "placeholder", "loading", "error":
		return true
	}
	return false
}

func splitFillWords(text string, preserveWhitespace bool) []string {
	if preserveWhitespace {
		return []string{text}
	}
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return nil
	}
	return fields
}

// --- text ---

func (p *printer) printText(n *ast.Node, ctx printCtx) doc.Doc {
	if ctx.whitespace == options.WhitespaceIgnore && n.IsAllWhitespace {
		return doc.Nil
	}
	return doc.TextOf(n.Data)
}

// --- comments ---

func (p *printer) printComment(n *ast.Node) doc.Doc {
	if p.opts.IgnoreCommentDirective != "" && strings.TrimSpace(n.Data) == p.opts.IgnoreCommentDirective {
		n.Ignore = ast.IgnoreSubtree
	}
	if !p.opts.FormatComments {
		return doc.ConcatOf(doc.TextOf("<!--"), p.literalBlock(n.Data), doc.TextOf("-->"))
	}
	body := strings.TrimSpace(n.Data)
	if !strings.Contains(body, "\n") {
		return doc.TextOf("<!-- " + body + " -->")
	}
	lines := strings.Split(body, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSpace(l)
	}
	return doc.GroupOf(doc.ConcatOf(
		doc.TextOf("<!--"),
		doc.IndentOf(doc.ConcatOf(doc.HardlineDoc, doc.Join(doc.HardlineDoc, textDocs(lines)))),
		doc.HardlineDoc,
		doc.TextOf("-->"),
	))
}

func textDocs(lines []string) []doc.Doc {
	out := make([]doc.Doc, len(lines))
	for i, l := range lines {
		out[i] = doc.TextOf(l)
	}
	return out
}

// --- doctype ---

func (p *printer) printDoctype(n *ast.Node) doc.Doc {
	body := strings.TrimSpace(n.Data)
	rest := strings.TrimPrefix(body, "!")
	lowerRest := strings.ToLower(rest)
	if !strings.HasPrefix(lowerRest, "doctype") {
		return doc.TextOf("<!" + body + ">")
	}
	tail := rest[len("doctype"):]
	kw := "doctype"
	switch p.opts.DoctypeKeywordCase {
	case options.DoctypeUpper:
		kw = "DOCTYPE"
	case options.DoctypeLower:
		kw = "doctype"
	default:
		kw = rest[:len("doctype")]
	}
	return doc.TextOf("<!" + kw + tail + ">")
}

// --- template constructs ---

// printTemplateNode prints a TemplateNode using its own delimiters as
// captured at parse time, rather than one hardcoded dialect's family:
// Statement delimiters differ per dialect (`{% %}` for Jinja/Twig/
// Nunjucks, `{{ }}` for Vento, `{{# }}` for Handlebars/Mustache), and
// Handlebars/Mustache comments use `{{! }}`, not `{# #}`.
func (p *printer) printTemplateNode(n *ast.Node, ctx printCtx) doc.Doc {
	switch n.TemplateKind {
	case ast.Interpolation, ast.Statement, ast.TemplateComment:
		return doc.TextOf(n.DelimOpen + " " + n.Data + " " + n.DelimClose)
	case ast.Block:
		return p.printTemplateBlock(n, ctx)
	default:
		return doc.TextOf(n.Data)
	}
}

// printTemplateBlock prints a Block's open statement, its children, and
// its matching end-keyword statement (spec section 3's "a statement with
// start/end tags wrapping children"; section 4.2's per-dialect
// end-keyword pairing).
func (p *printer) printTemplateBlock(n *ast.Node, ctx printCtx) doc.Doc {
	head := doc.TextOf(n.DelimOpen + " " + n.Data + " " + n.DelimClose)
	tail := doc.TextOf(n.EndDelimOpen + " " + n.BlockEndKeyword + " " + n.EndDelimClose)
	if n.EndDelimOpen != n.DelimOpen {
		// A distinct end delimiter already encodes its own marker
		// (Handlebars/Mustache `{{/if}}`): no padding spaces.
		tail = doc.TextOf(n.EndDelimOpen + n.BlockEndKeyword + n.EndDelimClose)
	}
	if n.Empty() {
		return doc.ConcatOf(head, doc.HardlineDoc, tail)
	}
	body := doc.IndentOf(doc.ConcatOf(doc.HardlineDoc, p.printChildrenFill(n, ctx)))
	return doc.ConcatOf(head, body, doc.HardlineDoc, tail)
}

func (p *printer) printAngularControlFlow(n *ast.Node, ctx printCtx) doc.Doc {
	head := "@" + n.ControlFlowKeyword
	if n.ControlFlowExpr != "" {
		head += " (" + n.ControlFlowExpr + ")"
	}
	head += " {"
	body := p.printChildrenFill(n, ctx)
	return doc.ConcatOf(doc.TextOf(head), doc.IndentOf(doc.ConcatOf(doc.HardlineDoc, body)), doc.HardlineDoc, doc.TextOf("}"))
}

// --- embedded code ---

func (p *printer) printEmbeddedBody(n *ast.Node, tagName string, indentCols int) doc.Doc {
	raw := embeddedText(n)
	if p.embed == nil {
		return p.literalBlock(raw)
	}
	lang := embedLang(n, tagName)
	formatted, err := p.embed(raw, EmbedDescriptor{Lang: lang, ParentTag: tagName, Indent: indentCols})
	if err != nil {
		p.fails = append(p.fails, &EmbedFailure{Lang: lang, Err: err})
		return p.literalBlock(raw)
	}
	indented := reindent(formatted, p.opts.IndentWidth, p.scriptStyleIndentFor(tagName))
	return doc.ConcatOf(doc.HardlineDoc, p.literalBlock(indented), doc.HardlineDoc)
}

func (p *printer) scriptStyleIndentFor(tagName string) bool {
	d := dialectKey(p.dialect)
	if tagName == "style" {
		return p.opts.StyleIndent.For(d)
	}
	return p.opts.ScriptIndent.For(d)
}

func dialectKey(d dialect.Tag) string {
	switch d {
	case dialect.Vue:
		return "vue"
	case dialect.Svelte:
		return "svelte"
	case dialect.Astro:
		return "astro"
	default:
		return "html"
	}
}

func embeddedText(n *ast.Node) string {
	if n.FirstChild != nil && n.FirstChild.Type == ast.TextNode {
		return n.FirstChild.Data
	}
	return ""
}

func embedLang(n *ast.Node, tagName string) string {
	if lang, ok := n.GetAttr("lang"); ok {
		return lang.Val
	}
	if typ, ok := n.GetAttr("type"); ok {
		return typ.Val
	}
	switch tagName {
	case "script":
		return "js"
	case "style":
		return "css"
	}
	return tagName
}

// reindent normalizes the callback's own leading indentation with
// lithammer/dedent and, when extraStep is true, prefixes every non-empty
// line with one indent step. printEmbeddedBody emits the result as
// literal lines starting at column 0, so the enclosing element's own
// indentation is not added to the body.
func reindent(s string, indentWidth int, extraStep bool) string {
	s = helpers.Dedent(s)
	if !extraStep {
		return s
	}
	pad := strings.Repeat(" ", indentWidth)
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if l == "" {
			continue
		}
		lines[i] = pad + l
	}
	return strings.Join(lines, "\n")
}

// --- attribute value formatting ---

func (p *printer) printAttribute(a ast.Attribute, isComponent bool) doc.Doc {
	switch a.Type {
	case ast.EmptyAttribute:
		return doc.TextOf(a.Key)
	case ast.SpreadAttribute:
		return doc.TextOf("{..." + a.Val + "}")
	case ast.ShorthandAttribute:
		return p.printShorthandAttr(a)
	case ast.ExpressionAttribute:
		return p.printExpressionAttr(a)
	case ast.VueDirectiveAttribute:
		return p.printVueDirective(a)
	case ast.SvelteBindingAttribute:
		return p.printSvelteBinding(a)
	case ast.AngularBindingAttribute:
		return p.printAngularBinding(a)
	default:
		return p.printPlainAttribute(a)
	}
}

func (p *printer) quoteChar() byte {
	if p.opts.Quotes == options.SingleQuote {
		return '\''
	}
	return '"'
}

// quoteValue wraps val in the configured quote style, keeping the other
// style when switching would require escaping (spec section 4.4).
func (p *printer) quoteValue(val string) string {
	q := p.quoteChar()
	if strings.IndexByte(val, q) >= 0 {
		if q == '"' {
			q = '\''
		} else {
			q = '"'
		}
	}
	return string(q) + val + string(q)
}

func (p *printer) printPlainAttribute(a ast.Attribute) doc.Doc {
	return doc.TextOf(a.Key + "=" + p.quoteValue(a.Val))
}

func (p *printer) printShorthandAttr(a ast.Attribute) doc.Doc {
	return doc.TextOf("{" + a.Key + "}")
}

func (p *printer) printExpressionAttr(a ast.Attribute) doc.Doc {
	if p.dialect == dialect.Svelte && p.shorthandTri(p.opts.SvelteAttrShorthand) && a.Key == a.Val {
		return doc.TextOf("{" + a.Key + "}")
	}
	if p.dialect == dialect.Astro && p.shorthandTri(p.opts.AstroAttrShorthand) && a.Key == a.Val {
		return doc.TextOf("{" + a.Key + "}")
	}
	if p.opts.StrictSvelteAttr && p.dialect == dialect.Svelte {
		return doc.TextOf(a.Key + "=" + p.quoteValue("{"+a.Val+"}"))
	}
	return doc.TextOf(a.Key + "={" + a.Val + "}")
}

func (p *printer) shorthandTri(t options.TriState) bool {
	return t.Bool(false)
}

// printVueDirective rewrites between short/long directive forms per
// vBindStyle/vOnStyle, and applies the v-for in/of substitution and
// v-slot short/long/vSlot mapping (spec section 4.4).
func (p *printer) printVueDirective(a ast.Attribute) doc.Doc {
	arg := a.ArgName
	if a.DirectiveKind == "for" || arg == "" && a.Key == "v-for" {
		return p.printVForAttr(a)
	}
	suffix := modifierSuffix(a.Modifiers)

	switch a.DirectiveKind {
	case "bind":
		if a.Val == "" && a.Shorthand {
			return doc.TextOf(":" + arg)
		}
		style := p.opts.VBindStyle
		if style == options.DirectiveStyleLong {
			return doc.TextOf("v-bind:" + arg + suffix + "=" + p.quoteValue(a.Val))
		}
		if p.opts.VBindSameNameShortHand.Bool(false) && arg == a.Val {
			return doc.TextOf(":" + arg)
		}
		return doc.TextOf(":" + arg + suffix + "=" + p.quoteValue(a.Val))
	case "on":
		style := p.opts.VOnStyle
		if style == options.DirectiveStyleLong {
			return doc.TextOf("v-on:" + arg + suffix + "=" + p.quoteValue(a.Val))
		}
		return doc.TextOf("@" + arg + suffix + "=" + p.quoteValue(a.Val))
	case "slot":
		return p.printVSlot(a, arg)
	default:
		name := "v-" + a.DirectiveKind
		if arg != "" {
			name += ":" + arg
		}
		name += suffix
		if a.Val == "" {
			return doc.TextOf(name)
		}
		return doc.TextOf(name + "=" + p.quoteValue(a.Val))
	}
}

func (p *printer) printVSlot(a ast.Attribute, arg string) doc.Doc {
	isDefault := arg == "" || arg == "default"
	style := p.opts.VSlotStyle.Resolve(true, isDefault, !isDefault)
	switch style {
	case options.VSlotStyleVSlot:
		if isDefault {
			if a.Val == "" {
				return doc.TextOf("v-slot")
			}
			return doc.TextOf("v-slot=" + p.quoteValue(a.Val))
		}
		return doc.TextOf("#" + arg + valSuffix(a, p))
	case options.VSlotStyleLong:
		name := "v-slot"
		if arg != "" {
			name += ":" + arg
		}
		return doc.TextOf(name + valSuffix(a, p))
	default:
		return doc.TextOf("#" + arg + valSuffix(a, p))
	}
}

func valSuffix(a ast.Attribute, p *printer) string {
	if a.Val == "" {
		return ""
	}
	return "=" + p.quoteValue(a.Val)
}

// printVForAttr substitutes the in/of keyword in `item(, index) (in|of)
// list` per vForDelimiterStyle, passing both sides through verbatim
// (spec section 4.4).
func (p *printer) printVForAttr(a ast.Attribute) doc.Doc {
	if p.opts.VForDelimiterStyle == options.VForDelimiterUnset {
		return doc.TextOf("v-for=" + p.quoteValue(a.Val))
	}
	m, err := p.vForRe.FindStringMatch(a.Val)
	if err != nil || m == nil {
		return doc.TextOf("v-for=" + p.quoteValue(a.Val))
	}
	groups := m.Groups()
	item := groups[1].String()
	index := ""
	if len(groups) > 2 {
		index = groups[2].String()
	}
	list := groups[len(groups)-1].String()
	kw := "in"
	if p.opts.VForDelimiterStyle == options.VForDelimiterOf {
		kw = "of"
	}
	lhs := item
	if index != "" {
		lhs = item + ", " + index
	}
	return doc.TextOf("v-for=" + p.quoteValue(lhs+" "+kw+" "+list))
}

func modifierSuffix(mods []string) string {
	if len(mods) == 0 {
		return ""
	}
	return "." + strings.Join(mods, ".")
}

func (p *printer) printSvelteBinding(a ast.Attribute) doc.Doc {
	name := a.DirectiveKind + ":" + a.ArgName + modifierSuffix(a.Modifiers)
	if a.Shorthand || (a.Val == a.ArgName && p.shorthandTri(p.opts.SvelteDirectiveShorthand)) {
		return doc.TextOf("{" + name + "}")
	}
	if a.Val == "" {
		return doc.TextOf(name)
	}
	return doc.TextOf(name + "={" + a.Val + "}")
}

func (p *printer) printAngularBinding(a ast.Attribute) doc.Doc {
	switch a.DirectiveKind {
	case "event":
		return doc.TextOf("(" + a.ArgName + ")=" + p.quoteValue(a.Val))
	case "banana":
		return doc.TextOf("[(" + a.ArgName + ")]=" + p.quoteValue(a.Val))
	case "prop":
		return doc.TextOf("[" + a.ArgName + "]=" + p.quoteValue(a.Val))
	case "structural":
		if a.Val == "" {
			return doc.TextOf("*" + a.ArgName)
		}
		return doc.TextOf("*" + a.ArgName + "=" + p.quoteValue(a.Val))
	default:
		return p.printPlainAttribute(a)
	}
}
