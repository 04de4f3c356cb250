// Package parser builds one ast.Node tree per dialect from source text,
// sharing internal/token's scanner and internal/ast's node type (spec
// section 4.2: "One parser per dialect, sharing the tokenizer and AST").
// Parsing is structural, not validating: it accepts whatever a browser
// or template engine would, and never autocloses tags the source didn't
// close itself.
//
// Grounded on the teacher's internal/token.go tokenizer loop (the
// tag-name/attribute/raw-text state machine) generalized from
// Astro-only `{`/`}` handling to the full per-dialect delimiter family,
// since the pack's copy of internal/parser.go (the actual driver) was
// not retrieved — see DESIGN.md.
package parser

import (
	"fmt"

	"golang.org/x/net/html/atom"

	"github.com/markup-fmt/markup-fmt/internal/ast"
	"github.com/markup-fmt/markup-fmt/internal/dialect"
	"github.com/markup-fmt/markup-fmt/internal/loc"
	"github.com/markup-fmt/markup-fmt/internal/token"
)

// delimiters is the per-dialect expression/statement delimiter family
// (spec section 4.2: "Template dialects... recognizes its own
// expression/statement delimiters"; spec section 3: Statement delimiters
// are `{% %}` for Jinja/Twig/Nunjucks, `{{ }}` for Vento, `{{# }}` for
// Handlebars/Mustache sections, whose comments use `{{! }}` rather than
// `{# #}`).
type delimiters struct {
	interpOpen, interpClose   string
	stmtOpen, stmtClose       string
	commentOpen, commentClose string
	// stmtEndOpen is the end-tag's own opening delimiter when it differs
	// from stmtOpen (Handlebars/Mustache `{{/if}}` vs the opening
	// `{{#if}}`). Empty means the end tag reuses stmtOpen/stmtClose.
	stmtEndOpen string
}

func delimitersFor(d dialect.Tag) delimiters {
	switch d {
	case dialect.Jinja, dialect.Nunjucks, dialect.Twig:
		return delimiters{interpOpen: "{{", interpClose: "}}", stmtOpen: "{%", stmtClose: "%}", commentOpen: "{#", commentClose: "#}"}
	case dialect.Vento:
		// Vento's statement delimiter is the same `{{ }}` pair as its
		// interpolation delimiter (disambiguated in parseStatementConstruct
		// by sniffing the body's leading keyword) and its end tags use the
		// `/keyword` form inside that same pair, e.g. `{{ /if }}`. No Vento
		// reference material exists in the retrieval pack; the comment
		// delimiter below is this parser's own best-effort guess — see
		// DESIGN.md.
		return delimiters{interpOpen: "{{", interpClose: "}}", stmtOpen: "{{", stmtClose: "}}", commentOpen: "{{#", commentClose: "#}}"}
	case dialect.Mustache, dialect.Handlebars:
		return delimiters{interpOpen: "{{", interpClose: "}}", stmtOpen: "{{#", stmtClose: "}}", stmtEndOpen: "{{/", commentOpen: "{{!", commentClose: "}}"}
	default:
		return delimiters{}
	}
}

// blockOpenKeywords are the statement keywords spec section 4.2 expects to
// open a Block requiring a matching end keyword. Not exhaustive of every
// dialect's grammar, but covers the constructs common across the
// Jinja/Twig/Nunjucks/Vento/Handlebars/Mustache family.
var blockOpenKeywords = map[string]bool{
	"if": true, "for": true, "each": true, "block": true,
	"with": true, "unless": true, "while": true, "macro": true,
	"filter": true, "autoescape": true, "spaceless": true,
}

// ventoStatementKeywords are Vento statement keywords that don't open a
// Block, needed to disambiguate a `{{ … }}` body as a Statement rather
// than an Interpolation (Vento shares one delimiter pair for both).
var ventoStatementKeywords = map[string]bool{
	"set": true, "echo": true, "include": true, "layout": true,
	"export": true, "import": true, "function": true, "else": true,
}

// blockEndMatches reports whether end is the expected end-keyword for a
// Block opened with open, per spec section 4.2's "end<kw>`/`/<kw>`"
// convention.
func blockEndMatches(open, end string) bool {
	return end == "end"+open || end == "/"+open
}

// isEndKeywordForm reports whether keyword looks like an end-keyword
// (`end…`/`/…`) regardless of which Block it might close.
func isEndKeywordForm(keyword string) bool {
	return keyword != "" && (hasPrefix(keyword, "end") || keyword[0] == '/')
}

// Parser drives a single parse of src under one dialect.
type Parser struct {
	sc      *token.Scanner
	src     string
	dialect dialect.Tag
	delims  delimiters
	opts    ParseOptions
}

// ParseOptions carries the formatter options handed to the parser (spec
// section 6: htmlParseJsExpressions). No parsing rule reads
// HTMLParseJSExpressions: `${…}` in text is parsed as ordinary text
// whatever its value.
type ParseOptions struct {
	HTMLParseJSExpressions bool
}

// New constructs a Parser for src under the given dialect.
func New(src string, d dialect.Tag, opts ParseOptions) *Parser {
	return &Parser{
		sc:      token.NewScanner(src),
		src:     src,
		dialect: d,
		delims:  delimitersFor(d),
		opts:    opts,
	}
}

// Parse parses the whole document, returning its root Document node or
// a *loc.SyntaxError (spec section 4.2's "Failure mode").
func Parse(src string, d dialect.Tag, opts ParseOptions) (*ast.Node, error) {
	p := New(src, d, opts)
	root := &ast.Node{Type: ast.DocumentNode}
	if _, err := p.parseChildren(root, childStop{}); err != nil {
		return nil, err
	}
	return root, nil
}

// ParseFragment parses src as a sequence of sibling nodes without a
// document wrapper (spec section 6's fragment entry point). Nothing in
// this module calls it; Format always parses a whole document.
func ParseFragment(src string, d dialect.Tag, opts ParseOptions) ([]*ast.Node, error) {
	root, err := Parse(src, d, opts)
	if err != nil {
		return nil, err
	}
	return root.ChildNodes(), nil
}

func (p *Parser) err(kind loc.SyntaxErrorKind, span loc.Span, msg string) error {
	return &loc.SyntaxError{Kind: kind, Span: span, Msg: msg}
}

// childStop bundles the conditions that end a parseChildren call: a
// matching HTML end tag (tags), a matching per-dialect template Block
// end-keyword (blockOpen, spec section 4.2), or a bare '}' closing an
// Angular control-flow body (brace, spec section 4.2's Angular grammar).
type childStop struct {
	tags      []string
	blockOpen string
	brace     bool
}

// parseChildren consumes nodes until EOF or a matching stop condition.
// It returns the literal end-keyword text matched (only meaningful when
// stop.blockOpen is set) and, for the HTML/brace cases, has already
// consumed the matching end tag/brace.
func (p *Parser) parseChildren(parent *ast.Node, stop childStop) (string, error) {
	for {
		if p.sc.AtEnd() {
			if stop.blockOpen != "" {
				return "", p.err(loc.UnclosedBlock, p.spanFrom(p.sc.Pos()), "unclosed block: expected end of "+stop.blockOpen)
			}
			return "", nil
		}
		if stop.brace && p.sc.Peek(0) == '}' {
			return "", nil
		}
		if p.sc.Peek(0) == '<' {
			if p.sc.Peek(1) == '/' {
				if p.matchesStop(stop.tags) {
					if err := p.parseEndTag(); err != nil {
						return "", err
					}
					return "", nil
				}
				// Unmatched end tag at this nesting: surface and let the
				// caller's own stop-tag check (an ancestor) absorb it by
				// returning here; the ancestor will see '<' '/' again.
				if len(stop.tags) == 0 {
					return "", p.err(loc.UnmatchedEndTag, p.spanFrom(p.sc.Pos()), "unmatched end tag")
				}
				return "", nil
			}
			if p.sc.HasPrefixFold("<!--") {
				n, err := p.parseComment()
				if err != nil {
					return "", err
				}
				parent.AppendChild(n)
				continue
			}
			if p.sc.HasPrefixFold("<!doctype") {
				n, err := p.parseDoctype()
				if err != nil {
					return "", err
				}
				parent.AppendChild(n)
				continue
			}
			if p.sc.HasPrefixFold("<![CDATA[") {
				n, err := p.parseCDATA()
				if err != nil {
					return "", err
				}
				parent.AppendChild(n)
				continue
			}
			if isNameStartAt(p.src, p.sc.Pos()+1) {
				n, err := p.parseElement()
				if err != nil {
					return "", err
				}
				parent.AppendChild(n)
				continue
			}
		}
		if p.dialect == dialect.Angular {
			ok, err := p.tryParseAngularControlFlow(parent)
			if err != nil {
				return "", err
			}
			if ok {
				continue
			}
		}
		if p.dialect.IsTemplateDialect() {
			endKeyword, consumed, err := p.tryParseTemplateConstruct(parent, stop.blockOpen)
			if err != nil {
				return "", err
			}
			if endKeyword != "" {
				return endKeyword, nil
			}
			if consumed {
				continue
			}
		}
		n, err := p.parseText(stop.brace)
		if err != nil {
			return "", err
		}
		if n != nil {
			parent.AppendChild(n)
		}
	}
}

func (p *Parser) matchesStop(stopTags []string) bool {
	if len(stopTags) == 0 {
		return false
	}
	start := p.sc.Pos() + 2 // past "</"
	for _, tag := range stopTags {
		if start+len(tag) <= len(p.src) && foldEqual(p.src[start:start+len(tag)], tag) {
			return true
		}
	}
	return false
}

func foldEqual(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if ca >= 'A' && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if cb >= 'A' && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}

func isNameStartAt(src string, i int) bool {
	return i < len(src) && token.IsNameStart(src[i])
}

func (p *Parser) spanFrom(pos int) loc.Span {
	return loc.Span{Start: pos, End: pos}
}

// parseElement parses a start tag, its attributes, and (unless void or
// self-closed) its children and end tag.
func (p *Parser) parseElement() (*ast.Node, error) {
	start := p.sc.Pos()
	p.sc.AdvanceByte() // '<'
	nameStart := p.sc.Pos()
	for !p.sc.AtEnd() && token.IsNameChar(p.sc.Peek(0)) {
		p.sc.AdvanceByte()
	}
	name := p.src[nameStart:p.sc.Pos()]
	if name == "" {
		return nil, p.err(loc.UnexpectedChar, p.spanFrom(start), "expected tag name")
	}

	n := ast.NewElement(name)
	n.DataAtom = atom.Lookup([]byte(name))

	if err := p.parseAttributes(n); err != nil {
		return nil, err
	}

	selfClosed := false
	if p.sc.Peek(0) == '/' && p.sc.Peek(1) == '>' {
		p.sc.Advance(2)
		selfClosed = true
	} else if p.sc.Peek(0) == '>' {
		p.sc.AdvanceByte()
	} else {
		return nil, p.err(loc.UnexpectedEndOfInput, p.spanFrom(p.sc.Pos()), "unterminated start tag")
	}

	lowerName := toLowerASCII(name)
	isVoid := dialect.IsVoidElement(lowerName)
	n.RawTextElement = dialect.IsRawTextElement(lowerName)
	n.WhitespacePreserved = dialect.IsPreFormattedElement(lowerName)

	switch {
	case selfClosed:
		n.ClosingForm = ast.SelfClosed
	case isVoid:
		n.ClosingForm = ast.VoidImplicit
	default:
		n.ClosingForm = ast.Paired
	}

	if selfClosed || isVoid {
		n.Span = loc.Span{Start: start, End: p.sc.Pos()}
		return n, nil
	}

	if n.RawTextElement {
		body, end, err := p.consumeRawText(lowerName)
		if err != nil {
			return nil, err
		}
		if body != "" {
			text := &ast.Node{Type: ast.TextNode, Data: body, Span: loc.Span{Start: end[0], End: end[1]}}
			n.AppendChild(text)
		}
		n.Span = loc.Span{Start: start, End: p.sc.Pos()}
		return n, nil
	}

	if _, err := p.parseChildren(n, childStop{tags: []string{lowerName}}); err != nil {
		return nil, err
	}
	n.Span = loc.Span{Start: start, End: p.sc.Pos()}
	return n, nil
}

// consumeRawText scans verbatim until the matching case-insensitive end
// tag (spec section 4.2: "collected until the matching case-insensitive
// end tag, with no inner tokenization").
func (p *Parser) consumeRawText(lowerName string) (string, [2]int, error) {
	bodyStart := p.sc.Pos()
	endTag := "</" + lowerName
	text, found := p.sc.ReadUntilFold(endTag)
	if !found {
		return "", [2]int{}, p.err(loc.UnexpectedEndOfInput, p.spanFrom(p.sc.Pos()), "unterminated "+lowerName+" element")
	}
	bodyEnd := p.sc.Pos()
	p.sc.MatchLiteralFold(endTag)
	p.sc.SkipWhitespace()
	if p.sc.Peek(0) == '>' {
		p.sc.AdvanceByte()
	}
	return text, [2]int{bodyStart, bodyEnd}, nil
}

func (p *Parser) parseEndTag() error {
	p.sc.Advance(2) // "</"
	for !p.sc.AtEnd() && token.IsNameChar(p.sc.Peek(0)) {
		p.sc.AdvanceByte()
	}
	p.sc.SkipWhitespace()
	if p.sc.Peek(0) == '>' {
		p.sc.AdvanceByte()
		return nil
	}
	return p.err(loc.UnexpectedEndOfInput, p.spanFrom(p.sc.Pos()), "unterminated end tag")
}

// parseAttributes reads the attribute list, dispatching dialect-specific
// name forms (Vue shorthand/long directive, Svelte kind:name, Angular
// (event)/[prop]/[(banana)]/*structural) per spec section 4.2.
func (p *Parser) parseAttributes(n *ast.Node) error {
	for {
		p.sc.SkipWhitespace()
		c := p.sc.Peek(0)
		if c == 0 || c == '>' || (c == '/' && p.sc.Peek(1) == '>') {
			return nil
		}
		if c == '{' && (p.dialect == dialect.Astro || p.dialect == dialect.Svelte) {
			attr, err := p.parseBraceAttr()
			if err != nil {
				return err
			}
			n.Attr = append(n.Attr, attr)
			continue
		}
		attr, err := p.parseOneAttribute()
		if err != nil {
			return err
		}
		n.Attr = append(n.Attr, attr)
	}
}

// parseBraceAttr parses Astro/Svelte `{expr}` and `{...expr}` attribute
// forms (spec section 4.2).
func (p *Parser) parseBraceAttr() (ast.Attribute, error) {
	start := p.sc.Pos()
	p.sc.AdvanceByte() // '{'
	spread := false
	if p.sc.MatchLiteral("...") {
		spread = true
	}
	exprStart := p.sc.Pos()
	depth := 1
	for !p.sc.AtEnd() && depth > 0 {
		switch p.sc.Peek(0) {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				goto done
			}
		}
		p.sc.AdvanceByte()
	}
done:
	expr := p.src[exprStart:p.sc.Pos()]
	if p.sc.Peek(0) == '}' {
		p.sc.AdvanceByte()
	} else {
		return ast.Attribute{}, p.err(loc.UnexpectedEndOfInput, p.spanFrom(start), "unterminated attribute expression")
	}
	keyLoc := loc.Loc{Start: start}
	if spread {
		return ast.Attribute{Type: ast.SpreadAttribute, Val: expr, KeyLoc: keyLoc}, nil
	}
	return ast.Attribute{Type: ast.ShorthandAttribute, Key: expr, Val: expr, Shorthand: true, KeyLoc: keyLoc}, nil
}

// parseOneAttribute parses a PlainAttribute/EmptyAttribute/directive
// attribute starting at the current position.
func (p *Parser) parseOneAttribute() (ast.Attribute, error) {
	start := p.sc.Pos()
	nameStart := start
	for !p.sc.AtEnd() {
		c := p.sc.Peek(0)
		if c == '=' || c == '>' || c == '/' || isSpaceByte(c) {
			break
		}
		p.sc.AdvanceByte()
	}
	name := p.src[nameStart:p.sc.Pos()]
	if name == "" {
		// The plain scan above stopped at once, on a leading '=' or on a
		// '/' not followed by '>'; rescan with the bracket-aware scanner,
		// which stops only on '=', '>' or whitespace outside ()/[]. Angular
		// (event)/[prop]/[(banana)]/*structural names already pass through
		// the plain scan whole.
		name = p.scanAngularOrDirectiveName()
	}

	attr := ast.Attribute{Key: name, KeyLoc: loc.Loc{Start: nameStart}, Type: ast.PlainAttribute}
	classifyAttrName(&attr, name, p.dialect)

	p.sc.SkipWhitespace()
	if p.sc.Peek(0) != '=' {
		attr.Type = ast.EmptyAttribute
		return attr, nil
	}
	p.sc.AdvanceByte() // '='
	p.sc.SkipWhitespace()

	val, quote, err := p.parseAttrValue()
	if err != nil {
		return ast.Attribute{}, err
	}
	attr.Val = val
	attr.Quote = quote
	if quote == ast.ExpressionShorthandQuote && attr.Type == ast.PlainAttribute {
		attr.Type = ast.ExpressionAttribute
	}
	return attr, nil
}

func (p *Parser) scanAngularOrDirectiveName() string {
	start := p.sc.Pos()
	depth := 0
	for !p.sc.AtEnd() {
		c := p.sc.Peek(0)
		switch c {
		case '(', '[':
			depth++
		case ')', ']':
			depth--
		}
		if depth == 0 && (c == '=' || c == '>' || isSpaceByte(c)) {
			break
		}
		p.sc.AdvanceByte()
	}
	return p.src[start:p.sc.Pos()]
}

// parseAttrValue parses a quoted, unquoted, or brace-expression
// attribute value.
func (p *Parser) parseAttrValue() (string, ast.QuoteKind, error) {
	c := p.sc.Peek(0)
	switch c {
	case '"', '\'':
		p.sc.AdvanceByte()
		start := p.sc.Pos()
		val, found := p.sc.ReadUntil(string(c))
		if !found {
			return "", 0, p.err(loc.UnterminatedString, p.spanFrom(start), "unterminated attribute value")
		}
		p.sc.AdvanceByte()
		if c == '"' {
			return val, ast.DoubleQuote, nil
		}
		return val, ast.SingleQuote, nil
	case '{':
		start := p.sc.Pos()
		p.sc.AdvanceByte()
		exprStart := p.sc.Pos()
		depth := 1
		for !p.sc.AtEnd() && depth > 0 {
			switch p.sc.Peek(0) {
			case '{':
				depth++
			case '}':
				depth--
				if depth == 0 {
					goto done
				}
			}
			p.sc.AdvanceByte()
		}
	done:
		val := p.src[exprStart:p.sc.Pos()]
		if p.sc.Peek(0) != '}' {
			return "", 0, p.err(loc.UnexpectedEndOfInput, p.spanFrom(start), "unterminated attribute expression")
		}
		p.sc.AdvanceByte()
		return val, ast.ExpressionShorthandQuote, nil
	default:
		start := p.sc.Pos()
		for !p.sc.AtEnd() && !isSpaceByte(p.sc.Peek(0)) && p.sc.Peek(0) != '>' {
			p.sc.AdvanceByte()
		}
		return p.src[start:p.sc.Pos()], ast.UnquotedValue, nil
	}
}

func isSpaceByte(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

// classifyAttrName fills in DirectiveKind/ArgName/Modifiers/Type for
// Vue/Svelte/Angular directive name forms (spec section 4.2).
func classifyAttrName(attr *ast.Attribute, name string, d dialect.Tag) {
	switch d {
	case dialect.Vue:
		classifyVueName(attr, name)
	case dialect.Svelte:
		classifySvelteName(attr, name)
	case dialect.Angular:
		classifyAngularName(attr, name)
	}
}

func classifyVueName(attr *ast.Attribute, name string) {
	switch {
	case name == ":" || (len(name) > 0 && name[0] == ':'):
		attr.Type = ast.VueDirectiveAttribute
		attr.DirectiveKind = "bind"
		attr.ArgName, attr.Modifiers = splitArgModifiers(name[1:])
	case len(name) > 0 && name[0] == '@':
		attr.Type = ast.VueDirectiveAttribute
		attr.DirectiveKind = "on"
		attr.ArgName, attr.Modifiers = splitArgModifiers(name[1:])
	case len(name) > 0 && name[0] == '#':
		attr.Type = ast.VueDirectiveAttribute
		attr.DirectiveKind = "slot"
		attr.ArgName, attr.Modifiers = splitArgModifiers(name[1:])
	case hasPrefix(name, "v-"):
		attr.Type = ast.VueDirectiveAttribute
		rest := name[2:]
		kind, argAndMods := splitOnce(rest, ':')
		attr.DirectiveKind = kind
		attr.ArgName, attr.Modifiers = splitArgModifiers(argAndMods)
	}
}

func classifySvelteName(attr *ast.Attribute, name string) {
	kind, argAndMods := splitOnce(name, ':')
	switch kind {
	case "bind", "on", "use", "class", "style", "animate", "transition", "in", "out":
		attr.Type = ast.SvelteBindingAttribute
		attr.DirectiveKind = kind
		attr.ArgName, attr.Modifiers = splitArgModifiers(argAndMods)
	}
}

func classifyAngularName(attr *ast.Attribute, name string) {
	switch {
	case len(name) > 2 && name[0] == '(' && name[len(name)-1] == ')':
		attr.Type = ast.AngularBindingAttribute
		attr.DirectiveKind = "event"
		attr.ArgName = name[1 : len(name)-1]
	case len(name) > 4 && name[0] == '[' && name[1] == '(' && name[len(name)-1] == ']' && name[len(name)-2] == ')':
		attr.Type = ast.AngularBindingAttribute
		attr.DirectiveKind = "banana"
		attr.ArgName = name[2 : len(name)-2]
	case len(name) > 2 && name[0] == '[' && name[len(name)-1] == ']':
		attr.Type = ast.AngularBindingAttribute
		attr.DirectiveKind = "prop"
		attr.ArgName = name[1 : len(name)-1]
	case len(name) > 1 && name[0] == '*':
		attr.Type = ast.AngularBindingAttribute
		attr.DirectiveKind = "structural"
		attr.ArgName = name[1:]
	}
}

func splitOnce(s string, sep byte) (before, after string) {
	for i := 0; i < len(s); i++ {
		if s[i] == sep {
			return s[:i], s[i+1:]
		}
	}
	return s, ""
}

func splitArgModifiers(s string) (arg string, mods []string) {
	parts := splitByte(s, '.')
	if len(parts) == 0 {
		return "", nil
	}
	return parts[0], parts[1:]
}

func splitByte(s string, sep byte) []string {
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == sep {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	out = append(out, s[start:])
	return out
}

func hasPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && s[:len(prefix)] == prefix
}

func toLowerASCII(s string) string {
	b := []byte(s)
	changed := false
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
			changed = true
		}
	}
	if !changed {
		return s
	}
	return string(b)
}

// parseComment parses `<!-- ... -->` into a CommentNode holding the raw
// body. Ignore-directive comments (spec section 3 invariant 5) are
// recognized later, by the printer's printComment, not here.
func (p *Parser) parseComment() (*ast.Node, error) {
	start := p.sc.Pos()
	p.sc.Advance(4) // "<!--"
	body, found := p.sc.ReadUntil("-->")
	if !found {
		return nil, p.err(loc.UnterminatedComment, p.spanFrom(start), "unterminated comment")
	}
	p.sc.Advance(3)
	return &ast.Node{Type: ast.CommentNode, Data: body, Span: loc.Span{Start: start, End: p.sc.Pos()}}, nil
}

func (p *Parser) parseCDATA() (*ast.Node, error) {
	start := p.sc.Pos()
	p.sc.Advance(9) // "<![CDATA["
	body, found := p.sc.ReadUntil("]]>")
	if !found {
		return nil, p.err(loc.UnterminatedCDATA, p.spanFrom(start), "unterminated CDATA section")
	}
	p.sc.Advance(3)
	return &ast.Node{Type: ast.CDATANode, Data: body, Span: loc.Span{Start: start, End: p.sc.Pos()}}, nil
}

func (p *Parser) parseDoctype() (*ast.Node, error) {
	start := p.sc.Pos()
	p.sc.Advance(2) // "<!"
	body, found := p.sc.ReadUntil(">")
	if !found {
		return nil, p.err(loc.UnexpectedEndOfInput, p.spanFrom(start), "unterminated doctype")
	}
	p.sc.AdvanceByte()
	return &ast.Node{Type: ast.DoctypeNode, Data: body, Span: loc.Span{Start: start, End: p.sc.Pos()}}, nil
}

// parseText accumulates a run of character data up to the next `<`,
// (for template dialects) the next recognized delimiter, (for Angular)
// the next control-flow `@keyword`, or, when stopAtBrace is set (inside
// an Angular control-flow body), the next `}`.
func (p *Parser) parseText(stopAtBrace bool) (*ast.Node, error) {
	start := p.sc.Pos()
	for !p.sc.AtEnd() {
		if p.sc.Peek(0) == '<' {
			break
		}
		if stopAtBrace && p.sc.Peek(0) == '}' {
			break
		}
		if p.dialect.IsTemplateDialect() && p.atTemplateDelimiter() {
			break
		}
		if p.dialect == dialect.Angular && p.atAngularControlFlowStart() {
			break
		}
		p.sc.AdvanceByte()
	}
	if p.sc.Pos() == start {
		// Nothing matched as text; consume one byte to guarantee progress
		// (e.g. a bare '<' that isn't a valid tag/comment/doctype open).
		if p.sc.AtEnd() {
			return nil, nil
		}
		p.sc.AdvanceByte()
	}
	text := p.src[start:p.sc.Pos()]
	isWS := isAllWhitespace(text)
	return &ast.Node{Type: ast.TextNode, Data: token.UnescapeEntities(text), Span: loc.Span{Start: start, End: p.sc.Pos()}, IsAllWhitespace: isWS}, nil
}

func isAllWhitespace(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isSpaceByte(s[i]) {
			return false
		}
	}
	return true
}

func (p *Parser) atTemplateDelimiter() bool {
	d := p.delims
	if d.interpOpen != "" && p.sc.HasPrefixFold(d.interpOpen) {
		return true
	}
	if d.stmtOpen != "" && p.sc.HasPrefixFold(d.stmtOpen) {
		return true
	}
	if d.commentOpen != "" && p.sc.HasPrefixFold(d.commentOpen) {
		return true
	}
	return false
}

// tryParseTemplateConstruct attaches an interpolation/statement/comment/
// block TemplateNode at the current position if one starts here, per
// spec section 4.2's "Template constructs are attached at the level
// where they appear in the token stream". expectedBlockOpen is the
// enclosing Block's open keyword when parent is itself a Block body
// being parsed (empty otherwise); when a matching end-keyword statement
// is found, its literal text is returned and nothing is appended (the
// caller — parseChildren — treats a non-empty return as its stop
// signal). Returns ("", false, nil) if no delimiter matches here.
func (p *Parser) tryParseTemplateConstruct(parent *ast.Node, expectedBlockOpen string) (string, bool, error) {
	d := p.delims
	switch {
	case d.commentOpen != "" && p.sc.HasPrefixFold(d.commentOpen):
		n, err := p.parseDelimited(d.commentOpen, d.commentClose, ast.TemplateComment)
		if err != nil {
			return "", false, err
		}
		parent.AppendChild(n)
		return "", true, nil

	case d.stmtEndOpen != "" && d.stmtEndOpen != d.stmtOpen && p.sc.HasPrefixFold(d.stmtEndOpen):
		n, err := p.parseDelimited(d.stmtEndOpen, d.stmtClose, ast.Statement)
		if err != nil {
			return "", false, err
		}
		if expectedBlockOpen != "" && n.Data == expectedBlockOpen {
			// n.Data is bare (e.g. "if"): the stmtEndOpen delimiter itself
			// already encodes the "/" (Handlebars/Mustache `{{/if}}`).
			return n.Data, true, nil
		}
		return "", false, p.err(loc.UnmatchedEndTag, n.Span, "unmatched end keyword /"+n.Data)

	case d.stmtOpen != "" && p.sc.HasPrefixFold(d.stmtOpen):
		return p.parseStatementConstruct(parent, expectedBlockOpen)

	case d.interpOpen != "" && p.sc.HasPrefixFold(d.interpOpen):
		n, err := p.parseDelimited(d.interpOpen, d.interpClose, ast.Interpolation)
		if err != nil {
			return "", false, err
		}
		parent.AppendChild(n)
		return "", true, nil
	}
	return "", false, nil
}

// parseStatementConstruct parses one stmtOpen…stmtClose construct. When
// its keyword opens a Block (blockOpenKeywords), it recursively parses
// the Block's children via parseChildren's blockOpen stop condition,
// implementing spec section 4.2's per-dialect end-keyword-stack pairing
// and invariant 6 ("an unmatched end keyword is a syntax error"). For
// dialects that reuse the same delimiter pair for statements and
// interpolations (Vento), a body that isn't a recognized keyword is
// reinterpreted as an Interpolation instead.
func (p *Parser) parseStatementConstruct(parent *ast.Node, expectedBlockOpen string) (string, bool, error) {
	d := p.delims
	n, err := p.parseDelimited(d.stmtOpen, d.stmtClose, ast.Statement)
	if err != nil {
		return "", false, err
	}
	keyword, expr := splitOnce(n.Data, ' ')

	if expectedBlockOpen != "" && blockEndMatches(expectedBlockOpen, keyword) {
		return keyword, true, nil
	}

	if blockOpenKeywords[keyword] {
		n.BlockKeyword, n.ControlFlowExpr = keyword, expr
		endOpen, endClose := d.stmtEndOpen, d.stmtClose
		if endOpen == "" {
			endOpen = d.stmtOpen
		}
		block := &ast.Node{
			Type: ast.TemplateNode, TemplateKind: ast.Block,
			BlockKeyword: keyword, Data: n.Data,
			DelimOpen: n.DelimOpen, DelimClose: n.DelimClose,
			EndDelimOpen: endOpen, EndDelimClose: endClose,
			Span: n.Span,
		}
		endKeyword, err := p.parseChildren(block, childStop{blockOpen: keyword})
		if err != nil {
			return "", false, err
		}
		block.BlockEndKeyword = endKeyword
		block.Span.End = p.sc.Pos()
		parent.AppendChild(block)
		return "", true, nil
	}

	if isEndKeywordForm(keyword) {
		// Didn't match expectedBlockOpen above: a stray or mismatched end
		// keyword (spec section 4.2 invariant 6).
		return "", false, p.err(loc.UnmatchedEndTag, n.Span, "unmatched end keyword "+n.Data)
	}

	if d.stmtOpen == d.interpOpen && !ventoStatementKeywords[keyword] {
		n.TemplateKind = ast.Interpolation
		parent.AppendChild(n)
		return "", true, nil
	}

	n.BlockKeyword, n.ControlFlowExpr = keyword, expr
	parent.AppendChild(n)
	return "", true, nil
}

func (p *Parser) parseDelimited(open, closeTok string, kind ast.TemplateKind) (*ast.Node, error) {
	start := p.sc.Pos()
	p.sc.Advance(len(open))
	body, found := p.sc.ReadUntil(closeTok)
	if !found {
		return nil, p.err(loc.UnclosedBlock, p.spanFrom(start), fmt.Sprintf("unclosed %s", open))
	}
	p.sc.Advance(len(closeTok))
	return &ast.Node{
		Type: ast.TemplateNode, TemplateKind: kind, Data: trimSpaceASCII(body),
		DelimOpen: open, DelimClose: closeTok,
		Span: loc.Span{Start: start, End: p.sc.Pos()},
	}, nil
}

// angularControlFlowKeywords are the `@keyword` forms spec section 8's
// Angular scenario recognizes (if/else/else if/for/empty/switch/case/
// default/defer/placeholder/loading/error).
var angularControlFlowKeywords = map[string]bool{
	"if": true, "else": true, "for": true, "empty": true,
	"switch": true, "case": true, "default": true, "defer": true,
	"placeholder": true, "loading": true, "error": true,
}

// atAngularControlFlowStart reports whether the current position begins
// a recognized `@keyword`, without consuming anything. Used both to stop
// parseText before such a position and to gate tryParseAngularControlFlow,
// so a stray '@' (an email address, a decorator-like usage) is left as
// ordinary text.
func (p *Parser) atAngularControlFlowStart() bool {
	if p.sc.Peek(0) != '@' {
		return false
	}
	pos := p.sc.Pos() + 1
	end := pos
	for end < len(p.src) && token.IsNameChar(p.src[end]) {
		end++
	}
	return angularControlFlowKeywords[p.src[pos:end]]
}

// tryParseAngularControlFlow recognizes `@keyword (expr)? { children }`
// at the current position (Angular's `@if`/`@for`/`@switch`/`@defer`
// family, spec section 8's literal end-to-end scenario 5). It looks
// ahead at the raw source rather than consuming through the scanner, so
// an unrecognized `@` (e.g. a decorator-like usage) is left untouched.
func (p *Parser) tryParseAngularControlFlow(parent *ast.Node) (bool, error) {
	if !p.atAngularControlFlowStart() {
		return false, nil
	}
	start := p.sc.Pos()
	kwStart := start + 1
	kwEnd := kwStart
	for kwEnd < len(p.src) && token.IsNameChar(p.src[kwEnd]) {
		kwEnd++
	}
	keyword := p.src[kwStart:kwEnd]
	p.sc.Advance(kwEnd - start)
	p.sc.SkipWhitespace()

	if keyword == "else" {
		peekStart := p.sc.Pos()
		peekEnd := peekStart
		for peekEnd < len(p.src) && token.IsNameChar(p.src[peekEnd]) {
			peekEnd++
		}
		if p.src[peekStart:peekEnd] == "if" {
			p.sc.Advance(peekEnd - peekStart)
			p.sc.SkipWhitespace()
			keyword = "else if"
		}
	}

	expr := ""
	if p.sc.Peek(0) == '(' {
		p.sc.AdvanceByte()
		exprStart := p.sc.Pos()
		depth := 1
		for !p.sc.AtEnd() && depth > 0 {
			switch p.sc.Peek(0) {
			case '(':
				depth++
			case ')':
				depth--
			}
			if depth == 0 {
				break
			}
			p.sc.AdvanceByte()
		}
		expr = p.src[exprStart:p.sc.Pos()]
		if p.sc.Peek(0) != ')' {
			return false, p.err(loc.UnexpectedEndOfInput, p.spanFrom(start), "unterminated @"+keyword+" condition")
		}
		p.sc.AdvanceByte()
		p.sc.SkipWhitespace()
	}

	if p.sc.Peek(0) != '{' {
		return false, p.err(loc.UnexpectedChar, p.spanFrom(p.sc.Pos()), "expected '{' after @"+keyword)
	}
	p.sc.AdvanceByte()

	n := &ast.Node{Type: ast.AngularControlFlowNode, ControlFlowKeyword: keyword, ControlFlowExpr: expr}
	if _, err := p.parseChildren(n, childStop{brace: true}); err != nil {
		return false, err
	}
	if p.sc.Peek(0) != '}' {
		return false, p.err(loc.UnexpectedEndOfInput, p.spanFrom(p.sc.Pos()), "unterminated @"+keyword+" block")
	}
	p.sc.AdvanceByte()
	n.Span = loc.Span{Start: start, End: p.sc.Pos()}
	parent.AppendChild(n)
	return true, nil
}

func trimSpaceASCII(s string) string {
	i, j := 0, len(s)
	for i < j && isSpaceByte(s[i]) {
		i++
	}
	for j > i && isSpaceByte(s[j-1]) {
		j--
	}
	return s[i:j]
}
