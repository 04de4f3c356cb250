package parser

import (
	"testing"

	"gotest.tools/v3/assert"

	"github.com/markup-fmt/markup-fmt/internal/ast"
	"github.com/markup-fmt/markup-fmt/internal/dialect"
	"github.com/markup-fmt/markup-fmt/internal/loc"
)

func mustParse(t *testing.T, src string, d dialect.Tag) *ast.Node {
	t.Helper()
	root, err := Parse(src, d, ParseOptions{})
	assert.NilError(t, err)
	return root
}

func TestParseSimpleElement(t *testing.T) {
	root := mustParse(t, `<div id="a">hi</div>`, dialect.Html)
	div := root.FirstChild
	assert.Equal(t, div.Type, ast.ElementNode)
	assert.Equal(t, div.Data, "div")
	assert.Equal(t, div.ClosingForm, ast.Paired)
	assert.Equal(t, len(div.Attr), 1)
	assert.Equal(t, div.Attr[0].Key, "id")
	assert.Equal(t, div.Attr[0].Val, "a")
	assert.Equal(t, div.Attr[0].Quote, ast.DoubleQuote)
	text := div.FirstChild
	assert.Equal(t, text.Type, ast.TextNode)
	assert.Equal(t, text.Data, "hi")
}

func TestParseVoidElementHasNoChildren(t *testing.T) {
	root := mustParse(t, `<br>`, dialect.Html)
	br := root.FirstChild
	assert.Equal(t, br.ClosingForm, ast.VoidImplicit)
	assert.Assert(t, br.Empty())
}

func TestParseSelfClosedElement(t *testing.T) {
	root := mustParse(t, `<MyComponent />`, dialect.Astro)
	n := root.FirstChild
	assert.Equal(t, n.Data, "MyComponent")
	assert.Equal(t, n.ClosingForm, ast.SelfClosed)
}

func TestParseRawTextElementNotTokenized(t *testing.T) {
	root := mustParse(t, `<script>const a = 1 < 2;</script>`, dialect.Html)
	script := root.FirstChild
	assert.Assert(t, script.RawTextElement)
	assert.Equal(t, script.FirstChild.Data, "const a = 1 < 2;")
}

func TestParseComment(t *testing.T) {
	root := mustParse(t, `<!-- hello -->`, dialect.Html)
	assert.Equal(t, root.FirstChild.Type, ast.CommentNode)
}

func TestParseDoctype(t *testing.T) {
	root := mustParse(t, `<!doctype html><html></html>`, dialect.Html)
	assert.Equal(t, root.FirstChild.Type, ast.DoctypeNode)
	assert.Equal(t, root.FirstChild.NextSibling.Data, "html")
}

func TestParseUnclosedRawTextIsSyntaxError(t *testing.T) {
	_, err := Parse(`<script>var a = 1;`, dialect.Html, ParseOptions{})
	assert.ErrorContains(t, err, "unterminated")
	se, ok := err.(*loc.SyntaxError)
	assert.Assert(t, ok)
	assert.Equal(t, se.Kind, loc.UnexpectedEndOfInput)
}

func TestParseDoesNotAutoclose(t *testing.T) {
	// <li> is not closed; no implicit autoclosing per spec section 4.2, so
	// the second <li> nests inside the first instead of sitting beside it.
	root := mustParse(t, `<ul><li>a<li>b</li></ul>`, dialect.Html)
	ul := root.FirstChild
	firstLi := ul.FirstChild
	assert.Equal(t, firstLi.Data, "li")
	secondLi := firstLi.LastChild
	assert.Equal(t, secondLi.Data, "li")
}

func TestParseVueShorthandBind(t *testing.T) {
	root := mustParse(t, `<div :class="foo" @click.prevent="bar" v-if="cond"></div>`, dialect.Vue)
	div := root.FirstChild
	assert.Equal(t, div.Attr[0].DirectiveKind, "bind")
	assert.Equal(t, div.Attr[0].ArgName, "class")
	assert.Equal(t, div.Attr[1].DirectiveKind, "on")
	assert.Equal(t, div.Attr[1].ArgName, "click")
	assert.DeepEqual(t, div.Attr[1].Modifiers, []string{"prevent"})
	assert.Equal(t, div.Attr[2].DirectiveKind, "if")
}

func TestParseSvelteBinding(t *testing.T) {
	root := mustParse(t, `<input bind:value={name} />`, dialect.Svelte)
	input := root.FirstChild
	assert.Equal(t, input.Attr[0].Type, ast.SvelteBindingAttribute)
	assert.Equal(t, input.Attr[0].DirectiveKind, "bind")
	assert.Equal(t, input.Attr[0].ArgName, "value")
}

func TestParseVueDirectiveSurvivesBraceValue(t *testing.T) {
	// A brace-expression value must not clobber the directive
	// classification back to a plain ExpressionAttribute.
	root := mustParse(t, `<div :class={active}></div>`, dialect.Vue)
	div := root.FirstChild
	assert.Equal(t, div.Attr[0].Type, ast.VueDirectiveAttribute)
	assert.Equal(t, div.Attr[0].DirectiveKind, "bind")
	assert.Equal(t, div.Attr[0].ArgName, "class")
}

func TestParseAngularBindingForms(t *testing.T) {
	root := mustParse(t, `<button (click)="go()" [disabled]="isDisabled" *ngIf="show"></button>`, dialect.Angular)
	btn := root.FirstChild
	assert.Equal(t, btn.Attr[0].DirectiveKind, "event")
	assert.Equal(t, btn.Attr[0].ArgName, "click")
	assert.Equal(t, btn.Attr[1].DirectiveKind, "prop")
	assert.Equal(t, btn.Attr[1].ArgName, "disabled")
	assert.Equal(t, btn.Attr[2].DirectiveKind, "structural")
	assert.Equal(t, btn.Attr[2].ArgName, "ngIf")
}

func TestParseAstroExpressionAttr(t *testing.T) {
	root := mustParse(t, `<div class={active}></div>`, dialect.Astro)
	div := root.FirstChild
	assert.Equal(t, div.Attr[0].Type, ast.ExpressionAttribute)
	assert.Equal(t, div.Attr[0].Val, "active")
}

func TestParseEmptyAttribute(t *testing.T) {
	root := mustParse(t, `<input disabled>`, dialect.Html)
	assert.Equal(t, root.FirstChild.Attr[0].Type, ast.EmptyAttribute)
}

func TestParseUnquotedAttrValue(t *testing.T) {
	root := mustParse(t, `<div class=foo></div>`, dialect.Html)
	assert.Equal(t, root.FirstChild.Attr[0].Val, "foo")
	assert.Equal(t, root.FirstChild.Attr[0].Quote, ast.UnquotedValue)
}

func TestParseJinjaStatementCarriesItsOwnDelimiters(t *testing.T) {
	root := mustParse(t, `{% set x = 1 %}`, dialect.Jinja)
	n := root.FirstChild
	assert.Equal(t, n.Type, ast.TemplateNode)
	assert.Equal(t, n.TemplateKind, ast.Statement)
	assert.Equal(t, n.DelimOpen, "{%")
	assert.Equal(t, n.DelimClose, "%}")
}

func TestParseJinjaIfBuildsBlockWithChildrenAndEndKeyword(t *testing.T) {
	root := mustParse(t, `{% if cond %}<b>x</b>{% endif %}`, dialect.Jinja)
	block := root.FirstChild
	assert.Equal(t, block.Type, ast.TemplateNode)
	assert.Equal(t, block.TemplateKind, ast.Block)
	assert.Equal(t, block.BlockKeyword, "if")
	assert.Equal(t, block.BlockEndKeyword, "endif")
	assert.Assert(t, block.FirstChild != nil)
	assert.Equal(t, block.FirstChild.Data, "b")
	assert.Assert(t, block.NextSibling == nil)
}

func TestParseJinjaNestedIfEachPairsItsOwnEnd(t *testing.T) {
	root := mustParse(t, `{% if a %}{% if b %}x{% endif %}{% endif %}`, dialect.Jinja)
	outer := root.FirstChild
	assert.Equal(t, outer.BlockKeyword, "if")
	assert.Equal(t, outer.BlockEndKeyword, "endif")
	inner := outer.FirstChild
	assert.Equal(t, inner.Type, ast.TemplateNode)
	assert.Equal(t, inner.TemplateKind, ast.Block)
	assert.Equal(t, inner.BlockKeyword, "if")
	assert.Equal(t, inner.BlockEndKeyword, "endif")
	assert.Assert(t, inner.NextSibling == nil)
}

func TestParseTwigEndIfSlashFormAlsoPairs(t *testing.T) {
	root := mustParse(t, `{% if cond %}x{% /if %}`, dialect.Twig)
	block := root.FirstChild
	assert.Equal(t, block.BlockEndKeyword, "/if")
}

func TestParseUnmatchedEndKeywordIsSyntaxError(t *testing.T) {
	_, err := Parse(`{% endif %}`, dialect.Jinja, ParseOptions{})
	assert.Assert(t, err != nil)
	se, ok := err.(*loc.SyntaxError)
	assert.Assert(t, ok)
	assert.Equal(t, se.Kind, loc.UnmatchedEndTag)
}

func TestParseUnclosedBlockIsSyntaxError(t *testing.T) {
	_, err := Parse(`{% if cond %}x`, dialect.Jinja, ParseOptions{})
	assert.Assert(t, err != nil)
	se, ok := err.(*loc.SyntaxError)
	assert.Assert(t, ok)
	assert.Equal(t, se.Kind, loc.UnclosedBlock)
}

func TestParseVentoDisambiguatesStatementFromInterpolation(t *testing.T) {
	root := mustParse(t, `{{ if cond }}x{{ /if }}{{ user.name }}`, dialect.Vento)
	block := root.FirstChild
	assert.Equal(t, block.TemplateKind, ast.Block)
	assert.Equal(t, block.BlockKeyword, "if")
	assert.Equal(t, block.BlockEndKeyword, "/if")
	interp := block.NextSibling
	assert.Equal(t, interp.TemplateKind, ast.Interpolation)
	assert.Equal(t, interp.Data, "user.name")
}

func TestParseHandlebarsSectionUsesDistinctEndDelimiter(t *testing.T) {
	root := mustParse(t, `{{#if cond}}x{{/if}}`, dialect.Handlebars)
	block := root.FirstChild
	assert.Equal(t, block.TemplateKind, ast.Block)
	assert.Equal(t, block.DelimOpen, "{{#")
	assert.Equal(t, block.BlockEndKeyword, "if")
	assert.Equal(t, block.EndDelimOpen, "{{/")
}

func TestParseAngularIfElseControlFlow(t *testing.T) {
	root := mustParse(t, `@if (cond) {<b>yes</b>} @else {<i>no</i>}`, dialect.Angular)
	ifNode := root.FirstChild
	assert.Equal(t, ifNode.Type, ast.AngularControlFlowNode)
	assert.Equal(t, ifNode.ControlFlowKeyword, "if")
	assert.Equal(t, ifNode.ControlFlowExpr, "cond")
	assert.Equal(t, ifNode.FirstChild.Data, "b")

	gap := ifNode.NextSibling
	assert.Equal(t, gap.Type, ast.TextNode)
	assert.Assert(t, gap.IsAllWhitespace)
	elseNode := gap.NextSibling
	assert.Equal(t, elseNode.Type, ast.AngularControlFlowNode)
	assert.Equal(t, elseNode.ControlFlowKeyword, "else")
	assert.Equal(t, elseNode.ControlFlowExpr, "")
	assert.Equal(t, elseNode.FirstChild.Data, "i")
}

func TestParseAngularElseIfControlFlow(t *testing.T) {
	root := mustParse(t, `@if (a) {x} @else if (b) {y}`, dialect.Angular)
	// The space between `}` and `@else` is kept as a whitespace text node.
	elseIf := root.FirstChild.NextSibling.NextSibling
	assert.Equal(t, elseIf.ControlFlowKeyword, "else if")
	assert.Equal(t, elseIf.ControlFlowExpr, "b")
}

func TestParseAngularPlainAtIsNotControlFlow(t *testing.T) {
	root := mustParse(t, `<p>user@example.com</p>`, dialect.Angular)
	p := root.FirstChild
	assert.Equal(t, p.FirstChild.Type, ast.TextNode)
	assert.Equal(t, p.FirstChild.Data, "user@example.com")
}
