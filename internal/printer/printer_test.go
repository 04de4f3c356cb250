package printer

import (
	"errors"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/markup-fmt/markup-fmt/internal/ast"
	"github.com/markup-fmt/markup-fmt/internal/dialect"
	"github.com/markup-fmt/markup-fmt/internal/doc"
	"github.com/markup-fmt/markup-fmt/internal/handler"
	"github.com/markup-fmt/markup-fmt/internal/options"
	"github.com/markup-fmt/markup-fmt/internal/parser"
	"github.com/markup-fmt/markup-fmt/internal/render"
)

// format is the same parse/print/render pipeline markupfmt.Format uses,
// reimplemented here since importing the root package would cycle back
// into this one.
func format(t *testing.T, src string, d dialect.Tag, opts options.Options, embed EmbedFormatter) (string, []error) {
	t.Helper()
	root, err := parser.Parse(src, d, parser.ParseOptions{})
	assert.NilError(t, err)

	h := handler.NewHandler(src, "")
	p := New(src, d, opts, h, embed)
	out := p.PrintDocument(root)
	s := render.Render(doc.ConcatOf(out, doc.HardlineDoc), render.Options{
		PrintWidth:  opts.PrintWidth,
		IndentWidth: opts.IndentWidth,
		UseTabs:     opts.UseTabs,
		LineBreak:   opts.LineBreak.String(),
	})
	return s, p.Failures()
}

func TestPrintVueBindShortByDefault(t *testing.T) {
	out, _ := format(t, `<div v-bind:foo="bar"></div>`, dialect.Vue, options.Default(), nil)
	assert.Equal(t, out, `<div :foo="bar"></div>`+"\n")
}

func TestPrintVueBindSameNameShorthand(t *testing.T) {
	o := options.Default()
	o.VBindSameNameShortHand = options.True
	out, _ := format(t, `<div :foo="foo"></div>`, dialect.Vue, o, nil)
	assert.Equal(t, out, `<div :foo></div>`+"\n")
}

func TestPrintVueOnShortByDefault(t *testing.T) {
	out, _ := format(t, `<div v-on:click="go"></div>`, dialect.Vue, options.Default(), nil)
	assert.Equal(t, out, `<div @click="go"></div>`+"\n")
}

func TestPrintVueOnLongStyle(t *testing.T) {
	o := options.Default()
	o.VOnStyle = options.DirectiveStyleLong
	out, _ := format(t, `<div @click="go"></div>`, dialect.Vue, o, nil)
	assert.Equal(t, out, `<div v-on:click="go"></div>`+"\n")
}

func TestPrintVForDelimiterRewrittenToOf(t *testing.T) {
	o := options.Default()
	o.VForDelimiterStyle = options.VForDelimiterOf
	out, _ := format(t, `<li v-for="item in items"></li>`, dialect.Vue, o, nil)
	assert.Equal(t, out, `<li v-for="item of items"></li>`+"\n")
}

func TestPrintVForWithIndexKeepsBothSides(t *testing.T) {
	// Spec pattern is `item(, index) (in|of) list` — the parens are
	// grammar notation for optionality, not literal Vue parens.
	o := options.Default()
	o.VForDelimiterStyle = options.VForDelimiterOf
	out, _ := format(t, `<li v-for="item, i in items"></li>`, dialect.Vue, o, nil)
	assert.Equal(t, out, `<li v-for="item, i of items"></li>`+"\n")
}

func TestPrintSvelteBindingShorthandWhenNameMatches(t *testing.T) {
	o := options.Default()
	o.SvelteDirectiveShorthand = options.True
	out, _ := format(t, `<input bind:value={value} />`, dialect.Svelte, o, nil)
	assert.Equal(t, out, `<input {bind:value} />`+"\n")
}

func TestPrintSvelteBindingKeepsExpressionWhenNamesDiffer(t *testing.T) {
	out, _ := format(t, `<input bind:value={name} />`, dialect.Svelte, options.Default(), nil)
	assert.Equal(t, out, `<input bind:value={name} />`+"\n")
}

func TestPrintAngularEventBinding(t *testing.T) {
	out, _ := format(t, `<button (click)="go()"></button>`, dialect.Angular, options.Default(), nil)
	assert.Equal(t, out, `<button (click)="go()"></button>`+"\n")
}

func TestPrintAngularPropAndBananaBinding(t *testing.T) {
	out, _ := format(t, `<input [disabled]="isDisabled" [(ngModel)]="name" />`, dialect.Angular, options.Default(), nil)
	assert.Equal(t, out, `<input [disabled]="isDisabled" [(ngModel)]="name" />`+"\n")
}

func TestPrintAngularStructuralDirective(t *testing.T) {
	out, _ := format(t, `<div *ngIf="show"></div>`, dialect.Angular, options.Default(), nil)
	assert.Equal(t, out, `<div *ngIf="show"></div>`+"\n")
}

func TestPrintDoctypeLowercase(t *testing.T) {
	o := options.Default()
	o.DoctypeKeywordCase = options.DoctypeLower
	out, _ := format(t, `<!DOCTYPE html>`, dialect.Html, o, nil)
	assert.Equal(t, out, `<!doctype html>`+"\n")
}

func TestPrintSingleLineCommentReformatted(t *testing.T) {
	o := options.Default()
	o.FormatComments = true
	out, _ := format(t, `<!--   hi   -->`, dialect.Html, o, nil)
	assert.Equal(t, out, `<!-- hi -->`+"\n")
}

func TestPrintCommentLeftVerbatimByDefault(t *testing.T) {
	out, _ := format(t, `<!--   hi   -->`, dialect.Html, options.Default(), nil)
	assert.Equal(t, out, `<!--   hi   -->`+"\n")
}

func TestPrintEmbedFailureIsRecordedAndSourceIsKeptVerbatim(t *testing.T) {
	boom := errors.New("boom")
	embed := func(code string, d EmbedDescriptor) (string, error) { return "", boom }
	out, failures := format(t, `<script>const a=1;</script>`, dialect.Html, options.Default(), embed)
	assert.Equal(t, out, "<script>const a=1;</script>\n")
	assert.Equal(t, len(failures), 1)
	assert.ErrorContains(t, failures[0], "boom")
}

func TestPrintVSlotDefaultAndNamed(t *testing.T) {
	o := options.Default()
	o.VSlotStyle = options.VSlotOverrides{Base: options.VSlotStyleVSlot}
	out, _ := format(t, `<template v-slot:header="props"></template>`, dialect.Vue, o, nil)
	assert.Equal(t, out, `<template #header="props"></template>`+"\n")

	out, _ = format(t, `<template v-slot="props"></template>`, dialect.Vue, o, nil)
	assert.Equal(t, out, `<template v-slot="props"></template>`+"\n")
}

// Namespace-driven self-closing resolution (SVG) has no parser path that
// assigns ast.SVGNamespace (the parser never infers namespaces from an
// enclosing <svg>), so it is exercised directly against a hand-built node
// instead of through source text.
func TestPrintSVGSelfClosingHasNoLeadingSpace(t *testing.T) {
	n := &ast.Node{Type: ast.ElementNode, Data: "circle", Namespace: ast.SVGNamespace, ClosingForm: ast.SelfClosed}
	p := New("", dialect.Html, options.Default(), handler.NewHandler("", ""), nil)
	out := render.Render(doc.ConcatOf(p.PrintNode(n, printCtx{}), doc.HardlineDoc), render.Options{PrintWidth: 80, IndentWidth: 2, LineBreak: "\n"})
	assert.Equal(t, out, "<circle/>\n")
}

func TestPrintJinjaBlockRoundTripsItsOwnDelimiters(t *testing.T) {
	out, _ := format(t, `{% if cond %}<b>x</b>{% endif %}`, dialect.Jinja, options.Default(), nil)
	assert.Equal(t, out, "{% if cond %}\n  <b>x</b>\n{% endif %}\n")
}

func TestPrintTwigBlockUsesSlashEndForm(t *testing.T) {
	out, _ := format(t, `{% if cond %}x{% /if %}`, dialect.Twig, options.Default(), nil)
	assert.Equal(t, out, "{% if cond %}\n  x\n{% /if %}\n")
}

func TestPrintVentoStatementUsesBraceDelimitersNotJinjas(t *testing.T) {
	out, _ := format(t, `{{ if cond }}x{{ /if }}`, dialect.Vento, options.Default(), nil)
	assert.Equal(t, out, "{{ if cond }}\n  x\n{{ /if }}\n")
}

func TestPrintVentoInterpolationDisambiguatedFromStatement(t *testing.T) {
	out, _ := format(t, `{{ user.name }}`, dialect.Vento, options.Default(), nil)
	assert.Equal(t, out, "{{ user.name }}\n")
}

func TestPrintHandlebarsBlockUsesDistinctCompactEndTag(t *testing.T) {
	out, _ := format(t, `{{#if cond}}x{{/if}}`, dialect.Handlebars, options.Default(), nil)
	assert.Equal(t, out, "{{# if cond }}\n  x\n{{/if}}\n")
}

func TestPrintAngularIfElseSameLineByDefault(t *testing.T) {
	out, _ := format(t, `@if (cond) {<b>yes</b>} @else {<i>no</i>}`, dialect.Angular, options.Default(), nil)
	assert.Equal(t, out, "@if (cond) {\n  <b>yes</b>\n} @else {\n  <i>no</i>\n}\n")
}

func TestPrintAngularIfElseHardlineWhenSameLineDisabled(t *testing.T) {
	o := options.Default()
	o.AngularNextControlFlowSameLine = false
	out, _ := format(t, `@if (cond) {<b>yes</b>} @else {<i>no</i>}`, dialect.Angular, o, nil)
	assert.Equal(t, out, "@if (cond) {\n  <b>yes</b>\n}\n@else {\n  <i>no</i>\n}\n")
}

func TestPrintIgnoreCommentDirectivePreservesNextSiblingVerbatim(t *testing.T) {
	out, _ := format(t, "<!-- markup-fmt-ignore -->\n<div  >  </div>", dialect.Html, options.Default(), nil)
	assert.Equal(t, out, "<!-- markup-fmt-ignore -->\n<div  >  </div>\n")
}
