package hostconfig

import (
	"testing"

	"gotest.tools/v3/assert"

	"github.com/markup-fmt/markup-fmt/internal/dialect"
	"github.com/markup-fmt/markup-fmt/internal/options"
)

func TestDecodeAppliesOverridesOverDefaults(t *testing.T) {
	data := []byte(`{
		"printWidth": 100,
		"useTabs": true,
		"quotes": "single",
		"vueComponentCase": "kebabCase",
		"vBindStyle": "short",
		"languageByExtension": {".foo": "svelte"}
	}`)

	opts, routes, err := Decode(data)
	assert.NilError(t, err)
	assert.Equal(t, opts.PrintWidth, 100)
	assert.Equal(t, opts.UseTabs, true)
	assert.Equal(t, opts.Quotes, options.SingleQuote)
	assert.Equal(t, opts.VueComponentCase, options.ComponentCaseKebab)
	assert.Equal(t, opts.VBindStyle, options.DirectiveStyleShort)
	assert.Equal(t, routes[".foo"], dialect.Svelte)
}

func TestDecodeLeavesUnspecifiedFieldsAtDefault(t *testing.T) {
	opts, _, err := Decode([]byte(`{}`))
	assert.NilError(t, err)
	want := options.Default()
	assert.Equal(t, opts.PrintWidth, want.PrintWidth)
	assert.Equal(t, opts.IndentWidth, want.IndentWidth)
	assert.Equal(t, opts.WhitespaceSensitivity, want.WhitespaceSensitivity)
}

func TestDecodeRejectsUnknownExtensionLanguage(t *testing.T) {
	_, _, err := Decode([]byte(`{"languageByExtension": {".x": "cobol"}}`))
	assert.ErrorContains(t, err, "unknown language tag")
}

func TestDecodeRejectsMalformedJSON(t *testing.T) {
	_, _, err := Decode([]byte(`{not json`))
	assert.ErrorContains(t, err, "hostconfig")
}

func TestParseTagAllValues(t *testing.T) {
	cases := map[string]dialect.Tag{
		"html":       dialect.Html,
		"xml":        dialect.Xml,
		"vue":        dialect.Vue,
		"svelte":     dialect.Svelte,
		"astro":      dialect.Astro,
		"angular":    dialect.Angular,
		"jinja":      dialect.Jinja,
		"twig":       dialect.Twig,
		"nunjucks":   dialect.Nunjucks,
		"vento":      dialect.Vento,
		"mustache":   dialect.Mustache,
		"handlebars": dialect.Handlebars,
	}
	for name, want := range cases {
		got, err := ParseTag(name)
		assert.NilError(t, err)
		assert.Equal(t, got, want)
	}
}

func TestParseTagUnknown(t *testing.T) {
	_, err := ParseTag("nope")
	assert.ErrorContains(t, err, "unknown language tag")
}

func TestApplyClosingTagLineBreakAndWhitespaceSensitivity(t *testing.T) {
	always := "always"
	strict := "strict"
	opts := Apply(options.Default(), Raw{
		ClosingTagLineBreakForEmpty: &always,
		WhitespaceSensitivity:       &strict,
	})
	assert.Equal(t, opts.ClosingTagLineBreakEmpty, options.ClosingTagAlways)
	assert.Equal(t, opts.WhitespaceSensitivity, options.WhitespaceStrict)
}
