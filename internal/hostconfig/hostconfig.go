// Package hostconfig decodes the host-plugin JSON configuration schema
// spec section 6 describes ("a separate host wrapper reads configuration
// in a host-defined JSON schema... and routes files by extension to the
// correct language tag"), and resolves it into an internal/options.Options
// value plus a per-extension dialect table.
//
// Grounded on the teacher's own JSON decoding choice: the pack's
// go.mod requires github.com/go-json-experiment/json, the
// then-experimental encoding/json/v2 successor, rather than stdlib
// encoding/json, so this config reader uses it too.
package hostconfig

import (
	"fmt"

	"github.com/go-json-experiment/json"

	"github.com/markup-fmt/markup-fmt/internal/dialect"
	"github.com/markup-fmt/markup-fmt/internal/options"
)

// Raw is the wire shape of the host JSON config: a flat extension of
// the core Options table (spec section 6), plus the extension-to-tag
// routing map. Field names mirror the option table's own external
// names.
type Raw struct {
	PrintWidth  *int    `json:"printWidth"`
	UseTabs     *bool   `json:"useTabs"`
	IndentWidth *int    `json:"indentWidth"`
	LineBreak   *string `json:"lineBreak"`
	Quotes      *string `json:"quotes"`

	FormatComments *bool `json:"formatComments"`

	ScriptIndent *bool `json:"scriptIndent"`
	StyleIndent  *bool `json:"styleIndent"`

	ClosingBracketSameLine      *bool   `json:"closingBracketSameLine"`
	ClosingTagLineBreakForEmpty *string `json:"closingTagLineBreakForEmpty"`
	MaxAttrsPerLine             *int    `json:"maxAttrsPerLine"`
	PreferAttrsSingleLine       *bool   `json:"preferAttrsSingleLine"`
	SingleAttrSameLine          *bool   `json:"singleAttrSameLine"`

	WhitespaceSensitivity          *string `json:"whitespaceSensitivity"`
	ComponentWhitespaceSensitivity *string `json:"componentWhitespaceSensitivity"`

	DoctypeKeywordCase *string `json:"doctypeKeywordCase"`

	VBindStyle         *string `json:"vBindStyle"`
	VOnStyle           *string `json:"vOnStyle"`
	VForDelimiterStyle *string `json:"vForDelimiterStyle"`
	VSlotStyle         *string `json:"vSlotStyle"`

	VBindSameNameShortHand   *bool `json:"vBindSameNameShortHand"`
	SvelteAttrShorthand      *bool `json:"svelteAttrShorthand"`
	SvelteDirectiveShorthand *bool `json:"svelteDirectiveShorthand"`
	AstroAttrShorthand       *bool `json:"astroAttrShorthand"`

	StrictSvelteAttr *bool `json:"strictSvelteAttr"`

	VueComponentCase *string `json:"vueComponentCase"`
	VueCustomBlock   *string `json:"vue.customBlock"`

	AngularNextControlFlowSameLine *bool `json:"angularNextControlFlowSameLine"`

	HTMLParseJSExpressions *bool `json:"htmlParseJsExpressions"`

	IgnoreCommentDirective     *string `json:"ignoreCommentDirective"`
	IgnoreFileCommentDirective *string `json:"ignoreFileCommentDirective"`

	// LanguageByExtension routes a file extension (".vue", ".astro", ...)
	// to a language tag name, the host wrapper's file-routing table.
	LanguageByExtension map[string]string `json:"languageByExtension"`
}

// Decode parses raw JSON config bytes into an Options value layered
// over options.Default(), plus the extension routing table resolved to
// dialect.Tag values.
func Decode(data []byte) (options.Options, map[string]dialect.Tag, error) {
	var raw Raw
	if err := json.Unmarshal(data, &raw); err != nil {
		return options.Options{}, nil, fmt.Errorf("hostconfig: %w", err)
	}
	opts := Apply(options.Default(), raw)
	routes := make(map[string]dialect.Tag, len(raw.LanguageByExtension))
	for ext, name := range raw.LanguageByExtension {
		tag, err := ParseTag(name)
		if err != nil {
			return options.Options{}, nil, fmt.Errorf("hostconfig: extension %q: %w", ext, err)
		}
		routes[ext] = tag
	}
	return opts, routes, nil
}

// Apply layers raw's present fields over base, leaving base's values
// (spec section 6's defaults) wherever raw left a field null/absent.
func Apply(base options.Options, raw Raw) options.Options {
	o := base
	if raw.PrintWidth != nil {
		o.PrintWidth = *raw.PrintWidth
	}
	if raw.UseTabs != nil {
		o.UseTabs = *raw.UseTabs
	}
	if raw.IndentWidth != nil {
		o.IndentWidth = *raw.IndentWidth
	}
	if raw.LineBreak != nil {
		if *raw.LineBreak == "crlf" {
			o.LineBreak = options.CRLF
		} else {
			o.LineBreak = options.LF
		}
	}
	if raw.Quotes != nil {
		if *raw.Quotes == "single" {
			o.Quotes = options.SingleQuote
		} else {
			o.Quotes = options.DoubleQuote
		}
	}
	if raw.FormatComments != nil {
		o.FormatComments = *raw.FormatComments
	}
	if raw.ScriptIndent != nil {
		o.ScriptIndent.Base = *raw.ScriptIndent
	}
	if raw.StyleIndent != nil {
		o.StyleIndent.Base = *raw.StyleIndent
	}
	if raw.ClosingBracketSameLine != nil {
		o.ClosingBracketSameLine = *raw.ClosingBracketSameLine
	}
	if raw.ClosingTagLineBreakForEmpty != nil {
		o.ClosingTagLineBreakEmpty = parseClosingTagLineBreak(*raw.ClosingTagLineBreakForEmpty)
	}
	if raw.MaxAttrsPerLine != nil {
		o.MaxAttrsPerLine = *raw.MaxAttrsPerLine
	}
	if raw.PreferAttrsSingleLine != nil {
		o.PreferAttrsSingleLine = *raw.PreferAttrsSingleLine
	}
	if raw.SingleAttrSameLine != nil {
		o.SingleAttrSameLine = *raw.SingleAttrSameLine
	}
	if raw.WhitespaceSensitivity != nil {
		o.WhitespaceSensitivity = parseWhitespaceSensitivity(*raw.WhitespaceSensitivity)
	}
	if raw.ComponentWhitespaceSensitivity != nil {
		o.ComponentWhitespaceSensitivity = parseTriStateWS(*raw.ComponentWhitespaceSensitivity)
	}
	if raw.DoctypeKeywordCase != nil {
		o.DoctypeKeywordCase = parseDoctypeCase(*raw.DoctypeKeywordCase)
	}
	if raw.VBindStyle != nil {
		o.VBindStyle = parseDirectiveStyle(*raw.VBindStyle)
	}
	if raw.VOnStyle != nil {
		o.VOnStyle = parseDirectiveStyle(*raw.VOnStyle)
	}
	if raw.VForDelimiterStyle != nil {
		o.VForDelimiterStyle = parseVForStyle(*raw.VForDelimiterStyle)
	}
	if raw.VSlotStyle != nil {
		o.VSlotStyle.Base = parseVSlotStyle(*raw.VSlotStyle)
	}
	if raw.VBindSameNameShortHand != nil {
		o.VBindSameNameShortHand = options.FromBool(*raw.VBindSameNameShortHand)
	}
	if raw.SvelteAttrShorthand != nil {
		o.SvelteAttrShorthand = options.FromBool(*raw.SvelteAttrShorthand)
	}
	if raw.SvelteDirectiveShorthand != nil {
		o.SvelteDirectiveShorthand = options.FromBool(*raw.SvelteDirectiveShorthand)
	}
	if raw.AstroAttrShorthand != nil {
		o.AstroAttrShorthand = options.FromBool(*raw.AstroAttrShorthand)
	}
	if raw.StrictSvelteAttr != nil {
		o.StrictSvelteAttr = *raw.StrictSvelteAttr
	}
	if raw.VueComponentCase != nil {
		o.VueComponentCase = parseVueComponentCase(*raw.VueComponentCase)
	}
	if raw.VueCustomBlock != nil {
		o.VueCustomBlock = parseCustomBlockMode(*raw.VueCustomBlock)
	}
	if raw.AngularNextControlFlowSameLine != nil {
		o.AngularNextControlFlowSameLine = *raw.AngularNextControlFlowSameLine
	}
	if raw.HTMLParseJSExpressions != nil {
		o.HTMLParseJSExpressions = *raw.HTMLParseJSExpressions
	}
	if raw.IgnoreCommentDirective != nil {
		o.IgnoreCommentDirective = *raw.IgnoreCommentDirective
	}
	if raw.IgnoreFileCommentDirective != nil {
		o.IgnoreFileCommentDirective = *raw.IgnoreFileCommentDirective
	}
	return o
}

func parseClosingTagLineBreak(s string) options.ClosingTagLineBreak {
	switch s {
	case "always":
		return options.ClosingTagAlways
	case "never":
		return options.ClosingTagNever
	default:
		return options.ClosingTagFit
	}
}

func parseWhitespaceSensitivity(s string) options.WhitespaceSensitivity {
	switch s {
	case "strict":
		return options.WhitespaceStrict
	case "ignore":
		return options.WhitespaceIgnore
	default:
		return options.WhitespaceCSS
	}
}

func parseTriStateWS(s string) options.TriState {
	switch s {
	case "ignore":
		return options.True
	case "strict":
		return options.False
	default:
		return options.Unset
	}
}

func parseDoctypeCase(s string) options.DoctypeKeywordCase {
	switch s {
	case "lower":
		return options.DoctypeLower
	case "ignore":
		return options.DoctypeIgnore
	default:
		return options.DoctypeUpper
	}
}

func parseDirectiveStyle(s string) options.DirectiveStyle {
	switch s {
	case "short":
		return options.DirectiveStyleShort
	case "long":
		return options.DirectiveStyleLong
	default:
		return options.DirectiveStyleUnset
	}
}

func parseVForStyle(s string) options.VForDelimiterStyle {
	switch s {
	case "in":
		return options.VForDelimiterIn
	case "of":
		return options.VForDelimiterOf
	default:
		return options.VForDelimiterUnset
	}
}

func parseVSlotStyle(s string) options.VSlotStyle {
	switch s {
	case "short":
		return options.VSlotStyleShort
	case "long":
		return options.VSlotStyleLong
	case "vSlot":
		return options.VSlotStyleVSlot
	default:
		return options.VSlotStyleUnset
	}
}

func parseVueComponentCase(s string) options.VueComponentCase {
	switch s {
	case "pascalCase":
		return options.ComponentCasePascal
	case "kebabCase":
		return options.ComponentCaseKebab
	default:
		return options.ComponentCaseIgnore
	}
}

func parseCustomBlockMode(s string) options.CustomBlockMode {
	switch s {
	case "squash":
		return options.CustomBlockSquash
	case "none":
		return options.CustomBlockNone
	default:
		return options.CustomBlockLangAttribute
	}
}

// ParseTag resolves a language-tag name from the host config's routing
// table to a dialect.Tag.
func ParseTag(name string) (dialect.Tag, error) {
	switch name {
	case "html":
		return dialect.Html, nil
	case "xml":
		return dialect.Xml, nil
	case "vue":
		return dialect.Vue, nil
	case "svelte":
		return dialect.Svelte, nil
	case "astro":
		return dialect.Astro, nil
	case "angular":
		return dialect.Angular, nil
	case "jinja":
		return dialect.Jinja, nil
	case "twig":
		return dialect.Twig, nil
	case "nunjucks":
		return dialect.Nunjucks, nil
	case "vento":
		return dialect.Vento, nil
	case "mustache":
		return dialect.Mustache, nil
	case "handlebars":
		return dialect.Handlebars, nil
	default:
		return 0, fmt.Errorf("unknown language tag %q", name)
	}
}
