// Package options defines the flat Options struct spec section 6 tables,
// generalized from the teacher's internal/transform.TransformOptions
// (a flat struct of primitives, built via a constructor that fills in
// defaults) into the full formatter option set.
package options

// TriState models a bool-or-null option (spec section 6): Unset means
// "preserve source", the other two values force a rewrite.
type TriState int

const (
	Unset TriState = iota
	False
	True
)

func FromBool(b bool) TriState {
	if b {
		return True
	}
	return False
}

func (t TriState) Bool(fallback bool) bool {
	switch t {
	case True:
		return true
	case False:
		return false
	default:
		return fallback
	}
}

type LineBreak int

const (
	LF LineBreak = iota
	CRLF
)

func (l LineBreak) String() string {
	if l == CRLF {
		return "\r\n"
	}
	return "\n"
}

type Quote int

const (
	DoubleQuote Quote = iota
	SingleQuote
)

type WhitespaceSensitivity int

const (
	WhitespaceCSS WhitespaceSensitivity = iota
	WhitespaceStrict
	WhitespaceIgnore
)

type ClosingTagLineBreak int

const (
	ClosingTagFit ClosingTagLineBreak = iota
	ClosingTagAlways
	ClosingTagNever
)

type DoctypeKeywordCase int

const (
	DoctypeUpper DoctypeKeywordCase = iota
	DoctypeLower
	DoctypeIgnore
)

// DirectiveStyle models the short/long/null tri-state shared by vBindStyle
// and vOnStyle (spec section 6).
type DirectiveStyle int

const (
	DirectiveStyleUnset DirectiveStyle = iota
	DirectiveStyleShort
	DirectiveStyleLong
)

// VForDelimiterStyle models vForDelimiterStyle's in/of/null tri-state.
type VForDelimiterStyle int

const (
	VForDelimiterUnset VForDelimiterStyle = iota
	VForDelimiterIn
	VForDelimiterOf
)

// VSlotStyle models vSlotStyle's short/long/vSlot/null set.
type VSlotStyle int

const (
	VSlotStyleUnset VSlotStyle = iota
	VSlotStyleShort
	VSlotStyleLong
	VSlotStyleVSlot
)

type VueComponentCase int

const (
	ComponentCaseIgnore VueComponentCase = iota
	ComponentCasePascal
	ComponentCaseKebab
)

type CustomBlockMode int

const (
	CustomBlockLangAttribute CustomBlockMode = iota
	CustomBlockSquash
	CustomBlockNone
)

// SelfClosing carries the per-category self-closing policy (html.normal,
// html.void, component, svg, mathml), each independently tri-state.
type SelfClosing struct {
	HTMLNormal TriState
	HTMLVoid   TriState
	Component  TriState
	SVG        TriState
	MathML     TriState
}

// ScriptStyleIndent carries the scriptIndent/styleIndent override table:
// a base value plus per-dialect overrides (spec section 6:
// "html./vue./svelte./astro.{script,style}Indent").
type ScriptStyleIndent struct {
	Base   bool
	HTML   TriState
	Vue    TriState
	Svelte TriState
	Astro  TriState
}

func (s ScriptStyleIndent) For(d string) bool {
	var override TriState
	switch d {
	case "html":
		override = s.HTML
	case "vue":
		override = s.Vue
	case "svelte":
		override = s.Svelte
	case "astro":
		override = s.Astro
	}
	return override.Bool(s.Base)
}

// VSlotOverrides carries the component.*/default.*/named.* overrides for
// vSlotStyle (spec section 6).
type VSlotOverrides struct {
	Base      VSlotStyle
	Component VSlotStyle
	Default   VSlotStyle
	Named     VSlotStyle
}

func (v VSlotOverrides) Resolve(isComponent, isDefault, isNamed bool) VSlotStyle {
	if isComponent && v.Component != VSlotStyleUnset {
		return v.Component
	}
	if isDefault && v.Default != VSlotStyleUnset {
		return v.Default
	}
	if isNamed && v.Named != VSlotStyleUnset {
		return v.Named
	}
	return v.Base
}

// Options is the flat option struct spec section 6 enumerates in full.
type Options struct {
	PrintWidth  int
	UseTabs     bool
	IndentWidth int
	LineBreak   LineBreak
	Quotes      Quote

	FormatComments bool

	ScriptIndent ScriptStyleIndent
	StyleIndent  ScriptStyleIndent

	ClosingBracketSameLine   bool
	ClosingTagLineBreakEmpty ClosingTagLineBreak
	MaxAttrsPerLine          int // 0 means null/unset
	PreferAttrsSingleLine    bool
	SingleAttrSameLine       bool

	WhitespaceSensitivity          WhitespaceSensitivity
	ComponentWhitespaceSensitivity TriState // reinterpreted via WhitespaceSensitivity when set; Unset = inherit

	SelfClosing SelfClosing

	DoctypeKeywordCase DoctypeKeywordCase

	VBindStyle         DirectiveStyle
	VOnStyle           DirectiveStyle
	VForDelimiterStyle VForDelimiterStyle
	VSlotStyle         VSlotOverrides

	VBindSameNameShortHand  TriState
	SvelteAttrShorthand     TriState
	SvelteDirectiveShorthand TriState
	AstroAttrShorthand      TriState

	StrictSvelteAttr bool

	VueComponentCase VueComponentCase
	VueCustomBlock   CustomBlockMode

	AngularNextControlFlowSameLine bool

	HTMLParseJSExpressions bool

	IgnoreCommentDirective     string
	IgnoreFileCommentDirective string
}

// Default returns the option set spec section 6's default column
// describes.
func Default() Options {
	return Options{
		PrintWidth:                     80,
		UseTabs:                        false,
		IndentWidth:                    2,
		LineBreak:                      LF,
		Quotes:                         DoubleQuote,
		FormatComments:                 false,
		ClosingBracketSameLine:         false,
		ClosingTagLineBreakEmpty:       ClosingTagFit,
		MaxAttrsPerLine:                0,
		PreferAttrsSingleLine:          false,
		SingleAttrSameLine:             true,
		WhitespaceSensitivity:          WhitespaceCSS,
		ComponentWhitespaceSensitivity: Unset,
		DoctypeKeywordCase:             DoctypeUpper,
		VBindStyle:                     DirectiveStyleUnset,
		VOnStyle:                       DirectiveStyleUnset,
		VForDelimiterStyle:             VForDelimiterUnset,
		VBindSameNameShortHand:         Unset,
		SvelteAttrShorthand:            Unset,
		SvelteDirectiveShorthand:       Unset,
		AstroAttrShorthand:             Unset,
		StrictSvelteAttr:               false,
		VueComponentCase:               ComponentCaseIgnore,
		VueCustomBlock:                 CustomBlockLangAttribute,
		AngularNextControlFlowSameLine: true,
		HTMLParseJSExpressions:         false,
		IgnoreCommentDirective:         "markup-fmt-ignore",
		IgnoreFileCommentDirective:     "markup-fmt-ignore-file",
	}
}

// EffectiveWhitespaceSensitivity resolves the component override (spec
// section 4.4: "Components default to block-level unless
// component.whitespaceSensitivity overrides").
func (o Options) EffectiveWhitespaceSensitivity(isComponent bool) WhitespaceSensitivity {
	if isComponent && o.ComponentWhitespaceSensitivity != Unset {
		if o.ComponentWhitespaceSensitivity == True {
			return WhitespaceIgnore
		}
		return WhitespaceStrict
	}
	return o.WhitespaceSensitivity
}
