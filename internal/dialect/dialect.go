// Package dialect holds the closed set of language tags the formatter
// supports and the tag-category tables (void/raw-text/pre-formatted/inline)
// that parsing and printing rules are parameterized by, per spec section 3
// ("Language tag") and section 4.2 ("HTML parsing rules of record").
// Grounded on internal/token.go's own void-element and raw-text gating
// (readRawOrRCDATA/readRawEndTag restricted to script|style|textarea|title),
// generalized here into data tables rather than inline string comparisons.
package dialect

// Tag is the closed set of language tags spec section 3 names.
type Tag int

const (
	Html Tag = iota
	Xml
	Vue
	Svelte
	Astro
	Angular
	Jinja
	Twig
	Nunjucks
	Vento
	Mustache
	Handlebars
)

func (t Tag) String() string {
	switch t {
	case Html:
		return "Html"
	case Xml:
		return "Xml"
	case Vue:
		return "Vue"
	case Svelte:
		return "Svelte"
	case Astro:
		return "Astro"
	case Angular:
		return "Angular"
	case Jinja:
		return "Jinja"
	case Twig:
		return "Twig"
	case Nunjucks:
		return "Nunjucks"
	case Vento:
		return "Vento"
	case Mustache:
		return "Mustache"
	case Handlebars:
		return "Handlebars"
	}
	return "Unknown"
}

// IsTemplateDialect reports whether t is one of the template-engine
// dialects (Jinja, Twig, Nunjucks, Vento, Mustache, Handlebars) that embed
// delimited expression/statement blocks into markup (spec section 1).
// HTML, XML and the component dialects report false.
func (t Tag) IsTemplateDialect() bool {
	switch t {
	case Jinja, Twig, Nunjucks, Vento, Mustache, Handlebars:
		return true
	}
	return false
}

// IsComponentDialect reports whether t supports component-style tags
// (capitalized or dash-containing custom elements), used by the printer's
// component/selfClosing and vueComponentCase rules (spec section 4.4).
func (t Tag) IsComponentDialect() bool {
	switch t {
	case Vue, Svelte, Astro, Angular:
		return true
	}
	return false
}

// Void elements per the HTML living standard (spec section 4.2). Fixed and
// dialect-independent: an XML/Vue/etc. document still treats these names
// specially if it embeds HTML.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

func IsVoidElement(name string) bool {
	return voidElements[name]
}

// Raw-text elements: content is collected verbatim until the matching
// case-insensitive end tag, never tokenized as markup (spec section 4.2).
var rawTextElements = map[string]bool{
	"script": true, "style": true, "textarea": true, "title": true,
}

func IsRawTextElement(name string) bool {
	return rawTextElements[name]
}

// Pre-formatted elements affect the default whitespace-sensitivity
// decision (spec section 4.2): their children are never reflowed.
var preFormattedElements = map[string]bool{
	"pre": true, "textarea": true, "script": true, "style": true,
}

func IsPreFormattedElement(name string) bool {
	return preFormattedElements[name]
}

// Inline elements per the CSS user-agent default `display: inline`,
// consulted when whitespaceSensitivity = "css" (spec section 4.2/4.4).
var inlineElements = map[string]bool{
	"a": true, "abbr": true, "acronym": true, "b": true, "bdo": true,
	"big": true, "br": true, "button": true, "cite": true, "code": true,
	"dfn": true, "em": true, "font": true, "i": true, "img": true,
	"input": true, "kbd": true, "label": true, "map": true, "object": true,
	"output": true, "q": true, "samp": true, "select": true, "small": true,
	"span": true, "strong": true, "sub": true, "sup": true, "textarea": true,
	"time": true, "tt": true, "u": true, "var": true,
}

func IsInlineElement(name string) bool {
	return inlineElements[name]
}
