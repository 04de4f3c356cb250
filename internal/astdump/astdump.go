// Package astdump serializes an ast.Node tree to JSON for the CLI's
// --ast debug flag (SPEC_FULL.md appendix C.1), adapted from the
// teacher's internal/printer/print-to-json.go idea of rendering the
// parsed document as JSON instead of markup — reworked here into a
// plain tree DTO (the teacher's version targets Astro's JSX AST, which
// this module does not have).
package astdump

import (
	"github.com/go-json-experiment/json"

	"github.com/markup-fmt/markup-fmt/internal/ast"
)

// Node is the JSON-safe projection of ast.Node: sibling/parent pointers
// are replaced by nested Children so the tree serializes without
// cycles.
type Node struct {
	Type     string `json:"type"`
	Data     string `json:"data,omitempty"`
	Children []Node `json:"children,omitempty"`

	ClosingForm string `json:"closingForm,omitempty"`
	Namespace   string `json:"namespace,omitempty"`

	Attrs []Attr `json:"attrs,omitempty"`

	EmbeddedLang string `json:"embeddedLang,omitempty"`

	TemplateKind    string `json:"templateKind,omitempty"`
	BlockKeyword    string `json:"blockKeyword,omitempty"`
	BlockEndKeyword string `json:"blockEndKeyword,omitempty"`

	ControlFlowKeyword string `json:"controlFlowKeyword,omitempty"`
	ControlFlowExpr    string `json:"controlFlowExpr,omitempty"`
}

// Attr is the JSON-safe projection of ast.Attribute.
type Attr struct {
	Key           string   `json:"key"`
	Val           string   `json:"val,omitempty"`
	Type          string   `json:"type"`
	DirectiveKind string   `json:"directiveKind,omitempty"`
	ArgName       string   `json:"argName,omitempty"`
	Modifiers     []string `json:"modifiers,omitempty"`
}

// Convert builds the JSON-safe tree rooted at n.
func Convert(n *ast.Node) Node {
	out := Node{
		Type:        nodeTypeName(n.Type),
		Data:        n.Data,
		ClosingForm: closingFormName(n.ClosingForm),
	}
	if n.Namespace != ast.HTMLNamespace {
		out.Namespace = namespaceName(n.Namespace)
	}
	for _, a := range n.Attr {
		out.Attrs = append(out.Attrs, Attr{
			Key:           a.Key,
			Val:           a.Val,
			Type:          attrTypeName(a.Type),
			DirectiveKind: a.DirectiveKind,
			ArgName:       a.ArgName,
			Modifiers:     a.Modifiers,
		})
	}
	if n.Type == ast.EmbeddedCodeNode {
		out.EmbeddedLang = n.EmbeddedLang
	}
	if n.Type == ast.TemplateNode {
		out.TemplateKind = templateKindName(n.TemplateKind)
		out.BlockKeyword = n.BlockKeyword
		out.BlockEndKeyword = n.BlockEndKeyword
	}
	if n.Type == ast.AngularControlFlowNode {
		out.ControlFlowKeyword = n.ControlFlowKeyword
		out.ControlFlowExpr = n.ControlFlowExpr
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		out.Children = append(out.Children, Convert(c))
	}
	return out
}

// Marshal renders root as JSON text.
func Marshal(root *ast.Node) ([]byte, error) {
	return json.Marshal(Convert(root))
}

func nodeTypeName(t ast.NodeType) string {
	switch t {
	case ast.DocumentNode:
		return "Document"
	case ast.DoctypeNode:
		return "Doctype"
	case ast.ElementNode:
		return "Element"
	case ast.TextNode:
		return "Text"
	case ast.CommentNode:
		return "Comment"
	case ast.CDATANode:
		return "CDATA"
	case ast.ProcessingInstructionNode:
		return "ProcessingInstruction"
	case ast.XMLDeclNode:
		return "XMLDecl"
	case ast.EmbeddedCodeNode:
		return "EmbeddedCode"
	case ast.TemplateNode:
		return "Template"
	case ast.AngularControlFlowNode:
		return "AngularControlFlow"
	default:
		return "Unknown"
	}
}

func closingFormName(c ast.ClosingForm) string {
	switch c {
	case ast.Paired:
		return "paired"
	case ast.SelfClosed:
		return "selfClosed"
	case ast.VoidImplicit:
		return "voidImplicit"
	case ast.UnclosedPermitted:
		return "unclosedPermitted"
	default:
		return ""
	}
}

func namespaceName(n ast.Namespace) string {
	switch n {
	case ast.SVGNamespace:
		return "svg"
	case ast.MathMLNamespace:
		return "mathml"
	default:
		return "html"
	}
}

func attrTypeName(t ast.AttributeType) string {
	switch t {
	case ast.PlainAttribute:
		return "plain"
	case ast.EmptyAttribute:
		return "empty"
	case ast.ExpressionAttribute:
		return "expression"
	case ast.SpreadAttribute:
		return "spread"
	case ast.ShorthandAttribute:
		return "shorthand"
	case ast.TemplateLiteralAttribute:
		return "templateLiteral"
	case ast.VueDirectiveAttribute:
		return "vueDirective"
	case ast.SvelteBindingAttribute:
		return "svelteBinding"
	case ast.AngularBindingAttribute:
		return "angularBinding"
	case ast.TemplateExprAttribute:
		return "templateExpr"
	default:
		return "unknown"
	}
}

func templateKindName(k ast.TemplateKind) string {
	switch k {
	case ast.Interpolation:
		return "interpolation"
	case ast.Statement:
		return "statement"
	case ast.TemplateComment:
		return "comment"
	case ast.Block:
		return "block"
	case ast.Raw:
		return "raw"
	default:
		return "unknown"
	}
}
