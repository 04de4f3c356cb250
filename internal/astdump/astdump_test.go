package astdump

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"gotest.tools/v3/assert"

	"github.com/markup-fmt/markup-fmt/internal/ast"
)

func TestConvertElementWithAttrsAndText(t *testing.T) {
	root := ast.NewElement("div")
	root.Attr = append(root.Attr, ast.Attribute{Key: "id", Val: "a", Type: ast.PlainAttribute})
	text := &ast.Node{Type: ast.TextNode, Data: "hi"}
	root.AppendChild(text)

	got := Convert(root)
	want := Node{
		Type:        "Element",
		Data:        "div",
		ClosingForm: "paired",
		Attrs:       []Attr{{Key: "id", Val: "a", Type: "plain"}},
		Children:    []Node{{Type: "Text", Data: "hi", ClosingForm: "paired"}},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Convert() mismatch (-want +got):\n%s", diff)
	}
}

func TestConvertEmbeddedCode(t *testing.T) {
	n := &ast.Node{Type: ast.EmbeddedCodeNode, EmbeddedLang: "ts"}
	got := Convert(n)
	assert.Equal(t, got.EmbeddedLang, "ts")
	assert.Equal(t, got.Type, "EmbeddedCode")
}

func TestConvertTemplateNode(t *testing.T) {
	n := &ast.Node{Type: ast.TemplateNode, TemplateKind: ast.Block, BlockKeyword: "if", BlockEndKeyword: "endif"}
	got := Convert(n)
	assert.Equal(t, got.TemplateKind, "block")
	assert.Equal(t, got.BlockKeyword, "if")
	assert.Equal(t, got.BlockEndKeyword, "endif")
}

func TestMarshalProducesJSON(t *testing.T) {
	root := ast.NewElement("br")
	root.ClosingForm = ast.VoidImplicit
	out, err := Marshal(root)
	assert.NilError(t, err)
	assert.Assert(t, len(out) > 0)
}
