package ast

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestAppendChildLinksSiblings(t *testing.T) {
	root := NewElement("div")
	a := NewElement("span")
	b := NewElement("em")
	root.AppendChild(a)
	root.AppendChild(b)

	assert.Equal(t, root.FirstChild, a)
	assert.Equal(t, root.LastChild, b)
	assert.Equal(t, a.NextSibling, b)
	assert.Equal(t, b.PrevSibling, a)
	assert.Equal(t, a.Parent, root)
	assert.Equal(t, b.Parent, root)
}

func TestAppendChildPanicsWhenAlreadyAttached(t *testing.T) {
	root := NewElement("div")
	child := NewElement("span")
	root.AppendChild(child)

	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic re-appending an attached child")
		}
	}()
	root.AppendChild(child)
}

func TestInsertBeforeMiddle(t *testing.T) {
	root := NewElement("div")
	a := NewElement("a")
	c := NewElement("c")
	root.AppendChild(a)
	root.AppendChild(c)

	b := NewElement("b")
	root.InsertBefore(b, c)

	assert.DeepEqual(t, []*Node{a, b, c}, root.ChildNodes())
}

func TestInsertBeforeNilAppends(t *testing.T) {
	root := NewElement("div")
	a := NewElement("a")
	root.InsertBefore(a, nil)
	assert.Equal(t, root.LastChild, a)
}

func TestRemoveChild(t *testing.T) {
	root := NewElement("div")
	a := NewElement("a")
	b := NewElement("b")
	c := NewElement("c")
	root.AppendChild(a)
	root.AppendChild(b)
	root.AppendChild(c)

	root.RemoveChild(b)

	assert.DeepEqual(t, []*Node{a, c}, root.ChildNodes())
	assert.Assert(t, a.NextSibling == c)
	assert.Assert(t, c.PrevSibling == a)
}

func TestClosest(t *testing.T) {
	root := NewElement("section")
	child := NewElement("div")
	grandchild := NewElement("span")
	root.AppendChild(child)
	child.AppendChild(grandchild)

	found := grandchild.Closest(func(n *Node) bool { return n.Data == "section" })
	assert.Equal(t, found, root)

	notFound := grandchild.Closest(func(n *Node) bool { return n.Data == "article" })
	assert.Assert(t, notFound == nil)
}

func TestAttributeHelpers(t *testing.T) {
	n := NewElement("input")
	n.Attr = []Attribute{{Key: "type", Val: "text"}, {Key: "disabled", Type: EmptyAttribute}}

	assert.Assert(t, n.HasAttr("type"))
	assert.Assert(t, !n.HasAttr("name"))

	v, ok := n.GetAttr("type")
	assert.Assert(t, ok)
	assert.Equal(t, v.Val, "text")

	n.RemoveAttribute("type")
	assert.Assert(t, !n.HasAttr("type"))
	assert.Equal(t, len(n.Attr), 1)
}

func TestEmptyNode(t *testing.T) {
	n := NewElement("br")
	assert.Assert(t, n.Empty())
	n.AppendChild(NewElement("span"))
	assert.Assert(t, !n.Empty())
}

func TestNewElementInternsAtom(t *testing.T) {
	n := NewElement("div")
	assert.Equal(t, n.Type, ElementNode)
	assert.Equal(t, n.Data, "div")
	assert.Assert(t, n.DataAtom != 0)
}
