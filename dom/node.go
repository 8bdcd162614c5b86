package dom

import (
	"strconv"
)

// AttrMap holds element attributes by name. Insertion order is not
// preserved; a duplicate name overwrites the earlier value.
type AttrMap map[string]string

// NodeData is the variant part of a Node: either Text or Element.
// Modeled as an interface so new node kinds can be added later.
type NodeData interface {
	String() string
}

type Text struct {
	Content string
}

func (t Text) String() string {
	return strconv.Quote(t.Content)
}

type Element struct {
	TagName    string
	Attributes AttrMap
}

func (e Element) String() string {
	return "<" + e.TagName + ">"
}

// Node is one node of the document tree. A parent exclusively owns its
// children; the tree is acyclic and nodes are not mutated after
// construction.
type Node struct {
	children []*Node
	data     NodeData
}

type NodeType int

const (
	TextNode NodeType = iota
	ElementNode
)

// NewText creates a text leaf with no children.
func NewText(content string) *Node {
	return &Node{
		data: Text{Content: content},
	}
}

// NewElement creates an element node owning the given children.
func NewElement(tag string, attrs AttrMap, children []*Node) *Node {
	if attrs == nil {
		attrs = AttrMap{}
	}
	return &Node{
		children: children,
		data: Element{
			TagName:    tag,
			Attributes: attrs,
		},
	}
}

// Children returns the node's children in document order. The slice is
// owned by the node and must not be modified.
func (n *Node) Children() []*Node {
	return n.children
}

func (n *Node) Data() NodeData {
	return n.data
}

func (n *Node) Type() NodeType {
	if _, ok := n.data.(Text); ok {
		return TextNode
	}
	return ElementNode
}

// Tag returns the element's tag name; ok is false for text nodes.
func (n *Node) Tag() (string, bool) {
	if element, ok := n.data.(Element); ok {
		return element.TagName, true
	}
	return "", false
}

// Text returns the text content; ok is false for element nodes.
func (n *Node) Text() (string, bool) {
	if text, ok := n.data.(Text); ok {
		return text.Content, true
	}
	return "", false
}

// Attributes returns the element's attribute map; ok is false for text
// nodes. The map is owned by the node and must not be modified.
func (n *Node) Attributes() (AttrMap, bool) {
	if element, ok := n.data.(Element); ok {
		return element.Attributes, true
	}
	return nil, false
}
