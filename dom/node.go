package dom

import "strings"

type NodeType uint16

const (
	ElementNode NodeType = iota + 1
	TextNode
	CommentNode
	DocumentNode
)

// NodeList is an ordered collection of nodes.
// https://dom.whatwg.org/#interface-nodelist
type NodeList []*Node

func (c NodeList) Contains(target *Node) int {
	for i, n := range c {
		if n == target {
			return i
		}
	}
	return -1
}

func (c *NodeList) Remove(i int) *Node {
	if i < 0 || i >= len(*c) {
		return nil
	}
	n := (*c)[i]
	*c = append((*c)[:i], (*c)[i+1:]...)
	return n
}

// https://dom.whatwg.org/#node
type Node struct {
	NodeType                                                        NodeType
	NodeName                                                        string
	OwnerDocument                                                   *Node
	ParentNode, FirstChild, LastChild, PreviousSibling, NextSibling *Node
	ChildNodes                                                      NodeList

	// Node types
	*Element
	*Text
	*Comment
	*Document
}

// NewElementNode returns a detached element whose node document is od.
func NewElementNode(od *Node, name string) *Node {
	n := &Node{
		NodeType:      ElementNode,
		NodeName:      name,
		OwnerDocument: od,
		Element: &Element{
			LocalName: name,
		},
	}
	n.Element.Attributes = NewNamedNodeMap(n)
	return n
}

// NewTextNode returns a text node with its Data section filled.
func NewTextNode(od *Node, data string) *Node {
	return &Node{
		NodeType:      TextNode,
		NodeName:      "#text",
		OwnerDocument: od,
		Text:          &Text{Data: data},
	}
}

// NewCommentNode returns a comment node with its Data section filled.
func NewCommentNode(od *Node, data string) *Node {
	return &Node{
		NodeType:      CommentNode,
		NodeName:      "#comment",
		OwnerDocument: od,
		Comment:       &Comment{Data: data},
	}
}

func (n *Node) HasChildNodes() bool {
	return len(n.ChildNodes) > 0
}

// https://dom.whatwg.org/#concept-node-append
func (n *Node) AppendChild(on *Node) *Node {
	if n.LastChild != nil {
		on.PreviousSibling = n.LastChild
		n.LastChild.NextSibling = on
	} else {
		n.FirstChild = on
	}
	on.ParentNode = n
	n.LastChild = on
	n.ChildNodes = append(n.ChildNodes, on)
	return on
}

func (n *Node) RemoveChild(child *Node) *Node {
	node := n.ChildNodes.Remove(n.ChildNodes.Contains(child))
	if node == nil {
		return nil
	}
	if node.PreviousSibling != nil {
		node.PreviousSibling.NextSibling = node.NextSibling
	}
	if node.NextSibling != nil {
		node.NextSibling.PreviousSibling = node.PreviousSibling
	}
	if n.FirstChild == node {
		n.FirstChild = node.NextSibling
	}
	if n.LastChild == node {
		n.LastChild = node.PreviousSibling
	}
	node.ParentNode = nil
	node.PreviousSibling = nil
	node.NextSibling = nil
	return node
}

// RemoveAllChildren empties the node's child list.
func (n *Node) RemoveAllChildren() {
	for len(n.ChildNodes) > 0 {
		n.RemoveChild(n.ChildNodes[len(n.ChildNodes)-1])
	}
}

// IsInDoc reports whether the node is connected to a document tree.
// https://dom.whatwg.org/#connected
func (n *Node) IsInDoc() bool {
	for i := n; i != nil; i = i.ParentNode {
		if i.NodeType == DocumentNode {
			return true
		}
	}
	return false
}

// CollectTextContents concatenates the data of the node's text node children.
func (n *Node) CollectTextContents() string {
	var b strings.Builder
	for _, child := range n.ChildNodes {
		if child.NodeType == TextNode {
			b.WriteString(child.Text.Data)
		}
	}
	return b.String()
}

// CloneNode copies the node, and its whole subtree when deep is set. The copy
// is detached even when the original was connected.
// https://dom.whatwg.org/#concept-node-clone
func (n *Node) CloneNode(deep bool) *Node {
	var copy *Node
	switch n.NodeType {
	case ElementNode:
		copy = NewElementNode(n.OwnerDocument, n.NodeName)
		for _, name := range n.Attributes.Names() {
			attr := n.Attributes.GetNamedItem(name)
			copy.SetAttribute(attr.LocalName, attr.Value)
		}
	case TextNode:
		copy = NewTextNode(n.OwnerDocument, n.Text.Data)
	case CommentNode:
		copy = NewCommentNode(n.OwnerDocument, n.Comment.Data)
	case DocumentNode:
		copy = NewDocumentNode(n.Document.URL)
	default:
		copy = &Node{NodeType: n.NodeType, NodeName: n.NodeName, OwnerDocument: n.OwnerDocument}
	}

	if deep {
		for _, child := range n.ChildNodes {
			copy.AppendChild(child.CloneNode(true))
		}
	}
	return copy
}

func serializeNodeType(node *Node) string {
	switch node.NodeType {
	case ElementNode:
		e := "<" + node.NodeName
		for _, name := range node.Attributes.Names() {
			e += " " + name + "=\"" + node.Attributes.GetNamedItem(name).Value + "\""
		}
		return e + ">"
	case TextNode:
		return "\"" + node.Text.Data + "\""
	case CommentNode:
		return "<!-- " + node.Comment.Data + " -->"
	case DocumentNode:
		return "#document"
	default:
		return "#unknown"
	}
}

func (n *Node) serialize(ident int) string {
	ser := serializeNodeType(n) + "\n"
	if n.NodeType != DocumentNode {
		spaces := "| "
		for i := 1; i < ident; i++ {
			spaces += "  "
		}
		ser = spaces + ser
	}
	for _, child := range n.ChildNodes {
		ser += child.serialize(ident + 1)
	}
	return ser
}

func (n *Node) String() string {
	return strings.TrimRight(n.serialize(0), "\n")
}
