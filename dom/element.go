package dom

import (
	"sort"
	"strings"
)

// Element is an individual markup element that gets added to the tree.
// https://dom.whatwg.org/#interface-element
type Element struct {
	LocalName  string
	Attributes *NamedNodeMap
}

// Attr is https://dom.whatwg.org/#attr
type Attr struct {
	LocalName    string
	Value        string
	OwnerElement *Node
}

func NewNamedNodeMap(oe *Node) *NamedNodeMap {
	return &NamedNodeMap{
		Attrs:             map[string]*Attr{},
		AssociatedElement: oe,
	}
}

// https://dom.whatwg.org/#interface-namednodemap
type NamedNodeMap struct {
	Attrs             map[string]*Attr
	AssociatedElement *Node
}

func (m *NamedNodeMap) GetNamedItem(qn string) *Attr {
	if v, ok := m.Attrs[strings.ToLower(qn)]; ok {
		return v
	}
	return nil
}

func (m *NamedNodeMap) SetNamedItem(a *Attr) *Attr {
	if a == nil {
		return nil
	}
	a.OwnerElement = m.AssociatedElement
	old := m.Attrs[a.LocalName]
	m.Attrs[a.LocalName] = a
	return old
}

func (m *NamedNodeMap) RemoveNamedItem(qn string) *Attr {
	qn = strings.ToLower(qn)
	old := m.Attrs[qn]
	delete(m.Attrs, qn)
	return old
}

// Names returns the attribute names in sorted order.
func (m *NamedNodeMap) Names() []string {
	names := make([]string, 0, len(m.Attrs))
	for name := range m.Attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetAttribute is https://dom.whatwg.org/#dom-element-getattribute with the
// in-band null replaced by an ok flag.
func (n *Node) GetAttribute(qualifiedName string) (string, bool) {
	if n.Element == nil {
		return "", false
	}
	attr := n.Attributes.GetNamedItem(qualifiedName)
	if attr == nil {
		return "", false
	}
	return attr.Value, true
}

func (n *Node) HasAttribute(qualifiedName string) bool {
	_, ok := n.GetAttribute(qualifiedName)
	return ok
}

func (n *Node) SetAttribute(qualifiedName, value string) {
	if n.Element == nil {
		return
	}
	n.Attributes.SetNamedItem(&Attr{
		LocalName: strings.ToLower(qualifiedName),
		Value:     value,
	})
}

func (n *Node) RemoveAttribute(qualifiedName string) {
	if n.Element == nil {
		return
	}
	n.Attributes.RemoveNamedItem(qualifiedName)
}
