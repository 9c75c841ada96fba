// Package page ties a document tree to the services its scripts need and
// routes tree mutations into the script activation hooks.
package page

import (
	"net/url"

	"browser/dom"
	"browser/script"
)

// Page owns one document and the fetcher and executor shared by its scripts.
// All mutation must come through a single goroutine; the activation state
// machine is not internally synchronized.
type Page struct {
	document *dom.Node
	fetcher  script.Fetcher
	executor script.Executor
	scripts  map[*dom.Node]*script.Element
}

func NewPage(pageURL *url.URL, fetcher script.Fetcher, executor script.Executor) *Page {
	return &Page{
		document: dom.NewDocumentNode(pageURL),
		fetcher:  fetcher,
		executor: executor,
		scripts:  map[*dom.Node]*script.Element{},
	}
}

func (p *Page) Document() *dom.Node { return p.document }

// ScriptFor returns the script behavior bound to node, if node is a script
// element known to this page.
func (p *Page) ScriptFor(node *dom.Node) *script.Element {
	return p.scripts[node]
}

// CreateElement builds a detached element owned by the page's document.
// Script elements built this way count as script-created: inserting them into
// the document is what triggers their preparation.
func (p *Page) CreateElement(name string) *dom.Node {
	return p.createElement(name, script.ScriptCreated)
}

func (p *Page) createElement(name string, creator script.Creator) *dom.Node {
	node := dom.NewElementNode(p.document, name)
	if name == "script" {
		p.scripts[node] = script.NewElement(node, creator, p.fetcher, p.executor)
	}
	return node
}

// AppendChild appends child under parent and fires the insertion hooks.
func (p *Page) AppendChild(parent, child *dom.Node) {
	parent.AppendChild(child)
	if e, ok := p.scripts[parent]; ok {
		e.ChildInserted()
	}
	if child.IsInDoc() {
		p.bindSubtree(child)
	}
}

func (p *Page) bindSubtree(root *dom.Node) {
	if e, ok := p.scripts[root]; ok {
		e.BindToTree(true)
	}
	for _, child := range root.ChildNodes {
		p.bindSubtree(child)
	}
}

// SetAttribute writes an attribute and fires the attribute hook.
func (p *Page) SetAttribute(node *dom.Node, name, value string) {
	node.SetAttribute(name, value)
	if e, ok := p.scripts[node]; ok {
		e.AfterSetAttr(name)
	}
}

// CloneNode copies node. Copies of already-started scripts keep that state so
// duplicated markup cannot execute twice; everything else about a copy starts
// fresh and script-created.
func (p *Page) CloneNode(node *dom.Node, deep bool) *dom.Node {
	copy := node.CloneNode(deep)
	p.runCloningSteps(node, copy)
	return copy
}

func (p *Page) runCloningSteps(orig, copy *dom.Node) {
	if e, ok := p.scripts[orig]; ok {
		ce := script.NewElement(copy, script.ScriptCreated, p.fetcher, p.executor)
		p.scripts[copy] = ce
		e.CloningSteps(ce)
	}
	for i, child := range orig.ChildNodes {
		if i < len(copy.ChildNodes) {
			p.runCloningSteps(child, copy.ChildNodes[i])
		}
	}
}
