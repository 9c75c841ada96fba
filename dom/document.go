package dom

import "net/url"

// Document is https://dom.whatwg.org/#interface-document
type Document struct {
	URL         *url.URL
	ContentType string
}

// NewDocumentNode returns an empty document whose base URL is pageURL.
func NewDocumentNode(pageURL *url.URL) *Node {
	n := &Node{
		NodeType: DocumentNode,
		NodeName: "#document",
		Document: &Document{
			URL:         pageURL,
			ContentType: "text/html",
		},
	}
	n.OwnerDocument = n
	return n
}

// BaseURL returns the owning document's base URL, used to resolve references
// found in the tree. Returns nil for nodes without an owner document.
func (n *Node) BaseURL() *url.URL {
	od := n.OwnerDocument
	if od == nil || od.Document == nil {
		return nil
	}
	return od.Document.URL
}
