package page

import (
	"io"

	"browser/dom"
	"browser/script"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/html"
)

// https://html.spec.whatwg.org/multipage/syntax.html#void-elements
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// LoadHTML streams markup into the page's document. Script elements built
// here are parser-created, and each one is prepared right after its end tag
// is seen, so an external reference blocks the load until it resolves.
func (p *Page) LoadHTML(r io.Reader) error {
	z := html.NewTokenizer(r)
	open := []*dom.Node{p.document}
	for {
		switch tt := z.Next(); tt {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return errors.Wrap(err, "tokenizing page")
			}
			return nil
		case html.TextToken:
			open[len(open)-1].AppendChild(dom.NewTextNode(p.document, string(z.Text())))
		case html.CommentToken:
			open[len(open)-1].AppendChild(dom.NewCommentNode(p.document, string(z.Text())))
		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			node := p.createElement(tok.Data, script.ParserCreated)
			for _, attr := range tok.Attr {
				node.SetAttribute(attr.Key, attr.Val)
			}
			open[len(open)-1].AppendChild(node)
			if tt == html.StartTagToken && !voidElements[tok.Data] {
				open = append(open, node)
			}
		case html.EndTagToken:
			tok := z.Token()
			for i := len(open) - 1; i > 0; i-- {
				if open[i].NodeName != tok.Data {
					continue
				}
				closed := open[i]
				open = open[:i]
				if e, ok := p.scripts[closed]; ok {
					logrus.Debugf("preparing parser script: %s", e.Prepare())
				}
				break
			}
		}
	}
}
