package script

import (
	"net/url"

	"browser/dom"

	"github.com/sirupsen/logrus"
)

// Fetcher synchronously loads an external script resource and returns the
// final URL after any redirects together with the response body. Failures are
// not retried here.
type Fetcher interface {
	FetchResource(u *url.URL) (*url.URL, []byte, error)
}

// Executor receives the resolved source of an activated script. Engine
// internal errors are not surfaced back to the activation algorithm.
type Executor interface {
	ExecuteScript(source string, originURL *url.URL)
}

// Creator records whether the parser or a script built the element.
type Creator uint8

const (
	ParserCreated Creator = iota
	ScriptCreated
)

// Outcome is the result of a single prepare run.
type Outcome uint8

const (
	Activated Outcome = iota
	AlreadyStarted
	NotExecutableType
	NoContent
	DetachedFromDocument
	FetchFailed
	Aborted
)

func (o Outcome) String() string {
	switch o {
	case Activated:
		return "activated"
	case AlreadyStarted:
		return "already started"
	case NotExecutableType:
		return "not an executable type"
	case NoContent:
		return "no content"
	case DetachedFromDocument:
		return "detached from document"
	case FetchFailed:
		return "fetch failed"
	default:
		return "aborted"
	}
}

// Element carries the script-specific state and behavior of one script node.
// https://html.spec.whatwg.org/multipage/scripting.html#the-script-element
type Element struct {
	node *dom.Node

	// https://html.spec.whatwg.org/multipage/scripting.html#already-started
	alreadyStarted bool

	// https://html.spec.whatwg.org/multipage/scripting.html#parser-inserted
	parserInserted bool

	// https://html.spec.whatwg.org/multipage/scripting.html#non-blocking
	//
	// (currently unused)
	nonBlocking bool

	// https://html.spec.whatwg.org/multipage/scripting.html#ready-to-be-parser-executed
	//
	// (currently unused)
	readyToBeParserExecuted bool

	fetcher  Fetcher
	executor Executor
}

// NewElement binds script behavior to node. Parser-created elements start out
// parser-inserted and blocking; script-created ones are the inverse.
func NewElement(node *dom.Node, creator Creator, fetcher Fetcher, executor Executor) *Element {
	return &Element{
		node:           node,
		parserInserted: creator == ParserCreated,
		nonBlocking:    creator != ParserCreated,
		fetcher:        fetcher,
		executor:       executor,
	}
}

func (e *Element) Node() *dom.Node      { return e.node }
func (e *Element) AlreadyStarted() bool { return e.alreadyStarted }
func (e *Element) ParserInserted() bool { return e.parserInserted }
func (e *Element) NonBlocking() bool    { return e.nonBlocking }

// MarkAlreadyStarted sets the "already started" flag
// (https://whatwg.org/html/#already-started).
func (e *Element) MarkAlreadyStarted() {
	e.alreadyStarted = true
}

// Src is https://html.spec.whatwg.org/multipage/scripting.html#dom-script-src
func (e *Element) Src() string {
	v, _ := e.node.GetAttribute("src")
	return v
}

// Text is http://www.whatwg.org/html/#dom-script-text
func (e *Element) Text() string {
	return e.node.CollectTextContents()
}

// SetText is http://www.whatwg.org/html/#dom-script-text
func (e *Element) SetText(value string) {
	e.node.RemoveAllChildren()
	e.node.AppendChild(dom.NewTextNode(e.node.OwnerDocument, value))
}

// IsJavaScript covers prepare steps 6 and 7: whether the element's current
// type and language attributes name the supported scripting language.
func (e *Element) IsJavaScript() bool {
	typeAttr, hasType := e.node.GetAttribute("type")
	languageAttr, hasLanguage := e.node.GetAttribute("language")
	switch {
	case hasType:
		logrus.Debugf("script type=%q", typeAttr)
	case hasLanguage:
		logrus.Debugf("script language=%q", languageAttr)
	default:
		logrus.Debug("no script type or language, inferring js")
	}
	return classify(typeAttr, hasType, languageAttr, hasLanguage)
}

// Prepare runs the prepare-a-script algorithm
// (https://html.spec.whatwg.org/multipage/scripting.html#prepare-a-script)
// and reports how the run ended. Repeated runs are safe: the first one sets
// the already-started flag before any fetch or execution happens.
func (e *Element) Prepare() Outcome {
	// Step 1.
	if e.alreadyStarted {
		return AlreadyStarted
	}
	// Step 2.
	wasParserInserted := e.parserInserted
	e.parserInserted = false

	// Step 3.
	if wasParserInserted && e.node.HasAttribute("async") {
		e.nonBlocking = true
	}
	// Step 4.
	text := e.Text()
	if len(text) == 0 && !e.node.HasAttribute("src") {
		return NoContent
	}
	// Step 5.
	if !e.node.IsInDoc() {
		return DetachedFromDocument
	}
	// Step 6, 7.
	if !e.IsJavaScript() {
		return NotExecutableType
	}
	// Step 8.
	if wasParserInserted {
		e.parserInserted = true
		e.nonBlocking = false
	}
	// Step 9.
	e.alreadyStarted = true

	// Steps 10-15 cover parser document mismatches, scripting-disabled
	// documents, event/for attributes, charset selection, and the defer and
	// async schedules. None of those apply here: every script is fetched
	// synchronously and executed immediately.

	source, originURL, outcome := e.resolveSource(text)
	if outcome != Activated {
		return outcome
	}

	e.executor.ExecuteScript(source, originURL)
	return Activated
}

// resolveSource picks between the src reference and the element's inline
// text. An external reference always wins over inline text.
func (e *Element) resolveSource(text string) (string, *url.URL, Outcome) {
	baseURL := e.node.BaseURL()
	src, ok := e.node.GetAttribute("src")
	if !ok {
		return text, baseURL, Activated
	}

	if src == "" {
		// TODO: queue a task to fire a simple event named `error` at the
		// element.
		return "", nil, NoContent
	}
	u, err := baseURL.Parse(src)
	if err != nil {
		logrus.Errorf("error parsing URL for script %s: %v", src, err)
		return "", nil, FetchFailed
	}
	finalURL, body, err := e.fetcher.FetchResource(u)
	if err != nil {
		logrus.Errorf("error loading script %s: %v", src, err)
		return "", nil, FetchFailed
	}
	return decodeReplace(body), finalURL, Activated
}
