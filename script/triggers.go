package script

// The four entry points below re-run the same prepare algorithm; the
// already-started guard keeps the repeated triggers from executing twice.

// AfterSetAttr runs after an attribute write on the element's node. Only a
// src write on a connected, non-parser-inserted element triggers preparation.
func (e *Element) AfterSetAttr(name string) {
	if name == "src" && !e.parserInserted && e.node.IsInDoc() {
		e.Prepare()
	}
}

// ChildInserted runs after a child lands under the element's node, typically
// a text node carrying the inline source.
func (e *Element) ChildInserted() {
	if !e.parserInserted && e.node.IsInDoc() {
		e.Prepare()
	}
}

// BindToTree runs after the element's node is attached to a parent.
func (e *Element) BindToTree(treeInDoc bool) {
	if treeInDoc && !e.parserInserted {
		e.Prepare()
	}
}

// CloningSteps runs after the element's node was cloned into copy. A copy of
// an already-started script must not execute again.
// https://whatwg.org/html/#already-started
func (e *Element) CloningSteps(copy *Element) {
	if e.alreadyStarted {
		copy.MarkAlreadyStarted()
	}
}
