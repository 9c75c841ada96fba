package dom

// Text is https://dom.whatwg.org/#interface-text
type Text struct {
	Data string
}

// Comment is https://dom.whatwg.org/#interface-comment
type Comment struct {
	Data string
}
