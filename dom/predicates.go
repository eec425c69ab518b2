package dom

import "golang.org/x/net/html"

// Predicate is a test on a single DOM node.
type Predicate func(*html.Node) bool

// NodeIsElement is a predicate to match element nodes of a DOM.
var NodeIsElement Predicate = IsElement

// NodeIsText is a predicate to match text nodes of a DOM.
var NodeIsText Predicate = func(n *html.Node) bool {
	return n != nil && n.Type == html.TextNode
}

// HasTag returns a predicate matching elements with a given tag name,
// ignoring case. "*" matches every element.
func HasTag(tag string) Predicate {
	if tag == "*" || tag == "" {
		return NodeIsElement
	}
	return func(n *html.Node) bool {
		return TagIs(n, tag)
	}
}

// HasID returns a predicate matching elements with a given id.
func HasID(id string) Predicate {
	return func(n *html.Node) bool {
		return IsElement(n) && ID(n) == id
	}
}
