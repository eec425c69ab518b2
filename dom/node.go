package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"

	"golang.org/x/net/html"
)

// Parse parses an HTML document from a string. It is a convenience wrapper
// around html.Parse.
func Parse(doc string) (*html.Node, error) {
	root, err := html.Parse(strings.NewReader(doc))
	if err != nil {
		tracer().Errorf("cannot parse HTML: %v", err)
		return nil, err
	}
	return root, nil
}

// IsElement is true for element nodes.
func IsElement(n *html.Node) bool {
	return n != nil && n.Type == html.ElementNode
}

// FirstElementChild returns the first child of n which is an element, or nil.
func FirstElementChild(n *html.Node) *html.Node {
	if n == nil {
		return nil
	}
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type == html.ElementNode {
			return ch
		}
	}
	return nil
}

// NextElementSibling returns the next sibling of n which is an element, or nil.
func NextElementSibling(n *html.Node) *html.Node {
	if n == nil {
		return nil
	}
	for n = n.NextSibling; n != nil; n = n.NextSibling {
		if n.Type == html.ElementNode {
			return n
		}
	}
	return nil
}

// PrevElementSibling returns the previous sibling of n which is an element, or nil.
func PrevElementSibling(n *html.Node) *html.Node {
	if n == nil {
		return nil
	}
	for n = n.PrevSibling; n != nil; n = n.PrevSibling {
		if n.Type == html.ElementNode {
			return n
		}
	}
	return nil
}

// ElementChildren returns all element children of n, in document order.
func ElementChildren(n *html.Node) []*html.Node {
	var children []*html.Node
	for ch := FirstElementChild(n); ch != nil; ch = NextElementSibling(ch) {
		children = append(children, ch)
	}
	return children
}

// Descendants appends all descendant elements of n which satisfy pred
// to nodes, depth-first and in document order. n itself is not
// considered. A nil predicate accepts every element.
func Descendants(nodes []*html.Node, n *html.Node, pred Predicate) []*html.Node {
	if n == nil {
		return nodes
	}
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type == html.ElementNode && (pred == nil || pred(ch)) {
			nodes = append(nodes, ch)
		}
		nodes = Descendants(nodes, ch, pred)
	}
	return nodes
}

// FindDescendant returns the first descendant element of n, in document order,
// which satisfies pred, or nil.
func FindDescendant(n *html.Node, pred Predicate) *html.Node {
	if n == nil {
		return nil
	}
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type == html.ElementNode && pred(ch) {
			return ch
		}
		if found := FindDescendant(ch, pred); found != nil {
			return found
		}
	}
	return nil
}

// ElementByID returns the first element below n carrying the given id.
func ElementByID(n *html.Node, id string) *html.Node {
	return FindDescendant(n, HasID(id))
}

// TextContent returns the concatenated text of all text nodes below n,
// similar to the DOM property textContent. For a text node it is the
// node's data.
func TextContent(n *html.Node) string {
	if n == nil {
		return ""
	}
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	collectText(&b, n)
	return b.String()
}

func collectText(b *strings.Builder, n *html.Node) {
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		switch ch.Type {
		case html.TextNode:
			b.WriteString(ch.Data)
		case html.ElementNode, html.DocumentNode:
			collectText(b, ch)
		}
	}
}

// FirstChildText returns the value of the first child node of n, if that is
// a text node. Adjacent text nodes following it are joined, as a DOM
// normalization would do. The second return value is false if n has no
// children or its first child is not a text node.
func FirstChildText(n *html.Node) (string, bool) {
	if n == nil || n.FirstChild == nil || n.FirstChild.Type != html.TextNode {
		return "", false
	}
	ch := n.FirstChild
	if ch.NextSibling == nil || ch.NextSibling.Type != html.TextNode {
		return ch.Data, true
	}
	var b strings.Builder
	for ; ch != nil && ch.Type == html.TextNode; ch = ch.NextSibling {
		b.WriteString(ch.Data)
	}
	return b.String(), true
}

// Attr returns the value of attribute key for n. Attribute keys are matched
// exactly first, then case-insensitively. The DOM property names "className"
// and "htmlFor" are understood as aliases for "class" and "for".
func Attr(n *html.Node, key string) (string, bool) {
	if n == nil || n.Type != html.ElementNode {
		return "", false
	}
	switch key {
	case "className":
		key = "class"
	case "htmlFor":
		key = "for"
	}
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			return a.Val, true
		}
	}
	return "", false
}

// ID returns the id attribute of n, or "".
func ID(n *html.Node) string {
	id, _ := Attr(n, "id")
	return id
}

// HasClass checks if the whitespace-separated class attribute of n contains cls.
func HasClass(n *html.Node, cls string) bool {
	c, ok := Attr(n, "class")
	if !ok {
		return false
	}
	for _, field := range strings.Fields(c) {
		if field == cls {
			return true
		}
	}
	return false
}

// TagIs checks if n is an element with tag name tag, ignoring case.
// Tag "*" and the empty tag match every element.
func TagIs(n *html.Node, tag string) bool {
	if n == nil || n.Type != html.ElementNode {
		return false
	}
	if tag == "*" || tag == "" {
		return true
	}
	return strings.EqualFold(n.Data, tag)
}
