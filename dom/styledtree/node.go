package styledtree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/domquery/dom/style"
	"github.com/npillmayer/domquery/tree"
	"golang.org/x/net/html"
)

// StyNode is a style node, the building block of the styled tree.
type StyNode struct {
	tree.Node[*StyNode] // we build on top of general purpose tree
	htmlNode            *html.Node
	styles              *style.PropertyMap
}

// NewNodeForHTMLNode creates a new styled node linked to an HTML node.
func NewNodeForHTMLNode(html *html.Node) *tree.Node[*StyNode] {
	sn := &StyNode{}
	sn.Payload = sn // Payload will always reference the node itself
	sn.htmlNode = html
	return &sn.Node
}

// Node gets the styled node from a generic tree node.
func Node(n *tree.Node[*StyNode]) *StyNode {
	if n == nil {
		return nil
	}
	return n.Payload
}

// HTMLNode gets the HTML DOM node corresponding to this styled node.
func (sn *StyNode) HTMLNode() *html.Node {
	return sn.htmlNode
}

// Styles returns the properties specified for this node. It may be nil.
func (sn *StyNode) Styles() *style.PropertyMap {
	return sn.styles
}

// SetStyles sets the styling properties of a styled node.
func (sn *StyNode) SetStyles(styles *style.PropertyMap) {
	sn.styles = styles
}

// PropertyValue returns the property value for a given key.
// If the property is inherited, or set to "inherit", it may cascade.
// Properties without a value anywhere up the tree fall back to the
// user-agent default for the node's HTML element.
func (sn *StyNode) PropertyValue(key string) style.Property {
	p, ok := sn.styles.Property(key)
	if ok && !p.IsInherit() {
		return p
	}
	if p.IsInherit() || style.IsCascading(key) {
		tracer().P("key", key).Debugf("styling: cascading for key %s", key)
		anc := sn.AncestorWith(func(n *tree.Node[*StyNode]) bool {
			v, ok := n.Payload.styles.Property(key)
			return ok && !v.IsInherit()
		})
		if anc != nil {
			v, _ := anc.Payload.styles.Property(key)
			return v
		}
		if p.IsInherit() {
			if root := sn.root(); root != nil {
				return style.GetUserAgentDefaultProperty(root.htmlNode, key)
			}
		}
	}
	return style.GetUserAgentDefaultProperty(sn.htmlNode, key)
}

func (sn *StyNode) root() *StyNode {
	n := &sn.Node
	for n.Parent() != nil {
		n = n.Parent()
	}
	return n.Payload
}
