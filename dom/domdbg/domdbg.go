/*
Package domdbg implements helpers to debug a DOM tree and the results of
queries.

Trees are rendered as indented text, using github.com/xlab/treeprint.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package domdbg

import (
	"fmt"
	"strings"

	"github.com/npillmayer/domquery/dom"
	tp "github.com/xlab/treeprint"
	"golang.org/x/net/html"
)

// Tree renders the tree below root. Elements contained in marked are
// flagged with a leading '*', which is handy to show the result of a query
// in context:
//
//     nodes, _ := domquery.Select("li.done", doc)
//     t.Logf("selected:\n%s", domdbg.Tree(doc, nodes...))
//
// Text nodes consisting of white space only are left out.
func Tree(root *html.Node, marked ...*html.Node) string {
	if root == nil {
		return "<nil>\n"
	}
	set := make(map[*html.Node]bool, len(marked))
	for _, n := range marked {
		set[n] = true
	}
	p := tp.NewWithRoot(label(root, set))
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		addNode(p, c, set)
	}
	return p.String()
}

func addNode(p tp.Tree, n *html.Node, set map[*html.Node]bool) {
	switch n.Type {
	case html.TextNode:
		if strings.TrimSpace(n.Data) != "" {
			p.AddNode(quote(n.Data))
		}
		return
	case html.CommentNode, html.DoctypeNode:
		return
	}
	if n.FirstChild == nil {
		p.AddNode(label(n, set))
		return
	}
	branch := p.AddBranch(label(n, set))
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		addNode(branch, c, set)
	}
}

func label(n *html.Node, set map[*html.Node]bool) string {
	l := Label(n)
	if set[n] {
		return "*" + l
	}
	return l
}

// Nodes renders a node set, one node per line, prefixed with its index.
func Nodes(nodes []*html.Node) string {
	var b strings.Builder
	for i, n := range nodes {
		fmt.Fprintf(&b, "%3d: %s\n", i, Label(n))
	}
	return b.String()
}

// Label returns a short description of a node in selector notation,
// e.g. "div#main.wide".
func Label(n *html.Node) string {
	if n == nil {
		return "<nil>"
	}
	switch n.Type {
	case html.DocumentNode:
		return "#document"
	case html.TextNode:
		return "#text " + quote(n.Data)
	case html.ElementNode:
		var b strings.Builder
		b.WriteString(n.Data)
		if id := dom.ID(n); id != "" {
			b.WriteString("#" + id)
		}
		if cls, ok := dom.Attr(n, "class"); ok {
			for _, c := range strings.Fields(cls) {
				b.WriteString("." + c)
			}
		}
		return b.String()
	}
	return fmt.Sprintf("#node(%d)", n.Type)
}

func quote(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if len(s) > 24 {
		s = s[:21] + "..."
	}
	return fmt.Sprintf("%q", s)
}
