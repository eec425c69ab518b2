package domquery

import (
	"github.com/npillmayer/domquery/dom"
	"golang.org/x/net/html"
)

// mode is the traversal mode set by a combinator. It governs how the result
// set of one token turns into the candidate set of the next one.
type mode uint8

const (
	modeDescendant mode = iota // whitespace, or no combinator at all
	modeChild                  // '>' or '/'
	modeAdjacent               // '+'
	modeSibling                // '~'
)

func (m mode) String() string {
	switch m {
	case modeChild:
		return ">"
	case modeAdjacent:
		return "+"
	case modeSibling:
		return "~"
	}
	return " "
}

func modeFor(c byte) mode {
	switch c {
	case '>', '/':
		return modeChild
	case '+':
		return modeAdjacent
	case '~':
		return modeSibling
	}
	return modeDescendant
}

// advance produces the candidate elements reachable from a set of context
// nodes in a given traversal mode, keeping only elements with tag name tag
// ("*" for any). Results of the context nodes are concatenated without
// removing duplicates.
func advance(nodes []*html.Node, m mode, tag string) []*html.Node {
	var r []*html.Node
	switch m {
	case modeDescendant:
		pred := dom.HasTag(tag)
		for _, n := range nodes {
			r = dom.Descendants(r, n, pred)
		}
	case modeChild:
		for _, n := range nodes {
			for _, ch := range dom.ElementChildren(n) {
				if dom.TagIs(ch, tag) {
					r = append(r, ch)
				}
			}
		}
	case modeAdjacent:
		for _, n := range nodes {
			if sib := dom.NextElementSibling(n); sib != nil && dom.TagIs(sib, tag) {
				r = append(r, sib)
			}
		}
	case modeSibling:
		for _, n := range nodes {
			for sib := dom.NextElementSibling(n); sib != nil; sib = dom.NextElementSibling(sib) {
				if dom.TagIs(sib, tag) {
					r = append(r, sib)
				}
			}
		}
	}
	return r
}
