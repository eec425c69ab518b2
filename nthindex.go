package domquery

import "golang.org/x/net/html"

// childIndex caches the 1-based positions of elements among their element
// siblings. Positions are computed at most once per parent and batch: the
// first query for a child of a parent numbers all of the parent's element
// children, stamping the parent with the current batch id. A parent with a
// stale stamp is re-numbered.
//
// A childIndex is owned by a single query invocation and is not safe for
// concurrent use.
type childIndex struct {
	batch   uint64
	parents map[*html.Node]uint64
	pos     map[*html.Node]int
}

func newChildIndex(batch uint64) *childIndex {
	return &childIndex{
		batch:   batch,
		parents: make(map[*html.Node]uint64),
		pos:     make(map[*html.Node]int),
	}
}

// position returns the position of element n among its element siblings.
// A node without a parent is its parent's only child.
func (ci *childIndex) position(n *html.Node) int {
	p := n.Parent
	if p == nil {
		return 1
	}
	if ci.parents[p] != ci.batch {
		i := 0
		for ch := p.FirstChild; ch != nil; ch = ch.NextSibling {
			if ch.Type == html.ElementNode {
				i++
				ci.pos[ch] = i
			}
		}
		ci.parents[p] = ci.batch
		tracer().Debugf("batch %d: indexed %d children of <%s>", ci.batch, i, p.Data)
	}
	return ci.pos[n]
}
