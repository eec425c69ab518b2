package domquery

import "golang.org/x/net/html"

// Dedup removes duplicate nodes from a node set. Nodes are compared by
// identity. The first occurrence of a node is kept, so the order of the
// node set is preserved.
//
// If the node set contains no duplicates, it is returned unchanged;
// otherwise a new slice is allocated. The input is never modified.
func Dedup(nodes []*html.Node) []*html.Node {
	if len(nodes) < 2 {
		return nodes
	}
	seen := make(map[*html.Node]struct{}, len(nodes))
	var r []*html.Node // allocated on first duplicate
	for i, n := range nodes {
		if _, dup := seen[n]; dup {
			if r == nil {
				r = make([]*html.Node, i, len(nodes))
				copy(r, nodes[:i])
			}
			continue
		}
		seen[n] = struct{}{}
		if r != nil {
			r = append(r, n)
		}
	}
	if r == nil {
		return nodes
	}
	return r
}

// Diff returns the nodes of b which are not contained in a, in the order of b.
func Diff(a, b []*html.Node) []*html.Node {
	if len(a) == 0 {
		return append([]*html.Node(nil), b...)
	}
	in := make(map[*html.Node]struct{}, len(a))
	for _, n := range a {
		in[n] = struct{}{}
	}
	r := make([]*html.Node, 0, len(b))
	for _, n := range b {
		if _, found := in[n]; !found {
			r = append(r, n)
		}
	}
	return r
}
