package domquery

import (
	"fmt"
	"strings"

	"github.com/npillmayer/domquery/dom"
	"golang.org/x/net/html"
)

// A step is one stage of a compiled query. It consumes the node set of the
// previous stage and returns a new one.
type step interface {
	apply(r *run, nodes []*html.Node) ([]*html.Node, error)
	String() string
}

// run holds the state of a single execution of a compiled query.
type run struct {
	x    *Context
	root *html.Node // query root, nil for simple queries
	mode mode
}

// modeStep switches the traversal mode for the next traversal step.
type modeStep struct {
	m mode
}

func (s modeStep) apply(r *run, nodes []*html.Node) ([]*html.Node, error) {
	r.mode = s.m
	return nodes, nil
}

func (s modeStep) String() string { return fmt.Sprintf("mode %q", s.m.String()) }

// traverseStep moves to candidate elements with a given tag.
type traverseStep struct {
	tag string
}

func (s traverseStep) apply(r *run, nodes []*html.Node) ([]*html.Node, error) {
	return advance(nodes, r.mode, s.tag), nil
}

func (s traverseStep) String() string { return "traverse " + s.tag }

// idLookupStep moves to the element with a given id. Starting from the query
// root in descendant mode, it searches for the id directly instead of
// collecting all descendants first.
type idLookupStep struct {
	id string
}

func (s idLookupStep) apply(r *run, nodes []*html.Node) ([]*html.Node, error) {
	if r.mode == modeDescendant && len(nodes) == 1 && nodes[0] == r.root {
		if n := dom.ElementByID(r.root, s.id); n != nil {
			return []*html.Node{n}, nil
		}
		return nil, nil
	}
	return firstWithID(advance(nodes, r.mode, "*"), s.id), nil
}

func (s idLookupStep) String() string { return "lookup #" + s.id }

// idStep keeps the first element carrying a given id.
type idStep struct {
	id string
}

func (s idStep) apply(r *run, nodes []*html.Node) ([]*html.Node, error) {
	return firstWithID(nodes, s.id), nil
}

func (s idStep) String() string { return "id " + s.id }

func firstWithID(nodes []*html.Node, id string) []*html.Node {
	for _, n := range nodes {
		if dom.IsElement(n) && dom.ID(n) == id {
			return []*html.Node{n}
		}
	}
	return nil
}

// tagStep keeps elements with a given tag.
type tagStep struct {
	tag string
}

func (s tagStep) apply(r *run, nodes []*html.Node) ([]*html.Node, error) {
	return filterNodes(nodes, func(n *html.Node) bool {
		return dom.TagIs(n, s.tag)
	}), nil
}

func (s tagStep) String() string { return "tag " + s.tag }

// classStep keeps elements carrying a given class.
type classStep struct {
	class string
}

func (s classStep) apply(r *run, nodes []*html.Node) ([]*html.Node, error) {
	return filterNodes(nodes, func(n *html.Node) bool {
		return dom.HasClass(n, s.class)
	}), nil
}

func (s classStep) String() string { return "class " + s.class }

// attrStep compares attributes, or computed style properties, against a value.
type attrStep struct {
	name  string
	op    string // empty for existence tests
	value string
	style bool
}

func (s attrStep) apply(r *run, nodes []*html.Node) ([]*html.Node, error) {
	var op Operator
	if s.op != "" {
		var ok bool
		if op, ok = r.x.engine.ops.lookup(s.op); !ok {
			err := &UnknownOperatorError{Op: s.op}
			tracer().Errorf(err.Error())
			return nil, err
		}
	}
	var styles StyleResolver
	if s.style {
		styles = r.x.engine.styleResolver()
	}
	res := make([]*html.Node, 0, len(nodes))
	for _, n := range nodes {
		if !dom.IsElement(n) {
			continue
		}
		var actual string
		var present bool
		if s.style {
			actual, present = styles.ComputedStyle(n, s.name)
		} else {
			actual, present = dom.Attr(n, s.name)
		}
		if op == nil && present && actual != "" || op != nil && present && op(actual, s.value) {
			res = append(res, n)
		}
	}
	return res, nil
}

func (s attrStep) String() string {
	lbr, rbr := "[", "]"
	if s.style {
		lbr, rbr = "{", "}"
	}
	if s.op == "" {
		return "attribute " + lbr + s.name + rbr
	}
	return fmt.Sprintf("attribute %s%s%s%q%s", lbr, s.name, s.op, s.value, rbr)
}

// pseudoStep calls a pseudo-class handler. The handler is looked up at
// match time, as registrations may happen after compilation.
type pseudoStep struct {
	name   string
	arg    string // escapes resolved
	rawArg string // escapes preserved
}

func (s pseudoStep) apply(r *run, nodes []*html.Node) ([]*html.Node, error) {
	h, ok := r.x.engine.pseudos.lookup(s.name)
	if !ok {
		err := &UnknownPseudoClassError{Name: s.name}
		tracer().Errorf(err.Error())
		return nil, err
	}
	return h(r.x.withArg(s.rawArg), nodes, s.arg)
}

func (s pseudoStep) String() string {
	if s.rawArg == "" {
		return "pseudo :" + s.name
	}
	return fmt.Sprintf("pseudo :%s(%s)", s.name, s.rawArg)
}

func filterNodes(nodes []*html.Node, pred func(*html.Node) bool) []*html.Node {
	r := make([]*html.Node, 0, len(nodes))
	for _, n := range nodes {
		if pred(n) {
			r = append(r, n)
		}
	}
	return r
}

func stepList(steps []step) string {
	var b strings.Builder
	for i, s := range steps {
		if i > 0 {
			b.WriteString(" | ")
		}
		b.WriteString(s.String())
	}
	return b.String()
}
