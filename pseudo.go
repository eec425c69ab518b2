package domquery

import (
	"strconv"
	"strings"
	"sync"

	"github.com/npillmayer/domquery/dom"
	"golang.org/x/net/html"
)

// PseudoClass is a named filter on node sets, referenced in selectors as
// ":name" or ":name(arg)". A handler receives the current node set and the
// argument with escapes resolved (empty if there is none), and returns a
// new node set. It must not modify the input slice.
type PseudoClass func(x *Context, nodes []*html.Node, arg string) ([]*html.Node, error)

func builtinPseudoClasses() map[string]PseudoClass {
	return map[string]PseudoClass{
		"first-child": keep(func(x *Context, n *html.Node, arg string) (bool, error) {
			return dom.PrevElementSibling(n) == nil, nil
		}),
		"last-child": keep(func(x *Context, n *html.Node, arg string) (bool, error) {
			return dom.NextElementSibling(n) == nil, nil
		}),
		"only-child": keep(func(x *Context, n *html.Node, arg string) (bool, error) {
			return dom.PrevElementSibling(n) == nil && dom.NextElementSibling(n) == nil, nil
		}),
		"nth-child": nthChild,
		"odd": func(x *Context, nodes []*html.Node, arg string) ([]*html.Node, error) {
			return nthChild(x, nodes, "odd")
		},
		"even": func(x *Context, nodes []*html.Node, arg string) ([]*html.Node, error) {
			return nthChild(x, nodes, "even")
		},
		"empty": keep(func(x *Context, n *html.Node, arg string) (bool, error) {
			for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
				if ch.Type == html.ElementNode || ch.Type == html.TextNode {
					return false, nil
				}
			}
			return true, nil
		}),
		"contains": keep(func(x *Context, n *html.Node, arg string) (bool, error) {
			return strings.Contains(dom.TextContent(n), arg), nil
		}),
		"nodeValue": keep(func(x *Context, n *html.Node, arg string) (bool, error) {
			ch := n.FirstChild
			return ch != nil && ch.Type == html.TextNode && ch.Data == arg, nil
		}),
		"checked": keep(func(x *Context, n *html.Node, arg string) (bool, error) {
			_, checked := dom.Attr(n, "checked")
			return checked, nil
		}),
		"not": func(x *Context, nodes []*html.Node, arg string) ([]*html.Node, error) {
			return x.Filter(nodes, x.SelectorArg(), true)
		},
		"any": keep(func(x *Context, n *html.Node, arg string) (bool, error) {
			for _, sel := range strings.Split(x.SelectorArg(), "|") {
				if strings.TrimSpace(sel) == "" {
					continue
				}
				if ok, err := x.Is(n, sel); err != nil || ok {
					return ok, err
				}
			}
			return false, nil
		}),
		"has": keep(func(x *Context, n *html.Node, arg string) (bool, error) {
			r, err := x.Select(x.SelectorArg(), n)
			return len(r) > 0, err
		}),
		"next": keep(func(x *Context, n *html.Node, arg string) (bool, error) {
			sib := dom.NextElementSibling(n)
			if sib == nil {
				return false, nil
			}
			return x.Is(sib, x.SelectorArg())
		}),
		"prev": keep(func(x *Context, n *html.Node, arg string) (bool, error) {
			sib := dom.PrevElementSibling(n)
			if sib == nil {
				return false, nil
			}
			return x.Is(sib, x.SelectorArg())
		}),
		"nth": func(x *Context, nodes []*html.Node, arg string) ([]*html.Node, error) {
			i, err := strconv.Atoi(strings.TrimSpace(arg))
			if err != nil || i < 1 || i > len(nodes) {
				return nil, nil
			}
			return []*html.Node{nodes[i-1]}, nil
		},
		"first": func(x *Context, nodes []*html.Node, arg string) ([]*html.Node, error) {
			if len(nodes) == 0 {
				return nil, nil
			}
			return []*html.Node{nodes[0]}, nil
		},
		"last": func(x *Context, nodes []*html.Node, arg string) ([]*html.Node, error) {
			if len(nodes) == 0 {
				return nil, nil
			}
			return []*html.Node{nodes[len(nodes)-1]}, nil
		},
	}
}

// keep lifts a per-node predicate to a pseudo-class handler, keeping the
// nodes the predicate holds for.
func keep(pred func(*Context, *html.Node, string) (bool, error)) PseudoClass {
	return func(x *Context, nodes []*html.Node, arg string) ([]*html.Node, error) {
		r := make([]*html.Node, 0, len(nodes))
		for _, n := range nodes {
			ok, err := pred(x, n, arg)
			if err != nil {
				return nil, err
			}
			if ok {
				r = append(r, n)
			}
		}
		return r, nil
	}
}

// --- nth-child -------------------------------------------------------------

// nth is a parsed nth-child argument.
type nth struct {
	a, b  int
	exact bool // argument was a plain integer
}

// parseNth parses "odd", "even", an integer or an expression "an+b".
func parseNth(arg string) (nth, bool) {
	arg = strings.ToLower(strings.Join(strings.Fields(arg), ""))
	switch arg {
	case "odd":
		return nth{a: 2, b: 1}, true
	case "even":
		return nth{a: 2, b: 0}, true
	case "":
		return nth{}, false
	}
	k := strings.IndexByte(arg, 'n')
	if k < 0 {
		b, err := strconv.Atoi(arg)
		return nth{b: b, exact: true}, err == nil
	}
	var f nth
	switch coeff := arg[:k]; coeff {
	case "", "+":
		f.a = 1
	case "-":
		f.a = -1
	default:
		a, err := strconv.Atoi(coeff)
		if err != nil {
			return f, false
		}
		f.a = a
	}
	if rest := arg[k+1:]; rest != "" {
		if rest[0] != '+' && rest[0] != '-' {
			return f, false
		}
		b, err := strconv.Atoi(rest)
		if err != nil {
			return f, false
		}
		f.b = b
	}
	return f, true
}

// matches reports whether 1-based position pos satisfies the expression.
func (f nth) matches(pos int) bool {
	switch {
	case f.exact, f.a == 0:
		return pos == f.b
	case f.a == 1:
		return f.b == 0 || pos == f.b
	case f.a < 0:
		return pos <= f.b && (f.b-pos)%(-f.a) == 0
	}
	return (pos+f.b)%f.a == 0
}

func nthChild(x *Context, nodes []*html.Node, arg string) ([]*html.Node, error) {
	f, ok := parseNth(arg)
	if !ok {
		return nil, parseError(":nth-child("+arg+")", arg, "invalid nth-child expression")
	}
	r := make([]*html.Node, 0, len(nodes))
	for _, n := range nodes {
		if f.matches(x.ChildIndex(n)) {
			r = append(r, n)
		}
	}
	return r, nil
}

// --- Registry --------------------------------------------------------------

type pseudoTable struct {
	sync.RWMutex
	handlers map[string]PseudoClass
}

func newPseudoTable() *pseudoTable {
	return &pseudoTable{handlers: builtinPseudoClasses()}
}

func (t *pseudoTable) lookup(name string) (PseudoClass, bool) {
	t.RLock()
	defer t.RUnlock()
	h, ok := t.handlers[name]
	return h, ok
}

func (t *pseudoTable) register(name string, h PseudoClass) {
	t.Lock()
	defer t.Unlock()
	t.handlers[name] = h
}
