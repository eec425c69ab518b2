package domquery

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strconv"
	"sync/atomic"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/domquery/dom"
	"github.com/npillmayer/domquery/dom/domdbg"
	"github.com/npillmayer/domquery/dom/style/cssom"
	"github.com/npillmayer/domquery/maybe"
	"golang.org/x/net/html"
)

// StyleResolver provides computed style values for elements. It is consulted
// for selector tokens in braces, e.g. {display=none}. Property names are given
// in CSS notation ("font-size"). The second return value is false if the
// property has no value for the element.
type StyleResolver interface {
	ComputedStyle(n *html.Node, prop string) (string, bool)
}

// Engine compiles and runs selector queries. It owns a cache of compiled
// queries and the registries of pseudo-classes and attribute operators.
//
// An Engine is safe for concurrent use.
type Engine struct {
	props
	cache   queryCache
	pseudos *pseudoTable
	ops     *operatorTable
	batch   uint64 // atomic
}

// New creates a query engine.
//
// Use it like this:
//
//     e := domquery.New(WithDocument(doc), WithCacheSize(512))
//
func New(opts ...Option) *Engine {
	p := defaultProps()
	for _, option := range opts {
		p = option.config(p)
	}
	e := &Engine{
		props:   p,
		pseudos: newPseudoTable(),
		ops:     newOperatorTable(),
	}
	e.cache = newMapCache()
	if p.cacheSize > 0 {
		if c, err := newLRUCache(p.cacheSize); err == nil {
			e.cache = c
		} else {
			tracer().Errorf("cannot create query cache of size %d: %v", p.cacheSize, err)
		}
	}
	for name, h := range p.morePseudos {
		if err := e.RegisterPseudoClass(name, h); err != nil {
			tracer().Errorf("engine option: %v", err)
		}
	}
	for sym, op := range p.moreOps {
		if err := e.RegisterOperator(sym, op); err != nil {
			tracer().Errorf("engine option: %v", err)
		}
	}
	return e
}

func (e *Engine) nextBatch() uint64 {
	return atomic.AddUint64(&e.batch, 1)
}

func (e *Engine) styleResolver() StyleResolver {
	if e.props.styles != nil {
		return e.props.styles
	}
	return cssom.InlineStyles{}
}

func (e *Engine) rootFor(root *html.Node) (*html.Node, error) {
	if root != nil {
		return root, nil
	}
	if e.props.doc != nil {
		return e.props.doc, nil
	}
	return nil, ErrNoRoot
}

// --- Registration ----------------------------------------------------------

// RegisterPseudoClass adds a pseudo-class to the engine's registry, replacing
// an existing one with the same name. Names consist of letters, digits,
// '-' and '_'. Queries compiled earlier will see the new handler.
func (e *Engine) RegisterPseudoClass(name string, h PseudoClass) error {
	if name == "" || h == nil || !isName(name) {
		return fmt.Errorf("pseudo-class %q: %w", name, ErrInvalidName)
	}
	e.pseudos.register(name, h)
	tracer().Debugf("registered pseudo-class :%s", name)
	return nil
}

// RegisterOperator adds an attribute operator to the engine's registry,
// replacing an existing one with the same symbol. Symbols are '=' or a
// single character followed by '=', e.g. "&=".
func (e *Engine) RegisterOperator(sym string, op Operator) error {
	if op == nil || !operatorSymbol.MatchString(sym) {
		return fmt.Errorf("operator %q: %w", sym, ErrInvalidName)
	}
	e.ops.register(sym, op)
	tracer().Debugf("registered operator %s", sym)
	return nil
}

func isName(s string) bool {
	for i := 0; i < len(s); i++ {
		if !nameChar(s[i]) {
			return false
		}
	}
	return true
}

// --- Compilation -----------------------------------------------------------

// Compile compiles a single selector (not a selector list) into a query, or
// fetches it from the cache. Compiling the same selector text twice yields
// the same query.
func (e *Engine) Compile(sel string, kind Kind) (*Query, error) {
	text := normalizeSelector(sel)
	key := cacheKey{text: text, kind: kind}
	if q, ok := e.cache.get(key); ok {
		tracer().Debugf("query cache hit for %s %q", kind, text)
		return q, nil
	}
	q, err := compile(text, kind)
	if err != nil {
		return nil, err
	}
	q.engine = e
	if kind == KindSelect && e.props.native && nativeCompatible(text) {
		if s, err := cascadia.Parse(text); err == nil {
			q.native = s
		} else {
			tracer().Infof("cascadia rejects %q, using compiled steps: %v", text, err)
		}
	}
	tracer().Debugf("compiled %s (escapes=%v)", q, q.escaped)
	return e.cache.put(key, q), nil
}

// Cached returns the number of compiled queries currently cached.
func (e *Engine) Cached() int {
	return e.cache.size()
}

// --- Queries ---------------------------------------------------------------

// Select selects all elements below root matching a selector or selector
// list, in document order for each member of the list. A nil root denotes
// the engine's default document.
//
// If any member of a selector list fails to compile or to match, Select
// returns the error and no nodes.
func (e *Engine) Select(sel string, root *html.Node) ([]*html.Node, error) {
	root, err := e.rootFor(root)
	if err != nil {
		return nil, err
	}
	x := e.newContext()
	nodes, err := e.selectIn(x, sel, root)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("batch %d: select %q yields %d nodes", x.batch, sel, len(nodes))
	return nodes, nil
}

func (e *Engine) selectIn(x *Context, sel string, root *html.Node) ([]*html.Node, error) {
	members := SplitSelectorList(sel)
	var result []*html.Node
	for _, member := range members {
		q, err := e.Compile(member, KindSelect)
		if err != nil {
			return nil, err
		}
		nodes, err := q.exec(x, []*html.Node{root})
		if err != nil {
			return nil, fmt.Errorf("select %q: %w", member, err)
		}
		result = append(result, nodes...)
	}
	if len(members) > 1 {
		result = Dedup(result)
	}
	return result, nil
}

// SelectNode returns the first element matching a selector, or nil.
func (e *Engine) SelectNode(sel string, root *html.Node) (*html.Node, error) {
	nodes, err := e.Select(sel, root)
	if err != nil || len(nodes) == 0 {
		return nil, err
	}
	tracer().Debugf("select node %q: %s", sel, domdbg.Label(nodes[0]))
	return nodes[0], nil
}

// SelectValue selects the first element matching a selector and returns the
// text of its first child node. If the selector ends in "@name", the value
// of attribute name is returned instead. If there is no such element or the
// value is empty, def is returned.
//
// The selector is compiled as a single selector; selector lists are not
// split.
func (e *Engine) SelectValue(sel string, root *html.Node, def string) (string, error) {
	root, err := e.rootFor(root)
	if err != nil {
		return def, err
	}
	q, err := e.Compile(sel, KindSelect)
	if err != nil {
		return def, err
	}
	nodes, err := q.exec(e.newContext(), []*html.Node{root})
	if err != nil {
		return def, fmt.Errorf("select value %q: %w", sel, err)
	}
	v := maybe.Nothing[string]()
	if len(nodes) > 0 {
		s, ok := q.firstValue(nodes[0])
		v = maybe.Filter(nonEmpty, maybe.Of(s, ok))
	}
	return v.WithDefault(def), nil
}

func nonEmpty(s string) bool { return s != "" }

// SelectNumber works like SelectValue, but interprets the value as a number.
// As much of the value as forms a valid number is parsed, e.g. "12px" yields
// 12. A value not starting with a number yields NaN.
func (e *Engine) SelectNumber(sel string, root *html.Node, def float64) (float64, error) {
	v, err := e.SelectValue(sel, root, strconv.FormatFloat(def, 'g', -1, 64))
	if err != nil {
		return def, err
	}
	return parseLeadingFloat(v), nil
}

// Is checks if a node matches a simple selector.
func (e *Engine) Is(n *html.Node, sel string) (bool, error) {
	if n == nil {
		return false, nil
	}
	r, err := e.filterIn(e.newContext(), []*html.Node{n}, sel, false)
	return len(r) > 0, err
}

// IsAll checks if every node of a node set matches a simple selector.
func (e *Engine) IsAll(nodes []*html.Node, sel string) (bool, error) {
	rest, err := e.filterIn(e.newContext(), nodes, sel, true)
	return err == nil && len(rest) == 0, err
}

// IsID checks if the element with a given id in the engine's default
// document matches a simple selector.
func (e *Engine) IsID(id string, sel string) (bool, error) {
	if e.props.doc == nil {
		return false, ErrNoRoot
	}
	return e.Is(dom.ElementByID(e.props.doc, id), sel)
}

// Filter returns the nodes of a node set which match a simple selector, or,
// if invert is set, the nodes which do not match. The order of the node set
// is preserved.
func (e *Engine) Filter(nodes []*html.Node, sel string, invert bool) ([]*html.Node, error) {
	return e.filterIn(e.newContext(), nodes, sel, invert)
}

func (e *Engine) filterIn(x *Context, nodes []*html.Node, sel string, invert bool) ([]*html.Node, error) {
	q, err := e.Compile(sel, KindSimple)
	if err != nil {
		return nil, err
	}
	r, err := q.exec(x, nodes)
	if err != nil {
		return nil, fmt.Errorf("filter %q: %w", sel, err)
	}
	if invert {
		return Diff(r, nodes), nil
	}
	return r, nil
}
