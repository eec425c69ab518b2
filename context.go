package domquery

import (
	"golang.org/x/net/html"
)

// Context is handed to pseudo-class handlers. It grants re-entrant access to
// the engine running the query. Nested queries started through a Context
// share the batch of the enclosing top-level call.
type Context struct {
	engine *Engine
	batch  uint64
	index  *childIndex
	rawArg string // argument of the current pseudo-class, escapes preserved
}

func (e *Engine) newContext() *Context {
	b := e.nextBatch()
	return &Context{
		engine: e,
		batch:  b,
		index:  newChildIndex(b),
	}
}

// Engine returns the engine running the current query.
func (x *Context) Engine() *Engine {
	return x.engine
}

// Batch returns the id of the top-level query invocation this context
// belongs to.
func (x *Context) Batch() uint64 {
	return x.batch
}

// ChildIndex returns the 1-based position of element n among its element
// siblings.
func (x *Context) ChildIndex(n *html.Node) int {
	return x.index.position(n)
}

// SelectorArg returns the argument of the pseudo-class currently being
// matched in a form suitable for compiling it as a selector: CSS escapes
// are preserved, whereas the argument passed to the handler has them
// resolved to literal characters. Outside of a pseudo-class handler it
// returns "".
func (x *Context) SelectorArg() string {
	return x.rawArg
}

// Select runs a full selector query below root.
func (x *Context) Select(sel string, root *html.Node) ([]*html.Node, error) {
	return x.engine.selectIn(x, sel, root)
}

// Filter reduces a node set to the nodes matching a simple selector.
// If invert is set, it returns the nodes not matching.
func (x *Context) Filter(nodes []*html.Node, sel string, invert bool) ([]*html.Node, error) {
	return x.engine.filterIn(x, nodes, sel, invert)
}

// Is checks if a node matches a simple selector.
func (x *Context) Is(n *html.Node, sel string) (bool, error) {
	r, err := x.engine.filterIn(x, []*html.Node{n}, sel, false)
	return len(r) > 0, err
}

func (x *Context) withArg(raw string) *Context {
	cx := *x
	cx.rawArg = raw
	return &cx
}
