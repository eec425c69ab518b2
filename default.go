package domquery

import (
	"sync"

	"golang.org/x/net/html"
)

var defaultEngine struct {
	once   sync.Once
	engine *Engine
}

// Default returns the engine used by the package level query functions.
// It has no default document, so queries need an explicit root.
func Default() *Engine {
	defaultEngine.once.Do(func() {
		defaultEngine.engine = New()
	})
	return defaultEngine.engine
}

// Select selects all elements below root matching a selector, using the
// default engine. See Engine.Select.
func Select(sel string, root *html.Node) ([]*html.Node, error) {
	return Default().Select(sel, root)
}

// SelectNode returns the first element below root matching a selector, using
// the default engine.
func SelectNode(sel string, root *html.Node) (*html.Node, error) {
	return Default().SelectNode(sel, root)
}

// SelectValue returns the text value of the first element matching a selector,
// using the default engine. See Engine.SelectValue.
func SelectValue(sel string, root *html.Node, def string) (string, error) {
	return Default().SelectValue(sel, root, def)
}

// SelectNumber returns the numeric value of the first element matching a
// selector, using the default engine. See Engine.SelectNumber.
func SelectNumber(sel string, root *html.Node, def float64) (float64, error) {
	return Default().SelectNumber(sel, root, def)
}

// Is checks if a node matches a simple selector, using the default engine.
func Is(n *html.Node, sel string) (bool, error) {
	return Default().Is(n, sel)
}

// Filter filters a node set with a simple selector, using the default engine.
func Filter(nodes []*html.Node, sel string, invert bool) ([]*html.Node, error) {
	return Default().Filter(nodes, sel, invert)
}

// RegisterPseudoClass adds a pseudo-class to the default engine.
func RegisterPseudoClass(name string, h PseudoClass) error {
	return Default().RegisterPseudoClass(name, h)
}

// RegisterOperator adds an attribute operator to the default engine.
func RegisterOperator(sym string, op Operator) error {
	return Default().RegisterOperator(sym, op)
}
