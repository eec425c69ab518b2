package domquery

import (
	"golang.org/x/net/html"
)

// props is the configuration of an engine.
type props struct {
	doc         *html.Node
	cacheSize   int // 0 = unbounded
	native      bool
	styles      StyleResolver
	morePseudos map[string]PseudoClass
	moreOps     map[string]Operator
}

func defaultProps() props {
	return props{native: true}
}

// Option is a type to help configuring engines at creation time.
type Option struct {
	config func(props) props
}

// WithDocument sets the default document of an engine. Queries without an
// explicit root start at this document, and ids given to IsID are looked
// up in it.
//
//     e := domquery.New(WithDocument(doc))
//     items, err := e.Select("li.done", nil)
//
func WithDocument(doc *html.Node) Option {
	return Option{config: func(p props) props {
		p.doc = doc
		return p
	}}
}

// WithCacheSize bounds the number of compiled queries an engine keeps.
// Queries are evicted least recently used first. n ≤ 0 leaves the cache
// unbounded, which is the default.
func WithCacheSize(n int) Option {
	return Option{config: func(p props) props {
		if n < 0 {
			n = 0
		}
		p.cacheSize = n
		return p
	}}
}

// WithoutNativeQuery disables the cascadia fast path for plain
// tag/class selectors. Every query will run through the compiled pipeline.
func WithoutNativeQuery() Option {
	return Option{config: func(p props) props {
		p.native = false
		return p
	}}
}

// WithStyleResolver sets the resolver for computed-style tokens like
// {display=none}. Without it, an engine reads inline style attributes and
// user-agent defaults only.
func WithStyleResolver(r StyleResolver) Option {
	return Option{config: func(p props) props {
		p.styles = r
		return p
	}}
}

// WithPseudoClass registers a pseudo-class at creation time.
// See Engine.RegisterPseudoClass.
func WithPseudoClass(name string, h PseudoClass) Option {
	return Option{config: func(p props) props {
		if p.morePseudos == nil {
			p.morePseudos = make(map[string]PseudoClass)
		}
		p.morePseudos[name] = h
		return p
	}}
}

// WithOperator registers an attribute operator at creation time.
// See Engine.RegisterOperator.
func WithOperator(sym string, op Operator) Option {
	return Option{config: func(p props) props {
		if p.moreOps == nil {
			p.moreOps = make(map[string]Operator)
		}
		p.moreOps[sym] = op
		return p
	}}
}
