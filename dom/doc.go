/*
Package dom provides navigation helpers for HTML parse trees.

Overview

The query engine operates on trees produced by golang.org/x/net/html.
That package exposes nodes as plain structs with sibling and child
pointers, leaving element-centric navigation to clients. Package dom
collects these helpers: element siblings and children, text content,
attribute access and simple predicates on nodes.

Comment nodes, doctype nodes and text nodes are never considered
elements; helpers named "Element…" skip over them.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'domquery.dom'.
func tracer() tracing.Trace {
	return tracing.Select("domquery.dom")
}
