/*
Package styledtree is a straightforward implementation of a styled document tree.

Overview

A styled tree mirrors the element structure of an HTML parse tree. Every
styled node links to its HTML node and carries the style properties
specified for it by style sheets and inline style attributes. Reading a
property from a styled node applies CSS inheritance: inherited properties
without a local value are looked up at the ancestors.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package styledtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'domquery.style'.
func tracer() tracing.Trace {
	return tracing.Select("domquery.style")
}
