/*
Package cssom resolves style properties of HTML elements.

Overview

Selectors may test style properties in braces, e.g. {display=none}. This
package provides the values for these tests. Two resolvers are available:

InlineStyles reads the style attribute of an element and its ancestors,
falling back to user-agent defaults. It needs no set-up and is what a query
engine uses when not told otherwise.

Resolver applies the rules of style sheets to a document, ordered by
importance and selector specificity, with inline declarations taking
precedence over sheet rules of equal importance. It builds a styled tree
(see package styledtree) the first time a property is requested.

CSS handling is de-coupled by introducing interfaces StyleSheet and Rule.
Package douceuradapter implements them for style sheets parsed by
github.com/aymerick/douceur.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'domquery.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("domquery.cssom")
}
