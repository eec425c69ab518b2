/*
Package domquery implements a selector query engine for HTML parse trees.

Overview

Selectors are written in a CSS3 subset, extended by a handful of
DomQuery-style tokens:

    div.note > p:nth-child(2n+1)
    #root li:not(.done)
    ul li:contains(milk)
    a[href^=https]:has(img)
    div{display=none}
    item/@id

A selector is compiled once into a Query, which is an ordered pipeline
of steps. Every step consumes the node set produced by its predecessor
and returns a fresh one. Compiled queries are cached by selector text,
so repeated queries cost a map lookup plus the pipeline run.

Clients usually create an Engine and call its methods:

    e := domquery.New(domquery.WithDocument(doc))
    items, err := e.Select("#root li.a", nil)

Package level functions operate on a default engine.

Pseudo-classes and attribute operators live in per-engine registries.
Clients may add their own with RegisterPseudoClass and RegisterOperator;
registrations of one engine are invisible to every other engine.

Selector Lists

A selector may consist of several comma-separated members. Members are
split at top-level commas only, i.e. commas inside brackets, braces or
parentheses do not separate members. Results of all members are
concatenated and freed from duplicates. If any member fails to compile,
the whole call fails.

Computed Styles

Tokens in braces, e.g. {display=none}, compare against computed style
values. The engine consults a StyleResolver for these. By default it
reads inline style attributes, lets inherited properties cascade from
ancestors, and falls back to user-agent defaults. Package dom/style/cssom
provides a resolver that honours <style> elements as well.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package domquery

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'domquery'.
func tracer() tracing.Trace {
	return tracing.Select("domquery")
}
