package cssom

import (
	"sort"
	"sync"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/domquery/dom/style"
	"github.com/npillmayer/domquery/dom/styledtree"
	"github.com/npillmayer/domquery/tree"
	"golang.org/x/net/html"
)

// Resolver resolves style properties by applying style sheets to a
// document. The styled tree is built on first use and kept until
// Invalidate is called; changes to the document in between are not seen.
//
// A Resolver is safe for concurrent use.
type Resolver struct {
	doc    *html.Node
	sheets []StyleSheet
	mu     sync.Mutex
	root   *tree.Node[*styledtree.StyNode]
	styled map[*html.Node]*styledtree.StyNode
}

// NewResolver creates a resolver for a document and a list of style sheets.
// Sheets later in the list win over earlier ones for rules of equal
// specificity.
func NewResolver(doc *html.Node, sheets ...StyleSheet) *Resolver {
	return &Resolver{doc: doc, sheets: sheets}
}

// ComputedStyle returns the value of a property for an element. prop may be
// given in CSS notation ("font-size") or in DOM notation ("fontSize").
// Elements outside the resolver's document are resolved from their inline
// styles.
func (r *Resolver) ComputedStyle(n *html.Node, prop string) (string, bool) {
	sn := r.styledNode(n)
	if sn == nil {
		return InlineStyles{}.ComputedStyle(n, prop)
	}
	p := sn.PropertyValue(style.PropertyKey(prop))
	return p.String(), !p.IsEmpty()
}

// StyledTree returns the root of the styled tree for the document.
func (r *Resolver) StyledTree() *tree.Node[*styledtree.StyNode] {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.build()
	return r.root
}

// Invalidate drops the styled tree. It will be re-built from the document
// at the next request.
func (r *Resolver) Invalidate() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.root, r.styled = nil, nil
}

func (r *Resolver) styledNode(n *html.Node) *styledtree.StyNode {
	if n == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.build()
	return r.styled[n]
}

// compiledRule is a style sheet rule with its selectors parsed.
type compiledRule struct {
	sels  cascadia.SelectorGroup
	rule  Rule
	order int
}

// declaration is a candidate value for a property of an element.
type declaration struct {
	Declaration
	inline      bool
	specificity cascadia.Specificity
	order       int
}

func (r *Resolver) build() {
	if r.styled != nil || r.doc == nil {
		return
	}
	rules := r.compileRules()
	r.styled = make(map[*html.Node]*styledtree.StyNode)
	r.root = r.styleNode(r.doc, rules)
	var walk func(h *html.Node, parent *tree.Node[*styledtree.StyNode])
	walk = func(h *html.Node, parent *tree.Node[*styledtree.StyNode]) {
		for c := h.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			sn := r.styleNode(c, rules)
			parent.AddChild(sn)
			walk(c, sn)
		}
	}
	walk(r.doc, r.root)
	tracer().Debugf("styled tree with %d nodes from %d rules", len(r.styled), len(rules))
}

func (r *Resolver) compileRules() []compiledRule {
	var rules []compiledRule
	for _, sheet := range r.sheets {
		if sheet == nil || sheet.Empty() {
			continue
		}
		for _, rule := range sheet.Rules() {
			sels, err := cascadia.ParseGroup(rule.Selector())
			if err != nil {
				tracer().Infof("skipping style rule %q: %v", rule.Selector(), err)
				continue
			}
			rules = append(rules, compiledRule{sels: sels, rule: rule, order: len(rules)})
		}
	}
	return rules
}

func (r *Resolver) styleNode(h *html.Node, rules []compiledRule) *tree.Node[*styledtree.StyNode] {
	n := styledtree.NewNodeForHTMLNode(h)
	sn := styledtree.Node(n)
	r.styled[h] = sn
	if h.Type != html.ElementNode {
		return n
	}
	var decls []declaration
	for _, cr := range rules {
		spec, ok := matchSpecificity(cr.sels, h)
		if !ok {
			continue
		}
		for _, key := range cr.rule.Properties() {
			important := cr.rule.IsImportant(key)
			for _, kv := range expand(key, cr.rule.Value(key)) {
				decls = append(decls, declaration{
					Declaration: Declaration{Key: kv.Key, Value: kv.Value, Important: important},
					specificity: spec,
					order:       cr.order,
				})
			}
		}
	}
	for i, a := range h.Attr {
		if a.Namespace != "" || a.Key != "style" {
			continue
		}
		for _, d := range ParseDeclarations(a.Val) {
			decls = append(decls, declaration{Declaration: d, inline: true, order: i})
		}
	}
	if len(decls) == 0 {
		return n
	}
	sort.SliceStable(decls, func(i, j int) bool {
		a, b := decls[i], decls[j]
		if a.Important != b.Important {
			return !a.Important
		}
		if a.inline != b.inline {
			return !a.inline
		}
		if a.specificity != b.specificity {
			return a.specificity.Less(b.specificity)
		}
		return a.order < b.order
	})
	pmap := style.NewPropertyMap()
	for _, d := range decls {
		pmap.Add(d.Key, d.Value)
	}
	sn.SetStyles(pmap)
	tracer().Debugf("styled <%s>: %d declarations in %d groups", h.Data, len(decls), pmap.Size())
	return n
}

// matchSpecificity returns the highest specificity of the selectors in a
// group matching an element.
func matchSpecificity(sels cascadia.SelectorGroup, h *html.Node) (cascadia.Specificity, bool) {
	var best cascadia.Specificity
	found := false
	for _, sel := range sels {
		if !sel.Match(h) {
			continue
		}
		if spec := sel.Specificity(); !found || best.Less(spec) {
			best = spec
		}
		found = true
	}
	return best, found
}
