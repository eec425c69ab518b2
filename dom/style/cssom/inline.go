package cssom

import (
	"strings"

	"github.com/npillmayer/domquery/dom/style"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"golang.org/x/net/html"
)

// Declaration is a single property declaration, e.g. "margin-top: 3px".
type Declaration struct {
	Key       string
	Value     style.Property
	Important bool
}

// ParseDeclarations parses a list of declarations as found in a style
// attribute. Shorthand properties for margins, padding and borders are
// expanded into their long forms, in addition to the shorthand itself.
// Malformed input stops parsing; the declarations read until then are
// returned.
func ParseDeclarations(decls string) []Declaration {
	var result []Declaration
	if strings.TrimSpace(decls) == "" {
		return result
	}
	p := css.NewParser(parse.NewInputString(decls), true)
	for {
		gt, _, data := p.Next()
		if gt == css.ErrorGrammar {
			break
		}
		if gt != css.DeclarationGrammar && gt != css.CustomPropertyGrammar {
			continue
		}
		key := strings.ToLower(string(data))
		var b strings.Builder
		for _, val := range p.Values() {
			b.Write(val.Data)
		}
		value, important := splitImportant(b.String())
		for _, kv := range expand(key, style.Property(value)) {
			result = append(result, Declaration{Key: kv.Key, Value: kv.Value, Important: important})
		}
	}
	return result
}

func splitImportant(v string) (string, bool) {
	v = strings.Join(strings.Fields(v), " ")
	i := strings.LastIndexByte(v, '!')
	if i < 0 {
		return v, false
	}
	if strings.EqualFold(strings.TrimSpace(v[i+1:]), "important") {
		return strings.TrimSpace(v[:i]), true
	}
	return v, false
}

func expand(key string, value style.Property) []style.KeyValue {
	if kvs, err := style.SplitCompoundProperty(key, value); err == nil {
		return append(kvs, style.KeyValue{Key: key, Value: value})
	}
	return []style.KeyValue{{Key: key, Value: value}}
}

// StyleMap collects declarations into a property map. Important
// declarations win over normal ones; otherwise later ones win.
func StyleMap(decls []Declaration) *style.PropertyMap {
	pmap := style.NewPropertyMap()
	for _, important := range []bool{false, true} {
		for _, d := range decls {
			if d.Important == important {
				pmap.Add(d.Key, d.Value)
			}
		}
	}
	return pmap
}

// InlineStyles resolves style properties from style attributes only.
// Inherited properties are looked up at the ancestors of an element.
// Properties not set by any style attribute take the user-agent default.
type InlineStyles struct{}

// ComputedStyle returns the value of a property for an element. prop may be
// given in CSS notation ("font-size") or in DOM notation ("fontSize").
func (InlineStyles) ComputedStyle(n *html.Node, prop string) (string, bool) {
	if n == nil {
		return "", false
	}
	key := style.PropertyKey(prop)
	p, ok := inlineProperty(n, key)
	if ok && !p.IsInherit() {
		return p.String(), true
	}
	if p.IsInherit() || style.IsCascading(key) {
		for a := n.Parent; a != nil; a = a.Parent {
			if v, ok := inlineProperty(a, key); ok && !v.IsInherit() {
				return v.String(), true
			}
		}
	}
	p = style.GetUserAgentDefaultProperty(n, key)
	return p.String(), !p.IsEmpty()
}

func inlineProperty(n *html.Node, key string) (style.Property, bool) {
	if n.Type != html.ElementNode {
		return style.NullStyle, false
	}
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == "style" {
			return StyleMap(ParseDeclarations(a.Val)).Property(key)
		}
	}
	return style.NullStyle, false
}
