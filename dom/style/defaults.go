package style

import (
	"golang.org/x/net/html"
)

// User-agent values for properties which are not inherited. Inherited
// properties without a value stay unset.
var nonInherited = map[string]string{
	"position":            "static",
	"float":               "none",
	"background-color":    "transparent",
	"border-top-color":    "currentcolor",
	"border-left-color":   "currentcolor",
	"border-right-color":  "currentcolor",
	"border-bottom-color": "currentcolor",
	"border-top-style":    "none",
	"border-left-style":   "none",
	"border-right-style":  "none",
	"border-bottom-style": "none",
	"overflow":            "visible",
	"opacity":             "1",
}

var isDimension = map[string]string{
	"width":                      "auto",
	"height":                     "auto",
	"min-width":                  "none",
	"min-height":                 "none",
	"max-width":                  "none",
	"max-height":                 "none",
	"top":                        "auto",
	"right":                      "auto",
	"bottom":                     "auto",
	"left":                       "auto",
	"margin-top":                 "0",
	"margin-left":                "0",
	"margin-right":               "0",
	"margin-bottom":              "0",
	"padding-top":                "0",
	"padding-left":               "0",
	"padding-right":              "0",
	"padding-bottom":             "0",
	"border-top-width":           "medium",
	"border-left-width":          "medium",
	"border-right-width":         "medium",
	"border-bottom-width":        "medium",
	"border-top-left-radius":     "0",
	"border-top-right-radius":    "0",
	"border-bottom-left-radius":  "0",
	"border-bottom-right-radius": "0",
}

// inheritedRoot holds the values an inherited property takes at the root of
// a document, if no style sets it.
var inheritedRoot = map[string]string{
	"visibility":  "visible",
	"direction":   "ltr",
	"white-space": "normal",
	"text-align":  "start",
	"font-style":  "normal",
	"font-weight": "normal",
}

// GetUserAgentDefaultProperty returns the user-agent default property for a
// given key, or NullStyle if there is none.
func GetUserAgentDefaultProperty(node *html.Node, key string) Property {
	switch key {
	case "display":
		return DisplayPropertyForHTMLNode(node)
	case "font-weight":
		if node != nil && node.Type == html.ElementNode {
			switch node.Data {
			case "b", "strong", "th", "h1", "h2", "h3", "h4", "h5", "h6":
				return "bold"
			}
		}
	case "font-style":
		if node != nil && node.Type == html.ElementNode {
			switch node.Data {
			case "i", "em", "cite", "var":
				return "italic"
			}
		}
	}
	if dim, ok := isDimension[key]; ok {
		return Property(dim)
	}
	if p, ok := nonInherited[key]; ok {
		return Property(p)
	}
	if p, ok := inheritedRoot[key]; ok {
		return Property(p)
	}
	return NullStyle
}

// DisplayPropertyForHTMLNode returns the default `display` CSS property for an HTML node.
func DisplayPropertyForHTMLNode(node *html.Node) Property {
	if node == nil {
		return "none"
	}
	if node.Type == html.DocumentNode {
		return "block"
	}
	if node.Type != html.ElementNode {
		tracer().Debugf("cannot get display-property for non-element")
		return "none"
	}
	switch node.Data {
	case "head", "script", "style", "title", "meta", "link", "template":
		return "none"
	case "li":
		return "list-item"
	case "table":
		return "table"
	case "tr":
		return "table-row"
	case "td", "th":
		return "table-cell"
	case "html", "aside", "body", "div", "p", "h1", "h2", "h3",
		"h4", "h5", "h6", "ol", "section", "ul", "article", "header",
		"footer", "nav", "main", "form", "pre", "blockquote", "dl", "dd", "dt",
		"figure", "hr", "address", "fieldset":
		return "block"
	case "i", "b", "em", "span", "strong", "a", "code", "small", "label",
		"abbr", "cite", "sub", "sup", "var", "kbd", "mark", "q", "s", "u":
		return "inline"
	case "img", "input", "button", "select", "textarea":
		return "inline-block"
	}
	tracer().Infof("unknown HTML element %s will be set to display: inline", node.Data)
	return "inline"
}
