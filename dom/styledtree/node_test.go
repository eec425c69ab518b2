package styledtree

import (
	"testing"

	"github.com/npillmayer/domquery/dom"
	"github.com/npillmayer/domquery/dom/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestPropertyValueCascades(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domquery.style")
	defer teardown()
	//
	doc, err := dom.Parse(`<div id="d"><span id="s">x</span></div>`)
	if err != nil {
		t.Fatal(err)
	}
	div := NewNodeForHTMLNode(dom.ElementByID(doc, "d"))
	span := NewNodeForHTMLNode(dom.ElementByID(doc, "s"))
	div.AddChild(span)
	divStyles := style.NewPropertyMap()
	divStyles.Add("color", "green")
	divStyles.Add("margin-top", "5px")
	Node(div).SetStyles(divStyles)
	spanStyles := style.NewPropertyMap()
	spanStyles.Add("margin-left", "inherit")
	spanStyles.Add("border-top-style", "inherit")
	Node(span).SetStyles(spanStyles)
	//
	sn := Node(span)
	assert.Equal(t, dom.ElementByID(doc, "s"), sn.HTMLNode())
	assert.Equal(t, style.Property("green"), sn.PropertyValue("color"))
	assert.Equal(t, style.Property("0"), sn.PropertyValue("margin-top"), "margins do not cascade")
	assert.Equal(t, style.Property("0"), sn.PropertyValue("margin-left"), "explicit inherit with no ancestor value")
	assert.Equal(t, style.Property("none"), sn.PropertyValue("border-top-style"))
	assert.Equal(t, style.Property("inline"), sn.PropertyValue("display"))
	assert.Nil(t, Node(nil))
}
