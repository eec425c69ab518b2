package dom

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

const siblings = `<html><body><ul id="list">
  <!-- comment -->
  <li class="a first">1</li>
  text
  <li class="b">2</li>
  <li for="x" class="a">3</li>
</ul></body></html>`

func TestElementSiblings(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domquery.dom")
	defer teardown()
	//
	doc, err := Parse(siblings)
	require.NoError(t, err)
	ul := ElementByID(doc, "list")
	require.NotNil(t, ul)
	items := ElementChildren(ul)
	if len(items) != 3 {
		t.Fatalf("expected 3 <li> children, have %d", len(items))
	}
	first := FirstElementChild(ul)
	assert.Equal(t, items[0], first)
	assert.Nil(t, PrevElementSibling(first), "first <li> should have no previous element")
	assert.Equal(t, items[1], NextElementSibling(first))
	assert.Equal(t, items[1], PrevElementSibling(items[2]))
	assert.Nil(t, NextElementSibling(items[2]))
}

func TestTextContent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domquery.dom")
	defer teardown()
	//
	doc, err := Parse(`<div id="d">Hello <b>big</b> world<!-- not me --></div>`)
	require.NoError(t, err)
	d := ElementByID(doc, "d")
	if txt := TextContent(d); txt != "Hello big world" {
		t.Errorf("expected text content 'Hello big world', have %q", txt)
	}
	v, ok := FirstChildText(d)
	assert.True(t, ok)
	assert.Equal(t, "Hello ", v)
}

func TestFirstChildTextJoinsAdjacentTextNodes(t *testing.T) {
	p := &html.Node{Type: html.ElementNode, Data: "p"}
	p.AppendChild(&html.Node{Type: html.TextNode, Data: "12"})
	p.AppendChild(&html.Node{Type: html.TextNode, Data: "34"})
	p.AppendChild(&html.Node{Type: html.ElementNode, Data: "br"})
	v, ok := FirstChildText(p)
	assert.True(t, ok)
	assert.Equal(t, "1234", v)
	_, ok = FirstChildText(&html.Node{Type: html.ElementNode, Data: "p"})
	assert.False(t, ok)
}

func TestAttributes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domquery.dom")
	defer teardown()
	//
	doc, err := Parse(siblings)
	require.NoError(t, err)
	items := ElementChildren(ElementByID(doc, "list"))
	require.Len(t, items, 3)
	cls, ok := Attr(items[0], "className")
	assert.True(t, ok)
	assert.Equal(t, "a first", cls)
	f, ok := Attr(items[2], "htmlFor")
	assert.True(t, ok)
	assert.Equal(t, "x", f)
	_, ok = Attr(items[1], "title")
	assert.False(t, ok)
	assert.True(t, HasClass(items[0], "first"))
	assert.False(t, HasClass(items[1], "first"))
	assert.True(t, TagIs(items[0], "LI"))
	assert.True(t, TagIs(items[0], "*"))
	assert.False(t, TagIs(items[0], "ul"))
}

func TestDescendantsInDocumentOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domquery.dom")
	defer teardown()
	//
	doc, err := Parse(`<div id="a"><p id="b"><span id="c"></span></p><p id="d"></p></div>`)
	require.NoError(t, err)
	a := ElementByID(doc, "a")
	all := Descendants(nil, a, nil)
	ids := make([]string, len(all))
	for i, n := range all {
		ids[i] = ID(n)
	}
	assert.Equal(t, []string{"b", "c", "d"}, ids)
	ps := Descendants(nil, a, HasTag("p"))
	assert.Len(t, ps, 2)
}
