package style

import (
	"testing"

	"github.com/npillmayer/domquery/dom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestPropertyKey(t *testing.T) {
	for in, expected := range map[string]string{
		"display":         "display",
		"fontSize":        "font-size",
		"borderTopWidth":  "border-top-width",
		"margin-top":      "margin-top",
		"backgroundColor": "background-color",
	} {
		assert.Equal(t, expected, PropertyKey(in), in)
	}
}

func TestSplitCompoundProperty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domquery.style")
	defer teardown()
	//
	kvs, err := SplitCompoundProperty("margin", "1px 2px 3px")
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, []KeyValue{
		{"margin-top", "1px"},
		{"margin-right", "2px"},
		{"margin-bottom", "3px"},
		{"margin-left", "2px"},
	}, kvs)
	kvs, err = SplitCompoundProperty("border-radius", "4px")
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "border-top-right-radius", kvs[0].Key)
	_, err = SplitCompoundProperty("color", "red")
	assert.Error(t, err)
	_, err = SplitCompoundProperty("padding", "1 2 3 4 5")
	assert.Error(t, err)
}

func TestPropertyMap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domquery.style")
	defer teardown()
	//
	var nilmap *PropertyMap
	_, ok := nilmap.Property("color")
	assert.False(t, ok, "nil is an empty property map")
	pmap := NewPropertyMap()
	pmap.Add("margin-top", "3PX")
	pmap.Add("x-custom", "a")
	p, ok := pmap.Property("margin-top")
	assert.True(t, ok)
	assert.Equal(t, Property("3px"), p, "values are lower case")
	assert.Equal(t, 2, pmap.Size())
	assert.NotNil(t, pmap.Group(PGMargins))
	_, ok = pmap.Property("margin-left")
	assert.False(t, ok)
}

func TestUserAgentDefaults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domquery.style")
	defer teardown()
	//
	doc, err := dom.Parse(`<p id="p"><b id="b">x</b><span id="s">y</span></p><ul><li id="li">z</li></ul>`)
	if err != nil {
		t.Fatal(err)
	}
	el := func(id string) Property {
		return GetUserAgentDefaultProperty(dom.ElementByID(doc, id), "display")
	}
	assert.Equal(t, Property("block"), el("p"))
	assert.Equal(t, Property("inline"), el("s"))
	assert.Equal(t, Property("list-item"), el("li"))
	assert.Equal(t, Property("bold"), GetUserAgentDefaultProperty(dom.ElementByID(doc, "b"), "font-weight"))
	assert.Equal(t, Property("0"), GetUserAgentDefaultProperty(nil, "padding-left"))
	assert.Equal(t, NullStyle, GetUserAgentDefaultProperty(nil, "color"))
	assert.True(t, IsCascading("color"))
	assert.True(t, IsCascading("font-size"))
	assert.False(t, IsCascading("margin-top"))
}
