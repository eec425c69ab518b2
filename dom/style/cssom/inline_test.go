package cssom

import (
	"testing"

	"github.com/npillmayer/domquery/dom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestParseDeclarations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domquery.cssom")
	defer teardown()
	//
	decls := ParseDeclarations("color: red; margin-top: 3px !important")
	if len(decls) != 2 {
		t.Fatalf("expected 2 declarations, have %d: %v", len(decls), decls)
	}
	assert.Equal(t, "color", decls[0].Key)
	assert.Equal(t, "red", decls[0].Value.String())
	assert.False(t, decls[0].Important)
	assert.Equal(t, "margin-top", decls[1].Key)
	assert.Equal(t, "3px", decls[1].Value.String())
	assert.True(t, decls[1].Important)
}

func TestParseShorthand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domquery.cssom")
	defer teardown()
	//
	pmap := StyleMap(ParseDeclarations("padding: 1px 2px"))
	for key, expected := range map[string]string{
		"padding-top":    "1px",
		"padding-right":  "2px",
		"padding-bottom": "1px",
		"padding-left":   "2px",
	} {
		p, ok := pmap.Property(key)
		assert.True(t, ok, key)
		assert.Equal(t, expected, p.String(), key)
	}
}

func TestStyleMapImportance(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domquery.cssom")
	defer teardown()
	//
	pmap := StyleMap(ParseDeclarations("color: red !important; color: blue"))
	p, _ := pmap.Property("color")
	assert.Equal(t, "red", p.String())
	pmap = StyleMap(ParseDeclarations("color: red; color: blue"))
	p, _ = pmap.Property("color")
	assert.Equal(t, "blue", p.String())
}

func TestInlineStyles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domquery.cssom")
	defer teardown()
	//
	doc, err := dom.Parse(`<div id="outer" style="color: green; margin-top: 4px">
	<span id="inner">x</span><p id="hidden" style="display:none">y</p></div>`)
	if err != nil {
		t.Fatal(err)
	}
	inner := dom.ElementByID(doc, "inner")
	outer := dom.ElementByID(doc, "outer")
	hidden := dom.ElementByID(doc, "hidden")
	s := InlineStyles{}
	v, ok := s.ComputedStyle(inner, "color")
	assert.True(t, ok)
	assert.Equal(t, "green", v, "color is inherited")
	v, _ = s.ComputedStyle(inner, "marginTop")
	assert.Equal(t, "0", v, "margins are not inherited")
	v, _ = s.ComputedStyle(outer, "margin-top")
	assert.Equal(t, "4px", v)
	v, _ = s.ComputedStyle(hidden, "display")
	assert.Equal(t, "none", v)
	v, _ = s.ComputedStyle(inner, "display")
	assert.Equal(t, "inline", v)
	_, ok = s.ComputedStyle(inner, "no-such-property")
	assert.False(t, ok)
}
