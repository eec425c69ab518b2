package domquery

import (
	"testing"

	"github.com/npillmayer/domquery/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestInlineStyleTokens(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domquery")
	defer teardown()
	//
	doc := parse(t, `<div style="color: Red"><p style="display:none">a</p>
	<p style="font-size: 12px">b</p><span>c</span></div>`)
	e := New()
	for sel, expected := range map[string][]string{
		"p{display=none}":     {"a"},
		"p{display!=none}":    {"b"},
		"p{fontSize=12px}":    {"b"},
		"p{font-size^=12}":    {"b"},
		"div *{color=red}":    {"a", "b", "c"},
		"span{display=inline}": {"c"},
		"p{margin-top=0}":     {"a", "b"},
		"p{no-such-thing}":    {},
		"span{color=Red}":     {"c"},
		"span{color^=RE}":     {"c"},
	} {
		nodes, err := e.Select(sel, doc)
		require.NoError(t, err, sel)
		assert.Equal(t, expected, texts(nodes), sel)
	}
}

func TestStyleTokenIgnoresValueCase(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domquery")
	defer teardown()
	//
	doc := parse(t, `<div id="root" style="font-family: Arial"><ul><li>x</li></ul></div>`)
	e := New()
	for _, sel := range []string{"li{font-family=Arial}", "li{fontFamily=ARIAL}", "li{font-family=arial}"} {
		nodes, err := e.Select(sel, doc)
		require.NoError(t, err, sel)
		assert.Equal(t, []string{"x"}, texts(nodes), sel)
	}
	q, err := e.Compile("li{font-family=Arial}", KindSelect)
	require.NoError(t, err)
	assert.Contains(t, q.String(), `{font-family="arial"}`)
}

type fixedStyles map[string]string

func (s fixedStyles) ComputedStyle(n *html.Node, prop string) (string, bool) {
	v, ok := s[n.Data+"/"+prop]
	return v, ok
}

func TestStyleResolverOption(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domquery")
	defer teardown()
	//
	doc := parse(t, `<div><p>a</p><i>b</i></div>`)
	e := New(WithStyleResolver(fixedStyles{"i/visibility": "hidden"}))
	nodes, err := e.Select("*{visibility=hidden}", doc)
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, texts(nodes))
	nodes, err = e.Select("p{visibility}", doc)
	require.NoError(t, err)
	assert.Empty(t, nodes)
}

func TestStyleSheetResolver(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domquery")
	defer teardown()
	//
	doc := parse(t, `<html><head><style>
	.hide { display: none }
	ul li { color: green }
	li.warn { color: orange }
	</style></head><body><ul>
	<li class="hide">1</li><li>2</li><li class="warn">3</li><li style="color: blue">4</li>
	</ul></body></html>`)
	e := New(WithDocument(doc), WithStyleResolver(douceuradapter.NewResolver(doc)))
	for sel, expected := range map[string][]string{
		"li{display=none}":   {"1"},
		"li{display!=none}":  {"2", "3", "4"},
		"li{color=green}":    {"1", "2"},
		"li{color=orange}":   {"3"},
		"li{color=blue}":     {"4"},
		"li:not({color=green})": {"3", "4"},
	} {
		nodes, err := e.Select(sel, nil)
		require.NoError(t, err, sel)
		assert.Equal(t, expected, texts(nodes), sel)
	}
	ok, err := e.Is(nil, "{display=none}")
	require.NoError(t, err)
	assert.False(t, ok)
}
