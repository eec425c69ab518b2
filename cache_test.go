package domquery

import (
	"testing"

	"github.com/npillmayer/domquery/dom/domdbg"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestCompileIsCached(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domquery")
	defer teardown()
	//
	e := New()
	q1, err := e.Compile("div  p", KindSelect)
	require.NoError(t, err)
	q2, err := e.Compile(" div p", KindSelect)
	require.NoError(t, err)
	assert.True(t, q1 == q2, "normalized selector text is the cache key")
	q3, err := e.Compile("div", KindSimple)
	require.NoError(t, err)
	q4, _ := e.Compile("div", KindSelect)
	assert.True(t, q3 != q4, "kinds are cached separately")
	assert.Equal(t, 3, e.Cached())
	_, err = e.Compile("div[[", KindSelect)
	assert.Error(t, err)
	assert.Equal(t, 3, e.Cached(), "failed compilations are not cached")
}

func TestLRUCache(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domquery")
	defer teardown()
	//
	e := New(WithCacheSize(2))
	doc := parse(t, listDoc)
	for _, sel := range []string{"li", "ul", "div", "li.a"} {
		_, err := e.Select(sel, doc)
		require.NoError(t, err)
	}
	assert.Equal(t, 2, e.Cached())
	nodes, err := e.Select("li", doc)
	require.NoError(t, err)
	assert.Equal(t, 3, len(nodes), "evicted queries are re-compiled")
	assert.Equal(t, 0, New(WithCacheSize(-1)).props.cacheSize)
}

func TestNativeAgreesWithPipeline(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domquery")
	defer teardown()
	//
	doc := parse(t, `<html><body><div class="a"><p class="a b">1</p>
	<div><p>2</p><span class="b">3</span></div></div><P class="B">4</P></body></html>`)
	native, compiled := New(), New(WithoutNativeQuery())
	for _, sel := range []string{"p", "div", "*", ".a", ".b", "p.a.b", "span.b", "div.a", "P", ".B", "em"} {
		q, err := native.Compile(sel, KindSelect)
		require.NoError(t, err)
		assert.NotNil(t, q.native, sel)
		n1, err := native.Select(sel, doc)
		require.NoError(t, err, sel)
		n2, err := compiled.Select(sel, doc)
		require.NoError(t, err, sel)
		if !sameNodes(n1, n2) {
			t.Errorf("native and compiled results differ for %q", sel)
			t.Logf("native:\n%scompiled:\n%s", domdbg.Nodes(n1), domdbg.Nodes(n2))
		}
	}
	q, err := native.Compile("div p", KindSelect)
	require.NoError(t, err)
	assert.Nil(t, q.native)
	q, err = compiled.Compile("p", KindSelect)
	require.NoError(t, err)
	assert.Nil(t, q.native)
}

func sameNodes(a, b []*html.Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
