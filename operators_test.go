package domquery

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttributeOperators(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domquery")
	defer teardown()
	//
	doc := parse(t, `<div>
	<p id="x" data-x="foobar" lang="en-US" class="a b" data-n="9" data-e="">x</p>
	<p id="y" title="t">y</p>
	</div>`)
	e := New()
	for sel, expected := range map[string][]string{
		"p[data-x^=foo]":     {"x"},
		"p[data-x$=bar]":     {"x"},
		"p[data-x*=oob]":     {"x"},
		"p[data-x!=foobar]":  {},
		"p[data-x=foobar]":   {"x"},
		"p[data-x='foobar']": {"x"},
		`p[data-x = "foobar"]`: {"x"},
		"p[data-x=foo]":      {},
		"p[lang|=en]":        {"x"},
		"p[lang|=e]":         {},
		"p[class~=b]":        {"x"},
		"p[class~=a b]":      {},
		"p[data-n%=3]":       {"x"},
		"p[data-n%=2]":       {},
		"p[data-n%=0]":       {},
		"p[data-x]":          {"x"},
		"p[@data-x]":         {"x"},
		"p[data-e]":          {},
		"p[title!=x]":        {"y"},
		"p[className=a b]":   {"x"},
	} {
		nodes, err := e.Select(sel, doc)
		require.NoError(t, err, sel)
		assert.Equal(t, expected, texts(nodes), sel)
	}
	_, err := e.Select("p[data-x#=1]", doc)
	var operr *UnknownOperatorError
	if assert.True(t, errors.As(err, &operr), "unknown operators fail at match time") {
		assert.Equal(t, "#=", operr.Op)
	}
	assert.True(t, errors.Is(err, ErrUnknownOperator))
}

func TestRegisterOperator(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domquery")
	defer teardown()
	//
	doc := parse(t, `<p data-v="Hello">x</p>`)
	e := New()
	_, err := e.Select("p[data-v#=hello]", doc)
	require.Error(t, err)
	require.NoError(t, e.RegisterOperator("#=", func(a, v string) bool {
		return len(a) == len(v)
	}))
	nodes, err := e.Select("p[data-v#=hello]", doc)
	require.NoError(t, err)
	assert.Equal(t, 1, len(nodes))
	for _, sym := range []string{"", "==x", "ab=", "]=", " =", "#"} {
		err := e.RegisterOperator(sym, func(a, v string) bool { return true })
		assert.True(t, errors.Is(err, ErrInvalidName), "symbol %q", sym)
	}
	assert.True(t, errors.Is(e.RegisterOperator("@=", nil), ErrInvalidName))
}

func TestModulo(t *testing.T) {
	assert.True(t, modulo("10", "5"))
	assert.True(t, modulo(" 7.5 ", "2.5"))
	assert.False(t, modulo("10", "3"))
	assert.False(t, modulo("x", "3"))
	assert.False(t, modulo("3", "0"))
}
