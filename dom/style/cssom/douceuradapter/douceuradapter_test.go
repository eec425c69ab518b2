package douceuradapter

import (
	"testing"

	"github.com/npillmayer/domquery/dom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestExtractStyleElements(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domquery.cssom")
	defer teardown()
	//
	doc, err := dom.Parse(`<html><head><style>p { color: red }</style><style></style></head>
	<body><style>@media print { p { color: black } } .x { margin: 0 !important }</style></body></html>`)
	if err != nil {
		t.Fatal(err)
	}
	sheets := ExtractStyleElements(doc)
	if len(sheets) != 2 {
		t.Fatalf("expected 2 style sheets, have %d", len(sheets))
	}
	rules := sheets[0].Rules()
	assert.Equal(t, 1, len(rules))
	assert.Equal(t, "p", rules[0].Selector())
	assert.Equal(t, []string{"color"}, rules[0].Properties())
	assert.Equal(t, "red", rules[0].Value("color").String())
	rules = sheets[1].Rules()
	assert.Equal(t, 1, len(rules), "at-rules are skipped")
	assert.True(t, rules[0].IsImportant("margin"))
	sheets[0].AppendRules(sheets[1])
	assert.Equal(t, 2, len(sheets[0].Rules()))
}
