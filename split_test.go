package domquery

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitSelectorList(t *testing.T) {
	for in, expected := range map[string][]string{
		"div":                     {"div"},
		" div , p ":               {"div", "p"},
		`a[title="x,y"], b`:       {`a[title="x,y"]`, "b"},
		"a[title=x,y], b":         {"a[title=x,y]", "b"},
		"p:not(.a,.b), i":         {"p:not(.a,.b)", "i"},
		"div{font-family=a,b}, i": {"div{font-family=a,b}", "i"},
		`a\,b, c`:                 {`a\,b`, "c"},
		"a,,b":                    {"a", "", "b"},
		"":                        {""},
	} {
		assert.Equal(t, expected, SplitSelectorList(in), in)
	}
}
