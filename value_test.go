package domquery

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLeadingFloat(t *testing.T) {
	for in, expected := range map[string]float64{
		"12":       12,
		"12px":     12,
		"  -3.5em": -3.5,
		"+.25":     0.25,
		"1e3x":     1000,
		"2e":       2,
		"7.":       7,
		"Infinity": math.Inf(1),
		"-Infinityx": math.Inf(-1),
	} {
		assert.Equal(t, expected, parseLeadingFloat(in), in)
	}
	for _, in := range []string{"", "px", ".", "-", "e5", "+-1"} {
		if x := parseLeadingFloat(in); !math.IsNaN(x) {
			t.Errorf("expected NaN for %q, have %v", in, x)
		}
	}
}
