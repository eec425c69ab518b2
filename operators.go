package domquery

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"sync"
)

// Operator compares the actual value of an attribute or style property with
// the value given in a selector. Operators are called for present values only;
// an absent attribute never satisfies an operator.
type Operator func(actual, expected string) bool

// operatorSymbol restricts operator symbols to what the tokenizer is able to
// recognize: '=', optionally preceded by a single other character.
var operatorSymbol = regexp.MustCompile(`^[^\s\]\}'"]?=$`)

func builtinOperators() map[string]Operator {
	return map[string]Operator{
		"=":  func(a, v string) bool { return a == v },
		"!=": func(a, v string) bool { return a != v },
		"^=": strings.HasPrefix,
		"$=": strings.HasSuffix,
		"*=": strings.Contains,
		"%=": modulo,
		"|=": func(a, v string) bool {
			return a == v || strings.HasPrefix(a, v+"-")
		},
		"~=": func(a, v string) bool {
			for _, token := range strings.Fields(a) {
				if token == v {
					return true
				}
			}
			return false
		},
	}
}

// modulo is true if a is divisible by v, both interpreted as numbers.
func modulo(a, v string) bool {
	x, err := strconv.ParseFloat(strings.TrimSpace(a), 64)
	if err != nil {
		return false
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil || y == 0 {
		return false
	}
	return math.Mod(x, y) == 0
}

// --- Registry --------------------------------------------------------------

type operatorTable struct {
	sync.RWMutex
	ops map[string]Operator
}

func newOperatorTable() *operatorTable {
	return &operatorTable{ops: builtinOperators()}
}

func (t *operatorTable) lookup(sym string) (Operator, bool) {
	t.RLock()
	defer t.RUnlock()
	op, ok := t.ops[sym]
	return op, ok
}

func (t *operatorTable) register(sym string, op Operator) {
	t.Lock()
	defer t.Unlock()
	t.ops[sym] = op
}
