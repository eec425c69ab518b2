package domquery

import (
	"fmt"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/domquery/dom"
	"github.com/npillmayer/domquery/dom/style"
	"golang.org/x/net/html"
)

// Kind is the kind of a compiled query.
type Kind uint8

const (
	// KindSelect queries select elements from a tree, starting at a root node.
	KindSelect Kind = iota
	// KindSimple queries filter a given node set. They may not contain combinators.
	KindSimple
)

func (k Kind) String() string {
	if k == KindSimple {
		return "simple"
	}
	return "select"
}

// Query is a compiled selector. Queries are immutable and may be shared
// between goroutines.
type Query struct {
	engine    *Engine
	text      string // normalized selector text
	kind      Kind
	lead      mode // initial traversal mode
	steps     []step
	valueAttr string // attribute of a trailing '@attr' token
	escaped   bool   // selector contained escapes
	native    cascadia.Sel
}

// Text returns the selector text the query has been compiled from.
func (q *Query) Text() string {
	return q.text
}

// Kind returns the kind of the query.
func (q *Query) Kind() Kind {
	return q.kind
}

// String lists the steps of a compiled query.
func (q *Query) String() string {
	s := fmt.Sprintf("%s query %q: %s", q.kind, q.text, stepList(q.steps))
	if q.valueAttr != "" {
		s += " | value @" + q.valueAttr
	}
	return s
}

// Apply runs a compiled query. A select query expects a single root node as
// input, a simple query filters the nodes given. Each call to Apply is a
// batch of its own.
func (q *Query) Apply(input ...*html.Node) ([]*html.Node, error) {
	return q.exec(q.engine.newContext(), input)
}

func (q *Query) exec(x *Context, input []*html.Node) ([]*html.Node, error) {
	r := &run{x: x, mode: q.lead}
	if q.kind == KindSelect {
		if len(input) != 1 || input[0] == nil {
			return nil, fmt.Errorf("select query %q needs exactly one root: %w", q.text, ErrNoRoot)
		}
		r.root = input[0]
		if q.native != nil {
			tracer().Debugf("batch %d: native query for %q", x.batch, q.text)
			return filterNodes(cascadia.QueryAll(r.root, q.native), func(n *html.Node) bool {
				return n != r.root
			}), nil
		}
	}
	nodes := input
	var err error
	for _, s := range q.steps {
		if nodes, err = s.apply(r, nodes); err != nil {
			return nil, err
		}
	}
	return Dedup(nodes), nil
}

// --- Compiler --------------------------------------------------------------

// normalizeSelector trims a selector and collapses runs of whitespace into
// single blanks.
func normalizeSelector(sel string) string {
	sel = strings.TrimSpace(sel)
	if !strings.ContainsAny(sel, " \t\n\r\f") {
		return sel
	}
	var b strings.Builder
	space := false
	for i := 0; i < len(sel); i++ {
		if isSpace(sel[i]) {
			space = true
			continue
		}
		if space {
			b.WriteByte(' ')
			space = false
		}
		b.WriteByte(sel[i])
	}
	return b.String()
}

// compiler translates a selector into a sequence of steps. It works on the
// escape-normalized selector text s, consuming it from the front.
type compiler struct {
	sel       string // selector as given, for error messages
	s         string // remaining text
	kind      Kind
	steps     []step
	valueAttr string
}

func compile(sel string, kind Kind) (*Query, error) {
	norm := NormalizeEscapes(sel)
	c := &compiler{sel: sel, s: norm, kind: kind}
	q := &Query{text: sel, kind: kind, escaped: norm != sel}
	if c.s == "" {
		return nil, parseError(sel, "", "empty selector")
	}
	if m, ok := c.combinator(); ok {
		if kind == KindSimple {
			return nil, parseError(sel, norm, "combinator in simple selector")
		}
		q.lead = m
	}
	c.s = strings.TrimLeft(c.s, "/")
	for c.s != "" {
		last := c.s
		if err := c.leadingToken(); err != nil {
			return nil, err
		}
		if err := c.filters(); err != nil {
			return nil, err
		}
		if m, ok := c.combinator(); ok {
			if kind == KindSimple {
				return nil, parseError(sel, last, "combinator in simple selector")
			}
			c.emit(modeStep{m})
		}
		if c.s == last {
			return nil, parseError(sel, c.s, "no progress")
		}
	}
	q.steps = c.steps
	q.valueAttr = c.valueAttr
	return q, nil
}

func (c *compiler) emit(s step) {
	c.steps = append(c.steps, s)
}

// combinator consumes a combinator, if present. It reports the mode set by
// the combinator. A blank, not followed by an explicit combinator, denotes
// a descendant combinator.
func (c *compiler) combinator() (mode, bool) {
	s := c.s
	i := 0
	if i < len(s) && s[i] == ' ' {
		i++
	}
	if i < len(s) && strings.IndexByte("/>+~", s[i]) >= 0 {
		m := modeFor(s[i])
		i++
		if i < len(s) && s[i] == ' ' {
			i++
		}
		c.s = s[i:]
		return m, true
	}
	if i > 0 {
		c.s = s[i:]
		return modeDescendant, true
	}
	return modeDescendant, false
}

func (c *compiler) atCombinator() bool {
	return c.s == "" || strings.IndexByte(" />+~", c.s[0]) >= 0
}

// leadingToken handles a tag or id token at the start of a compound.
func (c *compiler) leadingToken() error {
	if strings.HasPrefix(c.s, "#") {
		id := c.ident(1, false)
		if id == "" {
			return parseError(c.sel, c.s, "missing id")
		}
		c.s = c.s[1+len(id):]
		if c.kind == KindSelect {
			c.emit(idLookupStep{id: Denormalize(id)})
		} else {
			c.emit(idStep{id: Denormalize(id)})
		}
		return nil
	}
	if tag := c.ident(0, true); tag != "" {
		c.s = c.s[len(tag):]
		if c.kind == KindSelect {
			c.emit(traverseStep{tag: Denormalize(tag)})
		} else {
			c.emit(tagStep{tag: Denormalize(tag)})
		}
		return nil
	}
	if c.kind == KindSelect && !strings.HasPrefix(c.s, "@") {
		c.emit(traverseStep{tag: "*"})
	}
	return nil
}

// filters consumes class, id, attribute, style and pseudo-class tokens up to
// the next combinator.
func (c *compiler) filters() error {
	for !c.atCombinator() {
		if c.valueAttr != "" {
			return parseError(c.sel, c.s, "attribute value selection must be the last token")
		}
		var err error
		switch c.s[0] {
		case '.':
			cls := c.ident(1, false)
			if cls == "" {
				return parseError(c.sel, c.s, "missing class name")
			}
			c.s = c.s[1+len(cls):]
			c.emit(classStep{class: Denormalize(cls)})
		case '#':
			id := c.ident(1, false)
			if id == "" {
				return parseError(c.sel, c.s, "missing id")
			}
			c.s = c.s[1+len(id):]
			c.emit(idStep{id: Denormalize(id)})
		case ':':
			err = c.pseudo()
		case '[', '{':
			err = c.attribute()
		case '@':
			err = c.valueAttribute()
		default:
			err = parseError(c.sel, c.s, "unexpected character")
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// ident returns the identifier starting at offset start of the remaining
// text. If tag is set, the characters '*' and '|' are accepted as well.
// Normalized escapes are part of identifiers.
func (c *compiler) ident(start int, tag bool) string {
	s := c.s
	i := start
	for i < len(s) {
		ch := s[i]
		switch {
		case nameChar(ch), ch >= 0x80:
			i++
		case tag && (ch == '*' || ch == '|'):
			i++
		case ch == '\\' && i+7 <= len(s) && allHex(s[i+1:i+7]):
			i += 7
		default:
			return s[start:i]
		}
	}
	return s[start:i]
}

// name scans a name of a pseudo-class or attribute, which may not contain
// escapes.
func (c *compiler) name(start int) string {
	i := start
	for i < len(c.s) && nameChar(c.s[i]) {
		i++
	}
	return c.s[start:i]
}

// pseudo consumes ":name" or ":name(arg)". The argument extends to the
// parenthesis balancing the opening one.
func (c *compiler) pseudo() error {
	name := c.name(1)
	if name == "" {
		return parseError(c.sel, c.s, "missing pseudo-class name")
	}
	i := 1 + len(name)
	var raw string
	if i < len(c.s) && c.s[i] == '(' {
		end := closingParen(c.s, i)
		if end < 0 {
			return parseError(c.sel, c.s, "unbalanced parenthesis")
		}
		raw = c.s[i+1 : end]
		i = end + 1
	}
	c.s = c.s[i:]
	c.emit(pseudoStep{name: name, arg: Denormalize(raw), rawArg: reescape(raw)})
	return nil
}

// closingParen returns the index of the parenthesis closing the one at
// position open, or -1.
func closingParen(s string, open int) int {
	depth := 0
	var quote byte
	for i := open; i < len(s); i++ {
		ch := s[i]
		switch {
		case ch == '\\':
			i++
		case quote != 0:
			if ch == quote {
				quote = 0
			}
		case ch == '"' || ch == '\'':
			quote = ch
		case ch == '(':
			depth++
		case ch == ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// reescape turns normalized text back into selector text which normalizes
// to the same form again: every canonical escape is terminated by a blank.
func reescape(s string) string {
	if strings.IndexByte(s, '\\') < 0 {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+7 <= len(s) && allHex(s[i+1:i+7]) {
			b.WriteString(s[i : i+7])
			b.WriteByte(' ')
			i += 6
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// attribute consumes "[name]", "[name op value]" or the computed style
// variants in braces.
func (c *compiler) attribute() error {
	s := c.s
	isStyle := s[0] == '{'
	closer := byte(']')
	if isStyle {
		closer = '}'
	}
	i := 1
	if i < len(s) && s[i] == '@' {
		i++
	}
	name := c.name(i)
	if name == "" {
		return parseError(c.sel, s, "missing attribute name")
	}
	i += len(name)
	i = skipBlank(s, i)
	if i >= len(s) {
		return parseError(c.sel, s, "unterminated attribute")
	}
	step := attrStep{name: name, style: isStyle}
	if isStyle {
		step.name = style.PropertyKey(name)
	}
	if s[i] == closer {
		c.s = s[i+1:]
		c.emit(step)
		return nil
	}
	switch {
	case s[i] == '=':
		step.op = "="
		i++
	case i+1 < len(s) && s[i+1] == '=' && s[i] != closer:
		step.op = s[i : i+2]
		i += 2
	default:
		return parseError(c.sel, s, "invalid attribute operator")
	}
	i = skipBlank(s, i)
	if i < len(s) && (s[i] == '"' || s[i] == '\'') {
		q := s[i]
		end := strings.IndexByte(s[i+1:], q)
		if end < 0 {
			return parseError(c.sel, s, "unterminated string")
		}
		step.value = s[i+1 : i+1+end]
		i = skipBlank(s, i+2+end)
		if i >= len(s) || s[i] != closer {
			return parseError(c.sel, s, "unterminated attribute")
		}
	} else {
		end := strings.IndexByte(s[i:], closer)
		if end < 0 {
			return parseError(c.sel, s, "unterminated attribute")
		}
		step.value = strings.TrimSpace(s[i : i+end])
		i += end
	}
	step.value = Denormalize(step.value)
	if isStyle {
		step.value = strings.ToLower(step.value) // computed values are lower case
	}
	c.s = s[i+1:]
	c.emit(step)
	return nil
}

// valueAttribute consumes a terminal "@name" token, which makes the query
// yield the value of an attribute of the first result node.
func (c *compiler) valueAttribute() error {
	if c.kind == KindSimple {
		return parseError(c.sel, c.s, "attribute value selection in simple selector")
	}
	i := 1
	for i < len(c.s) && (nameChar(c.s[i]) || c.s[i] == '.') {
		i++
	}
	if i == 1 {
		return parseError(c.sel, c.s, "missing attribute name")
	}
	c.valueAttr = c.s[1:i]
	c.s = c.s[i:]
	if c.s != "" {
		return parseError(c.sel, c.s, "attribute value selection must be the last token")
	}
	return nil
}

func skipBlank(s string, i int) int {
	for i < len(s) && s[i] == ' ' {
		i++
	}
	return i
}

// nativeCompatible reports whether a selector is a single compound of a
// type selector and classes, for which cascadia yields exactly the results
// of the compiled pipeline.
func nativeCompatible(sel string) bool {
	if sel == "" {
		return false
	}
	i := 0
	if sel[0] == '*' {
		i = 1
	} else {
		for i < len(sel) && (nameChar(sel[i]) && (i > 0 || !isDigitOrDash(sel[i]))) {
			i++
		}
	}
	for i < len(sel) {
		if sel[i] != '.' || i+1 >= len(sel) || !nameChar(sel[i+1]) || isDigitOrDash(sel[i+1]) {
			return false
		}
		i++
		for i < len(sel) && nameChar(sel[i]) {
			i++
		}
	}
	return true
}

func isDigitOrDash(c byte) bool {
	return '0' <= c && c <= '9' || c == '-'
}

// firstValue extracts the value a value selection yields for a result node.
func (q *Query) firstValue(n *html.Node) (string, bool) {
	if q.valueAttr != "" {
		return dom.Attr(n, q.valueAttr)
	}
	return dom.FirstChildText(n)
}
