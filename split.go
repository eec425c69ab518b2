package domquery

import "strings"

// SplitSelectorList splits a selector list at top-level commas. Commas
// nested inside brackets, braces or parentheses, within quoted strings, or
// escaped by a backslash do not separate members. Members are trimmed;
// empty members are kept, so the caller will see them fail to compile.
func SplitSelectorList(sel string) []string {
	if strings.IndexByte(sel, ',') < 0 {
		return []string{strings.TrimSpace(sel)}
	}
	var members []string
	var depth int
	var quote byte
	start := 0
	for i := 0; i < len(sel); i++ {
		c := sel[i]
		switch {
		case c == '\\':
			i++ // skip escaped character
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			if depth > 0 {
				quote = c
			}
		case c == '[' || c == '{' || c == '(':
			depth++
		case c == ']' || c == '}' || c == ')':
			if depth > 0 {
				depth--
			}
		case c == ',' && depth == 0:
			members = append(members, strings.TrimSpace(sel[start:i]))
			start = i + 1
		}
	}
	return append(members, strings.TrimSpace(sel[start:]))
}
