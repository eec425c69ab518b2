package domquery

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// NormalizeEscapes rewrites CSS escape sequences of a selector into a
// canonical fixed-width form: a backslash followed by exactly six hex digits.
//
// A backslash followed by 1 to 6 hex digits (and an optional single
// whitespace character, which belongs to the escape) is padded to six digits.
// A backslash followed by any other character is replaced by the six-digit
// code point of that character. Text without backslashes is returned as is.
func NormalizeEscapes(sel string) string {
	if strings.IndexByte(sel, '\\') < 0 {
		return sel
	}
	var b strings.Builder
	b.Grow(len(sel) + 16)
	for i := 0; i < len(sel); {
		c := sel[i]
		if c != '\\' {
			b.WriteByte(c)
			i++
			continue
		}
		i++
		if i >= len(sel) { // dangling backslash
			b.WriteByte('\\')
			break
		}
		j := i
		for j < len(sel) && j-i < 6 && hexDigit(sel[j]) {
			j++
		}
		if j > i {
			b.WriteByte('\\')
			for k := j - i; k < 6; k++ {
				b.WriteByte('0')
			}
			b.WriteString(sel[i:j])
			if j < len(sel) && isSpace(sel[j]) {
				j++
			}
			i = j
			continue
		}
		r, w := utf8.DecodeRuneInString(sel[i:])
		fmt.Fprintf(&b, "\\%06x", r)
		i += w
	}
	return b.String()
}

// Denormalize replaces canonical escapes, as produced by NormalizeEscapes,
// by the characters they denote. Text without backslashes is returned as is.
func Denormalize(sel string) string {
	if strings.IndexByte(sel, '\\') < 0 {
		return sel
	}
	var b strings.Builder
	b.Grow(len(sel))
	for i := 0; i < len(sel); {
		if sel[i] == '\\' && i+7 <= len(sel) && allHex(sel[i+1:i+7]) {
			code, _ := strconv.ParseUint(sel[i+1:i+7], 16, 32)
			if code == 0 || code > utf8.MaxRune {
				b.WriteRune(utf8.RuneError)
			} else {
				b.WriteRune(rune(code))
			}
			i += 7
			continue
		}
		b.WriteByte(sel[i])
		i++
	}
	return b.String()
}

// EscapeIdent escapes every character of s which may not appear literally
// in a selector identifier, e.g. to build an id selector from an arbitrary
// id. The result uses the canonical escape form.
func EscapeIdent(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r < utf8.RuneSelf && nameChar(byte(r)) {
			b.WriteRune(r)
			continue
		}
		fmt.Fprintf(&b, "\\%06x", r)
	}
	return b.String()
}

func allHex(s string) bool {
	for i := 0; i < len(s); i++ {
		if !hexDigit(s[i]) {
			return false
		}
	}
	return true
}

func hexDigit(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

// nameChar returns whether c can be part of a selector identifier without
// being escaped.
func nameChar(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9' ||
		c == '_' || c == '-'
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f':
		return true
	}
	return false
}
