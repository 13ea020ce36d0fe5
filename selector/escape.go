package selector

import (
	"fmt"
	"strings"
)

// EscapeString escapes a string for use inside CSS double quotes.
// Backslashes and double quotes are escaped per CSS syntax: \" and \\.
func EscapeString(s string) string {
	// Fast path: nothing to escape.
	if !strings.ContainsAny(s, `"\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 4)
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// EscapeIdent escapes a string so it can be used as a CSS identifier
// (element, class, id, pseudo name), following the CSSOM
// serialize-an-identifier rules: NUL becomes U+FFFD, control characters
// and a leading digit (or a digit after a leading "-") become hex
// escapes, and anything outside the identifier character set gets a
// backslash prefix.
func EscapeIdent(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i, r := range s {
		switch {
		case r == 0:
			b.WriteRune('�')
		case r < 0x20 || r == 0x7f:
			fmt.Fprintf(&b, "\\%x ", r)
		case r >= '0' && r <= '9' && (i == 0 || (i == 1 && s[0] == '-')):
			fmt.Fprintf(&b, "\\%x ", r)
		case i == 0 && r == '-' && len(s) == 1:
			b.WriteString(`\-`)
		case r >= 0x80 || r == '-' || r == '_' ||
			r >= '0' && r <= '9' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z':
			b.WriteRune(r)
		default:
			b.WriteByte('\\')
			b.WriteRune(r)
		}
	}
	return b.String()
}

// AttrMatch formats an attribute match expression for Builder.Attr:
// the value is double-quoted and escaped, e.g.
// AttrMatch("href", "$=", `.png`) -> `href$=".png"`.
// With an empty operation only the attribute name is produced.
func AttrMatch(key, op, value string) string {
	if op == "" {
		return key
	}
	return key + op + `"` + EscapeString(value) + `"`
}
