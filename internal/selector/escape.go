package selector

import (
	"fmt"
	"strings"
)

// escapeIdent escapes a string for use as a CSS identifier, following the
// CSS.escape serialization algorithm.
func escapeIdent(value string) string {
	var b strings.Builder
	runes := []rune(value)
	for i, r := range runes {
		switch {
		case r == 0:
			b.WriteRune('�')
		case r <= 0x1f || r == 0x7f:
			fmt.Fprintf(&b, "\\%x ", r)
		case r >= '0' && r <= '9' && (i == 0 || (i == 1 && runes[0] == '-')):
			// A leading digit (or a digit after a leading dash) must be
			// hex-escaped.
			fmt.Fprintf(&b, "\\%x ", r)
		case r == '-' && i == 0 && len(runes) == 1:
			b.WriteString("\\-")
		case r >= 0x80 || r == '-' || r == '_' ||
			(r >= '0' && r <= '9') ||
			(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			b.WriteRune(r)
		default:
			b.WriteRune('\\')
			b.WriteRune(r)
		}
	}
	return b.String()
}

// escapeAttrValue escapes a string for embedding in a double-quoted
// attribute selector value.
func escapeAttrValue(value string) string {
	value = strings.ReplaceAll(value, `\`, `\\`)
	return strings.ReplaceAll(value, `"`, `\"`)
}
