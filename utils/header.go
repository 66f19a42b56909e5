package utils

import (
	"fmt"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// HeaderSafeJSON escapes every rune outside printable ASCII as \uXXXX so an already-encoded JSON document can be
// sent as an HTTP header value.  Runes above U+FFFF are written as a UTF-16 surrogate pair.  The input must be valid
// JSON; escaping is only applied inside string literals, which is the only place non-ASCII can legally appear.
func HeaderSafeJSON(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b))

	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		b = b[size:]

		switch {
		case r == 0x7f:
			fmt.Fprintf(&sb, `\u%04x`, r)
		case r < utf8.RuneSelf:
			sb.WriteRune(r)
		case r > 0xffff:
			r1, r2 := utf16.EncodeRune(r)
			fmt.Fprintf(&sb, `\u%04x\u%04x`, r1, r2)
		default:
			fmt.Fprintf(&sb, `\u%04x`, r)
		}
	}

	return sb.String()
}
