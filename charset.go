package linestruct

import "strings"

// Escape prefixes every occurrence of a structural code point in s with the
// escape code point, so that s can be embedded as scalar data. See spec §4.1.
func Escape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if isSpecial(r) {
			b.WriteRune(Escape)
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Unescape reverses Escape: it drops every escape code point and copies the
// following code point verbatim. A trailing lone escape (escape as the last
// code point of s) is kept as a literal escape character, matching the
// parsers' treatment of trailing escapes as content (spec §7).
func Unescape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == Escape {
			if i+1 < len(runes) {
				i++
				b.WriteRune(runes[i])
				continue
			}
			// Lone trailing escape: keep it literally.
			b.WriteRune(Escape)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
