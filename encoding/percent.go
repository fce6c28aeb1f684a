// Package encoding implements the percent-encoder used for view option
// values.
//
// The allow-list is deliberately narrower than RFC 3986's unreserved set
// as interpreted by net/url: only [A-Za-z0-9], '-', '_' and '.' pass
// through unescaped, every other byte is rendered as %XX with two
// uppercase hex digits. Spaces are escaped as %20, never '+'. The encoder
// is deterministic and locale-independent.
package encoding

const upperhex = "0123456789ABCDEF"

// NeedsEscape reports whether b must be percent-escaped in a query value.
func NeedsEscape(b byte) bool {
	if b >= 'a' && b <= 'z' {
		return false
	}
	if b >= 'A' && b <= 'Z' {
		return false
	}
	if b >= '0' && b <= '9' {
		return false
	}
	if b == '-' || b == '_' || b == '.' {
		return false
	}

	return true
}

// EncodedLen returns the exact number of bytes Encode produces for s.
// When EncodedLen(s) == len(s), no byte of s needs escaping and Encode
// returns s unchanged.
func EncodedLen(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if NeedsEscape(s[i]) {
			n += 3
		} else {
			n++
		}
	}

	return n
}

// Encode percent-escapes s. If no byte needs escaping the input string is
// returned as-is without allocating.
func Encode(s string) string {
	needed := EncodedLen(s)
	if needed == len(s) {
		return s
	}

	return string(AppendEncode(make([]byte, 0, needed), s))
}

// AppendEncode appends the percent-escaped form of s to dst and returns
// the extended slice.
func AppendEncode(dst []byte, s string) []byte {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if NeedsEscape(c) {
			dst = append(dst, '%', upperhex[c>>4], upperhex[c&0x0f])
		} else {
			dst = append(dst, c)
		}
	}

	return dst
}
