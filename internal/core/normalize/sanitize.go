package normalize

import (
	"strings"
	"unicode/utf8"
)

// Sanitize drops invalid UTF-8 and turns every control character (C0, DEL
// and C1, tabs and newlines included) into a space. Clean input is
// returned unchanged without allocating.
func Sanitize(s string) string {
	i := 0
	for i < len(s) {
		b := s[i]
		if b < 0x80 {
			if b < 0x20 || b == 0x7F {
				break
			}
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if (r == utf8.RuneError && size == 1) || isC1(r) {
			break
		}
		i += size
	}
	if i == len(s) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	b.WriteString(s[:i])
	for _, r := range s[i:] {
		switch {
		case r == utf8.RuneError:
			// ranging yields RuneError for each invalid byte; a literal
			// U+FFFD in the input is dropped too
		case r < 0x20 || r == 0x7F || isC1(r):
			b.WriteByte(' ')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isC1(r rune) bool { return r >= 0x80 && r <= 0x9F }
