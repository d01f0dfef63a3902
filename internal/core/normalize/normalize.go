// Package normalize canonicalizes project and tag names before they are
// stored or looked up, so visually identical names map to one row.
//
// Pipeline order
// 1 drop invalid UTF-8 and control characters
// 2 Unicode NFKC normalization
// 3 remove format characters (ZWJ, ZWNJ, BOM)
// 4 fold fullwidth forms to ASCII
// 5 collapse whitespace runs to one space and trim
//
// Case is preserved: "Client" and "client" are different names.
package normalize

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// transformers carry state, so each call takes its own chain
var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFKC,
			runes.Remove(runes.In(unicode.Cf)),
			width.Fold,
		)
	},
}

// Name returns the canonical form of a project or tag name; "" when
// nothing printable is left
func Name(s string) string {
	if s == "" {
		return ""
	}
	s = Sanitize(s)

	tr := chainPool.Get().(transform.Transformer)
	out, _, err := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)
	if err != nil {
		out = s
	}
	return strings.Join(strings.Fields(out), " ")
}

// Names applies Name to each element, dropping blanks and repeats while
// keeping first-seen order
func Names(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		n := Name(s)
		if n == "" {
			continue
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
