package timespan

import (
	"iter"
	"slices"
	"strconv"
	"sync"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// vocabulary maps lower-cased words to their token
var vocabulary = func() map[string]Token {
	v := map[string]Token{
		"today":     DayToken{Offset: 0},
		"yesterday": DayToken{Offset: -1},
		"last":      LastToken{},
		"this":      ThisToken{},
		"to":        ToToken{},
		"until":     ToToken{},
		"week":      SpanToken{Kind: WeekKind},
		"weeks":     SpanToken{Kind: WeekKind},
		"month":     SpanToken{Kind: MonthKind},
		"months":    SpanToken{Kind: MonthKind},
		"year":      SpanToken{Kind: YearKind},
		"years":     SpanToken{Kind: YearKind},
	}
	for i := range 7 {
		v[WeekdayKind(i).String()] = SpanToken{Kind: WeekdayKind(i)}
	}
	for i := range 12 {
		v[SpecificMonthKind(i).String()] = SpanToken{Kind: SpecificMonthKind(i)}
	}
	return v
}()

// casers are not safe for concurrent use, keep one per goroutine in flight
var lowerPool = sync.Pool{
	New: func() any { return cases.Lower(language.Und) },
}

func lower(s string) string {
	c := lowerPool.Get().(cases.Caser)
	out := c.String(s)
	lowerPool.Put(c)
	return out
}

// Tokenize classifies each word into exactly one Token. The sequence is lazy
// and can be ranged over any number of times with identical results.
func Tokenize(words []string) iter.Seq[Token] {
	words = slices.Clone(words)
	return func(yield func(Token) bool) {
		for _, w := range words {
			if !yield(Classify(w)) {
				return
			}
		}
	}
}

// Tokens collects Tokenize into a slice
func Tokens(words []string) []Token {
	return slices.Collect(Tokenize(words))
}

// Classify maps a single word to its token. Checks run keyword first, then
// number, full date, partial date, and fall back to UnknownToken.
func Classify(word string) Token {
	w := lower(word)
	if tok, ok := vocabulary[w]; ok {
		return tok
	}
	if n, err := strconv.ParseUint(w, 10, 32); err == nil {
		return NumberToken{Value: uint32(n)}
	}
	if d, err := time.Parse(time.DateOnly, w); err == nil && inRange(d) {
		return ISODateToken{Date: d}
	}
	if d, err := time.Parse("2006-01", w); err == nil && inRange(d) {
		return PartialISODateToken{Year: d.Year(), Month: d.Month()}
	}
	return UnknownToken{Word: word}
}
