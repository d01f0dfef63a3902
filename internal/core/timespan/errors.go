package timespan

import (
	"fmt"
	"strconv"
	"time"
)

// Kind classifies a ParseError
type Kind uint8

const (
	// KindEmptyInput means there were no words at all
	KindEmptyInput Kind = iota + 1
	// KindInvalidToken means a word is outside the vocabulary or asks for the future
	KindInvalidToken
	// KindUnexpectedToken means a known token appeared where the grammar forbids it
	KindUnexpectedToken
	// KindEndBeforeStart means an interval would be empty or inverted
	KindEndBeforeStart
	// KindOutOfRange means calendar arithmetic left the representable range
	KindOutOfRange
	// KindLanguageIsComplicated means an ambiguous phrase was refused
	KindLanguageIsComplicated
)

func (k Kind) String() string {
	switch k {
	case KindEmptyInput:
		return "empty_input"
	case KindInvalidToken:
		return "invalid_token"
	case KindUnexpectedToken:
		return "unexpected_token"
	case KindEndBeforeStart:
		return "end_before_start"
	case KindOutOfRange:
		return "out_of_range"
	case KindLanguageIsComplicated:
		return "language_is_complicated"
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// ParseError is the single error type returned by this package
type ParseError struct {
	Kind Kind
	// Word is the offending word for KindInvalidToken
	Word string
	// Token is the offending token for KindUnexpectedToken, nil at end of input
	Token Token
	// Start and End are the rejected bounds for KindEndBeforeStart
	Start, End time.Time
	// Detail is a human hint, may be empty
	Detail string
}

// Sentinels for errors.Is, they match any ParseError of the same Kind
var (
	ErrEmptyInput            = &ParseError{Kind: KindEmptyInput}
	ErrInvalidToken          = &ParseError{Kind: KindInvalidToken}
	ErrUnexpectedToken       = &ParseError{Kind: KindUnexpectedToken}
	ErrEndBeforeStart        = &ParseError{Kind: KindEndBeforeStart}
	ErrOutOfRange            = &ParseError{Kind: KindOutOfRange}
	ErrLanguageIsComplicated = &ParseError{Kind: KindLanguageIsComplicated}
)

func (e *ParseError) Error() string {
	var msg string
	switch e.Kind {
	case KindEmptyInput:
		msg = "empty input"
	case KindInvalidToken:
		msg = fmt.Sprintf("invalid token %q", e.Word)
	case KindUnexpectedToken:
		if e.Token == nil {
			msg = "unexpected end of input"
		} else {
			msg = fmt.Sprintf("unexpected token %q", e.Token.String())
		}
	case KindEndBeforeStart:
		msg = fmt.Sprintf("end %s is not after start %s",
			e.End.Format(time.RFC3339), e.Start.Format(time.RFC3339))
	case KindOutOfRange:
		msg = "time span out of range"
	case KindLanguageIsComplicated:
		msg = "language is complicated"
	default:
		msg = e.Kind.String()
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

// Is reports whether target is a ParseError of the same Kind
func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	return ok && t.Kind == e.Kind
}

func errEmptyInput() error { return &ParseError{Kind: KindEmptyInput} }

func errInvalid(word, detail string) error {
	return &ParseError{Kind: KindInvalidToken, Word: word, Detail: detail}
}

func errUnexpected(tok Token, detail string) error {
	return &ParseError{Kind: KindUnexpectedToken, Token: tok, Detail: detail}
}

func errEndBeforeStart(start, end time.Time) error {
	return &ParseError{Kind: KindEndBeforeStart, Start: start, End: end}
}

func errOutOfRange() error { return &ParseError{Kind: KindOutOfRange} }

func errComplicated(detail string) error {
	return &ParseError{Kind: KindLanguageIsComplicated, Detail: detail}
}
