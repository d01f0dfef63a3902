package timespan

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func at(y int, m time.Month, d, hh, mm, ss int) time.Time {
	return time.Date(y, m, d, hh, mm, ss, 0, time.UTC)
}

func day(y int, m time.Month, d int) time.Time { return at(y, m, d, 0, 0, 0) }

func TestParse_Resolves(t *testing.T) {
	wed := at(2023, time.October, 25, 12, 33, 17)

	tests := []struct {
		name  string
		words string
		now   time.Time
		start time.Time
		end   time.Time
	}{
		{"today", "today", wed, day(2023, 10, 25), wed},
		{"yesterday", "yesterday", wed, day(2023, 10, 24), day(2023, 10, 25)},
		{"case insensitive", "YeStErDaY", wed, day(2023, 10, 24), day(2023, 10, 25)},
		{"this week", "this week", wed, day(2023, 10, 23), day(2023, 10, 30)},
		{"last week", "last week", wed, day(2023, 10, 16), day(2023, 10, 23)},
		{"this month", "this month", wed, day(2023, 10, 1), day(2023, 11, 1)},
		{"last month", "last month", wed, day(2023, 9, 1), day(2023, 10, 1)},
		{"this year", "this year", wed, day(2023, 1, 1), day(2024, 1, 1)},
		{"last year", "last year", wed, day(2022, 1, 1), day(2023, 1, 1)},
		{"plural unit", "last weeks", wed, day(2023, 10, 16), day(2023, 10, 23)},
		{
			name: "weekday earlier this week", words: "wednesday",
			now:   at(2024, time.February, 24, 9, 0, 0),
			start: day(2024, 2, 21), end: day(2024, 2, 22),
		},
		{
			name: "weekday later in week steps back", words: "friday",
			now:   at(2024, time.February, 21, 9, 0, 0),
			start: day(2024, 2, 16), end: day(2024, 2, 17),
		},
		{
			name: "weekday is today", words: "wednesday",
			now:   at(2024, time.February, 21, 9, 0, 0),
			start: day(2024, 2, 21), end: day(2024, 2, 22),
		},
		{
			name: "sunday from monday", words: "sunday",
			now:   at(2024, time.February, 19, 9, 0, 0),
			start: day(2024, 2, 18), end: day(2024, 2, 19),
		},
		{
			name: "month last year", words: "april",
			now:   at(2024, time.March, 21, 0, 0, 0),
			start: day(2023, 4, 1), end: day(2023, 5, 1),
		},
		{
			name: "month this year", words: "february",
			now:   at(2024, time.March, 21, 0, 0, 0),
			start: day(2024, 2, 1), end: day(2024, 3, 1),
		},
		{
			name: "last month across year", words: "last month",
			now:   at(2024, time.January, 15, 8, 0, 0),
			start: day(2023, 12, 1), end: day(2024, 1, 1),
		},
		{
			name: "month to yesterday", words: "april to yesterday",
			now:   at(2024, time.May, 10, 8, 0, 0),
			start: day(2024, 4, 1), end: day(2024, 5, 10),
		},
		{"last week to this week", "last week to this week", wed, day(2023, 10, 16), day(2023, 10, 30)},
		{"last year until this month", "last year until this month", wed, day(2022, 1, 1), day(2023, 11, 1)},
		{
			name: "composed ending today", words: "yesterday until today",
			now:   wed,
			start: day(2023, 10, 24), end: wed,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseString(tc.words, NewContext(tc.now))
			if err != nil {
				t.Fatalf("ParseString(%q) error: %v", tc.words, err)
			}
			if !got.Start().Equal(tc.start) || !got.End().Equal(tc.end) {
				t.Fatalf("ParseString(%q) = %s, want [%s, %s)", tc.words, got,
					tc.start.Format(time.RFC3339), tc.end.Format(time.RFC3339))
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	wed := at(2023, time.October, 25, 12, 33, 17)

	tests := []struct {
		words string
		want  error
	}{
		{"", ErrEmptyInput},
		{"   ", ErrEmptyInput},
		{"foo", ErrInvalidToken},
		{"to today", ErrUnexpectedToken},
		{"until yesterday", ErrUnexpectedToken},
		{"12 weeks", ErrUnexpectedToken},
		{"2023-07", ErrUnexpectedToken},
		{"2023-07-03", ErrUnexpectedToken},
		{"week", ErrUnexpectedToken},
		{"this today", ErrUnexpectedToken},
		{"this", ErrUnexpectedToken},
		{"last", ErrUnexpectedToken},
		{"last foo", ErrInvalidToken},
		{"last 3 weeks", ErrUnexpectedToken},
		{"today yesterday", ErrUnexpectedToken},
		{"today to yesterday", ErrUnexpectedToken},
		{"yesterday until today to", ErrUnexpectedToken},
		{"yesterday to", ErrUnexpectedToken},
		{"yesterday this week", ErrUnexpectedToken},
		{"april to march to may", ErrUnexpectedToken},
		{"last year march until this monday", ErrUnexpectedToken},
		{"this thursday", ErrLanguageIsComplicated},
		{"last thursday", ErrLanguageIsComplicated},
		{"this april", ErrLanguageIsComplicated},
		{"last december", ErrLanguageIsComplicated},
		{"this week to last week", ErrEndBeforeStart},
		{"yesterday to april", ErrEndBeforeStart},
	}

	for _, tc := range tests {
		t.Run(tc.words, func(t *testing.T) {
			got, err := ParseString(tc.words, NewContext(wed))
			if err == nil {
				t.Fatalf("ParseString(%q) = %s, want error %v", tc.words, got, tc.want)
			}
			if !errors.Is(err, tc.want) {
				t.Fatalf("ParseString(%q) err = %v, want %v", tc.words, err, tc.want)
			}
			if !got.IsZero() {
				t.Fatalf("ParseString(%q) returned a partial span %s", tc.words, got)
			}
		})
	}
}

func TestParse_ErrorPayloads(t *testing.T) {
	c := NewContext(at(2024, time.February, 21, 10, 0, 0))

	_, err := Parse([]string{"Foo"}, c)
	var pe *ParseError
	if !errors.As(err, &pe) || pe.Word != "Foo" {
		t.Fatalf("want invalid token carrying the original word, got %#v", err)
	}

	_, err = Parse([]string{"to", "today"}, c)
	if !errors.As(err, &pe) || pe.Token != (ToToken{}) {
		t.Fatalf("want unexpected 'to', got %#v", err)
	}

	_, err = Parse([]string{"this"}, c)
	if !errors.As(err, &pe) || pe.Token != nil || !strings.Contains(err.Error(), "end of input") {
		t.Fatalf("want unexpected end of input, got %v", err)
	}

	_, err = Parse([]string{"this", "week", "to", "last", "week"}, c)
	if !errors.As(err, &pe) || !pe.Start.Equal(day(2024, 2, 19)) || !pe.End.Equal(day(2024, 2, 19)) {
		t.Fatalf("want end before start with both bounds, got %#v", err)
	}
}

func TestParse_TodayAtMidnightIsEmpty(t *testing.T) {
	_, err := Parse([]string{"today"}, NewContext(day(2023, 10, 25)))
	if !errors.Is(err, ErrEndBeforeStart) {
		t.Fatalf("today at midnight err = %v, want end before start", err)
	}
}

func TestParse_OutOfRange(t *testing.T) {
	tests := []struct {
		words string
		now   time.Time
	}{
		{"last year", at(1, time.March, 1, 0, 0, 0)},
		{"this year", at(9999, time.March, 1, 0, 0, 0)},
		{"last month", at(1, time.January, 10, 0, 0, 0)},
		{"this month", at(9999, time.December, 10, 0, 0, 0)},
		{"yesterday", at(1, time.January, 1, 5, 0, 0)},
	}
	for _, tc := range tests {
		_, err := ParseString(tc.words, NewContext(tc.now))
		if !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("ParseString(%q) at %s err = %v, want out of range", tc.words, tc.now, err)
		}
	}
}

func TestParse_NegativeDayOffsets(t *testing.T) {
	now := at(2023, time.October, 25, 12, 0, 0)
	p := &parser{next: func() (Token, bool) { return nil, false }, now: now}

	for offset := -1; offset >= -40; offset-- {
		got, err := p.day(DayToken{Offset: offset})
		if err != nil {
			t.Fatalf("day(%d) error: %v", offset, err)
		}
		want := day(2023, 10, 25).AddDate(0, 0, offset)
		if !got.Start().Equal(want) || got.Duration() != 24*time.Hour {
			t.Fatalf("day(%d) = %s, want one day from %s", offset, got, want)
		}
	}

	if _, err := p.day(DayToken{Offset: 2}); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("future day err = %v, want invalid token", err)
	}
}

func TestParse_KeepsAnchorOffset(t *testing.T) {
	zone := time.FixedZone("CEST", 2*60*60)
	now := time.Date(2023, time.October, 25, 1, 30, 0, 0, zone)

	got, err := ParseString("today", NewContext(now))
	if err != nil {
		t.Fatalf("today error: %v", err)
	}
	want := time.Date(2023, time.October, 25, 0, 0, 0, 0, zone)
	if !got.Start().Equal(want) {
		t.Fatalf("today start = %s, want %s", got.Start(), want)
	}
	if _, off := got.Start().Zone(); off != 2*60*60 {
		t.Fatalf("offset = %d, want 7200", off)
	}
}

func TestParse_ContextLiteralIsPinned(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Skip("tzdata unavailable")
	}
	// Sunday after the DST switch, this week started before it
	now := time.Date(2023, time.October, 29, 12, 0, 0, 0, loc)
	got, err := Parse([]string{"this", "week"}, Context{Now: now})
	if err != nil {
		t.Fatalf("this week error: %v", err)
	}
	if got.Duration() != 7*24*time.Hour {
		t.Fatalf("this week lasted %s, want 168h", got.Duration())
	}
}
