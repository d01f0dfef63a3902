package timespan

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Token is one classified input word. The set of variants is closed, only
// the types declared in this file implement it.
type Token interface {
	fmt.Stringer
	token()
}

// Unit is the calendar unit a SpanToken names
type Unit uint8

const (
	// UnitWeek is "week" or "weeks"
	UnitWeek Unit = iota
	// UnitMonth is "month" or "months"
	UnitMonth
	// UnitYear is "year" or "years"
	UnitYear
	// UnitWeekday is a named day of the week, Index 0..6 with Monday = 0
	UnitWeekday
	// UnitSpecificMonth is a named month, Index 0..11 with January = 0
	UnitSpecificMonth
)

func (u Unit) String() string {
	switch u {
	case UnitWeek:
		return "week"
	case UnitMonth:
		return "month"
	case UnitYear:
		return "year"
	case UnitWeekday:
		return "weekday"
	case UnitSpecificMonth:
		return "specific_month"
	}
	return "unit(" + strconv.Itoa(int(u)) + ")"
}

// SpanKind is the payload of a SpanToken. Index is only meaningful for
// UnitWeekday and UnitSpecificMonth.
type SpanKind struct {
	Unit  Unit
	Index int
}

// Plain period kinds
var (
	WeekKind  = SpanKind{Unit: UnitWeek}
	MonthKind = SpanKind{Unit: UnitMonth}
	YearKind  = SpanKind{Unit: UnitYear}
)

// WeekdayKind names a day of the week, Monday = 0
func WeekdayKind(i int) SpanKind { return SpanKind{Unit: UnitWeekday, Index: i} }

// SpecificMonthKind names a month, January = 0
func SpecificMonthKind(i int) SpanKind { return SpanKind{Unit: UnitSpecificMonth, Index: i} }

func (k SpanKind) String() string {
	switch k.Unit {
	case UnitWeekday:
		return strings.ToLower(time.Weekday((k.Index + 1) % 7).String())
	case UnitSpecificMonth:
		return strings.ToLower(time.Month(k.Index + 1).String())
	}
	return k.Unit.String()
}

type (
	// DayToken is a day relative to the anchor, 0 is today and -1 yesterday
	DayToken struct{ Offset int }
	// SpanToken names a calendar period
	SpanToken struct{ Kind SpanKind }
	// LastToken is "last"
	LastToken struct{}
	// ThisToken is "this"
	ThisToken struct{}
	// ToToken is "to" or "until"
	ToToken struct{}
	// NumberToken is an unsigned decimal integer
	NumberToken struct{ Value uint32 }
	// PartialISODateToken is a YYYY-MM word
	PartialISODateToken struct {
		Year  int
		Month time.Month
	}
	// ISODateToken is a YYYY-MM-DD word, Date is midnight UTC of that day
	ISODateToken struct{ Date time.Time }
	// UnknownToken carries a word outside the vocabulary, unchanged
	UnknownToken struct{ Word string }
)

func (DayToken) token()            {}
func (SpanToken) token()           {}
func (LastToken) token()           {}
func (ThisToken) token()           {}
func (ToToken) token()             {}
func (NumberToken) token()         {}
func (PartialISODateToken) token() {}
func (ISODateToken) token()        {}
func (UnknownToken) token()        {}

func (t DayToken) String() string {
	switch t.Offset {
	case 0:
		return "today"
	case -1:
		return "yesterday"
	}
	return fmt.Sprintf("day(%+d)", t.Offset)
}

func (t SpanToken) String() string           { return t.Kind.String() }
func (LastToken) String() string             { return "last" }
func (ThisToken) String() string             { return "this" }
func (ToToken) String() string               { return "to" }
func (t NumberToken) String() string         { return strconv.FormatUint(uint64(t.Value), 10) }
func (t PartialISODateToken) String() string { return fmt.Sprintf("%04d-%02d", t.Year, int(t.Month)) }
func (t ISODateToken) String() string        { return t.Date.Format(time.DateOnly) }
func (t UnknownToken) String() string        { return t.Word }
