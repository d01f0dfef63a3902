// Package timespan resolves short English phrases such as "last week",
// "yesterday" or "march until this month" into half-open time intervals.
//
// Nothing here reads the system clock. Every relative phrase is anchored on
// the instant carried by a Context, so the same words and the same anchor
// always resolve to the same interval.
package timespan

import "time"

// Timestamps are kept inside calendar years 1..9999, the range every
// encoding used by the tracker (RFC 3339, JSON, SQL BIGINT seconds) round trips
const (
	minYear = 1
	maxYear = 9999

	// upper bounds on a single shift, past these the result is out of range anyway
	maxDayShift   = (maxYear - minYear + 1) * 366
	maxMonthShift = (maxYear - minYear + 1) * 12
)

// Fixed pins t to a fixed zone carrying the offset t has at that instant.
// Day arithmetic on the result is plain 24h arithmetic with no DST jumps.
func Fixed(t time.Time) time.Time {
	name, off := t.Zone()
	return t.In(time.FixedZone(name, off))
}

// AtMidnight truncates the time of day to 00:00:00 on the same calendar day
func AtMidnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// AddDays shifts t by n whole days. ok is false when the result leaves the
// representable range.
func AddDays(t time.Time, n int) (time.Time, bool) {
	if n > maxDayShift || n < -maxDayShift {
		return time.Time{}, false
	}
	r := t.AddDate(0, 0, n)
	if !inRange(r) {
		return time.Time{}, false
	}
	return r, true
}

// SubDays shifts t back by n whole days
func SubDays(t time.Time, n int) (time.Time, bool) { return AddDays(t, -n) }

// AddMonths shifts t by n calendar months keeping the time of day. A day of
// month past the end of the target month is clamped to its last day, so
// Jan 31 + 1 month is Feb 28 (or 29). ok is false when the result leaves the
// representable range.
func AddMonths(t time.Time, n int) (time.Time, bool) {
	if n > maxMonthShift || n < -maxMonthShift {
		return time.Time{}, false
	}
	y, m, d := t.Date()
	total := int(m) - 1 + n
	y += floorDiv(total, 12)
	month := time.Month(total - floorDiv(total, 12)*12 + 1)
	if y < minYear || y > maxYear {
		return time.Time{}, false
	}
	if last := daysIn(y, month); d > last {
		d = last
	}
	hh, mm, ss := t.Clock()
	r := time.Date(y, month, d, hh, mm, ss, t.Nanosecond(), t.Location())
	if !inRange(r) {
		return time.Time{}, false
	}
	return r, true
}

// SubMonths shifts t back by n calendar months
func SubMonths(t time.Time, n int) (time.Time, bool) { return AddMonths(t, -n) }

// mondayOf returns midnight of the Monday on or before t
func mondayOf(t time.Time) (time.Time, bool) {
	return SubDays(AtMidnight(t), daysSinceMonday(t))
}

// daysSinceMonday counts Monday as 0 and Sunday as 6
func daysSinceMonday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

func daysIn(y int, m time.Month) int {
	return time.Date(y, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func inRange(t time.Time) bool {
	y := t.Year()
	return y >= minYear && y <= maxYear
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
