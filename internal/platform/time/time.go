// Package time contains time related helpers
package time

import (
	"strconv"
	"strings"
	"time"
)

// Ptr returns a pointer to t or nil if t is zero
func Ptr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

// Unix returns t as unix seconds, the storage encoding for timestamps
func Unix(t time.Time) int64 { return t.Unix() }

// CeilUnix rounds t up to whole unix seconds. For a stored second s,
// s < t holds exactly when s < CeilUnix(t), and s >= t when s >= CeilUnix(t).
func CeilUnix(t time.Time) int64 {
	if t.Nanosecond() > 0 {
		return t.Unix() + 1
	}
	return t.Unix()
}

// FromUnix converts stored seconds back into a time in loc
func FromUnix(sec int64, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.Unix(sec, 0).In(loc)
}

// FromUnixPtr converts a nullable stored column
func FromUnixPtr(sec *int64, loc *time.Location) *time.Time {
	if sec == nil {
		return nil
	}
	t := FromUnix(*sec, loc)
	return &t
}

// UnixPtr converts a nullable time to a nullable column value
func UnixPtr(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	s := t.Unix()
	return &s
}

var units = []struct {
	d    time.Duration
	name string
}{
	{7 * 24 * time.Hour, "w"},
	{24 * time.Hour, "d"},
	{time.Hour, "h"},
	{time.Minute, "min"},
	{time.Second, "s"},
}

// FormatDuration renders d as "1w 2d 3h 4min 5s", skipping zero units.
// Sub-second remainders are dropped and anything below a second is "0s".
func FormatDuration(d time.Duration) string {
	neg := d < 0
	if neg {
		d = -d
	}
	var parts []string
	for _, u := range units {
		if n := d / u.d; n > 0 {
			parts = append(parts, strconv.FormatInt(int64(n), 10)+u.name)
			d -= n * u.d
		}
	}
	if len(parts) == 0 {
		return "0s"
	}
	out := strings.Join(parts, " ")
	if neg {
		out = "-" + out
	}
	return out
}
