package timespan

import (
	"encoding/json"
	"fmt"
	"time"
)

// TimeSpan is the half-open interval [start, end) with start strictly before
// end. The zero value is not a valid span; build one with New or Extend.
type TimeSpan struct {
	start time.Time
	end   time.Time
}

// New validates start < end
func New(start, end time.Time) (TimeSpan, error) {
	if !end.After(start) {
		return TimeSpan{}, errEndBeforeStart(start, end)
	}
	return TimeSpan{start: start, end: end}, nil
}

// Extend keeps s's start and takes other's end
func (s TimeSpan) Extend(other TimeSpan) (TimeSpan, error) {
	return New(s.start, other.end)
}

// Start is the first instant inside the span
func (s TimeSpan) Start() time.Time { return s.start }

// End is the first instant after the span
func (s TimeSpan) End() time.Time { return s.end }

// Duration is End - Start
func (s TimeSpan) Duration() time.Duration { return s.end.Sub(s.start) }

// IsZero reports whether s was never constructed
func (s TimeSpan) IsZero() bool { return s.start.IsZero() && s.end.IsZero() }

// Contains reports start <= t < end
func (s TimeSpan) Contains(t time.Time) bool {
	return !t.Before(s.start) && t.Before(s.end)
}

// Overlaps is the record selection rule used by storage: a record
// [start, end) is kept when end >= s.Start and start < s.End. A nil end is
// a record still running.
func (s TimeSpan) Overlaps(start time.Time, end *time.Time) bool {
	if end != nil && end.Before(s.start) {
		return false
	}
	return start.Before(s.end)
}

// Clip returns how much of the record [start, end) falls inside s. A nil end
// is treated as now.
func (s TimeSpan) Clip(start time.Time, end *time.Time, now time.Time) time.Duration {
	hi := now
	if end != nil {
		hi = *end
	}
	lo := start
	if lo.Before(s.start) {
		lo = s.start
	}
	if hi.After(s.end) {
		hi = s.end
	}
	if !hi.After(lo) {
		return 0
	}
	return hi.Sub(lo)
}

func (s TimeSpan) String() string {
	return fmt.Sprintf("[%s, %s)", s.start.Format(time.RFC3339), s.end.Format(time.RFC3339))
}

type spanJSON struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// MarshalJSON encodes {"start": ..., "end": ...} in RFC 3339
func (s TimeSpan) MarshalJSON() ([]byte, error) {
	return json.Marshal(spanJSON{Start: s.start, End: s.end})
}

// UnmarshalJSON decodes and validates through New
func (s *TimeSpan) UnmarshalJSON(b []byte) error {
	var raw spanJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	v, err := New(raw.Start, raw.End)
	if err != nil {
		return err
	}
	*s = v
	return nil
}
