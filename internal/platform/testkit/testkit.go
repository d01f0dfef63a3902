// Package testkit provides testing helpers
package testkit

import (
	"strings"
	"testing"
	"time"
)

// MustPanic asserts that fn panics
func MustPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic, got none")
		}
	}()
	fn()
}

// MustNotPanic asserts that fn does not panic
func MustNotPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("unexpected panic: %v", r)
		}
	}()
	fn()
}

// MustContain asserts that haystack contains every needle
func MustContain(t *testing.T, haystack string, needles ...string) {
	t.Helper()
	for _, n := range needles {
		if !strings.Contains(haystack, n) {
			t.Fatalf("expected output to contain %q\n\nfull output:\n%s", n, haystack)
		}
	}
}

// Clock is a settable time source for clock seams
type Clock struct{ now time.Time }

// NewClock starts a Clock at now
func NewClock(now time.Time) *Clock { return &Clock{now: now} }

// Now returns the current fake time
func (c *Clock) Now() time.Time { return c.now }

// Advance moves the clock forward by d
func (c *Clock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// Set jumps the clock to t
func (c *Clock) Set(t time.Time) { c.now = t }
