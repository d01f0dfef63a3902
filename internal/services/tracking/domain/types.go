// Package domain defines the tracking types: projects, tags and the frames
// of time recorded against a project
package domain

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ttt/internal/core/timespan"

	"github.com/google/uuid"
)

// ArchivedState filters projects, tags and frames by the archived flag
type ArchivedState string

const (
	// NotArchived keeps only live rows, the default
	NotArchived ArchivedState = "not_archived"
	// OnlyArchived keeps only archived rows
	OnlyArchived ArchivedState = "only_archived"
	// Both disables the filter
	Both ArchivedState = "both"
)

// ParseArchivedState accepts the three names, "" means NotArchived
func ParseArchivedState(s string) (ArchivedState, error) {
	switch st := ArchivedState(strings.ToLower(strings.TrimSpace(s))); st {
	case "":
		return NotArchived, nil
	case NotArchived, OnlyArchived, Both:
		return st, nil
	default:
		return "", fmt.Errorf("archived must be one of %s, %s, %s", NotArchived, OnlyArchived, Both)
	}
}

// Filter returns the SQL predicate inputs: all disables the filter,
// otherwise rows must have archived == want
func (a ArchivedState) Filter() (all bool, want bool) {
	switch a {
	case Both:
		return true, false
	case OnlyArchived:
		return false, true
	default:
		return false, false
	}
}

// Project is something time is tracked against
type Project struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Archived   bool      `json:"archived"`
	LastAccess time.Time `json:"last_access"`
}

// Tag labels projects
type Tag struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Archived   bool      `json:"archived"`
	LastAccess time.Time `json:"last_access"`
}

// Frame is one stretch of work on a project, End is nil while it runs
type Frame struct {
	ID        int64      `json:"id"`
	UID       uuid.UUID  `json:"uid"`
	ProjectID int64      `json:"project_id"`
	Start     time.Time  `json:"start"`
	End       *time.Time `json:"end,omitempty"`
}

// Running reports whether the frame is still open
func (f Frame) Running() bool { return f.End == nil }

// Elapsed is the frame length, measured to now while it runs
func (f Frame) Elapsed(now time.Time) time.Duration {
	end := now
	if f.End != nil {
		end = *f.End
	}
	if end.Before(f.Start) {
		return 0
	}
	return end.Sub(f.Start)
}

// ProjectFrame is a frame joined with its project
type ProjectFrame struct {
	Project Project `json:"project"`
	Frame   Frame   `json:"frame"`
}

// ReportEntry sums the time a project spent inside a report span
type ReportEntry struct {
	Project string        `json:"project"`
	Frames  int           `json:"frames"`
	Total   time.Duration `json:"total_ns"`
	Pretty  string        `json:"total"`
}

// Report is the per-project breakdown of a span, largest total first
type Report struct {
	Span    timespan.TimeSpan `json:"span"`
	Entries []ReportEntry     `json:"entries"`
	Total   time.Duration     `json:"total_ns"`
	Pretty  string            `json:"total"`
}

// FrameSink receives frames once they are closed
type FrameSink interface {
	FrameClosed(ctx context.Context, pf ProjectFrame) error
}
