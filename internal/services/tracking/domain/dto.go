package domain

import (
	"time"

	"ttt/internal/core/timespan"
)

// StartInput starts tracking a project, creating it first when Create is set
type StartInput struct {
	Project string `json:"project" validate:"phrase,max=200"`
	Create  bool   `json:"create"`
}

// NameInput creates a project or tag
type NameInput struct {
	Name string `json:"name" validate:"phrase,max=200"`
}

// ArchiveInput flips the archived flag on a project or tag
type ArchiveInput struct {
	Name     string `json:"name" validate:"phrase"`
	Archived bool   `json:"archived"`
}

// AssignInput tags every listed project with every listed tag
type AssignInput struct {
	Tags     []string `json:"tags" validate:"phrase"`
	Projects []string `json:"projects" validate:"phrase"`
}

// SpanInput carries a phrase such as ["last", "week"] as separate words
type SpanInput struct {
	Span     []string      `json:"span" validate:"phrase"`
	Archived ArchivedState `json:"archived" validate:"omitempty,oneof=not_archived only_archived both"`
}

// SpanView is a resolved phrase
type SpanView struct {
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Duration string    `json:"duration"`
}

// FramesView lists the frames overlapping a resolved phrase
type FramesView struct {
	Span   timespan.TimeSpan `json:"span"`
	Frames []ProjectFrame    `json:"frames"`
}

// StopView reports the frame Stop closed, Frame is nil when nothing ran
type StopView struct {
	Frame *ProjectFrame `json:"frame"`
}
