package domain

import (
	"context"

	"ttt/internal/core/timespan"
)

// ServicePort is consumed by handlers, the CLI and other modules
type ServicePort interface {
	Start(ctx context.Context, project string, create bool) (ProjectFrame, error)
	Stop(ctx context.Context) (*ProjectFrame, error)
	Current(ctx context.Context) (ProjectFrame, error)

	CreateProject(ctx context.Context, name string) (Project, error)
	CreateTag(ctx context.Context, name string) (Tag, error)
	Projects(ctx context.Context, archived ArchivedState) ([]Project, error)
	Tags(ctx context.Context, archived ArchivedState) ([]Tag, error)
	ArchiveProject(ctx context.Context, name string, archived bool) (Project, error)
	ArchiveTag(ctx context.Context, name string, archived bool) (Tag, error)
	TagProjects(ctx context.Context, tags, projects []string) error
	ProjectTags(ctx context.Context, project string) ([]Tag, error)

	Resolve(ctx context.Context, words []string) (timespan.TimeSpan, error)
	Frames(ctx context.Context, words []string, archived ArchivedState) (FramesView, error)
	Report(ctx context.Context, words []string, archived ArchivedState) (Report, error)
}
