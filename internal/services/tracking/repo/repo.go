// Package repo persists projects, tags and frames. The SQL is shared by the
// Postgres and SQLite backends: $N placeholders, unix-second timestamps,
// RETURNING and ON CONFLICT DO NOTHING.
package repo

import (
	"context"
	"fmt"
	"time"

	"ttt/internal/modkit/repokit"
	perr "ttt/internal/platform/errors"
	"ttt/internal/platform/store"
	ptime "ttt/internal/platform/time"
	"ttt/internal/services/tracking/domain"

	"github.com/google/uuid"
)

// Storage is the persistence surface the tracking service needs
type Storage interface {
	CurrentFrame(ctx context.Context) (domain.Frame, error)
	InsertFrame(ctx context.Context, uid uuid.UUID, projectID int64, start time.Time) (domain.Frame, error)
	CloseFrame(ctx context.Context, id int64, end time.Time) error
	FramesInSpan(ctx context.Context, start, end time.Time, archived domain.ArchivedState) ([]domain.ProjectFrame, error)

	CreateProject(ctx context.Context, name string, now time.Time) (domain.Project, error)
	ProjectByID(ctx context.Context, id int64) (domain.Project, error)
	ProjectByName(ctx context.Context, name string) (domain.Project, error)
	ListProjects(ctx context.Context, archived domain.ArchivedState) ([]domain.Project, error)
	SetProjectArchived(ctx context.Context, id int64, archived bool) error
	TouchProject(ctx context.Context, id int64, now time.Time) error

	CreateTag(ctx context.Context, name string, now time.Time) (domain.Tag, error)
	TagByName(ctx context.Context, name string) (domain.Tag, error)
	ListTags(ctx context.Context, archived domain.ArchivedState) ([]domain.Tag, error)
	SetTagArchived(ctx context.Context, id int64, archived bool) error
	TouchTag(ctx context.Context, id int64, now time.Time) error

	TagProjects(ctx context.Context, tagIDs, projectIDs []int64) error
	TagsForProject(ctx context.Context, projectID int64) ([]domain.Tag, error)
}

type (
	sqlRepo struct {
		q   repokit.Queryer
		loc *time.Location
	}
	binder struct{ loc *time.Location }
)

// NewSQL returns a binder for either SQL backend; timestamps are read back in loc
func NewSQL(loc *time.Location) repokit.Binder[Storage] {
	if loc == nil {
		loc = time.Local
	}
	return binder{loc: loc}
}

// Bind implements repokit.Binder
func (b binder) Bind(q repokit.Queryer) Storage { return &sqlRepo{q: q, loc: b.loc} }

const frameCols = `f.id, CAST(f.uid AS TEXT), f.project_id, f.start_ts, f.end_ts`

func (r *sqlRepo) scanFrame(row store.Row, extra ...any) (domain.Frame, error) {
	var (
		f     domain.Frame
		uid   string
		start int64
		end   *int64
	)
	if err := row.Scan(append([]any{&f.ID, &uid, &f.ProjectID, &start, &end}, extra...)...); err != nil {
		return f, err
	}
	id, err := uuid.Parse(uid)
	if err != nil {
		return f, fmt.Errorf("frame %d: bad uid %q: %w", f.ID, uid, err)
	}
	f.UID = id
	f.Start = ptime.FromUnix(start, r.loc)
	f.End = ptime.FromUnixPtr(end, r.loc)
	return f, nil
}

// CurrentFrame returns the open frame or domain.ErrNoActiveFrame
func (r *sqlRepo) CurrentFrame(ctx context.Context) (domain.Frame, error) {
	f, err := store.One(ctx, r.q, func(row store.Row) (domain.Frame, error) { return r.scanFrame(row) },
		`SELECT `+frameCols+` FROM frames f WHERE f.end_ts IS NULL ORDER BY f.start_ts DESC LIMIT 1`)
	if store.IsNoRows(err) {
		return f, domain.ErrNoActiveFrame
	}
	return f, wrapDB(err, "current frame")
}

func (r *sqlRepo) InsertFrame(ctx context.Context, uid uuid.UUID, projectID int64, start time.Time) (domain.Frame, error) {
	start = start.Truncate(time.Second)
	id, err := store.Scalar[int64](ctx, r.q,
		`INSERT INTO frames (uid, project_id, start_ts) VALUES ($1, $2, $3) RETURNING id`,
		uid.String(), projectID, ptime.Unix(start))
	if err != nil {
		return domain.Frame{}, wrapDB(err, "insert frame")
	}
	return domain.Frame{ID: id, UID: uid, ProjectID: projectID, Start: start.In(r.loc)}, nil
}

func (r *sqlRepo) CloseFrame(ctx context.Context, id int64, end time.Time) error {
	err := store.ExecOne(ctx, r.q,
		`UPDATE frames SET end_ts = $2 WHERE id = $1 AND end_ts IS NULL`, id, ptime.Unix(end))
	return wrapDB(err, "close frame")
}

// FramesInSpan keeps frames with end >= start (or still open) and
// start < end, joined with their project, ordered by start
func (r *sqlRepo) FramesInSpan(ctx context.Context, start, end time.Time, archived domain.ArchivedState) ([]domain.ProjectFrame, error) {
	all, want := archived.Filter()
	out, err := store.Many(ctx, r.q, func(row store.Row) (domain.ProjectFrame, error) {
		var (
			pf   domain.ProjectFrame
			last int64
		)
		f, err := r.scanFrame(row, &pf.Project.ID, &pf.Project.Name, &pf.Project.Archived, &last)
		if err != nil {
			return pf, err
		}
		pf.Frame = f
		pf.Project.LastAccess = ptime.FromUnix(last, r.loc)
		return pf, nil
	}, `
SELECT `+frameCols+`, p.id, p.name, p.archived, p.last_access_ts
FROM frames f
JOIN projects p ON p.id = f.project_id
WHERE (f.end_ts >= $1 OR f.end_ts IS NULL)
  AND f.start_ts < $2
  AND ($3 OR p.archived = $4)
ORDER BY f.start_ts, f.id`,
		ptime.CeilUnix(start), ptime.CeilUnix(end), all, want)
	return out, wrapDB(err, "frames in span")
}

func (r *sqlRepo) TagProjects(ctx context.Context, tagIDs, projectIDs []int64) error {
	for _, p := range projectIDs {
		for _, t := range tagIDs {
			if _, err := r.q.Exec(ctx,
				`INSERT INTO tags_per_project (project_id, tag_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
				p, t); err != nil {
				return wrapDB(err, "tag projects")
			}
		}
	}
	return nil
}

func (r *sqlRepo) TagsForProject(ctx context.Context, projectID int64) ([]domain.Tag, error) {
	return listNamed[domain.Tag](ctx, r, "tags",
		`SELECT t.id, t.name, t.archived, t.last_access_ts
FROM tags t
JOIN tags_per_project tp ON tp.tag_id = t.id
WHERE tp.project_id = $1
ORDER BY t.name`, projectID)
}

// wrapDB maps driver errors to perr codes and leaves ours untouched
func wrapDB(err error, msg string) error {
	if err == nil {
		return nil
	}
	if _, ok := perr.As(err); ok {
		return err
	}
	return perr.FromDB(err, msg)
}
