// Package service holds the tracking workflows: starting and stopping
// frames, naming projects and tags, and reporting over a resolved phrase
package service

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"ttt/internal/core/normalize"
	"ttt/internal/core/timespan"
	"ttt/internal/modkit/repokit"
	perr "ttt/internal/platform/errors"
	"ttt/internal/platform/logger"
	ptime "ttt/internal/platform/time"
	"ttt/internal/services/tracking/domain"
	"ttt/internal/services/tracking/repo"

	"github.com/google/uuid"
)

// Service is the public service port
type Service interface{ domain.ServicePort }

// Svc implements the service port
type Svc struct {
	db     repokit.TxRunner
	binder repokit.Binder[repo.Storage]
	now    func() time.Time
	loc    *time.Location
	sink   domain.FrameSink
	newUID func() uuid.UUID
	log    *logger.Logger
}

var _ Service = (*Svc)(nil)

// Options control service behavior
type Options struct {
	// Clock defaults to time.Now
	Clock func() time.Time

	// Location is the zone phrases resolve in, defaults to time.Local
	Location *time.Location

	// Sink is optional; closed frames are copied to it
	Sink domain.FrameSink
}

// New constructs the service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Storage], opt Options) *Svc {
	if db == nil {
		panic("tracking.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("tracking.Service requires a non nil Storage binder")
	}
	s := &Svc{
		db:     db,
		binder: binder,
		now:    opt.Clock,
		loc:    opt.Location,
		sink:   opt.Sink,
		newUID: uuid.New,
		log:    logger.Named("tracking"),
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.loc == nil {
		s.loc = time.Local
	}
	return s
}

func (s *Svc) clock() time.Time { return s.now().In(s.loc).Truncate(time.Second) }

func (s *Svc) store() repo.Storage { return s.binder.Bind(s.db) }

func (s *Svc) tx(ctx context.Context, fn func(repo.Storage) error) error {
	return s.db.Tx(ctx, func(q repokit.Queryer) error { return fn(s.binder.Bind(q)) })
}

// Start opens a frame on project; only one frame runs at a time
func (s *Svc) Start(ctx context.Context, project string, create bool) (domain.ProjectFrame, error) {
	name, err := validName(project)
	if err != nil {
		return domain.ProjectFrame{}, err
	}
	now := s.clock()
	var out domain.ProjectFrame

	err = s.tx(ctx, func(r repo.Storage) error {
		cur, err := r.CurrentFrame(ctx)
		switch {
		case err == nil:
			running, err := r.ProjectByID(ctx, cur.ProjectID)
			if err != nil {
				return err
			}
			return perr.Wrap(domain.ErrAlreadyTracking, perr.ErrorCodeConflict,
				fmt.Sprintf("already tracking %q since %s", running.Name, cur.Start.Format(time.TimeOnly)))
		case !errors.Is(err, domain.ErrNoActiveFrame):
			return err
		}

		p, err := r.ProjectByName(ctx, name)
		if errors.Is(err, domain.ErrProjectNotFound) {
			if !create {
				return perr.Wrap(domain.ErrProjectNotFound, perr.ErrorCodeNotFound,
					fmt.Sprintf("project %q does not exist", name))
			}
			p, err = r.CreateProject(ctx, name, now)
		}
		if err != nil {
			return err
		}
		if err := r.TouchProject(ctx, p.ID, now); err != nil {
			return err
		}
		p.LastAccess = now

		f, err := r.InsertFrame(ctx, s.newUID(), p.ID, now)
		if perr.IsCode(err, perr.ErrorCodeDuplicateKey) {
			// another writer opened a frame between our check and insert
			return perr.Wrap(domain.ErrAlreadyTracking, perr.ErrorCodeConflict, "already tracking")
		}
		if err != nil {
			return err
		}
		out = domain.ProjectFrame{Project: p, Frame: f}
		return nil
	})
	if err != nil {
		return domain.ProjectFrame{}, err
	}
	s.log.Info().Str("project", out.Project.Name).Str("uid", out.Frame.UID.String()).Msg("frame started")
	return out, nil
}

// Stop closes the running frame; nil, nil when nothing runs
func (s *Svc) Stop(ctx context.Context) (*domain.ProjectFrame, error) {
	now := s.clock()
	var out *domain.ProjectFrame

	err := s.tx(ctx, func(r repo.Storage) error {
		cur, err := r.CurrentFrame(ctx)
		if errors.Is(err, domain.ErrNoActiveFrame) {
			return nil
		}
		if err != nil {
			return err
		}
		end := now
		if end.Before(cur.Start) {
			end = cur.Start
		}
		if err := r.CloseFrame(ctx, cur.ID, end); err != nil {
			return err
		}
		if err := r.TouchProject(ctx, cur.ProjectID, now); err != nil {
			return err
		}
		p, err := r.ProjectByID(ctx, cur.ProjectID)
		if err != nil {
			return err
		}
		cur.End = &end
		out = &domain.ProjectFrame{Project: p, Frame: cur}
		return nil
	})
	if err != nil || out == nil {
		return nil, err
	}

	s.log.Info().Str("project", out.Project.Name).
		Str("elapsed", ptime.FormatDuration(out.Frame.Elapsed(now))).Msg("frame stopped")
	if s.sink != nil {
		if err := s.sink.FrameClosed(ctx, *out); err != nil {
			s.log.Warn().Err(err).Str("uid", out.Frame.UID.String()).Msg("frame sink failed")
		}
	}
	return out, nil
}

// Current returns the running frame or domain.ErrNoActiveFrame
func (s *Svc) Current(ctx context.Context) (domain.ProjectFrame, error) {
	r := s.store()
	f, err := r.CurrentFrame(ctx)
	if err != nil {
		return domain.ProjectFrame{}, err
	}
	p, err := r.ProjectByID(ctx, f.ProjectID)
	if err != nil {
		return domain.ProjectFrame{}, err
	}
	return domain.ProjectFrame{Project: p, Frame: f}, nil
}

func (s *Svc) CreateProject(ctx context.Context, name string) (domain.Project, error) {
	n, err := validName(name)
	if err != nil {
		return domain.Project{}, err
	}
	p, err := s.store().CreateProject(ctx, n, s.clock())
	return p, duplicate(err, "project", name)
}

func (s *Svc) CreateTag(ctx context.Context, name string) (domain.Tag, error) {
	n, err := validName(name)
	if err != nil {
		return domain.Tag{}, err
	}
	t, err := s.store().CreateTag(ctx, n, s.clock())
	return t, duplicate(err, "tag", name)
}

func (s *Svc) Projects(ctx context.Context, archived domain.ArchivedState) ([]domain.Project, error) {
	return s.store().ListProjects(ctx, archived)
}

func (s *Svc) Tags(ctx context.Context, archived domain.ArchivedState) ([]domain.Tag, error) {
	return s.store().ListTags(ctx, archived)
}

// ArchiveProject sets the archived flag and returns the updated project
func (s *Svc) ArchiveProject(ctx context.Context, name string, archived bool) (domain.Project, error) {
	var out domain.Project
	err := s.tx(ctx, func(r repo.Storage) error {
		p, err := r.ProjectByName(ctx, normalize.Name(name))
		if err != nil {
			return notFound(err, "project", name)
		}
		if err := r.SetProjectArchived(ctx, p.ID, archived); err != nil {
			return err
		}
		p.Archived = archived
		out = p
		return nil
	})
	return out, err
}

// ArchiveTag sets the archived flag and returns the updated tag
func (s *Svc) ArchiveTag(ctx context.Context, name string, archived bool) (domain.Tag, error) {
	var out domain.Tag
	err := s.tx(ctx, func(r repo.Storage) error {
		t, err := r.TagByName(ctx, normalize.Name(name))
		if err != nil {
			return notFound(err, "tag", name)
		}
		if err := r.SetTagArchived(ctx, t.ID, archived); err != nil {
			return err
		}
		t.Archived = archived
		out = t
		return nil
	})
	return out, err
}

// TagProjects links every tag to every project; all names must exist.
// Blank and repeated names are dropped.
func (s *Svc) TagProjects(ctx context.Context, tags, projects []string) error {
	now := s.clock()
	return s.tx(ctx, func(r repo.Storage) error {
		var tagIDs, projectIDs []int64
		for _, name := range normalize.Names(tags) {
			t, err := r.TagByName(ctx, name)
			if err != nil {
				return notFound(err, "tag", name)
			}
			if err := r.TouchTag(ctx, t.ID, now); err != nil {
				return err
			}
			tagIDs = append(tagIDs, t.ID)
		}
		for _, name := range normalize.Names(projects) {
			p, err := r.ProjectByName(ctx, name)
			if err != nil {
				return notFound(err, "project", name)
			}
			projectIDs = append(projectIDs, p.ID)
		}
		return r.TagProjects(ctx, tagIDs, projectIDs)
	})
}

func (s *Svc) ProjectTags(ctx context.Context, project string) ([]domain.Tag, error) {
	r := s.store()
	p, err := r.ProjectByName(ctx, normalize.Name(project))
	if err != nil {
		return nil, notFound(err, "project", project)
	}
	return r.TagsForProject(ctx, p.ID)
}

// Resolve turns a phrase into a span anchored at the current clock
func (s *Svc) Resolve(_ context.Context, words []string) (timespan.TimeSpan, error) {
	return s.resolve(words, s.now().In(s.loc))
}

func (s *Svc) resolve(words []string, now time.Time) (timespan.TimeSpan, error) {
	span, err := timespan.Parse(words, timespan.NewContext(now))
	if err != nil {
		return timespan.TimeSpan{}, perr.WithField(
			perr.Wrap(err, perr.ErrorCodeInvalidArgument, err.Error()), "span")
	}
	return span, nil
}

// Frames lists the frames overlapping the resolved phrase
func (s *Svc) Frames(ctx context.Context, words []string, archived domain.ArchivedState) (domain.FramesView, error) {
	return s.frames(ctx, words, archived, s.now().In(s.loc))
}

func (s *Svc) frames(ctx context.Context, words []string, archived domain.ArchivedState, now time.Time) (domain.FramesView, error) {
	span, err := s.resolve(words, now)
	if err != nil {
		return domain.FramesView{}, err
	}
	frames, err := s.store().FramesInSpan(ctx, span.Start(), span.End(), archived)
	if err != nil {
		return domain.FramesView{}, err
	}
	return domain.FramesView{Span: span, Frames: frames}, nil
}

// Report totals the time each project spent inside the resolved phrase,
// largest first. Running frames count up to the same now the phrase is
// anchored on.
func (s *Svc) Report(ctx context.Context, words []string, archived domain.ArchivedState) (domain.Report, error) {
	now := s.now().In(s.loc)
	view, err := s.frames(ctx, words, archived, now)
	if err != nil {
		return domain.Report{}, err
	}
	return Summarize(view, now), nil
}

// Summarize clips each frame to the span and groups by project
func Summarize(view domain.FramesView, now time.Time) domain.Report {
	byProject := map[string]*domain.ReportEntry{}
	var total time.Duration
	for _, pf := range view.Frames {
		d := view.Span.Clip(pf.Frame.Start, pf.Frame.End, now)
		e, ok := byProject[pf.Project.Name]
		if !ok {
			e = &domain.ReportEntry{Project: pf.Project.Name}
			byProject[pf.Project.Name] = e
		}
		e.Frames++
		e.Total += d
		total += d
	}

	entries := make([]domain.ReportEntry, 0, len(byProject))
	for _, e := range byProject {
		e.Pretty = ptime.FormatDuration(e.Total)
		entries = append(entries, *e)
	}
	slices.SortFunc(entries, func(a, b domain.ReportEntry) int {
		if c := cmp.Compare(b.Total, a.Total); c != 0 {
			return c
		}
		return cmp.Compare(a.Project, b.Project)
	})
	return domain.Report{Span: view.Span, Entries: entries, Total: total, Pretty: ptime.FormatDuration(total)}
}

// validName normalizes a name for storage and rejects one that ends up empty
func validName(name string) (string, error) {
	n := normalize.Name(name)
	if n == "" {
		return "", perr.WithField(perr.InvalidArgf("name %q is empty once normalized", name), "name")
	}
	return n, nil
}

func duplicate(err error, what, name string) error {
	if perr.IsCode(err, perr.ErrorCodeDuplicateKey) {
		return perr.Wrap(err, perr.ErrorCodeConflict, fmt.Sprintf("%s %q already exists", what, normalize.Name(name)))
	}
	return err
}

func notFound(err error, what, name string) error {
	if perr.IsCode(err, perr.ErrorCodeNotFound) {
		return perr.Wrap(err, perr.ErrorCodeNotFound, fmt.Sprintf("%s %q does not exist", what, normalize.Name(name)))
	}
	return err
}
