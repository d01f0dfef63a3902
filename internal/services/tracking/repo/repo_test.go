package repo

import (
	"context"
	"errors"
	"testing"
	"time"

	"ttt/internal/modkit/repokit"
	perr "ttt/internal/platform/errors"
	"ttt/internal/platform/store"
	"ttt/internal/platform/store/sqlite"
	"ttt/internal/services/tracking/domain"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

func openLite(t *testing.T) *store.Store {
	t.Helper()
	ctx := context.Background()
	s, err := store.Open(ctx, store.Config{
		Driver: store.DialectSQLite,
		SQLite: store.SQLiteConfig{Path: sqlite.Memory},
	}, store.WithLogger(zerolog.Nop()))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close(ctx) })
	if err := Migrate(ctx, s.DB, s.Dialect); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return s
}

func TestSchema_SplitsStatements(t *testing.T) {
	for _, d := range []store.Dialect{store.DialectSQLite, store.DialectPostgres} {
		stmts, err := Schema(d)
		if err != nil {
			t.Fatalf("%s: %v", d, err)
		}
		if len(stmts) != 6 {
			t.Fatalf("%s: got %d statements", d, len(stmts))
		}
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	s := openLite(t)
	if err := Migrate(context.Background(), s.DB, s.Dialect); err != nil {
		t.Fatalf("second migrate: %v", err)
	}
}

func TestRepo_SQLite(t *testing.T) {
	exerciseRepo(t, openLite(t).DB)
}

// exerciseRepo runs against any migrated backend
func exerciseRepo(t *testing.T, db repokit.TxRunner) {
	t.Helper()
	ctx := context.Background()
	loc := time.FixedZone("test", 2*3600)
	r := NewSQL(loc).Bind(db)
	t0 := time.Date(2024, 3, 4, 9, 0, 0, 0, loc)

	p, err := r.CreateProject(ctx, "alpha", t0)
	if err != nil {
		t.Fatalf("create project: %v", err)
	}
	if p.ID == 0 || p.Name != "alpha" || p.Archived || !p.LastAccess.Equal(t0) {
		t.Fatalf("project = %+v", p)
	}
	if _, err := r.CreateProject(ctx, "alpha", t0); perr.CodeOf(err) != perr.ErrorCodeDuplicateKey {
		t.Fatalf("duplicate project: %v (%s)", err, perr.CodeOf(err))
	}
	beta, err := r.CreateProject(ctx, "beta", t0.Add(time.Minute))
	if err != nil {
		t.Fatalf("create beta: %v", err)
	}

	got, err := r.ProjectByName(ctx, "alpha")
	if err != nil || got.ID != p.ID {
		t.Fatalf("by name = %+v, %v", got, err)
	}
	if got.LastAccess.Location() != loc {
		t.Fatalf("location = %v", got.LastAccess.Location())
	}
	if _, err := r.ProjectByName(ctx, "nope"); !errors.Is(err, domain.ErrProjectNotFound) {
		t.Fatalf("missing project: %v", err)
	}
	if _, err := r.ProjectByID(ctx, beta.ID); err != nil {
		t.Fatalf("by id: %v", err)
	}

	// archive filter
	if err := r.SetProjectArchived(ctx, beta.ID, true); err != nil {
		t.Fatalf("archive: %v", err)
	}
	if err := r.SetProjectArchived(ctx, 9999, true); !errors.Is(err, domain.ErrProjectNotFound) {
		t.Fatalf("archive missing: %v", err)
	}
	for state, want := range map[domain.ArchivedState]int{
		domain.NotArchived:  1,
		domain.OnlyArchived: 1,
		domain.Both:         2,
	} {
		ps, err := r.ListProjects(ctx, state)
		if err != nil || len(ps) != want {
			t.Fatalf("list %s = %d, %v", state, len(ps), err)
		}
	}

	// last access ordering, oldest first
	if err := r.TouchProject(ctx, p.ID, t0.Add(time.Hour)); err != nil {
		t.Fatalf("touch: %v", err)
	}
	all, _ := r.ListProjects(ctx, domain.Both)
	if all[0].Name != "beta" || all[1].Name != "alpha" {
		t.Fatalf("order = %s, %s", all[0].Name, all[1].Name)
	}

	// tags
	tag, err := r.CreateTag(ctx, "client", t0)
	if err != nil {
		t.Fatalf("create tag: %v", err)
	}
	if _, err := r.TagByName(ctx, "nope"); !errors.Is(err, domain.ErrTagNotFound) {
		t.Fatalf("missing tag: %v", err)
	}
	if err := r.TouchTag(ctx, 9999, t0); !errors.Is(err, domain.ErrTagNotFound) {
		t.Fatalf("touch missing tag: %v", err)
	}
	for range 2 {
		if err := r.TagProjects(ctx, []int64{tag.ID}, []int64{p.ID, beta.ID}); err != nil {
			t.Fatalf("tag projects: %v", err)
		}
	}
	tags, err := r.TagsForProject(ctx, p.ID)
	if err != nil || len(tags) != 1 || tags[0].Name != "client" {
		t.Fatalf("tags for project = %+v, %v", tags, err)
	}
	if err := r.SetTagArchived(ctx, tag.ID, true); err != nil {
		t.Fatalf("archive tag: %v", err)
	}
	if ts, _ := r.ListTags(ctx, domain.NotArchived); len(ts) != 0 {
		t.Fatalf("live tags = %+v", ts)
	}

	// frames
	if _, err := r.CurrentFrame(ctx); !errors.Is(err, domain.ErrNoActiveFrame) {
		t.Fatalf("current on empty: %v", err)
	}
	uid := uuid.New()
	f, err := r.InsertFrame(ctx, uid, p.ID, t0)
	if err != nil {
		t.Fatalf("insert frame: %v", err)
	}
	if _, err := r.InsertFrame(ctx, uuid.New(), beta.ID, t0); perr.CodeOf(err) != perr.ErrorCodeDuplicateKey {
		t.Fatalf("second open frame: %v (%s)", err, perr.CodeOf(err))
	}
	cur, err := r.CurrentFrame(ctx)
	if err != nil || cur.UID != uid || !cur.Running() {
		t.Fatalf("current = %+v, %v", cur, err)
	}
	if err := r.CloseFrame(ctx, f.ID, t0.Add(90*time.Minute)); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := r.CloseFrame(ctx, f.ID, t0.Add(2*time.Hour)); !errors.Is(err, store.ErrNotOneRow) {
		t.Fatalf("close twice: %v", err)
	}

	// an archived project's frame, still running
	if _, err := r.InsertFrame(ctx, uuid.New(), beta.ID, t0.Add(3*time.Hour)); err != nil {
		t.Fatalf("insert beta frame: %v", err)
	}

	day := t0.Add(-9 * time.Hour)
	cases := []struct {
		name       string
		start, end time.Time
		state      domain.ArchivedState
		want       []string
	}{
		{"whole day live", day, day.Add(24 * time.Hour), domain.NotArchived, []string{"alpha"}},
		{"whole day both", day, day.Add(24 * time.Hour), domain.Both, []string{"alpha", "beta"}},
		{"archived only", day, day.Add(24 * time.Hour), domain.OnlyArchived, []string{"beta"}},
		{"touches end", t0.Add(90 * time.Minute), t0.Add(2 * time.Hour), domain.NotArchived, []string{"alpha"}},
		{"ends before start", day, t0, domain.NotArchived, nil},
		{"after alpha", t0.Add(2 * time.Hour), t0.Add(10 * time.Hour), domain.Both, []string{"beta"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			pfs, err := r.FramesInSpan(ctx, c.start, c.end, c.state)
			if err != nil {
				t.Fatalf("frames: %v", err)
			}
			if len(pfs) != len(c.want) {
				t.Fatalf("got %d frames, want %v", len(pfs), c.want)
			}
			for i, pf := range pfs {
				if pf.Project.Name != c.want[i] {
					t.Fatalf("frame %d project = %s, want %s", i, pf.Project.Name, c.want[i])
				}
			}
		})
	}

	pfs, _ := r.FramesInSpan(ctx, day, day.Add(24*time.Hour), domain.NotArchived)
	if end := pfs[0].Frame.End; end == nil || !end.Equal(t0.Add(90*time.Minute)) {
		t.Fatalf("closed frame end = %v", end)
	}
}

func TestRepo_TxRollback(t *testing.T) {
	s := openLite(t)
	ctx := context.Background()
	b := NewSQL(time.UTC)
	boom := errors.New("boom")

	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		if _, err := b.Bind(q).CreateProject(ctx, "gone", time.Now()); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("tx err = %v", err)
	}
	if _, err := b.Bind(s.DB).ProjectByName(ctx, "gone"); !errors.Is(err, domain.ErrProjectNotFound) {
		t.Fatalf("project survived rollback: %v", err)
	}
}
