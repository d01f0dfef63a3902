package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	phttp "ttt/internal/platform/net/http"
	"ttt/internal/platform/store"
	"ttt/internal/platform/store/sqlite"
	kit "ttt/internal/platform/testkit"
	"ttt/internal/services/tracking/domain"
	"ttt/internal/services/tracking/repo"
	svc "ttt/internal/services/tracking/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

type envelope struct {
	StatusCode int             `json:"status_code"`
	Error      string          `json:"error"`
	Field      string          `json:"field"`
	Data       json.RawMessage `json:"data"`
}

type client struct {
	t *testing.T
	h stdhttp.Handler
}

func newClient(t *testing.T) (*client, *kit.Clock) {
	t.Helper()
	ctx := context.Background()
	st, err := store.Open(ctx, store.Config{SQLite: store.SQLiteConfig{Path: sqlite.Memory}},
		store.WithLogger(zerolog.Nop()))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = st.Close(ctx) })
	if err := repo.Migrate(ctx, st.DB, st.Dialect); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	clock := kit.NewClock(time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC))
	s := svc.New(st.DB, repo.NewSQL(time.UTC), svc.Options{Clock: clock.Now, Location: time.UTC})

	mux := chi.NewRouter()
	Register(phttp.AdaptChi(mux), s)
	return &client{t: t, h: mux}, clock
}

func (c *client) do(method, path, body string, wantStatus int, out any) envelope {
	c.t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c.h.ServeHTTP(rec, req)

	if rec.Code != wantStatus {
		c.t.Fatalf("%s %s = %d, want %d: %s", method, path, rec.Code, wantStatus, rec.Body.String())
	}
	var env envelope
	if rec.Code == stdhttp.StatusNoContent {
		return env
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		c.t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	if out != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			c.t.Fatalf("decode data %q: %v", env.Data, err)
		}
	}
	return env
}

func TestTrackingFlow(t *testing.T) {
	c, clock := newClient(t)

	c.do("GET", "/current", "", 404, nil)
	c.do("POST", "/start", `{"project":"alpha"}`, 404, nil)

	var started domain.ProjectFrame
	c.do("POST", "/start", `{"project":"alpha","create":true}`, 201, &started)
	if started.Project.Name != "alpha" || started.Frame.End != nil {
		t.Fatalf("started = %+v", started)
	}
	c.do("POST", "/start", `{"project":"alpha"}`, 409, nil)

	var cur domain.ProjectFrame
	c.do("GET", "/current", "", 200, &cur)
	if cur.Frame.UID != started.Frame.UID {
		t.Fatalf("current uid = %s", cur.Frame.UID)
	}

	clock.Advance(30 * time.Minute)
	var stopped domain.StopView
	c.do("POST", "/stop", "", 200, &stopped)
	if stopped.Frame == nil || stopped.Frame.Frame.End == nil {
		t.Fatalf("stopped = %+v", stopped)
	}
	c.do("POST", "/stop", "", 200, &stopped)
	if stopped.Frame != nil {
		t.Fatalf("idle stop = %+v", stopped.Frame)
	}

	var rep domain.Report
	c.do("POST", "/report", `{"span":["today"]}`, 200, &rep)
	if len(rep.Entries) != 1 || rep.Entries[0].Total != 30*time.Minute || rep.Pretty != "30min" {
		t.Fatalf("report = %+v", rep)
	}

	var frames struct {
		Frames []domain.ProjectFrame `json:"frames"`
	}
	c.do("POST", "/frames", `{"span":["today"],"archived":"both"}`, 200, &frames)
	if len(frames.Frames) != 1 {
		t.Fatalf("frames = %+v", frames)
	}
}

func TestSpan(t *testing.T) {
	c, _ := newClient(t)

	var view domain.SpanView
	c.do("POST", "/span", `{"span":["last","week"]}`, 200, &view)
	if want := time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC); !view.Start.Equal(want) || view.Duration != "1w" {
		t.Fatalf("view = %+v", view)
	}

	env := c.do("POST", "/span", `{"span":["next","week"]}`, 422, nil)
	if env.Field != "span" {
		t.Fatalf("field = %q", env.Field)
	}
	env = c.do("POST", "/span", `{"span":["  "]}`, 400, nil)
	if env.Field != "span" {
		t.Fatalf("blank field = %q", env.Field)
	}
	c.do("POST", "/span", `{"span":["today"],"archived":"sometimes"}`, 400, nil)
	c.do("POST", "/span", `{"span":["today"],"extra":1}`, 400, nil)
}

func TestProjectsAndTags(t *testing.T) {
	c, _ := newClient(t)

	c.do("POST", "/projects", `{"name":"alpha"}`, 201, nil)
	c.do("POST", "/projects", `{"name":"beta"}`, 201, nil)
	c.do("POST", "/projects", `{"name":"alpha"}`, 409, nil)
	c.do("POST", "/projects", `{"name":""}`, 400, nil)
	c.do("POST", "/tags", `{"name":"client"}`, 201, nil)

	var p domain.Project
	c.do("POST", "/projects/archive", `{"name":"beta","archived":true}`, 200, &p)
	if !p.Archived {
		t.Fatalf("archive = %+v", p)
	}
	c.do("POST", "/projects/archive", `{"name":"gamma","archived":true}`, 404, nil)

	var ps []domain.Project
	c.do("GET", "/projects", "", 200, &ps)
	if len(ps) != 1 || ps[0].Name != "alpha" {
		t.Fatalf("projects = %+v", ps)
	}
	c.do("GET", "/projects?archived=both", "", 200, &ps)
	if len(ps) != 2 {
		t.Fatalf("all projects = %+v", ps)
	}
	env := c.do("GET", "/projects?archived=maybe", "", 400, nil)
	if env.Field != "archived" {
		t.Fatalf("field = %q", env.Field)
	}

	c.do("POST", "/tags/assign", `{"tags":["client"],"projects":["alpha"]}`, 204, nil)
	c.do("POST", "/tags/assign", `{"tags":["nope"],"projects":["alpha"]}`, 404, nil)
	var tags []domain.Tag
	c.do("GET", "/projects/alpha/tags", "", 200, &tags)
	if len(tags) != 1 || tags[0].Name != "client" {
		t.Fatalf("tags = %+v", tags)
	}

	var tg domain.Tag
	c.do("POST", "/tags/archive", `{"name":"client","archived":true}`, 200, &tg)
	c.do("GET", "/tags?archived=only_archived", "", 200, &tags)
	if !tg.Archived || len(tags) != 1 {
		t.Fatalf("archived tags = %+v", tags)
	}
}
