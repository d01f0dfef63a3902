package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"ttt/internal/platform/store"
	"ttt/internal/platform/store/sqlite"
	kit "ttt/internal/platform/testkit"
	"ttt/internal/services/tracking/domain"
	"ttt/internal/services/tracking/repo"
	tsvc "ttt/internal/services/tracking/service"

	"github.com/rs/zerolog"
)

func newTestCLI(t *testing.T) (func(args ...string) (string, error), *kit.Clock) {
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
	svc := tsvc.New(st.DB, repo.NewSQL(time.UTC), tsvc.Options{Clock: clock.Now, Location: time.UTC})

	opened := 0
	open := func(context.Context) (domain.ServicePort, func(), error) {
		opened++
		return svc, func() { opened-- }, nil
	}
	run := func(args ...string) (string, error) {
		c := newCLI(open)
		root := c.root()
		var out bytes.Buffer
		root.SetOut(&out)
		root.SetErr(&out)
		root.SetArgs(args)
		err := root.ExecuteContext(ctx)
		c.shutdown()
		if opened != 0 {
			t.Fatalf("store left open after %v", args)
		}
		return out.String(), err
	}
	return run, clock
}

func TestCLI_TrackAndReport(t *testing.T) {
	run, clock := newTestCLI(t)

	if _, err := run("start", "alpha"); err == nil {
		t.Fatalf("start without --create should fail")
	}
	out, err := run("start", "--create", "alpha")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	kit.MustContain(t, out, "started alpha at 2024-05-15 10:00")

	out, _ = run("status")
	kit.MustContain(t, out, "tracking alpha since")

	clock.Advance(75 * time.Minute)
	out, err = run("stop")
	if err != nil {
		t.Fatalf("stop: %v", err)
	}
	kit.MustContain(t, out, "stopped alpha after 1h 15min")

	out, _ = run("stop")
	kit.MustContain(t, out, "nothing to stop")
	out, _ = run("status")
	kit.MustContain(t, out, "not tracking")

	out, err = run("report", "today")
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	kit.MustContain(t, out, "alpha", "1h 15min", "2024-05-15 00:00 -> 2024-05-16 00:00")

	out, err = run("frames", "this", "week", "--archived", "both")
	if err != nil {
		t.Fatalf("frames: %v", err)
	}
	kit.MustContain(t, out, "PROJECT", "alpha", "2024-05-15 11:15")
}

func TestCLI_Span(t *testing.T) {
	run, _ := newTestCLI(t)

	out, err := run("span", "last", "week")
	if err != nil {
		t.Fatalf("span: %v", err)
	}
	kit.MustContain(t, out, "2024-05-06 00:00 -> 2024-05-13 00:00 (1w)")

	if _, err := run("span", "next", "week"); err == nil {
		t.Fatalf("expected parse error")
	}
	if _, err := run("span"); err == nil {
		t.Fatalf("expected missing phrase error")
	}
	if _, err := run("frames", "today", "--archived", "sometimes"); err == nil {
		t.Fatalf("expected bad archived flag error")
	}
}

func TestCLI_ProjectsAndTags(t *testing.T) {
	run, _ := newTestCLI(t)

	steps := [][]string{
		{"projects", "add", "alpha"},
		{"projects", "add", "beta"},
		{"tags", "add", "client"},
		{"tags", "assign", "client", "--project", "alpha", "-p", "beta"},
		{"projects", "archive", "beta"},
	}
	for _, s := range steps {
		if out, err := run(s...); err != nil {
			t.Fatalf("%v: %v (%s)", s, err, out)
		}
	}

	out, _ := run("projects", "list")
	kit.MustContain(t, out, "alpha")
	if bytes.Contains([]byte(out), []byte("beta")) {
		t.Fatalf("archived project listed: %s", out)
	}
	out, _ = run("projects", "list", "--archived", "only_archived")
	kit.MustContain(t, out, "beta", "true")

	out, _ = run("projects", "tags", "beta")
	kit.MustContain(t, out, "client")

	out, err := run("projects", "unarchive", "beta")
	if err != nil {
		t.Fatalf("unarchive: %v", err)
	}
	kit.MustContain(t, out, "unarchived beta")

	out, _ = run("tags", "archive", "client")
	kit.MustContain(t, out, "archived client")
	out, _ = run("tags", "list", "--archived", "both")
	kit.MustContain(t, out, "client")

	if _, err := run("projects", "add", "alpha"); err == nil {
		t.Fatalf("duplicate project should fail")
	}
	if _, err := run("tags", "assign", "client"); err == nil {
		t.Fatalf("assign without --project should fail")
	}
}

// every advertised example must run against the command it documents
func TestCLI_ExamplesRun(t *testing.T) {
	run, _ := newTestCLI(t)
	root := newCLI(nil).root()
	for _, cmd := range root.Commands() {
		for line := range strings.Lines(cmd.Example) {
			args := strings.Fields(line)
			if len(args) < 2 || args[0] != "ttt" || args[1] != "span" {
				continue
			}
			if _, err := run(args[1:]...); err != nil {
				t.Fatalf("example %q: %v", strings.TrimSpace(line), err)
			}
		}
	}
}
