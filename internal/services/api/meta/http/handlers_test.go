package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	phttp "ttt/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

type pingFn func(context.Context) error

func (p pingFn) Ping(ctx context.Context) error { return p(ctx) }

func get(t *testing.T, d Deps, path string, out any) {
	t.Helper()
	mux := chi.NewRouter()
	Register(phttp.AdaptChi(mux), d)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", path, nil))
	if rec.Code != 200 {
		t.Fatalf("GET %s = %d", path, rec.Code)
	}
	var env struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		t.Fatalf("decode data: %v", err)
	}
}

func TestReady(t *testing.T) {
	ok := pingFn(func(context.Context) error { return nil })
	down := pingFn(func(context.Context) error { return errors.New("refused") })

	cases := []struct {
		name   string
		db, ch any
		want   string
	}{
		{"db only", ok, nil, "ok"},
		{"both up", ok, ok, "ok"},
		{"db down", down, nil, "fail"},
		{"ch down", ok, down, "fail"},
		{"no db", nil, nil, "degraded"},
		{"not a pinger", ok, struct{}{}, "degraded"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var got ReadyResponse
			get(t, Deps{ServiceName: "ttt-api", DB: c.db, CH: c.ch}, "/ready", &got)
			if got.Status != c.want || len(got.Checks) != 2 {
				t.Fatalf("ready = %+v", got)
			}
		})
	}
}

func TestHealthAndService(t *testing.T) {
	started := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	d := Deps{
		ServiceName: "ttt-api",
		StartedAt:   started,
		Now:         func() time.Time { return started.Add(5 * time.Minute) },
	}

	var h HealthResponse
	get(t, d, "/health", &h)
	if !h.OK || h.Service != "ttt-api" || h.Now != "2025-01-01T12:05:00Z" {
		t.Fatalf("health = %+v", h)
	}

	var s ServiceResponse
	get(t, d, "/service", &s)
	if s.Uptime != 300 {
		t.Fatalf("service = %+v", s)
	}

	var v struct {
		Service string `json:"service"`
		Version string `json:"version"`
	}
	get(t, d, "/version", &v)
	if v.Service != "ttt-api" || v.Version == "" {
		t.Fatalf("version = %+v", v)
	}
}
