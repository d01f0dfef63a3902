package api

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"ttt/internal/modkit/module"
	"ttt/internal/platform/config"
	phttp "ttt/internal/platform/net/http"
	"ttt/internal/platform/store"
	"ttt/internal/platform/store/sqlite"
	kit "ttt/internal/platform/testkit"
	"ttt/internal/services/tracking/domain"
	"ttt/internal/services/tracking/repo"

	"github.com/rs/zerolog"
)

func TestMount(t *testing.T) {
	kit.Serial(t)
	module.Reset()
	t.Cleanup(module.Reset)

	ctx := context.Background()
	st, err := store.Open(ctx, store.Config{SQLite: store.SQLiteConfig{Path: sqlite.Memory}},
		store.WithLogger(zerolog.Nop()))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer st.Close(ctx)
	if err := repo.Migrate(ctx, st.DB, st.Dialect); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	srv := phttp.NewServer(":0")
	Mount(srv.Router(), Options{
		Config:        config.New().Prefix("TTT_TEST_"),
		Store:         st,
		EnableSwagger: true,
	})
	h := srv.Handler()

	cases := []struct {
		method, path, body string
		status             int
		contains           string
	}{
		{"GET", "/api/v1/meta/health", "", 200, `"service":"ttt-api"`},
		{"GET", "/api/v1/meta/ready", "", 200, `"status":"ok"`},
		{"POST", "/api/v1/tracking/projects", `{"name":"alpha"}`, 201, `"name":"alpha"`},
		{"POST", "/api/v1/tracking/span", `{"span":["yesterday"]}`, 200, `"duration":"1d"`},
		{"GET", "/api/docs/doc.json", "", 200, `"/api/v1"`},
		{"GET", "/debug/pprof/", "", 404, ""},
	}
	for _, c := range cases {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(c.method, c.path, strings.NewReader(c.body))
		req.Header.Set("Content-Type", "application/json")
		h.ServeHTTP(rec, req)
		if rec.Code != c.status {
			t.Fatalf("%s %s = %d: %s", c.method, c.path, rec.Code, rec.Body.String())
		}
		if c.contains != "" {
			kit.MustContain(t, rec.Body.String(), c.contains)
		}
	}

	if _, ok := module.PortsAs[domain.ServicePort]("tracking"); !ok {
		t.Fatalf("tracking ports not registered")
	}
}
