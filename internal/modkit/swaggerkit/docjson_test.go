//go:build swag

package swaggerkit

import (
	"encoding/json"
	"testing"

	phttp "ttt/internal/platform/net/http"
	kit "ttt/internal/platform/testkit"

	"github.com/go-chi/chi/v5"
)

func TestDocJSON_Generated(t *testing.T) {
	mux := chi.NewRouter()
	Mount(phttp.AdaptChi(mux), true)

	rec := serve(mux, "/api/docs/doc.json")
	if rec.Code != 200 {
		t.Fatalf("doc.json = %d", rec.Code)
	}
	var spec struct {
		OpenAPI string                               `json:"openapi"`
		Paths   map[string]map[string]map[string]any `json:"paths"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &spec); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if spec.OpenAPI != "3.0.3" {
		t.Fatalf("openapi = %q", spec.OpenAPI)
	}
	for _, p := range []string{"/meta/ready", "/tracking/span", "/tracking/report", "/tracking/projects/{name}/tags"} {
		if _, ok := spec.Paths[p]; !ok {
			t.Fatalf("missing path %s", p)
		}
	}
	responses := spec.Paths["/tracking/span"]["post"]["responses"].(map[string]any)
	for _, code := range []string{"200", "400", "422", "500"} {
		if _, ok := responses[code]; !ok {
			t.Fatalf("span responses lack %s: %v", code, responses)
		}
	}
}

func TestDocJSON_BrokenDocument(t *testing.T) {
	kit.Swap(t, &docReader, func() string { return "{" })
	mux := chi.NewRouter()
	Mount(phttp.AdaptChi(mux), true)
	if rec := serve(mux, "/api/docs/doc.json"); rec.Code != 500 {
		t.Fatalf("broken doc = %d", rec.Code)
	}
}

func TestEnsureServers(t *testing.T) {
	spec := map[string]any{"swagger": "2.0"}
	ensureServers(spec, "/api/v1")
	if spec["openapi"] != "3.0.3" || spec["servers"] == nil {
		t.Fatalf("spec = %v", spec)
	}
	if _, ok := spec["swagger"]; ok {
		t.Fatalf("swagger key kept: %v", spec)
	}

	kept := map[string]any{"openapi": "3.0.1", "servers": []any{"x"}}
	ensureServers(kept, "/api/v1")
	if kept["openapi"] != "3.0.1" || len(kept["servers"].([]any)) != 1 {
		t.Fatalf("spec = %v", kept)
	}
}
