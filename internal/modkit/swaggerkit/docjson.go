//go:build swag

package swaggerkit

import (
	"encoding/json"
	"net/http"
	"strings"

	docs "ttt/internal/services/api/docs"
)

// docReader is a seam so tests can feed a broken document
var docReader = func() string { return docs.SwaggerInfo.ReadDoc() }

const envelopeRef = "#/components/schemas/httpkit.Envelope"

// serveDocJSON renders the generated document with the defaults every route shares
func serveDocJSON() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		var spec map[string]any
		if err := json.Unmarshal([]byte(docReader()), &spec); err != nil {
			http.Error(w, "spec parse error", http.StatusInternalServerError)
			return
		}

		ensureServers(spec, "/api/v1")
		addDefault(spec, "500", "Internal Server Error")
		addDefault(spec, "400", "Bad Request")

		body, err := json.Marshal(spec)
		if err != nil {
			http.Error(w, "spec encode error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, body)
	}
}

// ensureServers pins the document to 3.0.3, which the bundled UI renders,
// and points it at base when no servers are listed
func ensureServers(spec map[string]any, base string) {
	delete(spec, "swagger")
	if v, ok := spec["openapi"].(string); !ok || strings.HasPrefix(v, "3.1") {
		spec["openapi"] = "3.0.3"
	}
	if _, ok := spec["servers"]; !ok {
		spec["servers"] = []any{map[string]any{"url": base}}
	}
}

// addDefault gives every operation an envelope response for code unless it
// documents one already
func addDefault(spec map[string]any, code, description string) {
	paths, ok := spec["paths"].(map[string]any)
	if !ok {
		return
	}
	resp := map[string]any{
		"description": description,
		"content": map[string]any{
			"application/json": map[string]any{
				"schema": map[string]any{"$ref": envelopeRef},
			},
		},
	}
	for _, p := range paths {
		node, ok := p.(map[string]any)
		if !ok {
			continue
		}
		for _, opAny := range node {
			op, ok := opAny.(map[string]any)
			if !ok {
				continue
			}
			responses, ok := op["responses"].(map[string]any)
			if !ok {
				responses = map[string]any{}
				op["responses"] = responses
			}
			if _, exists := responses[code]; !exists {
				responses[code] = resp
			}
		}
	}
}
