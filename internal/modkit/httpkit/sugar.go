package httpkit

import (
	"net/http"

	phttp "ttt/internal/platform/net/http"
)

// Get mounts a body-less JSON endpoint under GET
func Get(r Router, path string, h func(*http.Request) (any, error)) {
	phttp.GetJSON(r, path, h)
}

// Post mounts a body-less JSON endpoint under POST
func Post(r Router, path string, h func(*http.Request) (any, error)) {
	phttp.PostNoBody(r, path, h)
}

// PostJSON mounts a validated JSON endpoint under POST
func PostJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	phttp.PostJSON(r, path, h)
}
