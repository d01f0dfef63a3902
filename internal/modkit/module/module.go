// Package module defines the minimal contract for a modkit module plus the
// port lookup helpers used while composing the API
package module

import (
	phttp "ttt/internal/platform/net/http"
)

// Module is what the API mounts
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
}
