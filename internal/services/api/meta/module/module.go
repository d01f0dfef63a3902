// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"time"

	modkit "ttt/internal/modkit"
	"ttt/internal/modkit/httpkit"
	str "ttt/internal/platform/strings"

	metahttp "ttt/internal/services/api/meta/http"
)

// ServiceName is reported by /meta endpoints
const ServiceName = "ttt-api"

// Module implements the modkit.Module interface
type Module struct {
	built modkit.Built
	meta  metahttp.Deps
}

// New constructs a meta module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	m := &Module{
		built: b,
		meta:  metahttp.Deps{ServiceName: ServiceName, StartedAt: time.Now()},
	}
	// leave the interfaces nil rather than holding a typed nil
	if deps.DB != nil {
		m.meta.DB = deps.DB
	}
	if deps.CH != nil {
		m.meta.CH = deps.CH
	}
	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	m.built.Mount(r, func(rr httpkit.Router) { metahttp.Register(rr, m.meta) })
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return str.MustString(m.built.Name, "module name") }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return nil }
