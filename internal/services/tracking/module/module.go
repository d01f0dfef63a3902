// Package module wires time tracking into the API using modkit
package module

import (
	"time"

	modkit "ttt/internal/modkit"
	"ttt/internal/modkit/httpkit"
	str "ttt/internal/platform/strings"
	"ttt/internal/services/tracking/domain"
	thttp "ttt/internal/services/tracking/http"
	"ttt/internal/services/tracking/repo"
	"ttt/internal/services/tracking/service"
)

// Module implements modkit.Module
type Module struct {
	built modkit.Built
	svc   service.Service
}

var _ modkit.Module = (*Module)(nil)

// NewService builds the tracking service from module deps; the CLI uses
// it directly without mounting any routes
func NewService(deps modkit.Deps) *service.Svc {
	loc := deps.Cfg.MayLocation("TZ", time.Local)
	opt := service.Options{Location: loc}
	if sink := repo.NewClickhouseSink(deps.CH); sink != nil {
		opt.Sink = sink
	}
	return service.New(deps.DB, repo.NewSQL(loc), opt)
}

// New constructs the tracking module with the provided deps and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	svc := NewService(deps)
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("tracking"),
		modkit.WithPrefix("/tracking"),
		modkit.WithPorts(domain.ServicePort(svc)),
	}, opts...)...)
	return &Module{built: b, svc: svc}
}

// MountRoutes implements modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {
	m.built.Mount(r, func(rr httpkit.Router) { thttp.Register(rr, m.svc) })
}

// Name implements modkit.Module
func (m *Module) Name() string { return str.MustString(m.built.Name, "module name") }

// Ports exposes domain.ServicePort to other modules
func (m *Module) Ports() any { return m.built.Ports }
