// Package api provides the HTTP API for the application
package api

import (
	"ttt/internal/platform/config"
	"ttt/internal/platform/logger"
	phttp "ttt/internal/platform/net/http"
	"ttt/internal/platform/store"

	"ttt/internal/modkit"
	"ttt/internal/modkit/httpkit"
	"ttt/internal/modkit/module"
	"ttt/internal/modkit/swaggerkit"

	metamod "ttt/internal/services/api/meta/module"
	trackingmod "ttt/internal/services/tracking/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	log := logger.Get()
	if opt.Logger != nil {
		log = opt.Logger
	}
	deps := modkit.DepsFrom(opt.Store, opt.Config, *log)

	mods := []module.Module{
		metamod.New(deps),
		trackingmod.New(deps),
	}

	swaggerkit.Mount(r, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	httpkit.MountAPIV1(r, httpkit.CommonStack(opt.Config.Prefix("API_")), func(api httpkit.Router) {
		for _, m := range mods {
			// register each module's ports under its own name for cross-module lookups
			module.Register(m.Name(), m.Ports())
			m.MountRoutes(api)
			log.Debug().Str("module", m.Name()).Msg("module mounted")
		}
	})
}
