// @title         ttt API
// @version       0.1.0
// @description   Time tracking with natural language time spans

package main

//go:generate swag init --v3.1 --instanceName api --outputTypes go -g main.go -d ./,../../internal/services/api/meta/http,../../internal/services/tracking/http --parseInternal -o ../../internal/services/api/docs

import (
	"context"
	"os/signal"
	"syscall"

	"ttt/internal/core/version"
	"ttt/internal/modkit/repokit"
	"ttt/internal/platform/config"
	"ttt/internal/platform/logger"
	phttp "ttt/internal/platform/net/http"
	"ttt/internal/platform/store"

	"ttt/internal/services/api"
	metamod "ttt/internal/services/api/meta/module"
	"ttt/internal/services/tracking/repo"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	root := config.New().Prefix("TTT_")
	apiCfg := root.Prefix("API_")

	logger.Init(logger.FromEnv(logger.Options{Level: "info", Format: "json", Service: metamod.ServiceName}))
	l := logger.Get()

	build := version.Info(metamod.ServiceName)
	st, err := store.Open(ctx, store.ConfigFromEnv(root, metamod.ServiceName, build.Version), store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()
	repokit.MustGuard(ctx, st)

	if err := repo.Migrate(ctx, st.DB, st.Dialect); err != nil {
		l.Panic().Err(err).Msg("migrate failed")
	}

	srv := phttp.NewServer(apiCfg.MayPort("PORT", 4000))
	api.Mount(srv.Router(), api.Options{
		Config:         root,
		Store:          st,
		Logger:         l,
		EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
		EnableProfiler: apiCfg.MayBool("PROFILER", false),
	})

	l.Info().Str("addr", srv.Addr()).Str("db", string(st.Dialect)).Bool("clickhouse", st.CH != nil).
		Str("version", build.Version).Msg("api starting")
	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
