// Command ttt tracks time against projects from the terminal and answers
// questions like "how long did I work last week"
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ttt/internal/core/version"
	"ttt/internal/modkit"
	"ttt/internal/platform/config"
	"ttt/internal/platform/logger"
	"ttt/internal/platform/store"
	"ttt/internal/services/tracking/domain"
	trackingmod "ttt/internal/services/tracking/module"
	"ttt/internal/services/tracking/repo"
)

const service = "ttt"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Init(logger.FromEnv(logger.Options{Level: "warn", Format: "console", Service: service}))

	c := newCLI(openService)
	err := c.root().ExecuteContext(ctx)
	c.shutdown()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}

// openService opens the configured store, migrates it and returns the
// tracking service plus a close func
func openService(ctx context.Context) (domain.ServicePort, func(), error) {
	root := config.New().Prefix("TTT_")
	l := logger.Get()

	st, err := store.Open(ctx, store.ConfigFromEnv(root, service, version.Info(service).Version), store.WithLogger(*l))
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}
	if err := repo.Migrate(ctx, st.DB, st.Dialect); err != nil {
		closeFn()
		return nil, nil, err
	}
	return trackingmod.NewService(modkit.DepsFrom(st, root, *l)), closeFn, nil
}
