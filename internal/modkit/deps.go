package modkit

import (
	"ttt/internal/modkit/repokit"
	"ttt/internal/platform/config"
	"ttt/internal/platform/logger"
	"ttt/internal/platform/store"
)

// Deps holds the shared dependencies handed to every module
type Deps struct {
	Log logger.Logger
	Cfg config.Conf

	// DB is the SQL seam, Dialect tells repos which schema to migrate
	DB      repokit.TxRunner
	Dialect store.Dialect

	// CH is nil unless the analytics sink is enabled
	CH store.Clickhouse
}

// DepsFrom lifts the opened store into module deps
func DepsFrom(s *store.Store, cfg config.Conf, log logger.Logger) Deps {
	d := Deps{Log: log, Cfg: cfg}
	if s != nil {
		d.DB, d.Dialect, d.CH = s.DB, s.Dialect, s.CH
	}
	return d
}
