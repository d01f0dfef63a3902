package store

import (
	"os"
	"path/filepath"
	"time"

	"ttt/internal/platform/config"
)

// DefaultSQLitePath is where the CLI keeps its database when TTT_SQLITE_PATH is unset
func DefaultSQLitePath() string {
	if dir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(dir, ".local", "share", "ttt", "timetable.db")
	}
	return "timetable.db"
}

// ConfigFromEnv reads the storage settings under cfg, normally the TTT_ prefix:
//
//	DB_DRIVER       sqlite (default) or postgres
//	SQLITE_PATH     database file, ~ expanded
//	PG_DBURL        postgres connection string, required for postgres
//	PG_MAX_CONNS    pool size, default 8
//	DB_LOG_SQL      trace every statement
//	DB_SLOW_MS      slow statement threshold, default 200
//	CH_ENABLED      copy closed frames to clickhouse
//	CH_DBURL        clickhouse connection string
func ConfigFromEnv(cfg config.Conf, appName, version string) Config {
	logSQL := cfg.MayBool("DB_LOG_SQL", false)
	slow := cfg.MayInt("DB_SLOW_MS", 200)

	c := Config{
		AppName: appName,
		Version: version,
		Driver:  Dialect(cfg.MayEnum("DB_DRIVER", string(DialectSQLite), string(DialectSQLite), string(DialectPostgres))),
		SQLite: SQLiteConfig{
			Path:        cfg.MayPath("SQLITE_PATH", DefaultSQLitePath()),
			BusyTimeout: cfg.MayDuration("SQLITE_BUSY_TIMEOUT", 5*time.Second),
			LogSQL:      logSQL,
			SlowQueryMs: slow,
		},
		CH: CHConfig{
			Enabled: cfg.MayBool("CH_ENABLED", false),
		},
	}
	if c.Driver == DialectPostgres {
		c.PG = PGConfig{
			URL:         cfg.MustString("PG_DBURL"),
			MaxConns:    int32(cfg.MayInt("PG_MAX_CONNS", 8)),
			LogSQL:      logSQL,
			SlowQueryMs: slow,
		}
	}
	if c.CH.Enabled {
		c.CH.URL = cfg.MustString("CH_DBURL")
	}
	return c
}
