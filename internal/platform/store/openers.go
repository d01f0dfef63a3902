package store

import (
	"context"
	"fmt"
	"time"

	chx "ttt/internal/platform/store/ch"
	"ttt/internal/platform/store/pg"
	"ttt/internal/platform/store/sqlite"
	"ttt/internal/platform/store/trace"
)

// seams for tests
var (
	sleep     = time.Sleep
	openPool  = pg.Open
	openLite  = sqlite.Open
	openCHRaw = chx.Open
)

// openPG opens the pool and only publishes the adapter after a ping succeeds
func openPG(ctx context.Context, cfg Config, s *Store) (TxRunner, error) {
	var tracer trace.Tracer
	if cfg.PG.LogSQL {
		tracer = trace.Zerolog(s.Log)
	}

	p, err := openPool(ctx, pg.Config{
		URL:      cfg.PG.URL,
		AppName:  cfg.AppName,
		MaxConns: cfg.PG.MaxConns,
		SlowMs:   cfg.PG.SlowQueryMs,
	}, tracer, nil)
	if err != nil {
		return nil, err
	}

	attempts := cfg.PG.ConnectRetries
	if attempts <= 0 {
		attempts = 20
	}
	pingTimeout := cfg.PG.PingTimeout
	if pingTimeout <= 0 {
		pingTimeout = 3 * time.Second
	}
	const (
		backoffStart   = 150 * time.Millisecond
		backoffCeiling = 2 * time.Second
	)

	var lastErr error
	backoff := backoffStart
	for i := range attempts {
		toCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		lastErr = p.Pool.Ping(toCtx)
		cancel()
		if lastErr == nil {
			return newPGAdapter(p), nil
		}
		if ctx.Err() != nil {
			p.Close()
			return nil, ctx.Err()
		}
		s.Log.Warn().Err(lastErr).Int("attempt", i+1).Dur("backoff", backoff).Msg("postgres not ready")
		sleep(backoff)
		backoff = min(backoff*2, backoffCeiling)
	}

	p.Close()
	return nil, fmt.Errorf("postgres ping failed after %d attempts: %w", attempts, lastErr)
}

func openSQLite(ctx context.Context, cfg Config, s *Store) (TxRunner, error) {
	var tracer trace.Tracer
	if cfg.SQLite.LogSQL {
		tracer = trace.Zerolog(s.Log)
	}
	db, err := openLite(ctx, sqlite.Config{
		Path:        cfg.SQLite.Path,
		BusyTimeout: cfg.SQLite.BusyTimeout,
		SlowMs:      cfg.SQLite.SlowQueryMs,
	}, tracer)
	if err != nil {
		return nil, err
	}
	return newSQLiteAdapter(db), nil
}

func openCH(ctx context.Context, cfg Config) (Clickhouse, error) {
	c, err := openCHRaw(ctx, chx.Config{URL: cfg.CH.URL, Role: cfg.AppName, Version: cfg.Version})
	if err != nil {
		return nil, err
	}
	return newCHAdapter(c), nil
}
