// Package store is the storage facade: one SQL backend (Postgres or SQLite)
// behind a small query seam, plus an optional ClickHouse sink
package store

import (
	"context"
	"errors"
	"fmt"

	"ttt/internal/platform/logger"
)

// Dialect names the SQL backend in use
type Dialect string

const (
	// DialectSQLite is the embedded default
	DialectSQLite Dialect = "sqlite"
	// DialectPostgres is the shared server option
	DialectPostgres Dialect = "postgres"
)

// Store is the facade for the configured backends
// the zero value is safe but has no backends
type Store struct {
	// Log is the logger used by subclients
	Log logger.Logger

	// DB is the SQL seam, nil when no SQL backend is configured
	DB TxRunner

	// Dialect reports which backend DB talks to
	Dialect Dialect

	// CH is the clickhouse seam, nil when disabled
	CH Clickhouse
}

// Row exposes the minimal scan contract a single row needs
type Row interface {
	Scan(dest ...any) error
}

// Rows exposes the minimal iteration and scan for a result set
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close()
	Columns() []string
}

// CommandTag reports the outcome of a write
type CommandTag interface {
	String() string
	RowsAffected() int64
}

// RowQuerier is the read and write surface repos use for sql.
// Statements use $N placeholders on every backend.
type RowQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) Row
}

// TxRunner wraps transaction execution around a function
type TxRunner interface {
	RowQuerier
	Tx(ctx context.Context, fn func(q RowQuerier) error) error
}

// Clickhouse is the columnar sink seam
type Clickhouse interface {
	Exec(ctx context.Context, sql string, args ...any) error
	Insert(ctx context.Context, table string, rows [][]any) error
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
	Close() error
}

// Pinger is any seam that can report readiness
type Pinger interface{ Ping(context.Context) error }

// Open constructs a Store with the configured SQL backend and, when enabled,
// the ClickHouse sink
func Open(ctx context.Context, cfg Config, opts ...Option) (*Store, error) {
	s := &Store{}
	for _, o := range opts {
		if err := o(s); err != nil {
			return nil, err
		}
	}
	s.Log = s.Log.With().Str("component", "store").Logger()

	switch cfg.Driver {
	case DialectPostgres:
		db, err := openPG(ctx, cfg, s)
		if err != nil {
			return nil, err
		}
		s.DB, s.Dialect = db, DialectPostgres
	case DialectSQLite, "":
		db, err := openSQLite(ctx, cfg, s)
		if err != nil {
			return nil, err
		}
		s.DB, s.Dialect = db, DialectSQLite
	default:
		return nil, fmt.Errorf("store: unknown driver %q", cfg.Driver)
	}

	if cfg.CH.Enabled {
		c, err := openCH(ctx, cfg)
		if err != nil {
			_ = s.Close(ctx)
			return nil, err
		}
		s.CH = c
	}

	s.Log.Debug().Str("driver", string(s.Dialect)).Bool("clickhouse", s.CH != nil).Msg("store opened")
	return s, nil
}

// Guard pings every configured backend
func (s *Store) Guard(ctx context.Context) error {
	if s == nil {
		return errors.New("nil store")
	}
	var errs []error
	if p, ok := s.DB.(Pinger); ok {
		if err := p.Ping(ctx); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", s.Dialect, err))
		}
	}
	if p, ok := s.CH.(Pinger); ok {
		if err := p.Ping(ctx); err != nil {
			errs = append(errs, fmt.Errorf("clickhouse: %w", err))
		}
	}
	return errors.Join(errs...)
}

// Close closes all initialized backends, nil backends are ignored
func (s *Store) Close(_ context.Context) error {
	if s == nil {
		return nil
	}
	var errs []error
	if s.CH != nil {
		if err := s.CH.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if c, ok := s.DB.(interface{ Close() error }); ok {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
