// Package sqlite opens the embedded SQLite database used by the CLI
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"ttt/internal/platform/store/trace"

	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

// Memory is the Path for a private in-memory database
const Memory = ":memory:"

// Config configures the database file
type Config struct {
	Path        string
	BusyTimeout time.Duration
	SlowMs      int
}

// DB is a database/sql handle plus the optional tracer the adapter reports to
type DB struct {
	SQL    *sql.DB
	Tracer trace.Tracer
	SlowMs int
}

var sqlOpen = sql.Open

// DSN builds the modernc connection string with foreign keys on, a busy
// timeout and WAL for file databases
func DSN(cfg Config) string {
	busy := cfg.BusyTimeout
	if busy <= 0 {
		busy = 5 * time.Second
	}
	q := url.Values{}
	q.Add("_pragma", "foreign_keys(1)")
	q.Add("_pragma", "busy_timeout("+strconv.FormatInt(busy.Milliseconds(), 10)+")")
	if cfg.Path != Memory {
		q.Add("_pragma", "journal_mode(WAL)")
	}
	return "file:" + cfg.Path + "?" + q.Encode()
}

// Open creates the parent directory if needed, opens and pings the database.
// SQLite allows one writer, so the pool is pinned to a single connection,
// which also keeps an in-memory database alive and shared.
func Open(ctx context.Context, cfg Config, tracer trace.Tracer) (*DB, error) {
	if strings.TrimSpace(cfg.Path) == "" {
		return nil, fmt.Errorf("sqlite: empty path")
	}
	if cfg.Path != Memory {
		if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
			return nil, fmt.Errorf("sqlite: create data dir: %w", err)
		}
	}

	db, err := sqlOpen("sqlite", DSN(cfg))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: open %s: %w", cfg.Path, err)
	}
	return &DB{SQL: db, Tracer: tracer, SlowMs: cfg.SlowMs}, nil
}

// Close closes the handle
func (d *DB) Close() error {
	if d == nil || d.SQL == nil {
		return nil
	}
	return d.SQL.Close()
}

// Rebind rewrites Postgres style $N placeholders into SQLite ?N so both
// backends share one set of statements. Quoted literals are left alone.
func Rebind(query string) string {
	if !strings.Contains(query, "$") {
		return query
	}
	var b strings.Builder
	b.Grow(len(query))
	inQuote := false
	for i := 0; i < len(query); i++ {
		c := query[i]
		switch {
		case c == '\'':
			inQuote = !inQuote
		case c == '$' && !inQuote && i+1 < len(query) && query[i+1] >= '0' && query[i+1] <= '9':
			c = '?'
		}
		b.WriteByte(c)
	}
	return b.String()
}
