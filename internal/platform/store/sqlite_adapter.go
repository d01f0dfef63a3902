package store

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"time"

	"ttt/internal/platform/store/sqlite"
	"ttt/internal/platform/store/trace"
)

// sqliteAdapter wraps sqlite.DB and implements TxRunner. Statements arrive
// with $N placeholders and are rebound before they reach the driver.
type sqliteAdapter struct {
	d *sqlite.DB
}

func newSQLiteAdapter(d *sqlite.DB) *sqliteAdapter { return &sqliteAdapter{d: d} }

func (a *sqliteAdapter) Ping(ctx context.Context) error {
	if a == nil || a.d == nil || a.d.SQL == nil {
		return errors.New("sqlite: nil adapter")
	}
	return a.d.SQL.PingContext(ctx)
}

func (a *sqliteAdapter) Close() error { return a.d.Close() }

// *sql.DB and *sql.Tx share this surface
type sqlQuerier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type liteQuerier struct {
	q      sqlQuerier
	tracer trace.Tracer
	slowMs int
}

func (a *sqliteAdapter) querier() liteQuerier {
	return liteQuerier{q: a.d.SQL, tracer: a.d.Tracer, slowMs: a.d.SlowMs}
}

func (a *sqliteAdapter) Exec(ctx context.Context, q string, args ...any) (CommandTag, error) {
	return a.querier().Exec(ctx, q, args...)
}

func (a *sqliteAdapter) Query(ctx context.Context, q string, args ...any) (Rows, error) {
	return a.querier().Query(ctx, q, args...)
}

func (a *sqliteAdapter) QueryRow(ctx context.Context, q string, args ...any) Row {
	return a.querier().QueryRow(ctx, q, args...)
}

func (a *sqliteAdapter) Tx(ctx context.Context, fn func(q RowQuerier) error) error {
	tx, err := a.d.SQL.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	q := liteQuerier{q: tx, tracer: a.d.Tracer, slowMs: a.d.SlowMs}
	if err := fn(q); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

func (x liteQuerier) Exec(ctx context.Context, q string, args ...any) (CommandTag, error) {
	start := time.Now()
	res, err := x.q.ExecContext(ctx, sqlite.Rebind(q), args...)
	trace.Emit(ctx, x.tracer, "sqlite", x.slowMs, q, args, start, err)
	if err != nil {
		return nil, err
	}
	n, _ := res.RowsAffected()
	return liteTag(n), nil
}

func (x liteQuerier) Query(ctx context.Context, q string, args ...any) (Rows, error) {
	start := time.Now()
	rs, err := x.q.QueryContext(ctx, sqlite.Rebind(q), args...)
	trace.Emit(ctx, x.tracer, "sqlite", x.slowMs, q, args, start, err)
	if err != nil {
		return nil, err
	}
	return liteRows{r: rs}, nil
}

func (x liteQuerier) QueryRow(ctx context.Context, q string, args ...any) Row {
	start := time.Now()
	r := x.q.QueryRowContext(ctx, sqlite.Rebind(q), args...)
	return scanHook{r: r, after: func(err error) {
		trace.Emit(ctx, x.tracer, "sqlite", x.slowMs, q, args, start, err)
	}}
}

type liteRows struct{ r *sql.Rows }

func (x liteRows) Next() bool            { return x.r.Next() }
func (x liteRows) Scan(dst ...any) error { return x.r.Scan(dst...) }
func (x liteRows) Err() error            { return x.r.Err() }
func (x liteRows) Close()                { _ = x.r.Close() }
func (x liteRows) Columns() []string {
	cols, _ := x.r.Columns()
	return cols
}

type liteTag int64

func (t liteTag) String() string      { return "ROWS " + strconv.FormatInt(int64(t), 10) }
func (t liteTag) RowsAffected() int64 { return int64(t) }
