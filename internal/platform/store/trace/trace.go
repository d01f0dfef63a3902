// Package trace carries SQL query events from the store adapters to the log
package trace

import (
	"context"
	"strings"
	"time"

	"ttt/internal/platform/logger"

	"github.com/rs/zerolog"
)

// Event describes one statement round trip
type Event struct {
	Backend   string
	SQL       string
	Args      any
	ElapsedUS int64
	Err       error
	Slow      bool
}

// Tracer receives query events
type Tracer interface {
	OnQuery(ctx context.Context, ev Event)
}

// Emit times a statement started at start and hands it to t.
// A nil tracer is a no-op. slowMs < 0 disables the slow flag.
func Emit(ctx context.Context, t Tracer, backend string, slowMs int, sql string, args []any, start time.Time, err error) {
	if t == nil {
		return
	}
	elapsed := time.Since(start).Microseconds()
	t.OnQuery(ctx, Event{
		Backend:   backend,
		SQL:       sql,
		Args:      args,
		ElapsedUS: elapsed,
		Err:       err,
		Slow:      slowMs >= 0 && elapsed >= int64(slowMs)*1000,
	})
}

// Zerolog logs every statement regardless of the root level, slow ones at warn
func Zerolog(root logger.Logger) Tracer {
	return &zlTracer{log: root.Level(zerolog.DebugLevel).With().Str("component", "sql").Logger()}
}

type zlTracer struct{ log logger.Logger }

func (z *zlTracer) OnQuery(_ context.Context, ev Event) {
	evt := z.log.Info()
	if ev.Slow {
		evt = z.log.Warn()
	}
	evt.Str("backend", ev.Backend).
		Float64("elapsed_ms", float64(ev.ElapsedUS)/1000.0).
		Bool("slow", ev.Slow).
		Str("sql", Compact(ev.SQL)).
		Interface("args", ev.Args).
		Err(ev.Err).
		Msg("sql query")
}

// Compact folds every whitespace run into one space and trims the ends
func Compact(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
