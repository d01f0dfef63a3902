// Package logger owns the process-wide zerolog root logger and the helpers
// modules use to derive component and request scoped children
package logger

import (
	"context"
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"ttt/internal/platform/config/raw"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

// Logger is the project-wide logging type
type Logger = zerolog.Logger

// Options configures the root logger
type Options struct {
	Level        string
	Format       string // console or json
	Service      string
	Writer       io.Writer
	WithCaller   bool
	SampleEvery  int
	StaticFields map[string]string
}

// FromEnv overlays LOG_LEVEL, LOG_FORMAT, LOG_SERVICE, LOG_CALLER and
// LOG_SAMPLE_EVERY on top of def. It reads through config/raw so the config
// package can log without an import cycle.
func FromEnv(def Options) Options {
	rc := raw.New().Prefix("LOG_")
	opt := def
	opt.Level = strings.ToLower(rc.Get("LEVEL", def.Level))
	opt.Format = strings.ToLower(rc.Get("FORMAT", def.Format))
	opt.Service = rc.Get("SERVICE", def.Service)
	opt.WithCaller = rc.GetBool("CALLER", def.WithCaller)
	opt.SampleEvery = rc.GetInt("SAMPLE_EVERY", def.SampleEvery)
	return opt
}

var (
	once sync.Once
	root atomic.Pointer[zerolog.Logger]
)

// Get returns the root logger, initialising it from the environment with
// info level console output on first use
func Get() *Logger {
	if l := root.Load(); l != nil {
		return l
	}
	Init(FromEnv(Options{Level: "info", Format: "console"}))
	return root.Load()
}

// Init builds the root logger. Only the first call has any effect.
func Init(opt Options) {
	once.Do(func() {
		zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
		zerolog.TimeFieldFormat = time.RFC3339Nano

		var w io.Writer = os.Stderr
		if opt.Writer != nil {
			w = opt.Writer
		}
		if opt.Format != "json" {
			w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
		}

		ctx := zerolog.New(w).Level(parseLevel(opt.Level)).With().Timestamp()
		if opt.Service != "" {
			ctx = ctx.Str("service", opt.Service)
		}
		for k, v := range opt.StaticFields {
			ctx = ctx.Str(k, v)
		}

		log := ctx.Logger()
		if opt.WithCaller {
			log = log.With().Caller().Logger()
		}
		if opt.SampleEvery > 1 {
			log = log.Sample(&zerolog.BasicSampler{N: uint32(opt.SampleEvery)})
		}
		root.Store(&log)
	})
}

// parseLevel maps a level name, unknown names fall back to info
func parseLevel(s string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil || lvl == zerolog.NoLevel {
		if strings.EqualFold(strings.TrimSpace(s), "warning") {
			return zerolog.WarnLevel
		}
		return zerolog.InfoLevel
	}
	return lvl
}

type ctxKey struct{ name string }

var keyRequestID = ctxKey{"request_id"}

// WithRequest stores the request id on ctx for C
func WithRequest(ctx context.Context, reqID string) context.Context {
	if reqID == "" {
		return ctx
	}
	return context.WithValue(ctx, keyRequestID, reqID)
}

// C returns a child of the root logger carrying request_id from ctx
func C(ctx context.Context) *Logger {
	l := Get()
	id, _ := ctx.Value(keyRequestID).(string)
	if id == "" {
		return l
	}
	ll := l.With().Str("request_id", id).Logger()
	return &ll
}

// Named returns a child logger with a component field
func Named(component string) *Logger {
	if component == "" {
		return Get()
	}
	ll := Get().With().Str("component", component).Logger()
	return &ll
}
