package logger

import (
	"bytes"
	"context"
	"testing"

	kit "ttt/internal/platform/testkit"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":    zerolog.TraceLevel,
		"DEBUG":    zerolog.DebugLevel,
		" info ":   zerolog.InfoLevel,
		"warn":     zerolog.WarnLevel,
		"warning":  zerolog.WarnLevel,
		"error":    zerolog.ErrorLevel,
		"":         zerolog.InfoLevel,
		"nonsense": zerolog.InfoLevel,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Fatalf("parseLevel(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestFromEnv_OverlaysDefaults(t *testing.T) {
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("LOG_FORMAT", "")
	t.Setenv("LOG_SAMPLE_EVERY", "3")

	got := FromEnv(Options{Level: "warn", Format: "json", Service: "ttt"})
	if got.Level != "debug" || got.Format != "json" || got.Service != "ttt" || got.SampleEvery != 3 {
		t.Fatalf("FromEnv = %+v", got)
	}
}

// Init only runs once per process, so everything that depends on the root
// configuration lives in this one test
func TestInit_Named_C(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{
		Level:        "debug",
		Format:       "json",
		Service:      "ttt-test",
		Writer:       &buf,
		StaticFields: map[string]string{"env": "test"},
	})

	Named("tracking").Info().Msg("started")
	C(WithRequest(context.Background(), "req-1")).Debug().Msg("handled")
	C(context.Background()).Info().Msg("plain")

	out := buf.String()
	kit.MustContain(t, out,
		`"service":"ttt-test"`,
		`"env":"test"`,
		`"component":"tracking"`,
		`"request_id":"req-1"`,
		`"message":"plain"`,
	)

	if Get() != Get() {
		t.Fatalf("Get should return the same root")
	}
	if WithRequest(context.Background(), "") != context.Background() {
		t.Fatalf("empty request id should leave ctx untouched")
	}
}
