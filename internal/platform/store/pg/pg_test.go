package pg

import (
	"context"
	"errors"
	"testing"

	kit "ttt/internal/platform/testkit"

	"github.com/jackc/pgx/v5/pgxpool"
)

func TestOpen_BadURL(t *testing.T) {
	if _, err := Open(context.Background(), Config{URL: "::not a url::"}, nil, nil); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestOpen_AppliesConfig(t *testing.T) {
	kit.Serial(t)

	var seen *pgxpool.Config
	boom := errors.New("stop before dialing")
	kit.Swap(t, &newPool, func(_ context.Context, c *pgxpool.Config) (*pgxpool.Pool, error) {
		seen = c
		return nil, boom
	})

	mutated := false
	_, err := Open(context.Background(), Config{
		URL:      "postgres://u:p@localhost:5432/ttt?sslmode=disable",
		AppName:  "ttt-cli",
		MaxConns: 3,
	}, nil, func(*pgxpool.Config) { mutated = true })

	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want seam error", err)
	}
	if seen == nil || seen.MaxConns != 3 || seen.ConnConfig.RuntimeParams["application_name"] != "ttt-cli" || !mutated {
		t.Fatalf("pool config not applied: %+v mutated=%v", seen, mutated)
	}
}

func TestClose_NilSafe(t *testing.T) {
	var p *PG
	p.Close()
	(&PG{}).Close()
}
