//go:build integration_pg

package repo

import (
	"context"
	"fmt"
	"testing"
	"time"

	"ttt/internal/platform/store"

	"github.com/rs/zerolog"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startPostgres(t *testing.T) string {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	t.Cleanup(cancel)

	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "ttt",
				"POSTGRES_PASSWORD": "ttt",
				"POSTGRES_DB":       "ttt",
			},
			WaitingFor: wait.ForAll(
				wait.ForListeningPort("5432/tcp"),
				wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
			).WithDeadline(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("start postgres: %v", err)
	}
	t.Cleanup(func() { _ = c.Terminate(context.Background()) })

	host, err := c.Host(ctx)
	if err != nil {
		t.Fatalf("host: %v", err)
	}
	port, err := c.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("port: %v", err)
	}
	return fmt.Sprintf("postgres://ttt:ttt@%s:%s/ttt?sslmode=disable", host, port.Port())
}

func TestRepo_Postgres_Integration(t *testing.T) {
	dsn := startPostgres(t)
	ctx := context.Background()

	s, err := store.Open(ctx, store.Config{
		Driver: store.DialectPostgres,
		PG:     store.PGConfig{URL: dsn, MaxConns: 4},
	}, store.WithLogger(zerolog.Nop()))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close(ctx)

	for range 2 {
		if err := Migrate(ctx, s.DB, s.Dialect); err != nil {
			t.Fatalf("migrate: %v", err)
		}
	}
	exerciseRepo(t, s.DB)
}
