package repo

import (
	"context"
	"embed"
	"fmt"
	"strings"

	"ttt/internal/modkit/repokit"
	"ttt/internal/platform/store"
)

//go:embed schema/*.sql
var schemaFS embed.FS

// Schema returns the DDL statements for a dialect
func Schema(d store.Dialect) ([]string, error) {
	name := "schema/sqlite.sql"
	if d == store.DialectPostgres {
		name = "schema/postgres.sql"
	}
	raw, err := schemaFS.ReadFile(name)
	if err != nil {
		return nil, err
	}
	var out []string
	for stmt := range strings.SplitSeq(string(raw), ";") {
		if s := strings.TrimSpace(stmt); s != "" {
			out = append(out, s)
		}
	}
	return out, nil
}

// Migrate creates the tracking tables if they are missing, in one transaction
func Migrate(ctx context.Context, db repokit.TxRunner, d store.Dialect) error {
	stmts, err := Schema(d)
	if err != nil {
		return err
	}
	return db.Tx(ctx, func(q repokit.Queryer) error {
		for i, s := range stmts {
			if _, err := q.Exec(ctx, s); err != nil {
				return fmt.Errorf("migrate %s statement %d: %w", d, i+1, err)
			}
		}
		return nil
	})
}
