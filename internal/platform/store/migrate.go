package store

import (
	"context"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"paysystem/internal/platform/store/ch"
	"paysystem/internal/platform/store/pg"
)

// migrationLock is the advisory lock key held while migrations run
const migrationLock int64 = 0x7061797379

// Migrate applies the embedded postgres migrations that have not run yet,
// then the clickhouse schema when a clickhouse backend is configured
func Migrate(ctx context.Context, s *Store) error {
	if s == nil || s.PG == nil {
		return fmt.Errorf("migrate: postgres not configured")
	}
	files, err := migrationFiles(pg.Migrations)
	if err != nil {
		return err
	}
	applied, err := applyPG(ctx, s.PG, pg.Migrations, files)
	if err != nil {
		return err
	}
	s.Log.Info().Int("applied", applied).Int("known", len(files)).Msg("postgres migrations done")

	if s.CH != nil {
		if err := applyCH(ctx, s.CH, ch.Schema); err != nil {
			return fmt.Errorf("migrate clickhouse: %w", err)
		}
		s.Log.Info().Msg("clickhouse schema ready")
	}
	return nil
}

func migrationFiles(fsys fs.FS) ([]string, error) {
	names, err := fs.Glob(fsys, "migrations/*.sql")
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}

func applyPG(ctx context.Context, db TxRunner, fsys fs.FS, files []string) (int, error) {
	applied := 0
	err := db.Tx(ctx, func(q RowQuerier) error {
		if _, err := q.Exec(ctx, "SELECT pg_advisory_xact_lock($1)", migrationLock); err != nil {
			return err
		}
		if _, err := q.Exec(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (
			name text PRIMARY KEY,
			applied_at timestamptz NOT NULL DEFAULT now()
		)`); err != nil {
			return err
		}
		for _, f := range files {
			name := strings.TrimPrefix(f, "migrations/")
			done, err := Scalar[bool](ctx, q,
				"SELECT EXISTS (SELECT 1 FROM schema_migrations WHERE name = $1)", name)
			if err != nil {
				return err
			}
			if done {
				continue
			}
			body, err := fs.ReadFile(fsys, f)
			if err != nil {
				return err
			}
			if _, err := q.Exec(ctx, string(body)); err != nil {
				return fmt.Errorf("migration %s: %w", name, err)
			}
			if _, err := q.Exec(ctx, "INSERT INTO schema_migrations (name) VALUES ($1)", name); err != nil {
				return err
			}
			applied++
		}
		return nil
	})
	return applied, err
}

func applyCH(ctx context.Context, c Clickhouse, schema string) error {
	for _, stmt := range splitStatements(schema) {
		if err := c.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// splitStatements cuts a DDL script on semicolons and drops blank pieces
func splitStatements(script string) []string {
	var out []string
	for _, part := range strings.Split(script, ";") {
		if s := strings.TrimSpace(part); s != "" {
			out = append(out, s)
		}
	}
	return out
}
