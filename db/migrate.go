package db

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log"
	"sort"
)

// Migrations are embedded so `migrate` works regardless of the current
// working directory.
//
//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrationsFS embed.FS

// Migrate applies every migration for the handle's dialect in name order.
// Migrations are written to be re-runnable.
func (d *DB) Migrate(ctx context.Context, verbose bool) error {
	pattern := fmt.Sprintf("migrations/%s/*.sql", d.Dialect)
	names, err := fs.Glob(migrationsFS, pattern)
	if err != nil {
		return fmt.Errorf("list migrations: %w", err)
	}
	sort.Strings(names)
	for _, name := range names {
		sqlBytes, err := migrationsFS.ReadFile(name)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}
		if _, err := d.ExecContext(ctx, string(sqlBytes)); err != nil {
			return fmt.Errorf("apply migration %s: %w", name, err)
		}
		if verbose {
			log.Println("Migration", name, "applied.")
		}
	}
	return nil
}
