package database

import (
	"context"
	"fmt"
	"io/fs"
	"path"

	"github.com/Jaychaware/hrms-lite/db/migrations"
	"github.com/Jaychaware/hrms-lite/internal"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

const migrationsTable = "schema_migrations"

// MigrateOptions selects the goose command and, optionally, an on-disk
// migrations directory instead of the embedded one.
type MigrateOptions struct {
	Command string
	Dir     string
	Args    []string
}

// MigrationsDir is the embedded directory holding cfg's dialect.
func MigrationsDir(cfg internal.DatabaseConfig) string {
	return path.Clean(cfg.Driver)
}

// Migrate runs a goose command ("up", "down", "status", ...) against cfg.
func Migrate(ctx context.Context, cfg internal.DatabaseConfig, opts MigrateOptions) error {
	db, err := goose.OpenDBWithDriver(cfg.SQLDriverName(), DSN(cfg))
	if err != nil {
		return fmt.Errorf("goose: failed to open DB: %w", err)
	}
	defer db.Close()

	var fsys fs.FS = migrations.FS
	dir := MigrationsDir(cfg)
	if opts.Dir != "" {
		fsys, dir = nil, opts.Dir
	}
	goose.SetBaseFS(fsys)
	goose.SetTableName(migrationsTable)

	command := opts.Command
	if command == "" {
		command = "up"
	}
	if err := goose.RunContext(ctx, command, db, dir, opts.Args...); err != nil {
		return fmt.Errorf("goose %s: %w", command, err)
	}
	return nil
}
