package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/udisondev/cavesummon/internal/db/migrations"
)

// RunMigrations applies the catalog schema migrations on the given DSN.
func RunMigrations(ctx context.Context, dsn string) error {
	return withMigrator(dsn, func(sqlDB *sql.DB) error {
		if err := goose.UpContext(ctx, sqlDB, "."); err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}
		version, err := goose.GetDBVersionContext(ctx, sqlDB)
		if err != nil {
			return fmt.Errorf("reading schema version: %w", err)
		}
		slog.Info("database migrations applied", "version", version)
		return nil
	})
}

// SchemaVersion returns the applied schema version (0 = none).
func SchemaVersion(ctx context.Context, dsn string) (int64, error) {
	var version int64
	err := withMigrator(dsn, func(sqlDB *sql.DB) error {
		var err error
		version, err = goose.GetDBVersionContext(ctx, sqlDB)
		if err != nil {
			return fmt.Errorf("reading schema version: %w", err)
		}
		return nil
	})
	return version, err
}

func withMigrator(dsn string, fn func(*sql.DB) error) error {
	sqlDB, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("opening sql connection for migrations: %w", err)
	}
	defer sqlDB.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("setting goose dialect: %w", err)
	}
	return fn(sqlDB)
}
