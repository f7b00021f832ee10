package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/osse101/HeroTracker_Go/migrations"
)

// Migrate applies every pending goose migration embedded in the binary
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	return withMigrationDB(pool, func(db *sql.DB) error {
		if err := goose.UpContext(ctx, db, MigrationDir); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToMigrate, err)
		}

		version, err := goose.GetDBVersionContext(ctx, db)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToMigrate, err)
		}

		slog.Default().Info(LogMsgMigrationsApplied, "version", version)
		return nil
	})
}

// RunMigrationCommand runs a goose command such as "status", "down" or
// "up-to 3" against the embedded migrations
func RunMigrationCommand(ctx context.Context, pool *pgxpool.Pool, command string, args ...string) error {
	return withMigrationDB(pool, func(db *sql.DB) error {
		if err := goose.RunContext(ctx, command, db, MigrationDir, args...); err != nil {
			return fmt.Errorf("%s %q: %w", ErrMsgFailedMigrationCommand, command, err)
		}
		return nil
	})
}

func withMigrationDB(pool *pgxpool.Pool, fn func(db *sql.DB) error) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	goose.SetBaseFS(migrations.FS)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect(MigrationDialect); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSetDialect, err)
	}
	return fn(db)
}
