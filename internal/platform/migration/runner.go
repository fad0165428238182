// Copyright (c) 2026 Bookmanager. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package migration runs the catalog schema migrations through golang-migrate.
//
// The API server applies pending migrations at startup; cmd/migrate exposes
// the same runner for manual up, down and version commands.
package migration

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	// pgx5 driver registers "pgx5" scheme for golang-migrate.
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	// file source reads .sql files from disk.
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// Runner owns one golang-migrate instance. Close it when done.
type Runner struct {
	migrator *migrate.Migrate
	logger   *slog.Logger
}

// Open prepares a runner for the migrations under path against dsn.
func Open(dsn, path string, logger *slog.Logger) (*Runner, error) {
	migrator, err := migrate.New("file://"+path, PGX5DSN(dsn))
	if err != nil {
		return nil, fmt.Errorf("migration: failed to initialize: %w", err)
	}
	migrator.Log = &migrateLogger{logger: logger}

	return &Runner{migrator: migrator, logger: logger}, nil
}

// Close releases the source and database handles.
func (runner *Runner) Close() {
	sourceErr, dbErr := runner.migrator.Close()
	if sourceErr != nil {
		runner.logger.Error("migration_source_close_failed", slog.Any("error", sourceErr))
	}
	if dbErr != nil {
		runner.logger.Error("migration_db_close_failed", slog.Any("error", dbErr))
	}
}

// Version returns the applied version; zero means no migration has run.
func (runner *Runner) Version() (uint, bool, error) {
	version, dirty, err := runner.migrator.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("migration: failed to get current version: %w", err)
	}
	return version, dirty, nil
}

// Up applies every pending migration. An up-to-date schema is not an error.
func (runner *Runner) Up() error {
	return runner.apply("up", runner.migrator.Up)
}

// Down reverts the most recent migration.
func (runner *Runner) Down() error {
	return runner.apply("down", func() error { return runner.migrator.Steps(-1) })
}

func (runner *Runner) apply(direction string, step func() error) error {
	from, dirty, err := runner.Version()
	if err != nil {
		return err
	}
	if dirty {
		return fmt.Errorf("migration: database is dirty at version %d", from)
	}

	if err := step(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			runner.logger.Info("migration_no_change", slog.Int("version", int(from)))
			return nil
		}
		return fmt.Errorf("migration: %s failed: %w", direction, err)
	}

	to, _, _ := runner.Version()
	runner.logger.Info("migration_applied",
		slog.String("direction", direction),
		slog.Int("from_version", int(from)),
		slog.Int("to_version", int(to)),
	)

	return nil
}

// RunUp opens a runner, applies pending migrations and closes it.
func RunUp(dsn, path string, logger *slog.Logger) error {
	runner, err := Open(dsn, path, logger)
	if err != nil {
		return err
	}
	defer runner.Close()

	return runner.Up()
}

// PGX5DSN rewrites postgres:// and postgresql:// URLs to the pgx5:// scheme
// golang-migrate expects. Other strings are returned unchanged.
func PGX5DSN(dsn string) string {
	for _, prefix := range []string{"postgres://", "postgresql://"} {
		if rest, ok := strings.CutPrefix(dsn, prefix); ok {
			return "pgx5://" + rest
		}
	}
	return dsn
}

// migrateLogger adapts golang-migrate's logger interface to slog.
type migrateLogger struct {
	logger *slog.Logger
}

// Printf implements migrate.Logger.
func (l *migrateLogger) Printf(format string, args ...any) {
	l.logger.Debug("migration_log", slog.String("message", strings.TrimSpace(fmt.Sprintf(format, args...))))
}

// Verbose implements migrate.Logger.
func (l *migrateLogger) Verbose() bool {
	return l.logger.Enabled(context.Background(), slog.LevelDebug)
}
