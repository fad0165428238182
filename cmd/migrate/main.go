// Copyright (c) 2026 Bookmanager. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command migrate applies or reverts the catalog schema migrations by hand.
//
//	migrate -command up
//	migrate -command down
//	migrate -command version
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/taibuivan/bookmanager/internal/platform/config"
	"github.com/taibuivan/bookmanager/internal/platform/constants"
	"github.com/taibuivan/bookmanager/internal/platform/migration"
)

func main() {
	command := flag.String("command", "up", "Migration command: up, down, version")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, nil)).With(slog.String(constants.FieldApp, constants.AppName))

	cfg, err := config.Load()
	if err != nil {
		log.Error("config_load_failed", slog.Any("error", err))
		os.Exit(1)
	}

	runner, err := migration.Open(cfg.DatabaseURL, cfg.MigrationPath, log)
	if err != nil {
		log.Error("migration_open_failed", slog.Any("error", err))
		os.Exit(1)
	}
	defer runner.Close()

	if err := run(runner, *command); err != nil {
		log.Error("migration_failed", slog.String("command", *command), slog.Any("error", err))
		runner.Close()
		os.Exit(1)
	}
}

func run(runner *migration.Runner, command string) error {
	switch command {
	case "up":
		return runner.Up()
	case "down":
		return runner.Down()
	case "version":
		version, dirty, err := runner.Version()
		if err != nil {
			return err
		}
		fmt.Printf("version %d (dirty: %t)\n", version, dirty)
		return nil
	default:
		return fmt.Errorf("unknown command %q (use up, down or version)", command)
	}
}
