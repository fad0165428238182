// Copyright (c) 2026 Bookmanager. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values. For local
development, variables may also come from a '.env' file loaded with
'joho/godotenv'; real environment variables always take precedence.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (DB, Redis, catalog client) via constructors.
  - Zero Hidden State: No global variables are used to store config.
*/
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/taibuivan/bookmanager/internal/platform/validate"
)

// MaxPageSize is the largest page the external catalog serves per request.
const MaxPageSize = 40

// # Configuration Schema

// Config holds all runtime configuration for the bookmanager server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Relational Database (PostgreSQL)
	DatabaseURL string `env:"DATABASE_URL,required"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Key-Value Store (Redis), holds flash messages
	RedisURL string `env:"REDIS_URL,required"`

	// PageSize governs every paged view, local and imported.
	PageSize int `env:"PAGE_SIZE" envDefault:"40"`

	// DefaultCoverURI is shown for books without a cover image.
	DefaultCoverURI string `env:"DEFAULT_COVER_URI" envDefault:"https://books.google.pl/googlebooks/images/no_cover_thumb.gif"`

	// External catalog (Google Books volumes API)
	GoogleBooksURL    string `env:"GOOGLE_BOOKS_URL"     envDefault:"https://www.googleapis.com/books/v1"`
	GoogleBooksAPIKey string `env:"GOOGLE_BOOKS_API_KEY"`

	// Cross-Origin Resource Sharing for the JSON API, comma separated
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}

// # Configuration Loading

// Load reads an optional '.env' file, then parses environment variables into a [Config].
func Load() (*Config, error) {
	return LoadFiles(".env")
}

// LoadFiles is [Load] with explicit dotenv files. Missing files are skipped.
func LoadFiles(files ...string) (*Config, error) {
	for _, file := range files {
		// godotenv.Load never overrides variables that are already set.
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: failed to read %s: %w", file, err)
		}
	}

	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	// This will fail if any field marked with 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	validator := &validate.Validator{}
	validator.Range("PAGE_SIZE", c.PageSize, 1, MaxPageSize)
	validator.Required("DEFAULT_COVER_URI", c.DefaultCoverURI)
	validator.Required("GOOGLE_BOOKS_URL", c.GoogleBooksURL)
	validator.Custom("ENVIRONMENT", !isKnownEnvironment(c.Environment), "Must be development, test or production")
	return validator.Err()
}

func isKnownEnvironment(environment string) bool {
	switch strings.ToLower(environment) {
	case "development", "test", "production":
		return true
	}
	return false
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
