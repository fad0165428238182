// Copyright (c) 2026 Bookmanager. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package migration

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

/*
TestPGX5DSN verifies the scheme rewrite for golang-migrate.
*/
func TestPGX5DSN(t *testing.T) {
	tests := []struct {
		name string
		dsn  string
		want string
	}{
		{"postgres_scheme", "postgres://u:p@db:5432/books", "pgx5://u:p@db:5432/books"},
		{"postgresql_scheme", "postgresql://u@db/books?sslmode=disable", "pgx5://u@db/books?sslmode=disable"},
		{"already_pgx5", "pgx5://db/books", "pgx5://db/books"},
		{"keyword_dsn", "host=db dbname=books", "host=db dbname=books"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PGX5DSN(tt.dsn))
		})
	}
}
