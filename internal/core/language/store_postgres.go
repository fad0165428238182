// Copyright (c) 2026 Bookmanager. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package language

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/bookmanager/internal/platform/database/schema"
	"github.com/taibuivan/bookmanager/internal/platform/dberr"
)

// PostgresRepository reads the seeded catalog.language table.
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListLanguages(context context.Context) ([]*Language, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s
		FROM %s
		ORDER BY %s ASC;
	`,
		schema.CatalogLanguage.Code,
		schema.CatalogLanguage.Name,
		schema.CatalogLanguage.Table,
		schema.CatalogLanguage.Position,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "Language")
	}
	defer rows.Close()

	var languages []*Language
	for rows.Next() {
		language := &Language{}
		if err := rows.Scan(&language.Code, &language.Name); err != nil {
			return nil, dberr.Wrap(err, "Language")
		}
		languages = append(languages, language)
	}

	return languages, dberr.Wrap(rows.Err(), "Language")
}

func (repository *PostgresRepository) GetLanguageByCode(context context.Context, code string) (*Language, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s
		FROM %s
		WHERE %s = $1;
	`,
		schema.CatalogLanguage.Code,
		schema.CatalogLanguage.Name,
		schema.CatalogLanguage.Table,
		schema.CatalogLanguage.Code,
	)

	language := &Language{}
	err := repository.db.QueryRow(context, query, code).Scan(&language.Code, &language.Name)
	if err != nil {
		return nil, dberr.Wrap(err, "Language")
	}
	return language, nil
}
