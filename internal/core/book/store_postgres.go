// Copyright (c) 2026 Bookmanager. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package book

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/bookmanager/internal/platform/apperr"
	"github.com/taibuivan/bookmanager/internal/platform/database/schema"
	"github.com/taibuivan/bookmanager/internal/platform/dberr"
)

// resource names books in error messages.
const resource = "Book"

// likeEscaper escapes the ILIKE wildcards of user input. "\" is the default escape character.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// # PostgreSQL Repository

// PostgresRepository implements [Repository] on the catalog.book table.
type PostgresRepository struct {
	pool  *pgxpool.Pool
	cover CoverCodec
}

// NewPostgresRepository constructs a PostgreSQL backed book store.
//
// cover translates the placeholder image on write and read.
func NewPostgresRepository(pool *pgxpool.Pool, cover CoverCodec) *PostgresRepository {
	return &PostgresRepository{pool: pool, cover: cover}
}

/*
List returns a filtered, paginated slice of books and the total count.

Description: Filter criteria become AND-combined predicates; title and author
use ILIKE on escaped input (served by trigram indexes). COUNT(*) OVER()
returns the total in the same round trip.
*/
func (repository *PostgresRepository) List(context context.Context, filter Filter, limit, offset int) ([]*Book, int, error) {
	query, args := listQuery(filter, limit, offset)

	rows, err := repository.pool.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, resource)
	}
	defer rows.Close()

	var books []*Book
	var totalCount int

	for rows.Next() {
		book := &Book{}
		if err := rows.Scan(append(repository.scanTargets(book), &totalCount)...); err != nil {
			return nil, 0, dberr.Wrap(err, resource)
		}
		book.CoverURI = repository.cover.Decode(book.CoverURI)
		books = append(books, book)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, resource)
	}

	// An offset past the last row returns no rows and thus no window count.
	if len(books) == 0 && offset > 0 {
		totalCount, err = repository.count(context, filter)
		if err != nil {
			return nil, 0, err
		}
	}

	return books, totalCount, nil
}

// listQuery renders the SELECT of [PostgresRepository.List] and its positional arguments.
func listQuery(filter Filter, limit, offset int) (string, []any) {
	table := schema.CatalogBook

	var queryBuilder strings.Builder
	var args []any
	argID := 1

	queryBuilder.WriteString(fmt.Sprintf("SELECT %s, COUNT(*) OVER() AS total_count FROM %s WHERE TRUE",
		strings.Join(table.Columns(), ", "), table.Table))

	// Substring criteria
	if filter.Title != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND %s ILIKE $%d", table.Title, argID))
		args = append(args, "%"+likeEscaper.Replace(filter.Title)+"%")
		argID++
	}
	if filter.Author != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND %s ILIKE $%d", table.Author, argID))
		args = append(args, "%"+likeEscaper.Replace(filter.Author)+"%")
		argID++
	}

	// Exact language
	if filter.Language != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND %s = $%d", table.Language, argID))
		args = append(args, filter.Language)
		argID++
	}

	// Inclusive date range
	if filter.PublishedFrom != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND %s >= $%d", table.PublishedDate, argID))
		args = append(args, filter.PublishedFrom.Time)
		argID++
	}
	if filter.PublishedTo != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND %s <= $%d", table.PublishedDate, argID))
		args = append(args, filter.PublishedTo.Time)
		argID++
	}

	// Sorting
	switch filter.Sort {
	case SortNewest:
		queryBuilder.WriteString(fmt.Sprintf(" ORDER BY %s DESC, %s ASC, %s ASC", table.PublishedDate, table.Title, table.ID))
	default:
		queryBuilder.WriteString(fmt.Sprintf(" ORDER BY %s ASC, %s ASC", table.Title, table.ID))
	}

	// Pagination
	queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", argID, argID+1))
	args = append(args, limit, offset)

	return queryBuilder.String(), args
}

// count is List's fallback for pages beyond the end.
func (repository *PostgresRepository) count(context context.Context, filter Filter) (int, error) {
	books, total, err := repository.List(context, filter, 1, 0)
	if err != nil {
		return 0, err
	}
	if len(books) == 0 {
		return 0, nil
	}
	return total, nil
}

// FindByID retrieves a book by its primary key.
func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Book, error) {
	table := schema.CatalogBook
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1",
		strings.Join(table.Columns(), ", "), table.Table, table.ID)

	book := &Book{}
	if err := repository.pool.QueryRow(context, query, id).Scan(repository.scanTargets(book)...); err != nil {
		return nil, dberr.Wrap(err, resource)
	}

	book.CoverURI = repository.cover.Decode(book.CoverURI)
	return book, nil
}

// Create inserts a new book and records its timestamps on the entity.
func (repository *PostgresRepository) Create(context context.Context, book *Book) error {
	table := schema.CatalogBook
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING %s, %s`,
		table.Table,
		table.ID, table.Title, table.Author, table.PublishedDate, table.ISBN10,
		table.ISBN13, table.Pages, table.Language, table.CoverURI, table.Slug,
		table.CreatedAt, table.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query,
		book.ID, book.Title, book.Author, book.PublishedDate.Time, book.ISBN10,
		book.ISBN13, book.Pages, book.Language, repository.cover.Encode(book.CoverURI), book.Slug,
	).Scan(&book.CreatedAt, &book.UpdatedAt)

	return dberr.Wrap(err, resource)
}

// Update overwrites the mutable fields of an existing book.
func (repository *PostgresRepository) Update(context context.Context, book *Book) error {
	table := schema.CatalogBook
	query := fmt.Sprintf(`
		UPDATE %s SET
			%s = $2, %s = $3, %s = $4, %s = $5, %s = $6,
			%s = $7, %s = $8, %s = $9, %s = $10, %s = $11
		WHERE %s = $1
		RETURNING %s`,
		table.Table,
		table.Title, table.Author, table.PublishedDate, table.ISBN10, table.ISBN13,
		table.Pages, table.Language, table.CoverURI, table.Slug, table.UpdatedAt,
		table.ID,
		table.CreatedAt,
	)

	now := time.Now().UTC()
	err := repository.pool.QueryRow(context, query,
		book.ID, book.Title, book.Author, book.PublishedDate.Time, book.ISBN10, book.ISBN13,
		book.Pages, book.Language, repository.cover.Encode(book.CoverURI), book.Slug, now,
	).Scan(&book.CreatedAt)
	if err != nil {
		return dberr.Wrap(err, resource)
	}

	book.UpdatedAt = now
	return nil
}

// Delete removes a book row. A missing row is reported as not found.
func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	table := schema.CatalogBook
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", table.Table, table.ID)

	tag, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, resource)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(resource)
	}
	return nil
}

// scanTargets lists the destinations of [schema.CatalogBookTable.Columns] in order.
func (repository *PostgresRepository) scanTargets(book *Book) []any {
	return []any{
		&book.ID,
		&book.Title,
		&book.Author,
		&book.PublishedDate.Time,
		&book.ISBN10,
		&book.ISBN13,
		&book.Pages,
		&book.Language,
		&book.CoverURI,
		&book.Slug,
		&book.CreatedAt,
		&book.UpdatedAt,
	}
}

var _ Repository = (*PostgresRepository)(nil)
