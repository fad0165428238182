// Copyright (c) 2026 Bookmanager. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package book_test

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/bookmanager/internal/core/book"
	"github.com/taibuivan/bookmanager/internal/core/book/booktest"
	"github.com/taibuivan/bookmanager/internal/platform/apperr"
	"github.com/taibuivan/bookmanager/internal/platform/validate"
	"github.com/taibuivan/bookmanager/pkg/uuid"
)

func newService(books ...*book.Book) (*book.Service, *booktest.Repository) {
	repository := booktest.NewRepository(books...)
	service := book.NewService(repository, booktest.DefaultLanguages(), book.CoverCodec{Placeholder: placeholder})
	return service, repository
}

func validDraft() book.Draft {
	return book.Draft{
		Title:         "Oczy Skóry",
		Author:        "Juhani Pallasmaa",
		PublishedDate: "2012-03-01",
		ISBN10:        "8365970392",
		ISBN13:        "9788365970398",
		Pages:         "128",
		Language:      "pl",
	}
}

/*
TestService_CreateBook derives the slug and id and applies the cover placeholder.
*/
func TestService_CreateBook(t *testing.T) {
	service, repository := newService()

	created, err := service.CreateBook(context.Background(), validDraft())
	require.NoError(t, err)

	assert.True(t, uuid.Valid(created.ID))
	assert.Equal(t, "oczy-skory", created.Slug)
	assert.Equal(t, placeholder, created.CoverURI)
	assert.Equal(t, "2012-03-01", created.PublishedDate.String())
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, 1, repository.Len())
}

/*
TestService_CreateBook_EmptyTitleAndAuthor reports title, author and slug.
*/
func TestService_CreateBook_EmptyTitleAndAuthor(t *testing.T) {
	service, repository := newService()

	draft := validDraft()
	draft.Title, draft.Author = "", ""

	_, err := service.CreateBook(context.Background(), draft)

	fields := validate.Fields(err)
	assert.Contains(t, fields, book.FieldTitle)
	assert.Contains(t, fields, book.FieldAuthor)
	assert.Contains(t, fields, book.FieldSlug)
	assert.Equal(t, 0, repository.Len())
}

/*
TestService_CreateBook_FieldRules checks every field rule in isolation.
*/
func TestService_CreateBook_FieldRules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*book.Draft)
		field  string
		count  int
	}{
		{"title_too_long", func(d *book.Draft) { d.Title = strings.Repeat("a", 121) }, book.FieldTitle, 2},
		{"author_too_long", func(d *book.Draft) { d.Author = strings.Repeat("a", 101) }, book.FieldAuthor, 1},
		{"title_without_slug", func(d *book.Draft) { d.Title = "日本語" }, book.FieldSlug, 1},
		{"missing_date", func(d *book.Draft) { d.PublishedDate = "" }, book.FieldPublishedDate, 1},
		{"malformed_date", func(d *book.Draft) { d.PublishedDate = "01.03.2012" }, book.FieldPublishedDate, 1},
		{"bad_isbn10", func(d *book.Draft) { d.ISBN10 = "8365970393" }, book.FieldISBN10, 1},
		{"bad_isbn13", func(d *book.Draft) { d.ISBN13 = "9788365970399" }, book.FieldISBN13, 1},
		{"pages_too_long", func(d *book.Draft) { d.Pages = "12345" }, book.FieldPages, 1},
		{"cover_too_long", func(d *book.Draft) { d.CoverURI = "https://" + strings.Repeat("a", 400) }, book.FieldCoverURI, 1},
		{"unknown_language", func(d *book.Draft) { d.Language = "xx" }, book.FieldLanguage, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _ := newService()

			draft := validDraft()
			tt.mutate(&draft)

			_, err := service.CreateBook(context.Background(), draft)
			fields := validate.Fields(err)
			require.NotNil(t, fields)
			assert.Contains(t, fields, tt.field)
			assert.Len(t, fields, tt.count)
		})
	}
}

/*
TestService_CreateBook_OptionalFields accepts empty ISBNs, pages and language.
*/
func TestService_CreateBook_OptionalFields(t *testing.T) {
	service, _ := newService()

	draft := validDraft()
	draft.ISBN10, draft.ISBN13, draft.Pages, draft.Language = "", "", "", ""

	_, err := service.CreateBook(context.Background(), draft)
	assert.NoError(t, err)
}

/*
TestService_CreateBook_SeparatedISBN stores hyphenated and spaced ISBNs as digits only.
*/
func TestService_CreateBook_SeparatedISBN(t *testing.T) {
	tests := []struct {
		name   string
		isbn10 string
		isbn13 string
	}{
		{"hyphens", "83-659-7039-2", "978-83-65970-39-8"},
		{"spaces", "83 659 7039 2", "978 83 65970 39 8"},
		{"surrounding_blanks", " 8365970392 ", " 9788365970398 "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _ := newService()

			draft := validDraft()
			draft.ISBN10, draft.ISBN13 = tt.isbn10, tt.isbn13

			created, err := service.CreateBook(context.Background(), draft)
			require.NoError(t, err)

			stored, err := service.GetBook(context.Background(), created.ID)
			require.NoError(t, err)
			assert.Equal(t, "8365970392", stored.ISBN10)
			assert.Equal(t, "9788365970398", stored.ISBN13)
			assert.LessOrEqual(t, len(stored.ISBN10), 10)
			assert.LessOrEqual(t, len(stored.ISBN13), 13)
		})
	}
}

/*
TestService_UpdateBook_SeparatedISBN strips separators on update too.
*/
func TestService_UpdateBook_SeparatedISBN(t *testing.T) {
	service, _ := newService()

	created, err := service.CreateBook(context.Background(), validDraft())
	require.NoError(t, err)

	draft := book.DraftOf(created)
	draft.ISBN10, draft.ISBN13 = "0-441-01359-7", "978-0-441-01359-3"

	updated, err := service.UpdateBook(context.Background(), created.ID, draft)
	require.NoError(t, err)
	assert.Equal(t, "0441013597", updated.ISBN10)
	assert.Equal(t, "9780441013593", updated.ISBN13)
}

/*
TestService_UpdateBook rederives the slug and keeps the id.
*/
func TestService_UpdateBook(t *testing.T) {
	service, _ := newService()

	created, err := service.CreateBook(context.Background(), validDraft())
	require.NoError(t, err)

	draft := book.DraftOf(created)
	draft.Title = "The Eyes of the Skin"
	draft.CoverURI = "https://example.com/cover.jpg"

	updated, err := service.UpdateBook(context.Background(), created.ID, draft)
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "the-eyes-of-the-skin", updated.Slug)

	stored, err := service.GetBook(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/cover.jpg", stored.CoverURI)
}

/*
TestService_UpdateBook_Unknown reports not found.
*/
func TestService_UpdateBook_Unknown(t *testing.T) {
	service, _ := newService()

	_, err := service.UpdateBook(context.Background(), uuid.New(), validDraft())
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, http.StatusNotFound, ae.HTTPStatus)
}

/*
TestService_DeleteBook removes the record once.
*/
func TestService_DeleteBook(t *testing.T) {
	service, repository := newService()

	created, err := service.CreateBook(context.Background(), validDraft())
	require.NoError(t, err)

	require.NoError(t, service.DeleteBook(context.Background(), created.ID))
	assert.Equal(t, 0, repository.Len())

	assert.Error(t, service.DeleteBook(context.Background(), created.ID))
}
