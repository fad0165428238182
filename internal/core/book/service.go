// Copyright (c) 2026 Bookmanager. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package book

import (
	"context"
	"log/slog"

	"github.com/taibuivan/bookmanager/internal/core/language"
	"github.com/taibuivan/bookmanager/internal/platform/ctxutil"
	"github.com/taibuivan/bookmanager/internal/platform/validate"
	"github.com/taibuivan/bookmanager/pkg/slug"
	"github.com/taibuivan/bookmanager/pkg/uuid"
)

// Languages supplies the set of valid language codes.
type Languages interface {
	Set(context context.Context) (*language.Set, error)
}

// # Service Layer

// Service orchestrates the business rules of the book catalogue.
type Service struct {
	repo      Repository
	languages Languages
	cover     CoverCodec
}

// NewService constructs a new [Service].
//
// cover supplies the placeholder assigned to drafts without a cover URI.
func NewService(repo Repository, languages Languages, cover CoverCodec) *Service {
	return &Service{
		repo:      repo,
		languages: languages,
		cover:     cover,
	}
}

// # Lookups

/*
ListBooks retrieves one page of books matching the filter.

Returns:
  - []*Book: the page
  - int: total count of matching books (for pagination metadata)
  - error: repository errors
*/
func (service *Service) ListBooks(context context.Context, filter Filter, limit, offset int) ([]*Book, int, error) {
	return service.repo.List(context, filter, limit, offset)
}

// GetBook fetches a single book by id.
func (service *Service) GetBook(context context.Context, id string) (*Book, error) {
	return service.repo.FindByID(context, id)
}

// # Management

/*
CreateBook validates a draft and stores it as a new book.

Description: The id is a fresh UUIDv7 and the slug is derived from the
title. Nothing is stored when validation fails.

Returns:
  - *Book: the stored book
  - error: apperr.ValidationError with per-field details, or storage errors
*/
func (service *Service) CreateBook(context context.Context, draft Draft) (*Book, error) {
	book := &Book{ID: uuid.New()}
	if err := service.apply(context, book, draft); err != nil {
		return nil, err
	}

	if err := service.repo.Create(context, book); err != nil {
		return nil, err
	}

	ctxutil.GetLogger(context).Info("book_created",
		slog.String("id", book.ID),
		slog.String("slug", book.Slug),
	)
	return book, nil
}

/*
UpdateBook replaces every editable field of an existing book.

Returns:
  - *Book: the updated book
  - error: apperr.NotFound, apperr.ValidationError or storage errors
*/
func (service *Service) UpdateBook(context context.Context, id string, draft Draft) (*Book, error) {
	book, err := service.repo.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	if err := service.apply(context, book, draft); err != nil {
		return nil, err
	}

	if err := service.repo.Update(context, book); err != nil {
		return nil, err
	}

	ctxutil.GetLogger(context).Info("book_updated", slog.String("id", book.ID))
	return book, nil
}

// DeleteBook removes a book permanently.
func (service *Service) DeleteBook(context context.Context, id string) error {
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	ctxutil.GetLogger(context).Info("book_deleted", slog.String("id", id))
	return nil
}

// apply validates draft and copies it onto book, deriving the slug.
func (service *Service) apply(context context.Context, book *Book, draft Draft) error {
	languages, err := service.languages.Set(context)
	if err != nil {
		return err
	}

	derivedSlug := slug.From(draft.Title)
	isbn10 := NormalizeISBN(draft.ISBN10)
	isbn13 := NormalizeISBN(draft.ISBN13)

	validator := &validate.Validator{}

	// Identity
	validator.Required(FieldTitle, draft.Title).MaxLen(FieldTitle, draft.Title, MaxTitleLen)
	validator.Required(FieldAuthor, draft.Author).MaxLen(FieldAuthor, draft.Author, MaxAuthorLen)
	validator.Required(FieldSlug, derivedSlug).MaxLen(FieldSlug, derivedSlug, MaxSlugLen)

	// Publication
	validator.Required(FieldPublishedDate, draft.PublishedDate)
	if draft.PublishedDate != "" {
		validator.Date(FieldPublishedDate, draft.PublishedDate)
	}
	validator.ISBN10(FieldISBN10, isbn10)
	validator.ISBN13(FieldISBN13, isbn13)
	validator.MaxLen(FieldPages, draft.Pages, MaxPagesLen)

	// Presentation
	validator.MaxLen(FieldCoverURI, draft.CoverURI, MaxCoverURILen)
	validator.OneOf(FieldLanguage, draft.Language, languages.Codes()...)

	if err := validator.Err(); err != nil {
		return err
	}

	published, err := ParseDate(draft.PublishedDate)
	if err != nil {
		return err
	}

	cover := draft.CoverURI
	if cover == "" {
		cover = service.cover.Placeholder
	}

	book.Title = draft.Title
	book.Author = draft.Author
	book.PublishedDate = published
	book.ISBN10 = isbn10
	book.ISBN13 = isbn13
	book.Pages = draft.Pages
	book.CoverURI = cover
	book.Language = draft.Language
	book.Slug = derivedSlug

	return nil
}
