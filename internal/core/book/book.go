// Copyright (c) 2026 Bookmanager. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package book defines the book record and its catalogue operations.

Core Responsibility:

  - Records: title, author, publication date, ISBNs, pages, cover and language.
  - Lifecycle: create and update through a validated [Draft], hard delete.
  - Discovery: the [Filter] shared by the browser search page and the JSON API.

Books are stored in PostgreSQL ([PostgresRepository]); tests use the in-memory
repository from the booktest package.
*/
package book

import (
	"strings"
	"time"
)

// # Field Names

// Field names shared by form inputs, JSON payloads and validation details.
const (
	FieldTitle         = "title"
	FieldAuthor        = "author"
	FieldPublishedDate = "published_date"
	FieldISBN10        = "isbn_10"
	FieldISBN13        = "isbn_13"
	FieldPages         = "pages"
	FieldCoverURI      = "cover_uri"
	FieldLanguage      = "language"
	FieldSlug          = "slug"
)

// # Limits

const (
	MaxTitleLen    = 120
	MaxAuthorLen   = 100
	MaxPagesLen    = 4
	MaxCoverURILen = 400
	MaxSlugLen     = 120
)

// isbnSeparators are stripped from submitted ISBNs; the columns hold digits only.
var isbnSeparators = strings.NewReplacer("-", "", " ", "")

// NormalizeISBN removes hyphens and spaces from an ISBN.
func NormalizeISBN(value string) string {
	return isbnSeparators.Replace(strings.TrimSpace(value))
}

// # Core Entities

// Book is one catalogue record.
type Book struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Author        string `json:"author"`
	PublishedDate Date   `json:"published_date"`
	ISBN10        string `json:"isbn_10"`
	ISBN13        string `json:"isbn_13"`
	Pages         string `json:"pages"`
	CoverURI      string `json:"cover_uri"`
	Language      string `json:"language"`

	// Slug is derived from Title on every write.
	Slug string `json:"-"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// String renders the book the way list pages and log lines refer to it.
func (b *Book) String() string {
	return b.Title + ", " + b.Author + ", " + b.PublishedDate.String()
}

// Draft is the unvalidated input of a create or update, one string per form field.
type Draft struct {
	Title         string
	Author        string
	PublishedDate string
	ISBN10        string
	ISBN13        string
	Pages         string
	CoverURI      string
	Language      string
}

// DraftOf returns the form values of an existing book.
func DraftOf(b *Book) Draft {
	return Draft{
		Title:         b.Title,
		Author:        b.Author,
		PublishedDate: b.PublishedDate.String(),
		ISBN10:        b.ISBN10,
		ISBN13:        b.ISBN13,
		Pages:         b.Pages,
		CoverURI:      b.CoverURI,
		Language:      b.Language,
	}
}

// DraftFromForm reads a draft from submitted form values.
//
// Surrounding whitespace is trimmed from every field.
func DraftFromForm(get func(string) string) Draft {
	return Draft{
		Title:         trim(get(FieldTitle)),
		Author:        trim(get(FieldAuthor)),
		PublishedDate: trim(get(FieldPublishedDate)),
		ISBN10:        trim(get(FieldISBN10)),
		ISBN13:        trim(get(FieldISBN13)),
		Pages:         trim(get(FieldPages)),
		CoverURI:      trim(get(FieldCoverURI)),
		Language:      trim(get(FieldLanguage)),
	}
}
