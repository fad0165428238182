// Copyright (c) 2026 Bookmanager. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package book

import (
	"net/url"
	"strings"

	"github.com/taibuivan/bookmanager/internal/platform/validate"
)

// # Search Filter

// Sort selects the order of a book list.
type Sort string

const (
	// SortTitle orders alphabetically by title. It is the default.
	SortTitle Sort = "title"

	// SortNewest orders by publication date, most recent first.
	SortNewest Sort = "newest"
)

// Query-string keys read by [ParseFilter].
const (
	ParamTitle         = "title"
	ParamAuthor        = "author"
	ParamLanguage      = "language"
	ParamDateFrom      = "date_from"
	ParamDateTo        = "date_to"
	ParamPublishedDate = "published_date"
)

// Filter holds the search criteria of a book list. All criteria are optional
// and AND-combined; the zero Filter matches every book.
type Filter struct {
	// Title and Author match case-insensitive substrings.
	Title  string
	Author string

	// Language matches the language code exactly.
	Language string

	// PublishedFrom and PublishedTo are inclusive bounds.
	PublishedFrom *Date
	PublishedTo   *Date

	Sort Sort
}

// IsEmpty reports whether the filter has no criteria.
func (f Filter) IsEmpty() bool {
	return f.Title == "" && f.Author == "" && f.Language == "" && f.PublishedFrom == nil && f.PublishedTo == nil
}

// Matches reports whether b satisfies every criterion of the filter.
func (f Filter) Matches(b *Book) bool {
	if f.Title != "" && !containsFold(b.Title, f.Title) {
		return false
	}
	if f.Author != "" && !containsFold(b.Author, f.Author) {
		return false
	}
	if f.Language != "" && b.Language != f.Language {
		return false
	}
	if f.PublishedFrom != nil && b.PublishedDate.Before(*f.PublishedFrom) {
		return false
	}
	if f.PublishedTo != nil && b.PublishedDate.After(*f.PublishedTo) {
		return false
	}
	return true
}

// Values renders the criteria as query parameters, the inverse of [ParseFilter].
//
// Pagination links append the page number to this encoding.
func (f Filter) Values() url.Values {
	values := url.Values{}
	set := func(key, value string) {
		if value != "" {
			values.Set(key, value)
		}
	}

	set(ParamTitle, f.Title)
	set(ParamAuthor, f.Author)
	set(ParamLanguage, f.Language)
	if f.PublishedFrom != nil {
		set(ParamDateFrom, f.PublishedFrom.String())
	}
	if f.PublishedTo != nil {
		set(ParamDateTo, f.PublishedTo.String())
	}

	return values
}

/*
ParseFilter reads filter criteria from query parameters.

Blank parameters are ignored. "published_date" selects a single day and
narrows both bounds. Malformed dates are reported as field errors under the
parameter name.
*/
func ParseFilter(values url.Values) (Filter, error) {
	filter := Filter{
		Title:    trim(values.Get(ParamTitle)),
		Author:   trim(values.Get(ParamAuthor)),
		Language: trim(values.Get(ParamLanguage)),
	}

	validator := &validate.Validator{}

	parseBound := func(key string) *Date {
		raw := trim(values.Get(key))
		if raw == "" {
			return nil
		}
		date, err := ParseDate(raw)
		if err != nil {
			validator.Date(key, raw)
			return nil
		}
		return &date
	}

	filter.PublishedFrom = parseBound(ParamDateFrom)
	filter.PublishedTo = parseBound(ParamDateTo)

	if day := parseBound(ParamPublishedDate); day != nil {
		if filter.PublishedFrom == nil || filter.PublishedFrom.Before(*day) {
			filter.PublishedFrom = day
		}
		if filter.PublishedTo == nil || filter.PublishedTo.After(*day) {
			filter.PublishedTo = day
		}
	}

	if err := validator.Err(); err != nil {
		return Filter{}, err
	}

	return filter, nil
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
