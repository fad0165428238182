// Copyright (c) 2026 Bookmanager. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package book_test

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/bookmanager/internal/core/book"
	"github.com/taibuivan/bookmanager/internal/core/book/booktest"
	"github.com/taibuivan/bookmanager/internal/platform/apperr"
	"github.com/taibuivan/bookmanager/pkg/pointer"
	"github.com/taibuivan/bookmanager/pkg/uuid"
)

// eightBooks are published on the 1st of consecutive months of 2020.
func eightBooks() []*book.Book {
	titles := []string{"Alpha", "Bravo", "Charlie", "Delta", "Echo", "Foxtrot", "Golf", "Hotel"}

	books := make([]*book.Book, len(titles))
	for i, title := range titles {
		books[i] = &book.Book{
			ID:            uuid.New(),
			Title:         title,
			Author:        "Author " + title,
			PublishedDate: book.NewDate(2020, time.Month(i+1), 1),
			Language:      []string{"en", "pl"}[i%2],
		}
	}
	return books
}

func titlesOf(books []*book.Book) []string {
	titles := make([]string, len(books))
	for i, b := range books {
		titles[i] = b.Title
	}
	return titles
}

/*
TestFilter_DateRange returns the inclusive month window of matching records.
*/
func TestFilter_DateRange(t *testing.T) {
	repository := booktest.NewRepository(eightBooks()...)

	tests := []struct {
		name string
		from *book.Date
		to   *book.Date
		want []string
	}{
		{"inclusive_both", pointer.To(book.NewDate(2020, time.March, 1)), pointer.To(book.NewDate(2020, time.May, 1)), []string{"Charlie", "Delta", "Echo"}},
		{"lower_only", pointer.To(book.NewDate(2020, time.July, 1)), nil, []string{"Golf", "Hotel"}},
		{"upper_only", nil, pointer.To(book.NewDate(2020, time.February, 1)), []string{"Alpha", "Bravo"}},
		{"between_days", pointer.To(book.NewDate(2020, time.March, 2)), pointer.To(book.NewDate(2020, time.March, 31)), nil},
		{"unbounded", nil, nil, []string{"Alpha", "Bravo", "Charlie", "Delta", "Echo", "Foxtrot", "Golf", "Hotel"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter := book.Filter{PublishedFrom: tt.from, PublishedTo: tt.to}

			books, total, err := repository.List(context.Background(), filter, 40, 0)
			require.NoError(t, err)
			assert.Equal(t, len(tt.want), total)
			if tt.want == nil {
				assert.Empty(t, books)
				return
			}
			assert.Equal(t, tt.want, titlesOf(books))
		})
	}
}

// decadeBooks spans 1970 to 2021 with two books in each of three sub-ranges.
// The middle pair sits exactly on 1985-01-01 and 1995-01-01.
func decadeBooks() []*book.Book {
	dates := []book.Date{
		book.NewDate(1970, time.January, 1),
		book.NewDate(1976, time.June, 12),
		book.NewDate(1984, time.December, 31),
		book.NewDate(1985, time.January, 1),
		book.NewDate(1995, time.January, 1),
		book.NewDate(1995, time.January, 2),
		book.NewDate(2008, time.September, 15),
		book.NewDate(2021, time.January, 1),
	}

	books := make([]*book.Book, len(dates))
	for i, date := range dates {
		books[i] = &book.Book{
			ID:            uuid.New(),
			Title:         date.String(),
			Author:        "Author",
			PublishedDate: date,
		}
	}
	return books
}

/*
TestFilter_DateRange_Boundaries keeps only the books inside the inclusive range.
*/
func TestFilter_DateRange_Boundaries(t *testing.T) {
	repository := booktest.NewRepository(decadeBooks()...)

	tests := []struct {
		name   string
		values url.Values
		want   []string
	}{
		{"range", url.Values{"date_from": {"1985-01-01"}, "date_to": {"1995-01-01"}}, []string{"1985-01-01", "1995-01-01"}},
		{"from_oldest", url.Values{"date_from": {"1970-01-01"}}, titlesOf(decadeBooks())},
		{"to_range_start", url.Values{"date_to": {"1985-01-01"}}, []string{"1970-01-01", "1976-06-12", "1984-12-31", "1985-01-01"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter, err := book.ParseFilter(tt.values)
			require.NoError(t, err)

			books, total, err := repository.List(context.Background(), filter, 40, 0)
			require.NoError(t, err)
			assert.Equal(t, len(tt.want), total)
			assert.Equal(t, tt.want, titlesOf(books))

			for _, b := range books {
				if filter.PublishedFrom != nil {
					assert.False(t, b.PublishedDate.Before(*filter.PublishedFrom))
				}
				if filter.PublishedTo != nil {
					assert.False(t, b.PublishedDate.After(*filter.PublishedTo))
				}
			}
		})
	}
}

/*
TestFilter_Matches combines criteria with AND.
*/
func TestFilter_Matches(t *testing.T) {
	b := &book.Book{
		Title:         "The Eyes of the Skin",
		Author:        "Juhani Pallasmaa",
		Language:      "en",
		PublishedDate: book.NewDate(1996, time.January, 1),
	}

	tests := []struct {
		name   string
		filter book.Filter
		want   bool
	}{
		{"empty", book.Filter{}, true},
		{"title_case_insensitive", book.Filter{Title: "eyes OF"}, true},
		{"author_substring", book.Filter{Author: "pallas"}, true},
		{"language_exact", book.Filter{Language: "en"}, true},
		{"language_mismatch", book.Filter{Language: "e"}, false},
		{"and_combined", book.Filter{Title: "skin", Author: "tolkien"}, false},
		{"wildcard_is_literal", book.Filter{Title: "%"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Matches(b))
		})
	}
}

/*
TestParseFilter reads query parameters and reports malformed dates per field.
*/
func TestParseFilter(t *testing.T) {
	filter, err := book.ParseFilter(url.Values{
		"title":     {" gropius "},
		"author":    {""},
		"language":  {"de"},
		"date_from": {"1919-01-01"},
	})
	require.NoError(t, err)
	assert.Equal(t, "gropius", filter.Title)
	assert.Equal(t, "de", filter.Language)
	require.NotNil(t, filter.PublishedFrom)
	assert.Equal(t, "1919-01-01", filter.PublishedFrom.String())
	assert.Nil(t, filter.PublishedTo)

	_, err = book.ParseFilter(url.Values{"date_from": {"yesterday"}, "date_to": {"2020-02-30"}})
	ae := apperr.As(err)
	require.NotNil(t, ae)
	require.Len(t, ae.Details, 2)
	assert.Equal(t, "date_from", ae.Details[0].Field)
	assert.Equal(t, "date_to", ae.Details[1].Field)
}

/*
TestParseFilter_PublishedDate narrows both bounds to one day.
*/
func TestParseFilter_PublishedDate(t *testing.T) {
	filter, err := book.ParseFilter(url.Values{"published_date": {"2020-03-01"}, "date_from": {"2019-01-01"}})
	require.NoError(t, err)

	assert.Equal(t, "2020-03-01", filter.PublishedFrom.String())
	assert.Equal(t, "2020-03-01", filter.PublishedTo.String())
}

/*
TestFilter_Values round-trips through ParseFilter.
*/
func TestFilter_Values(t *testing.T) {
	original := book.Filter{
		Title:         "go",
		Language:      "en",
		PublishedFrom: pointer.To(book.NewDate(2020, time.January, 1)),
	}

	parsed, err := book.ParseFilter(original.Values())
	require.NoError(t, err)
	assert.Equal(t, original, parsed)
	assert.True(t, book.Filter{}.IsEmpty())
	assert.False(t, original.IsEmpty())
}
