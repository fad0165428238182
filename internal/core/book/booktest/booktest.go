// Copyright (c) 2026 Bookmanager. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package booktest provides in-memory doubles for the book package.
package booktest

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/taibuivan/bookmanager/internal/core/book"
	"github.com/taibuivan/bookmanager/internal/core/language"
	"github.com/taibuivan/bookmanager/internal/platform/apperr"
	"github.com/taibuivan/bookmanager/pkg/slice"
)

// Repository is a [book.Repository] backed by a map. It is safe for concurrent use.
type Repository struct {
	mu    sync.RWMutex
	books map[string]book.Book
	finds atomic.Int64
}

// NewRepository returns a repository holding copies of the given books.
func NewRepository(books ...*book.Book) *Repository {
	repository := &Repository{books: make(map[string]book.Book, len(books))}
	for _, b := range books {
		repository.books[b.ID] = *b
	}
	return repository
}

// Len returns the number of stored books.
func (repository *Repository) Len() int {
	repository.mu.RLock()
	defer repository.mu.RUnlock()
	return len(repository.books)
}

func (repository *Repository) List(_ context.Context, filter book.Filter, limit, offset int) ([]*book.Book, int, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	var matched []*book.Book
	for _, stored := range repository.books {
		if filter.Matches(&stored) {
			matched = append(matched, pointerTo(stored))
		}
	}

	slices.SortFunc(matched, func(a, b *book.Book) int {
		if filter.Sort == book.SortNewest {
			if c := b.PublishedDate.Compare(a.PublishedDate.Time); c != 0 {
				return c
			}
		}
		return cmp.Or(cmp.Compare(a.Title, b.Title), cmp.Compare(a.ID, b.ID))
	})

	total := len(matched)
	if offset >= total {
		return nil, total, nil
	}
	return matched[offset:min(offset+limit, total)], total, nil
}

// Finds returns how many times FindByID was called.
func (repository *Repository) Finds() int {
	return int(repository.finds.Load())
}

func (repository *Repository) FindByID(_ context.Context, id string) (*book.Book, error) {
	repository.finds.Add(1)
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	stored, ok := repository.books[id]
	if !ok {
		return nil, apperr.NotFound("Book")
	}
	return pointerTo(stored), nil
}

func (repository *Repository) Create(_ context.Context, b *book.Book) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, exists := repository.books[b.ID]; exists {
		return apperr.Conflict("Book already exists")
	}

	now := time.Now().UTC()
	b.CreatedAt, b.UpdatedAt = now, now
	repository.books[b.ID] = *b
	return nil
}

func (repository *Repository) Update(_ context.Context, b *book.Book) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	stored, ok := repository.books[b.ID]
	if !ok {
		return apperr.NotFound("Book")
	}

	b.CreatedAt = stored.CreatedAt
	b.UpdatedAt = time.Now().UTC()
	repository.books[b.ID] = *b
	return nil
}

func (repository *Repository) Delete(_ context.Context, id string) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, ok := repository.books[id]; !ok {
		return apperr.NotFound("Book")
	}
	delete(repository.books, id)
	return nil
}

var _ book.Repository = (*Repository)(nil)

func pointerTo(b book.Book) *book.Book {
	return &b
}

// # Languages

// Languages is a fixed [book.Languages] source.
type Languages struct {
	set *language.Set
}

// NewLanguages returns a source holding the given code/name pairs.
func NewLanguages(pairs ...[2]string) *Languages {
	return &Languages{set: language.NewSet(slice.Map(pairs, func(pair [2]string) *language.Language {
		return &language.Language{Code: pair[0], Name: pair[1]}
	}))}
}

// DefaultLanguages returns a small realistic set.
func DefaultLanguages() *Languages {
	return NewLanguages(
		[2]string{"de", "German"},
		[2]string{"en", "English"},
		[2]string{"fr", "French"},
		[2]string{"pl", "Polish"},
	)
}

func (languages *Languages) Set(context.Context) (*language.Set, error) {
	return languages.set, nil
}

// ListLanguages implements [language.Repository].
func (languages *Languages) ListLanguages(context.Context) ([]*language.Language, error) {
	return languages.set.List(), nil
}

// GetLanguageByCode implements [language.Repository].
func (languages *Languages) GetLanguageByCode(_ context.Context, code string) (*language.Language, error) {
	for _, l := range languages.set.List() {
		if l.Code == code {
			return l, nil
		}
	}
	return nil, apperr.NotFound("Language")
}

var _ language.Repository = (*Languages)(nil)
