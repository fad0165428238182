// Copyright (c) 2026 Bookmanager. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package book

import "context"

// # Book Data Access

// Repository defines the data access contract for books.
type Repository interface {

	/*
		List returns one page of books matching the filter and the total count.

		Parameters:
		  - context: context.Context
		  - filter: Filter (criteria and sort order)
		  - limit: int
		  - offset: int

		Returns:
		  - []*Book: the page, ordered per filter.Sort
		  - int: total count of books matching the filter
		  - error: storage failures
	*/
	List(context context.Context, filter Filter, limit, offset int) ([]*Book, int, error)

	/*
		FindByID returns the book with the given ID.

		Returns:
		  - *Book: the stored record
		  - error: apperr.NotFound if missing
	*/
	FindByID(context context.Context, id string) (*Book, error)

	// Create persists a new book. CreatedAt and UpdatedAt are set by the store.
	Create(context context.Context, book *Book) error

	// Update overwrites every mutable field of an existing book.
	Update(context context.Context, book *Book) error

	// Delete removes a book permanently.
	Delete(context context.Context, id string) error
}
