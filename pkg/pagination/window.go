// Copyright (c) 2026 Bookmanager. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pagination

import "errors"

// ErrEmptyPage is returned by [Window.Page] for numbers outside 1..NumPages.
var ErrEmptyPage = errors.New("pagination: page out of range")

// Window is a paged view over a result set of which only one slice is known.
//
// Remote catalogs answer one page at a time together with a total count. A
// Window records that slice, its offset and the total, and answers page
// queries analytically: positions outside the known slice are reported as
// the zero value of T (the empty slot). Memory stays proportional to the
// known slice, never to the total.
type Window[T any] struct {
	known    []T
	offset   int
	total    int
	pageSize int
}

// NewWindow places items at the offset of the given 1-indexed page.
//
// Items beyond the page size or beyond the total are dropped.
func NewWindow[T any](items []T, page, total, pageSize int) Window[T] {
	if pageSize < 1 {
		pageSize = 1
	}
	if page < 1 {
		page = DefaultPage
	}
	if total < 0 {
		total = 0
	}

	offset := (page - 1) * pageSize
	known := items
	if len(known) > pageSize {
		known = known[:pageSize]
	}

	switch {
	case offset >= total:
		known = nil
	case offset+len(known) > total:
		known = known[:total-offset]
	}

	return Window[T]{known: known, offset: offset, total: total, pageSize: pageSize}
}

// Total returns the size of the whole result set.
func (w Window[T]) Total() int { return w.total }

// PageSize returns the number of slots per page.
func (w Window[T]) PageSize() int { return w.pageSize }

// NumPages returns ceil(total/pageSize), never less than one.
func (w Window[T]) NumPages() int {
	return numPages(w.total, w.pageSize)
}

// Page returns the page with the given number or [ErrEmptyPage].
func (w Window[T]) Page(number int) (Page[T], error) {
	numPages := w.NumPages()
	if number < 1 || number > numPages {
		return Page[T]{}, ErrEmptyPage
	}

	start := (number - 1) * w.pageSize
	end := min(start+w.pageSize, w.total)
	size := max(end-start, 0)

	page := Page[T]{
		Number:   number,
		NumPages: numPages,
		PageSize: w.pageSize,
		Total:    w.total,
		Items:    make([]T, size),
	}

	// Intersect [start, end) with the known slice.
	from := max(start, w.offset)
	to := min(end, w.offset+len(w.known))
	if from < to {
		copy(page.Items[from-start:to-start], w.known[from-w.offset:to-w.offset])
		page.knownFrom, page.knownTo = from-start, to-start
	}

	return page, nil
}

// PageOrFallback is [Window.Page] without failure.
//
// An out-of-range number (a stale or garbled page parameter) resolves to the
// page holding the first known item, or to the first page when nothing is
// known.
func (w Window[T]) PageOrFallback(number int) Page[T] {
	if page, err := w.Page(number); err == nil {
		return page
	}

	fallback := DefaultPage
	if len(w.known) > 0 {
		// ceil((index+1) / pageSize) for the first known index.
		fallback = (w.offset + w.pageSize) / w.pageSize
	}

	page, _ := w.Page(fallback)
	return page
}

// Page is one page of a [Window].
type Page[T any] struct {
	Number   int
	NumPages int
	PageSize int
	Total    int

	// Items has one slot per position of the page; unknown positions hold the zero value.
	Items []T

	knownFrom, knownTo int
}

// Known returns the slots of the page that carry real data.
func (p Page[T]) Known() []T {
	return p.Items[p.knownFrom:p.knownTo]
}

// HasPrevious reports whether a page precedes this one.
func (p Page[T]) HasPrevious() bool { return p.Number > 1 }

// HasNext reports whether a page follows this one.
func (p Page[T]) HasNext() bool { return p.Number < p.NumPages }

// PreviousNumber returns the number of the preceding page.
func (p Page[T]) PreviousNumber() int { return p.Number - 1 }

// NextNumber returns the number of the following page.
func (p Page[T]) NextNumber() int { return p.Number + 1 }

// StartIndex returns the 1-based position of the first slot, or 0 for an empty result.
func (p Page[T]) StartIndex() int {
	if p.Total == 0 {
		return 0
	}
	return ItemIndex(p.Number, 1, p.PageSize)
}

// Buttons returns the navigation model for this page.
func (p Page[T]) Buttons() []Button {
	return Buttons(p.Number, p.NumPages)
}
