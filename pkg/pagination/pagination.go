// Copyright (c) 2026 Bookmanager. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pagination provides shared types and helpers for paged lists.
//
// # Overview
//
// A single page size, supplied by configuration, governs every paged view:
// local book lists and the results imported from the external catalog.
// [Params] and [Meta] serve database-backed lists; [Window] reconciles a
// single remote page with a complete page sequence.
package pagination

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/taibuivan/bookmanager/pkg/convert"
)

const (
	// DefaultPage is the starting page (1-indexed).
	DefaultPage = 1

	// QueryPage is the query-string key carrying the requested page number.
	QueryPage = "page"
)

// ErrInvalidPage is returned by [ParsePage] when the page parameter is not an integer.
var ErrInvalidPage = errors.New("pagination: page must be an integer")

// Params holds the parsed page and limit for a list request.
type Params struct {
	Page  int
	Limit int
}

// Offset returns the SQL OFFSET value derived from [Page] and [Limit].
func (p Params) Offset() int {
	if p.Page <= 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// Meta is the pagination metadata included in API list responses.
type Meta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// NewMeta constructs pagination metadata for a response.
//
// TotalPages never drops below one: an empty result is still a single (empty) page.
func NewMeta(page, limit, total int) Meta {
	return Meta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: numPages(total, limit),
	}
}

// FromRequest parses the "page" query parameter using the configured page size.
//
// # Clamping
//
// Missing, malformed or non-positive values fall back to [DefaultPage].
func FromRequest(r *http.Request, pageSize int) Params {
	page := convert.ToIntD(r.URL.Query().Get(QueryPage), DefaultPage)
	if page < 1 {
		page = DefaultPage
	}

	return Params{Page: page, Limit: pageSize}
}

// ParsePage reads the "page" query parameter strictly.
//
// A missing parameter yields [DefaultPage]; anything that is not an integer
// yields [ErrInvalidPage]. Values below one are returned unchanged so the
// caller can decide how to reconcile them.
func ParsePage(r *http.Request) (int, error) {
	raw := r.URL.Query().Get(QueryPage)
	if raw == "" {
		return DefaultPage, nil
	}

	page, err := strconv.Atoi(raw)
	if err != nil {
		return 0, ErrInvalidPage
	}

	return page, nil
}

// ItemIndex returns the 1-based position of the index-th item of a page in the
// whole result set.
func ItemIndex(page, index, pageSize int) int {
	return (page-1)*pageSize + index
}

// numPages returns ceil(total/size) with a floor of one page.
func numPages(total, size int) int {
	if size < 1 || total <= 0 {
		return 1
	}
	return (total + size - 1) / size
}
