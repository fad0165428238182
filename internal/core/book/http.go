// Copyright (c) 2026 Bookmanager. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package book

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/bookmanager/internal/platform/apperr"
	requestutil "github.com/taibuivan/bookmanager/internal/platform/request"
	"github.com/taibuivan/bookmanager/internal/platform/respond"
	"github.com/taibuivan/bookmanager/pkg/pagination"
)

// # Handler Implementation

// Handler implements the read-only JSON API for books.
type Handler struct {
	service  *Service
	pageSize int
}

// NewHandler constructs a new book [Handler]. pageSize is the configured page size.
func NewHandler(service *Service, pageSize int) *Handler {
	return &Handler{service: service, pageSize: pageSize}
}

// Routes returns the book router, mounted at /api/v1/books.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.redirectToList)
	router.Get("/list", handler.listBooks)
	router.Get("/search", handler.searchBooks)
	router.Get("/detail/{id}", handler.getBook)

	return router
}

// # Book Endpoints

// GET /api/v1/books/ redirects to the list endpoint.
func (handler *Handler) redirectToList(writer http.ResponseWriter, request *http.Request) {
	target := strings.TrimSuffix(request.URL.Path, "/") + "/list"
	http.Redirect(writer, request, target, http.StatusFound)
}

/*
GET /api/v1/books/list.

Description: Lists every book ordered by title.

Request:
  - page: int

Response:
  - 200: []Book with pagination meta
  - 404: page beyond the last one
*/
func (handler *Handler) listBooks(writer http.ResponseWriter, request *http.Request) {
	handler.writePage(writer, request, Filter{Sort: SortTitle})
}

/*
GET /api/v1/books/search.

Description: Lists books matching the filter, ordered by title.

Request:
  - title: string (case-insensitive substring)
  - author: string (case-insensitive substring)
  - language: string (exact code)
  - date_from, date_to: YYYY-MM-DD (inclusive)
  - published_date: YYYY-MM-DD (single day)
  - page: int

Response:
  - 200: []Book with pagination meta
  - 400: malformed date
*/
func (handler *Handler) searchBooks(writer http.ResponseWriter, request *http.Request) {
	filter, err := ParseFilter(request.URL.Query())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	filter.Sort = SortTitle
	handler.writePage(writer, request, filter)
}

/*
GET /api/v1/books/detail/{id}.

Response:
  - 200: Book
  - 404: unknown or malformed id
*/
func (handler *Handler) getBook(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.UUIDParam(request, "id", resource)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	book, err := handler.service.GetBook(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, book)
}

func (handler *Handler) writePage(writer http.ResponseWriter, request *http.Request, filter Filter) {
	params := pagination.FromRequest(request, handler.pageSize)

	books, total, err := handler.service.ListBooks(request.Context(), filter, params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	meta := pagination.NewMeta(params.Page, params.Limit, total)
	if params.Page > meta.TotalPages {
		respond.Error(writer, request, apperr.NotFound("Page"))
		return
	}

	if books == nil {
		books = []*Book{}
	}

	respond.Paginated(writer, books, meta)
}
