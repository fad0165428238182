// Copyright (c) 2026 Bookmanager. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package web

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/taibuivan/bookmanager/internal/core/book"
	"github.com/taibuivan/bookmanager/internal/platform/apperr"
	"github.com/taibuivan/bookmanager/internal/platform/ctxutil"
	"github.com/taibuivan/bookmanager/internal/platform/flash"
	"github.com/taibuivan/bookmanager/internal/platform/googlebooks"
	"github.com/taibuivan/bookmanager/pkg/pagination"
)

const importListPath = "/books/import-list"

// searchKeys are the import form inputs forwarded to the external catalog.
var searchKeys = []string{googlebooks.TermSearch, googlebooks.TermInTitle, googlebooks.TermInAuthor}

type importView struct {
	base
	Page     pagination.Page[googlebooks.ExternalBook]
	Query    url.Values
	Searched bool
	Notice   string
}

// unreachable describes a transport failure of the external catalog.
func unreachable(cause error) *apperr.AppError {
	return apperr.BadGateway("The external catalog could not be reached", cause)
}

// searchTerms keeps the non-blank import form inputs.
func searchTerms(query url.Values) url.Values {
	terms := url.Values{}
	for _, key := range searchKeys {
		if value := strings.TrimSpace(query.Get(key)); value != "" {
			terms.Set(key, value)
		}
	}
	return terms
}

/*
GET /books/import-list.

Description: Searches the external catalog and shows one page of volumes.

Request:
  - search, intitle, inauthor: search terms, all optional
  - page: int

Response:
  - 200: import page; empty without terms
  - 400: page is not an integer (no outbound call is made)
  - 405: any other method
*/
func (handler *Handler) importList(writer http.ResponseWriter, request *http.Request) {
	context := request.Context()

	number, err := pagination.ParsePage(request)
	if err != nil {
		handler.fail(writer, request, apperr.BadRequest("Page number must be an integer"))
		return
	}

	terms := searchTerms(request.URL.Query())
	view := importView{Query: terms}

	var (
		books []googlebooks.ExternalBook
		total int
	)
	if len(terms) > 0 {
		view.Searched = true

		var status int
		books, total, status, err = handler.catalog.Search(context, terms, nil, number)
		logger := ctxutil.GetLogger(context)
		switch {
		case err != nil:
			failure := unreachable(err)
			logger.WarnContext(context, "catalog_search_failed", slog.Any("error", failure.Cause))
			view.Notice = failure.Message
		case status != http.StatusOK:
			logger.WarnContext(context, "catalog_search_failed", slog.Int("status", status))
			view.Notice = fmt.Sprintf("The external catalog responded with status %d", status)
		}
	}

	view.Page = pagination.NewWindow(books, number, total, handler.pageSize).PageOrFallback(number)

	view.base, err = handler.chrome(request)
	if err != nil {
		handler.fail(writer, request, err)
		return
	}

	handler.page(writer, request, http.StatusOK, "import", view)
}

/*
GET /books/import-book.

Description: Fetches one external volume and renders the add form pre-filled
with its data. Nothing is stored until the form is submitted.

Request:
  - id: remote volume id

Response:
  - 200: pre-filled add form
  - 302: back to the import page with a notice when the volume cannot be fetched
*/
func (handler *Handler) importBook(writer http.ResponseWriter, request *http.Request) {
	context := request.Context()
	id := strings.TrimSpace(request.URL.Query().Get("id"))

	status := http.StatusBadRequest
	var external googlebooks.ExternalBook
	if id != "" {
		var err error
		external, status, err = handler.catalog.Volume(context, id)
		if err != nil {
			failure := unreachable(err)
			ctxutil.GetLogger(context).WarnContext(context, "catalog_volume_failed",
				slog.String("volume_id", id),
				slog.Any("error", failure.Cause),
			)
			status = failure.HTTPStatus
		}
	}

	if status != http.StatusOK {
		handler.notify(request, flash.LevelError, fmt.Sprintf("Could not fetch book data (status %d)", status))
		http.Redirect(writer, request, importListPath, http.StatusFound)
		return
	}

	handler.renderForm(writer, request, "/books/add", true, draftOfExternal(external), nil)
}

// draftOfExternal copies a remote volume into add form values.
func draftOfExternal(external googlebooks.ExternalBook) book.Draft {
	return book.Draft{
		Title:         external.Title,
		Author:        external.Author,
		PublishedDate: completeDate(external.PublishedDate),
		ISBN10:        external.ISBN10,
		ISBN13:        external.ISBN13,
		Pages:         external.Pages,
		CoverURI:      external.CoverURI,
		Language:      external.Language,
	}
}

// completeDate pads the year-only and year-month dates the catalog returns
// for older volumes to the first day of the period.
func completeDate(value string) string {
	switch len(value) {
	case len("2006"):
		return value + "-01-01"
	case len("2006-01"):
		return value + "-01"
	}
	return value
}
