// Copyright (c) 2026 Bookmanager. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package web

import (
	"net/http"
	"net/url"

	"github.com/taibuivan/bookmanager/internal/core/book"
	"github.com/taibuivan/bookmanager/internal/platform/apperr"
	"github.com/taibuivan/bookmanager/internal/platform/flash"
	requestutil "github.com/taibuivan/bookmanager/internal/platform/request"
	"github.com/taibuivan/bookmanager/internal/platform/validate"
	"github.com/taibuivan/bookmanager/pkg/pagination"
)

// listPath is where successful writes redirect to.
const listPath = "/books/"

// # Views

type listView struct {
	base
	Page   pagination.Page[*book.Book]
	Query  url.Values
	Errors map[string]string
}

type detailView struct {
	base
	Book *book.Book
}

// formField is one input of the add and edit form.
type formField struct {
	Name  string
	Label string
	Type  string
	Value string
	Error string
}

type formView struct {
	base
	Create bool
	Action string
	Fields []formField
}

// formLayout lists the inputs of the book form in display order.
var formLayout = []struct {
	name, label, kind string
}{
	{book.FieldTitle, "Title", "text"},
	{book.FieldAuthor, "Author", "text"},
	{book.FieldPublishedDate, "Published date", "date"},
	{book.FieldISBN10, "ISBN-10", "text"},
	{book.FieldISBN13, "ISBN-13", "text"},
	{book.FieldPages, "Pages", "text"},
	{book.FieldCoverURI, "Cover URI", "url"},
	{book.FieldLanguage, "Language", "select"},
}

func draftValue(draft book.Draft, field string) string {
	switch field {
	case book.FieldTitle:
		return draft.Title
	case book.FieldAuthor:
		return draft.Author
	case book.FieldPublishedDate:
		return draft.PublishedDate
	case book.FieldISBN10:
		return draft.ISBN10
	case book.FieldISBN13:
		return draft.ISBN13
	case book.FieldPages:
		return draft.Pages
	case book.FieldCoverURI:
		return draft.CoverURI
	case book.FieldLanguage:
		return draft.Language
	}
	return ""
}

func formFields(draft book.Draft, errors map[string]string) []formField {
	fields := make([]formField, len(formLayout))
	for i, input := range formLayout {
		fields[i] = formField{
			Name:  input.name,
			Label: input.label,
			Type:  input.kind,
			Value: draftValue(draft, input.name),
			Error: errors[input.name],
		}
	}
	return fields
}

// # List & Search

/*
GET /books/.

Description: Lists every book ordered by title.

Request:
  - page: int (missing or malformed means the first page)

Response:
  - 200: list page
  - 404: page beyond the last one
*/
func (handler *Handler) listBooks(writer http.ResponseWriter, request *http.Request) {
	handler.renderList(writer, request, book.Filter{Sort: book.SortTitle}, nil)
}

/*
GET /books/search.

Description: Lists books matching the filter, newest publication first.

Request:
  - title, author: case-insensitive substrings
  - language: exact code
  - date_from, date_to: YYYY-MM-DD, inclusive
  - published_date: YYYY-MM-DD, single day
  - page: int

Response:
  - 200: list page; malformed dates are reported next to their inputs
*/
func (handler *Handler) searchBooks(writer http.ResponseWriter, request *http.Request) {
	filter, err := book.ParseFilter(request.URL.Query())
	if err != nil {
		fields := validate.Fields(err)
		if fields == nil {
			handler.fail(writer, request, err)
			return
		}
		handler.renderList(writer, request, filter, fields)
		return
	}

	filter.Sort = book.SortNewest
	handler.renderList(writer, request, filter, nil)
}

// renderList renders one page of books. With field errors no query runs and
// the page is empty.
func (handler *Handler) renderList(writer http.ResponseWriter, request *http.Request, filter book.Filter, errors map[string]string) {
	params := pagination.FromRequest(request, handler.pageSize)

	var (
		books []*book.Book
		total int
	)
	if errors == nil {
		var err error
		books, total, err = handler.books.ListBooks(request.Context(), filter, params.Limit, params.Offset())
		if err != nil {
			handler.fail(writer, request, err)
			return
		}
	}

	page, err := pagination.NewWindow(books, params.Page, total, handler.pageSize).Page(params.Page)
	if err != nil {
		handler.fail(writer, request, apperr.NotFound("Page"))
		return
	}

	chrome, err := handler.chrome(request)
	if err != nil {
		handler.fail(writer, request, err)
		return
	}

	handler.page(writer, request, http.StatusOK, "list", listView{
		base:   chrome,
		Page:   page,
		Query:  withoutPage(request.URL.Query()),
		Errors: errors,
	})
}

// # Detail

/*
GET /books/{id}.

Response:
  - 200: detail page
  - 404: unknown or malformed id
*/
func (handler *Handler) getBook(writer http.ResponseWriter, request *http.Request) {
	found, ok := handler.lookup(writer, request)
	if !ok {
		return
	}

	chrome, err := handler.chrome(request)
	if err != nil {
		handler.fail(writer, request, err)
		return
	}

	handler.page(writer, request, http.StatusOK, "detail", detailView{base: chrome, Book: found})
}

// lookup loads the book named by the {id} route parameter or renders the error page.
func (handler *Handler) lookup(writer http.ResponseWriter, request *http.Request) (*book.Book, bool) {
	id, err := requestutil.UUIDParam(request, "id", "Book")
	if err != nil {
		handler.fail(writer, request, err)
		return nil, false
	}

	found, err := handler.books.GetBook(request.Context(), id)
	if err != nil {
		handler.fail(writer, request, err)
		return nil, false
	}

	return found, true
}

// # Create & Update

// GET /books/add renders an empty add form.
func (handler *Handler) createForm(writer http.ResponseWriter, request *http.Request) {
	handler.renderForm(writer, request, "/books/add", true, book.Draft{}, nil)
}

/*
POST /books/add.

Description: Validates the submitted form and stores a new book.

Response:
  - 302: redirect to the list on success
  - 200: the form again with per-field messages; nothing is stored
*/
func (handler *Handler) createBook(writer http.ResponseWriter, request *http.Request) {
	if err := requestutil.ParseForm(writer, request); err != nil {
		handler.fail(writer, request, err)
		return
	}

	draft := book.DraftFromForm(request.PostForm.Get)
	created, err := handler.books.CreateBook(request.Context(), draft)
	if fields := validate.Fields(err); fields != nil {
		handler.renderForm(writer, request, "/books/add", true, draft, fields)
		return
	}
	if err != nil {
		handler.fail(writer, request, err)
		return
	}

	handler.notify(request, flash.LevelSuccess, "Added "+created.Title)
	http.Redirect(writer, request, listPath, http.StatusFound)
}

// GET /books/{id}/update renders the edit form with the stored values.
func (handler *Handler) updateForm(writer http.ResponseWriter, request *http.Request) {
	found, ok := handler.lookup(writer, request)
	if !ok {
		return
	}

	handler.renderForm(writer, request, "/books/"+found.ID+"/update", false, book.DraftOf(found), nil)
}

/*
POST /books/{id}/update.

Response:
  - 302: redirect to the list on success
  - 200: the form again with per-field messages
  - 404: unknown book
*/
func (handler *Handler) updateBook(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.UUIDParam(request, "id", "Book")
	if err != nil {
		handler.fail(writer, request, err)
		return
	}

	if err := requestutil.ParseForm(writer, request); err != nil {
		handler.fail(writer, request, err)
		return
	}

	draft := book.DraftFromForm(request.PostForm.Get)
	updated, err := handler.books.UpdateBook(request.Context(), id, draft)
	if fields := validate.Fields(err); fields != nil {
		handler.renderForm(writer, request, "/books/"+id+"/update", false, draft, fields)
		return
	}
	if err != nil {
		handler.fail(writer, request, err)
		return
	}

	handler.notify(request, flash.LevelSuccess, "Saved "+updated.Title)
	http.Redirect(writer, request, listPath, http.StatusFound)
}

func (handler *Handler) renderForm(writer http.ResponseWriter, request *http.Request, action string, create bool, draft book.Draft, errors map[string]string) {
	chrome, err := handler.chrome(request)
	if err != nil {
		handler.fail(writer, request, err)
		return
	}

	handler.page(writer, request, http.StatusOK, "form", formView{
		base:   chrome,
		Create: create,
		Action: action,
		Fields: formFields(draft, errors),
	})
}

// # Delete

// GET /books/{id}/delete asks for confirmation.
func (handler *Handler) deleteForm(writer http.ResponseWriter, request *http.Request) {
	found, ok := handler.lookup(writer, request)
	if !ok {
		return
	}

	chrome, err := handler.chrome(request)
	if err != nil {
		handler.fail(writer, request, err)
		return
	}

	handler.page(writer, request, http.StatusOK, "delete", detailView{base: chrome, Book: found})
}

/*
POST|DELETE /books/{id}/delete.

Response:
  - 302: redirect to the list
  - 404: unknown book
*/
func (handler *Handler) deleteBook(writer http.ResponseWriter, request *http.Request) {
	found, ok := handler.lookup(writer, request)
	if !ok {
		return
	}

	if err := handler.books.DeleteBook(request.Context(), found.ID); err != nil {
		handler.fail(writer, request, err)
		return
	}

	handler.notify(request, flash.LevelSuccess, "Deleted "+found.Title)
	http.Redirect(writer, request, listPath, http.StatusFound)
}
