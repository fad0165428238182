// Copyright (c) 2026 Bookmanager. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package web serves the browser pages of the catalogue.

Pages cover the local book list and search, the add, edit and delete forms,
and the import flow that searches the external catalog and pre-fills the add
form from one of its volumes. Notices that must survive a redirect travel
through the flash store of the current browser session.
*/
package web

import (
	"context"
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/bookmanager/internal/core/book"
	"github.com/taibuivan/bookmanager/internal/core/language"
	"github.com/taibuivan/bookmanager/internal/platform/ctxutil"
	"github.com/taibuivan/bookmanager/internal/platform/flash"
	"github.com/taibuivan/bookmanager/internal/platform/googlebooks"
	"github.com/taibuivan/bookmanager/internal/platform/render"
	"github.com/taibuivan/bookmanager/pkg/pagination"
)

//go:embed templates
var templates embed.FS

// Catalog is the external book catalog the import pages search.
type Catalog interface {
	Search(context context.Context, terms, params url.Values, page int) ([]googlebooks.ExternalBook, int, int, error)
	Volume(context context.Context, id string) (googlebooks.ExternalBook, int, error)
}

// # Handler Implementation

// Handler renders the browser pages.
type Handler struct {
	books     *book.Service
	languages book.Languages
	catalog   Catalog
	flashes   flash.Store
	renderer  *render.Renderer
	pageSize  int
}

// Dependencies groups the collaborators of [Handler].
type Dependencies struct {
	Books     *book.Service
	Languages book.Languages
	Catalog   Catalog
	Flashes   flash.Store
	PageSize  int
}

// NewHandler parses the embedded templates and returns a ready [Handler].
func NewHandler(deps Dependencies) (*Handler, error) {
	renderer, err := render.New(templates, render.Config{
		Shared: []string{"templates/layout.html", "templates/partials/*.html"},
		Pages:  "templates/pages/*.html",
		Funcs:  Funcs(),
	})
	if err != nil {
		return nil, err
	}

	return &Handler{
		books:     deps.Books,
		languages: deps.Languages,
		catalog:   deps.Catalog,
		flashes:   deps.Flashes,
		renderer:  renderer,
		pageSize:  deps.PageSize,
	}, nil
}

// Routes returns the book pages router, mounted at /books.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.NotFound(handler.notFound)
	router.MethodNotAllowed(handler.methodNotAllowed)

	router.Get("/", handler.listBooks)
	router.Get("/search", handler.searchBooks)

	router.Get("/add", handler.createForm)
	router.Post("/add", handler.createBook)

	router.Get("/import-list", handler.importList)
	router.Get("/import-book", handler.importBook)

	router.Route("/{id}", func(r chi.Router) {
		r.Get("/", handler.getBook)
		r.Get("/update", handler.updateForm)
		r.Post("/update", handler.updateBook)
		r.Get("/delete", handler.deleteForm)
		r.Post("/delete", handler.deleteBook)
		r.Delete("/delete", handler.deleteBook)
	})

	return router
}

// # Template Helpers

// Funcs returns the template functions of the pages.
func Funcs() template.FuncMap {
	return template.FuncMap{
		// bookIndex numbers rows across pages; index is the 0-based loop index.
		"bookIndex": func(page, index, size int) int {
			return pagination.ItemIndex(page, index+1, size)
		},
		"pageURL":  pageURL,
		"paginate": paginate,
	}
}

// pageURL returns the query string of query with the page replaced.
func pageURL(query url.Values, page int) template.URL {
	values := url.Values{}
	for key, value := range query {
		values[key] = value
	}
	values.Set(pagination.QueryPage, strconv.Itoa(page))
	return template.URL("?" + values.Encode())
}

type paginationView struct {
	Buttons []pagination.Button
	Query   url.Values
}

func paginate(buttons []pagination.Button, query url.Values) paginationView {
	return paginationView{Buttons: buttons, Query: query}
}

// withoutPage returns a copy of query without the page parameter.
func withoutPage(query url.Values) url.Values {
	values := url.Values{}
	for key, value := range query {
		if key != pagination.QueryPage {
			values[key] = value
		}
	}
	return values
}

// # Page Chrome

// base is embedded by every page view.
type base struct {
	Flashes   []flash.Message
	Languages []*language.Language

	set *language.Set
}

// LanguageName returns the display name of a language code.
func (b base) LanguageName(code string) string {
	if b.set == nil {
		return language.Placeholder
	}
	return b.set.Name(code)
}

// chrome collects the pending notices and the language list.
//
// Flash failures are logged and the page renders without notices.
func (handler *Handler) chrome(request *http.Request) (base, error) {
	context := request.Context()
	chrome := base{}

	if session := ctxutil.GetSessionID(context); session != "" {
		messages, err := handler.flashes.Pop(context, session)
		if err != nil {
			ctxutil.GetLogger(context).WarnContext(context, "flash_pop_failed", slog.Any("error", err))
		}
		chrome.Flashes = messages
	}

	set, err := handler.languages.Set(context)
	if err != nil {
		return base{}, err
	}
	chrome.set = set
	chrome.Languages = set.List()

	return chrome, nil
}

// notify queues a notice for the next page of the current session.
func (handler *Handler) notify(request *http.Request, level flash.Level, text string) {
	context := request.Context()
	session := ctxutil.GetSessionID(context)
	if session == "" {
		return
	}

	if err := handler.flashes.Add(context, session, flash.Message{Level: level, Text: text}); err != nil {
		ctxutil.GetLogger(context).WarnContext(context, "flash_add_failed", slog.Any("error", err))
	}
}

// page renders a page or falls back to the error page when rendering fails.
func (handler *Handler) page(writer http.ResponseWriter, request *http.Request, status int, name string, data any) {
	if err := handler.renderer.HTML(writer, status, name, data); err != nil {
		ctxutil.GetLogger(request.Context()).ErrorContext(request.Context(), "page_render_failed",
			slog.String("page", name),
			slog.Any("error", err),
		)
		http.Error(writer, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
