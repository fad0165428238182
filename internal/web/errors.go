// Copyright (c) 2026 Bookmanager. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package web

import (
	"net/http"

	"github.com/taibuivan/bookmanager/internal/platform/apperr"
	"github.com/taibuivan/bookmanager/internal/platform/respond"
)

type errorView struct {
	base
	Status     int
	StatusText string
	Message    string
}

// fail renders the error page matching err.
//
// Server-side failures keep their cause in the log; the page shows the
// client-safe message only.
func (handler *Handler) fail(writer http.ResponseWriter, request *http.Request, err error) {
	appError := respond.Classify(request, err)

	view := errorView{
		Status:     appError.HTTPStatus,
		StatusText: http.StatusText(appError.HTTPStatus),
		Message:    appError.Message,
	}

	// The chrome is best effort; a broken dependency must not hide the error.
	if chrome, chromeErr := handler.chrome(request); chromeErr == nil {
		view.base = chrome
	}

	handler.page(writer, request, appError.HTTPStatus, "error", view)
}

func (handler *Handler) notFound(writer http.ResponseWriter, request *http.Request) {
	handler.fail(writer, request, apperr.NotFound("Page"))
}

func (handler *Handler) methodNotAllowed(writer http.ResponseWriter, request *http.Request) {
	handler.fail(writer, request, apperr.MethodNotAllowed())
}
