// Copyright (c) 2026 Bookmanager. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package requestutil provides utilities for extracting data from HTTP requests.

It hides the router's parameter extraction and form decoding behind helpers
that already answer with application errors.
*/
package requestutil

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/bookmanager/internal/platform/apperr"
	"github.com/taibuivan/bookmanager/pkg/uuid"
)

// maxFormBytes bounds the size of a submitted form.
const maxFormBytes = 64 << 10

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
UUIDParam retrieves a URL parameter that must be a UUID.

A malformed value cannot name an existing record, so it is reported as
apperr.NotFound for the given resource rather than as a bad request.
*/
func UUIDParam(request *http.Request, name, resource string) (string, error) {
	value := chi.URLParam(request, name)
	if !uuid.Valid(value) {
		return "", apperr.NotFound(resource)
	}
	return value, nil
}

/*
ParseForm decodes a URL-encoded or multipart form body of bounded size.

Returns:
  - error: apperr.BadRequest if the body cannot be parsed
*/
func ParseForm(writer http.ResponseWriter, request *http.Request) error {
	request.Body = http.MaxBytesReader(writer, request.Body, maxFormBytes)
	if err := request.ParseForm(); err != nil {
		return apperr.BadRequest("Malformed form submission")
	}
	return nil
}
