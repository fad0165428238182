// Copyright (c) 2026 Bookmanager. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package render

import (
	"html/template"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"layout.html":     {Data: []byte(`{{define "layout"}}<title>{{block "title" .}}Books{{end}}</title>{{template "content" .}}{{end}}`)},
		"partials/a.html": {Data: []byte(`{{define "shout"}}{{upper .}}{{end}}`)},
		"pages/list.html": {Data: []byte(`{{define "content"}}<p>{{template "shout" .Name}}</p>{{end}}`)},
		"pages/detail.html": {Data: []byte(`{{define "title"}}Detail{{end}}{{define "content"}}{{.Name}}{{end}}`)},
	}
}

func newRenderer(t *testing.T) *Renderer {
	renderer, err := New(testFS(), Config{
		Shared: []string{"layout.html", "partials/*.html"},
		Pages:  "pages/*.html",
		Funcs:  template.FuncMap{"upper": strings.ToUpper},
	})
	require.NoError(t, err)
	return renderer
}

func TestRenderer_HTML(t *testing.T) {
	renderer := newRenderer(t)
	assert.True(t, renderer.Has("list"))
	assert.True(t, renderer.Has("detail"))

	recorder := httptest.NewRecorder()
	err := renderer.HTML(recorder, http.StatusOK, "list", map[string]string{"Name": "<dune>"})
	require.NoError(t, err)

	assert.Equal(t, "text/html; charset=utf-8", recorder.Header().Get("Content-Type"))
	assert.Equal(t, "<title>Books</title><p>&lt;DUNE&gt;</p>", recorder.Body.String())

	recorder = httptest.NewRecorder()
	require.NoError(t, renderer.HTML(recorder, http.StatusNotFound, "detail", map[string]string{"Name": "x"}))
	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, "<title>Detail</title>x", recorder.Body.String())
}

func TestRenderer_Errors(t *testing.T) {
	renderer := newRenderer(t)

	recorder := httptest.NewRecorder()
	assert.Error(t, renderer.HTML(recorder, http.StatusOK, "missing", nil))

	// Executing a missing field on a map is fine; on a struct it fails before anything is written.
	recorder = httptest.NewRecorder()
	assert.Error(t, renderer.HTML(recorder, http.StatusOK, "list", struct{}{}))
	assert.Empty(t, recorder.Body.String())

	_, err := New(testFS(), Config{Pages: "nothing/*.html"})
	assert.Error(t, err)
}
