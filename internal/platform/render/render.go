// Copyright (c) 2026 Bookmanager. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package render executes the HTML templates of the browser pages.

Every page template is parsed together with the shared layout and partials
into its own template set, so pages may redefine the blocks of the layout
independently. A page is rendered into a buffer first; a template failure
therefore never leaves a half-written response.
*/
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strings"
)

// Layout names the template every page is executed through.
const Layout = "layout"

// Renderer holds one parsed template set per page.
type Renderer struct {
	pages map[string]*template.Template
}

// Config describes where the templates live inside a filesystem.
type Config struct {
	// Shared are glob patterns parsed into every page (layout and partials).
	Shared []string

	// Pages is the glob pattern of the page templates. A page is named after
	// its file name without extension.
	Pages string

	Funcs template.FuncMap
}

// New parses the templates of fsys.
func New(fsys fs.FS, cfg Config) (*Renderer, error) {
	files, err := fs.Glob(fsys, cfg.Pages)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("render: no page matches %q", cfg.Pages)
	}

	renderer := &Renderer{pages: make(map[string]*template.Template, len(files))}
	for _, file := range files {
		name := strings.TrimSuffix(path.Base(file), path.Ext(file))

		patterns := append(append([]string(nil), cfg.Shared...), file)
		page, err := template.New(name).Funcs(cfg.Funcs).ParseFS(fsys, patterns...)
		if err != nil {
			return nil, fmt.Errorf("render: parse %s: %w", file, err)
		}

		renderer.pages[name] = page
	}

	return renderer, nil
}

// Has reports whether a page with the given name exists.
func (renderer *Renderer) Has(name string) bool {
	_, ok := renderer.pages[name]
	return ok
}

// HTML renders the named page with data and writes it with the given status.
func (renderer *Renderer) HTML(writer http.ResponseWriter, status int, name string, data any) error {
	page, ok := renderer.pages[name]
	if !ok {
		return fmt.Errorf("render: unknown page %q", name)
	}

	var buffer bytes.Buffer
	if err := page.ExecuteTemplate(&buffer, Layout, data); err != nil {
		return fmt.Errorf("render: execute %s: %w", name, err)
	}

	writer.Header().Set("Content-Type", "text/html; charset=utf-8")
	writer.WriteHeader(status)
	_, err := buffer.WriteTo(writer)
	return err
}
