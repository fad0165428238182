// Copyright (c) 2026 Bookmanager. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package googlebooks

import (
	"net/url"
	"strings"
)

// Search term keys accepted from the import form.
const (
	TermSearch   = "search"
	TermInTitle  = "intitle"
	TermInAuthor = "inauthor"
)

// qualifiers lists the field-restricted keys in the order they are appended.
var qualifiers = []string{TermInTitle, TermInAuthor}

// BuildQuery renders search terms as the volumes API query string.
//
// It returns "" for empty terms, otherwise "q=<search>" followed by
// "+intitle:<v>" and "+inauthor:<v>" for each non-empty qualifier. Values are
// query-escaped. Unknown keys are ignored.
func BuildQuery(terms url.Values) string {
	if len(terms) == 0 {
		return ""
	}

	var builder strings.Builder
	builder.WriteString("q=")
	builder.WriteString(url.QueryEscape(terms.Get(TermSearch)))

	for _, key := range qualifiers {
		if value := terms.Get(key); value != "" {
			builder.WriteString("+" + key + ":" + url.QueryEscape(value))
		}
	}

	return builder.String()
}
