// Copyright (c) 2026 Bookmanager. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package slug generates ASCII URL slugs from arbitrary Unicode strings.
//
// # Usage
//
// Slugs are stored with every book as a readable companion to its id
// (e.g., "oczy-skory" for "Oczy Skóry").
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// disallowed matches anything that is not a word character, whitespace or hyphen.
	disallowed = regexp.MustCompile(`[^a-z0-9_\s-]+`)
	// separators collapses runs of whitespace and hyphens into one hyphen.
	separators = regexp.MustCompile(`[-\s]+`)
)

// From converts an arbitrary Unicode string into a URL-safe ASCII slug.
//
// # Transformation Pipeline
//
// 1. Normalizes to NFKD and drops combining marks (ó → o).
// 2. Drops every remaining non-ASCII rune.
// 3. Lowercases and removes characters other than [a-z0-9_], spaces and hyphens.
// 4. Collapses whitespace and hyphens into single hyphens, trims "-" and "_".
func From(s string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), runes.Remove(runes.Predicate(isNonASCII)))
	result, _, _ := transform.String(t, s)

	result = disallowed.ReplaceAllString(strings.ToLower(result), "")
	result = separators.ReplaceAllString(result, "-")

	return strings.Trim(result, "-_")
}

func isNonASCII(r rune) bool {
	return r > unicode.MaxASCII
}
