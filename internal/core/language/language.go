// Copyright (c) 2026 Bookmanager. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package language exposes the fixed set of languages a book may be written in.
//
// The set is seeded by migration and never changes at runtime.
package language

// Language is one selectable book language.
type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Placeholder is the display name used when a code is empty or unknown.
const Placeholder = "Language"

// Set is an in-memory index of languages by code, in listing order.
type Set struct {
	list  []*Language
	names map[string]string
}

// NewSet indexes the given languages.
func NewSet(languages []*Language) *Set {
	names := make(map[string]string, len(languages))
	for _, language := range languages {
		names[language.Code] = language.Name
	}
	return &Set{list: languages, names: names}
}

// List returns the languages in listing order.
func (set *Set) List() []*Language {
	return set.list
}

// Codes returns every known code in listing order.
func (set *Set) Codes() []string {
	codes := make([]string, len(set.list))
	for i, language := range set.list {
		codes[i] = language.Code
	}
	return codes
}

// Contains reports whether code is part of the set.
func (set *Set) Contains(code string) bool {
	_, ok := set.names[code]
	return ok
}

// Name returns the display name of code, or [Placeholder] when unknown.
func (set *Set) Name(code string) string {
	if name, ok := set.names[code]; ok {
		return name
	}
	return Placeholder
}
