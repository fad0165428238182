// Copyright (c) 2026 Bookmanager. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package googlebooks

import "strings"

// Identifier is one entry of a volume's industryIdentifiers list.
type Identifier struct {
	Type       string `json:"type"`
	Identifier string `json:"identifier"`
}

// ISBNs holds the two ISBN slots of a book. Missing slots are "".
type ISBNs struct {
	ISBN10 string
	ISBN13 string
}

// FindISBNs picks the ISBN-10 and ISBN-13 out of a list of identifiers.
//
// Type labels are compared case-insensitively; unknown labels are ignored and
// when a label repeats the last occurrence wins.
func FindISBNs(identifiers []Identifier) ISBNs {
	var isbns ISBNs
	for _, identifier := range identifiers {
		switch strings.ToLower(identifier.Type) {
		case "isbn_10":
			isbns.ISBN10 = identifier.Identifier
		case "isbn_13":
			isbns.ISBN13 = identifier.Identifier
		}
	}
	return isbns
}
