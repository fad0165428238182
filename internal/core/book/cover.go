// Copyright (c) 2026 Bookmanager. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package book

// CoverCodec translates cover URIs at the persistence boundary.
//
// The placeholder image is never stored: it is written as "" and read back
// as the placeholder, so changing the placeholder applies to every book
// without a cover.
type CoverCodec struct {
	Placeholder string
}

// Encode returns the stored form of uri.
func (codec CoverCodec) Encode(uri string) string {
	if uri == codec.Placeholder {
		return ""
	}
	return uri
}

// Decode returns the displayed form of a stored uri.
func (codec CoverCodec) Decode(stored string) string {
	if stored == "" {
		return codec.Placeholder
	}
	return stored
}
