// Copyright (c) 2026 Bookmanager. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package googlebooks

import (
	"strconv"
	"strings"
	"time"

	"github.com/taibuivan/bookmanager/pkg/pointer"
)

// # Wire Types

// Volume is a single item of the volumes API. Pointer fields distinguish
// "absent" from "empty" so that defaults apply only to absent values.
type Volume struct {
	ID         *string     `json:"id"`
	VolumeInfo *VolumeInfo `json:"volumeInfo"`
}

// VolumeInfo is the bibliographic part of a [Volume].
type VolumeInfo struct {
	Title               *string      `json:"title"`
	Authors             []string     `json:"authors"`
	PublishedDate       *string      `json:"publishedDate"`
	Language            *string      `json:"language"`
	PageCount           *int         `json:"pageCount"`
	IndustryIdentifiers []Identifier `json:"industryIdentifiers"`
	ImageLinks          *ImageLinks  `json:"imageLinks"`
	InfoLink            *string      `json:"infoLink"`
}

// ImageLinks holds cover image URLs.
type ImageLinks struct {
	Thumbnail *string `json:"thumbnail"`
}

// volumeList is the envelope of a search response.
type volumeList struct {
	TotalItems int      `json:"totalItems"`
	Items      []Volume `json:"items"`
}

// # Domain Projection

// ExternalBook is a remote search result shaped like a local book record.
//
// It is never persisted; importing copies its fields into the add form.
type ExternalBook struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Author        string `json:"author"`
	PublishedDate string `json:"published_date"`
	Language      string `json:"language"`
	ISBN10        string `json:"isbn_10"`
	ISBN13        string `json:"isbn_13"`
	Pages         string `json:"pages"`
	CoverURI      string `json:"cover_uri"`
	SelfLink      string `json:"self_link"`
}

// IsZero reports whether b is the empty slot of a result page.
func (b ExternalBook) IsZero() bool {
	return b == ExternalBook{}
}

// missingID stands in for the remote id when a volume has none.
const missingID = "#"

// Defaults supplies the values used for absent volume fields.
type Defaults struct {
	// CoverURI replaces a missing thumbnail.
	CoverURI string
	// Today supplies the published date of undated volumes. Nil means time.Now.
	Today func() time.Time
}

// Parse projects a volume onto an [ExternalBook]. It never fails: every
// missing field takes its default.
func (d Defaults) Parse(volume Volume) ExternalBook {
	info := volume.VolumeInfo
	if info == nil {
		info = &VolumeInfo{}
	}

	cover := d.CoverURI
	if info.ImageLinks != nil && info.ImageLinks.Thumbnail != nil {
		cover = *info.ImageLinks.Thumbnail
	}

	pages := ""
	if info.PageCount != nil {
		pages = strconv.Itoa(*info.PageCount)
	}

	isbns := FindISBNs(info.IndustryIdentifiers)

	return ExternalBook{
		ID:            pointer.Fallback(volume.ID, missingID),
		Title:         pointer.Val(info.Title),
		Author:        strings.Join(info.Authors, " "),
		PublishedDate: pointer.Fallback(info.PublishedDate, d.today().Format(time.DateOnly)),
		Language:      pointer.Val(info.Language),
		ISBN10:        isbns.ISBN10,
		ISBN13:        isbns.ISBN13,
		Pages:         pages,
		CoverURI:      cover,
		SelfLink:      pointer.Val(info.InfoLink),
	}
}

func (d Defaults) today() time.Time {
	if d.Today == nil {
		return time.Now()
	}
	return d.Today()
}
