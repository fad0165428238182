// Copyright (c) 2026 Bookmanager. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package googlebooks is the adapter for the Google Books volumes API.

It issues one synchronous GET per call, never retries and never caches.
A non-200 answer is not an error: callers receive the status code together
with an empty result and decide how to present it. Transport and decoding
failures are returned as errors.

Volumes are projected onto [ExternalBook] values by [Defaults.Parse], which
fills every missing field with a default instead of failing.
*/
package googlebooks

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/taibuivan/bookmanager/internal/platform/ctxutil"
	"github.com/taibuivan/bookmanager/pkg/slice"
)

// DefaultBaseURL is the public API root; "/volumes" is appended per call.
const DefaultBaseURL = "https://www.googleapis.com/books/v1"

// DefaultCoverURI is the placeholder image for books without a cover.
const DefaultCoverURI = "https://books.google.pl/googlebooks/images/no_cover_thumb.gif"

// Config configures a [Client].
type Config struct {
	// BaseURL overrides [DefaultBaseURL]; tests point it at an httptest server.
	BaseURL string
	// APIKey is sent as the "key" parameter when non-empty.
	APIKey string
	// PageSize is the maxResults value and the startIndex stride.
	PageSize int
	// CoverURI is the placeholder for volumes without a thumbnail.
	CoverURI string
	// HTTPClient defaults to a plain client without timeout; request contexts bound every call.
	HTTPClient *http.Client
	// Today supplies the date for undated volumes. Nil means time.Now.
	Today func() time.Time
}

// Client queries the volumes API.
type Client struct {
	baseURL  string
	apiKey   string
	pageSize int
	defaults Defaults
	http     *http.Client
}

// NewClient returns a client for the given configuration.
func NewClient(cfg Config) *Client {
	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	cover := cfg.CoverURI
	if cover == "" {
		cover = DefaultCoverURI
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	pageSize := cfg.PageSize
	if pageSize < 1 {
		pageSize = 1
	}

	return &Client{
		baseURL:  baseURL,
		apiKey:   cfg.APIKey,
		pageSize: pageSize,
		defaults: Defaults{CoverURI: cover, Today: cfg.Today},
		http:     httpClient,
	}
}

// PageSize returns the number of results requested per call.
func (client *Client) PageSize() int {
	return client.pageSize
}

// Search fetches one page of volumes matching terms.
//
// # Parameters
//
// params are extra API parameters (e.g. langRestrict). They are merged in
// this order, later entries overriding earlier ones: the caller's params,
// maxResults=<page size>, startIndex=(page-1)*<page size>.
//
// # Results
//
// On HTTP 200 the parsed books and the remote total are returned. On any
// other status the books are empty, the total is zero and err is nil; the
// status is returned as is.
func (client *Client) Search(context context.Context, terms, params url.Values, page int) (books []ExternalBook, total int, status int, err error) {
	if page < 1 {
		page = 1
	}

	query := client.baseQuery()
	if encoded := BuildQuery(terms); encoded != "" {
		parsed, err := url.ParseQuery(encoded)
		if err != nil {
			return nil, 0, 0, fmt.Errorf("googlebooks: build query: %w", err)
		}
		query.Set("q", parsed.Get("q"))
	}
	for key, values := range params {
		query[key] = append([]string(nil), values...)
	}
	query.Set("maxResults", strconv.Itoa(client.pageSize))
	query.Set("startIndex", strconv.Itoa((page-1)*client.pageSize))

	var list volumeList
	status, err = client.get(context, "/volumes", query, &list)
	if err != nil || status != http.StatusOK {
		return nil, 0, status, err
	}

	return slice.Map(list.Items, client.defaults.Parse), list.TotalItems, status, nil
}

// Volume fetches a single volume by its remote id.
//
// The status contract is the one of [Client.Search].
func (client *Client) Volume(context context.Context, id string) (ExternalBook, int, error) {
	var volume Volume
	status, err := client.get(context, "/volumes/"+url.PathEscape(id), client.baseQuery(), &volume)
	if err != nil || status != http.StatusOK {
		return ExternalBook{}, status, err
	}

	return client.defaults.Parse(volume), status, nil
}

func (client *Client) baseQuery() url.Values {
	query := url.Values{}
	if client.apiKey != "" {
		query.Set("key", client.apiKey)
	}
	return query
}

// get performs one GET and decodes a 200 body into target.
func (client *Client) get(context context.Context, path string, query url.Values, target any) (int, error) {
	endpoint := client.baseURL + path
	if encoded := query.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	request, err := http.NewRequestWithContext(context, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, fmt.Errorf("googlebooks: build request: %w", err)
	}
	request.Header.Set("Accept", "application/json")

	started := time.Now()
	response, err := client.http.Do(request)
	if err != nil {
		return 0, fmt.Errorf("googlebooks: GET %s: %w", path, err)
	}
	defer func() { _ = response.Body.Close() }()

	ctxutil.GetLogger(context).Debug("catalog_request",
		"path", path,
		"status", response.StatusCode,
		"duration", time.Since(started).String(),
	)

	if response.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, response.Body)
		return response.StatusCode, nil
	}

	if err := json.NewDecoder(response.Body).Decode(target); err != nil {
		return response.StatusCode, fmt.Errorf("googlebooks: decode %s: %w", path, err)
	}

	return response.StatusCode, nil
}
