// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package disneyapi is the HTTP client for the public Disney character API.

It knows the wire format of the /character listing and how to walk its pages.
It holds no explorer state: results are returned to the caller, which decides
how to commit them.

Pagination:

  - FetchPage: one GET of /character?page=N&pageSize=S.
  - FetchAll: pages 1..N strictly in sequence, following nextPage until it is
    null or the page cap is reached. Any failure discards the whole result.
*/
package disneyapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/taibuivan/toondex/internal/character"
)

var (
	// ErrFetchFailed is returned when the API cannot be reached or answers
	// with a non-2xx status.
	ErrFetchFailed = errors.New("character api request failed")

	// ErrMalformedResponse is returned when a 2xx body is not a valid listing.
	ErrMalformedResponse = errors.New("character api returned a malformed response")
)

const charactersPath = "/character"

// # Wire Types

// Info is the pagination block of a listing response.
type Info struct {
	Count        int     `json:"count"`
	TotalPages   int     `json:"totalPages"`
	PreviousPage *string `json:"previousPage"`
	NextPage     *string `json:"nextPage"`
}

// Page is one decoded listing response.
type Page struct {
	Info Info                  `json:"info"`
	Data []character.Character `json:"data"`
}

// HasNext reports whether the API announced a following page.
func (p Page) HasNext() bool {
	return p.Info.NextPage != nil
}

// listing mirrors the raw response so missing blocks can be told apart from
// empty ones.
type listing struct {
	Info *Info           `json:"info"`
	Data json.RawMessage `json:"data"`
}

// decodePage validates and decodes a listing body. The API sends data as a
// bare object instead of an array when a page holds a single record.
func decodePage(body []byte) (Page, error) {
	var raw listing
	if err := json.Unmarshal(body, &raw); err != nil {
		return Page{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	data := bytes.TrimSpace(raw.Data)
	if raw.Info == nil || len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return Page{}, fmt.Errorf("%w: missing info or data", ErrMalformedResponse)
	}

	page := Page{Info: *raw.Info}
	switch data[0] {
	case '[':
		if err := json.Unmarshal(data, &page.Data); err != nil {
			return Page{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
		}
	case '{':
		var single character.Character
		if err := json.Unmarshal(data, &single); err != nil {
			return Page{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
		}
		page.Data = []character.Character{single}
	default:
		return Page{}, fmt.Errorf("%w: data is neither a list nor a record", ErrMalformedResponse)
	}

	return page, nil
}

// # Client

// Options configures a [Client].
type Options struct {
	BaseURL  string
	PageSize int
	MaxPages int
}

// Client fetches character pages. It is safe for concurrent use.
type Client struct {
	http     *resty.Client
	pageSize int
	maxPages int
	metrics  *Metrics
	logger   *slog.Logger
}

// NewClient builds a client for the API at opts.BaseURL.
func NewClient(opts Options, metrics *Metrics, logger *slog.Logger) *Client {
	// Page requests carry no client timeout; the caller's context bounds them.
	httpClient := resty.New().
		SetBaseURL(opts.BaseURL).
		SetHeader("Accept", "application/json")

	return &Client{
		http:     httpClient,
		pageSize: opts.PageSize,
		maxPages: opts.MaxPages,
		metrics:  metrics,
		logger:   logger,
	}
}

/*
FetchPage requests a single page of the listing.

Parameters:
  - ctx: context.Context bounding the HTTP call
  - page: int (1-indexed)

Returns:
  - Page: decoded info and records
  - error: wraps ErrFetchFailed or ErrMalformedResponse
*/
func (client *Client) FetchPage(ctx context.Context, page int) (Page, error) {
	start := time.Now()

	response, err := client.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"page":     strconv.Itoa(page),
			"pageSize": strconv.Itoa(client.pageSize),
		}).
		Get(charactersPath)

	client.metrics.observe(time.Since(start))

	if err != nil {
		client.metrics.fail(outcomeTransport)
		client.logger.WarnContext(ctx, "fetch_page_failed", slog.Int("page", page), slog.String("error", err.Error()))
		return Page{}, fmt.Errorf("%w: page %d: %v", ErrFetchFailed, page, err)
	}

	if response.IsError() {
		client.metrics.fail(outcomeStatus)
		client.logger.WarnContext(ctx, "fetch_page_failed", slog.Int("page", page), slog.Int("status", response.StatusCode()))
		return Page{}, fmt.Errorf("%w: page %d: status %d", ErrFetchFailed, page, response.StatusCode())
	}

	decoded, err := decodePage(response.Body())
	if err != nil {
		client.metrics.fail(outcomeMalformed)
		client.logger.WarnContext(ctx, "fetch_page_malformed", slog.Int("page", page), slog.String("error", err.Error()))
		return Page{}, fmt.Errorf("page %d: %w", page, err)
	}

	client.metrics.succeed(len(decoded.Data))
	return decoded, nil
}

/*
FetchAll walks the listing from page 1 and concatenates every page in order.

The walk stops when a page reports no nextPage or after Options.MaxPages
requests, whichever comes first. Pages are requested one at a time because
each continuation depends on the previous response.

Returns:
  - []character.Character: all records, never partial
  - error: the first page failure; nothing is returned alongside it
*/
func (client *Client) FetchAll(ctx context.Context) ([]character.Character, error) {
	records := make([]character.Character, 0, client.pageSize)

	for pageNumber := 1; pageNumber <= client.maxPages; pageNumber++ {
		page, err := client.FetchPage(ctx, pageNumber)
		if err != nil {
			return nil, err
		}

		records = append(records, page.Data...)

		if !page.HasNext() {
			break
		}
	}

	client.logger.DebugContext(ctx, "fetch_all_completed", slog.Int("records", len(records)))
	return records, nil
}

// Ping checks that the API answers a minimal listing request.
func (client *Client) Ping(ctx context.Context) error {
	response, err := client.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{"page": "1", "pageSize": "1"}).
		Get(charactersPath)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	if response.IsError() {
		return fmt.Errorf("%w: status %d", ErrFetchFailed, response.StatusCode())
	}
	return nil
}
