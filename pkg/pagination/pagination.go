// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pagination provides shared types and helpers for page-based views.
//
// # Overview
//
// A view is paginated after it has been filtered and sorted: page n of size p
// is the half-open slice [(n-1)*p, n*p) of the view. Nothing here clamps the
// requested page; an out-of-range page simply selects no items.
package pagination

const (
	// DefaultPage is the starting page (1-indexed).
	DefaultPage = 1
	// WindowSize is the number of page links shown around the current page.
	WindowSize = 5
)

// Params holds a requested page and page size.
type Params struct {
	Page  int
	Limit int
}

// start returns the index of the first item of [Params.Page] in a view of
// total items. It reports false when the page holds no items, including pages
// whose offset would not fit in an int.
func (p Params) start(total int) (int, bool) {
	if p.Limit <= 0 || p.Page < 1 {
		return 0, false
	}
	if p.Page-1 >= TotalPages(total, p.Limit) {
		return 0, false
	}
	return (p.Page - 1) * p.Limit, true
}

// Meta is the pagination metadata included in API list responses.
type Meta struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	HasPrev    bool `json:"has_prev"`
	HasNext    bool `json:"has_next"`
}

// NewMeta constructs pagination metadata for a response.
//
// It automatically calculates the TotalPages based on the total count and limit.
func NewMeta(page, limit, total int) Meta {
	totalPages := TotalPages(total, limit)

	return Meta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasPrev:    page > 1,
		HasNext:    page < totalPages,
	}
}

// TotalPages returns ceil(total / limit), or 0 when limit is not positive.
func TotalPages(total, limit int) int {
	if limit <= 0 || total <= 0 {
		return 0
	}
	pages := total / limit
	if total%limit != 0 {
		pages++
	}
	return pages
}

// Slice returns the items of page [Params.Page] without copying them.
//
// Pages before the first or past the last yield an empty slice.
func Slice[T any](items []T, params Params) []T {
	start, ok := params.start(len(items))
	if !ok {
		return items[:0:0]
	}

	end := len(items)
	if params.Limit < end-start {
		end = start + params.Limit
	}

	return items[start:end:end]
}

// Range is the 1-indexed, inclusive span of items shown on a page
// ("Showing Start-End of Total"). Start and End are zero for an empty page.
type Range struct {
	Start int `json:"start"`
	End   int `json:"end"`
	Total int `json:"total"`
}

// NewRange computes the item span of a page.
func NewRange(params Params, total int) Range {
	start, ok := params.start(total)
	if !ok {
		return Range{Total: total}
	}

	end := total
	if params.Limit < end-start {
		end = start + params.Limit
	}

	return Range{Start: start + 1, End: end, Total: total}
}

// Window returns up to [WindowSize] consecutive page numbers to offer as links.
//
// The window starts at page 1 near the beginning, ends at the last page near the
// end, and is centred on the current page otherwise.
func Window(current, totalPages int) []int {
	if totalPages <= 0 {
		return []int{}
	}

	size := WindowSize
	if totalPages < size {
		size = totalPages
	}

	var first int
	switch {
	case totalPages <= WindowSize, current <= 3:
		first = 1
	case current >= totalPages-2:
		first = totalPages - WindowSize + 1
	default:
		first = current - 2
	}

	pages := make([]int, size)
	for i := range pages {
		pages[i] = first + i
	}
	return pages
}
