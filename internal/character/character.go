// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package character holds the Disney character record and the pure query engine
that derives a filtered and sorted view from a record set.

Nothing in this package keeps state. Every function takes its inputs by value
and returns a fresh slice, so callers may share the results freely.
*/
package character

import "github.com/taibuivan/toondex/pkg/pointer"

// Character is one record of the character API. Records are never mutated
// after they are decoded.
type Character struct {
	ID              int      `json:"_id"`
	Name            string   `json:"name"`
	Films           []string `json:"films"`
	ShortFilms      []string `json:"shortFilms"`
	TVShows         []string `json:"tvShows"`
	VideoGames      []string `json:"videoGames"`
	ParkAttractions []string `json:"parkAttractions"`
	Allies          []string `json:"allies"`
	Enemies         []string `json:"enemies"`
	SourceURL       string   `json:"sourceUrl,omitempty"`
	ImageURL        string   `json:"imageUrl,omitempty"`
	URL             string   `json:"url,omitempty"`
}

// # Filter Criteria

// Filters is the full set of criteria a record must satisfy to be in the view.
type Filters struct {
	Search        string `json:"search"`
	MinTVShows    int    `json:"min_tv_shows"`
	MinVideoGames int    `json:"min_video_games"`
	HasAllies     bool   `json:"has_allies"`
	HasEnemies    bool   `json:"has_enemies"`
	TVShow        string `json:"tv_show"`
}

// DefaultFilters returns criteria that every record satisfies.
func DefaultFilters() Filters {
	return Filters{}
}

// FilterPatch is a partial update of [Filters]. Nil fields are left untouched.
type FilterPatch struct {
	Search        *string `json:"search,omitempty"`
	MinTVShows    *int    `json:"min_tv_shows,omitempty"`
	MinVideoGames *int    `json:"min_video_games,omitempty"`
	HasAllies     *bool   `json:"has_allies,omitempty"`
	HasEnemies    *bool   `json:"has_enemies,omitempty"`
	TVShow        *string `json:"tv_show,omitempty"`
}

// Merge returns filters with every set field of patch applied.
func (filters Filters) Merge(patch FilterPatch) Filters {
	merged := filters
	pointer.Assign(&merged.Search, patch.Search)
	pointer.Assign(&merged.MinTVShows, patch.MinTVShows)
	pointer.Assign(&merged.MinVideoGames, patch.MinVideoGames)
	pointer.Assign(&merged.HasAllies, patch.HasAllies)
	pointer.Assign(&merged.HasEnemies, patch.HasEnemies)
	pointer.Assign(&merged.TVShow, patch.TVShow)
	return merged
}

// # Sort Direction

// SortDirection orders the view by name. The zero value leaves it unsorted.
type SortDirection string

const (
	SortNone SortDirection = ""
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// IsValid reports whether d is one of the known directions.
func (d SortDirection) IsValid() bool {
	switch d {
	case SortNone, SortAsc, SortDesc:
		return true
	}
	return false
}

// Next cycles unsorted, ascending, descending, then back to unsorted.
func (d SortDirection) Next() SortDirection {
	switch d {
	case SortNone:
		return SortAsc
	case SortAsc:
		return SortDesc
	default:
		return SortNone
	}
}

// # Page Sizes

// DefaultItemsPerPage is the page size of a fresh session.
const DefaultItemsPerPage = 50

// PageSizeOptions are the page sizes a client may choose from.
var PageSizeOptions = []int{10, 20, 50, 100, 200, 500}
