// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package character

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/taibuivan/toondex/pkg/slice"
)

// collationLocale decides the name order of sorted views.
var collationLocale = language.English

// matcher evaluates one [Filters] value. Text needles are case-folded once.
//
// A [cases.Caser] is stateful, so each matcher owns its own.
type matcher struct {
	filters Filters
	folder  cases.Caser
	search  string
	tvShow  string
}

func newMatcher(filters Filters) *matcher {
	folder := cases.Fold()
	return &matcher{
		filters: filters,
		folder:  folder,
		search:  folder.String(filters.Search),
		tvShow:  folder.String(filters.TVShow),
	}
}

func (m *matcher) contains(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(m.folder.String(haystack), needle)
}

func (m *matcher) match(c Character) bool {
	if !m.contains(c.Name, m.search) {
		return false
	}
	if len(c.TVShows) < m.filters.MinTVShows || len(c.VideoGames) < m.filters.MinVideoGames {
		return false
	}
	if m.filters.HasAllies && len(c.Allies) == 0 {
		return false
	}
	if m.filters.HasEnemies && len(c.Enemies) == 0 {
		return false
	}
	if m.tvShow == "" {
		return true
	}
	return slices.ContainsFunc(c.TVShows, func(show string) bool {
		return m.contains(show, m.tvShow)
	})
}

// Match reports whether c satisfies every criterion of filters.
//
// Name and TV show comparisons are case-insensitive substring matches and an
// empty needle always passes.
func (filters Filters) Match(c Character) bool {
	return newMatcher(filters).match(c)
}

// Filter returns the records matching filters, in their original order.
func Filter(records []Character, filters Filters) []Character {
	m := newMatcher(filters)
	return slice.Filter(records, m.match)
}

// Sort returns a copy of records ordered by name.
//
// Ascending order uses English collation and is stable. Descending order uses
// the negated comparator. [SortNone] returns the records in their input order.
func Sort(records []Character, direction SortDirection) []Character {
	sorted := slices.Clone(records)
	if sorted == nil {
		sorted = []Character{}
	}
	if direction != SortAsc && direction != SortDesc {
		return sorted
	}

	collator := collate.New(collationLocale)
	sign := 1
	if direction == SortDesc {
		sign = -1
	}

	slices.SortStableFunc(sorted, func(a, b Character) int {
		return sign * collator.CompareString(a.Name, b.Name)
	})
	return sorted
}

// Derive computes the view of records under filters and direction.
func Derive(records []Character, filters Filters, direction SortDirection) []Character {
	return Sort(Filter(records, filters), direction)
}

// FindByID returns the record with the given ID.
func FindByID(records []Character, id int) (Character, bool) {
	index := slices.IndexFunc(records, func(c Character) bool { return c.ID == id })
	if index < 0 {
		return Character{}, false
	}
	return records[index], true
}
