// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package character_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/toondex/internal/character"
	"github.com/taibuivan/toondex/pkg/pointer"
)

func names(records []character.Character) []string {
	out := make([]string, len(records))
	for i, c := range records {
		out[i] = c.Name
	}
	return out
}

func fixture() []character.Character {
	return []character.Character{
		{ID: 1, Name: "Mickey Mouse", Films: []string{"Fantasia"}, TVShows: []string{"House of Mouse", "Mickey Mouse Clubhouse"}, VideoGames: []string{"Epic Mickey"}, Allies: []string{"Donald Duck"}},
		{ID: 2, Name: "Maleficent", Films: []string{"Sleeping Beauty"}, TVShows: []string{"House of Mouse"}, Enemies: []string{"Aurora"}},
		{ID: 3, Name: "Donald Duck", Films: []string{"Fantasia 2000", "Saludos Amigos"}, TVShows: []string{"DuckTales"}, VideoGames: []string{"Kingdom Hearts", "QuackShot"}, Allies: []string{"Mickey Mouse"}},
		{ID: 4, Name: "achilles"},
		{ID: 5, Name: "Baloo", Films: []string{"The Jungle Book"}, TVShows: []string{"TaleSpin"}},
	}
}

/*
TestFilter_SubsetInOrder checks that every filter result is an
order-preserving subset whose members all satisfy the criteria.
*/
func TestFilter_SubsetInOrder(t *testing.T) {
	records := fixture()

	cases := []character.Filters{
		{},
		{Search: "MOUSE"},
		{MinTVShows: 1},
		{MinVideoGames: 2},
		{HasAllies: true},
		{HasEnemies: true},
		{TVShow: "house"},
		{Search: "d", MinTVShows: 1, HasAllies: true},
		{Search: "nobody"},
	}

	for _, filters := range cases {
		view := character.Filter(records, filters)

		lastIndex := -1
		for _, c := range view {
			index := slices.IndexFunc(records, func(r character.Character) bool { return r.ID == c.ID })
			require.GreaterOrEqual(t, index, 0, "%+v produced a foreign record", filters)
			assert.Greater(t, index, lastIndex, "%+v reordered records", filters)
			lastIndex = index
			assert.True(t, filters.Match(c))
		}

		assert.Equal(t, len(records)-len(view), countRejected(records, filters), "%+v", filters)
	}
}

func countRejected(records []character.Character, filters character.Filters) int {
	n := 0
	for _, c := range records {
		if !filters.Match(c) {
			n++
		}
	}
	return n
}

func TestFilters_Match(t *testing.T) {
	mickey := fixture()[0]

	tests := []struct {
		name    string
		filters character.Filters
		want    bool
	}{
		{"defaults", character.DefaultFilters(), true},
		{"search_case_insensitive", character.Filters{Search: "mIcKeY"}, true},
		{"search_miss", character.Filters{Search: "goofy"}, false},
		{"min_tv_equal", character.Filters{MinTVShows: 2}, true},
		{"min_tv_above", character.Filters{MinTVShows: 3}, false},
		{"min_games", character.Filters{MinVideoGames: 2}, false},
		{"has_allies", character.Filters{HasAllies: true}, true},
		{"has_enemies", character.Filters{HasEnemies: true}, false},
		{"tv_show_substring", character.Filters{TVShow: "clubhouse"}, true},
		{"tv_show_miss", character.Filters{TVShow: "ducktales"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filters.Match(mickey))
		})
	}
}

/*
TestSort_DirectionsAreReverses checks asc and desc against each other and that
the unsorted direction keeps the input order.
*/
func TestSort_DirectionsAreReverses(t *testing.T) {
	records := fixture()

	asc := character.Sort(records, character.SortAsc)
	desc := character.Sort(records, character.SortDesc)
	none := character.Sort(records, character.SortNone)

	assert.Equal(t, []string{"achilles", "Baloo", "Donald Duck", "Maleficent", "Mickey Mouse"}, names(asc))

	reversed := slices.Clone(desc)
	slices.Reverse(reversed)
	assert.Equal(t, asc, reversed)

	assert.Equal(t, records, none)
	assert.Equal(t, "Mickey Mouse", records[0].Name, "input untouched")
}

func TestSort_StableForEqualNames(t *testing.T) {
	records := []character.Character{{ID: 1, Name: "Pete"}, {ID: 2, Name: "Anna"}, {ID: 3, Name: "Pete"}}

	sorted := character.Sort(records, character.SortAsc)
	assert.Equal(t, []int{2, 1, 3}, []int{sorted[0].ID, sorted[1].ID, sorted[2].ID})
}

func TestSort_EmptyInput(t *testing.T) {
	assert.Equal(t, []character.Character{}, character.Sort(nil, character.SortAsc))
}

/*
TestDerive_AlliesThenAscending filters a three-record set by allies and then
sorts the survivors by name.
*/
func TestDerive_AlliesThenAscending(t *testing.T) {
	records := fixture()[:3]
	filters := character.DefaultFilters().Merge(character.FilterPatch{HasAllies: pointer.To(true)})

	assert.Equal(t, []string{"Mickey Mouse", "Donald Duck"}, names(character.Derive(records, filters, character.SortNone)))
	assert.Equal(t, []string{"Donald Duck", "Mickey Mouse"}, names(character.Derive(records, filters, character.SortAsc)))
}

func TestFilters_Merge(t *testing.T) {
	base := character.Filters{Search: "duck", MinTVShows: 2, HasEnemies: true}

	assert.Equal(t, base, base.Merge(character.FilterPatch{}))

	merged := base.Merge(character.FilterPatch{MinTVShows: pointer.To(0), TVShow: pointer.To("tales")})
	assert.Equal(t, character.Filters{Search: "duck", MinTVShows: 0, HasEnemies: true, TVShow: "tales"}, merged)
}

func TestSortDirection_Next(t *testing.T) {
	direction := character.SortNone

	var seen []character.SortDirection
	for i := 0; i < 4; i++ {
		direction = direction.Next()
		seen = append(seen, direction)
	}

	assert.Equal(t, []character.SortDirection{character.SortAsc, character.SortDesc, character.SortNone, character.SortAsc}, seen)
	assert.False(t, character.SortDirection("up").IsValid())
}

func TestFindByID(t *testing.T) {
	found, ok := character.FindByID(fixture(), 3)
	require.True(t, ok)
	assert.Equal(t, "Donald Duck", found.Name)

	_, ok = character.FindByID(fixture(), 99)
	assert.False(t, ok)
}
