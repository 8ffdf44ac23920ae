// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package character_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/toondex/internal/character"
)

func TestSummarize(t *testing.T) {
	records := fixture()
	view := character.Filter(records, character.Filters{MinTVShows: 1})

	stats := character.Summarize(view, len(records))

	assert.Equal(t, character.Stats{
		Filtered:   4,
		Total:      5,
		Films:      5,
		TVShows:    5,
		VideoGames: 3,
		WithAllies: 2,
	}, stats)
}

func TestFilmChart_SkipsCharactersWithoutFilms(t *testing.T) {
	chart := character.FilmChart(fixture())

	assert.Len(t, chart, 4)
	assert.Equal(t, character.FilmPoint{Name: "Donald Duck", Y: 2, Films: []string{"Fantasia 2000", "Saludos Amigos"}}, chart[2])
	assert.Equal(t, []character.FilmPoint{}, character.FilmChart(nil))
}

func TestFilmList(t *testing.T) {
	assert.Equal(t, "Fantasia 2000, Saludos Amigos", character.FilmList(fixture()[2]))
	assert.Equal(t, "", character.FilmList(character.Character{}))
}
