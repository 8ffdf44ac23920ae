// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package character

import (
	"strings"

	"github.com/taibuivan/toondex/pkg/slice"
)

// Stats summarises a view against the full record set.
type Stats struct {
	Filtered   int `json:"filtered"`
	Total      int `json:"total"`
	Films      int `json:"films"`
	TVShows    int `json:"tv_shows"`
	VideoGames int `json:"video_games"`
	WithAllies int `json:"with_allies"`
}

// Summarize counts appearances over view. total is the size of the raw set.
func Summarize(view []Character, total int) Stats {
	return Stats{
		Filtered:   len(view),
		Total:      total,
		Films:      slice.SumBy(view, func(c Character) int { return len(c.Films) }),
		TVShows:    slice.SumBy(view, func(c Character) int { return len(c.TVShows) }),
		VideoGames: slice.SumBy(view, func(c Character) int { return len(c.VideoGames) }),
		WithAllies: slice.Count(view, func(c Character) bool { return len(c.Allies) > 0 }),
	}
}

// FilmPoint is one bar of the films-per-character chart.
type FilmPoint struct {
	Name  string   `json:"name"`
	Y     int      `json:"y"`
	Films []string `json:"films"`
}

// FilmChart builds the chart series for the given page, skipping characters
// without films.
func FilmChart(page []Character) []FilmPoint {
	withFilms := slice.Filter(page, func(c Character) bool { return len(c.Films) > 0 })
	return slice.Map(withFilms, func(c Character) FilmPoint {
		return FilmPoint{Name: c.Name, Y: len(c.Films), Films: c.Films}
	})
}

// FilmList joins the film titles of c for display.
func FilmList(c Character) string {
	return strings.Join(c.Films, ", ")
}
