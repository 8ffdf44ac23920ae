// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package explorer owns the character explorer session.

# Architecture

  - State: the single owner of raw records, filters, sort, pagination, fetch
    status, selection and favorites. Every mutation is one atomic transition.
  - Service: runs fetches against the character API and commits the results
    through the State lifecycle transitions.
  - Handler: the JSON HTTP surface dispatching intents into the State.

The view is never patched in place. Every transition that touches records,
filters or sort recomputes it from scratch with [character.Derive].
*/
package explorer

import (
	"slices"
	"sync"

	"github.com/taibuivan/toondex/internal/character"
	"github.com/taibuivan/toondex/pkg/pagination"
	"github.com/taibuivan/toondex/pkg/slice"
)

// FetchFailedMessage is recorded when a fetch fails without a usable message.
const FetchFailedMessage = "Failed to fetch characters"

// State is the explorer session. The zero value is not usable; call [NewState].
type State struct {
	mu sync.RWMutex

	raw              []character.Character
	view             []character.Character
	filters          character.Filters
	sort             character.SortDirection
	currentPage      int
	itemsPerPage     int
	remoteTotalPages int

	loading bool
	err     string

	selected      *character.Character
	detailVisible bool
	favorites     []int
}

// NewState returns an empty session showing page 1 with the given page size.
func NewState(itemsPerPage int) *State {
	if itemsPerPage < 1 {
		itemsPerPage = character.DefaultItemsPerPage
	}

	return &State{
		raw:          []character.Character{},
		view:         []character.Character{},
		filters:      character.DefaultFilters(),
		currentPage:  pagination.DefaultPage,
		itemsPerPage: itemsPerPage,
		favorites:    []int{},
	}
}

// cloneRecords copies records into a non-nil slice.
func cloneRecords(records []character.Character) []character.Character {
	return append(make([]character.Character, 0, len(records)), records...)
}

// recompute rebuilds the view. Callers must hold the write lock.
func (state *State) recompute() {
	state.view = character.Derive(state.raw, state.filters, state.sort)
}

// # Query Intents

// SetFilters merges patch into the filters and returns to page 1.
func (state *State) SetFilters(patch character.FilterPatch) {
	state.mu.Lock()
	defer state.mu.Unlock()

	state.filters = state.filters.Merge(patch)
	state.recompute()
	state.currentPage = pagination.DefaultPage
}

// ResetFilters restores default filters and the fetch order of the records.
func (state *State) ResetFilters() {
	state.mu.Lock()
	defer state.mu.Unlock()

	state.filters = character.DefaultFilters()
	state.sort = character.SortNone
	state.view = cloneRecords(state.raw)
	state.currentPage = pagination.DefaultPage
}

// SetSortDirection orders the filtered records by name and returns to page 1.
// Unknown directions are treated as unsorted.
func (state *State) SetSortDirection(direction character.SortDirection) {
	state.mu.Lock()
	defer state.mu.Unlock()

	if !direction.IsValid() {
		direction = character.SortNone
	}
	state.sort = direction
	state.recompute()
	state.currentPage = pagination.DefaultPage
}

// CycleSort advances the sort direction and returns the new one.
func (state *State) CycleSort() character.SortDirection {
	state.mu.Lock()
	defer state.mu.Unlock()

	state.sort = state.sort.Next()
	state.recompute()
	state.currentPage = pagination.DefaultPage
	return state.sort
}

// SetCurrentPage stores page as given. Pages outside the view show nothing.
func (state *State) SetCurrentPage(page int) {
	state.mu.Lock()
	defer state.mu.Unlock()

	state.currentPage = page
}

// SetItemsPerPage changes the page size and returns to page 1.
// Sizes below one fall back to [character.DefaultItemsPerPage].
func (state *State) SetItemsPerPage(size int) {
	state.mu.Lock()
	defer state.mu.Unlock()

	if size < 1 {
		size = character.DefaultItemsPerPage
	}
	state.itemsPerPage = size
	state.currentPage = pagination.DefaultPage
}

// # Selection

// SetSelected replaces the selected record. Nil clears it.
func (state *State) SetSelected(selected *character.Character) {
	state.mu.Lock()
	defer state.mu.Unlock()

	if selected == nil {
		state.selected = nil
		return
	}
	copied := *selected
	state.selected = &copied
}

// SetDetailVisible shows or hides the detail panel.
func (state *State) SetDetailVisible(visible bool) {
	state.mu.Lock()
	defer state.mu.Unlock()

	state.detailVisible = visible
}

// Select looks id up in the raw records, selects it and shows its detail.
func (state *State) Select(id int) (character.Character, bool) {
	state.mu.Lock()
	defer state.mu.Unlock()

	found, ok := character.FindByID(state.raw, id)
	if !ok {
		return character.Character{}, false
	}
	state.selected = &found
	state.detailVisible = true
	return found, true
}

// Dismiss clears the selection and hides the detail panel.
func (state *State) Dismiss() {
	state.mu.Lock()
	defer state.mu.Unlock()

	state.selected = nil
	state.detailVisible = false
}

// # Favorites

// ToggleFavorite adds or removes id and reports whether it is now a favorite.
func (state *State) ToggleFavorite(id int) bool {
	state.mu.Lock()
	defer state.mu.Unlock()

	state.favorites = slice.Toggle(state.favorites, id)
	return slices.Contains(state.favorites, id)
}

// Favorites returns the favorite IDs in the order they were added.
func (state *State) Favorites() []int {
	state.mu.RLock()
	defer state.mu.RUnlock()

	return slices.Clone(state.favorites)
}

// # Fetch Lifecycle

// BeginFetch marks a fetch as running and clears the previous error.
func (state *State) BeginFetch() {
	state.mu.Lock()
	defer state.mu.Unlock()

	state.loading = true
	state.err = ""
}

// CompletePage commits a single fetched page. The remote page count comes
// from the API and is kept apart from the local page count.
func (state *State) CompletePage(records []character.Character, remoteTotalPages int) {
	state.mu.Lock()
	defer state.mu.Unlock()

	state.loading = false
	state.raw = cloneRecords(records)
	state.remoteTotalPages = remoteTotalPages
	state.recompute()
}

// CompleteAll commits the result of a full-collection fetch.
func (state *State) CompleteAll(records []character.Character) {
	state.mu.Lock()
	defer state.mu.Unlock()

	state.loading = false
	state.raw = cloneRecords(records)
	state.recompute()
}

// FailFetch ends a fetch with an error. Records are left untouched.
func (state *State) FailFetch(err error) {
	state.mu.Lock()
	defer state.mu.Unlock()

	state.loading = false
	state.err = fetchErrorMessage(err)
}

// fetchErrorMessage is the banner text for a failed fetch.
func fetchErrorMessage(err error) string {
	if err == nil || err.Error() == "" {
		return FetchFailedMessage
	}
	return err.Error()
}

// # Read Accessors

// Snapshot is a copy of the whole session at one point in time.
type Snapshot struct {
	Characters       []character.Character   `json:"characters"`
	Filtered         []character.Character   `json:"filtered_characters"`
	Filters          character.Filters       `json:"filters"`
	Sort             character.SortDirection `json:"sort_direction"`
	CurrentPage      int                     `json:"current_page"`
	ItemsPerPage     int                     `json:"items_per_page"`
	TotalPages       int                     `json:"total_pages"`
	RemoteTotalPages int                     `json:"remote_total_pages"`
	Loading          bool                    `json:"loading"`
	Error            string                  `json:"error"`
	Selected         *character.Character    `json:"selected_character"`
	DetailVisible    bool                    `json:"detail_visible"`
	Favorites        []int                   `json:"favorites"`
}

// Snapshot copies the current session.
func (state *State) Snapshot() Snapshot {
	state.mu.RLock()
	defer state.mu.RUnlock()

	var selected *character.Character
	if state.selected != nil {
		copied := *state.selected
		selected = &copied
	}

	return Snapshot{
		Characters:       cloneRecords(state.raw),
		Filtered:         cloneRecords(state.view),
		Filters:          state.filters,
		Sort:             state.sort,
		CurrentPage:      state.currentPage,
		ItemsPerPage:     state.itemsPerPage,
		TotalPages:       pagination.TotalPages(len(state.view), state.itemsPerPage),
		RemoteTotalPages: state.remoteTotalPages,
		Loading:          state.loading,
		Error:            state.err,
		Selected:         selected,
		DetailVisible:    state.detailVisible,
		Favorites:        slices.Clone(state.favorites),
	}
}

// PageView is the current page of the view with its navigation data.
type PageView struct {
	Items  []character.Character `json:"items"`
	Meta   pagination.Meta       `json:"meta"`
	Range  pagination.Range      `json:"range"`
	Window []int                 `json:"window"`
}

// Page returns a copy of the records on the current page.
func (state *State) Page() PageView {
	state.mu.RLock()
	defer state.mu.RUnlock()

	params := pagination.Params{Page: state.currentPage, Limit: state.itemsPerPage}
	total := len(state.view)
	meta := pagination.NewMeta(params.Page, params.Limit, total)

	return PageView{
		Items:  cloneRecords(pagination.Slice(state.view, params)),
		Meta:   meta,
		Range:  pagination.NewRange(params, total),
		Window: pagination.Window(params.Page, meta.TotalPages),
	}
}

// Stats summarises the current view against all records.
func (state *State) Stats() character.Stats {
	state.mu.RLock()
	defer state.mu.RUnlock()

	return character.Summarize(state.view, len(state.raw))
}
