// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package explorer

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/toondex/internal/character"
	"github.com/taibuivan/toondex/internal/platform/apperr"
	requestutil "github.com/taibuivan/toondex/internal/platform/request"
	"github.com/taibuivan/toondex/internal/platform/respond"
	"github.com/taibuivan/toondex/internal/platform/validate"
	"github.com/taibuivan/toondex/pkg/pagination"
)

// Request payload field names, used in validation details.
const (
	FieldPage          = "page"
	FieldItemsPerPage  = "items_per_page"
	FieldDirection     = "direction"
	FieldMinTVShows    = "min_tv_shows"
	FieldMinVideoGames = "min_video_games"
	FieldID            = "id"
)

// # Handler Implementation

// Handler exposes the explorer session over JSON.
//
// Reads return copies of the state. Writes dispatch exactly one state
// transition and answer with the resulting snapshot.
type Handler struct {
	service *Service
	state   *State
}

// NewHandler constructs a new explorer [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service, state: service.State()}
}

// Routes returns a [chi.Router] with the explorer endpoints.
//
// # Routing Strategy
//
//   - Views: read-only projections of the session (state, page, stats, chart, export).
//   - Intents: mutations of filters, sort, pagination, selection and favorites.
//   - Fetches: calls to the character API that replace the records.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// ## Views
	router.Get("/state", handler.getState)
	router.Get("/characters", handler.listCharacters)
	router.Get("/pagination", handler.getPagination)
	router.Get("/stats", handler.getStats)
	router.Get("/chart", handler.getChart)
	router.Get("/export", handler.exportPage)

	// ## Fetches
	router.Post("/fetch", handler.fetchAll)
	router.Post("/fetch/{page}", handler.fetchPage)

	// ## Intents
	router.Patch("/filters", handler.setFilters)
	router.Delete("/filters", handler.resetFilters)
	router.Put("/sort", handler.setSort)
	router.Post("/sort/cycle", handler.cycleSort)
	router.Put("/page", handler.setPage)
	router.Put("/page-size", handler.setPageSize)
	router.Put("/selection", handler.selectCharacter)
	router.Delete("/selection", handler.dismissCharacter)
	router.Put("/detail", handler.setDetail)
	router.Post("/favorites/{id}", handler.toggleFavorite)

	return router
}

// # Views

func (handler *Handler) getState(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.state.Snapshot())
}

func (handler *Handler) listCharacters(writer http.ResponseWriter, request *http.Request) {
	page := handler.state.Page()
	respond.Paginated(writer, page.Items, page.Meta)
}

// PaginationView is the navigation data of the current page.
type PaginationView struct {
	Meta    pagination.Meta  `json:"meta"`
	Range   pagination.Range `json:"range"`
	Window  []int            `json:"window"`
	Options []int            `json:"page_size_options"`
}

func (handler *Handler) getPagination(writer http.ResponseWriter, request *http.Request) {
	page := handler.state.Page()
	respond.OK(writer, PaginationView{
		Meta:    page.Meta,
		Range:   page.Range,
		Window:  page.Window,
		Options: character.PageSizeOptions,
	})
}

func (handler *Handler) getStats(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.state.Stats())
}

func (handler *Handler) getChart(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, character.FilmChart(handler.state.Page().Items))
}

func (handler *Handler) exportPage(writer http.ResponseWriter, request *http.Request) {
	page := handler.state.Page()

	body, err := ExportPage(page.Items)
	if err != nil {
		respond.Error(writer, request, apperr.Internal(err))
		return
	}

	respond.Attachment(writer, ExportFilename(page.Meta.Page), ExportContentType, body)
}

// # Fetches

func (handler *Handler) fetchAll(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.LoadAll(request.Context()); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, handler.state.Snapshot())
}

func (handler *Handler) fetchPage(writer http.ResponseWriter, request *http.Request) {
	page, err := requestutil.IntParam(request, FieldPage)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	if err := validator.Min(FieldPage, page, 1).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.LoadPage(request.Context(), page); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, handler.state.Snapshot())
}

// # Query Intents

func (handler *Handler) setFilters(writer http.ResponseWriter, request *http.Request) {
	var patch character.FilterPatch
	if err := requestutil.DecodeJSON(request, &patch); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	if patch.MinTVShows != nil {
		validator.Min(FieldMinTVShows, *patch.MinTVShows, 0)
	}
	if patch.MinVideoGames != nil {
		validator.Min(FieldMinVideoGames, *patch.MinVideoGames, 0)
	}
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	handler.state.SetFilters(patch)
	respond.OK(writer, handler.state.Snapshot())
}

func (handler *Handler) resetFilters(writer http.ResponseWriter, request *http.Request) {
	handler.state.ResetFilters()
	respond.OK(writer, handler.state.Snapshot())
}

type sortInput struct {
	Direction character.SortDirection `json:"direction"`
}

func (handler *Handler) setSort(writer http.ResponseWriter, request *http.Request) {
	var input sortInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.OneOf(FieldDirection, string(input.Direction),
		string(character.SortNone), string(character.SortAsc), string(character.SortDesc))
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	handler.state.SetSortDirection(input.Direction)
	respond.OK(writer, handler.state.Snapshot())
}

func (handler *Handler) cycleSort(writer http.ResponseWriter, request *http.Request) {
	handler.state.CycleSort()
	respond.OK(writer, handler.state.Snapshot())
}

type pageInput struct {
	Page int `json:"page"`
}

func (handler *Handler) setPage(writer http.ResponseWriter, request *http.Request) {
	var input pageInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	if err := validator.Min(FieldPage, input.Page, 1).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	handler.state.SetCurrentPage(input.Page)
	respond.OK(writer, handler.state.Snapshot())
}

type pageSizeInput struct {
	ItemsPerPage int `json:"items_per_page"`
}

func (handler *Handler) setPageSize(writer http.ResponseWriter, request *http.Request) {
	var input pageSizeInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	if err := validator.OneOfInt(FieldItemsPerPage, input.ItemsPerPage, character.PageSizeOptions...).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	handler.state.SetItemsPerPage(input.ItemsPerPage)
	respond.OK(writer, handler.state.Snapshot())
}

// # Selection

type selectionInput struct {
	ID int `json:"id"`
}

func (handler *Handler) selectCharacter(writer http.ResponseWriter, request *http.Request) {
	var input selectionInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	selected, found := handler.state.Select(input.ID)
	if !found {
		respond.Error(writer, request, apperr.NotFound("Character"))
		return
	}
	respond.OK(writer, selected)
}

func (handler *Handler) dismissCharacter(writer http.ResponseWriter, request *http.Request) {
	handler.state.Dismiss()
	respond.NoContent(writer)
}

type detailInput struct {
	Visible bool `json:"visible"`
}

func (handler *Handler) setDetail(writer http.ResponseWriter, request *http.Request) {
	var input detailInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	handler.state.SetDetailVisible(input.Visible)
	respond.OK(writer, handler.state.Snapshot())
}

// # Favorites

type favoriteView struct {
	ID        int   `json:"id"`
	Favorite  bool  `json:"favorite"`
	Favorites []int `json:"favorites"`
}

func (handler *Handler) toggleFavorite(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntParam(request, FieldID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	isFavorite := handler.state.ToggleFavorite(id)
	respond.OK(writer, favoriteView{
		ID:        id,
		Favorite:  isFavorite,
		Favorites: handler.state.Favorites(),
	})
}
