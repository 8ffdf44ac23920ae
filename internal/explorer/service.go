// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package explorer

import (
	"context"
	"log/slog"

	"github.com/taibuivan/toondex/internal/character"
	"github.com/taibuivan/toondex/internal/disneyapi"
	"github.com/taibuivan/toondex/internal/platform/apperr"
)

// Fetcher retrieves character records from the upstream API.
type Fetcher interface {
	FetchPage(ctx context.Context, page int) (disneyapi.Page, error)
	FetchAll(ctx context.Context) ([]character.Character, error)
}

// Service runs fetches and commits their outcome to the session state.
//
// Network calls happen outside the state lock; only the lifecycle transitions
// lock. Overlapping fetches are not coordinated and the last one to settle
// wins.
type Service struct {
	fetcher Fetcher
	state   *State
	logger  *slog.Logger
}

// NewService wires a fetcher to a session state.
func NewService(fetcher Fetcher, state *State, logger *slog.Logger) *Service {
	return &Service{
		fetcher: fetcher,
		state:   state,
		logger:  logger,
	}
}

// State returns the session this service commits to.
func (service *Service) State() *State {
	return service.state
}

/*
LoadPage fetches one page of the listing and replaces all records with it.

On failure the previous records stay in place and the state carries the
error message.

Returns:
  - error: *apperr.AppError (502 UPSTREAM_FAILED) on fetch failure
*/
func (service *Service) LoadPage(ctx context.Context, page int) error {
	service.state.BeginFetch()

	result, err := service.fetcher.FetchPage(ctx, page)
	if err != nil {
		return service.fail(ctx, err, slog.Int("page", page))
	}

	service.state.CompletePage(result.Data, result.Info.TotalPages)

	service.logger.InfoContext(ctx, "explorer_page_loaded",
		slog.Int("page", page),
		slog.Int("records", len(result.Data)),
		slog.Int("remote_total_pages", result.Info.TotalPages),
	)
	return nil
}

/*
LoadAll fetches the whole collection and replaces all records with it.

A failure on any page commits nothing; the previous records stay in place.

Returns:
  - error: *apperr.AppError (502 UPSTREAM_FAILED) on fetch failure
*/
func (service *Service) LoadAll(ctx context.Context) error {
	service.state.BeginFetch()

	records, err := service.fetcher.FetchAll(ctx)
	if err != nil {
		return service.fail(ctx, err)
	}

	service.state.CompleteAll(records)

	service.logger.InfoContext(ctx, "explorer_fetch_completed", slog.Int("records", len(records)))
	return nil
}

func (service *Service) fail(ctx context.Context, err error, attrs ...any) error {
	service.state.FailFetch(err)
	message := fetchErrorMessage(err)

	service.logger.WarnContext(ctx, "explorer_fetch_failed", append(attrs, slog.String("error", message))...)
	return apperr.BadGateway(message, err)
}
