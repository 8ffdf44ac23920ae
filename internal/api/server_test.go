// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/toondex/internal/api"
	"github.com/taibuivan/toondex/internal/character"
	"github.com/taibuivan/toondex/internal/disneyapi"
	"github.com/taibuivan/toondex/internal/explorer"
	"github.com/taibuivan/toondex/internal/platform/config"
)

type staticFetcher struct{}

func (staticFetcher) FetchPage(ctx context.Context, page int) (disneyapi.Page, error) {
	return disneyapi.Page{}, errors.New("not used")
}

func (staticFetcher) FetchAll(ctx context.Context) ([]character.Character, error) {
	return []character.Character{{ID: 1, Name: "Stitch"}}, nil
}

func newServer(t *testing.T, upstream error) *api.Server {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	registry := prometheus.NewRegistry()
	disneyapi.NewMetrics(registry)

	service := explorer.NewService(staticFetcher{}, explorer.NewState(50), logger)
	require.NoError(t, service.LoadAll(ctx))

	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckUpstream: func(ctx context.Context) error { return upstream },
	}, logger)

	cfg := &config.Config{ServerPort: "0", Environment: "test"}
	return api.NewServer(ctx, cfg, logger, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Metrics:   promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		Explorer:  explorer.NewHandler(service),
	})
}

func get(server *api.Server, path string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	server.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, path, nil))
	return recorder
}

func TestServer_Health(t *testing.T) {
	recorder := get(newServer(t, nil), "/health")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"data":{"status":"ok"}}`, recorder.Body.String())
}

func TestServer_Readiness(t *testing.T) {
	recorder := get(newServer(t, nil), "/ready")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"ready"`)

	recorder = get(newServer(t, errors.New("dial tcp: refused")), "/ready")
	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"degraded"`)
	assert.Contains(t, recorder.Body.String(), "dial tcp: refused")
}

func TestServer_ExplorerMountedWithRequestID(t *testing.T) {
	recorder := get(newServer(t, nil), "/api/v1/explorer/characters")

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Stitch")
	assert.NotEmpty(t, recorder.Header().Get("X-Request-ID"))
}

func TestServer_Metrics(t *testing.T) {
	recorder := get(newServer(t, nil), "/metrics")

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "toondex_upstream_page_requests_total")
}
