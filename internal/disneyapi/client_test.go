// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package disneyapi_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/toondex/internal/disneyapi"
)

// fakeAPI serves numbered pages of two records each. Page lastPage reports a
// null nextPage; failPage (when set) answers 500.
type fakeAPI struct {
	lastPage int
	failPage int
	requests atomic.Int32
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.requests.Add(1)

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page == f.failPage {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	next := "null"
	if page != f.lastPage {
		next = fmt.Sprintf(`"http://api/character?page=%d"`, page+1)
	}

	w.Header().Set("Content-Type", "application/json")
	fmt.Fprintf(w, `{"info":{"count":2,"totalPages":%d,"previousPage":null,"nextPage":%s},"data":[{"_id":%d,"name":"c%d-a","films":["F"]},{"_id":%d,"name":"c%d-b"}]}`,
		f.lastPage, next, page*10, page, page*10+1, page)
}

func newClient(t *testing.T, handler http.Handler, maxPages int) (*disneyapi.Client, *disneyapi.Metrics) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	metrics := disneyapi.NewMetrics(prometheus.NewRegistry())
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	client := disneyapi.NewClient(disneyapi.Options{
		BaseURL:  server.URL,
		PageSize: 50,
		MaxPages: maxPages,
	}, metrics, logger)

	return client, metrics
}

func TestFetchPage_SendsPageAndSize(t *testing.T) {
	var query string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Path + "?" + r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"info":{"count":1,"totalPages":7,"previousPage":null,"nextPage":null},"data":[]}`)
	})
	client, _ := newClient(t, handler, 10)

	page, err := client.FetchPage(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, "/character?page=3&pageSize=50", query)
	assert.Equal(t, 7, page.Info.TotalPages)
	assert.False(t, page.HasNext())
	assert.Empty(t, page.Data)
}

/*
TestFetchAll_StopsAtNullNextPage requests exactly four pages when the fourth
has no successor and keeps the records in page order.
*/
func TestFetchAll_StopsAtNullNextPage(t *testing.T) {
	api := &fakeAPI{lastPage: 4}
	client, metrics := newClient(t, api, 10)

	records, err := client.FetchAll(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int32(4), api.requests.Load())
	require.Len(t, records, 8)
	assert.Equal(t, "c1-a", records[0].Name)
	assert.Equal(t, "c4-b", records[7].Name)
	assert.Equal(t, float64(4), testutil.ToFloat64(metrics.PageRequests))
	assert.Equal(t, float64(8), testutil.ToFloat64(metrics.Records))
}

/*
TestFetchAll_CapsAtMaxPages never sends more than ten requests even though
every page announces a successor.
*/
func TestFetchAll_CapsAtMaxPages(t *testing.T) {
	api := &fakeAPI{lastPage: 1000}
	client, _ := newClient(t, api, 10)

	records, err := client.FetchAll(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int32(10), api.requests.Load())
	assert.Len(t, records, 20)
}

/*
TestFetchAll_FailureDiscardsEverything returns no records when page 3 fails.
*/
func TestFetchAll_FailureDiscardsEverything(t *testing.T) {
	api := &fakeAPI{lastPage: 5, failPage: 3}
	client, metrics := newClient(t, api, 10)

	records, err := client.FetchAll(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, disneyapi.ErrFetchFailed)
	assert.Nil(t, records)
	assert.Equal(t, int32(3), api.requests.Load())
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.PageFailures.WithLabelValues("status")))
}

func TestFetchPage_MalformedBodies(t *testing.T) {
	bodies := map[string]string{
		"not_json":     `<html>oops</html>`,
		"missing_info": `{"data":[]}`,
		"missing_data": `{"info":{"count":0,"totalPages":0,"previousPage":null,"nextPage":null}}`,
		"null_data":    `{"info":{"count":0,"totalPages":0,"previousPage":null,"nextPage":null},"data":null}`,
		"scalar_data":  `{"info":{"count":0,"totalPages":0,"previousPage":null,"nextPage":null},"data":42}`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = io.WriteString(w, body)
			})
			client, metrics := newClient(t, handler, 10)

			_, err := client.FetchPage(context.Background(), 1)

			assert.ErrorIs(t, err, disneyapi.ErrMalformedResponse)
			assert.Equal(t, float64(1), testutil.ToFloat64(metrics.PageFailures.WithLabelValues("malformed")))
		})
	}
}

func TestFetchPage_SingleRecordObject(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"info":{"count":1,"totalPages":1,"previousPage":null,"nextPage":null},"data":{"_id":308,"name":"Queen Arianna","tvShows":["Tangled: The Series"]}}`)
	})
	client, _ := newClient(t, handler, 10)

	page, err := client.FetchPage(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, 308, page.Data[0].ID)
	assert.Equal(t, []string{"Tangled: The Series"}, page.Data[0].TVShows)
}

func TestFetchPage_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	client := disneyapi.NewClient(disneyapi.Options{BaseURL: url, PageSize: 50, MaxPages: 10},
		disneyapi.NewMetrics(prometheus.NewRegistry()), slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := client.FetchPage(context.Background(), 1)
	assert.ErrorIs(t, err, disneyapi.ErrFetchFailed)
	assert.Error(t, client.Ping(context.Background()))
}

func TestPing(t *testing.T) {
	client, _ := newClient(t, &fakeAPI{lastPage: 1}, 10)
	assert.NoError(t, client.Ping(context.Background()))

	failing, _ := newClient(t, &fakeAPI{lastPage: 2, failPage: 1}, 10)
	assert.ErrorIs(t, failing.Ping(context.Background()), disneyapi.ErrFetchFailed)
}

/*
TestFetchPage_CallerContextBoundsRequest stops a hanging page request when
the caller's context ends.
*/
func TestFetchPage_CallerContextBoundsRequest(t *testing.T) {
	release := make(chan struct{})
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	client, _ := newClient(t, handler, 10)
	t.Cleanup(func() { close(release) })

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.FetchPage(ctx, 1)

	assert.ErrorIs(t, err, disneyapi.ErrFetchFailed)
	assert.ErrorIs(t, ctx.Err(), context.DeadlineExceeded)
}
