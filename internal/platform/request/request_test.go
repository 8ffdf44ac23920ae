// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package requestutil_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/toondex/internal/platform/apperr"
	requestutil "github.com/taibuivan/toondex/internal/platform/request"
)

/*
TestIntParam reads a route parameter through the chi router.
*/
func TestIntParam(t *testing.T) {
	tests := []struct {
		path    string
		want    int
		wantErr bool
	}{
		{"/items/42", 42, false},
		{"/items/-3", -3, false},
		{"/items/abc", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			var (
				got    int
				err    error
				called bool
			)

			router := chi.NewRouter()
			router.Get("/items/{id}", func(w http.ResponseWriter, r *http.Request) {
				called = true
				assert.Equal(t, chi.URLParam(r, "id"), requestutil.Param(r, "id"))
				got, err = requestutil.IntParam(r, "id")
			})
			router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, tt.path, nil))

			require.True(t, called)
			if tt.wantErr {
				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, "id", ae.Details[0].Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
