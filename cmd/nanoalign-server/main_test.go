package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/nano-align/nanoalign-go/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouter(t *testing.T) {
	r, err := newRouter(config.Default())
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())

	rec = httptest.NewRecorder()
	body := strings.NewReader(`{"seq1": [0.1, 0.2], "seq2": [0.1, 0.2]}`)
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/align/score", body))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"score": 20}`, rec.Body.String())

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/align", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRouterInvalidVolumes(t *testing.T) {
	conf := config.Default()
	conf.Volumes = map[string]float64{"A": -1}
	_, err := newRouter(conf)
	require.Error(t, err)
}
