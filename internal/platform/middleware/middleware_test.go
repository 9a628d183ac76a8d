// Copyright (c) 2026 Tubecache. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/tubecache/internal/platform/constants"
	"github.com/taibuivan/tubecache/internal/platform/middleware"
)

// # Config Double

// fakeConfig satisfies middleware.AppConfig with fixed answers.
type fakeConfig struct {
	development bool
	origins     []string
}

func (cfg *fakeConfig) IsDevelopment() bool      { return cfg.development }
func (cfg *fakeConfig) AllowedOrigins() []string { return cfg.origins }

// corsRequest runs a GET with the given Origin header through the CORS
// middleware and returns the recorded response.
func corsRequest(t *testing.T, cfg *fakeConfig, origin string) *httptest.ResponseRecorder {
	t.Helper()

	handler := middleware.CORS(cfg)(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writer.WriteHeader(http.StatusOK)
	}))

	request := httptest.NewRequest(http.MethodGet, "/v1/channels", nil)
	if origin != "" {
		request.Header.Set(constants.HeaderOrigin, origin)
	}

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	return recorder
}

/*
TestCORS_Development verifies that development mode reflects any origin back
to the client.
*/
func TestCORS_Development(t *testing.T) {
	cfg := &fakeConfig{development: true}

	recorder := corsRequest(t, cfg, "http://localhost:3000")

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "http://localhost:3000", recorder.Header().Get("Access-Control-Allow-Origin"))
}

/*
TestCORS_ProductionSuffix verifies that production mode allows first-party
origins by domain suffix.
*/
func TestCORS_ProductionSuffix(t *testing.T) {
	cfg := &fakeConfig{}

	recorder := corsRequest(t, cfg, "https://app.tubecache.app")

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "https://app.tubecache.app", recorder.Header().Get("Access-Control-Allow-Origin"))
}

/*
TestCORS_ProductionExtraOrigin verifies that an origin configured through
EXTRA_ORIGINS is allowed in production by exact match.
*/
func TestCORS_ProductionExtraOrigin(t *testing.T) {
	cfg := &fakeConfig{origins: []string{"https://staging.example.com"}}

	// 1. The configured origin passes
	recorder := corsRequest(t, cfg, "https://staging.example.com")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "https://staging.example.com", recorder.Header().Get("Access-Control-Allow-Origin"))

	// 2. A prefix of it does not: matching is exact, not fuzzy
	recorder = corsRequest(t, cfg, "https://staging.example.co")
	assert.Empty(t, recorder.Header().Get("Access-Control-Allow-Origin"))
}

/*
TestCORS_ProductionRejectsUnknown verifies that production mode withholds CORS
headers from origins outside the suffix rule and the configured list, while
still serving the request itself.
*/
func TestCORS_ProductionRejectsUnknown(t *testing.T) {
	cfg := &fakeConfig{origins: []string{"https://staging.example.com"}}

	recorder := corsRequest(t, cfg, "https://evil.example.net")

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Empty(t, recorder.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, recorder.Header().Get("Access-Control-Allow-Methods"))
}
