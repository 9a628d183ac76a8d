// Copyright (c) 2026 Tubecache. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package youtube_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/tubecache/internal/youtube"
)

/*
TestAPIError_Taxonomy verifies the three-way failure classification that
drives orchestration: fatal quota errors, fatal bad requests, and
retry-later transients.
*/
func TestAPIError_Taxonomy(t *testing.T) {
	tests := []struct {
		name          string
		err           *youtube.APIError
		wantQuota     bool
		wantTransient bool
		wantBadReq    bool
	}{
		{
			name:      "quota exceeded",
			err:       &youtube.APIError{StatusCode: http.StatusForbidden, Reason: "quotaExceeded"},
			wantQuota: true,
		},
		{
			name:      "daily limit",
			err:       &youtube.APIError{StatusCode: http.StatusForbidden, Reason: "dailyLimitExceeded"},
			wantQuota: true,
		},
		{
			name:      "invalid key",
			err:       &youtube.APIError{StatusCode: http.StatusForbidden, Reason: "keyInvalid"},
			wantQuota: true,
		},
		{
			name:      "unauthorized",
			err:       &youtube.APIError{StatusCode: http.StatusUnauthorized},
			wantQuota: true,
		},
		{
			name:      "forbidden without reason",
			err:       &youtube.APIError{StatusCode: http.StatusForbidden},
			wantQuota: true,
		},
		{
			name:          "backend error",
			err:           &youtube.APIError{StatusCode: http.StatusServiceUnavailable, Reason: "backendError"},
			wantTransient: true,
		},
		{
			name:          "internal error",
			err:           &youtube.APIError{StatusCode: http.StatusInternalServerError},
			wantTransient: true,
		},
		{
			name:          "too many requests",
			err:           &youtube.APIError{StatusCode: http.StatusTooManyRequests},
			wantTransient: true,
		},
		{
			name:       "bad request",
			err:        &youtube.APIError{StatusCode: http.StatusBadRequest, Reason: "invalidPageToken"},
			wantBadReq: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantQuota, tc.err.IsQuota())
			assert.Equal(t, tc.wantTransient, tc.err.IsTransient())
			assert.Equal(t, tc.wantBadReq, tc.err.IsBadRequest())
		})
	}
}

/*
TestIsFatal verifies run-termination classification, including errors
wrapped further up the call chain.
*/
func TestIsFatal(t *testing.T) {
	quota := &youtube.APIError{StatusCode: http.StatusForbidden, Reason: "quotaExceeded"}
	transient := &youtube.APIError{StatusCode: http.StatusServiceUnavailable}

	// 1. Quota and bad-request are fatal, transients are not
	assert.True(t, youtube.IsFatal(quota))
	assert.True(t, youtube.IsFatal(&youtube.APIError{StatusCode: http.StatusBadRequest}))
	assert.False(t, youtube.IsFatal(transient))

	// 2. Wrapping is transparent
	assert.True(t, youtube.IsFatal(fmt.Errorf("resolve channel: %w", quota)))

	// 3. Non-API errors are never fatal for the run
	assert.False(t, youtube.IsFatal(errors.New("connection reset")))
	assert.False(t, youtube.IsFatal(youtube.ErrNoData))
	assert.False(t, youtube.IsFatal(nil))
}

/*
TestAsAPIError verifies extraction through wrapped chains.
*/
func TestAsAPIError(t *testing.T) {
	apiErr := &youtube.APIError{StatusCode: http.StatusForbidden, Reason: "quotaExceeded"}

	assert.Same(t, apiErr, youtube.AsAPIError(apiErr))
	assert.Same(t, apiErr, youtube.AsAPIError(fmt.Errorf("wrapped: %w", apiErr)))
	assert.Nil(t, youtube.AsAPIError(errors.New("plain")))
	assert.Nil(t, youtube.AsAPIError(nil))
}
