// Copyright (c) 2026 Tubecache. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package youtube

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for the remote API boundary.
var (
	// ErrNoData is surfaced by the aggregator when a page fetch is abandoned
	// and no items could be retrieved for the current query.
	ErrNoData = errors.New("youtube: no data retrieved")
)

// APIError is a structured error response from the Data API.
//
// # Taxonomy
//
// The ingestion core distinguishes three classes:
//   - Quota/authorization failures are fatal for the whole run.
//   - Malformed-request failures are fatal for the current fetch (a caller defect).
//   - Backend failures are transient; the resource may be retried later.
type APIError struct {
	// StatusCode is the HTTP status returned by the API.
	StatusCode int
	// Reason is the machine-readable reason of the first error entry
	// (e.g. "quotaExceeded", "backendError").
	Reason string
	// Message is the human-readable message from the API.
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("youtube: api error %d (%s): %s", e.StatusCode, e.Reason, e.Message)
	}
	return fmt.Sprintf("youtube: api error %d: %s", e.StatusCode, e.Message)
}

// quotaReasons are the 403 reasons that exhaust or forbid further API usage.
var quotaReasons = map[string]bool{
	"quotaExceeded":       true,
	"dailyLimitExceeded":  true,
	"rateLimitExceeded":   true,
	"accessNotConfigured": true,
	"forbidden":           true,
	"keyInvalid":          true,
}

// IsQuota reports whether e is a quota or authorization failure.
// These cannot be worked around by retrying; the run must stop.
func (e *APIError) IsQuota() bool {
	if e.StatusCode == http.StatusUnauthorized {
		return true
	}
	return e.StatusCode == http.StatusForbidden && (e.Reason == "" || quotaReasons[e.Reason])
}

// IsTransient reports whether e is a temporary backend condition.
// 503 is the "common backend error" the API emits under load.
func (e *APIError) IsTransient() bool {
	switch e.StatusCode {
	case http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusTooManyRequests:
		return true
	}
	return e.Reason == "backendError"
}

// IsBadRequest reports whether e is a malformed-request failure: a
// programming or configuration defect in the caller, never retried.
func (e *APIError) IsBadRequest() bool {
	return e.StatusCode == http.StatusBadRequest
}

// AsAPIError extracts an [*APIError] from err's chain, or nil.
func AsAPIError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return nil
}

// IsFatal reports whether err must terminate an entire ingestion run
// (quota/authorization exhaustion or a malformed request).
func IsFatal(err error) bool {
	apiErr := AsAPIError(err)
	if apiErr == nil {
		return false
	}
	return apiErr.IsQuota() || apiErr.IsBadRequest()
}
