// Copyright (c) 2026 Tubecache. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/time/rate"

	"github.com/taibuivan/tubecache/internal/platform/constants"
	"github.com/taibuivan/tubecache/internal/platform/ctxutil"
)

// Client is the HTTP implementation of [Fetcher] against the Data API.
//
// # Architecture
//
// One FetchPage call is exactly one GET against the kind's collection
// endpoint. Request shaping (parts, key parameter, page size) is driven by
// the per-kind tables in kinds.go, and every departure from a 200 response
// is classified into an [*APIError] so callers can apply the failure
// taxonomy without inspecting HTTP details.
//
// An outbound token bucket throttles requests below the per-key burst limit
// the API enforces; the Wait blocks honor context cancellation.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	limiter    *rate.Limiter
}

// NewClient builds a Data API client for the given base URL and API key.
//
// # Parameters
//   - httpClient: the transport to use; pass nil for a default client with
//     the standard request timeout.
func NewClient(httpClient *http.Client, baseURL string, apiKey string) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: constants.APIRequestTimeout}
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		limiter:    rate.NewLimiter(rate.Limit(constants.APIRequestsPerSecond), constants.APIRequestBurst),
	}
}

// listResponse is the wire shape of a successful list call. Items stay raw;
// decoding them is the normalizer's job.
type listResponse struct {
	Items         []json.RawMessage `json:"items"`
	NextPageToken string            `json:"nextPageToken"`
	PageInfo      struct {
		TotalResults int `json:"totalResults"`
	} `json:"pageInfo"`
}

// errorResponse is the wire shape of a failed call.
type errorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Errors  []struct {
			Reason string `json:"reason"`
		} `json:"errors"`
	} `json:"error"`
}

// FetchPage implements [Fetcher].
func (c *Client) FetchPage(ctx context.Context, kind Kind, key string, pageToken string) (*Page, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("youtube: unsupported kind %q", kind)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("youtube: rate limit wait: %w", err)
	}

	endpoint := c.baseURL + "/" + endpoints[kind]

	query := url.Values{}
	query.Set("key", c.apiKey)
	query.Set("part", defaultParts[kind])
	query.Set(keyParams[kind], key)
	if paginatedKinds[kind] {
		query.Set("maxResults", strconv.Itoa(constants.APIMaxPageSize))
	}
	if pageToken != "" {
		query.Set("pageToken", pageToken)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("youtube: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Network-level failures behave like a transient backend outage.
		ctxutil.GetLogger(ctx).Warn("api_request_failed",
			slog.String("kind", kind.String()),
			slog.String("endpoint", endpoints[kind]),
			slog.Any("error", err),
		)
		return nil, &APIError{StatusCode: http.StatusServiceUnavailable, Message: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, &APIError{StatusCode: http.StatusServiceUnavailable, Message: err.Error()}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, decodeAPIError(resp.StatusCode, body)
	}

	var decoded listResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("youtube: decode %s response: %w", endpoints[kind], err)
	}

	return &Page{
		Kind:          kind,
		Items:         decoded.Items,
		NextPageToken: decoded.NextPageToken,
		TotalResults:  decoded.PageInfo.TotalResults,
	}, nil
}

// maxResponseBytes bounds a single list response. A 50-item video page with
// every part stays well under 2 MiB.
const maxResponseBytes = 8 << 20

// decodeAPIError turns a non-200 response into a structured [*APIError].
// An undecodable error body still yields the status code, which is enough
// for the failure taxonomy.
func decodeAPIError(statusCode int, body []byte) *APIError {
	var decoded errorResponse
	if err := json.Unmarshal(body, &decoded); err != nil || decoded.Error.Code == 0 {
		return &APIError{StatusCode: statusCode, Message: http.StatusText(statusCode)}
	}

	reason := ""
	if len(decoded.Error.Errors) > 0 {
		reason = decoded.Error.Errors[0].Reason
	}

	return &APIError{
		StatusCode: statusCode,
		Reason:     reason,
		Message:    decoded.Error.Message,
	}
}
