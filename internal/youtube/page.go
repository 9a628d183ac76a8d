// Copyright (c) 2026 Tubecache. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package youtube

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/taibuivan/tubecache/internal/platform/constants"
	"github.com/taibuivan/tubecache/internal/platform/ctxutil"
)

// Page is one decoded page of a Data API list response.
type Page struct {
	// Kind is the resource kind the page was fetched for.
	Kind Kind `json:"kind"`
	// Items holds the raw, un-normalized resource objects in arrival order.
	Items []json.RawMessage `json:"items"`
	// NextPageToken chains to the following page; empty on the last page.
	NextPageToken string `json:"next_page_token"`
	// TotalResults is the server-declared collection size (advisory only).
	TotalResults int `json:"total_results"`
}

// Fetcher issues a single paginated request for a resource kind and key.
//
// Implementations: [*Client] (HTTP), the Redis page cache decorator in
// internal/ingest, and synthetic fetchers in tests.
type Fetcher interface {
	FetchPage(ctx context.Context, kind Kind, key string, pageToken string) (*Page, error)
}

// FetchAll drains every page of a collection query, concatenating items in
// arrival order.
//
// # Termination
//
// The loop stops when the fetcher returns no continuation token, when a page
// carries zero items (defensive stop against server loops), or after
// [constants.APIMaxPages] pages.
//
// # Failure Policy
//
// A transient backend error aborts the current fetch and surfaces
// [ErrNoData]; the retry decision belongs to the caller. Fatal errors
// (quota, malformed request) propagate unchanged so the orchestrator can
// terminate the run.
func FetchAll(ctx context.Context, fetcher Fetcher, kind Kind, key string) ([]json.RawMessage, error) {
	var items []json.RawMessage
	pageToken := ""

	for pageCount := 0; pageCount < constants.APIMaxPages; pageCount++ {
		page, err := fetcher.FetchPage(ctx, kind, key, pageToken)
		if err != nil {
			if apiErr := AsAPIError(err); apiErr != nil && apiErr.IsTransient() {
				ctxutil.GetLogger(ctx).Warn("page_fetch_abandoned",
					slog.String("kind", kind.String()),
					slog.String("key", key),
					slog.Int("pages_retrieved", pageCount),
					slog.Any("error", err),
				)
				return nil, ErrNoData
			}
			return nil, err
		}

		// Zero items with a token would loop forever on a misbehaving server.
		if len(page.Items) == 0 {
			break
		}

		items = append(items, page.Items...)

		if page.NextPageToken == "" {
			break
		}
		pageToken = page.NextPageToken
	}

	return items, nil
}
