// Copyright (c) 2026 Tubecache. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package youtube_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/tubecache/internal/youtube"
)

// scriptedFetcher replays a fixed sequence of pages keyed by page token.
type scriptedFetcher struct {
	pages map[string]*youtube.Page
	errs  map[string]error
	calls int
}

func (f *scriptedFetcher) FetchPage(_ context.Context, kind youtube.Kind, _ string, pageToken string) (*youtube.Page, error) {
	f.calls++
	if err, ok := f.errs[pageToken]; ok {
		return nil, err
	}
	page, ok := f.pages[pageToken]
	if !ok {
		return nil, fmt.Errorf("unexpected page token %q", pageToken)
	}
	return page, nil
}

// makeItems builds n distinct raw items with sequential ids starting at base.
func makeItems(base, n int) []json.RawMessage {
	items := make([]json.RawMessage, n)
	for i := range items {
		items[i] = json.RawMessage(fmt.Sprintf(`{"id": "item-%04d"}`, base+i))
	}
	return items
}

/*
TestFetchAll_MultiPage verifies that a 107-item collection split across
50/50/7 pages is drained completely, in arrival order, with one request per
page.
*/
func TestFetchAll_MultiPage(t *testing.T) {
	fetcher := &scriptedFetcher{
		pages: map[string]*youtube.Page{
			"":   {Kind: youtube.KindPlaylistItem, Items: makeItems(0, 50), NextPageToken: "p2", TotalResults: 107},
			"p2": {Kind: youtube.KindPlaylistItem, Items: makeItems(50, 50), NextPageToken: "p3", TotalResults: 107},
			"p3": {Kind: youtube.KindPlaylistItem, Items: makeItems(100, 7), TotalResults: 107},
		},
	}

	items, err := youtube.FetchAll(context.Background(), fetcher, youtube.KindPlaylistItem, "PLtest")
	require.NoError(t, err)

	// 1. Every item from every page, exactly once
	assert.Len(t, items, 107)
	assert.Equal(t, 3, fetcher.calls)

	// 2. Arrival order is preserved across page boundaries
	assert.JSONEq(t, `{"id": "item-0000"}`, string(items[0]))
	assert.JSONEq(t, `{"id": "item-0049"}`, string(items[49]))
	assert.JSONEq(t, `{"id": "item-0050"}`, string(items[50]))
	assert.JSONEq(t, `{"id": "item-0106"}`, string(items[106]))
}

/*
TestFetchAll_SinglePage verifies the common case: one page, no token, one
request.
*/
func TestFetchAll_SinglePage(t *testing.T) {
	fetcher := &scriptedFetcher{
		pages: map[string]*youtube.Page{
			"": {Kind: youtube.KindPlaylist, Items: makeItems(0, 3)},
		},
	}

	items, err := youtube.FetchAll(context.Background(), fetcher, youtube.KindPlaylist, "UCtest")
	require.NoError(t, err)
	assert.Len(t, items, 3)
	assert.Equal(t, 1, fetcher.calls)
}

/*
TestFetchAll_EmptyPageStops verifies the defensive stop: a page with zero
items ends the loop even when a continuation token is present.
*/
func TestFetchAll_EmptyPageStops(t *testing.T) {
	fetcher := &scriptedFetcher{
		pages: map[string]*youtube.Page{
			"": {Kind: youtube.KindPlaylistItem, NextPageToken: "loop"},
		},
	}

	items, err := youtube.FetchAll(context.Background(), fetcher, youtube.KindPlaylistItem, "PLtest")
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Equal(t, 1, fetcher.calls)
}

/*
TestFetchAll_TransientAbandons verifies that a transient backend failure
mid-pagination abandons the whole fetch with ErrNoData; partial item lists
are never returned.
*/
func TestFetchAll_TransientAbandons(t *testing.T) {
	fetcher := &scriptedFetcher{
		pages: map[string]*youtube.Page{
			"": {Kind: youtube.KindPlaylistItem, Items: makeItems(0, 50), NextPageToken: "p2"},
		},
		errs: map[string]error{
			"p2": &youtube.APIError{StatusCode: http.StatusServiceUnavailable, Reason: "backendError"},
		},
	}

	items, err := youtube.FetchAll(context.Background(), fetcher, youtube.KindPlaylistItem, "PLtest")

	assert.Nil(t, items)
	assert.ErrorIs(t, err, youtube.ErrNoData)
}

/*
TestFetchAll_FatalPropagates verifies that quota exhaustion surfaces the
structured API error unchanged so the orchestrator can terminate the run.
*/
func TestFetchAll_FatalPropagates(t *testing.T) {
	quotaErr := &youtube.APIError{StatusCode: http.StatusForbidden, Reason: "quotaExceeded"}
	fetcher := &scriptedFetcher{
		errs: map[string]error{"": quotaErr},
	}

	items, err := youtube.FetchAll(context.Background(), fetcher, youtube.KindVideo, "dQw4w9WgXcQ")

	assert.Nil(t, items)
	require.NotErrorIs(t, err, youtube.ErrNoData)
	assert.Same(t, quotaErr, youtube.AsAPIError(err))
	assert.True(t, youtube.IsFatal(err))
}
