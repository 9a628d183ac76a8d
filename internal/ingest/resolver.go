// Copyright (c) 2026 Tubecache. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package ingest

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/taibuivan/tubecache/internal/youtube"
)

// Resolver is the HTTP-backed RecordSource: it fetches a single resource by
// id and normalizes the first returned item.
//
// The Data API answers single-id lookups with a one-element list; an empty
// list means the id does not exist (or is private), which surfaces as
// [youtube.ErrNoData] so the graph can map it to a not-found.
type Resolver struct {
	fetcher youtube.Fetcher
}

func NewResolver(fetcher youtube.Fetcher) *Resolver {
	return &Resolver{fetcher: fetcher}
}

func (resolver *Resolver) ChannelRecord(context context.Context, id string) (*youtube.ChannelRecord, error) {
	record, err := resolver.resolve(context, youtube.KindChannel, id)
	if err != nil {
		return nil, err
	}
	return record.(*youtube.ChannelRecord), nil
}

func (resolver *Resolver) PlaylistRecord(context context.Context, id string) (*youtube.PlaylistRecord, error) {
	record, err := resolver.resolve(context, youtube.KindPlaylist, id)
	if err != nil {
		return nil, err
	}
	return record.(*youtube.PlaylistRecord), nil
}

func (resolver *Resolver) VideoRecord(context context.Context, id string) (*youtube.VideoRecord, error) {
	record, err := resolver.resolve(context, youtube.KindVideo, id)
	if err != nil {
		return nil, err
	}
	return record.(*youtube.VideoRecord), nil
}

func (resolver *Resolver) resolve(context context.Context, kind youtube.Kind, id string) (youtube.Record, error) {
	items, err := youtube.FetchAll(context, resolver.fetcher, kind, id)
	if err != nil {
		return nil, fmt.Errorf("resolve %s %s: %w", kind, id, err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("resolve %s %s: %w", kind, id, youtube.ErrNoData)
	}

	return youtube.Normalize(kind, items[0])
}

// collectionRecords fetches and normalizes every item of a paginated
// collection, returning normalized records alongside the raw payloads that
// failed normalization.
func collectionRecords(context context.Context, fetcher youtube.Fetcher, kind youtube.Kind, key string) ([]youtube.Record, []error, error) {
	items, err := youtube.FetchAll(context, fetcher, kind, key)
	if err != nil {
		return nil, nil, err
	}

	records := make([]youtube.Record, 0, len(items))
	var invalid []error
	for _, item := range items {
		record, err := youtube.Normalize(kind, item)
		if err != nil {
			invalid = append(invalid, err)
			continue
		}
		records = append(records, record)
	}

	return records, invalid, nil
}

// itemID best-effort extracts the id of a raw payload for diagnostics.
func itemID(raw json.RawMessage) string {
	var envelope struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return ""
	}
	return envelope.ID
}
