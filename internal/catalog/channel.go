// Copyright (c) 2026 Tubecache. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package catalog implements the persistent entity graph: channels, playlists,
playlist items, videos, and tags, plus the get-or-import resolution engine
that keeps the graph referentially closed.

Architecture:

  - Entity files: one flat struct per stored entity, mirrored by a schema
    definition in internal/platform/database/schema.
  - Repository: the storage port; Postgres implementation split per entity.
  - Graph: cache-aside resolution, remote-record insertion, tag association.
  - Service/Handler: the read-only HTTP surface over the stored graph.

All writes flow through the Graph; the HTTP layer never mutates.
*/
package catalog

import "time"

// Channel is a stored YouTube channel.
type Channel struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	CustomURL        *string   `json:"custom_url"`
	Language         *string   `json:"language"`
	Country          *string   `json:"country"`
	UploadPlaylistID *string   `json:"upload_playlist_id"`
	PublishedAt      time.Time `json:"published_at"`
	VideoCount       int64     `json:"video_count"`
	ViewCount        int64     `json:"view_count"`
	CommentCount     int64     `json:"comment_count"`
	SubscriberCount  int64     `json:"subscriber_count"`
	CreatedAt        time.Time `json:"created_at"`
	Tags             []string  `json:"tags,omitempty"`
}

// ChannelFilter holds the parameters for a paginated channel search.
type ChannelFilter struct {
	Query string // Substring search against title and customurl
	Tag   string // Exact canonical tag match
}

// Global field names for validation
const (
	FieldChannelID = "channel_id"
)
