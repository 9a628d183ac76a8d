// Copyright (c) 2026 Tubecache. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import "time"

// Playlist is a stored YouTube playlist. Its owning channel always exists in
// the graph before the playlist row is committed.
type Playlist struct {
	ID          string    `json:"id"`
	ChannelID   string    `json:"channel_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	PublishedAt time.Time `json:"published_at"`
	Language    *string   `json:"language"`
	ItemCount   int64     `json:"item_count"`
	CreatedAt   time.Time `json:"created_at"`
	Tags        []string  `json:"tags,omitempty"`
}

// PlaylistFilter holds the parameters for a paginated playlist search.
type PlaylistFilter struct {
	ChannelID string // Restrict to one owning channel
	Query     string // Substring search against title
}

const (
	FieldPlaylistID = "playlist_id"
)
