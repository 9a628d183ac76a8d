// Copyright (c) 2026 Tubecache. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import "time"

// PlaylistItem is a stored membership record: one position of one video
// inside one playlist. Both sides of the edge exist before the row commits.
//
// Only video references are materialized; playlist items pointing at other
// resource kinds are skipped during import.
type PlaylistItem struct {
	ID          string    `json:"id"`
	PlaylistID  string    `json:"playlist_id"`
	VideoID     string    `json:"video_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Position    int64     `json:"position"`
	PublishedAt time.Time `json:"published_at"`
	CreatedAt   time.Time `json:"created_at"`
}

const (
	FieldItemID = "item_id"
)
