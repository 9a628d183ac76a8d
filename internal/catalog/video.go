// Copyright (c) 2026 Tubecache. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import "time"

// Video is a stored YouTube video. Its owning channel always exists in the
// graph before the video row is committed.
type Video struct {
	ID              string    `json:"id"`
	ChannelID       string    `json:"channel_id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	PublishedAt     time.Time `json:"published_at"`
	DurationSeconds int64     `json:"duration_seconds"`
	Language        *string   `json:"language"`
	AudioLanguage   *string   `json:"audio_language"`
	CategoryID      int       `json:"category_id"`
	ViewCount       int64     `json:"view_count"`
	LikeCount       int64     `json:"like_count"`
	DislikeCount    int64     `json:"dislike_count"`
	CommentCount    int64     `json:"comment_count"`
	FavoriteCount   int64     `json:"favorite_count"`
	Dimension       *string   `json:"dimension"`
	Definition      *string   `json:"definition"`
	Caption         bool      `json:"caption"`
	CreatedAt       time.Time `json:"created_at"`
	Tags            []string  `json:"tags,omitempty"`
}

// VideoFilter holds the parameters for a paginated video search.
type VideoFilter struct {
	ChannelID  string // Restrict to one owning channel
	PlaylistID string // Restrict to members of one playlist
	Tag        string // Exact canonical tag match
	Query      string // Substring search against title
}

const (
	FieldVideoID = "video_id"
)
