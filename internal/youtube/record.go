// Copyright (c) 2026 Tubecache. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package youtube

import "time"

// Record is the canonical, typed representation of one API resource,
// independent of the original nested JSON shape.
//
// It is a closed tagged union over the four resource kinds; the unexported
// method keeps external packages from adding variants.
type Record interface {
	// RecordKind returns the resource kind tag of this record.
	RecordKind() Kind
	// RecordID returns the remote platform's stable resource id.
	RecordID() string

	isRecord()
}

// ChannelRecord is the canonical form of one channel resource.
type ChannelRecord struct {
	ResourceID  string
	Title       string
	Description string
	CustomURL   string
	Language    string
	Country     string
	PublishedAt time.Time

	// UploadPlaylistID references the channel's upload playlist. It may be
	// empty; the playlist itself is resolved lazily, never here.
	UploadPlaylistID string

	ViewCount       int64
	CommentCount    int64
	SubscriberCount int64
	VideoCount      int64

	Tags []string
}

func (r *ChannelRecord) RecordKind() Kind { return KindChannel }
func (r *ChannelRecord) RecordID() string { return r.ResourceID }
func (r *ChannelRecord) isRecord()        {}

// PlaylistRecord is the canonical form of one playlist resource.
type PlaylistRecord struct {
	ResourceID  string
	ChannelID   string
	Title       string
	Description string
	Language    string
	PublishedAt time.Time

	// ItemCount is the server-declared number of items; the actual item rows
	// are ingested separately via playlistItem pages.
	ItemCount int64

	Tags []string
}

func (r *PlaylistRecord) RecordKind() Kind { return KindPlaylist }
func (r *PlaylistRecord) RecordID() string { return r.ResourceID }
func (r *PlaylistRecord) isRecord()        {}

// PlaylistItemRecord is the canonical form of one playlist item.
//
// It is a join-record: the embedded resourceId sub-object tells which video
// (or other resource) the item points at, but the normalizer never
// dereferences that target itself.
type PlaylistItemRecord struct {
	ResourceID  string
	PlaylistID  string
	Title       string
	Description string
	Position    int64
	PublishedAt time.Time

	// ReferencedKind and ReferencedID identify the resource the item wraps,
	// extracted from snippet.resourceId. ReferencedKind is normally
	// KindVideo.
	ReferencedKind Kind
	ReferencedID   string
}

func (r *PlaylistItemRecord) RecordKind() Kind { return KindPlaylistItem }
func (r *PlaylistItemRecord) RecordID() string { return r.ResourceID }
func (r *PlaylistItemRecord) isRecord()        {}

// VideoRecord is the canonical form of one video resource.
type VideoRecord struct {
	ResourceID  string
	ChannelID   string
	Title       string
	Description string
	PublishedAt time.Time

	// Duration is the parsed ISO-8601 interval, never the raw string.
	Duration time.Duration

	Language      string
	AudioLanguage string
	CategoryID    int

	ViewCount     int64
	LikeCount     int64
	DislikeCount  int64
	CommentCount  int64
	FavoriteCount int64

	Dimension  string
	Definition string
	Caption    bool

	// Tags is the union of the snippet's free-text tags and the
	// topic-category identifiers, lower-cased and deduplicated.
	Tags []string
}

func (r *VideoRecord) RecordKind() Kind { return KindVideo }
func (r *VideoRecord) RecordID() string { return r.ResourceID }
func (r *VideoRecord) isRecord()        {}
