// Copyright (c) 2026 Tubecache. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package youtube implements the remote Data API boundary: a paginated fetcher,
a token-chained page aggregator, and the normalizer that turns raw JSON items
into canonical typed records.

Architecture:

  - Fetcher: one HTTP round-trip per page, error classification included.
  - Aggregator: FetchAll drains every page of a collection query.
  - Normalizer: per-kind attribute maps validate and flatten raw items.

Nothing in this package touches the entity store; persistence and recursive
resolution live in internal/catalog.
*/
package youtube

// Kind identifies one of the four ingestible resource kinds.
type Kind string

const (
	KindChannel      Kind = "channel"
	KindPlaylist     Kind = "playlist"
	KindPlaylistItem Kind = "playlistItem"
	KindVideo        Kind = "video"
)

// Valid reports whether k is one of the four supported kinds.
func (k Kind) Valid() bool {
	_, ok := endpoints[k]
	return ok
}

// String implements fmt.Stringer.
func (k Kind) String() string { return string(k) }

// endpoints maps each kind to its Data API collection path.
var endpoints = map[Kind]string{
	KindChannel:      "channels",
	KindPlaylist:     "playlists",
	KindPlaylistItem: "playlistItems",
	KindVideo:        "videos",
}

// defaultParts maps each kind to the field groups requested by default.
//
// These mirror the documented minimal surface: snippet+statistics+
// contentDetails(+topicDetails) for channels and videos, snippet+
// contentDetails for playlists, snippet only for playlist items.
var defaultParts = map[Kind]string{
	KindChannel:      "snippet,statistics,topicDetails,contentDetails",
	KindPlaylist:     "snippet,contentDetails",
	KindPlaylistItem: "snippet",
	KindVideo:        "snippet,contentDetails,statistics,topicDetails",
}

// keyParams maps each kind to the query parameter its key is sent under.
// Playlist items are looked up by their owning playlist, everything else by id.
var keyParams = map[Kind]string{
	KindChannel:      "id",
	KindPlaylist:     "id",
	KindPlaylistItem: "playlistId",
	KindVideo:        "id",
}

// paginatedKinds marks collection queries that can span multiple pages and
// therefore carry a maxResults parameter.
var paginatedKinds = map[Kind]bool{
	KindPlaylist:     true,
	KindPlaylistItem: true,
}
