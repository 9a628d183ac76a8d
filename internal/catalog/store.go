// Copyright (c) 2026 Tubecache. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"

	"github.com/taibuivan/tubecache/internal/youtube"
)

// Repository is the storage port for the entity graph.
//
// Create methods are idempotent: inserting an id that already exists returns
// dberr.ErrConflict and leaves the committed row untouched, never an error
// that loses data or a duplicate.
//
// Create methods commit the entity row together with its tag rows and tag
// associations (taken from the entity's Tags field) as one unit of work: a
// failed tag write leaves no entity row behind, so a later import retries
// the whole commit.
type Repository interface {
	// Channels
	GetChannel(context context.Context, id string) (*Channel, error)
	CreateChannel(context context.Context, c *Channel) error
	SetChannelUploads(context context.Context, id string, uploadPlaylistID string) error
	ListChannels(context context.Context, f ChannelFilter, limit, offset int) ([]*Channel, int, error)

	// Playlists
	GetPlaylist(context context.Context, id string) (*Playlist, error)
	CreatePlaylist(context context.Context, p *Playlist) error
	ListPlaylists(context context.Context, f PlaylistFilter, limit, offset int) ([]*Playlist, int, error)

	// Playlist items
	GetPlaylistItem(context context.Context, id string) (*PlaylistItem, error)
	CreatePlaylistItem(context context.Context, item *PlaylistItem) error
	ListPlaylistItems(context context.Context, playlistID string, limit, offset int) ([]*PlaylistItem, int, error)

	// Videos
	GetVideo(context context.Context, id string) (*Video, error)
	CreateVideo(context context.Context, v *Video) error
	ListVideos(context context.Context, f VideoFilter, limit, offset int) ([]*Video, int, error)

	// Tags
	ResourceTags(context context.Context, kind youtube.Kind, resourceID string) ([]string, error)
	ListTags(context context.Context, f TagFilter, limit, offset int) ([]*Tag, int, error)
}
