// Copyright (c) 2026 Tubecache. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/taibuivan/tubecache/internal/platform/apperr"
	"github.com/taibuivan/tubecache/internal/platform/dberr"
	"github.com/taibuivan/tubecache/internal/youtube"
	"github.com/taibuivan/tubecache/pkg/pointer"
)

// RecordSource resolves a resource id to its normalized remote record.
// The HTTP-backed implementation lives in internal/ingest.
type RecordSource interface {
	ChannelRecord(context context.Context, id string) (*youtube.ChannelRecord, error)
	PlaylistRecord(context context.Context, id string) (*youtube.PlaylistRecord, error)
	VideoRecord(context context.Context, id string) (*youtube.VideoRecord, error)
}

// Graph is the get-or-import engine over the stored entity graph.
//
// # Architecture
//
// Every Ensure method follows the same cache-aside sequence:
//
//  1. Local store lookup; a hit is returned as-is, never refreshed.
//  2. Remote fetch through the RecordSource on a miss.
//  3. Parent resolution before the entity's own insert, so a committed row
//     never references an absent parent.
//  4. Idempotent insert committing the row and its tag associations as one
//     unit of work; on a conflict the concurrently-committed winning row is
//     re-read and returned.
//
// One import run shares a single [*Import] so an entity resolved once (the
// owning channel of five hundred videos, say) is never re-resolved.
type Graph struct {
	repo   Repository
	source RecordSource
	logger *slog.Logger
}

func NewGraph(repo Repository, source RecordSource, logger *slog.Logger) *Graph {
	return &Graph{
		repo:   repo,
		source: source,
		logger: logger,
	}
}

// visitKey identifies one resolved entity within a run.
type visitKey struct {
	kind youtube.Kind
	id   string
}

// Import is one run's view of the graph, memoizing every resolution.
// It is not safe for concurrent use; each run owns exactly one.
type Import struct {
	graph   *Graph
	visited map[visitKey]any
}

// Begin starts a new import run with an empty memo.
func (graph *Graph) Begin() *Import {
	return &Import{
		graph:   graph,
		visited: make(map[visitKey]any),
	}
}

// EnsureChannel returns the stored channel, importing it first if absent.
func (run *Import) EnsureChannel(context context.Context, id string) (*Channel, error) {
	key := visitKey{kind: youtube.KindChannel, id: id}
	if cached, ok := run.visited[key]; ok {
		return cached.(*Channel), nil
	}

	channel, err := run.graph.repo.GetChannel(context, id)
	if err == nil {
		run.visited[key] = channel
		return channel, nil
	}
	if !dberr.IsNotFound(err) {
		return nil, err
	}

	record, err := run.graph.source.ChannelRecord(context, id)
	if err != nil {
		return nil, sourceError(youtube.KindChannel, id, err)
	}

	channel = newChannel(record)
	if err := run.graph.repo.CreateChannel(context, channel); err != nil {
		if !dberr.IsConflict(err) {
			return nil, err
		}
		// Lost the insert race; the winning row is authoritative.
		if channel, err = run.graph.repo.GetChannel(context, id); err != nil {
			return nil, err
		}
	}

	run.graph.logger.Info("channel_imported",
		slog.String("channel_id", id),
		slog.String("title", channel.Title),
	)

	run.visited[key] = channel
	return channel, nil
}

// EnsurePlaylist returns the stored playlist, importing it (and its owning
// channel) first if absent.
func (run *Import) EnsurePlaylist(context context.Context, id string) (*Playlist, error) {
	key := visitKey{kind: youtube.KindPlaylist, id: id}
	if cached, ok := run.visited[key]; ok {
		return cached.(*Playlist), nil
	}

	playlist, err := run.graph.repo.GetPlaylist(context, id)
	if err == nil {
		run.visited[key] = playlist
		return playlist, nil
	}
	if !dberr.IsNotFound(err) {
		return nil, err
	}

	record, err := run.graph.source.PlaylistRecord(context, id)
	if err != nil {
		return nil, sourceError(youtube.KindPlaylist, id, err)
	}

	// Parent first: the owning channel must be committed before the playlist.
	if _, err := run.EnsureChannel(context, record.ChannelID); err != nil {
		return nil, fmt.Errorf("resolve owning channel of playlist %s: %w", id, err)
	}

	playlist = newPlaylist(record)
	if err := run.graph.repo.CreatePlaylist(context, playlist); err != nil {
		if !dberr.IsConflict(err) {
			return nil, err
		}
		if playlist, err = run.graph.repo.GetPlaylist(context, id); err != nil {
			return nil, err
		}
	}

	run.graph.logger.Info("playlist_imported",
		slog.String("playlist_id", id),
		slog.String("channel_id", playlist.ChannelID),
	)

	run.visited[key] = playlist
	return playlist, nil
}

// EnsureVideo returns the stored video, importing it (and its owning
// channel) first if absent.
func (run *Import) EnsureVideo(context context.Context, id string) (*Video, error) {
	key := visitKey{kind: youtube.KindVideo, id: id}
	if cached, ok := run.visited[key]; ok {
		return cached.(*Video), nil
	}

	video, err := run.graph.repo.GetVideo(context, id)
	if err == nil {
		run.visited[key] = video
		return video, nil
	}
	if !dberr.IsNotFound(err) {
		return nil, err
	}

	record, err := run.graph.source.VideoRecord(context, id)
	if err != nil {
		return nil, sourceError(youtube.KindVideo, id, err)
	}

	if _, err := run.EnsureChannel(context, record.ChannelID); err != nil {
		return nil, fmt.Errorf("resolve owning channel of video %s: %w", id, err)
	}

	video = newVideo(record)
	if err := run.graph.repo.CreateVideo(context, video); err != nil {
		if !dberr.IsConflict(err) {
			return nil, err
		}
		if video, err = run.graph.repo.GetVideo(context, id); err != nil {
			return nil, err
		}
	}

	run.visited[key] = video
	return video, nil
}

// AddPlaylistItem materializes one membership edge from an already-fetched
// record: both the playlist and the referenced video are resolved before the
// edge row commits.
//
// Items referencing anything but a video are skipped with [ErrSkippedItem].
func (run *Import) AddPlaylistItem(context context.Context, record *youtube.PlaylistItemRecord) (*PlaylistItem, error) {
	if record.ReferencedKind != youtube.KindVideo {
		return nil, ErrSkippedItem
	}

	if _, err := run.EnsurePlaylist(context, record.PlaylistID); err != nil {
		return nil, fmt.Errorf("resolve playlist of item %s: %w", record.ResourceID, err)
	}
	if _, err := run.EnsureVideo(context, record.ReferencedID); err != nil {
		return nil, fmt.Errorf("resolve video of item %s: %w", record.ResourceID, err)
	}

	item := newPlaylistItem(record)
	if err := run.graph.repo.CreatePlaylistItem(context, item); err != nil {
		if !dberr.IsConflict(err) {
			return nil, err
		}
		return run.graph.repo.GetPlaylistItem(context, record.ResourceID)
	}

	return item, nil
}

// EnsureVideoRecord commits an already-fetched video record without a second
// remote round-trip. Used by the orchestrator, which fetches videos in the
// run's page stream.
func (run *Import) EnsureVideoRecord(context context.Context, record *youtube.VideoRecord) (*Video, error) {
	key := visitKey{kind: youtube.KindVideo, id: record.ResourceID}
	if cached, ok := run.visited[key]; ok {
		return cached.(*Video), nil
	}

	video, err := run.graph.repo.GetVideo(context, record.ResourceID)
	if err == nil {
		run.visited[key] = video
		return video, nil
	}
	if !dberr.IsNotFound(err) {
		return nil, err
	}

	if _, err := run.EnsureChannel(context, record.ChannelID); err != nil {
		return nil, fmt.Errorf("resolve owning channel of video %s: %w", record.ResourceID, err)
	}

	video = newVideo(record)
	if err := run.graph.repo.CreateVideo(context, video); err != nil {
		if !dberr.IsConflict(err) {
			return nil, err
		}
		if video, err = run.graph.repo.GetVideo(context, record.ResourceID); err != nil {
			return nil, err
		}
	}

	run.visited[key] = video
	return video, nil
}

// ErrSkippedItem marks a playlist item whose referenced resource kind is not
// materialized in the graph.
var ErrSkippedItem = errors.New("catalog: playlist item references a non-video resource")

// sourceError classifies a remote resolution failure: an id the API has no
// data for becomes a not-found, everything else passes through for the
// orchestrator's failure taxonomy.
func sourceError(kind youtube.Kind, id string, err error) error {
	if errors.Is(err, youtube.ErrNoData) || dberr.IsNotFound(err) {
		return apperr.NotFound(fmt.Sprintf("%s %s", kind, id))
	}
	return err
}

// # Record Conversion

func newChannel(record *youtube.ChannelRecord) *Channel {
	return &Channel{
		ID:               record.ResourceID,
		Title:            record.Title,
		Description:      record.Description,
		CustomURL:        pointer.OrNil(record.CustomURL),
		Language:         pointer.OrNil(record.Language),
		Country:          pointer.OrNil(record.Country),
		UploadPlaylistID: pointer.OrNil(record.UploadPlaylistID),
		PublishedAt:      record.PublishedAt,
		VideoCount:       record.VideoCount,
		ViewCount:        record.ViewCount,
		CommentCount:     record.CommentCount,
		SubscriberCount:  record.SubscriberCount,
		Tags:             record.Tags,
	}
}

func newPlaylist(record *youtube.PlaylistRecord) *Playlist {
	return &Playlist{
		ID:          record.ResourceID,
		ChannelID:   record.ChannelID,
		Title:       record.Title,
		Description: record.Description,
		PublishedAt: record.PublishedAt,
		Language:    pointer.OrNil(record.Language),
		ItemCount:   record.ItemCount,
		Tags:        record.Tags,
	}
}

func newPlaylistItem(record *youtube.PlaylistItemRecord) *PlaylistItem {
	return &PlaylistItem{
		ID:          record.ResourceID,
		PlaylistID:  record.PlaylistID,
		VideoID:     record.ReferencedID,
		Title:       record.Title,
		Description: record.Description,
		Position:    record.Position,
		PublishedAt: record.PublishedAt,
	}
}

func newVideo(record *youtube.VideoRecord) *Video {
	return &Video{
		ID:              record.ResourceID,
		ChannelID:       record.ChannelID,
		Title:           record.Title,
		Description:     record.Description,
		PublishedAt:     record.PublishedAt,
		DurationSeconds: int64(record.Duration.Seconds()),
		Language:        pointer.OrNil(record.Language),
		AudioLanguage:   pointer.OrNil(record.AudioLanguage),
		CategoryID:      record.CategoryID,
		ViewCount:       record.ViewCount,
		LikeCount:       record.LikeCount,
		DislikeCount:    record.DislikeCount,
		CommentCount:    record.CommentCount,
		FavoriteCount:   record.FavoriteCount,
		Dimension:       pointer.OrNil(record.Dimension),
		Definition:      pointer.OrNil(record.Definition),
		Caption:         record.Caption,
		Tags:            record.Tags,
	}
}
