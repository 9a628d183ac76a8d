// Copyright (c) 2026 Tubecache. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog_test

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/tubecache/internal/catalog"
	"github.com/taibuivan/tubecache/internal/platform/dberr"
	"github.com/taibuivan/tubecache/internal/youtube"
)

// memoryRepository is an in-memory Repository double that records the order
// of inserts so tests can assert parent-before-child commits.
type memoryRepository struct {
	channels  map[string]*catalog.Channel
	playlists map[string]*catalog.Playlist
	items     map[string]*catalog.PlaylistItem
	videos    map[string]*catalog.Video
	tags      map[string]bool
	relations map[string][]string // "<kind>/<id>" -> tags

	inserts []string // "<kind>:<id>" in commit order
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{
		channels:  map[string]*catalog.Channel{},
		playlists: map[string]*catalog.Playlist{},
		items:     map[string]*catalog.PlaylistItem{},
		videos:    map[string]*catalog.Video{},
		tags:      map[string]bool{},
		relations: map[string][]string{},
	}
}

func (r *memoryRepository) GetChannel(_ context.Context, id string) (*catalog.Channel, error) {
	if c, ok := r.channels[id]; ok {
		return c, nil
	}
	return nil, dberr.ErrNotFound
}

func (r *memoryRepository) CreateChannel(_ context.Context, c *catalog.Channel) error {
	if _, ok := r.channels[c.ID]; ok {
		return dberr.ErrConflict
	}
	r.channels[c.ID] = c
	r.inserts = append(r.inserts, "channel:"+c.ID)
	r.commitTags(youtube.KindChannel, c.ID, c.Tags)
	return nil
}

func (r *memoryRepository) SetChannelUploads(_ context.Context, id string, uploads string) error {
	c, ok := r.channels[id]
	if !ok {
		return dberr.ErrNotFound
	}
	c.UploadPlaylistID = &uploads
	return nil
}

func (r *memoryRepository) ListChannels(_ context.Context, _ catalog.ChannelFilter, _, _ int) ([]*catalog.Channel, int, error) {
	return nil, 0, nil
}

func (r *memoryRepository) GetPlaylist(_ context.Context, id string) (*catalog.Playlist, error) {
	if p, ok := r.playlists[id]; ok {
		return p, nil
	}
	return nil, dberr.ErrNotFound
}

func (r *memoryRepository) CreatePlaylist(_ context.Context, p *catalog.Playlist) error {
	if _, ok := r.playlists[p.ID]; ok {
		return dberr.ErrConflict
	}
	if _, ok := r.channels[p.ChannelID]; !ok {
		return fmt.Errorf("foreign key: channel %s missing", p.ChannelID)
	}
	r.playlists[p.ID] = p
	r.inserts = append(r.inserts, "playlist:"+p.ID)
	r.commitTags(youtube.KindPlaylist, p.ID, p.Tags)
	return nil
}

func (r *memoryRepository) ListPlaylists(_ context.Context, _ catalog.PlaylistFilter, _, _ int) ([]*catalog.Playlist, int, error) {
	return nil, 0, nil
}

func (r *memoryRepository) GetPlaylistItem(_ context.Context, id string) (*catalog.PlaylistItem, error) {
	if item, ok := r.items[id]; ok {
		return item, nil
	}
	return nil, dberr.ErrNotFound
}

func (r *memoryRepository) CreatePlaylistItem(_ context.Context, item *catalog.PlaylistItem) error {
	if _, ok := r.items[item.ID]; ok {
		return dberr.ErrConflict
	}
	if _, ok := r.playlists[item.PlaylistID]; !ok {
		return fmt.Errorf("foreign key: playlist %s missing", item.PlaylistID)
	}
	if _, ok := r.videos[item.VideoID]; !ok {
		return fmt.Errorf("foreign key: video %s missing", item.VideoID)
	}
	r.items[item.ID] = item
	r.inserts = append(r.inserts, "playlistItem:"+item.ID)
	return nil
}

func (r *memoryRepository) ListPlaylistItems(_ context.Context, _ string, _, _ int) ([]*catalog.PlaylistItem, int, error) {
	return nil, 0, nil
}

func (r *memoryRepository) GetVideo(_ context.Context, id string) (*catalog.Video, error) {
	if v, ok := r.videos[id]; ok {
		return v, nil
	}
	return nil, dberr.ErrNotFound
}

func (r *memoryRepository) CreateVideo(_ context.Context, v *catalog.Video) error {
	if _, ok := r.videos[v.ID]; ok {
		return dberr.ErrConflict
	}
	if _, ok := r.channels[v.ChannelID]; !ok {
		return fmt.Errorf("foreign key: channel %s missing", v.ChannelID)
	}
	r.videos[v.ID] = v
	r.inserts = append(r.inserts, "video:"+v.ID)
	r.commitTags(youtube.KindVideo, v.ID, v.Tags)
	return nil
}

func (r *memoryRepository) ListVideos(_ context.Context, _ catalog.VideoFilter, _, _ int) ([]*catalog.Video, int, error) {
	return nil, 0, nil
}

// commitTags mirrors the store contract: tag rows and associations land in
// the same commit as the entity row.
func (r *memoryRepository) commitTags(kind youtube.Kind, resourceID string, names []string) {
	for _, name := range names {
		r.tags[name] = true
	}
	if len(names) > 0 {
		key := string(kind) + "/" + resourceID
		r.relations[key] = append(r.relations[key], names...)
	}
}

func (r *memoryRepository) ResourceTags(_ context.Context, kind youtube.Kind, resourceID string) ([]string, error) {
	return r.relations[string(kind)+"/"+resourceID], nil
}

func (r *memoryRepository) ListTags(_ context.Context, _ catalog.TagFilter, _, _ int) ([]*catalog.Tag, int, error) {
	return nil, 0, nil
}

// stubSource serves canned records and counts remote round-trips.
type stubSource struct {
	channels map[string]*youtube.ChannelRecord
	playlists map[string]*youtube.PlaylistRecord
	videos   map[string]*youtube.VideoRecord
	fetches  int
}

func (s *stubSource) ChannelRecord(_ context.Context, id string) (*youtube.ChannelRecord, error) {
	s.fetches++
	if rec, ok := s.channels[id]; ok {
		return rec, nil
	}
	return nil, youtube.ErrNoData
}

func (s *stubSource) PlaylistRecord(_ context.Context, id string) (*youtube.PlaylistRecord, error) {
	s.fetches++
	if rec, ok := s.playlists[id]; ok {
		return rec, nil
	}
	return nil, youtube.ErrNoData
}

func (s *stubSource) VideoRecord(_ context.Context, id string) (*youtube.VideoRecord, error) {
	s.fetches++
	if rec, ok := s.videos[id]; ok {
		return rec, nil
	}
	return nil, youtube.ErrNoData
}

func testChannelRecord(id string) *youtube.ChannelRecord {
	return &youtube.ChannelRecord{
		ResourceID:  id,
		Title:       "Channel " + id,
		PublishedAt: time.Date(2015, 2, 1, 0, 0, 0, 0, time.UTC),
		Tags:        []string{"music", "pop"},
	}
}

func testVideoRecord(id, channelID string) *youtube.VideoRecord {
	return &youtube.VideoRecord{
		ResourceID:  id,
		ChannelID:   channelID,
		Title:       "Video " + id,
		PublishedAt: time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC),
		Duration:    3 * time.Minute,
		ViewCount:   100,
		Tags:        []string{"music"},
	}
}

func newTestGraph(repo catalog.Repository, source catalog.RecordSource) *catalog.Graph {
	return catalog.NewGraph(repo, source, slog.New(slog.DiscardHandler))
}

/*
TestGraph_EnsureVideo_ImportsParentFirst verifies the core referential
guarantee: resolving an absent video commits its owning channel before the
video row.
*/
func TestGraph_EnsureVideo_ImportsParentFirst(t *testing.T) {
	repo := newMemoryRepository()
	source := &stubSource{
		channels: map[string]*youtube.ChannelRecord{"UC1": testChannelRecord("UC1")},
		videos:   map[string]*youtube.VideoRecord{"v1": testVideoRecord("v1", "UC1")},
	}
	run := newTestGraph(repo, source).Begin()

	video, err := run.EnsureVideo(context.Background(), "v1")
	require.NoError(t, err)

	// 1. Both rows exist, channel committed first
	assert.Equal(t, []string{"channel:UC1", "video:v1"}, repo.inserts)
	assert.Equal(t, "UC1", video.ChannelID)
	assert.Equal(t, int64(180), video.DurationSeconds)

	// 2. Tags ensured and associated for both entities
	assert.True(t, repo.tags["music"])
	assert.Equal(t, []string{"music", "pop"}, repo.relations["channel/UC1"])
	assert.Equal(t, []string{"music"}, repo.relations["video/v1"])
}

/*
TestGraph_EnsureVideo_CacheAside verifies that a stored entity is returned
without any remote traffic, and that the memo prevents repeat lookups within
one run.
*/
func TestGraph_EnsureVideo_CacheAside(t *testing.T) {
	repo := newMemoryRepository()
	repo.channels["UC1"] = &catalog.Channel{ID: "UC1"}
	repo.videos["v1"] = &catalog.Video{ID: "v1", ChannelID: "UC1", Title: "stored"}

	source := &stubSource{}
	run := newTestGraph(repo, source).Begin()

	// 1. Hit: stored row wins, no fetch, no re-insert
	video, err := run.EnsureVideo(context.Background(), "v1")
	require.NoError(t, err)
	assert.Equal(t, "stored", video.Title)
	assert.Zero(t, source.fetches)
	assert.Empty(t, repo.inserts)

	// 2. Second resolution in the same run returns the memoized pointer
	again, err := run.EnsureVideo(context.Background(), "v1")
	require.NoError(t, err)
	assert.Same(t, video, again)
}

/*
TestGraph_EnsureVideo_StaleByDesign verifies that a re-import never
refreshes a committed row even when the remote record differs.
*/
func TestGraph_EnsureVideo_StaleByDesign(t *testing.T) {
	repo := newMemoryRepository()
	repo.channels["UC1"] = &catalog.Channel{ID: "UC1"}
	repo.videos["v1"] = &catalog.Video{ID: "v1", ChannelID: "UC1", ViewCount: 10}

	fresh := testVideoRecord("v1", "UC1")
	fresh.ViewCount = 99999
	source := &stubSource{videos: map[string]*youtube.VideoRecord{"v1": fresh}}
	run := newTestGraph(repo, source).Begin()

	video, err := run.EnsureVideo(context.Background(), "v1")
	require.NoError(t, err)
	assert.Equal(t, int64(10), video.ViewCount)
	assert.Zero(t, source.fetches)
}

/*
TestGraph_ChannelResolvedOncePerRun verifies the per-run memo: five videos
of one channel trigger exactly one channel fetch.
*/
func TestGraph_ChannelResolvedOncePerRun(t *testing.T) {
	repo := newMemoryRepository()
	source := &stubSource{
		channels: map[string]*youtube.ChannelRecord{"UC1": testChannelRecord("UC1")},
	}
	run := newTestGraph(repo, source).Begin()

	for i := 0; i < 5; i++ {
		record := testVideoRecord(fmt.Sprintf("v%d", i), "UC1")
		_, err := run.EnsureVideoRecord(context.Background(), record)
		require.NoError(t, err)
	}

	// One channel fetch; every video committed once
	assert.Equal(t, 1, source.fetches)
	assert.Len(t, repo.videos, 5)
	assert.Len(t, repo.channels, 1)
}

/*
TestGraph_AddPlaylistItem verifies edge materialization: playlist and video
are both resolved before the membership row, and non-video references are
skipped.
*/
func TestGraph_AddPlaylistItem(t *testing.T) {
	repo := newMemoryRepository()
	source := &stubSource{
		channels: map[string]*youtube.ChannelRecord{"UC1": testChannelRecord("UC1")},
		playlists: map[string]*youtube.PlaylistRecord{
			"PL1": {ResourceID: "PL1", ChannelID: "UC1", Title: "Uploads", ItemCount: 1},
		},
		videos: map[string]*youtube.VideoRecord{"v1": testVideoRecord("v1", "UC1")},
	}
	run := newTestGraph(repo, source).Begin()

	record := &youtube.PlaylistItemRecord{
		ResourceID:     "item1",
		PlaylistID:     "PL1",
		Position:       0,
		ReferencedKind: youtube.KindVideo,
		ReferencedID:   "v1",
	}

	item, err := run.AddPlaylistItem(context.Background(), record)
	require.NoError(t, err)

	// 1. Full dependency chain committed in order
	assert.Equal(t, []string{"channel:UC1", "playlist:PL1", "video:v1", "playlistItem:item1"}, repo.inserts)
	assert.Equal(t, "v1", item.VideoID)

	// 2. A non-video reference is skipped, not stored
	skipped := &youtube.PlaylistItemRecord{
		ResourceID:     "item2",
		PlaylistID:     "PL1",
		ReferencedKind: youtube.KindPlaylist,
		ReferencedID:   "PLother",
	}
	_, err = run.AddPlaylistItem(context.Background(), skipped)
	assert.ErrorIs(t, err, catalog.ErrSkippedItem)
	assert.Len(t, repo.items, 1)
}

// racingRepository simulates the window where a concurrent importer commits
// a row between this run's lookup and its insert: the first video read
// misses even though the row exists.
type racingRepository struct {
	*memoryRepository
	missedOnce bool
}

func (r *racingRepository) GetVideo(ctx context.Context, id string) (*catalog.Video, error) {
	if !r.missedOnce {
		r.missedOnce = true
		return nil, dberr.ErrNotFound
	}
	return r.memoryRepository.GetVideo(ctx, id)
}

/*
TestGraph_ConflictReread verifies the insert-race path: a conflicting create
falls back to reading the winning row instead of failing the import.
*/
func TestGraph_ConflictReread(t *testing.T) {
	inner := newMemoryRepository()
	inner.channels["UC1"] = &catalog.Channel{ID: "UC1"}
	winner := &catalog.Video{ID: "v1", ChannelID: "UC1", Title: "winner"}
	inner.videos["v1"] = winner
	repo := &racingRepository{memoryRepository: inner}

	source := &stubSource{
		videos: map[string]*youtube.VideoRecord{"v1": testVideoRecord("v1", "UC1")},
	}
	run := newTestGraph(repo, source).Begin()

	video, err := run.EnsureVideo(context.Background(), "v1")
	require.NoError(t, err)

	// The concurrently-committed row wins; no duplicate, no error.
	assert.Same(t, winner, video)
	assert.Len(t, inner.videos, 1)
	assert.Empty(t, inner.inserts)
}

// tagFailingRepository simulates a commit whose tag write fails: the store
// contract makes the whole create roll back, so no entity row may survive.
type tagFailingRepository struct {
	*memoryRepository
	failures int
}

func (r *tagFailingRepository) CreateChannel(ctx context.Context, c *catalog.Channel) error {
	if r.failures > 0 {
		r.failures--
		return fmt.Errorf("insert channel tags: connection reset")
	}
	return r.memoryRepository.CreateChannel(ctx, c)
}

/*
TestGraph_TagCommitAtomic verifies that a failed tag write never strands a
tag-less entity: the create fails as a whole, nothing is stored, and the
next import commits the row together with its tags.
*/
func TestGraph_TagCommitAtomic(t *testing.T) {
	inner := newMemoryRepository()
	repo := &tagFailingRepository{memoryRepository: inner, failures: 1}
	source := &stubSource{
		channels: map[string]*youtube.ChannelRecord{"UC1": testChannelRecord("UC1")},
	}
	graph := catalog.NewGraph(repo, source, slog.New(slog.DiscardHandler))

	// 1. The failing commit surfaces the error and leaves no row behind
	_, err := graph.Begin().EnsureChannel(context.Background(), "UC1")
	require.Error(t, err)
	assert.Empty(t, inner.channels)
	assert.Empty(t, inner.relations)

	// 2. A later run retries the whole commit: row and tags land together
	channel, err := graph.Begin().EnsureChannel(context.Background(), "UC1")
	require.NoError(t, err)
	assert.Equal(t, "UC1", channel.ID)
	assert.Equal(t, []string{"music", "pop"}, inner.relations["channel/UC1"])
}

/*
TestGraph_UnknownID verifies that an id the remote API has no data for
surfaces as a not-found error with nothing committed.
*/
func TestGraph_UnknownID(t *testing.T) {
	repo := newMemoryRepository()
	run := newTestGraph(repo, &stubSource{}).Begin()

	_, err := run.EnsureVideo(context.Background(), "missing")

	require.Error(t, err)
	assert.True(t, dberr.IsNotFound(err))
	assert.Empty(t, repo.inserts)
}
