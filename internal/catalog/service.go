// Copyright (c) 2026 Tubecache. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"log/slog"

	"github.com/taibuivan/tubecache/internal/youtube"
)

// Service is the read surface over the stored graph. All mutation flows
// through the Graph; nothing here writes.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) ListChannels(context context.Context, filter ChannelFilter, limit, offset int) ([]*Channel, int, error) {
	return service.repo.ListChannels(context, filter, limit, offset)
}

func (service *Service) GetChannel(context context.Context, id string) (*Channel, error) {
	channel, err := service.repo.GetChannel(context, id)
	if err != nil {
		return nil, err
	}

	if channel.Tags, err = service.repo.ResourceTags(context, youtube.KindChannel, id); err != nil {
		return nil, err
	}
	return channel, nil
}

func (service *Service) ListPlaylists(context context.Context, filter PlaylistFilter, limit, offset int) ([]*Playlist, int, error) {
	return service.repo.ListPlaylists(context, filter, limit, offset)
}

func (service *Service) GetPlaylist(context context.Context, id string) (*Playlist, error) {
	playlist, err := service.repo.GetPlaylist(context, id)
	if err != nil {
		return nil, err
	}

	if playlist.Tags, err = service.repo.ResourceTags(context, youtube.KindPlaylist, id); err != nil {
		return nil, err
	}
	return playlist, nil
}

func (service *Service) ListPlaylistItems(context context.Context, playlistID string, limit, offset int) ([]*PlaylistItem, int, error) {
	// A listing of an unknown playlist is a 404, not an empty page.
	if _, err := service.repo.GetPlaylist(context, playlistID); err != nil {
		return nil, 0, err
	}
	return service.repo.ListPlaylistItems(context, playlistID, limit, offset)
}

func (service *Service) ListVideos(context context.Context, filter VideoFilter, limit, offset int) ([]*Video, int, error) {
	return service.repo.ListVideos(context, filter, limit, offset)
}

func (service *Service) GetVideo(context context.Context, id string) (*Video, error) {
	video, err := service.repo.GetVideo(context, id)
	if err != nil {
		return nil, err
	}

	if video.Tags, err = service.repo.ResourceTags(context, youtube.KindVideo, id); err != nil {
		return nil, err
	}
	return video, nil
}

func (service *Service) ListTags(context context.Context, filter TagFilter, limit, offset int) ([]*Tag, int, error) {
	return service.repo.ListTags(context, filter, limit, offset)
}
