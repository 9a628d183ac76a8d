// Copyright (c) 2026 Tubecache. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/tubecache/internal/platform/request"
	"github.com/taibuivan/tubecache/internal/platform/respond"
	"github.com/taibuivan/tubecache/internal/platform/validate"
	"github.com/taibuivan/tubecache/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the read-only catalog surface. Imports are a
// separate route group owned by internal/ingest.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Route("/channels", func(r chi.Router) {
		r.Get("/", handler.listChannels)
		r.Get("/{id}", handler.getChannel)
	})

	router.Route("/playlists", func(r chi.Router) {
		r.Get("/", handler.listPlaylists)
		r.Get("/{id}", handler.getPlaylist)
		r.Get("/{id}/items", handler.listPlaylistItems)
	})

	router.Route("/videos", func(r chi.Router) {
		r.Get("/", handler.listVideos)
		r.Get("/{id}", handler.getVideo)
	})

	router.Get("/tags", handler.listTags)
}

func (handler *Handler) listChannels(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	filter := ChannelFilter{
		Query: request.URL.Query().Get("q"),
		Tag:   request.URL.Query().Get("tag"),
	}

	channels, total, err := handler.service.ListChannels(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, channels, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getChannel(writer http.ResponseWriter, request *http.Request) {
	id, err := resourceID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	channel, err := handler.service.GetChannel(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, channel)
}

func (handler *Handler) listPlaylists(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	filter := PlaylistFilter{
		ChannelID: request.URL.Query().Get("channel_id"),
		Query:     request.URL.Query().Get("q"),
	}

	playlists, total, err := handler.service.ListPlaylists(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, playlists, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getPlaylist(writer http.ResponseWriter, request *http.Request) {
	id, err := resourceID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	playlist, err := handler.service.GetPlaylist(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, playlist)
}

func (handler *Handler) listPlaylistItems(writer http.ResponseWriter, request *http.Request) {
	id, err := resourceID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	paginationParams := pagination.FromRequest(request)

	items, total, err := handler.service.ListPlaylistItems(request.Context(), id, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, items, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) listVideos(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	filter := VideoFilter{
		ChannelID:  request.URL.Query().Get("channel_id"),
		PlaylistID: request.URL.Query().Get("playlist_id"),
		Tag:        request.URL.Query().Get("tag"),
		Query:      request.URL.Query().Get("q"),
	}

	videos, total, err := handler.service.ListVideos(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, videos, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getVideo(writer http.ResponseWriter, request *http.Request) {
	id, err := resourceID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	video, err := handler.service.GetVideo(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, video)
}

func (handler *Handler) listTags(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	filter := TagFilter{
		Query: request.URL.Query().Get("q"),
	}

	tags, total, err := handler.service.ListTags(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, tags, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

// resourceID extracts and validates the {id} URL parameter.
func resourceID(request *http.Request) (string, error) {
	id := requestutil.ID(request, "id")

	validator := &validate.Validator{}
	validator.Required("id", id).ResourceID("id", id)
	if err := validator.Err(); err != nil {
		return "", err
	}
	return id, nil
}
