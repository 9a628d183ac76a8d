// Copyright (c) 2026 Tubecache. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package ingest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/tubecache/internal/platform/request"
	"github.com/taibuivan/tubecache/internal/platform/respond"
	"github.com/taibuivan/tubecache/internal/platform/validate"
)

type Handler struct {
	orchestrator *Orchestrator
}

func NewHandler(orchestrator *Orchestrator) *Handler {
	return &Handler{orchestrator: orchestrator}
}

// RegisterRoutes mounts the import surface. Runs are synchronous: the
// response is the completed run report.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Post("/channels/{id}", handler.importChannel)
	router.Post("/playlists/{id}", handler.importPlaylist)
}

func (handler *Handler) importChannel(writer http.ResponseWriter, request *http.Request) {
	id, err := resourceID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	report, err := handler.orchestrator.ImportChannel(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, report)
}

func (handler *Handler) importPlaylist(writer http.ResponseWriter, request *http.Request) {
	id, err := resourceID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	report, err := handler.orchestrator.ImportPlaylist(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, report)
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
