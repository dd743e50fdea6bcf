// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package section

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/catalog/internal/platform/request"
	"github.com/taibuivan/catalog/internal/platform/respond"
	"github.com/taibuivan/catalog/internal/platform/validate"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the section endpoints. Access control is applied by the
// request gate in front of the router.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listSections)
	router.Get("/{id}", handler.getSection)
	router.Post("/", handler.createSection)
	router.Put("/{id}", handler.updateSection)
	router.Delete("/{id}", handler.deleteSection)
}

func (handler *Handler) listSections(writer http.ResponseWriter, request *http.Request) {
	sections, err := handler.service.ListSections(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, sections)
}

func (handler *Handler) getSection(writer http.ResponseWriter, request *http.Request) {
	sectionID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	s, err := handler.service.GetSection(request.Context(), sectionID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, s)
}

func (handler *Handler) createSection(writer http.ResponseWriter, request *http.Request) {
	var input CreateInput
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := validate.Struct(input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	s, err := handler.service.CreateSection(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, s)
}

func (handler *Handler) updateSection(writer http.ResponseWriter, request *http.Request) {
	sectionID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input UpdateInput
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := validate.Struct(input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	s, err := handler.service.UpdateSection(request.Context(), sectionID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, s)
}

func (handler *Handler) deleteSection(writer http.ResponseWriter, request *http.Request) {
	sectionID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteSection(request.Context(), sectionID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
