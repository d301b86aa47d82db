// Copyright (c) 2026 Urugo Women's Opportunity Center. All rights reserved.

package about

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/urugowoc/urugo/internal/platform/middleware"
	requestutil "github.com/urugowoc/urugo/internal/platform/request"
	"github.com/urugowoc/urugo/internal/platform/respond"
	"github.com/urugowoc/urugo/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	// Public
	router.Get("/", handler.listAbouts)
	router.Get("/{id}", handler.getAbout)

	// Authenticated writes
	router.Group(func(authRoute chi.Router) {
		authRoute.Use(middleware.RequireAuth)

		authRoute.Post("/", handler.createAbout)
		authRoute.Patch("/{id}", handler.updateAbout)
		authRoute.Delete("/{id}", handler.deleteAbout)
	})
}

func (handler *Handler) listAbouts(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	abouts, total, err := handler.service.ListAbouts(request.Context(), paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, abouts, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getAbout(writer http.ResponseWriter, request *http.Request) {
	aboutID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	about, err := handler.service.GetAbout(request.Context(), aboutID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, about)
}

func (handler *Handler) createAbout(writer http.ResponseWriter, request *http.Request) {
	var input About

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateAbout(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateAbout(writer http.ResponseWriter, request *http.Request) {
	aboutID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input About
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateAbout(request.Context(), aboutID, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) deleteAbout(writer http.ResponseWriter, request *http.Request) {
	aboutID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteAbout(request.Context(), aboutID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
