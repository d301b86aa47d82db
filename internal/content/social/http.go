// Copyright (c) 2026 Urugo Women's Opportunity Center. All rights reserved.

package social

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
	router.Get("/", handler.listSocialMedia)
	router.Get("/{id}", handler.getSocialMedia)

	// Authenticated writes
	router.Group(func(authRoute chi.Router) {
		authRoute.Use(middleware.RequireAuth)

		authRoute.Post("/", handler.createSocialMedia)
		authRoute.Patch("/{id}", handler.updateSocialMedia)
		authRoute.Delete("/{id}", handler.deleteSocialMedia)
	})
}

func (handler *Handler) listSocialMedia(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	links, total, err := handler.service.ListSocialMedia(request.Context(), paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, links, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getSocialMedia(writer http.ResponseWriter, request *http.Request) {
	linkID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	link, err := handler.service.GetSocialMedia(request.Context(), linkID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, link)
}

func (handler *Handler) createSocialMedia(writer http.ResponseWriter, request *http.Request) {
	var input SocialMedia

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateSocialMedia(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateSocialMedia(writer http.ResponseWriter, request *http.Request) {
	linkID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input SocialMedia
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateSocialMedia(request.Context(), linkID, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) deleteSocialMedia(writer http.ResponseWriter, request *http.Request) {
	linkID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteSocialMedia(request.Context(), linkID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
