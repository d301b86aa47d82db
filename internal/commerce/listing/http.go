// Copyright (c) 2026 Urugo Women's Opportunity Center. All rights reserved.

package listing

import (
	"net/http"
	"strconv"

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
	router.Get("/", handler.list)
	router.Get("/{slug}", handler.get)

	// Authenticated writes
	router.Group(func(authRoute chi.Router) {
		authRoute.Use(middleware.RequireAuth)

		authRoute.Post("/", handler.create)
		authRoute.Patch("/{slug}", handler.update)
		authRoute.Delete("/{slug}", handler.delete)
	})
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)
	queryParams := request.URL.Query()

	filter := Filter{
		Type:  queryParams.Get("type"),
		Query: queryParams.Get("q"),
	}
	if raw := queryParams.Get("available"); raw != "" {
		if available, err := strconv.ParseBool(raw); err == nil {
			filter.Available = &available
		}
	}

	listings, total, err := handler.service.ListListings(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, listings, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	listing, err := handler.service.GetListing(request.Context(), requestutil.Param(request, "slug"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, listing)
}

func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input Listing

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateListing(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	var input Listing
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	listing, err := handler.service.UpdateListing(request.Context(), requestutil.Param(request, "slug"), &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, listing)
}

func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeleteListing(request.Context(), requestutil.Param(request, "slug")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
