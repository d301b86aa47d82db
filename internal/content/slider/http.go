// Copyright (c) 2026 Urugo Women's Opportunity Center. All rights reserved.

package slider

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
	router.Get("/", handler.listSliders)
	router.Get("/{id}", handler.getSlider)

	// Authenticated writes
	router.Group(func(authRoute chi.Router) {
		authRoute.Use(middleware.RequireAuth)

		authRoute.Post("/", handler.createSlider)
		authRoute.Patch("/{id}", handler.updateSlider)
		authRoute.Delete("/{id}", handler.deleteSlider)
	})
}

func (handler *Handler) listSliders(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	filter := Filter{}
	if raw := request.URL.Query().Get("active"); raw != "" {
		if active, err := strconv.ParseBool(raw); err == nil {
			filter.Active = &active
		}
	}

	sliders, total, err := handler.service.ListSliders(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, sliders, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getSlider(writer http.ResponseWriter, request *http.Request) {
	sliderID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	slider, err := handler.service.GetSlider(request.Context(), sliderID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, slider)
}

func (handler *Handler) createSlider(writer http.ResponseWriter, request *http.Request) {
	var input Slider

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateSlider(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateSlider(writer http.ResponseWriter, request *http.Request) {
	sliderID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Slider
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateSlider(request.Context(), sliderID, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) deleteSlider(writer http.ResponseWriter, request *http.Request) {
	sliderID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteSlider(request.Context(), sliderID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
