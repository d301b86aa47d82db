// Copyright (c) 2026 Urugo Women's Opportunity Center. All rights reserved.

package dining

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

// RegisterAreaRoutes wires the /dining collection.
func (handler *Handler) RegisterAreaRoutes(router chi.Router) {
	// Public
	router.Get("/", handler.listAreas)
	router.Get("/{slug}", handler.getArea)

	// Authenticated writes
	router.Group(func(authRoute chi.Router) {
		authRoute.Use(middleware.RequireAuth)

		authRoute.Post("/", handler.createArea)
		authRoute.Patch("/{slug}", handler.updateArea)
		authRoute.Delete("/{slug}", handler.deleteArea)
	})
}

// RegisterBookingRoutes wires the /dining-bookings collection. Every route
// requires an authenticated user.
func (handler *Handler) RegisterBookingRoutes(router chi.Router) {
	router.Use(middleware.RequireAuth)

	router.Get("/", handler.listBookings)
	router.Get("/{id}", handler.getBooking)
	router.Post("/", handler.createBooking)
	router.Patch("/{id}", handler.updateBooking)
	router.Delete("/{id}", handler.deleteBooking)
}

// # Areas

func (handler *Handler) listAreas(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)
	queryParams := request.URL.Query()

	filter := AreaFilter{
		Title: queryParams.Get("title"),
		Slug:  queryParams.Get("slug"),
		Query: queryParams.Get("q"),
	}

	areas, total, err := handler.service.ListAreas(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, areas, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getArea(writer http.ResponseWriter, request *http.Request) {
	area, err := handler.service.GetArea(request.Context(), requestutil.Param(request, "slug"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, area)
}

func (handler *Handler) createArea(writer http.ResponseWriter, request *http.Request) {
	var input Area

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateArea(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateArea(writer http.ResponseWriter, request *http.Request) {
	var input Area
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	area, err := handler.service.UpdateArea(request.Context(), requestutil.Param(request, "slug"), &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, area)
}

func (handler *Handler) deleteArea(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeleteArea(request.Context(), requestutil.Param(request, "slug")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

// # Bookings

func (handler *Handler) listBookings(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)
	queryParams := request.URL.Query()

	filter := BookingFilter{
		UserID: queryParams.Get("user"),
	}
	if raw := queryParams.Get("dining"); raw != "" {
		if diningID, err := strconv.Atoi(raw); err == nil {
			filter.DiningID = &diningID
		}
	}

	bookings, total, err := handler.service.ListBookings(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, bookings, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getBooking(writer http.ResponseWriter, request *http.Request) {
	bookingID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	booking, err := handler.service.GetBooking(request.Context(), bookingID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, booking)
}

func (handler *Handler) createBooking(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Booking
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateBooking(request.Context(), &input, userID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateBooking(writer http.ResponseWriter, request *http.Request) {
	bookingID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Booking
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateBooking(request.Context(), bookingID, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) deleteBooking(writer http.ResponseWriter, request *http.Request) {
	bookingID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteBooking(request.Context(), bookingID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
