// Copyright (c) 2026 Urugo Women's Opportunity Center. All rights reserved.

package donation

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

// RegisterRoutes wires the /donations collection. Every route requires an
// authenticated user.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Use(middleware.RequireAuth)

	router.Get("/", handler.list)
	router.Get("/{id}", handler.get)
	router.Post("/", handler.create)
	router.Patch("/{id}", handler.update)
	router.Delete("/{id}", handler.delete)
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)
	queryParams := request.URL.Query()

	filter := Filter{
		Email: queryParams.Get("email"),
		Query: queryParams.Get("q"),
	}
	if raw := queryParams.Get("amount"); raw != "" {
		if amount, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.Amount = &amount
		}
	}

	donations, total, err := handler.service.ListDonations(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, donations, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	donationID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	donation, err := handler.service.GetDonation(request.Context(), donationID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, donation)
}

func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input Donation

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateDonation(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	donationID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Donation
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateDonation(request.Context(), donationID, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	donationID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteDonation(request.Context(), donationID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
