// Copyright (c) 2026 Urugo Women's Opportunity Center. All rights reserved.

package contact

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
	router.Get("/", handler.listContacts)
	router.Get("/{id}", handler.getContact)

	// Authenticated writes
	router.Group(func(authRoute chi.Router) {
		authRoute.Use(middleware.RequireAuth)

		authRoute.Post("/", handler.createContact)
		authRoute.Patch("/{id}", handler.updateContact)
		authRoute.Delete("/{id}", handler.deleteContact)
	})
}

func (handler *Handler) listContacts(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	contacts, total, err := handler.service.ListContacts(request.Context(), paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, contacts, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getContact(writer http.ResponseWriter, request *http.Request) {
	contactID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	contact, err := handler.service.GetContact(request.Context(), contactID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, contact)
}

func (handler *Handler) createContact(writer http.ResponseWriter, request *http.Request) {
	var input Contact

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateContact(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateContact(writer http.ResponseWriter, request *http.Request) {
	contactID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Contact
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateContact(request.Context(), contactID, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) deleteContact(writer http.ResponseWriter, request *http.Request) {
	contactID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteContact(request.Context(), contactID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
