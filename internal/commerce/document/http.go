// Copyright (c) 2026 Urugo Women's Opportunity Center. All rights reserved.

package document

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
	// Public reads, with a reduced projection for anonymous callers
	router.Get("/", handler.list)
	router.Get("/{id}", handler.get)

	// Authenticated writes
	router.Group(func(authRoute chi.Router) {
		authRoute.Use(middleware.RequireAuth)

		authRoute.Post("/", handler.create)
		authRoute.Patch("/{id}", handler.update)
		authRoute.Delete("/{id}", handler.delete)
	})
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)
	queryParams := request.URL.Query()
	authenticated := requestutil.Claims(request) != nil

	filter := Filter{
		DocumentType: queryParams.Get("document_type"),
		Visibility:   queryParams.Get("visibility"),
		Query:        queryParams.Get("q"),
	}

	documents, total, err := handler.service.ListDocuments(request.Context(), filter, authenticated, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	meta := pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total)
	if !authenticated {
		public := make([]*PublicDocument, 0, len(documents))
		for _, document := range documents {
			public = append(public, document.Public())
		}
		respond.Paginated(writer, public, meta)
		return
	}
	respond.Paginated(writer, documents, meta)
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	documentID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	authenticated := requestutil.Claims(request) != nil

	document, err := handler.service.GetDocument(request.Context(), documentID, authenticated)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if !authenticated {
		respond.OK(writer, document.Public())
		return
	}
	respond.OK(writer, document)
}

func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Document
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateDocument(request.Context(), &input, userID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	documentID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Document
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateDocument(request.Context(), documentID, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	documentID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteDocument(request.Context(), documentID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
