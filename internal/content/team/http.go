// Copyright (c) 2026 Urugo Women's Opportunity Center. All rights reserved.

package team

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

// RegisterMemberRoutes wires the /team collection.
func (handler *Handler) RegisterMemberRoutes(router chi.Router) {
	// Public
	router.Get("/", handler.listMembers)
	router.Get("/{id}", handler.getMember)

	// Authenticated writes
	router.Group(func(authRoute chi.Router) {
		authRoute.Use(middleware.RequireAuth)

		authRoute.Post("/", handler.createMember)
		authRoute.Patch("/{id}", handler.updateMember)
		authRoute.Delete("/{id}", handler.deleteMember)
	})
}

// RegisterSocialLinkRoutes wires the /team-social-media collection.
func (handler *Handler) RegisterSocialLinkRoutes(router chi.Router) {
	// Public
	router.Get("/", handler.listSocialLinks)
	router.Get("/{id}", handler.getSocialLink)

	// Authenticated writes
	router.Group(func(authRoute chi.Router) {
		authRoute.Use(middleware.RequireAuth)

		authRoute.Post("/", handler.createSocialLink)
		authRoute.Patch("/{id}", handler.updateSocialLink)
		authRoute.Delete("/{id}", handler.deleteSocialLink)
	})
}

// # Members

func (handler *Handler) listMembers(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	members, total, err := handler.service.ListMembers(request.Context(), paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, members, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getMember(writer http.ResponseWriter, request *http.Request) {
	memberID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	member, err := handler.service.GetMember(request.Context(), memberID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, member)
}

func (handler *Handler) createMember(writer http.ResponseWriter, request *http.Request) {
	var input Member

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateMember(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateMember(writer http.ResponseWriter, request *http.Request) {
	memberID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Member
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateMember(request.Context(), memberID, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) deleteMember(writer http.ResponseWriter, request *http.Request) {
	memberID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteMember(request.Context(), memberID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

// # Social Links

func (handler *Handler) listSocialLinks(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	links, total, err := handler.service.ListSocialLinks(request.Context(), paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, links, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getSocialLink(writer http.ResponseWriter, request *http.Request) {
	linkID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	link, err := handler.service.GetSocialLink(request.Context(), linkID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, link)
}

func (handler *Handler) createSocialLink(writer http.ResponseWriter, request *http.Request) {
	var input SocialLink

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateSocialLink(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateSocialLink(writer http.ResponseWriter, request *http.Request) {
	linkID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input SocialLink
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateSocialLink(request.Context(), linkID, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) deleteSocialLink(writer http.ResponseWriter, request *http.Request) {
	linkID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteSocialLink(request.Context(), linkID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
