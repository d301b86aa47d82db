// Copyright (c) 2026 Urugo Women's Opportunity Center. All rights reserved.

package media

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

// RegisterGalleryRoutes wires the /gallery collection.
func (handler *Handler) RegisterGalleryRoutes(router chi.Router) {
	// Public
	router.Get("/", handler.listGalleryImages)
	router.Get("/{id}", handler.getGalleryImage)

	// Authenticated writes
	router.Group(func(authRoute chi.Router) {
		authRoute.Use(middleware.RequireAuth)

		authRoute.Post("/", handler.createGalleryImage)
		authRoute.Patch("/{id}", handler.updateGalleryImage)
		authRoute.Delete("/{id}", handler.deleteGalleryImage)
	})
}

// RegisterVideoRoutes wires the /videos collection.
func (handler *Handler) RegisterVideoRoutes(router chi.Router) {
	// Public
	router.Get("/", handler.listVideos)
	router.Get("/{id}", handler.getVideo)

	// Authenticated writes
	router.Group(func(authRoute chi.Router) {
		authRoute.Use(middleware.RequireAuth)

		authRoute.Post("/", handler.createVideo)
		authRoute.Patch("/{id}", handler.updateVideo)
		authRoute.Delete("/{id}", handler.deleteVideo)
	})
}

// # Gallery

func (handler *Handler) listGalleryImages(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	images, total, err := handler.service.ListGalleryImages(request.Context(), paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, images, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getGalleryImage(writer http.ResponseWriter, request *http.Request) {
	imageID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	image, err := handler.service.GetGalleryImage(request.Context(), imageID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, image)
}

func (handler *Handler) createGalleryImage(writer http.ResponseWriter, request *http.Request) {
	var input GalleryImage

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateGalleryImage(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateGalleryImage(writer http.ResponseWriter, request *http.Request) {
	imageID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input GalleryImage
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateGalleryImage(request.Context(), imageID, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) deleteGalleryImage(writer http.ResponseWriter, request *http.Request) {
	imageID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteGalleryImage(request.Context(), imageID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

// # Videos

func (handler *Handler) listVideos(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	videos, total, err := handler.service.ListVideos(request.Context(), paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, videos, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getVideo(writer http.ResponseWriter, request *http.Request) {
	videoID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	video, err := handler.service.GetVideo(request.Context(), videoID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, video)
}

func (handler *Handler) createVideo(writer http.ResponseWriter, request *http.Request) {
	var input Video

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateVideo(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateVideo(writer http.ResponseWriter, request *http.Request) {
	videoID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Video
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateVideo(request.Context(), videoID, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) deleteVideo(writer http.ResponseWriter, request *http.Request) {
	videoID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteVideo(request.Context(), videoID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
