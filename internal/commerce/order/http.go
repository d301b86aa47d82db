// Copyright (c) 2026 Urugo Women's Opportunity Center. All rights reserved.

package order

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

// RegisterOrderRoutes wires the /orders collection. Every route requires an
// authenticated user.
func (handler *Handler) RegisterOrderRoutes(router chi.Router) {
	router.Use(middleware.RequireAuth)

	router.Get("/", handler.listOrders)
	router.Get("/{id}", handler.getOrder)
	router.Post("/", handler.createOrder)
	router.Patch("/{id}", handler.updateOrder)
	router.Delete("/{id}", handler.deleteOrder)
}

// RegisterItemRoutes wires the /order-items collection. Every route requires
// an authenticated user.
func (handler *Handler) RegisterItemRoutes(router chi.Router) {
	router.Use(middleware.RequireAuth)

	router.Get("/", handler.listItems)
	router.Get("/{id}", handler.getItem)
	router.Post("/", handler.createItem)
	router.Patch("/{id}", handler.updateItem)
	router.Delete("/{id}", handler.deleteItem)
}

// # Orders

func (handler *Handler) listOrders(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)
	queryParams := request.URL.Query()

	filter := OrderFilter{
		Status: queryParams.Get("status"),
		UserID: queryParams.Get("user"),
	}

	orders, total, err := handler.service.ListOrders(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, orders, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getOrder(writer http.ResponseWriter, request *http.Request) {
	orderID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	order, err := handler.service.GetOrder(request.Context(), orderID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, order)
}

func (handler *Handler) createOrder(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Order
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateOrder(request.Context(), &input, userID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateOrder(writer http.ResponseWriter, request *http.Request) {
	orderID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Order
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateOrder(request.Context(), orderID, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) deleteOrder(writer http.ResponseWriter, request *http.Request) {
	orderID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteOrder(request.Context(), orderID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

// # Items

func (handler *Handler) listItems(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)
	queryParams := request.URL.Query()

	filter := ItemFilter{}
	if raw := queryParams.Get("order"); raw != "" {
		if orderID, err := strconv.Atoi(raw); err == nil {
			filter.OrderID = &orderID
		}
	}
	if raw := queryParams.Get("item"); raw != "" {
		if listingID, err := strconv.Atoi(raw); err == nil {
			filter.ListingID = &listingID
		}
	}

	items, total, err := handler.service.ListItems(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, items, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getItem(writer http.ResponseWriter, request *http.Request) {
	itemID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	item, err := handler.service.GetItem(request.Context(), itemID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, item)
}

func (handler *Handler) createItem(writer http.ResponseWriter, request *http.Request) {
	var input Item

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateItem(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateItem(writer http.ResponseWriter, request *http.Request) {
	itemID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Item
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateItem(request.Context(), itemID, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) deleteItem(writer http.ResponseWriter, request *http.Request) {
	itemID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteItem(request.Context(), itemID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
