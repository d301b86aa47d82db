// Copyright (c) 2026 Urugo Women's Opportunity Center. All rights reserved.

package order

import (
	"context"
	"log/slog"

	"github.com/urugowoc/urugo/internal/platform/validate"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// # Orders

func (service *Service) ListOrders(context context.Context, f OrderFilter, limit, offset int) ([]*Order, int, error) {
	return service.repo.ListOrders(context, f, limit, offset)
}

func (service *Service) GetOrder(context context.Context, id int) (*Order, error) {
	return service.repo.GetOrder(context, id)
}

// CreateOrder opens an empty order for the authenticated user. Lines are
// added afterwards through the order items collection.
func (service *Service) CreateOrder(context context.Context, order *Order, userID string) error {
	order.UserID = userID
	if order.Status == "" {
		order.Status = StatusPending
	}

	validator := &validate.Validator{}
	validator.OneOf(FieldStatus, order.Status, Statuses...)
	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.CreateOrder(context, order); err != nil {
		return err
	}

	service.logger.Info("order_created", slog.Int("order_id", order.ID), slog.String("user_id", order.UserID))
	return nil
}

// UpdateOrder changes the status of an order. The owner and the total are
// never writable through the API.
func (service *Service) UpdateOrder(context context.Context, id int, order *Order) error {
	existing, err := service.repo.GetOrder(context, id)
	if err != nil {
		return err
	}

	order.ID = existing.ID
	order.UserID = existing.UserID
	order.User = existing.User
	order.Items = existing.Items
	if order.Status == "" {
		order.Status = existing.Status
	}

	validator := &validate.Validator{}
	validator.OneOf(FieldStatus, order.Status, Statuses...)
	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.UpdateOrder(context, order); err != nil {
		return err
	}

	service.logger.Info("order_updated", slog.Int("order_id", order.ID), slog.String("status", order.Status))
	return nil
}

func (service *Service) DeleteOrder(context context.Context, id int) error {
	if err := service.repo.DeleteOrder(context, id); err != nil {
		return err
	}

	service.logger.Warn("order_deleted", slog.Int("order_id", id))
	return nil
}

// # Items

func (service *Service) ListItems(context context.Context, f ItemFilter, limit, offset int) ([]*Item, int, error) {
	return service.repo.ListItems(context, f, limit, offset)
}

func (service *Service) GetItem(context context.Context, id int) (*Item, error) {
	return service.repo.GetItem(context, id)
}

func (service *Service) CreateItem(context context.Context, item *Item) error {
	validator := &validate.Validator{}
	validator.Positive(FieldOrderID, item.OrderID)
	validator.Positive(FieldListingID, item.ListingID)
	validator.Positive(FieldQuantity, item.Quantity)
	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.CreateItem(context, item); err != nil {
		return err
	}

	service.logger.Info("order_item_created",
		slog.Int("order_item_id", item.ID),
		slog.Int("order_id", item.OrderID),
		slog.Int("listing_id", item.ListingID))
	return nil
}

func (service *Service) UpdateItem(context context.Context, id int, item *Item) error {
	item.ID = id
	validator := &validate.Validator{}
	validator.Positive(FieldQuantity, item.Quantity)
	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.UpdateItem(context, item); err != nil {
		return err
	}

	service.logger.Info("order_item_updated", slog.Int("order_item_id", item.ID))
	return nil
}

func (service *Service) DeleteItem(context context.Context, id int) error {
	if err := service.repo.DeleteItem(context, id); err != nil {
		return err
	}

	service.logger.Warn("order_item_deleted", slog.Int("order_item_id", id))
	return nil
}
