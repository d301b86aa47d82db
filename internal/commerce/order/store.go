// Copyright (c) 2026 Urugo Women's Opportunity Center. All rights reserved.

package order

import "context"

// OrderFilter holds the parameters for a paginated order search.
type OrderFilter struct {
	Status string
	UserID string
}

// ItemFilter holds the parameters for a paginated order item search.
type ItemFilter struct {
	OrderID   *int
	ListingID *int
}

type Repository interface {
	ListOrders(context context.Context, f OrderFilter, limit, offset int) ([]*Order, int, error)
	GetOrder(context context.Context, id int) (*Order, error)
	CreateOrder(context context.Context, o *Order) error
	UpdateOrder(context context.Context, o *Order) error
	DeleteOrder(context context.Context, id int) error

	ListItems(context context.Context, f ItemFilter, limit, offset int) ([]*Item, int, error)
	GetItem(context context.Context, id int) (*Item, error)
	CreateItem(context context.Context, i *Item) error
	UpdateItem(context context.Context, i *Item) error
	DeleteItem(context context.Context, id int) error
}
