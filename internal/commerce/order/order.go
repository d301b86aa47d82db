// Copyright (c) 2026 Urugo Women's Opportunity Center. All rights reserved.

// Package order manages purchase orders and their line items. An order is
// created empty for the authenticated user; items are added one by one and
// the order total is kept in step inside the same transaction.
package order

import "time"

// Order statuses.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

var Statuses = []string{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled}

// Order is a purchase order owned by a user.
type Order struct {
	ID         int        `json:"id"`
	UserID     string     `json:"user_id"`
	User       *Purchaser `json:"user,omitempty"`
	Status     string     `json:"status"`
	TotalPrice float64    `json:"total_price"`
	Items      []*Item    `json:"items,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// Purchaser is the read-only owner projection embedded in an order.
type Purchaser struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Item is one order line. Price is the unit price of the listing at the time
// the item was added.
type Item struct {
	ID        int       `json:"id"`
	OrderID   int       `json:"order_id"`
	ListingID int       `json:"listing_id"`
	Quantity  int       `json:"quantity"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"created_at"`
}

const (
	FieldStatus    = "status"
	FieldOrderID   = "order_id"
	FieldListingID = "listing_id"
	FieldQuantity  = "quantity"
)
