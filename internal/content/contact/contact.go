// Copyright (c) 2026 Urugo Women's Opportunity Center. All rights reserved.

// Package contact manages the center's published contact details.
package contact

import "time"

// Contact represents one published contact record.
type Contact struct {
	ID          int       `json:"id"`
	PhoneNumber string    `json:"phone_number"`
	Email       string    `json:"email"`
	Address     string    `json:"address"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

const (
	FieldPhoneNumber = "phone_number"
	FieldEmail       = "email"
	FieldAddress     = "address"
)
