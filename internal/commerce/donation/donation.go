// Copyright (c) 2026 Urugo Women's Opportunity Center. All rights reserved.

// Package donation records financial contributions to the center. Donor
// details are optional so anonymous gifts can be recorded.
package donation

import "time"

// Donation is a single recorded contribution.
type Donation struct {
	ID          int       `json:"id"`
	Names       *string   `json:"names"`
	Email       *string   `json:"email"`
	PhoneNumber *string   `json:"phone_number"`
	Amount      float64   `json:"amount"`
	DonatedAt   time.Time `json:"donated_at"`
}

const (
	FieldNames       = "names"
	FieldEmail       = "email"
	FieldPhoneNumber = "phone_number"
	FieldAmount      = "amount"
)
