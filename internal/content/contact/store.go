// Copyright (c) 2026 Urugo Women's Opportunity Center. All rights reserved.

package contact

import "context"

type Repository interface {
	ListContacts(context context.Context, limit, offset int) ([]*Contact, int, error)
	GetContact(context context.Context, id int) (*Contact, error)
	CreateContact(context context.Context, c *Contact) error
	UpdateContact(context context.Context, c *Contact) error
	DeleteContact(context context.Context, id int) error
}
