// Copyright (c) 2026 Urugo Women's Opportunity Center. All rights reserved.

package account

import (
	"context"
	"log/slog"

	"github.com/urugowoc/urugo/internal/platform/sec"
	"github.com/urugowoc/urugo/internal/platform/validate"
	"github.com/urugowoc/urugo/internal/users/auth"
)

// Service implements account administration on top of the Repository.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new account administration service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// ListUsers returns accounts matching the filter.
func (service *Service) ListUsers(context context.Context, f Filter, limit, offset int) ([]*auth.User, int, error) {
	return service.repo.List(context, f, limit, offset)
}

// GetUser fetches a single account by UUID.
func (service *Service) GetUser(context context.Context, id string) (*auth.User, error) {
	return service.repo.FindByID(context, id)
}

/*
UpdateUser applies a partial profile update to an existing account.

Description: Nil input fields are left at their current value, matching PATCH
semantics. Email and password are not updatable through this path; credentials
are owned by the auth package.

Parameters:
  - context: context.Context
  - id: string (Account UUID)
  - input: UpdateInput (partial changes)

Returns:
  - *auth.User: the updated account
  - error: NotFound, Validation, or storage errors
*/
func (service *Service) UpdateUser(context context.Context, id string, input UpdateInput) (*auth.User, error) {
	user, err := service.repo.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.PhoneNumber != nil {
		user.PhoneNumber = *input.PhoneNumber
	}
	if input.Title != nil {
		user.Title = *input.Title
	}
	if input.Bio != nil {
		user.Bio = *input.Bio
	}
	if input.AvatarURL != nil {
		user.AvatarURL = *input.AvatarURL
	}
	if input.Role != nil {
		user.Role = sec.UserRole(*input.Role)
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}

	validator := &validate.Validator{}
	validator.Required(FieldFirstName, user.FirstName)
	validator.MaxLen(FieldFirstName, user.FirstName, 100)
	validator.Required(FieldLastName, user.LastName)
	validator.MaxLen(FieldLastName, user.LastName, 100)
	validator.OneOf(FieldRole, string(user.Role),
		string(sec.RoleSuperuser), string(sec.RolePublisher), string(sec.RoleUser))

	if user.PhoneNumber != "" {
		validator.Phone(FieldPhoneNumber, user.PhoneNumber)
	}
	if user.Title != "" {
		validator.MaxLen(FieldTitle, user.Title, 100)
	}
	if user.AvatarURL != "" {
		validator.URL(FieldAvatarURL, user.AvatarURL)
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.repo.Update(context, user); err != nil {
		return nil, err
	}

	service.logger.Info("user_updated", slog.String("user_id", user.ID))
	return user, nil
}

// DeactivateUser disables an account instead of deleting it.
func (service *Service) DeactivateUser(context context.Context, id string) error {
	if err := service.repo.Deactivate(context, id); err != nil {
		return err
	}

	service.logger.Warn("user_deactivated", slog.String("user_id", id))
	return nil
}
