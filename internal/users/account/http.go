// Copyright (c) 2026 Urugo Women's Opportunity Center. All rights reserved.

package account

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/urugowoc/urugo/internal/platform/middleware"
	requestutil "github.com/urugowoc/urugo/internal/platform/request"
	"github.com/urugowoc/urugo/internal/platform/respond"
	"github.com/urugowoc/urugo/internal/platform/sec"
	"github.com/urugowoc/urugo/internal/platform/validate"
	"github.com/urugowoc/urugo/internal/users/auth"
	"github.com/urugowoc/urugo/pkg/pagination"
)

// Handler implements account administration HTTP endpoints.
type Handler struct {
	service     *Service
	authService *auth.Service
}

// NewHandler constructs a new [Handler]. The auth service is needed for
// privileged enrollment, which shares the registration pipeline.
func NewHandler(service *Service, authService *auth.Service) *Handler {
	return &Handler{service: service, authService: authService}
}

// RegisterRoutes wires the /users collection.
//
// # Endpoints
//   - GET    /           : List and search accounts (authenticated).
//   - GET    /{id}       : Fetch one account (authenticated).
//   - PATCH  /{id}       : Partial profile update (authenticated).
//   - DELETE /{id}       : Deactivate the account (authenticated).
//   - POST   /superuser  : Enroll a superuser (superuser only).
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Use(middleware.RequireAuth)

	router.Get("/", handler.list)
	router.Get("/{id}", handler.get)
	router.Patch("/{id}", handler.update)
	router.Delete("/{id}", handler.deactivate)

	router.With(middleware.RequireRole(sec.RoleSuperuser)).
		Post("/superuser", handler.registerSuperuser)
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)
	queryParams := request.URL.Query()

	filter := Filter{
		Role:  queryParams.Get("role"),
		Query: queryParams.Get("q"),
	}
	if raw := queryParams.Get("is_active"); raw != "" {
		if isActive, err := strconv.ParseBool(raw); err == nil {
			filter.IsActive = &isActive
		}
	}

	users, total, err := handler.service.ListUsers(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, users, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	userID, err := userIDParam(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.service.GetUser(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, user)
}

func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	userID, err := userIDParam(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input UpdateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.service.UpdateUser(request.Context(), userID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, user)
}

func (handler *Handler) deactivate(writer http.ResponseWriter, request *http.Request) {
	userID, err := userIDParam(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeactivateUser(request.Context(), userID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

type superuserRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`
	IsStaff     bool   `json:"is_staff"`
	IsSuperuser bool   `json:"is_superuser"`
}

/*
RegisterSuperuser enrolls a privileged account.

POST /api/users/superuser

Description: Restricted to callers holding the superuser role. Both staff
flags must be asserted explicitly; the auth service rejects the request
otherwise.

Response:
  - 201: The created account
  - 400: Validation failure or missing staff flags
  - 403: Caller lacks the superuser role
  - 409: Email already registered
*/
func (handler *Handler) registerSuperuser(writer http.ResponseWriter, request *http.Request) {
	var input superuserRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(auth.FieldEmail, input.Email).
		Email(auth.FieldEmail, input.Email).
		Required(auth.FieldPassword, input.Password).
		Password(auth.FieldPassword, input.Password).
		Phone(auth.FieldPhoneNumber, input.PhoneNumber)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.authService.RegisterSuperuser(request.Context(), auth.RegisterInput{
		Email:       input.Email,
		Password:    input.Password,
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		PhoneNumber: input.PhoneNumber,
	}, input.IsStaff, input.IsSuperuser)

	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, user)
}

// userIDParam extracts and validates the UUID path parameter. Rejecting
// malformed ids here keeps invalid-text errors out of the storage layer.
func userIDParam(request *http.Request) (string, error) {
	id := requestutil.Param(request, "id")

	validator := &validate.Validator{}
	validator.Required(FieldID, id)
	validator.UUID(FieldID, id)
	if err := validator.Err(); err != nil {
		return "", err
	}
	return id, nil
}
