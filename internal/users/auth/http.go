// Copyright (c) 2026 Urugo Women's Opportunity Center. All rights reserved.

/*
Package auth provides the HTTP delivery layer for user identity management.

It implements the gateway for the authentication lifecycle, from account
creation to token refresh and logout.

# Architecture

The handler acts as a thin mediation layer between the web and domain services:
  - Protocol: Standard RESTful JSON interface.
  - Security: Handles JWT orchestration and token cookie injection.
  - Verification: Enforces strict input validation before passing to [Service].

This layer is strictly responsible for transport concerns (status codes, headers, JSON).
*/
package auth

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/urugowoc/urugo/internal/platform/constants"
	"github.com/urugowoc/urugo/internal/platform/middleware"
	requestutil "github.com/urugowoc/urugo/internal/platform/request"
	"github.com/urugowoc/urugo/internal/platform/respond"
	"github.com/urugowoc/urugo/internal/platform/validate"
)

// # Definitions & Constructors

// Handler implements authentication-related HTTP endpoints.
type Handler struct {
	authService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{authService: service}
}

// RegisterRoutes wires the authentication endpoints onto the given router.
//
// # Endpoints
//   - POST /register      : Creates a new account and returns a token pair.
//   - POST /login         : Authenticates and returns a token pair.
//   - POST /token/refresh : Exchanges a refresh token for a new access token.
//   - POST /logout        : Revokes and blacklists the refresh token.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	// Public endpoints
	router.Post("/register", handler.register)
	router.Post("/login", handler.login)
	router.Post("/token/refresh", handler.refresh)

	// Protected endpoints
	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Post("/logout", handler.logout)
	})
}

// # Request Payloads

type registerRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshRequest struct {
	Refresh string `json:"refresh"`
}

/*
Register handles the creation of a new user account.

POST /api/register

Description: Validates input, checks for identity conflicts, persists the new
profile, and immediately establishes a session so the client can proceed
without a separate login round trip.

Request:
  - Body: registerRequest (Email, Password, FirstName, LastName, PhoneNumber)

Response:
  - 201: Token pair and created profile
  - 400: ErrInvalidJSON: Bad input or validation failure
  - 409: ErrConflict: Email already registered
*/
func (handler *Handler) register(writer http.ResponseWriter, request *http.Request) {
	var input registerRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldEmail, input.Email).
		Email(FieldEmail, input.Email).
		Required(FieldPassword, input.Password).
		Password(FieldPassword, input.Password).
		Phone(FieldPhoneNumber, input.PhoneNumber)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.authService.Register(request.Context(), RegisterInput{
		Email:       input.Email,
		Password:    input.Password,
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		PhoneNumber: input.PhoneNumber,
	})

	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.authService.IssueSession(
		request.Context(), user, request.UserAgent(), getClientIP(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	setTokenCookies(writer, session)

	respond.Created(writer, map[string]any{
		FieldAccessToken: session.AccessToken,
		FieldRefresh:     session.RefreshToken,
		FieldUser:        session.User.Public(),
	})
}

/*
Login authenticates a user and establishes a session.

POST /api/login

Description: Verifies credentials, generates the JWT access token and opaque
refresh token, and injects both as secure cookies alongside the JSON body.

Request:
  - Body: loginRequest (Email, Password)

Response:
  - 200: Token pair and public profile
  - 400: ErrInvalidJSON: Missing or malformed email
  - 401: ErrUnauthorized: Invalid credentials
  - 403: ErrForbidden: Account is not active
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldEmail, input.Email).
		Email(FieldEmail, input.Email).
		Required(FieldPassword, input.Password)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.authService.Login(request.Context(), LoginInput{
		Email:     input.Email,
		Password:  input.Password,
		UserAgent: request.UserAgent(),
		IPAddress: getClientIP(request),
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	setTokenCookies(writer, session)

	respond.OK(writer, map[string]any{
		FieldAccessToken: session.AccessToken,
		FieldRefresh:     session.RefreshToken,
		FieldUser:        session.User.Public(),
	})
}

/*
Logout revokes the caller's refresh token and clears the token cookies.

POST /api/logout

Description: Requires a valid access token. The refresh token arrives in the
body, is revoked in persistent storage, and lands on the shared blacklist so
no other worker accepts it again.

Request:
  - Body: refreshRequest (Refresh)

Response:
  - 200: Message: Logout acknowledgment
  - 400: ErrBadRequest: Missing or invalid refresh token
  - 401: ErrUnauthorized: Missing or invalid access token
*/
func (handler *Handler) logout(writer http.ResponseWriter, request *http.Request) {
	var input refreshRequest

	// An absent body is treated the same as an absent token.
	_ = requestutil.DecodeJSON(request, &input)

	if err := handler.authService.Logout(request.Context(), input.Refresh); err != nil {
		respond.Error(writer, request, err)
		return
	}

	clearTokenCookies(writer)

	respond.OK(writer, map[string]string{
		FieldMessage: "Successfully logged out",
	})
}

/*
Refresh issues a new access token using a valid refresh token.

POST /api/token/refresh

Description: Validates the refresh token against the blacklist and the session
store, then mints a fresh access token. The refresh token is not rotated.

Request:
  - Body: refreshRequest (Refresh)

Response:
  - 200: New access token
  - 401: ErrUnauthorized: Missing, expired, or blacklisted refresh token
*/
func (handler *Handler) refresh(writer http.ResponseWriter, request *http.Request) {
	var input refreshRequest

	_ = requestutil.DecodeJSON(request, &input)

	accessToken, err := handler.authService.Refresh(request.Context(), input.Refresh)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{
		FieldAccessToken: accessToken,
	})
}

// # Cookie Helpers

func setTokenCookies(writer http.ResponseWriter, session *LoginSession) {
	http.SetCookie(writer, &http.Cookie{
		Name:     constants.AccessTokenCookieName,
		Value:    session.AccessToken,
		Path:     "/",
		Expires:  time.Now().Add(AccessTokenTTL),
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
	http.SetCookie(writer, &http.Cookie{
		Name:     constants.RefreshTokenCookieName,
		Value:    session.RefreshToken,
		Path:     "/",
		Expires:  session.RefreshTokenExpiresAt,
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}

func clearTokenCookies(writer http.ResponseWriter) {
	for _, name := range []string{constants.AccessTokenCookieName, constants.RefreshTokenCookieName} {
		http.SetCookie(writer, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			Secure:   true,
			HttpOnly: true,
			SameSite: http.SameSiteStrictMode,
		})
	}
}

// getClientIP tries to extract the real IP address of a user over proxy environments.
func getClientIP(request *http.Request) string {

	ip := request.Header.Get(constants.HeaderXRealIP)
	if ip == "" {
		ip = request.Header.Get(constants.HeaderXForwardedFor)
	}

	if ip == "" {
		ip = request.RemoteAddr
	}
	return ip
}
