// Copyright (c) 2026 Urugo Women's Opportunity Center. All rights reserved.

package auth_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urugowoc/urugo/internal/platform/ctxutil"
	"github.com/urugowoc/urugo/internal/platform/sec"
	"github.com/urugowoc/urugo/internal/users/auth"
)

func newTestRouter(service *auth.Service) http.Handler {
	router := chi.NewRouter()
	auth.NewHandler(service).RegisterRoutes(router)
	return router
}

// withClaims simulates an authenticated request the way the access policy
// middleware would after verifying a bearer token.
func withClaims(next http.Handler, claims *sec.AuthClaims) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := ctxutil.WithAuthUser(request.Context(), claims)
		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

func postJSON(t *testing.T, handler http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	request := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	request.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	return recorder
}

/*
TestHandler_Register verifies the happy path returns 201 with the token pair
and the reduced public profile.
*/
func TestHandler_Register(t *testing.T) {
	service, _, _, _ := newService()
	router := newTestRouter(service)

	recorder := postJSON(t, router, "/register", `{
		"email": "amina@example.com",
		"password": "sekret123",
		"first_name": "Amina",
		"last_name": "Uwase",
		"phone_number": "+250788123456"
	}`)

	require.Equal(t, http.StatusCreated, recorder.Code)

	var envelope struct {
		Data struct {
			Access  string `json:"access"`
			Refresh string `json:"refresh"`
			User    struct {
				Email string `json:"email"`
			} `json:"user"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))

	assert.NotEmpty(t, envelope.Data.Access)
	assert.NotEmpty(t, envelope.Data.Refresh)
	assert.Equal(t, "amina@example.com", envelope.Data.User.Email)

	// The raw password and its hash must never leak through the response.
	assert.NotContains(t, recorder.Body.String(), "sekret123")
	assert.NotContains(t, recorder.Body.String(), "password_hash")
}

/*
TestHandler_Register_Validation verifies the password policy and email format
are enforced at the edge.
*/
func TestHandler_Register_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"short_password", `{"email": "a@example.com", "password": "abc1"}`},
		{"password_without_digit", `{"email": "a@example.com", "password": "abcdefgh"}`},
		{"bad_email", `{"email": "not-an-email", "password": "sekret123"}`},
		{"bad_phone", `{"email": "a@example.com", "password": "sekret123", "phone_number": "12ab"}`},
		{"malformed_json", `{"email": `},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _, _, _ := newService()
			recorder := postJSON(t, newTestRouter(service), "/register", tt.body)

			assert.Equal(t, http.StatusBadRequest, recorder.Code)
		})
	}
}

/*
TestHandler_Login verifies the token pair lands in both the JSON body and the
secure cookies.
*/
func TestHandler_Login(t *testing.T) {
	service, _, _, _ := newService()
	registerUser(t, service, "amina@example.com", "sekret123")
	router := newTestRouter(service)

	recorder := postJSON(t, router, "/login", `{"email": "amina@example.com", "password": "sekret123"}`)
	require.Equal(t, http.StatusOK, recorder.Code)

	cookieNames := make([]string, 0, 2)
	for _, cookie := range recorder.Result().Cookies() {
		cookieNames = append(cookieNames, cookie.Name)
		assert.True(t, cookie.HttpOnly)
	}
	assert.Contains(t, cookieNames, "access_token")
	assert.Contains(t, cookieNames, "refresh_token")
}

/*
TestHandler_Login_Unauthorized verifies bad credentials map to a 401 with the
generic error code.
*/
func TestHandler_Login_Unauthorized(t *testing.T) {
	service, _, _, _ := newService()
	registerUser(t, service, "amina@example.com", "sekret123")

	recorder := postJSON(t, newTestRouter(service), "/login", `{"email": "amina@example.com", "password": "wrong1234"}`)
	require.Equal(t, http.StatusUnauthorized, recorder.Code)

	var envelope struct {
		Error string `json:"error"`
		Code  string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	assert.Equal(t, "UNAUTHORIZED", envelope.Code)
	assert.Equal(t, "Invalid credentials", envelope.Error)
}

/*
TestHandler_Logout verifies the endpoint is gated on authentication, clears
both token cookies, and surfaces the bad-token cases as 400s.
*/
func TestHandler_Logout(t *testing.T) {
	service, _, _, _ := newService()
	user := registerUser(t, service, "amina@example.com", "sekret123")

	login, err := service.Login(context.Background(), auth.LoginInput{
		Email:    "amina@example.com",
		Password: "sekret123",
	})
	require.NoError(t, err)

	claims := &sec.AuthClaims{UserID: user.ID, Email: user.Email, Role: string(user.Role)}

	t.Run("anonymous_rejected", func(t *testing.T) {
		recorder := postJSON(t, newTestRouter(service), "/logout", `{"refresh": "`+login.RefreshToken+`"}`)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("missing_token", func(t *testing.T) {
		router := withClaims(newTestRouter(service), claims)
		recorder := postJSON(t, router, "/logout", `{}`)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Refresh token is required")
	})

	t.Run("success_clears_cookies", func(t *testing.T) {
		router := withClaims(newTestRouter(service), claims)
		recorder := postJSON(t, router, "/logout", `{"refresh": "`+login.RefreshToken+`"}`)
		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Successfully logged out")

		for _, cookie := range recorder.Result().Cookies() {
			assert.Empty(t, cookie.Value)
			assert.True(t, cookie.MaxAge < 0)
		}
	})

	t.Run("reuse_rejected", func(t *testing.T) {
		router := withClaims(newTestRouter(service), claims)
		recorder := postJSON(t, router, "/logout", `{"refresh": "`+login.RefreshToken+`"}`)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Invalid refresh token")
	})
}

/*
TestHandler_Refresh verifies the exchange of a refresh token for a fresh
access token, including the post-logout rejection.
*/
func TestHandler_Refresh(t *testing.T) {
	service, _, _, _ := newService()
	registerUser(t, service, "amina@example.com", "sekret123")

	login, err := service.Login(context.Background(), auth.LoginInput{
		Email:    "amina@example.com",
		Password: "sekret123",
	})
	require.NoError(t, err)

	router := newTestRouter(service)

	recorder := postJSON(t, router, "/token/refresh", `{"refresh": "`+login.RefreshToken+`"}`)
	require.Equal(t, http.StatusOK, recorder.Code)

	var envelope struct {
		Data struct {
			Access string `json:"access"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	assert.True(t, strings.HasPrefix(envelope.Data.Access, "access."))

	require.NoError(t, service.Logout(context.Background(), login.RefreshToken))

	recorder = postJSON(t, router, "/token/refresh", `{"refresh": "`+login.RefreshToken+`"}`)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
