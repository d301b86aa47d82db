// Copyright (c) 2026 Urugo Women's Opportunity Center. All rights reserved.

package auth_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urugowoc/urugo/internal/platform/apperr"
	"github.com/urugowoc/urugo/internal/platform/sec"
	"github.com/urugowoc/urugo/internal/users/auth"
)

// # In-Memory Fakes

type fakeUserRepo struct {
	byEmail map[string]*auth.User
	byID    map[string]*auth.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byEmail: make(map[string]*auth.User),
		byID:    make(map[string]*auth.User),
	}
}

func (repo *fakeUserRepo) FindByID(_ context.Context, id string) (*auth.User, error) {
	if user, ok := repo.byID[id]; ok {
		return user, nil
	}
	return nil, apperr.NotFound("User not found")
}

func (repo *fakeUserRepo) FindByEmail(_ context.Context, email string) (*auth.User, error) {
	if user, ok := repo.byEmail[strings.ToLower(email)]; ok {
		return user, nil
	}
	return nil, apperr.NotFound("User not found with this email")
}

func (repo *fakeUserRepo) Create(_ context.Context, user *auth.User) error {
	key := strings.ToLower(user.Email)
	if _, exists := repo.byEmail[key]; exists {
		return apperr.Conflict("Email is already registered")
	}
	repo.byEmail[key] = user
	repo.byID[user.ID] = user
	return nil
}

type fakeSessionRepo struct {
	byHash map[string]*auth.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{byHash: make(map[string]*auth.Session)}
}

func (repo *fakeSessionRepo) Create(_ context.Context, session *auth.Session) error {
	repo.byHash[session.TokenHash] = session
	return nil
}

func (repo *fakeSessionRepo) FindByTokenHash(_ context.Context, tokenHash string) (*auth.Session, error) {
	session, ok := repo.byHash[tokenHash]
	if !ok || session.IsRevoked || time.Now().After(session.ExpiresAt) {
		return nil, apperr.NotFound("Session not found or expired")
	}
	return session, nil
}

func (repo *fakeSessionRepo) Revoke(_ context.Context, sessionID string) error {
	for _, session := range repo.byHash {
		if session.ID == sessionID {
			session.IsRevoked = true
		}
	}
	return nil
}

func (repo *fakeSessionRepo) RevokeAll(_ context.Context, userID string) error {
	for _, session := range repo.byHash {
		if session.UserID == userID {
			session.IsRevoked = true
		}
	}
	return nil
}

func (repo *fakeSessionRepo) DeleteExpired(_ context.Context) error { return nil }

type fakeBlacklist struct {
	entries map[string]time.Duration
}

func newFakeBlacklist() *fakeBlacklist {
	return &fakeBlacklist{entries: make(map[string]time.Duration)}
}

func (repo *fakeBlacklist) Add(_ context.Context, tokenHash string, ttl time.Duration) error {
	repo.entries[tokenHash] = ttl
	return nil
}

func (repo *fakeBlacklist) IsBlacklisted(_ context.Context, tokenHash string) (bool, error) {
	_, ok := repo.entries[tokenHash]
	return ok, nil
}

type fakeTokenProvider struct{}

func (fakeTokenProvider) GenerateAccessToken(userID, email, role string, _ time.Duration) (string, error) {
	return "access." + userID + "." + email + "." + role, nil
}

func newService() (*auth.Service, *fakeUserRepo, *fakeSessionRepo, *fakeBlacklist) {
	users := newFakeUserRepo()
	sessions := newFakeSessionRepo()
	blacklist := newFakeBlacklist()
	service := auth.NewService(users, sessions, blacklist, fakeTokenProvider{})
	return service, users, sessions, blacklist
}

func registerUser(t *testing.T, service *auth.Service, email, password string) *auth.User {
	t.Helper()
	user, err := service.Register(context.Background(), auth.RegisterInput{
		Email:     email,
		Password:  password,
		FirstName: "Amina",
		LastName:  "Uwase",
	})
	require.NoError(t, err)
	return user
}

// # Registration

/*
TestService_Register verifies enrollment normalizes the email, forces the base
role, and never stores the raw password.
*/
func TestService_Register(t *testing.T) {
	service, _, _, _ := newService()

	user, err := service.Register(context.Background(), auth.RegisterInput{
		Email:       "  Amina@Example.COM ",
		Password:    "sekret123",
		FirstName:   "Amina",
		LastName:    "Uwase",
		PhoneNumber: "+250788123456",
	})
	require.NoError(t, err)

	assert.Equal(t, "amina@example.com", user.Email)
	assert.Equal(t, sec.RoleUser, user.Role)
	assert.True(t, user.IsActive)
	assert.False(t, user.IsStaff)
	assert.False(t, user.IsSuperuser)
	assert.NotEmpty(t, user.ID)

	// The hash must verify while never equalling the raw input.
	assert.NotEqual(t, "sekret123", user.PasswordHash)
	assert.True(t, sec.CheckPasswordHash("sekret123", user.PasswordHash))
}

/*
TestService_Register_DuplicateEmail verifies case-insensitive duplicates are
rejected with a Conflict.
*/
func TestService_Register_DuplicateEmail(t *testing.T) {
	service, _, _, _ := newService()
	registerUser(t, service, "amina@example.com", "sekret123")

	_, err := service.Register(context.Background(), auth.RegisterInput{
		Email:    "AMINA@example.com",
		Password: "sekret123",
	})
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "CONFLICT", ae.Code)
	assert.Equal(t, "Email is already registered", ae.Message)
}

/*
TestService_RegisterSuperuser verifies the staff flags are mandatory and the
role is forced to superuser on success.
*/
func TestService_RegisterSuperuser(t *testing.T) {
	tests := []struct {
		name        string
		isStaff     bool
		isSuperuser bool
		wantErr     string
	}{
		{"missing_staff_flag", false, true, "Superuser must have is_staff=true"},
		{"missing_superuser_flag", true, false, "Superuser must have is_superuser=true"},
		{"both_flags", true, true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _, _, _ := newService()

			user, err := service.RegisterSuperuser(context.Background(), auth.RegisterInput{
				Email:    "admin@example.com",
				Password: "sekret123",
			}, tt.isStaff, tt.isSuperuser)

			if tt.wantErr != "" {
				require.Error(t, err)
				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, "VALIDATION_ERROR", ae.Code)
				assert.Equal(t, tt.wantErr, ae.Message)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, sec.RoleSuperuser, user.Role)
			assert.True(t, user.IsStaff)
			assert.True(t, user.IsSuperuser)
		})
	}
}

// # Authentication

/*
TestService_Login verifies a successful login returns both tokens and persists
only the hash of the refresh token.
*/
func TestService_Login(t *testing.T) {
	service, _, sessions, _ := newService()
	registerUser(t, service, "amina@example.com", "sekret123")

	session, err := service.Login(context.Background(), auth.LoginInput{
		Email:    " Amina@Example.com ",
		Password: "sekret123",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, session.AccessToken)
	assert.NotEmpty(t, session.RefreshToken)
	assert.Equal(t, "amina@example.com", session.User.Email)

	// The raw token must not appear in storage, only its hash.
	_, raw := sessions.byHash[session.RefreshToken]
	assert.False(t, raw)
	_, hashed := sessions.byHash[sec.HashToken(session.RefreshToken)]
	assert.True(t, hashed)
}

/*
TestService_Login_InvalidCredentials verifies that a wrong password and an
unknown email produce the identical generic message.
*/
func TestService_Login_InvalidCredentials(t *testing.T) {
	service, _, _, _ := newService()
	registerUser(t, service, "amina@example.com", "sekret123")

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"unknown_email", "nobody@example.com", "sekret123"},
		{"wrong_password", "amina@example.com", "wrong-password1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Login(context.Background(), auth.LoginInput{
				Email:    tt.email,
				Password: tt.password,
			})
			require.Error(t, err)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, 401, ae.HTTPStatus)
			assert.Equal(t, "Invalid credentials", ae.Message)
		})
	}
}

/*
TestService_Login_InactiveAccount verifies deactivated accounts are refused
with a Forbidden even when the password matches.
*/
func TestService_Login_InactiveAccount(t *testing.T) {
	service, users, _, _ := newService()
	user := registerUser(t, service, "amina@example.com", "sekret123")
	users.byID[user.ID].IsActive = false

	_, err := service.Login(context.Background(), auth.LoginInput{
		Email:    "amina@example.com",
		Password: "sekret123",
	})
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, 403, ae.HTTPStatus)
	assert.Equal(t, "Account is not active", ae.Message)
}

// # Logout & Blacklist

/*
TestService_Logout verifies a successful logout revokes the session, writes
the blacklist entry, and refuses the same token a second time.
*/
func TestService_Logout(t *testing.T) {
	service, _, sessions, blacklist := newService()
	registerUser(t, service, "amina@example.com", "sekret123")

	login, err := service.Login(context.Background(), auth.LoginInput{
		Email:    "amina@example.com",
		Password: "sekret123",
	})
	require.NoError(t, err)

	require.NoError(t, service.Logout(context.Background(), login.RefreshToken))

	tokenHash := sec.HashToken(login.RefreshToken)
	assert.True(t, sessions.byHash[tokenHash].IsRevoked)

	blacklisted, err := blacklist.IsBlacklisted(context.Background(), tokenHash)
	require.NoError(t, err)
	assert.True(t, blacklisted)

	// Revocation is monotonic: the second logout with the same token fails.
	err = service.Logout(context.Background(), login.RefreshToken)
	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, 400, ae.HTTPStatus)
	assert.Equal(t, "Invalid refresh token", ae.Message)
}

/*
TestService_Logout_BadTokens verifies the missing and unknown token cases.
*/
func TestService_Logout_BadTokens(t *testing.T) {
	service, _, _, _ := newService()

	tests := []struct {
		name    string
		token   string
		message string
	}{
		{"missing_token", "", "Refresh token is required"},
		{"unknown_token", "deadbeef", "Invalid refresh token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.Logout(context.Background(), tt.token)
			require.Error(t, err)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, 400, ae.HTTPStatus)
			assert.Equal(t, tt.message, ae.Message)
		})
	}
}

// # Token Refresh

/*
TestService_Refresh verifies a valid refresh token yields a new access token
without rotating the refresh token itself.
*/
func TestService_Refresh(t *testing.T) {
	service, _, sessions, _ := newService()
	registerUser(t, service, "amina@example.com", "sekret123")

	login, err := service.Login(context.Background(), auth.LoginInput{
		Email:    "amina@example.com",
		Password: "sekret123",
	})
	require.NoError(t, err)

	accessToken, err := service.Refresh(context.Background(), login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)

	// The session survives the refresh untouched.
	session := sessions.byHash[sec.HashToken(login.RefreshToken)]
	assert.False(t, session.IsRevoked)
}

/*
TestService_Refresh_Rejections verifies every invalid-token path collapses to
the same Unauthorized outcome.
*/
func TestService_Refresh_Rejections(t *testing.T) {
	service, users, _, _ := newService()
	user := registerUser(t, service, "amina@example.com", "sekret123")

	login, err := service.Login(context.Background(), auth.LoginInput{
		Email:    "amina@example.com",
		Password: "sekret123",
	})
	require.NoError(t, err)

	t.Run("empty_token", func(t *testing.T) {
		_, err := service.Refresh(context.Background(), "")
		requireUnauthorized(t, err)
	})

	t.Run("unknown_token", func(t *testing.T) {
		_, err := service.Refresh(context.Background(), "deadbeef")
		requireUnauthorized(t, err)
	})

	t.Run("blacklisted_after_logout", func(t *testing.T) {
		require.NoError(t, service.Logout(context.Background(), login.RefreshToken))
		_, err := service.Refresh(context.Background(), login.RefreshToken)
		requireUnauthorized(t, err)
	})

	t.Run("inactive_user", func(t *testing.T) {
		relogin, err := service.Login(context.Background(), auth.LoginInput{
			Email:    "amina@example.com",
			Password: "sekret123",
		})
		require.NoError(t, err)

		users.byID[user.ID].IsActive = false
		_, err = service.Refresh(context.Background(), relogin.RefreshToken)
		requireUnauthorized(t, err)
	})
}

func requireUnauthorized(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, 401, ae.HTTPStatus)
}
