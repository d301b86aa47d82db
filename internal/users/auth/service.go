// Copyright (c) 2026 Urugo Women's Opportunity Center. All rights reserved.

package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/urugowoc/urugo/internal/platform/apperr"
	"github.com/urugowoc/urugo/internal/platform/sec"
	"github.com/urugowoc/urugo/pkg/uuid"
)

// # Contracts & Types

// TokenProvider defines the contract for generating security tokens.
type TokenProvider interface {
	// GenerateAccessToken creates a signed JWT string for the given user.
	//
	// # Parameters
	//   - userID: The ID of the account.
	//   - email: The email of the account.
	//   - role: The role of the account.
	//   - timeToLive: The duration before the token expires.
	//
	// # Returns
	//   - A signed JWT string, or an err if signing fails.
	GenerateAccessToken(userID, email, role string, timeToLive time.Duration) (string, error)
}

// Service implements user authentication use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing, registration,
// or token logic must be reviewed before merging.
type Service struct {
	userRepository      UserRepository
	sessionRepository   SessionRepository
	blacklistRepository BlacklistRepository
	tokenProvider       TokenProvider
}

// NewService constructs a new [Service] with necessary dependencies.
func NewService(
	userRepo UserRepository,
	sessionRepo SessionRepository,
	blacklistRepo BlacklistRepository,
	tokenProv TokenProvider,
) *Service {
	return &Service{
		userRepository:      userRepo,
		sessionRepository:   sessionRepo,
		blacklistRepository: blacklistRepo,
		tokenProvider:       tokenProv,
	}
}

// # Registration Flow

// RegisterInput holds the data required to enroll a new member.
type RegisterInput struct {
	Email       string
	Password    string
	FirstName   string
	LastName    string
	PhoneNumber string
}

/*
Register validates, hashes, and persists a brand new user account.

Description: Enrollment of a new member. The email is trimmed and lowercased
before the uniqueness check, and the role is always forced to the base user
role regardless of input.

Parameters:
  - context: context.Context
  - input: RegisterInput

Returns:
  - *User: Created entity
  - err: Conflict (if identity exists) or storage errors
*/
func (service *Service) Register(context context.Context, input RegisterInput) (*User, error) {
	return service.register(context, input, sec.RoleUser, false, false)
}

/*
RegisterSuperuser enrolls a privileged account with the superuser role.

Description: Mirrors Register but requires both staff flags to be explicitly
asserted by the caller. A superuser row without them would be unable to pass
the policy checks later, so creation is rejected up front.

Parameters:
  - context: context.Context
  - input: RegisterInput
  - isStaff: bool
  - isSuperuser: bool

Returns:
  - *User: Created entity
  - err: Validation, Conflict, or storage errors
*/
func (service *Service) RegisterSuperuser(context context.Context, input RegisterInput, isStaff, isSuperuser bool) (*User, error) {
	if !isStaff {
		return nil, apperr.ValidationError("Superuser must have is_staff=true")
	}
	if !isSuperuser {
		return nil, apperr.ValidationError("Superuser must have is_superuser=true")
	}
	return service.register(context, input, sec.RoleSuperuser, true, true)
}

func (service *Service) register(context context.Context, input RegisterInput, role sec.UserRole, isStaff, isSuperuser bool) (*User, error) {

	// Normalize the address once so every later comparison agrees.
	email := strings.ToLower(strings.TrimSpace(input.Email))

	// Verify email uniqueness. Return a client-safe Conflict err.
	_, err := service.userRepository.FindByEmail(context, email)
	if err == nil {
		return nil, apperr.Conflict("Email is already registered")
	}

	// Prevent storing plain-text passwords. Default cost is used for balance
	// between security and CPU utilization during registration spikes.
	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	// Construct the new User entity. Time-sortable ID to prevent PG index fragmentation.
	user := &User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hashedPassword,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		PhoneNumber:  input.PhoneNumber,
		Role:         role,
		IsStaff:      isStaff,
		IsSuperuser:  isSuperuser,
		IsActive:     true,
	}

	// Persist the user. The unique index on lower(email) settles races between
	// concurrent registrations; the repository surfaces it as a Conflict.
	if err := service.userRepository.Create(context, user); err != nil {
		return nil, err
	}

	return user, nil
}

// # Authentication Flow

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Email     string
	Password  string
	UserAgent string
	IPAddress string
}

// LoginSession represents a successfully established user session.
type LoginSession struct {
	AccessToken           string
	RefreshToken          string
	RefreshTokenExpiresAt time.Time
	User                  *User
}

/*
Login validates user credentials and issues security tokens.

Description: Verifies identity with constant-time password comparison. Unknown
email and wrong password produce the identical generic message so the endpoint
cannot be used to enumerate accounts.

Parameters:
  - context: context.Context
  - input: LoginInput

Returns:
  - *LoginSession: Transport-ready session identifiers
  - err: Unauthorized, Forbidden (inactive account), or internal failures
*/
func (service *Service) Login(context context.Context, input LoginInput) (*LoginSession, error) {

	email := strings.ToLower(strings.TrimSpace(input.Email))
	password := strings.TrimSpace(input.Password)

	user, err := service.userRepository.FindByEmail(context, email)

	// If (err != nil) the user does not exist. Generic message to prevent enumeration.
	if err != nil {
		return nil, apperr.Unauthorized("Invalid credentials")
	}

	// Verify password hash using constant-time comparison in bcrypt to prevent timing attacks
	if !sec.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperr.Unauthorized("Invalid credentials")
	}

	// Deactivated accounts keep their row but lose access.
	if !user.IsActive {
		return nil, apperr.Forbidden("Account is not active")
	}

	return service.IssueSession(context, user, input.UserAgent, input.IPAddress)
}

/*
IssueSession mints a fresh token pair for an already-authenticated user.

Description: Generates the short-lived access token, the opaque refresh token,
and persists the hashed tracking session. Shared by login and registration.

Parameters:
  - context: context.Context
  - user: *User
  - userAgent: string
  - ipAddress: string

Returns:
  - *LoginSession: Transport-ready session identifiers
  - err: Token generation or storage failures
*/
func (service *Service) IssueSession(context context.Context, user *User, userAgent, ipAddress string) (*LoginSession, error) {

	// Generate short-lived Access Token
	accessToken, err := service.tokenProvider.GenerateAccessToken(user.ID, user.Email, string(user.Role), AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_generation_failed: %w", err)
	}

	// Generate long-lived Refresh Token
	refreshToken, err := sec.GenerateSecureToken(RefreshTokenLength)
	if err != nil {
		return nil, fmt.Errorf("auth_service_refresh_token_failed: %w", err)
	}

	// Create and persist the tracking session. Only the hash is stored.
	expiresAt := time.Now().Add(RefreshTokenTTL)
	session := &Session{
		ID:        uuid.New(),
		UserID:    user.ID,
		TokenHash: sec.HashToken(refreshToken),
		UserAgent: userAgent,
		IPAddress: ipAddress,
		ExpiresAt: expiresAt,
		IsRevoked: false,
	}

	if err := service.sessionRepository.Create(context, session); err != nil {
		return nil, fmt.Errorf("auth_service_session_creation_failed: %w", err)
	}

	return &LoginSession{
		AccessToken:           accessToken,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresAt: expiresAt,
		User:                  user,
	}, nil
}

// # Session Management

/*
Logout permanently revokes the caller's refresh token.

Description: Revokes the tracked session row and writes the token hash to the
shared blacklist so every worker rejects the token immediately. A second
logout with the same token fails, which keeps revocation observable.

Parameters:
  - context: context.Context
  - refreshToken: string

Returns:
  - err: BadRequest when the token is missing or not an active session
*/
func (service *Service) Logout(context context.Context, refreshToken string) error {

	if refreshToken == "" {
		return apperr.BadRequest("Refresh token is required")
	}

	tokenHash := sec.HashToken(refreshToken)

	// Already-blacklisted tokens are indistinguishable from unknown ones.
	blacklisted, err := service.blacklistRepository.IsBlacklisted(context, tokenHash)
	if err != nil {
		return fmt.Errorf("auth_service_logout_blacklist_check_failed: %w", err)
	}
	if blacklisted {
		return apperr.BadRequest("Invalid refresh token")
	}

	session, err := service.sessionRepository.FindByTokenHash(context, tokenHash)
	if err != nil {
		return apperr.BadRequest("Invalid refresh token")
	}

	if err := service.sessionRepository.Revoke(context, session.ID); err != nil {
		return fmt.Errorf("auth_service_logout_failed: %w", err)
	}

	// Blacklist for the session's remaining lifetime. After that the token is
	// expired anyway and the entry self-prunes.
	if err := service.blacklistRepository.Add(context, tokenHash, time.Until(session.ExpiresAt)); err != nil {
		return fmt.Errorf("auth_service_logout_blacklist_failed: %w", err)
	}

	return nil
}

/*
Refresh issues a new access token against a valid refresh token.

Description: Checks the blacklist first, then resolves the non-revoked,
non-expired session and its active owner. The refresh token itself is not
rotated; it stays valid until logout or natural expiry.

Parameters:
  - context: context.Context
  - refreshToken: string

Returns:
  - string: New signed access token
  - err: Unauthorized for any invalid token, or internal failures
*/
func (service *Service) Refresh(context context.Context, refreshToken string) (string, error) {

	if refreshToken == "" {
		return "", apperr.Unauthorized("Invalid or expired refresh token")
	}

	tokenHash := sec.HashToken(refreshToken)

	blacklisted, err := service.blacklistRepository.IsBlacklisted(context, tokenHash)
	if err != nil {
		return "", fmt.Errorf("auth_service_refresh_blacklist_check_failed: %w", err)
	}
	if blacklisted {
		return "", apperr.Unauthorized("Invalid or expired refresh token")
	}

	session, err := service.sessionRepository.FindByTokenHash(context, tokenHash)
	if err != nil {
		return "", apperr.Unauthorized("Invalid or expired refresh token")
	}

	user, err := service.userRepository.FindByID(context, session.UserID)
	if err != nil || !user.IsActive {
		return "", apperr.Unauthorized("Invalid or expired refresh token")
	}

	accessToken, err := service.tokenProvider.GenerateAccessToken(user.ID, user.Email, string(user.Role), AccessTokenTTL)
	if err != nil {
		return "", fmt.Errorf("auth_service_refresh_access_token_failed: %w", err)
	}

	return accessToken, nil
}
