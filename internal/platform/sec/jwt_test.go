// Copyright (c) 2026 Urugo Women's Opportunity Center. All rights reserved.

package sec_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urugowoc/urugo/internal/platform/sec"
)

// writeTestKeyPair generates a throwaway RSA key pair on disk and returns the
// paths. Keys are 2048 bits; generation takes well under a second.
func writeTestKeyPair(t *testing.T) (privatePath, publicPath string) {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	dir := t.TempDir()
	privatePath = filepath.Join(dir, "jwt_private.pem")
	publicPath = filepath.Join(dir, "jwt_public.pem")

	privatePEM := pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(key),
	})
	require.NoError(t, os.WriteFile(privatePath, privatePEM, 0o600))

	publicDER, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)
	publicPEM := pem.EncodeToMemory(&pem.Block{
		Type:  "PUBLIC KEY",
		Bytes: publicDER,
	})
	require.NoError(t, os.WriteFile(publicPath, publicPEM, 0o600))

	return privatePath, publicPath
}

func newTestTokenService(t *testing.T) *sec.TokenService {
	t.Helper()
	privatePath, publicPath := writeTestKeyPair(t)
	service, err := sec.NewTokenService(privatePath, publicPath, "urugowoc.org")
	require.NoError(t, err)
	return service
}

/*
TestTokenService_RoundTrip verifies a generated token carries the custom
claims back through verification.
*/
func TestTokenService_RoundTrip(t *testing.T) {
	service := newTestTokenService(t)

	token, err := service.GenerateAccessToken("user-123", "amina@urugowoc.org", "publisher", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.VerifyToken(token)
	require.NoError(t, err)

	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "amina@urugowoc.org", claims.Email)
	assert.Equal(t, "publisher", claims.Role)
	assert.Equal(t, "user-123", claims.Subject)
	assert.Equal(t, "urugowoc.org", claims.Issuer)
}

/*
TestTokenService_Expired verifies an expired token is rejected.
*/
func TestTokenService_Expired(t *testing.T) {
	service := newTestTokenService(t)

	token, err := service.GenerateAccessToken("user-123", "amina@urugowoc.org", "user", -time.Minute)
	require.NoError(t, err)

	_, err = service.VerifyToken(token)
	assert.Error(t, err)
}

/*
TestTokenService_WrongKey verifies a token signed by one key pair fails
verification against another.
*/
func TestTokenService_WrongKey(t *testing.T) {
	signer := newTestTokenService(t)
	verifier := newTestTokenService(t)

	token, err := signer.GenerateAccessToken("user-123", "amina@urugowoc.org", "user", time.Hour)
	require.NoError(t, err)

	_, err = verifier.VerifyToken(token)
	assert.Error(t, err)
}

/*
TestTokenService_Garbage verifies malformed input never yields claims.
*/
func TestTokenService_Garbage(t *testing.T) {
	service := newTestTokenService(t)

	for _, token := range []string{"", "not.a.jwt", "aaaa.bbbb.cccc"} {
		_, err := service.VerifyToken(token)
		assert.Error(t, err)
	}
}

/*
TestHashToken verifies the refresh-token digest is deterministic and never
equals the raw token.
*/
func TestHashToken(t *testing.T) {
	hash := sec.HashToken("refresh-token-value")

	assert.Len(t, hash, 64)
	assert.NotEqual(t, "refresh-token-value", hash)
	assert.Equal(t, hash, sec.HashToken("refresh-token-value"))
	assert.NotEqual(t, hash, sec.HashToken("other-token"))
}

/*
TestPasswordHashing verifies bcrypt round-trips and rejects wrong passwords.
*/
func TestPasswordHashing(t *testing.T) {
	hash, err := sec.HashPassword("sekret123")
	require.NoError(t, err)

	assert.NotEqual(t, "sekret123", hash)
	assert.True(t, sec.CheckPasswordHash("sekret123", hash))
	assert.False(t, sec.CheckPasswordHash("wrong-password", hash))
}
