package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenIssuer_IssueAndVerify(t *testing.T) {
	issuer, err := NewTokenIssuerWith("test-secret", "test-issuer", "test-audience")
	require.NoError(t, err)

	before := time.Now()
	signed, err := issuer.Issue("identity-123")
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims := &AccessClaims{}
	parsed, err := jwt.ParseWithClaims(signed, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			t.Fatalf("unexpected signing method: %v", token.Method)
		}
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	assert.Equal(t, "identity-123", claims.Identity)
	assert.Equal(t, "test-issuer", claims.Issuer)
	assert.Equal(t, jwt.ClaimStrings{"test-audience"}, claims.Audience)

	// Expiry is 60 seconds from issuance, with a little slack for the clock.
	expiry := claims.ExpiresAt.Time
	assert.WithinDuration(t, before.Add(TokenTTL), expiry, 2*time.Second)
}

func TestTokenIssuer_WrongSecretFailsVerification(t *testing.T) {
	issuer, err := NewTokenIssuerWith("test-secret", "test-issuer", "test-audience")
	require.NoError(t, err)

	signed, err := issuer.Issue("identity-123")
	require.NoError(t, err)

	_, err = jwt.ParseWithClaims(signed, &AccessClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte("another-secret"), nil
	})
	assert.Error(t, err)
}

func TestTokenIssuer_MissingSecret(t *testing.T) {
	_, err := NewTokenIssuerWith("", "test-issuer", "test-audience")
	assert.Error(t, err)
}
