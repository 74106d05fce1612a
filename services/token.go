package services

import (
	"time"

	"lead-intake/config"
	"lead-intake/errors"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is the validity window of an issued access token.
const TokenTTL = 60 * time.Second

// AccessClaims holds the JWT claims for an issued access token. The identity
// claim keeps its original "Id" name on the wire.
type AccessClaims struct {
	Identity string `json:"Id"`
	jwt.RegisteredClaims
}

// TokenIssuer mints short-lived HMAC-SHA256 signed access tokens
type TokenIssuer struct {
	secret   []byte
	issuer   string
	audience string
}

// NewTokenIssuer builds an issuer from the loaded application config. A
// missing signing secret is a configuration error, detected at startup.
func NewTokenIssuer() (*TokenIssuer, error) {
	if config.AppConfig.TokenSecret == "" {
		return nil, errors.E(errors.Internal, "token signing secret not configured (set TOKEN_SECRET)")
	}
	return &TokenIssuer{
		secret:   []byte(config.AppConfig.TokenSecret),
		issuer:   config.AppConfig.TokenIssuer,
		audience: config.AppConfig.TokenAudience,
	}, nil
}

// NewTokenIssuerWith builds an issuer with explicit settings, used by tests.
func NewTokenIssuerWith(secret, issuer, audience string) (*TokenIssuer, error) {
	if secret == "" {
		return nil, errors.E(errors.Internal, "token signing secret not configured")
	}
	return &TokenIssuer{secret: []byte(secret), issuer: issuer, audience: audience}, nil
}

// Issue signs a token carrying the given identity value, valid for TokenTTL
// from now.
func (t *TokenIssuer) Issue(identity string) (string, error) {
	now := time.Now()
	claims := AccessClaims{
		Identity: identity,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    t.issuer,
			Audience:  jwt.ClaimStrings{t.audience},
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", errors.E(errors.Internal, "error signing token", err)
	}
	return signed, nil
}
