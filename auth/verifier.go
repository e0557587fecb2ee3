// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Verification failures. Callers that face the network must not tell these
// apart in responses; they exist for logging and tests.
var (
	ErrMissingCredential = errors.New("missing credential")
	ErrInvalidSignature  = errors.New("invalid token signature")
	ErrExpired           = errors.New("token expired")
	ErrMalformedToken    = errors.New("malformed token")
	ErrMissingClaim      = errors.New("missing required claim")
)

// rsaMethods are the only algorithms a token may be signed with.
var rsaMethods = []string{
	jwt.SigningMethodRS256.Alg(),
	jwt.SigningMethodRS384.Alg(),
	jwt.SigningMethodRS512.Alg(),
}

// Claims is the token payload. UserID is the subject identifier stored on
// every survey response.
type Claims struct {
	UserID int64 `json:"userId"`
	jwt.RegisteredClaims
}

// TokenVerifier turns a bearer token into the submitter's user id.
type TokenVerifier interface {
	Verify(tokenString string) (userID int64, err error)
}

// Verifier checks RSA-signed JWTs against a single public key.
// It holds no mutable state and is safe for concurrent use.
type Verifier struct {
	key    *rsa.PublicKey
	parser *jwt.Parser
}

type VerifierOption func(*verifierConfig)

type verifierConfig struct {
	leeway time.Duration
}

// WithLeeway tolerates clock skew between the token issuer and this server.
func WithLeeway(d time.Duration) VerifierOption {
	return func(cfg *verifierConfig) {
		if d > 0 {
			cfg.leeway = d
		}
	}
}

// NewVerifier creates a verifier for tokens signed by the private half of key.
func NewVerifier(key *rsa.PublicKey, opts ...VerifierOption) *Verifier {
	var cfg verifierConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Verifier{
		key: key,
		parser: jwt.NewParser(
			jwt.WithValidMethods(rsaMethods),
			jwt.WithExpirationRequired(),
			jwt.WithIssuedAt(),
			jwt.WithLeeway(cfg.leeway),
		),
	}
}

// ParsePublicKey decodes a PEM public key (PKIX, PKCS#1 or certificate).
func ParsePublicKey(pemData string) (*rsa.PublicKey, error) {
	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(strings.TrimSpace(pemData)))
	if err != nil {
		return nil, fmt.Errorf("parsing RSA public key: %w", err)
	}
	return key, nil
}

// Verify validates the token's signature and expiry and returns its userId claim.
func (v *Verifier) Verify(tokenString string) (int64, error) {
	if strings.TrimSpace(tokenString) == "" {
		return 0, ErrMissingCredential
	}

	claims := &Claims{}
	token, err := v.parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.key, nil
	})
	if err != nil {
		return 0, classify(err)
	}

	if !token.Valid {
		return 0, ErrInvalidSignature
	}

	if claims.UserID <= 0 {
		return 0, fmt.Errorf("%w: userId", ErrMissingClaim)
	}

	return claims.UserID, nil
}

// classify maps a jwt parse error onto one of the package's failure kinds.
func classify(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return fmt.Errorf("%w: %v", ErrExpired, err)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	case errors.Is(err, jwt.ErrTokenRequiredClaimMissing):
		return fmt.Errorf("%w: %v", ErrMissingClaim, err)
	default:
		return fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}
}
