// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/quickly-survey/middleware"
)

// UnauthorizedBody is the whole response body for every rejected credential.
const UnauthorizedBody = "Unauthorized"

// BearerToken extracts the token from an Authorization header value.
// The scheme is matched case-insensitively.
func BearerToken(header string) (string, error) {
	const prefix = "bearer "

	header = strings.TrimSpace(header)
	if header == "" {
		return "", ErrMissingCredential
	}
	if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", ErrMissingCredential
	}

	token := strings.TrimSpace(header[len(prefix):])
	if token == "" {
		return "", ErrMissingCredential
	}
	return token, nil
}

// RequireBearer rejects requests without a valid bearer token and puts the
// verified user id into the request context. Every failure kind gets the same
// 401 response; the kind is only logged.
func RequireBearer(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := BearerToken(r.Header.Get("Authorization"))
			if err == nil {
				var userID int64
				userID, err = verifier.Verify(token)
				if err == nil {
					next.ServeHTTP(w, r.WithContext(WithSubject(r.Context(), userID)))
					return
				}
			}

			slog.Warn("request unauthorized",
				"method", r.Method,
				"path", r.URL.Path,
				"reason", reason(err),
				"error", err,
			)
			middleware.TextResponse(w, http.StatusUnauthorized, UnauthorizedBody)
		})
	}
}

func reason(err error) string {
	switch {
	case errors.Is(err, ErrMissingCredential):
		return "missing_credential"
	case errors.Is(err, ErrExpired):
		return "expired"
	case errors.Is(err, ErrInvalidSignature):
		return "invalid_signature"
	case errors.Is(err, ErrMissingClaim):
		return "missing_claim"
	default:
		return "malformed"
	}
}
