// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import "context"

// subjectContextKey is the key type for storing the verified user id in context.Context.
type subjectContextKey struct{}

// WithSubject returns a new context carrying the verified user id.
func WithSubject(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, subjectContextKey{}, userID)
}

// SubjectFromContext returns the user id set by RequireBearer.
func SubjectFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(subjectContextKey{}).(int64)
	return userID, ok
}
