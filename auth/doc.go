// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth verifies the bearer tokens that gate survey submissions.

# Tokens

Tokens are compact JWTs signed with RS256, RS384 or RS512. The payload
must carry a numeric userId claim and an exp claim:

	{"userId": 11, "iat": 1700000000, "exp": 1700003600}

Any other algorithm (HS256, none) is rejected before the key is consulted.

# Verifying

	key, err := auth.ParsePublicKey(cfg.PublicKeyPEM)
	verifier := auth.NewVerifier(key, auth.WithLeeway(30*time.Second))
	userID, err := verifier.Verify(token)

Failures wrap one of ErrMissingCredential, ErrInvalidSignature, ErrExpired,
ErrMalformedToken or ErrMissingClaim. Use errors.Is to tell them apart.

# HTTP

RequireBearer wraps a handler. It answers every failure with status 401 and
the plain body "Unauthorized", and stores the verified user id in the request
context:

	mux.Handle("POST /survey-responses", auth.RequireBearer(verifier)(h))

	userID, ok := auth.SubjectFromContext(r.Context())

# Signing

Signer mints tokens for tests and local development:

	token, err := auth.NewSigner(privateKey).Generate(11, time.Hour)
*/
package auth
