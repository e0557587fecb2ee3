// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the quickly-survey API server.

quickly-survey collects questionnaire responses. A front end renders the
questionnaire from GET /survey and posts answers to POST /survey-responses
with a bearer token; operators read raw responses or per-question tallies.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=survey.db RSA_PUBLIC_KEY_FILE=keys/public.pem go run .

Or with flags:

	go run . -p 5000 -t postgres -d "postgres://..." -k keys/public.pem

Settings are also read from a .env file in the working directory.

# Configuration

Required settings:

  - DATABASE_URL (-d): SQLite file path or PostgreSQL connection string
  - RSA_PUBLIC_KEY_FILE (-k) or RSA_PUBLIC_KEY: key that verifies tokens

Optional settings:

  - PORT (-p): Server port (default: 5000)
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - TOKEN_LEEWAY (-leeway): clock skew allowed on expiry
  - QUESTIONS_FILE (-questions): questionnaire YAML
  - ALLOWED_ORIGINS (-origins): CORS origins (default: *)
  - LOG_LEVEL, LOG_FORMAT: logger settings

# Development Tokens

	go run . token -k keys/private.pem -user 11 -expires 1h

prints a signed token for userId 11.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (survey responses, results)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - auth: JWT verification, bearer middleware, dev signer
  - store: Survey response persistence
  - db: Connections, dialects, schema
  - survey: Questionnaire definition
  - models: Request/response types
  - logging: slog handler setup
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
