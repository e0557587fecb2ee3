// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the survey API.

# Route Registration

NewRouter returns the full handler, middleware included:

	handler := router.NewRouter(conn, verifier, questionnaire, cfg)

# Endpoints

Health:

	GET /status - plain "ok"

Survey responses:

	POST /survey-responses - Submit (Authorization: Bearer <jwt>)
	GET  /survey-responses - List all, id ascending

Questionnaire and results (public):

	GET /survey  - Questionnaire definition
	GET /results - Answer counts per question

# Middleware

Outermost first: chi RequestID, RealIP and Recoverer, then CORS with
cfg.AllowedOrigins. Route handlers are wrapped with middleware.WithLogging,
and the submit route with auth.RequireBearer in front of that.
*/
package router
