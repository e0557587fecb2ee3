// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /status", middleware.WithLogging(handler))

Logs request start (method, path, remote, request_id) and completion
(status, duration_ms). The request id comes from chi's RequestID middleware
when the router installs it.

# CORS Middleware

	handler := middleware.CORS([]string{"https://survey.example.com"})(mux)

Allows methods GET, POST, OPTIONS with headers Authorization, Content-Type.
An origin list of "*" allows any origin. Preflight requests get 204.

# Response Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")
	middleware.TextResponse(w, http.StatusOK, "ok")

# Request Bodies

	var req models.CreateSurveyResponseRequest
	if err := middleware.ParseJSONBody(w, r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

Bodies are capped at MaxBodyBytes (1 MiB); larger ones fail with ErrBodyTooLarge.
*/
package middleware
