// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quickly-survey/auth"
	"github.com/danielhkuo/quickly-survey/middleware"
	"github.com/danielhkuo/quickly-survey/models"
	"github.com/danielhkuo/quickly-survey/store"
)

// ResponseStore is the persistence the survey handlers need.
type ResponseStore interface {
	Create(ctx context.Context, userID int64, data json.RawMessage) (*models.SurveyResponse, error)
	ListAll(ctx context.Context) ([]models.SurveyResponse, error)
}

type SurveyResponseHandler struct {
	store ResponseStore
}

func NewSurveyResponseHandler(store ResponseStore) *SurveyResponseHandler {
	return &SurveyResponseHandler{store: store}
}

// Create handles POST /survey-responses
// Must be mounted behind auth.RequireBearer; the submitter is the token's userId.
func (h *SurveyResponseHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.SubjectFromContext(r.Context())
	if !ok {
		middleware.TextResponse(w, http.StatusUnauthorized, auth.UnauthorizedBody)
		return
	}

	var req models.CreateSurveyResponseRequest
	if err := middleware.ParseJSONBody(w, r, &req); err != nil {
		if errors.Is(err, middleware.ErrBodyTooLarge) {
			middleware.ErrorResponse(w, http.StatusRequestEntityTooLarge, "Request body too large")
			return
		}
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Validate input
	data := bytes.TrimSpace(req.Data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "data is required")
		return
	}
	if data[0] != '{' {
		middleware.ErrorResponse(w, http.StatusBadRequest, "data must be a JSON object")
		return
	}

	created, err := h.store.Create(r.Context(), userID, data)
	if errors.Is(err, store.ErrInvalidData) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "data must be a JSON object")
		return
	}
	if err != nil {
		slog.Error("failed to store survey response", "error", err, "user_id", userID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("survey response created", "id", created.ID, "user_id", userID)

	middleware.JSONResponse(w, http.StatusOK, created)
}

// List handles GET /survey-responses
// Returns every stored response in id order.
func (h *SurveyResponseHandler) List(w http.ResponseWriter, r *http.Request) {
	responses, err := h.store.ListAll(r.Context())
	if err != nil {
		slog.Error("failed to list survey responses", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ListSurveyResponsesResponse{
		SurveyResponses: responses,
	})
}
