// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quickly-survey/middleware"
	"github.com/danielhkuo/quickly-survey/survey"
)

type ResultsHandler struct {
	store         ResponseStore
	questionnaire *survey.Questionnaire
}

func NewResultsHandler(store ResponseStore, questionnaire *survey.Questionnaire) *ResultsHandler {
	return &ResultsHandler{store: store, questionnaire: questionnaire}
}

// GetResults handles GET /results
// Tallies every stored response against the questionnaire.
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	responses, err := h.store.ListAll(r.Context())
	if err != nil {
		slog.Error("failed to load responses for results", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, ComputeTally(h.questionnaire, responses))
}

// GetSurvey handles GET /survey
func (h *ResultsHandler) GetSurvey(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.questionnaire)
}
