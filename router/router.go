// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/danielhkuo/quickly-survey/auth"
	"github.com/danielhkuo/quickly-survey/cliparse"
	"github.com/danielhkuo/quickly-survey/db"
	"github.com/danielhkuo/quickly-survey/handlers"
	"github.com/danielhkuo/quickly-survey/middleware"
	"github.com/danielhkuo/quickly-survey/store"
	"github.com/danielhkuo/quickly-survey/survey"
)

func NewRouter(conn *db.DB, verifier auth.TokenVerifier, questionnaire *survey.Questionnaire, cfg cliparse.Config) http.Handler {
	mux := http.NewServeMux()

	// Initialize handlers
	responseStore := store.NewResponseStore(conn)
	responseHandler := handlers.NewSurveyResponseHandler(responseStore)
	resultsHandler := handlers.NewResultsHandler(responseStore, questionnaire)
	requireBearer := auth.RequireBearer(verifier)

	// Health check
	mux.HandleFunc("GET /status", func(w http.ResponseWriter, r *http.Request) {
		middleware.TextResponse(w, http.StatusOK, "ok")
	})

	// Survey responses: writes need a verified token, reads are open
	mux.Handle("POST /survey-responses", requireBearer(middleware.WithLogging(responseHandler.Create)))
	mux.HandleFunc("GET /survey-responses", middleware.WithLogging(responseHandler.List))

	// Questionnaire and aggregated results (public)
	mux.HandleFunc("GET /survey", middleware.WithLogging(resultsHandler.GetSurvey))
	mux.HandleFunc("GET /results", middleware.WithLogging(resultsHandler.GetResults))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("quickly-survey API v1"))
	})

	var handler http.Handler = mux
	handler = middleware.CORS(cfg.AllowedOrigins)(handler)
	handler = chimw.Recoverer(handler)
	handler = chimw.RealIP(handler)
	handler = chimw.RequestID(handler)

	return handler
}
