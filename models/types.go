package models

import (
	"encoding/json"
	"time"
)

// Request types

// CreateSurveyResponseRequest is the body of POST /survey-responses.
// Any userId field a client sends is not decoded; the submitter comes from
// the verified token.
type CreateSurveyResponseRequest struct {
	Data json.RawMessage `json:"data"`
}

// Response types

type ListSurveyResponsesResponse struct {
	SurveyResponses []SurveyResponse `json:"surveyResponses"`
}

type ResultsResponse struct {
	TotalResponses int             `json:"totalResponses"`
	Questions      []QuestionTally `json:"questions"`
}

type QuestionTally struct {
	Name     string         `json:"name"`
	Title    string         `json:"title,omitempty"`
	Answered int            `json:"answered"`
	Counts   map[string]int `json:"counts"` // answer -> count
}

// Domain types

// SurveyResponse is one stored submission. Rows are append-only.
type SurveyResponse struct {
	ID        int64           `json:"id"`
	UserID    int64           `json:"userId"`
	Data      json.RawMessage `json:"data"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
