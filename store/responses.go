// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/danielhkuo/quickly-survey/db"
	"github.com/danielhkuo/quickly-survey/models"
)

// ErrInvalidData is returned when data is not a JSON object.
var ErrInvalidData = errors.New("data must be a JSON object")

var emptyObject = json.RawMessage(`{}`)

// ResponseStore persists survey responses in the "SurveyResponses" table.
type ResponseStore struct {
	db     *db.DB
	logger *slog.Logger
	now    func() time.Time
}

func NewResponseStore(conn *db.DB) *ResponseStore {
	return &ResponseStore{
		db:     conn,
		logger: slog.Default().With("component", "store"),
		now:    time.Now,
	}
}

// Create inserts one response for userID. Missing or null data is stored as {}.
func (s *ResponseStore) Create(ctx context.Context, userID int64, data json.RawMessage) (*models.SurveyResponse, error) {
	data, err := normalizeData(data)
	if err != nil {
		return nil, err
	}

	// Postgres keeps microseconds; truncate so the returned record matches a later read
	now := s.now().UTC().Truncate(time.Microsecond)

	query := s.db.Dialect.Rebind(`
		INSERT INTO "SurveyResponses" (user_id, data, created_at, updated_at)
		VALUES (?, ?, ?, ?)
		RETURNING id
	`)

	var id int64
	err = s.db.QueryRowContext(ctx, query,
		userID, string(data), s.db.Dialect.TimeValue(now), s.db.Dialect.TimeValue(now),
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("inserting survey response: %w", err)
	}

	s.logger.Debug("survey response stored", "id", id, "user_id", userID)

	return &models.SurveyResponse{
		ID:        id,
		UserID:    userID,
		Data:      data,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// ListAll returns every response ordered by id. The slice is never nil.
func (s *ResponseStore) ListAll(ctx context.Context) ([]models.SurveyResponse, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, data, created_at, updated_at
		FROM "SurveyResponses"
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("querying survey responses: %w", err)
	}
	defer rows.Close()

	responses := make([]models.SurveyResponse, 0)
	for rows.Next() {
		var r models.SurveyResponse
		var data []byte
		if err := rows.Scan(
			&r.ID,
			&r.UserID,
			&data,
			db.Timestamp{Time: &r.CreatedAt},
			db.Timestamp{Time: &r.UpdatedAt},
		); err != nil {
			return nil, fmt.Errorf("scanning survey response: %w", err)
		}
		if len(data) == 0 {
			data = emptyObject
		}
		r.Data = json.RawMessage(data)
		responses = append(responses, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating survey responses: %w", err)
	}

	return responses, nil
}

// ResetAll empties the store and restarts ids. Tests and operators only.
func (s *ResponseStore) ResetAll(ctx context.Context) error {
	if err := db.ResetAll(ctx, s.db); err != nil {
		return err
	}
	s.logger.Warn("survey responses reset")
	return nil
}

// normalizeData compacts data and rejects anything but an object.
func normalizeData(data json.RawMessage) (json.RawMessage, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return emptyObject, nil
	}
	if trimmed[0] != '{' {
		return nil, ErrInvalidData
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, trimmed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidData, err)
	}
	return json.RawMessage(buf.Bytes()), nil
}
