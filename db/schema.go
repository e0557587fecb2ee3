// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"fmt"
)

// Model is one registered table and the DDL that creates it.
type Model struct {
	Table  string
	Create map[Dialect][]string
}

// SurveyResponsesTable is quoted in every statement; the name is mixed case.
const SurveyResponsesTable = `"SurveyResponses"`

var SurveyResponses = Model{
	Table: SurveyResponsesTable,
	Create: map[Dialect][]string{
		SQLite: {
			`CREATE TABLE IF NOT EXISTS "SurveyResponses" (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				user_id INTEGER NOT NULL,
				data TEXT NOT NULL DEFAULT '{}',
				created_at TEXT NOT NULL,
				updated_at TEXT NOT NULL
			)`,
			`CREATE INDEX IF NOT EXISTS survey_responses_user_id ON "SurveyResponses"(user_id)`,
		},
		Postgres: {
			`CREATE TABLE IF NOT EXISTS "SurveyResponses" (
				id BIGSERIAL PRIMARY KEY,
				user_id BIGINT NOT NULL,
				data JSON NOT NULL DEFAULT '{}',
				created_at TIMESTAMPTZ NOT NULL,
				updated_at TIMESTAMPTZ NOT NULL
			)`,
			`CREATE INDEX IF NOT EXISTS survey_responses_user_id ON "SurveyResponses"(user_id)`,
		},
	},
}

// Models is every table the application owns, in creation order.
var Models = []Model{SurveyResponses}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(ctx context.Context, conn *DB) error {
	for _, m := range Models {
		stmts, ok := m.Create[conn.Dialect]
		if !ok {
			return fmt.Errorf("table %s has no DDL for %s", m.Table, conn.Dialect)
		}
		for _, stmt := range stmts {
			if _, err := conn.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("failed to create schema: %w", err)
			}
		}
	}

	return nil
}

// ResetAll drops every registered table and recreates it empty.
// Ids start over. Only tests and operators call this.
func ResetAll(ctx context.Context, conn *DB) error {
	for i := len(Models) - 1; i >= 0; i-- {
		stmt := "DROP TABLE IF EXISTS " + Models[i].Table
		if conn.Dialect == Postgres {
			stmt += " CASCADE"
		}
		if _, err := conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("dropping %s: %w", Models[i].Table, err)
		}
	}

	return CreateSchema(ctx, conn)
}
