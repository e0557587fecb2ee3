// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database and owns its schema.

# Dialects

Two backends are supported: SQLite (modernc.org/sqlite, the default) and
PostgreSQL (lib/pq).

	conn, err := db.Open(ctx, db.SQLite, "data/survey.db")
	conn, err := db.Open(ctx, db.Postgres, "postgres://...")

Queries are written with ? placeholders and passed through Rebind:

	conn.Dialect.Rebind(`SELECT ... WHERE user_id = ?`)

Timestamps are written with TimeValue and read back with Timestamp, so the
same code works against SQLite text columns and PostgreSQL TIMESTAMPTZ.

# Schema

Every table is listed in Models. CreateSchema runs their DDL and is safe to
call multiple times:

	if err := db.CreateSchema(ctx, conn); err != nil {
		log.Fatal(err)
	}

ResetAll drops and recreates the tables. It exists for tests.

# Tables

	"SurveyResponses"
	  id          auto-increment primary key
	  user_id     submitter, from the verified token
	  data        JSON object, default {}
	  created_at  set on insert
	  updated_at  set on insert

Indexed on user_id.
*/
package db
