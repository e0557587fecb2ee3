// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 5000)
  - DatabaseURL: PostgreSQL DSN or SQLite file path (required)
  - DatabaseType: "sqlite" (default) or "postgres"
  - PublicKeyPEM: RSA public key used to verify bearer tokens (required)
  - TokenLeeway: Clock skew tolerated on token expiry (default: 0)
  - QuestionsFile: Questionnaire YAML (default: built-in questionnaire)
  - AllowedOrigins: CORS origins (default: *)
  - LogLevel, LogFormat: Logger settings (default: info, text)

# CLI Flags

	-p           Server port
	-d           Database URL
	-t           Database type
	-k           RSA public key PEM file
	-leeway      Token expiry leeway (e.g. 30s)
	-questions   Questionnaire YAML file
	-origins     Comma-separated CORS origins
	-log-level   debug, info, warn, error
	-log-format  text, json, pretty
	-env-file    Env file to load (default: .env)

# Environment Variables

Flags fall back to environment variables:

	PORT                → -p
	DATABASE_URL        → -d
	DATABASE_TYPE       → -t
	RSA_PUBLIC_KEY_FILE → -k
	RSA_PUBLIC_KEY      (inline PEM, used when no key file is set)
	TOKEN_LEEWAY        → -leeway
	QUESTIONS_FILE      → -questions
	ALLOWED_ORIGINS     → -origins
	LOG_LEVEL           → -log-level
	LOG_FORMAT          → -log-format

CLI flags take precedence over environment variables, and real environment
variables take precedence over the env file. A missing .env is ignored; a
missing file passed with -env-file is an error.

# Validation

ParseFlags returns an error if required values are missing:

  - DATABASE_URL must be provided
  - RSA_PUBLIC_KEY or RSA_PUBLIC_KEY_FILE must be provided

# Token Subcommand

ParseTokenFlags parses the arguments of "quickly-survey token":

	-k        RSA private key PEM file (or RSA_PRIVATE_KEY_FILE)
	-user     userId claim (required, > 0)
	-expires  token lifetime (default: 1h)
*/
package cliparse
