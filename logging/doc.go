// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package logging builds the process-wide slog logger.

	logger := logging.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)

Formats:

  - text: slog.TextHandler (default)
  - json: slog.JSONHandler, for log shippers
  - pretty: colorized single-line output for local development

Packages log through slog's default logger or a derived one
(logger.With("component", "store")).
*/
package logging
