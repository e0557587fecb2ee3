package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/danielhkuo/quickly-survey/auth"
	"github.com/danielhkuo/quickly-survey/cliparse"
)

// runToken prints a signed development token and returns the exit code.
func runToken(args []string, out io.Writer) int {
	cfg, err := cliparse.ParseTokenFlags(args)
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		return 2
	}

	pemData, err := os.ReadFile(cfg.PrivateKeyFile)
	if err != nil {
		slog.Error("reading private key", "error", err)
		return 1
	}
	key, err := auth.ParsePrivateKey(string(pemData))
	if err != nil {
		slog.Error("invalid private key", "error", err)
		return 1
	}

	token, err := auth.NewSigner(key).Generate(cfg.UserID, cfg.ExpiresIn)
	if err != nil {
		slog.Error("signing token", "error", err)
		return 1
	}

	fmt.Fprintln(out, token)
	return 0
}
