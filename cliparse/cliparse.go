package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string

	// PEM-encoded RSA public key used to verify bearer tokens
	PublicKeyPEM  string
	PublicKeyFile string
	TokenLeeway   time.Duration

	QuestionsFile  string
	AllowedOrigins []string

	LogLevel  string
	LogFormat string

	EnvFile string
}

// ParseFlags validates flags and fills the rest from the environment.
// An env file (default .env) is loaded first; it never overrides variables
// that are already set.
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var origins string

	fs := flag.NewFlagSet("quickly-survey", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL (postgres DSN or sqlite file path)")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&origins, "origins", "", "Comma-separated CORS origins")

	// Token verification
	fs.StringVar(&cfg.PublicKeyFile, "k", "", "Path to RSA public key PEM")
	fs.DurationVar(&cfg.TokenLeeway, "leeway", -1, "Allowed clock skew for token expiry")

	fs.StringVar(&cfg.QuestionsFile, "questions", "", "Questionnaire YAML file (default: built-in)")
	fs.StringVar(&cfg.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "log-format", "", "Log format (text, json, pretty)")
	fs.StringVar(&cfg.EnvFile, "env-file", ".env", "Env file to load before reading the environment")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if err := loadEnvFile(cfg.EnvFile, flagSet(fs, "env-file")); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 5000 // default
		}
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = DatabaseSQLite
		}
	}
	cfg.DatabaseType = strings.ToLower(cfg.DatabaseType)
	if cfg.DatabaseType != DatabaseSQLite && cfg.DatabaseType != DatabasePostgres {
		return Config{}, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}

	// Public key - MUST be provided, inline or as a file
	if cfg.PublicKeyFile == "" {
		cfg.PublicKeyFile = os.Getenv("RSA_PUBLIC_KEY_FILE")
	}
	if cfg.PublicKeyFile != "" {
		pem, err := os.ReadFile(cfg.PublicKeyFile)
		if err != nil {
			return Config{}, fmt.Errorf("reading public key file: %w", err)
		}
		cfg.PublicKeyPEM = string(pem)
	} else {
		cfg.PublicKeyPEM = os.Getenv("RSA_PUBLIC_KEY")
	}
	if strings.TrimSpace(cfg.PublicKeyPEM) == "" {
		return Config{}, errors.New("RSA_PUBLIC_KEY or RSA_PUBLIC_KEY_FILE required")
	}

	if cfg.TokenLeeway < 0 {
		cfg.TokenLeeway = 0
		if raw := os.Getenv("TOKEN_LEEWAY"); raw != "" {
			leeway, err := time.ParseDuration(raw)
			if err != nil || leeway < 0 {
				return Config{}, errors.New("invalid TOKEN_LEEWAY env variable")
			}
			cfg.TokenLeeway = leeway
		}
	}

	if cfg.QuestionsFile == "" {
		cfg.QuestionsFile = os.Getenv("QUESTIONS_FILE")
	}

	if origins == "" {
		origins = os.Getenv("ALLOWED_ORIGINS")
	}
	cfg.AllowedOrigins = parseList(origins, []string{"*"})

	if cfg.LogLevel == "" {
		cfg.LogLevel = envOrDefault("LOG_LEVEL", "info")
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = envOrDefault("LOG_FORMAT", "text")
	}

	return cfg, nil
}

// loadEnvFile loads path into the process environment. A missing file is
// only an error when the path was given explicitly.
func loadEnvFile(path string, explicit bool) error {
	if path == "" {
		return nil
	}
	err := godotenv.Load(path)
	if err == nil {
		return nil
	}
	if errors.Is(err, os.ErrNotExist) && !explicit {
		return nil
	}
	return fmt.Errorf("loading env file %s: %w", path, err)
}

func flagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseList(raw string, fallback []string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback
	}

	values := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			values = append(values, part)
		}
	}

	if len(values) == 0 {
		return fallback
	}
	return values
}

// TokenConfig drives the token subcommand, which mints development tokens.
type TokenConfig struct {
	PrivateKeyFile string
	UserID         int64
	ExpiresIn      time.Duration
}

// ParseTokenFlags parses the arguments after "token".
func ParseTokenFlags(args []string) (TokenConfig, error) {
	var cfg TokenConfig

	fs := flag.NewFlagSet("quickly-survey token", flag.ContinueOnError)
	fs.StringVar(&cfg.PrivateKeyFile, "k", "", "Path to RSA private key PEM")
	fs.Int64Var(&cfg.UserID, "user", 0, "userId claim")
	fs.DurationVar(&cfg.ExpiresIn, "expires", time.Hour, "Token lifetime")

	if err := fs.Parse(args); err != nil {
		return TokenConfig{}, err
	}

	if cfg.PrivateKeyFile == "" {
		cfg.PrivateKeyFile = os.Getenv("RSA_PRIVATE_KEY_FILE")
	}
	if cfg.PrivateKeyFile == "" {
		return TokenConfig{}, errors.New("private key required (use -k or RSA_PRIVATE_KEY_FILE env)")
	}
	if cfg.UserID <= 0 {
		return TokenConfig{}, errors.New("-user must be a positive integer")
	}
	if cfg.ExpiresIn <= 0 {
		return TokenConfig{}, errors.New("-expires must be positive")
	}

	return cfg, nil
}
