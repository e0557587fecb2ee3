// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/danielhkuo/quickly-survey/auth"
	"github.com/danielhkuo/quickly-survey/cliparse"
	"github.com/danielhkuo/quickly-survey/db"
)

// TestDBURLEnv points tests at a PostgreSQL database instead of a temp SQLite file.
// The tables in that database are dropped and recreated by every test.
const TestDBURLEnv = "TEST_DATABASE_URL"

var (
	keyOnce sync.Once
	testKey *rsa.PrivateKey
	keyErr  error
)

// SetupTestDB creates a fresh test database with the full schema
func SetupTestDB(t *testing.T) *db.DB {
	t.Helper()
	ctx := context.Background()

	if url := os.Getenv(TestDBURLEnv); url != "" {
		conn, err := db.Open(ctx, db.Postgres, url)
		if err != nil {
			t.Fatalf("Failed to open test database: %v", err)
		}
		t.Cleanup(func() { conn.Close() })

		if err := db.ResetAll(ctx, conn); err != nil {
			t.Fatalf("Failed to reset database: %v", err)
		}
		return conn
	}

	conn, err := db.Open(ctx, db.SQLite, filepath.Join(t.TempDir(), "survey.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(ctx, conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	return conn
}

// TestKey returns an RSA key pair shared by every test in the binary
func TestKey(t *testing.T) *rsa.PrivateKey {
	t.Helper()
	keyOnce.Do(func() {
		testKey, keyErr = rsa.GenerateKey(rand.Reader, 2048)
	})
	if keyErr != nil {
		t.Fatalf("Failed to generate RSA key: %v", keyErr)
	}
	return testKey
}

// PublicKeyPEM encodes the public half of key as PKIX PEM
func PublicKeyPEM(t *testing.T, key *rsa.PrivateKey) string {
	t.Helper()
	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	if err != nil {
		t.Fatalf("Failed to marshal public key: %v", err)
	}
	return string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}))
}

// TestVerifier verifies tokens minted by MintToken
func TestVerifier(t *testing.T) *auth.Verifier {
	t.Helper()
	return auth.NewVerifier(&TestKey(t).PublicKey)
}

// MintToken signs a token for userID that is valid for an hour
func MintToken(t *testing.T, userID int64) string {
	t.Helper()
	return MintTokenExpiring(t, userID, time.Hour)
}

// MintTokenExpiring signs a token for userID; a negative expiresIn gives an expired token
func MintTokenExpiring(t *testing.T, userID int64, expiresIn time.Duration) string {
	t.Helper()
	token, err := auth.NewSigner(TestKey(t)).Generate(userID, expiresIn)
	if err != nil {
		t.Fatalf("Failed to mint token: %v", err)
	}
	return token
}

// BearerHeader builds the headers map for MakeRequest
func BearerHeader(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

// GetTestConfig returns a standard test configuration
func GetTestConfig(t *testing.T) cliparse.Config {
	t.Helper()
	return cliparse.Config{
		Port:           5000,
		DatabaseURL:    ":memory:",
		DatabaseType:   cliparse.DatabaseSQLite,
		PublicKeyPEM:   PublicKeyPEM(t, TestKey(t)),
		AllowedOrigins: []string{"*"},
		LogLevel:       "error",
		LogFormat:      "text",
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	switch b := body.(type) {
	case nil:
		req = httptest.NewRequest(method, path, nil)
	case string:
		req = httptest.NewRequest(method, path, bytes.NewReader([]byte(b)))
		req.Header.Set("Content-Type", "application/json")
	default:
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
