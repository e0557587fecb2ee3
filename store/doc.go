// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package store persists survey responses.
//
// ResponseStore is append-only: Create inserts one row and ListAll reads
// every row in id order. ResetAll exists for tests and operators and is not
// reachable over HTTP.
package store
