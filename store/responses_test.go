// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/quickly-survey/testutil"
)

func newTestStore(t *testing.T) *ResponseStore {
	t.Helper()
	return NewResponseStore(testutil.SetupTestDB(t))
}

func TestCreate(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	data := json.RawMessage(`{"favoriteColor": "green", "technology": ["Vue", "Node.js"]}`)
	created, err := s.Create(ctx, 11, data)
	require.NoError(t, err)

	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, int64(11), created.UserID)
	assert.JSONEq(t, string(data), string(created.Data))
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)
}

func TestCreate_EmptyDataBecomesObject(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, data := range []json.RawMessage{nil, json.RawMessage(`null`), json.RawMessage(`  `)} {
		created, err := s.Create(ctx, 5, data)
		require.NoError(t, err)
		assert.Equal(t, "{}", string(created.Data))
	}

	all, err := s.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	for _, r := range all {
		assert.Equal(t, "{}", string(r.Data))
	}
}

func TestCreate_RejectsNonObject(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, data := range []string{`[1,2]`, `"green"`, `42`, `true`, `{"broken":`} {
		_, err := s.Create(ctx, 5, json.RawMessage(data))
		assert.True(t, errors.Is(err, ErrInvalidData), "data %s: got %v", data, err)
	}

	all, err := s.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestListAll_Empty(t *testing.T) {
	s := newTestStore(t)

	all, err := s.ListAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)
}

func TestListAll_OrderedByID(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	users := []int64{66, 77, 11, 66}
	for _, u := range users {
		_, err := s.Create(ctx, u, json.RawMessage(`{}`))
		require.NoError(t, err)
	}

	all, err := s.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, len(users))

	for i, r := range all {
		assert.Equal(t, int64(i+1), r.ID)
		assert.Equal(t, users[i], r.UserID)
	}
}

func TestListAll_RoundTripsRecord(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created, err := s.Create(ctx, 11, json.RawMessage(`{"about":"I build things","framework":["React","other"]}`))
	require.NoError(t, err)

	all, err := s.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)

	got := all[0]
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.UserID, got.UserID)
	assert.JSONEq(t, string(created.Data), string(got.Data))
	assert.True(t, created.CreatedAt.Equal(got.CreatedAt), "created %v, read %v", created.CreatedAt, got.CreatedAt)
	assert.True(t, created.UpdatedAt.Equal(got.UpdatedAt))
}

func TestCreate_ConcurrentIDsAreUnique(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	const n = 20
	ids := make(chan int64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(userID int64) {
			defer wg.Done()
			created, err := s.Create(ctx, userID, json.RawMessage(`{}`))
			if err != nil {
				t.Errorf("Create: %v", err)
				return
			}
			ids <- created.ID
		}(int64(i + 1))
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
}

func TestResetAll(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, u := range []int64{66, 77} {
		_, err := s.Create(ctx, u, json.RawMessage(`{}`))
		require.NoError(t, err)
	}

	require.NoError(t, s.ResetAll(ctx))

	all, err := s.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	created, err := s.Create(ctx, 11, json.RawMessage(`{}`))
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
}
