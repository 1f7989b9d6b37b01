package store_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/mnl-au/glint/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupSQLite creates a temporary SQLite store for testing.
func setupSQLite(t *testing.T) *store.SQLiteStore {
	t.Helper()

	s, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, s.Init())
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteStore_RoundTrip(t *testing.T) {
	s := setupSQLite(t)
	ctx := context.Background()

	_, err := s.Get(ctx, store.HistoryKey)
	assert.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, s.Set(ctx, store.HistoryKey, `["gloss","balm"]`))

	v, err := s.Get(ctx, store.HistoryKey)
	require.NoError(t, err)
	assert.Equal(t, `["gloss","balm"]`, v)
}

func TestSQLiteStore_SetReplaces(t *testing.T) {
	s := setupSQLite(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", "first"))
	require.NoError(t, s.Set(ctx, "k", "second"))

	v, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "second", v)
}

func TestSQLiteStore_Remove(t *testing.T) {
	s := setupSQLite(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", "v"))
	require.NoError(t, s.Remove(ctx, "k"))

	_, err := s.Get(ctx, "k")
	assert.ErrorIs(t, err, store.ErrNotFound)

	// Removing an absent key is not an error.
	assert.NoError(t, s.Remove(ctx, "k"))
}

func TestSQLiteStore_InitIdempotent(t *testing.T) {
	s := setupSQLite(t)
	assert.NoError(t, s.Init())
}

func TestMemoryStore(t *testing.T) {
	m := store.NewMemory()
	ctx := context.Background()

	_, err := m.Get(ctx, "k")
	assert.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, m.Set(ctx, "k", "v"))
	v, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", v)

	require.NoError(t, m.Remove(ctx, "k"))
	_, err = m.Get(ctx, "k")
	assert.ErrorIs(t, err, store.ErrNotFound)

	assert.NoError(t, m.Close())
}
