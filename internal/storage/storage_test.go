package storage_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/vintage-books/internal/storage"
)

// exerciseStorage runs the shared contract against any backend.
func exerciseStorage(t *testing.T, medium storage.Storage) {
	t.Helper()
	ctx := context.Background()

	_, err := medium.Get(ctx, "missing")
	assert.True(t, storage.ErrNotFound(err))

	require.NoError(t, medium.Set(ctx, "k", []byte(`["a"]`)))
	val, err := medium.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `["a"]`, string(val))

	// Overwrite wins.
	require.NoError(t, medium.Set(ctx, "k", []byte(`["b"]`)))
	val, err = medium.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `["b"]`, string(val))

	require.NoError(t, medium.Remove(ctx, "k"))
	_, err = medium.Get(ctx, "k")
	assert.True(t, storage.ErrNotFound(err))

	// Removing an absent key is not an error.
	require.NoError(t, medium.Remove(ctx, "k"))

	require.NoError(t, medium.Ping(ctx))
}

func TestMemoryStorage(t *testing.T) {
	medium := storage.NewMemory()
	exerciseStorage(t, medium)
}

func TestMemoryStorageCopiesValues(t *testing.T) {
	ctx := context.Background()
	medium := storage.NewMemory()

	buf := []byte(`[1]`)
	require.NoError(t, medium.Set(ctx, "k", buf))
	buf[1] = '9'

	val, err := medium.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `[1]`, string(val))
}

func TestFileStorage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.json")

	medium, err := storage.NewFile(path)
	require.NoError(t, err)
	exerciseStorage(t, medium)
}

func TestFileStorageSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "profile.json")

	medium, err := storage.NewFile(path)
	require.NoError(t, err)
	require.NoError(t, medium.Set(ctx, "k", []byte(`{"a":1}`)))
	require.NoError(t, medium.Close())

	reopened, err := storage.NewFile(path)
	require.NoError(t, err)
	val, err := reopened.Get(ctx, "k")
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1}`, string(val))
}

func TestSQLiteStorage(t *testing.T) {
	medium, err := storage.NewSQLite(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = medium.Close() })

	exerciseStorage(t, medium)
}
