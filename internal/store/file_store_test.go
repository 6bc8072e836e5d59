package store_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"aniresfr/internal/domain"
	"aniresfr/internal/store"
)

func TestFileStore_SetGetOverwrite(t *testing.T) {
	ctx := context.Background()
	var s domain.SessionStore = store.NewFileStore(t.TempDir())

	_, ok, err := s.Get(ctx, "csrftoken")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, s.Set(ctx, "csrftoken", "first"))
	require.NoError(t, s.Set(ctx, "csrftoken", "second"))

	v, ok, err := s.Get(ctx, "csrftoken")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "second", v)
}

func TestFileStore_OutlivesInstance(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	require.NoError(t, store.NewFileStore(dir).Set(ctx, "csrftoken", "abc123"))

	reopened := store.NewFileStore(dir)
	v, ok, err := reopened.Get(ctx, "csrftoken")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "abc123", v)

	info, err := os.Stat(reopened.Path())
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileStore_DeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := store.NewFileStore(t.TempDir())

	require.NoError(t, s.Delete(ctx, "csrftoken"))
	require.NoError(t, s.Set(ctx, "csrftoken", "abc123"))
	require.NoError(t, s.Set(ctx, "other", "kept"))
	require.NoError(t, s.Delete(ctx, "csrftoken"))
	require.NoError(t, s.Delete(ctx, "csrftoken"))

	_, ok, err := s.Get(ctx, "csrftoken")
	require.NoError(t, err)
	require.False(t, ok)

	v, ok, err := s.Get(ctx, "other")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "kept", v)
}

func TestFileStore_NullFileIsEmpty(t *testing.T) {
	ctx := context.Background()
	s := store.NewFileStore(t.TempDir())
	require.NoError(t, os.WriteFile(s.Path(), []byte("null"), 0o600))

	_, ok, err := s.Get(ctx, "csrftoken")
	require.NoError(t, err)
	require.False(t, ok)

	require.NotPanics(t, func() {
		require.NoError(t, s.Set(ctx, "csrftoken", "abc123"))
	})
	v, ok, err := s.Get(ctx, "csrftoken")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "abc123", v)

	require.NoError(t, os.WriteFile(s.Path(), []byte("null"), 0o600))
	require.NoError(t, s.Delete(ctx, "csrftoken"))
}

func TestSealedFileStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	s := store.NewSealedFileStore(dir, "correct horse")
	require.NoError(t, s.Set(ctx, "csrftoken", "abc123"))

	raw, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	require.NotContains(t, string(raw), "abc123")

	v, ok, err := store.NewSealedFileStore(dir, "correct horse").Get(ctx, "csrftoken")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "abc123", v)
}

func TestSealedFileStore_WrongPassphrase(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	require.NoError(t, store.NewSealedFileStore(dir, "correct").Set(ctx, "csrftoken", "abc123"))

	_, _, err := store.NewSealedFileStore(dir, "wrong").Get(ctx, "csrftoken")
	require.ErrorIs(t, err, store.ErrWrongPassphrase)

	err = store.NewSealedFileStore(dir, "wrong").Set(ctx, "csrftoken", "other")
	require.ErrorIs(t, err, store.ErrWrongPassphrase)
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()

	require.NoError(t, s.Set(ctx, "csrftoken", "abc123"))
	v, ok, err := s.Get(ctx, "csrftoken")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "abc123", v)

	require.NoError(t, s.Delete(ctx, "csrftoken"))
	_, ok, _ = s.Get(ctx, "csrftoken")
	require.False(t, ok)
}
