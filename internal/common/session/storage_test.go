package session

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseStore(t *testing.T, store Store) {
	t.Helper()
	ctx := context.Background()
	a := NewLocalStorage(store, "alpha")
	b := NewLocalStorage(store, "beta")

	_, ok, err := a.GetItem(ctx, KeyToken)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, a.SetItem(ctx, KeyToken, "a-token"))
	require.NoError(t, a.SetItem(ctx, KeyUser, `{"role":"patient"}`))
	require.NoError(t, b.SetItem(ctx, KeyToken, "b-token"))

	v, ok, err := a.GetItem(ctx, KeyToken)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "a-token", v)

	require.NoError(t, a.SetItem(ctx, KeyToken, "a-token-2"))
	v, _, _ = a.GetItem(ctx, KeyToken)
	assert.Equal(t, "a-token-2", v)

	require.NoError(t, a.RemoveItem(ctx, KeyToken))
	_, ok, _ = a.GetItem(ctx, KeyToken)
	assert.False(t, ok)
	_, ok, _ = a.GetItem(ctx, KeyUser)
	assert.True(t, ok)

	require.NoError(t, a.Clear(ctx))
	_, ok, _ = a.GetItem(ctx, KeyUser)
	assert.False(t, ok)

	// namespace lain tidak ikut terhapus
	v, ok, _ = b.GetItem(ctx, KeyToken)
	assert.True(t, ok)
	assert.Equal(t, "b-token", v)

	require.NoError(t, a.RemoveItem(ctx, "never-set"))
	require.NoError(t, a.Clear(ctx))
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	exerciseStore(t, store)
	assert.Equal(t, 1, store.Len())
}

func TestFileStore(t *testing.T) {
	dir := t.TempDir()
	exerciseStore(t, NewFileStore(filepath.Join(dir, "nested")))
}

func TestFileStore_PersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	require.NoError(t, NewFileStore(dir).Set(ctx, "cli", KeyToken, "persisted"))

	v, ok, err := NewFileStore(dir).Get(ctx, "cli", KeyToken)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "persisted", v)

	info, err := os.Stat(filepath.Join(dir, "cli.json"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileStore_RejectsPathNamespaces(t *testing.T) {
	store := NewFileStore(t.TempDir())
	err := store.Set(context.Background(), "../escape", KeyToken, "x")
	assert.Error(t, err)
}

func TestFileStore_CorruptFileIsOverwrittenOnSet(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cli.json"), []byte("{broken"), 0o600))
	store := NewFileStore(dir)
	ctx := context.Background()

	_, _, err := store.Get(ctx, "cli", KeyToken)
	assert.Error(t, err)

	require.NoError(t, store.Set(ctx, "cli", KeyToken, "fresh"))
	v, ok, err := store.Get(ctx, "cli", KeyToken)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "fresh", v)
}

func TestNamespaceFor(t *testing.T) {
	a := NamespaceFor("cookie-a")
	assert.Len(t, a, 64)
	assert.Equal(t, a, NamespaceFor("cookie-a"))
	assert.NotEqual(t, a, NamespaceFor("cookie-b"))
	assert.NotContains(t, a, "cookie")
}

func TestRedisKey(t *testing.T) {
	assert.Equal(t, "portal:storage:abc", redisKey("abc"))
}
