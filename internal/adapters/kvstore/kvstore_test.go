package kvstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	portsrepo "github.com/SscSPs/crypto_portfolio_tracker/internal/core/ports/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseStore(t *testing.T, store portsrepo.KeyValueStore) {
	t.Helper()
	ctx := context.Background()

	_, found, err := store.Get(ctx, portsrepo.HoldingsKey)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Set(ctx, portsrepo.HoldingsKey, "[]"))
	require.NoError(t, store.Set(ctx, portsrepo.HoldingsKey, `[{"id":"a"}]`))

	got, found, err := store.Get(ctx, portsrepo.HoldingsKey)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[{"id":"a"}]`, got)
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

func TestFileStore(t *testing.T) {
	exerciseStore(t, mustFileStore(t, filepath.Join(t.TempDir(), "store.json")))
}

func TestFileStoreSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "store.json")
	ctx := context.Background()

	first := mustFileStore(t, path)
	require.NoError(t, first.Set(ctx, portsrepo.PreferredCurrencyKey, "EUR"))
	require.NoError(t, first.Set(ctx, portsrepo.HoldingsKey, "[]"))

	second := mustFileStore(t, path)
	got, found, err := second.Get(ctx, portsrepo.PreferredCurrencyKey)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "EUR", got)

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestFileStoreEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	store := mustFileStore(t, path)
	_, found, err := store.Get(context.Background(), portsrepo.HoldingsKey)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestFileStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	require.NoError(t, os.WriteFile(path, []byte("{oops"), 0o644))

	_, err := NewFileStore(path)
	assert.Error(t, err)
}

func mustFileStore(t *testing.T, path string) *FileStore {
	t.Helper()
	store, err := NewFileStore(path)
	require.NoError(t, err)
	return store
}
