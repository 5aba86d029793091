package prefs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore_SetGet(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Set("session_id:example.com", "abc123"))

	value, ok, err := store.Get("session_id:example.com")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "abc123", value)
}

func TestStore_GetMissing(t *testing.T) {
	store := openTestStore(t)

	value, ok, err := store.Get("nope")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, value)
}

func TestStore_SetOverwrites(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Set("user_id", "1"))
	require.NoError(t, store.Set("user_id", "2"))

	value, ok, err := store.Get("user_id")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "2", value)
}

func TestStore_Delete(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Set("session_id:example.com", "abc123"))
	require.NoError(t, store.Delete("session_id:example.com"))

	_, ok, err := store.Get("session_id:example.com")
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting an absent key is not an error
	assert.NoError(t, store.Delete("session_id:example.com"))
}

func TestStore_SurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	first, err := Open(dir)
	require.NoError(t, err)
	require.NoError(t, first.Set("session_id:example.com", "persisted"))
	require.NoError(t, first.Close())

	second, err := Open(dir)
	require.NoError(t, err)
	defer second.Close()

	value, ok, err := second.Get("session_id:example.com")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "persisted", value)
}
