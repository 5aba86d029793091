package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RandomSci/CapstoneProject/internal/prefs"
	"github.com/RandomSci/CapstoneProject/pkg/logger"
)

func newTestStore(t *testing.T) *PrefsStore {
	t.Helper()
	p, err := prefs.Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { p.Close() })
	return NewPrefsStore(p, logger.Discard())
}

func TestPrefsStore_SaveLoad(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Save("api.example.com", "tok-1"))

	token, err := store.Load("api.example.com")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)
}

func TestPrefsStore_HostScoping(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Save("one.example.com", "tok-one"))
	require.NoError(t, store.Save("two.example.com", "tok-two"))

	one, err := store.Load("one.example.com")
	require.NoError(t, err)
	two, err := store.Load("two.example.com")
	require.NoError(t, err)
	other, err := store.Load("three.example.com")
	require.NoError(t, err)

	assert.Equal(t, "tok-one", one)
	assert.Equal(t, "tok-two", two)
	assert.Empty(t, other, "unknown host must read as unauthenticated")
}

func TestPrefsStore_SaveOverwrites(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Save("api.example.com", "old"))
	require.NoError(t, store.Save("api.example.com", "new"))

	token, err := store.Load("api.example.com")
	require.NoError(t, err)
	assert.Equal(t, "new", token)
}

func TestPrefsStore_Clear(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Save("api.example.com", "tok"))
	require.NoError(t, store.Clear("api.example.com"))

	token, err := store.Load("api.example.com")
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestPrefsStore_UserID(t *testing.T) {
	store := newTestStore(t)

	assert.Empty(t, store.UserID())

	require.NoError(t, store.SaveUserID("17"))
	assert.Equal(t, "17", store.UserID())

	require.NoError(t, store.ClearUserID())
	assert.Empty(t, store.UserID())
}
