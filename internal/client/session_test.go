package client

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/profenger/feedback-hub/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *SessionStore {
	t.Helper()
	return NewSessionStoreAt(filepath.Join(t.TempDir(), "feedbackctl", "session.json"))
}

func TestSessionStore_LoadMissing(t *testing.T) {
	store := newTestStore(t)
	assert.Nil(t, store.Load())
}

func TestSessionStore_SaveLoadRoundTrip(t *testing.T) {
	store := newTestStore(t)

	session := &Session{
		LoggedIn: true,
		Email:    "admin@example.com",
		Role:     domain.RoleSuperAdmin,
		Token:    "some.jwt.token",
	}
	require.NoError(t, store.Save(session))

	loaded := store.Load()
	require.NotNil(t, loaded)
	assert.Equal(t, session, loaded)
}

func TestSessionStore_CorruptFileIsAbsent(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, os.MkdirAll(filepath.Dir(store.path), 0o700))
	require.NoError(t, os.WriteFile(store.path, []byte("{not json"), 0o600))

	assert.Nil(t, store.Load())
}

func TestSessionStore_LoggedOutStateIsAbsent(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Save(&Session{LoggedIn: false, Token: "stale"}))
	assert.Nil(t, store.Load())

	require.NoError(t, store.Save(&Session{LoggedIn: true, Token: ""}))
	assert.Nil(t, store.Load())
}

func TestSessionStore_Clear(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Save(&Session{LoggedIn: true, Token: "t"}))
	require.NoError(t, store.Clear())
	assert.Nil(t, store.Load())

	// Clearing an already-absent session is not an error
	require.NoError(t, store.Clear())
}
