package auth

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "credentials.json"))
}

func TestStore_SaveAndCurrent(t *testing.T) {
	s := testStore(t)

	sess := &Session{
		BaseURL:  "https://tracker.example.com",
		Token:    "perm-abc",
		Login:    "jane",
		FullName: "Jane Doe",
	}
	require.NoError(t, s.Save(sess))

	got, err := s.Current()
	require.NoError(t, err)
	assert.Equal(t, sess, got)
}

func TestStore_CurrentWithoutFile(t *testing.T) {
	s := testStore(t)

	_, err := s.Current()
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestStore_EmptyTokenTreatedAsUnauthenticated(t *testing.T) {
	s := testStore(t)
	require.NoError(t, s.Save(&Session{BaseURL: "https://x", Token: ""}))

	_, err := s.Current()
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestStore_Clear(t *testing.T) {
	s := testStore(t)
	require.NoError(t, s.Save(&Session{BaseURL: "https://x", Token: "t"}))

	require.NoError(t, s.Clear())
	_, err := s.Current()
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	// Clearing again is a no-op.
	require.NoError(t, s.Clear())
}

func TestStore_FilePermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("file modes are not meaningful on windows")
	}
	s := testStore(t)
	require.NoError(t, s.Save(&Session{BaseURL: "https://x", Token: "t"}))

	info, err := os.Stat(s.path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}
