package auth

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "users.json")
	return Open(path, log.New(io.Discard)), path
}

func TestRegisterValidation(t *testing.T) {
	s, _ := newTestStore(t)

	assert.ErrorIs(t, s.Register("ab", "1234"), ErrUsernameTooShort)
	assert.ErrorIs(t, s.Register("abc", "123"), ErrPasswordTooShort)
	require.NoError(t, s.Register("abc", "1234"))
	assert.ErrorIs(t, s.Register("abc", "5678"), ErrDuplicateUsername)
}

func TestAuthenticate(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, s.Register("alice", "hunter2"))

	assert.ErrorIs(t, s.Authenticate("bob", "hunter2"), ErrUserNotFound)
	assert.ErrorIs(t, s.Authenticate("alice", "wrong"), ErrInvalidPassword)
	require.NoError(t, s.Authenticate("alice", "hunter2"))

	u, ok := s.Info("alice")
	require.True(t, ok)
	require.NotNil(t, u.LastLogin)
	assert.NotEmpty(t, u.CreatedAt)
}

func TestStorePersistsAcrossReopen(t *testing.T) {
	s, path := newTestStore(t)
	require.NoError(t, s.Register("alice", "hunter2"))
	require.NoError(t, s.Authenticate("alice", "hunter2"))

	reopened := Open(path, log.New(io.Discard))
	assert.True(t, reopened.Exists("alice"))
	require.NoError(t, reopened.Authenticate("alice", "hunter2"))

	u, ok := reopened.Info("alice")
	require.True(t, ok)
	assert.NotNil(t, u.LastLogin)
}

func TestOpenMissingFile(t *testing.T) {
	s := Open(filepath.Join(t.TempDir(), "nope.json"), log.New(io.Discard))
	assert.False(t, s.Exists("anyone"))
}

func TestOpenCorruptFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "users.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	s := Open(path, log.New(io.Discard))
	assert.False(t, s.Exists("anyone"))
	// Store stays usable after recovery.
	require.NoError(t, s.Register("carol", "pass1234"))
	assert.True(t, s.Exists("carol"))
}
