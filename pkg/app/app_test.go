package app

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spendwise/pkg/auth"
	"spendwise/pkg/config"
	"spendwise/pkg/models"
)

func newTestApp(t *testing.T) (*App, *config.Config) {
	t.Helper()
	dir := t.TempDir()
	cfg := &config.Config{
		DataDir:   filepath.Join(dir, "user_data"),
		UsersFile: filepath.Join(dir, "users.json"),
	}
	return New(cfg, log.New(io.Discard)), cfg
}

func TestRegisterProvisionsUserDirectory(t *testing.T) {
	a, cfg := newTestApp(t)

	require.NoError(t, a.Register("alice", "hunter2"))

	info, err := os.Stat(filepath.Join(cfg.DataDir, "alice"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestRegisterValidationPassesThrough(t *testing.T) {
	a, _ := newTestApp(t)

	assert.ErrorIs(t, a.Register("ab", "1234"), auth.ErrUsernameTooShort)
	assert.ErrorIs(t, a.Register("abc", "123"), auth.ErrPasswordTooShort)
	require.NoError(t, a.Register("abc", "1234"))
	assert.ErrorIs(t, a.Register("abc", "5678"), auth.ErrDuplicateUsername)
}

func TestLoginLogoutLifecycle(t *testing.T) {
	a, _ := newTestApp(t)
	require.NoError(t, a.Register("alice", "hunter2"))

	assert.False(t, a.IsLoggedIn())
	_, err := a.Ledger()
	assert.ErrorIs(t, err, ErrNotLoggedIn)

	assert.ErrorIs(t, a.Login("alice", "wrong"), auth.ErrInvalidPassword)
	assert.False(t, a.IsLoggedIn())

	require.NoError(t, a.Login("alice", "hunter2"))
	assert.True(t, a.IsLoggedIn())
	assert.Equal(t, "alice", a.CurrentUser())

	l, err := a.Ledger()
	require.NoError(t, err)
	assert.Equal(t, "alice", l.Username())

	a.Logout()
	assert.False(t, a.IsLoggedIn())
	assert.Empty(t, a.CurrentUser())
}

func TestSessionBindsToLedger(t *testing.T) {
	a, _ := newTestApp(t)
	require.NoError(t, a.Register("alice", "hunter2"))
	require.NoError(t, a.Login("alice", "hunter2"))

	l, err := a.Ledger()
	require.NoError(t, err)
	id, err := l.Add(12.50, models.Food, "lunch", "2024-01-15")
	require.NoError(t, err)

	// A fresh login sees the persisted expense.
	a.Logout()
	require.NoError(t, a.Login("alice", "hunter2"))
	l, err = a.Ledger()
	require.NoError(t, err)
	_, ok := l.Get(id)
	assert.True(t, ok)
}

func TestUserInfo(t *testing.T) {
	a, _ := newTestApp(t)
	require.NoError(t, a.Register("alice", "hunter2"))

	_, err := a.UserInfo()
	assert.ErrorIs(t, err, ErrNotLoggedIn)

	require.NoError(t, a.Login("alice", "hunter2"))
	l, err := a.Ledger()
	require.NoError(t, err)
	_, err = l.Add(30, models.Bills, "power", "2024-01-10")
	require.NoError(t, err)

	info, err := a.UserInfo()
	require.NoError(t, err)
	assert.Equal(t, "alice", info.Username)
	assert.NotEqual(t, "Unknown", info.RegistrationDate)
	assert.NotEqual(t, "Never", info.LastLogin)
	assert.Equal(t, 1, info.Stats.TotalExpenses)
	assert.Equal(t, 30.0, info.Stats.TotalSpent)
}
