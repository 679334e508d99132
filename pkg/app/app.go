// Package app is the session facade: it binds a logged-in username to
// that user's ledger for the duration of a session.
package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"spendwise/pkg/auth"
	"spendwise/pkg/config"
	"spendwise/pkg/ledger"
	"spendwise/pkg/report"
)

// ErrNotLoggedIn is returned by operations that need an active session.
var ErrNotLoggedIn = errors.New("not logged in")

// App ties the credential store and the per-user ledger together. At
// most one session is active at a time.
type App struct {
	cfg    *config.Config
	users  *auth.Store
	logger *log.Logger

	currentUser string
	ledger      *ledger.Ledger
}

// New opens the credential store and returns an app with no session.
func New(cfg *config.Config, logger *log.Logger) *App {
	return &App{
		cfg:    cfg,
		users:  auth.Open(cfg.UsersFile, logger),
		logger: logger,
	}
}

// Register creates a user and provisions their data directory.
func (a *App) Register(username, password string) error {
	if err := a.users.Register(username, password); err != nil {
		return err
	}
	dir := filepath.Join(a.cfg.DataDir, username)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create user directory: %w", err)
	}
	return nil
}

// Login authenticates and binds the user's ledger as the current
// session.
func (a *App) Login(username, password string) error {
	if err := a.users.Authenticate(username, password); err != nil {
		return err
	}
	l, err := ledger.New(username, a.cfg.DataDir, a.logger)
	if err != nil {
		return err
	}
	a.currentUser = username
	a.ledger = l
	a.logger.Info("logged in", "username", username)
	return nil
}

// Logout clears the current session binding.
func (a *App) Logout() {
	a.logger.Info("logged out", "username", a.currentUser)
	a.currentUser = ""
	a.ledger = nil
}

// IsLoggedIn reports whether a session is active.
func (a *App) IsLoggedIn() bool {
	return a.currentUser != "" && a.ledger != nil
}

// CurrentUser returns the logged-in username, if any.
func (a *App) CurrentUser() string {
	return a.currentUser
}

// Ledger returns the current session's ledger, or an error when no
// session is active.
func (a *App) Ledger() (*ledger.Ledger, error) {
	if !a.IsLoggedIn() {
		return nil, ErrNotLoggedIn
	}
	return a.ledger, nil
}

// UserInfo merges the credential store's timestamps with whole-ledger
// statistics for the current user.
type UserInfo struct {
	Username         string
	RegistrationDate string
	LastLogin        string
	Stats            report.Stats
}

// UserInfo describes the current session's user.
func (a *App) UserInfo() (UserInfo, error) {
	if !a.IsLoggedIn() {
		return UserInfo{}, ErrNotLoggedIn
	}
	info := UserInfo{
		Username:         a.currentUser,
		RegistrationDate: "Unknown",
		LastLogin:        "Never",
		Stats:            report.NewEngine(a.ledger).Statistics(),
	}
	if u, ok := a.users.Info(a.currentUser); ok {
		info.RegistrationDate = u.CreatedAt
		if u.LastLogin != nil {
			info.LastLogin = *u.LastLogin
		}
	}
	return info, nil
}
