// Package auth owns the shared credential file: the mapping of
// username to password hash and login timestamps.
package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

var (
	ErrDuplicateUsername = errors.New("username already exists")
	ErrUsernameTooShort  = errors.New("username must be at least 3 characters")
	ErrPasswordTooShort  = errors.New("password must be at least 4 characters")
	ErrUserNotFound      = errors.New("user not found")
	ErrInvalidPassword   = errors.New("invalid password")
)

const timestampLayout = "2006-01-02 15:04:05"

// User is one credential record as persisted in the users file.
type User struct {
	PasswordHash string  `json:"password_hash"`
	CreatedAt    string  `json:"created_at"`
	LastLogin    *string `json:"last_login"`
}

// Store holds every registered user and rewrites the whole file on any
// mutation. The file is small and single-writer, so a full rewrite is
// fine.
type Store struct {
	path   string
	users  map[string]*User
	logger *log.Logger
	now    func() time.Time
}

// Open loads the credential file at path. A missing file yields an
// empty store; an unreadable or corrupt file also yields an empty
// store so the application can keep running.
func Open(path string, logger *log.Logger) *Store {
	s := &Store{
		path:   path,
		users:  make(map[string]*User),
		logger: logger,
		now:    time.Now,
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("could not read users file, starting empty", "path", path, "error", err)
		}
		return s
	}
	if err := json.Unmarshal(data, &s.users); err != nil {
		logger.Warn("users file is corrupt, starting empty", "path", path, "error", err)
		s.users = make(map[string]*User)
	}
	return s
}

// Register creates a new credential record and persists the store.
func (s *Store) Register(username, password string) error {
	if _, ok := s.users[username]; ok {
		return ErrDuplicateUsername
	}
	if len(username) < 3 {
		return ErrUsernameTooShort
	}
	if len(password) < 4 {
		return ErrPasswordTooShort
	}

	s.users[username] = &User{
		PasswordHash: hashPassword(password),
		CreatedAt:    s.now().Format(timestampLayout),
	}
	if err := s.save(); err != nil {
		return err
	}
	s.logger.Info("registered user", "username", username)
	return nil
}

// Authenticate verifies a password and stamps last_login on success.
func (s *Store) Authenticate(username, password string) error {
	u, ok := s.users[username]
	if !ok {
		return ErrUserNotFound
	}
	if !verifyPassword(password, u.PasswordHash) {
		return ErrInvalidPassword
	}
	ts := s.now().Format(timestampLayout)
	u.LastLogin = &ts
	if err := s.save(); err != nil {
		return err
	}
	s.logger.Debug("authenticated user", "username", username)
	return nil
}

// Exists reports whether a username is registered.
func (s *Store) Exists(username string) bool {
	_, ok := s.users[username]
	return ok
}

// Info returns the credential record for a username.
func (s *Store) Info(username string) (User, bool) {
	u, ok := s.users[username]
	if !ok {
		return User{}, false
	}
	return *u, true
}

func (s *Store) save() error {
	data, err := json.MarshalIndent(s.users, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode users: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write users file: %w", err)
	}
	return nil
}
