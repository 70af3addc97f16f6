// Package auth persists the CLI's credentials for the remote tracker.
package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNotAuthenticated indicates no stored session exists.
var ErrNotAuthenticated = errors.New("not authenticated: run 'tracklog login' first")

// Session is a stored credential plus the identity it was verified against.
type Session struct {
	BaseURL  string `json:"base_url"`
	Token    string `json:"token"`
	Login    string `json:"login"`
	FullName string `json:"full_name"`
}

// DisplayName returns the session's full name, falling back to the login.
func (s *Session) DisplayName() string {
	if s.FullName != "" {
		return s.FullName
	}
	return s.Login
}

// Store reads and writes the credentials file.
type Store struct {
	path string
}

// NewStore creates a Store backed by the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Current returns the stored session, or ErrNotAuthenticated when the
// credentials file does not exist.
func (s *Store) Current() (*Session, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotAuthenticated
	}
	if err != nil {
		return nil, fmt.Errorf("reading credentials: %w", err)
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("decoding credentials: %w", err)
	}
	if sess.Token == "" || sess.BaseURL == "" {
		return nil, ErrNotAuthenticated
	}
	return &sess, nil
}

// Save writes the session to disk with owner-only permissions.
func (s *Store) Save(sess *Session) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding credentials: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("writing credentials: %w", err)
	}
	return nil
}

// Clear removes the stored session. Clearing an absent session is not an
// error.
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing credentials: %w", err)
	}
	return nil
}
