// Package session persists the authenticated user's state between runs:
// the opaque bearer token and the onboarding-completion flag. It is the
// counterpart of the app's local key-value storage and is only written by
// the login and onboarding flows.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

const defaultFileName = "session.json"

type state struct {
	UserToken   string `json:"userToken,omitempty"`
	IsOnboarded bool   `json:"isOnboarded,omitempty"`
}

type Store struct {
	path string

	mu    sync.Mutex
	state state
}

// New opens the session store at path, creating parent directories on first
// write. An empty path resolves to $HOME/.sunning/session.json. A missing
// file is not an error; it reads as an empty session.
func New(path string) (*Store, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		path = filepath.Join(home, ".sunning", defaultFileName)
	}

	s := &Store{path: path}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read session file: %w", err)
	}

	if err := json.Unmarshal(data, &s.state); err != nil {
		return fmt.Errorf("parse session file %s: %w", s.path, err)
	}
	return nil
}

func (s *Store) save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create session directory: %w", err)
	}

	data, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	return nil
}

// Token returns the stored bearer token, empty when logged out.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.UserToken
}

// IsOnboarded reports whether the user finished region onboarding.
func (s *Store) IsOnboarded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.IsOnboarded
}

// SetToken stores the bearer token and the onboarding flag returned by
// login, replacing any previous session.
func (s *Store) SetToken(token string, onboarded bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.UserToken = token
	s.state.IsOnboarded = onboarded
	return s.save()
}

// SetOnboarded marks onboarding as complete.
func (s *Store) SetOnboarded() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.IsOnboarded = true
	return s.save()
}

// Clear forgets the stored session. Used by explicit logout only; a 401
// from the API never clears the session.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state{}

	err := os.Remove(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}
