package tokenstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/lifeverse/dm-frontend/internal/model"
)

// Store holds the current token pair and authenticated identity, persisted
// to a single JSON file so a restarted process keeps its session. Every
// Set/Clear writes through before returning, so a Get issued right after
// always observes the new state.
type Store struct {
	mu    sync.RWMutex
	path  string
	state sessionState
}

type sessionState struct {
	Tokens     *model.TokenPair `json:"tokens,omitempty"`
	User       *model.User      `json:"user,omitempty"`
	ProfileUID string           `json:"profile_uid,omitempty"`
}

// New loads the session file at path if it exists. A missing or unreadable
// file yields an empty store, not an error: a corrupt session is equivalent
// to being logged out.
func New(path string) (*Store, error) {
	s := &Store{path: path}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}

	if err := json.Unmarshal(data, &s.state); err != nil {
		s.state = sessionState{}
	}

	return s, nil
}

func (s *Store) Get() (model.TokenPair, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.state.Tokens == nil {
		return model.TokenPair{}, false
	}
	return *s.state.Tokens, true
}

func (s *Store) Set(pair model.TokenPair) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Tokens = &pair
	return s.persist()
}

// Clear drops the token pair and the identity attached to it.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = sessionState{}
	return s.persist()
}

func (s *Store) Identity() (model.User, string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.state.User == nil {
		return model.User{}, "", false
	}
	return *s.state.User, s.state.ProfileUID, true
}

func (s *Store) SetIdentity(user model.User, profileUID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.User = &user
	s.state.ProfileUID = profileUID
	return s.persist()
}

// persist writes the session atomically; callers hold the write lock.
func (s *Store) persist() error {
	data, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create session dir: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace session file: %w", err)
	}

	return nil
}
