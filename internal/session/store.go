// Package session persists the titles of open notebook tabs between runs.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// State is the persisted notebook state.
type State struct {
	Tabs    []string  `json:"tabs"`
	SavedAt time.Time `json:"saved_at"`
}

// Store reads and writes notebook state to a JSON file.
type Store struct {
	mu       sync.RWMutex
	state    State
	filePath string
}

// NewStore creates a store backed by storePath, loading it if it exists.
func NewStore(storePath string) (*Store, error) {
	if storePath == "" {
		return nil, errors.New("session path cannot be empty")
	}

	if err := os.MkdirAll(filepath.Dir(storePath), 0o750); err != nil {
		return nil, fmt.Errorf("failed to create session directory: %w", err)
	}

	s := &Store{filePath: storePath}

	if err := s.load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	return s, nil
}

// Tabs returns the saved tab titles in page order.
func (s *Store) Tabs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tabs := make([]string, len(s.state.Tabs))
	copy(tabs, s.state.Tabs)

	return tabs
}

// Restored reports whether any state was saved before.
func (s *Store) Restored() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return !s.state.SavedAt.IsZero()
}

// Save replaces the saved tab titles.
func (s *Store) Save(tabs []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = State{
		Tabs:    append([]string(nil), tabs...),
		SavedAt: time.Now(),
	}

	return s.save()
}

// Clear removes the session file.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = State{}
	if err := os.Remove(s.filePath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove session: %w", err)
	}

	return nil
}

// load reads state from the session file.
func (s *Store) load() error {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return err
	}

	return json.Unmarshal(data, &s.state)
}

// save writes state to the session file.
func (s *Store) save() error {
	data, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	return os.WriteFile(s.filePath, data, 0o600)
}
