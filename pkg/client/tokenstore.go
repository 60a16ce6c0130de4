package client

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// TokenStore persists session tokens to a local JSON file, one slot per
// role, surviving process restarts the way browser local storage would.
type TokenStore struct {
	path   string
	mu     sync.Mutex
	tokens map[Role]string
}

func NewTokenStore(path string) (*TokenStore, error) {
	store := &TokenStore{
		path:   path,
		tokens: map[Role]string{},
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return store, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read token store: %w", err)
	}

	if len(data) > 0 {
		if err := json.Unmarshal(data, &store.tokens); err != nil {
			return nil, fmt.Errorf("decode token store: %w", err)
		}
	}

	return store, nil
}

func (s *TokenStore) Get(role Role) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.tokens[role]
}

func (s *TokenStore) Set(role Role, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tokens[role] = token
	return s.saveLocked()
}

func (s *TokenStore) Clear(role Role) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.tokens, role)
	return s.saveLocked()
}

func (s *TokenStore) saveLocked() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s.tokens, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.path, data, 0o600)
}
