package memory

import (
	"context"
	"sync"

	"github.com/phrazzld/casefile/internal/domain"
	"github.com/phrazzld/casefile/internal/store"
)

// SessionStore implements store.SessionStore with a map keyed by public key.
type SessionStore struct {
	mu    sync.RWMutex
	users map[string]domain.User
}

// Compile-time check to ensure SessionStore implements store.SessionStore.
var _ store.SessionStore = (*SessionStore)(nil)

// NewSessionStore creates an empty session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{users: make(map[string]domain.User)}
}

// Get implements store.SessionStore.
func (s *SessionStore) Get(_ context.Context, publicKey string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[publicKey]
	if !ok {
		return nil, store.ErrSessionNotFound
	}
	return &u, nil
}

// Set implements store.SessionStore.
func (s *SessionStore) Set(_ context.Context, user *domain.User) error {
	if user == nil || user.PublicKey == "" {
		return store.NewStoreError("session", "set", "user has no public key", domain.ErrEmptyPublicKey)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.users[user.PublicKey] = *user
	return nil
}

// Clear implements store.SessionStore.
func (s *SessionStore) Clear(_ context.Context, publicKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.users, publicKey)
	return nil
}
