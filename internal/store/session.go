package store

import (
	"context"

	"github.com/phrazzld/casefile/internal/domain"
)

// SessionStore remembers the user behind a public key between requests.
// It makes no assumption about where the session lives.
type SessionStore interface {
	// Get returns the user stored for publicKey.
	// Returns ErrSessionNotFound if there is none.
	Get(ctx context.Context, publicKey string) (*domain.User, error)

	// Set stores user under its public key, replacing any previous entry.
	Set(ctx context.Context, user *domain.User) error

	// Clear removes the entry for publicKey. Clearing a missing entry is not an error.
	Clear(ctx context.Context, publicKey string) error
}
