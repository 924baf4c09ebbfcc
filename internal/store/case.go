package store

import (
	"context"

	"github.com/phrazzld/casefile/internal/domain"
)

// CaseStore defines the interface for mystery case persistence.
// Implementations must order every listing by CreatedAt, newest first.
type CaseStore interface {
	// FindByID retrieves a case by its ID.
	// Returns ErrCaseNotFound if the case does not exist, and a *StoreError
	// if the backend fails.
	FindByID(ctx context.Context, id string) (*domain.MysteryCase, error)

	// FindAll retrieves every case, published or not.
	// Returns an empty slice if the store holds no cases.
	FindAll(ctx context.Context) ([]*domain.MysteryCase, error)

	// FindAllPublished retrieves the cases whose IsPublished flag is set.
	FindAllPublished(ctx context.Context) ([]*domain.MysteryCase, error)

	// Save persists a new case written by authorID. The store assigns the case
	// ID, an ID for every evidence item and the creation timestamp, and returns
	// the case as stored.
	Save(ctx context.Context, draft domain.CaseDraft, authorID string) (*domain.MysteryCase, error)
}
