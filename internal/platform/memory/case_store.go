package memory

import (
	"context"
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/phrazzld/casefile/internal/domain"
	"github.com/phrazzld/casefile/internal/store"
)

// CaseStore implements store.CaseStore in process memory.
//
// Case and evidence IDs are decimal integers handed out by two counters. The
// counters start one past the largest numeric ID in the seed dataset.
type CaseStore struct {
	mu    sync.Mutex
	seed  []*domain.MysteryCase
	cases []*domain.MysteryCase // insertion order
	now   func() time.Time

	nextCaseID     int
	nextEvidenceID int
}

// Option configures a CaseStore.
type Option func(*CaseStore)

// WithClock sets the clock used to stamp new cases.
func WithClock(now func() time.Time) Option {
	return func(s *CaseStore) {
		if now != nil {
			s.now = now
		}
	}
}

// Compile-time check to ensure CaseStore implements store.CaseStore.
var _ store.CaseStore = (*CaseStore)(nil)

// NewCaseStore creates a store holding a copy of seed.
func NewCaseStore(seed []*domain.MysteryCase, opts ...Option) *CaseStore {
	s := &CaseStore{
		seed: cloneAll(seed),
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.reset()
	return s
}

// Reset discards every saved case and restores the seed dataset and counters.
func (s *CaseStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
}

func (s *CaseStore) reset() {
	s.cases = cloneAll(s.seed)
	s.nextCaseID = 1
	s.nextEvidenceID = 1
	for _, c := range s.seed {
		if n, err := strconv.Atoi(c.ID); err == nil && n >= s.nextCaseID {
			s.nextCaseID = n + 1
		}
		for _, ev := range c.Evidence {
			if n, err := strconv.Atoi(ev.ID); err == nil && n >= s.nextEvidenceID {
				s.nextEvidenceID = n + 1
			}
		}
	}
}

// FindByID implements store.CaseStore.
func (s *CaseStore) FindByID(ctx context.Context, id string) (*domain.MysteryCase, error) {
	if err := ctx.Err(); err != nil {
		return nil, store.NewStoreError("case", "find_by_id", "context done", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.cases {
		if c.ID == id {
			return c.Clone(), nil
		}
	}
	return nil, store.ErrCaseNotFound
}

// FindAll implements store.CaseStore.
func (s *CaseStore) FindAll(ctx context.Context) ([]*domain.MysteryCase, error) {
	if err := ctx.Err(); err != nil {
		return nil, store.NewStoreError("case", "find_all", "context done", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sorted(func(*domain.MysteryCase) bool { return true }), nil
}

// FindAllPublished implements store.CaseStore.
func (s *CaseStore) FindAllPublished(ctx context.Context) ([]*domain.MysteryCase, error) {
	if err := ctx.Err(); err != nil {
		return nil, store.NewStoreError("case", "find_all_published", "context done", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sorted(func(c *domain.MysteryCase) bool { return c.IsPublished }), nil
}

// Save implements store.CaseStore.
func (s *CaseStore) Save(
	ctx context.Context,
	draft domain.CaseDraft,
	authorID string,
) (*domain.MysteryCase, error) {
	if err := ctx.Err(); err != nil {
		return nil, store.NewStoreError("case", "save", "context done", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := strconv.Itoa(s.nextCaseID)
	s.nextCaseID++

	mc := draft.Materialize(id, authorID, s.now(), func() string {
		evID := strconv.Itoa(s.nextEvidenceID)
		s.nextEvidenceID++
		return evID
	})
	s.cases = append(s.cases, mc)

	return mc.Clone(), nil
}

// sorted returns copies of the matching cases, newest first. Cases created
// at the same instant are ordered by reverse insertion. Callers hold s.mu.
func (s *CaseStore) sorted(keep func(*domain.MysteryCase) bool) []*domain.MysteryCase {
	out := make([]*domain.MysteryCase, 0, len(s.cases))
	for i := len(s.cases) - 1; i >= 0; i-- {
		if keep(s.cases[i]) {
			out = append(out, s.cases[i].Clone())
		}
	}
	slices.SortStableFunc(out, func(a, b *domain.MysteryCase) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return out
}

func cloneAll(cases []*domain.MysteryCase) []*domain.MysteryCase {
	out := make([]*domain.MysteryCase, 0, len(cases))
	for _, c := range cases {
		if c != nil {
			out = append(out, c.Clone())
		}
	}
	return out
}
