package service

import (
	"context"
	"sync"

	"github.com/phrazzld/casefile/internal/domain"
	"github.com/phrazzld/casefile/internal/events"
	"github.com/stretchr/testify/mock"
)

// MockCaseStore mocks the store.CaseStore interface
type MockCaseStore struct {
	mock.Mock
}

func (m *MockCaseStore) FindByID(ctx context.Context, id string) (*domain.MysteryCase, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MysteryCase), args.Error(1)
}

func (m *MockCaseStore) FindAll(ctx context.Context) ([]*domain.MysteryCase, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.MysteryCase), args.Error(1)
}

func (m *MockCaseStore) FindAllPublished(ctx context.Context) ([]*domain.MysteryCase, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.MysteryCase), args.Error(1)
}

func (m *MockCaseStore) Save(
	ctx context.Context,
	draft domain.CaseDraft,
	authorID string,
) (*domain.MysteryCase, error) {
	args := m.Called(ctx, draft, authorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MysteryCase), args.Error(1)
}

// MockSessionStore mocks the store.SessionStore interface
type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) Get(ctx context.Context, publicKey string) (*domain.User, error) {
	args := m.Called(ctx, publicKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockSessionStore) Set(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockSessionStore) Clear(ctx context.Context, publicKey string) error {
	args := m.Called(ctx, publicKey)
	return args.Error(0)
}

// recordingEmitter keeps every emitted event and returns err from EmitEvent.
type recordingEmitter struct {
	mu     sync.Mutex
	events []*events.Event
	err    error
}

func (r *recordingEmitter) EmitEvent(_ context.Context, e *events.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return r.err
}

func (r *recordingEmitter) types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.events))
	for i, e := range r.events {
		out[i] = e.Type
	}
	return out
}
