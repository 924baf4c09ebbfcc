package api_test

import (
	"context"

	"github.com/phrazzld/casefile/internal/domain"
	"github.com/phrazzld/casefile/internal/service"
	"github.com/stretchr/testify/mock"
)

// MockCaseService is a testify mock of service.CaseService.
type MockCaseService struct {
	mock.Mock
}

func (m *MockCaseService) CreateCase(ctx context.Context, input service.CreateCaseInput, authorID string) service.CreateCaseResult {
	args := m.Called(ctx, input, authorID)
	return args.Get(0).(service.CreateCaseResult)
}

func (m *MockCaseService) GetCaseByID(ctx context.Context, id string) (*domain.MysteryCase, bool) {
	args := m.Called(ctx, id)
	mc, _ := args.Get(0).(*domain.MysteryCase)
	return mc, args.Bool(1)
}

func (m *MockCaseService) ListCases(ctx context.Context, opts service.ListCasesOptions) []*domain.MysteryCase {
	args := m.Called(ctx, opts)
	cases, _ := args.Get(0).([]*domain.MysteryCase)
	return cases
}

func (m *MockCaseService) SolveCase(ctx context.Context, input service.SolveCaseInput) service.SolveCaseResult {
	args := m.Called(ctx, input)
	return args.Get(0).(service.SolveCaseResult)
}

// MockIdentityService is a testify mock of service.IdentityService.
type MockIdentityService struct {
	mock.Mock
}

func (m *MockIdentityService) SignUp(ctx context.Context, publicKey, username string) (*domain.User, error) {
	args := m.Called(ctx, publicKey, username)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *MockIdentityService) LogIn(ctx context.Context, publicKey, proof string) (*domain.User, error) {
	args := m.Called(ctx, publicKey, proof)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *MockIdentityService) LogOut(ctx context.Context, publicKey string) error {
	args := m.Called(ctx, publicKey)
	return args.Error(0)
}

func (m *MockIdentityService) CurrentUser(ctx context.Context, publicKey string) (*domain.User, error) {
	args := m.Called(ctx, publicKey)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}
