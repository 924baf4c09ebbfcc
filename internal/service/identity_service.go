package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/phrazzld/casefile/internal/domain"
	"github.com/phrazzld/casefile/internal/platform/logger"
	"github.com/phrazzld/casefile/internal/redact"
	"github.com/phrazzld/casefile/internal/store"
)

// IdentityService manages self-declared public-key identities.
//
// Nothing here is authentication: keys and proofs are accepted as given and
// no signature is ever checked.
type IdentityService interface {
	// SignUp creates a user for publicKey and remembers it in the session store.
	// A blank username is replaced with domain.DefaultUsername(publicKey).
	SignUp(ctx context.Context, publicKey, username string) (*domain.User, error)

	// LogIn starts a session for publicKey. proof is accepted without checks.
	// A username remembered for the key is reused.
	LogIn(ctx context.Context, publicKey, proof string) (*domain.User, error)

	// LogOut ends the session for publicKey.
	LogOut(ctx context.Context, publicKey string) error

	// CurrentUser returns the user logged in with publicKey, or ErrNoSession.
	CurrentUser(ctx context.Context, publicKey string) (*domain.User, error)
}

// identityServiceImpl implements the IdentityService interface
type identityServiceImpl struct {
	sessions store.SessionStore
	logger   *slog.Logger
}

// NewIdentityService creates a new IdentityService.
// It returns an error if the session store is nil.
func NewIdentityService(sessions store.SessionStore, logger *slog.Logger) (IdentityService, error) {
	if sessions == nil {
		return nil, nilDependency("sessions")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &identityServiceImpl{
		sessions: sessions,
		logger:   logger.With(slog.String("component", "identity_service")),
	}, nil
}

// SignUp implements IdentityService.SignUp.
func (s *identityServiceImpl) SignUp(ctx context.Context, publicKey, username string) (*domain.User, error) {
	user, err := domain.NewUser(publicKey, username)
	if err != nil {
		return nil, err
	}

	if err := s.sessions.Set(ctx, user); err != nil {
		s.logFailure(ctx, "sign_up", err)
		return nil, NewServiceError("identity", "sign_up", "failed to store session", err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("user signed up",
		slog.String("username", user.Username))
	return user, nil
}

// LogIn implements IdentityService.LogIn.
func (s *identityServiceImpl) LogIn(ctx context.Context, publicKey, _ string) (*domain.User, error) {
	publicKey = strings.TrimSpace(publicKey)
	if publicKey == "" {
		return nil, domain.ErrEmptyPublicKey
	}

	var username string
	existing, err := s.sessions.Get(ctx, publicKey)
	switch {
	case err == nil:
		username = existing.Username
	case errors.Is(err, store.ErrSessionNotFound):
	default:
		s.logFailure(ctx, "log_in", err)
		return nil, NewServiceError("identity", "log_in", "failed to read session", err)
	}

	user, err := domain.NewUser(publicKey, username)
	if err != nil {
		return nil, err
	}

	if err := s.sessions.Set(ctx, user); err != nil {
		s.logFailure(ctx, "log_in", err)
		return nil, NewServiceError("identity", "log_in", "failed to store session", err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("user logged in",
		slog.String("username", user.Username))
	return user, nil
}

// LogOut implements IdentityService.LogOut.
func (s *identityServiceImpl) LogOut(ctx context.Context, publicKey string) error {
	if strings.TrimSpace(publicKey) == "" {
		return domain.ErrEmptyPublicKey
	}
	if err := s.sessions.Clear(ctx, publicKey); err != nil {
		s.logFailure(ctx, "log_out", err)
		return NewServiceError("identity", "log_out", "failed to clear session", err)
	}
	return nil
}

// CurrentUser implements IdentityService.CurrentUser.
func (s *identityServiceImpl) CurrentUser(ctx context.Context, publicKey string) (*domain.User, error) {
	if strings.TrimSpace(publicKey) == "" {
		return nil, ErrNoSession
	}

	user, err := s.sessions.Get(ctx, publicKey)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return nil, ErrNoSession
		}
		s.logFailure(ctx, "current_user", err)
		return nil, NewServiceError("identity", "current_user", "failed to read session", err)
	}
	return user, nil
}

func (s *identityServiceImpl) logFailure(ctx context.Context, op string, err error) {
	logger.FromContextOrDefault(ctx, s.logger).Error("session store failure",
		slog.String("operation", op),
		slog.String("error", redact.Error(err)))
}
