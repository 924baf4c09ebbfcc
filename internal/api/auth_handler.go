package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/casefile/internal/api/middleware"
	"github.com/phrazzld/casefile/internal/api/shared"
	"github.com/phrazzld/casefile/internal/service"
)

// AuthHandler handles identity HTTP requests.
type AuthHandler struct {
	identity service.IdentityService
	logger   *slog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(identity service.IdentityService, logger *slog.Logger) *AuthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthHandler{
		identity: identity,
		logger:   logger.With(slog.String("component", "auth_handler")),
	}
}

// GenerateKeys handles POST /api/auth/keys.
func (h *AuthHandler) GenerateKeys(w http.ResponseWriter, r *http.Request) {
	pair, err := service.GenerateKeyPair()
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to generate key pair.", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, KeyPairResponse{
		Success:    true,
		PublicKey:  pair.PublicKey,
		PrivateKey: pair.PrivateKey,
	})
}

// SignUp handles POST /api/auth/signup.
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req SignUpRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request.", err)
		return
	}

	user, err := h.identity.SignUp(r.Context(), req.PublicKey, req.Username)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, UserResponse{
		Success: true,
		Message: "Signed up as " + user.Username + ".",
		User:    user,
	})
}

// LogIn handles POST /api/auth/login.
func (h *AuthHandler) LogIn(w http.ResponseWriter, r *http.Request) {
	var req LogInRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request.", err)
		return
	}

	user, err := h.identity.LogIn(r.Context(), req.PublicKey, req.Proof)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, UserResponse{
		Success: true,
		Message: "Logged in as " + user.Username + ".",
		User:    user,
	})
}

// LogOut handles POST /api/auth/logout.
func (h *AuthHandler) LogOut(w http.ResponseWriter, r *http.Request) {
	publicKey, ok := shared.GetPublicKey(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, middleware.MsgNotAuthenticated)
		return
	}

	if err := h.identity.LogOut(r.Context(), publicKey); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Success: true, Message: "Logged out."})
}

// Me handles GET /api/auth/me.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	publicKey, ok := shared.GetPublicKey(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, middleware.MsgNotAuthenticated)
		return
	}

	user, err := h.identity.CurrentUser(r.Context(), publicKey)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, UserResponse{Success: true, User: user})
}
