package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/casefile/internal/domain"
	"github.com/phrazzld/casefile/internal/service"
	"github.com/phrazzld/casefile/internal/store"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes without
// exposing the error itself.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, service.ErrNoSession):
		return http.StatusUnauthorized

	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	case errors.Is(err, domain.ErrEmptyPublicKey),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a client-facing message for err.
func GetSafeErrorMessage(err error) string {
	switch {
	case err == nil:
		return "An unexpected error occurred"

	case errors.Is(err, service.ErrNoSession):
		return "No active session."

	case errors.Is(err, store.ErrCaseNotFound):
		return service.MsgCaseNotFound

	case errors.Is(err, store.ErrNotFound):
		return "Not found."

	case errors.Is(err, domain.ErrEmptyPublicKey):
		return "Public key is required."

	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"

	default:
		return "An unexpected error occurred"
	}
}

// statusForReason maps a failed use case result to its HTTP status.
func statusForReason(reason service.Reason) int {
	switch reason {
	case service.ReasonValidation:
		return http.StatusBadRequest
	case service.ReasonNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
