package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is missing or malformed.
	ErrInvalidID = errors.New("invalid ID")

	// ErrEmptyPublicKey is returned when a user is created without a public key.
	ErrEmptyPublicKey = errors.New("public key cannot be empty")

	// ErrInvalidEvidenceType is returned for an evidence type outside the known kinds.
	ErrInvalidEvidenceType = errors.New("invalid evidence type")

	// ErrInvalidDifficulty is returned for a difficulty outside Easy, Medium and Hard.
	ErrInvalidDifficulty = errors.New("invalid difficulty")
)
