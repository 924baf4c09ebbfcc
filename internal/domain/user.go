package domain

import (
	"strings"

	"github.com/google/uuid"
)

// defaultUsernameKeyChars is how many characters of the public key are used in
// a generated username.
const defaultUsernameKeyChars = 8

// User is a self-declared identity. The public key doubles as the user ID and
// is never verified against a signature.
type User struct {
	ID        string `json:"id"`
	PublicKey string `json:"publicKey"`
	Username  string `json:"username,omitempty"`
}

// NewUser creates a User for the given public key. A blank username is
// replaced with DefaultUsername(publicKey).
func NewUser(publicKey, username string) (*User, error) {
	publicKey = strings.TrimSpace(publicKey)
	if publicKey == "" {
		return nil, ErrEmptyPublicKey
	}

	username = strings.TrimSpace(username)
	if username == "" {
		username = DefaultUsername(publicKey)
	}

	return &User{
		ID:        publicKey,
		PublicKey: publicKey,
		Username:  username,
	}, nil
}

// DefaultUsername derives a display name from the last "_"-separated segment
// of the public key, e.g. "pk_live_a1b2c3d4e5" becomes "User-a1b2c3d4".
// Keys without a usable segment get a random suffix.
func DefaultUsername(publicKey string) string {
	part := publicKey
	if i := strings.LastIndex(publicKey, "_"); i >= 0 {
		part = publicKey[i+1:]
	}
	if part == "" {
		part = strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
	}
	if r := []rune(part); len(r) > defaultUsernameKeyChars {
		part = string(r[:defaultUsernameKeyChars])
	}
	return "User-" + part
}
