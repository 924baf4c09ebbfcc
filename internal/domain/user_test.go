package domain

import (
	"strings"
	"testing"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	user, err := NewUser("pk_live_a1b2c3d4e5f6", "Holmes")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if user.ID != user.PublicKey {
		t.Errorf("Expected ID to equal public key, got %q and %q", user.ID, user.PublicKey)
	}
	if user.Username != "Holmes" {
		t.Errorf("Expected username Holmes, got %q", user.Username)
	}

	user, err = NewUser("pk_live_a1b2c3d4e5f6", "   ")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if user.Username != "User-a1b2c3d4" {
		t.Errorf("Expected default username User-a1b2c3d4, got %q", user.Username)
	}

	if _, err := NewUser("  ", "Holmes"); err != ErrEmptyPublicKey {
		t.Errorf("Expected error %v, got %v", ErrEmptyPublicKey, err)
	}
}

func TestDefaultUsername(t *testing.T) {
	t.Parallel()
	tests := []struct {
		key  string
		want string
	}{
		{"abc", "User-abc"},
		{"MFkwEwYHKoZIzj0CAQYIKoZIzj0DAQcDQgAE", "User-MFkwEwYH"},
		{"prefix_short", "User-short"},
	}
	for _, tc := range tests {
		if got := DefaultUsername(tc.key); got != tc.want {
			t.Errorf("DefaultUsername(%q) = %q, want %q", tc.key, got, tc.want)
		}
	}

	got := DefaultUsername("trailing_")
	if !strings.HasPrefix(got, "User-") || len(got) != len("User-")+6 {
		t.Errorf("Expected random six character suffix, got %q", got)
	}
}
