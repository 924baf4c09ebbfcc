package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/phrazzld/casefile/internal/api/shared"
	"github.com/phrazzld/casefile/internal/platform/logger"
)

// PublicKeyHeader carries the caller's self-declared public key.
const PublicKeyHeader = "X-Public-Key"

// MsgNotAuthenticated is returned when a route needs an identity and the
// request has none.
const MsgNotAuthenticated = "User not authenticated."

// Identity copies the public key header into the request context when it is
// present. The key is trusted as given; no signature is checked.
func Identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		publicKey := strings.TrimSpace(r.Header.Get(PublicKeyHeader))
		if publicKey == "" {
			next.ServeHTTP(w, r)
			return
		}

		ctx := shared.WithPublicKey(r.Context(), publicKey)
		ctx = logger.WithLogger(ctx, logger.FromContext(ctx).With(slog.String("public_key", truncateKey(publicKey))))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireIdentity rejects requests without a public key with 401.
// It must run after Identity.
func RequireIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := shared.GetPublicKey(r.Context()); !ok {
			shared.RespondWithError(w, r, http.StatusUnauthorized, MsgNotAuthenticated)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// truncateKey returns the tail of a public key for log lines.
func truncateKey(publicKey string) string {
	const keep = 16
	if len(publicKey) <= keep {
		return publicKey
	}
	return publicKey[len(publicKey)-keep:]
}
