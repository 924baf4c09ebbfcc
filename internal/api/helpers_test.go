package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/casefile/internal/api"
	"github.com/phrazzld/casefile/internal/api/middleware"
	"github.com/phrazzld/casefile/internal/api/shared"
	"github.com/stretchr/testify/require"
)

func newTestRouter(cases *api.CaseHandler, auth *api.AuthHandler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.NewTraceMiddleware(nil))
	r.Use(middleware.Identity)

	if cases != nil {
		r.Get("/api/cases", cases.ListCases)
		r.Get("/api/cases/{id}", cases.GetCase)
		r.Post("/api/cases", cases.CreateCase)
		r.Post("/api/cases/{id}/solve", cases.SolveCase)
	}
	if auth != nil {
		r.Post("/api/auth/keys", auth.GenerateKeys)
		r.Post("/api/auth/signup", auth.SignUp)
		r.Post("/api/auth/login", auth.LogIn)
		r.Post("/api/auth/logout", auth.LogOut)
		r.Get("/api/auth/me", auth.Me)
	}
	return r
}

func doRequest(t *testing.T, h http.Handler, method, path, body, publicKey string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if publicKey != "" {
		req.Header.Set(middleware.PublicKeyHeader, publicKey)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), "body: %s", rec.Body.String())
	return v
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) shared.ErrorResponse {
	t.Helper()
	return decodeBody[shared.ErrorResponse](t, rec)
}
