package shared_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/phrazzld/casefile/internal/api/shared"
	"github.com/phrazzld/casefile/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoggedRequest(t *testing.T) (*http.Request, *logger.TestLogBuffer) {
	t.Helper()
	l, buf := logger.GetTestLogger(t)
	ctx := logger.WithLogger(context.Background(), l)
	ctx = shared.SetTraceID(ctx)
	return httptest.NewRequest(http.MethodPost, "/api/cases", nil).WithContext(ctx), buf
}

func TestRespondWithJSON(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	shared.RespondWithJSON(rec, httptest.NewRequest(http.MethodGet, "/", nil), http.StatusCreated,
		map[string]bool{"success": true})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
}

func TestRespondWithErrorAndLog_RedactsCause(t *testing.T) {
	t.Parallel()

	req, buf := newLoggedRequest(t)
	rec := httptest.NewRecorder()
	cause := errors.New("dial failed: postgres://casefile:s3cret@db:5432/casefile")

	shared.RespondWithErrorAndLog(rec, req, http.StatusInternalServerError, "Something went wrong.", cause)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "s3cret")
	assert.NotContains(t, rec.Body.String(), "dial failed")
	assert.NotContains(t, buf.String(), "s3cret")
	logger.AssertLogField(t, buf, "level", "ERROR")
	logger.AssertLogField(t, buf, "status_code", float64(http.StatusInternalServerError))
	logger.AssertLogField(t, buf, "trace_id", shared.GetTraceID(req.Context()))
	assert.Contains(t, rec.Body.String(), shared.GetTraceID(req.Context()))
}

func TestRespondWithError_LogLevels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		opts   []shared.ResponseOption
		level  string
	}{
		{"not found", http.StatusNotFound, nil, "DEBUG"},
		{"elevated bad request", http.StatusBadRequest, []shared.ResponseOption{shared.WithElevatedLogLevel()}, "WARN"},
		{"too many requests", http.StatusTooManyRequests, nil, "WARN"},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req, buf := newLoggedRequest(t)
			rec := httptest.NewRecorder()

			shared.RespondWithError(rec, req, tt.status, "nope", tt.opts...)

			assert.Equal(t, tt.status, rec.Code)
			logger.AssertLogField(t, buf, "level", tt.level)
		})
	}
}

func TestRespondWithError_FieldErrors(t *testing.T) {
	t.Parallel()

	req, _ := newLoggedRequest(t)
	rec := httptest.NewRecorder()
	errs := map[string][]string{"title": {"Title is required."}}

	shared.RespondWithError(rec, req, http.StatusBadRequest, "Validation failed.", shared.WithFieldErrors(errs))

	body := rec.Body.String()
	assert.Contains(t, body, `"success":false`)
	assert.Contains(t, body, `"message":"Validation failed."`)
	assert.Contains(t, body, `"errors":{"title":["Title is required."]}`)
}

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	type payload struct {
		Guess string `json:"guess"`
	}

	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"valid", `{"guess":"the butler"}`, false},
		{"empty", ``, true},
		{"two values", `{"guess":"a"}{"guess":"b"}`, true},
		{"too large", `{"guess":"` + strings.Repeat("x", shared.MaxBodyBytes) + `"}`, true},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var p payload
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			err := shared.DecodeJSON(httptest.NewRecorder(), req, &p)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "the butler", p.Guess)
		})
	}
}

func TestValidateRequest(t *testing.T) {
	t.Parallel()

	type req struct {
		PublicKey string `validate:"required"`
	}

	assert.Error(t, shared.ValidateRequest(&req{}))
	assert.NoError(t, shared.ValidateRequest(&req{PublicKey: "pk"}))
}
