package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/casefile/internal/api/middleware"
	"github.com/phrazzld/casefile/internal/api/shared"
	"github.com/phrazzld/casefile/internal/service"
)

// CaseHandler handles mystery case HTTP requests.
type CaseHandler struct {
	cases  service.CaseService
	logger *slog.Logger
}

// NewCaseHandler creates a new CaseHandler.
func NewCaseHandler(cases service.CaseService, logger *slog.Logger) *CaseHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CaseHandler{
		cases:  cases,
		logger: logger.With(slog.String("component", "case_handler")),
	}
}

// ListCases handles GET /api/cases. The published query parameter restricts
// the listing to published cases.
func (h *CaseHandler) ListCases(w http.ResponseWriter, r *http.Request) {
	opts := service.ListCasesOptions{}
	if raw := r.URL.Query().Get("published"); raw != "" {
		published, err := strconv.ParseBool(raw)
		if err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid published filter.")
			return
		}
		opts.PublishedOnly = published
	}

	viewer, _ := shared.GetPublicKey(r.Context())
	cases := h.cases.ListCases(r.Context(), opts)

	views := make([]CaseView, 0, len(cases))
	for _, mc := range cases {
		views = append(views, newCaseView(mc, viewer))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CaseListResponse{Success: true, Cases: views})
}

// GetCase handles GET /api/cases/{id}.
func (h *CaseHandler) GetCase(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	mc, ok := h.cases.GetCaseByID(r.Context(), id)
	if !ok {
		shared.RespondWithError(w, r, http.StatusNotFound, service.MsgCaseNotFound)
		return
	}

	viewer, _ := shared.GetPublicKey(r.Context())
	shared.RespondWithJSON(w, r, http.StatusOK, CaseResponse{
		Success:     true,
		CaseDetails: newCaseView(mc, viewer),
	})
}

// CreateCase handles POST /api/cases. The author is the caller's public key.
func (h *CaseHandler) CreateCase(w http.ResponseWriter, r *http.Request) {
	authorID, ok := shared.GetPublicKey(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, middleware.MsgNotAuthenticated)
		return
	}

	var input service.CreateCaseInput
	if err := shared.DecodeJSON(w, r, &input); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	result := h.cases.CreateCase(r.Context(), input, authorID)
	if !result.Success {
		shared.RespondWithError(w, r, statusForReason(result.Reason), result.Message,
			shared.WithFieldErrors(result.Errors))
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, result)
}

// SolveCase handles POST /api/cases/{id}/solve.
func (h *CaseHandler) SolveCase(w http.ResponseWriter, r *http.Request) {
	var req SolveRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	result := h.cases.SolveCase(r.Context(), service.SolveCaseInput{
		CaseID: chi.URLParam(r, "id"),
		Guess:  req.Guess,
	})
	if !result.Success {
		shared.RespondWithError(w, r, statusForReason(result.Reason), result.Message,
			shared.WithFieldErrors(result.Errors))
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, result)
}
