package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/phrazzld/casefile/internal/domain"
	"github.com/phrazzld/casefile/internal/events"
	"github.com/phrazzld/casefile/internal/platform/logger"
	"github.com/phrazzld/casefile/internal/redact"
	"github.com/phrazzld/casefile/internal/store"
)

// Messages returned by the case use cases.
const (
	MsgValidationFailed  = "Validation failed."
	MsgCreateFailed      = "Failed to create case due to an unexpected error."
	MsgInvalidSubmission = "Invalid submission."
	MsgCaseNotFound      = "Case not found."
	MsgSolutionCorrect   = "Congratulations! Your solution is correct!"
	MsgSolutionIncorrect = "That's not quite right. Keep investigating!"
	MsgSolveFailed       = "Error submitting solution due to an unexpected error."
)

// Reason classifies why a use case did not succeed.
type Reason string

// Failure reasons.
const (
	ReasonNone       Reason = ""
	ReasonValidation Reason = "validation"
	ReasonNotFound   Reason = "not_found"
	ReasonStorage    Reason = "storage"
)

// EvidenceInput is one evidence item of a CreateCaseInput.
type EvidenceInput struct {
	Title       string              `json:"title"                 validate:"required,max=100"`
	Type        domain.EvidenceType `json:"type"                  validate:"oneof=picture document audio note"`
	Content     string              `json:"content"               validate:"required"`
	Description string              `json:"description,omitempty" validate:"max=500"`
	FileName    string              `json:"fileName,omitempty"    validate:"max=100"`
	DataAIHint  string              `json:"dataAiHint,omitempty"  validate:"max=50"`
}

// CreateCaseInput is the payload accepted by CreateCase.
// String lengths are counted in characters.
type CreateCaseInput struct {
	Title       string            `json:"title"       validate:"min=3,max=150"`
	Description string            `json:"description" validate:"min=10,max=2000"`
	Difficulty  domain.Difficulty `json:"difficulty"  validate:"oneof=Easy Medium Hard"`
	Evidence    []EvidenceInput   `json:"evidence"    validate:"min=1,max=10,dive"`
	Suspects    []string          `json:"suspects"    validate:"min=1,max=10,dive,required,max=100"`
	Victims     []string          `json:"victims"     validate:"min=1,max=5,dive,required,max=100"`
	Solution    string            `json:"solution"    validate:"min=10,max=2000"`
	IsPublished bool              `json:"isPublished"`
}

// CreateCaseResult is the outcome of CreateCase.
type CreateCaseResult struct {
	Success     bool                `json:"success"`
	Message     string              `json:"message"`
	Errors      FieldErrors         `json:"errors,omitempty"`
	Reason      Reason              `json:"-"`
	CaseDetails *domain.MysteryCase `json:"caseDetails,omitempty"`
}

// ListCasesOptions filters ListCases.
type ListCasesOptions struct {
	PublishedOnly bool
}

// SolveCaseInput is a guess at the solution of a case.
type SolveCaseInput struct {
	CaseID string `json:"caseId" validate:"required"`
	Guess  string `json:"guess"  validate:"min=5"`
}

// SolveCaseResult is the outcome of SolveCase. A wrong guess is still a
// successful submission: Success is true and IsCorrect is false.
type SolveCaseResult struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Errors    FieldErrors `json:"errors,omitempty"`
	Reason    Reason      `json:"-"`
	IsCorrect bool        `json:"isCorrect"`
}

// CaseService provides the mystery case use cases.
type CaseService interface {
	// CreateCase validates input, stores the case under authorID and returns
	// the stored case. The store is not called when validation fails.
	CreateCase(ctx context.Context, input CreateCaseInput, authorID string) CreateCaseResult

	// GetCaseByID returns the case with the given ID. It reports false when the
	// case does not exist or the store fails.
	GetCaseByID(ctx context.Context, id string) (*domain.MysteryCase, bool)

	// ListCases returns cases newest first. It returns an empty slice when the
	// store fails.
	ListCases(ctx context.Context, opts ListCasesOptions) []*domain.MysteryCase

	// SolveCase compares a guess with the stored solution of a case.
	SolveCase(ctx context.Context, input SolveCaseInput) SolveCaseResult
}

// CaseServiceOption configures the CaseService built by NewCaseService.
type CaseServiceOption func(*caseServiceImpl)

// WithCaseClock sets the clock used to name generated evidence files.
func WithCaseClock(now func() time.Time) CaseServiceOption {
	return func(s *caseServiceImpl) {
		if now != nil {
			s.now = now
		}
	}
}

// caseServiceImpl implements the CaseService interface
type caseServiceImpl struct {
	cases     store.CaseStore
	emitter   events.EventEmitter
	validator *inputValidator
	now       func() time.Time
	logger    *slog.Logger
}

// NewCaseService creates a new CaseService.
// It returns an error if the case store is nil. A nil emitter discards events.
func NewCaseService(
	cases store.CaseStore,
	emitter events.EventEmitter,
	logger *slog.Logger,
	opts ...CaseServiceOption,
) (CaseService, error) {
	if cases == nil {
		return nil, nilDependency("cases")
	}
	if emitter == nil {
		emitter = events.NopEmitter{}
	}
	if logger == nil {
		logger = slog.Default()
	}

	s := &caseServiceImpl{
		cases:     cases,
		emitter:   emitter,
		validator: newInputValidator(),
		now:       time.Now,
		logger:    logger.With(slog.String("component", "case_service")),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// CreateCase implements CaseService.CreateCase.
func (s *caseServiceImpl) CreateCase(
	ctx context.Context,
	input CreateCaseInput,
	authorID string,
) CreateCaseResult {
	log := logger.FromContextOrDefault(ctx, s.logger)

	errs := s.validator.Struct(input)
	if strings.TrimSpace(authorID) == "" {
		if errs == nil {
			errs = FieldErrors{}
		}
		errs.Add("authorId", "Author ID is required.")
	}
	if len(errs) > 0 {
		log.Debug("case input rejected", slog.Int("field_count", len(errs)))
		return CreateCaseResult{
			Message: MsgValidationFailed,
			Errors:  errs,
			Reason:  ReasonValidation,
		}
	}

	draft := domain.CaseDraft{
		Title:       input.Title,
		Description: input.Description,
		Difficulty:  input.Difficulty,
		Evidence:    processEvidence(input.Evidence, s.now()),
		Suspects:    input.Suspects,
		Victims:     input.Victims,
		Solution:    input.Solution,
		IsPublished: input.IsPublished,
	}

	created, err := s.cases.Save(ctx, draft, authorID)
	if err != nil {
		log.Error("failed to save case",
			slog.String("error", redact.Error(err)),
			slog.String("author_id", authorID))
		return CreateCaseResult{
			Message: MsgCreateFailed,
			Reason:  ReasonStorage,
		}
	}

	log.Info("case created",
		slog.String("case_id", created.ID),
		slog.Bool("published", created.IsPublished),
		slog.Int("evidence_count", len(created.Evidence)))

	s.emit(ctx, log, events.TypeCaseCreated, events.CaseCreated{
		CaseID:        created.ID,
		AuthorID:      created.AuthorID,
		Title:         created.Title,
		IsPublished:   created.IsPublished,
		EvidenceCount: len(created.Evidence),
	})

	return CreateCaseResult{
		Success:     true,
		Message:     CaseCreatedMessage(created.Title),
		CaseDetails: created,
	}
}

// GetCaseByID implements CaseService.GetCaseByID.
func (s *caseServiceImpl) GetCaseByID(ctx context.Context, id string) (*domain.MysteryCase, bool) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	c, err := s.cases.FindByID(ctx, id)
	if err != nil {
		if !errors.Is(err, store.ErrCaseNotFound) {
			log.Error("failed to retrieve case",
				slog.String("error", redact.Error(err)),
				slog.String("case_id", id))
		}
		return nil, false
	}
	return c, true
}

// ListCases implements CaseService.ListCases.
func (s *caseServiceImpl) ListCases(ctx context.Context, opts ListCasesOptions) []*domain.MysteryCase {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var (
		cases []*domain.MysteryCase
		err   error
	)
	if opts.PublishedOnly {
		cases, err = s.cases.FindAllPublished(ctx)
	} else {
		cases, err = s.cases.FindAll(ctx)
	}
	if err != nil {
		log.Error("failed to list cases",
			slog.String("error", redact.Error(err)),
			slog.Bool("published_only", opts.PublishedOnly))
		return []*domain.MysteryCase{}
	}
	if cases == nil {
		return []*domain.MysteryCase{}
	}
	return cases
}

// SolveCase implements CaseService.SolveCase.
func (s *caseServiceImpl) SolveCase(ctx context.Context, input SolveCaseInput) SolveCaseResult {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if errs := s.validator.Struct(input); len(errs) > 0 {
		return SolveCaseResult{
			Message: MsgInvalidSubmission,
			Errors:  errs,
			Reason:  ReasonValidation,
		}
	}

	c, err := s.cases.FindByID(ctx, input.CaseID)
	if err != nil {
		if errors.Is(err, store.ErrCaseNotFound) {
			return SolveCaseResult{Message: MsgCaseNotFound, Reason: ReasonNotFound}
		}
		log.Error("failed to load case for solution",
			slog.String("error", redact.Error(err)),
			slog.String("case_id", input.CaseID))
		return SolveCaseResult{Message: MsgSolveFailed, Reason: ReasonStorage}
	}

	correct := CheckSolution(c.Solution, input.Guess)

	log.Info("solution submitted",
		slog.String("case_id", c.ID),
		slog.Bool("correct", correct))

	s.emit(ctx, log, events.TypeSolutionSubmitted, events.SolutionSubmitted{
		CaseID:    c.ID,
		IsCorrect: correct,
	})

	if correct {
		return SolveCaseResult{Success: true, Message: MsgSolutionCorrect, IsCorrect: true}
	}
	return SolveCaseResult{Success: true, Message: MsgSolutionIncorrect}
}

// CaseCreatedMessage is the confirmation returned when a case is stored.
func CaseCreatedMessage(title string) string {
	return `Case "` + title + `" created successfully!`
}

// CheckSolution reports whether guess matches solution, ignoring case and
// surrounding whitespace. There is no partial credit.
func CheckSolution(solution, guess string) bool {
	return strings.EqualFold(strings.TrimSpace(solution), strings.TrimSpace(guess))
}

// emit publishes an event. Failures are logged and otherwise ignored.
func (s *caseServiceImpl) emit(ctx context.Context, log *slog.Logger, eventType string, payload interface{}) {
	event, err := events.NewEvent(eventType, payload)
	if err != nil {
		log.Warn("failed to build event",
			slog.String("event_type", eventType),
			slog.String("error", err.Error()))
		return
	}
	if err := s.emitter.EmitEvent(ctx, event); err != nil {
		log.Warn("failed to emit event",
			slog.String("event_type", eventType),
			slog.String("error", redact.Error(err)))
	}
}
