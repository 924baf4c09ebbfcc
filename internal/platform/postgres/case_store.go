package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/casefile/internal/domain"
	"github.com/phrazzld/casefile/internal/platform/logger"
	"github.com/phrazzld/casefile/internal/store"
)

const caseEntity = "case"

const (
	insertCaseSQL = `
		INSERT INTO cases (document, author_id, is_published)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	selectCaseByIDSQL = `
		SELECT id, document, author_id, is_published, created_at
		FROM cases
		WHERE id = $1
	`

	selectAllCasesSQL = `
		SELECT id, document, author_id, is_published, created_at
		FROM cases
		ORDER BY created_at DESC, id DESC
	`

	selectPublishedCasesSQL = `
		SELECT id, document, author_id, is_published, created_at
		FROM cases
		WHERE is_published = true
		ORDER BY created_at DESC, id DESC
	`
)

// caseDocument is the JSONB payload of a row. Columns that are filtered or
// ordered on are kept out of it.
type caseDocument struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Difficulty  domain.Difficulty `json:"difficulty"`
	Evidence    []domain.Evidence `json:"evidence"`
	Suspects    []string          `json:"suspects"`
	Victims     []string          `json:"victims"`
	Solution    string            `json:"solution"`
}

func newCaseDocument(mc *domain.MysteryCase) caseDocument {
	return caseDocument{
		Title:       mc.Title,
		Description: mc.Description,
		Difficulty:  mc.Difficulty,
		Evidence:    mc.Evidence,
		Suspects:    mc.Suspects,
		Victims:     mc.Victims,
		Solution:    mc.Solution,
	}
}

// caseRow holds the scanned columns of one row.
type caseRow struct {
	ID          uuid.UUID
	Document    []byte
	AuthorID    string
	IsPublished bool
	CreatedAt   time.Time
}

// toDomain decodes the document and validates the result, so a row written by
// something other than this store is reported instead of served.
func (r caseRow) toDomain() (*domain.MysteryCase, error) {
	var doc caseDocument
	if err := json.Unmarshal(r.Document, &doc); err != nil {
		return nil, fmt.Errorf("decode case document %s: %w", r.ID, err)
	}

	mc := &domain.MysteryCase{
		ID:          r.ID.String(),
		Title:       doc.Title,
		Description: doc.Description,
		Difficulty:  doc.Difficulty,
		AuthorID:    r.AuthorID,
		Evidence:    doc.Evidence,
		Suspects:    doc.Suspects,
		Victims:     doc.Victims,
		Solution:    doc.Solution,
		IsPublished: r.IsPublished,
		CreatedAt:   r.CreatedAt.UTC(),
	}
	if mc.Evidence == nil {
		mc.Evidence = []domain.Evidence{}
	}
	if mc.Suspects == nil {
		mc.Suspects = []string{}
	}
	if mc.Victims == nil {
		mc.Victims = []string{}
	}

	if err := mc.Validate(); err != nil {
		return nil, fmt.Errorf("case document %s: %w", r.ID, err)
	}
	return mc, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCaseRow(s rowScanner) (caseRow, error) {
	var r caseRow
	err := s.Scan(&r.ID, &r.Document, &r.AuthorID, &r.IsPublished, &r.CreatedAt)
	return r, err
}

// PostgresCaseStore implements the store.CaseStore interface
// using a PostgreSQL JSONB document table as the storage backend.
type PostgresCaseStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCaseStore creates a new PostgreSQL implementation of the CaseStore interface.
// It accepts a database connection or transaction that is managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresCaseStore(db store.DBTX, logger *slog.Logger) *PostgresCaseStore {
	if db == nil {
		// ALLOW-PANIC: constructor misuse is a programming error
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresCaseStore{
		db:     db,
		logger: logger.With(slog.String("component", "case_store")),
	}
}

// Ensure PostgresCaseStore implements store.CaseStore interface
var _ store.CaseStore = (*PostgresCaseStore)(nil)

// FindByID implements store.CaseStore.FindByID.
// Ids that are not UUIDs cannot exist in this store and report
// store.ErrCaseNotFound without a query.
func (s *PostgresCaseStore) FindByID(ctx context.Context, id string) (*domain.MysteryCase, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	caseID, err := uuid.Parse(id)
	if err != nil {
		log.Debug("case id is not a uuid", slog.String("case_id", id))
		return nil, store.ErrCaseNotFound
	}

	row, err := scanCaseRow(s.db.QueryRowContext(ctx, selectCaseByIDSQL, caseID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("case not found", slog.String("case_id", id))
			return nil, store.ErrCaseNotFound
		}
		log.Error("failed to get case by ID",
			slog.String("error", err.Error()),
			slog.String("case_id", id))
		return nil, store.NewStoreError(caseEntity, "find_by_id", "query failed", MapError(err))
	}

	mc, err := row.toDomain()
	if err != nil {
		log.Error("stored case is invalid",
			slog.String("error", err.Error()),
			slog.String("case_id", id))
		return nil, store.NewStoreError(caseEntity, "find_by_id", "invalid document", err)
	}

	return mc, nil
}

// FindAll implements store.CaseStore.FindAll.
func (s *PostgresCaseStore) FindAll(ctx context.Context) ([]*domain.MysteryCase, error) {
	return s.list(ctx, "find_all", selectAllCasesSQL)
}

// FindAllPublished implements store.CaseStore.FindAllPublished.
func (s *PostgresCaseStore) FindAllPublished(ctx context.Context) ([]*domain.MysteryCase, error) {
	return s.list(ctx, "find_all_published", selectPublishedCasesSQL)
}

func (s *PostgresCaseStore) list(
	ctx context.Context,
	operation, query string,
) ([]*domain.MysteryCase, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to query cases",
			slog.String("error", err.Error()),
			slog.String("operation", operation))
		return nil, store.NewStoreError(caseEntity, operation, "query failed", MapError(err))
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Error("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	cases := make([]*domain.MysteryCase, 0)
	for rows.Next() {
		row, err := scanCaseRow(rows)
		if err != nil {
			log.Error("failed to scan case row",
				slog.String("error", err.Error()),
				slog.String("operation", operation))
			return nil, store.NewStoreError(caseEntity, operation, "scan failed", err)
		}

		mc, err := row.toDomain()
		if err != nil {
			log.Error("stored case is invalid",
				slog.String("error", err.Error()),
				slog.String("case_id", row.ID.String()))
			return nil, store.NewStoreError(caseEntity, operation, "invalid document", err)
		}
		cases = append(cases, mc)
	}

	if err := rows.Err(); err != nil {
		log.Error("error iterating case rows",
			slog.String("error", err.Error()),
			slog.String("operation", operation))
		return nil, store.NewStoreError(caseEntity, operation, "iteration failed", MapError(err))
	}

	log.Debug("cases retrieved",
		slog.String("operation", operation),
		slog.Int("count", len(cases)))
	return cases, nil
}

// Save implements store.CaseStore.Save.
// The database assigns the case id and created_at; evidence ids are random
// UUIDs generated here.
func (s *PostgresCaseStore) Save(
	ctx context.Context,
	draft domain.CaseDraft,
	authorID string,
) (*domain.MysteryCase, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	mc := draft.Materialize("", authorID, time.Time{}, uuid.NewString)

	payload, err := json.Marshal(newCaseDocument(mc))
	if err != nil {
		return nil, store.NewStoreError(caseEntity, "save", "encode document", err)
	}

	var (
		id        uuid.UUID
		createdAt time.Time
	)
	err = s.db.QueryRowContext(ctx, insertCaseSQL, payload, authorID, mc.IsPublished).
		Scan(&id, &createdAt)
	if err != nil {
		log.Error("failed to insert case",
			slog.String("error", err.Error()),
			slog.String("author_id", authorID))
		return nil, store.NewStoreError(caseEntity, "save", "insert failed", MapError(err))
	}

	mc.ID = id.String()
	mc.CreatedAt = createdAt.UTC()

	log.Info("case created",
		slog.String("case_id", mc.ID),
		slog.String("author_id", authorID),
		slog.Bool("is_published", mc.IsPublished),
		slog.Int("evidence_count", len(mc.Evidence)))
	return mc, nil
}
