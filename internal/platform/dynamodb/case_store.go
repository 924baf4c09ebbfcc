package dynamodb

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	"github.com/phrazzld/casefile/internal/domain"
	"github.com/phrazzld/casefile/internal/platform/logger"
	"github.com/phrazzld/casefile/internal/store"
)

const caseEntity = "case"

// timeLayout is RFC 3339 with a fixed nine digit fraction, so createdAt sorts
// lexically in the index.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// API is the subset of the DynamoDB client used by CaseStore.
type API interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

var _ API = (*dynamodb.Client)(nil)

// CaseStore implements store.CaseStore on a DynamoDB table.
//
// Each case is one item keyed by id. The published attribute ("true" or
// "false") and createdAt form the key of a global secondary index that serves
// FindAllPublished. The index must project all attributes.
type CaseStore struct {
	client         API
	table          string
	publishedIndex string
	now            func() time.Time
	logger         *slog.Logger
}

// Option configures a CaseStore.
type Option func(*CaseStore)

// WithClock sets the clock used to stamp new cases.
func WithClock(now func() time.Time) Option {
	return func(s *CaseStore) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLogger sets the logger used by the store.
func WithLogger(l *slog.Logger) Option {
	return func(s *CaseStore) {
		if l != nil {
			s.logger = l
		}
	}
}

// Compile-time check to ensure CaseStore implements store.CaseStore.
var _ store.CaseStore = (*CaseStore)(nil)

// NewCaseStore creates a store over the given table and published index.
func NewCaseStore(client API, table, publishedIndex string, opts ...Option) (*CaseStore, error) {
	if client == nil {
		return nil, errors.New("dynamodb client cannot be nil")
	}
	if table == "" || publishedIndex == "" {
		return nil, errors.New("table and published index names are required")
	}

	s := &CaseStore{
		client:         client,
		table:          table,
		publishedIndex: publishedIndex,
		now:            time.Now,
		logger:         slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(slog.String("component", "case_store"), slog.String("backend", "dynamodb"))
	return s, nil
}

// FindByID implements store.CaseStore.FindByID with a consistent read.
func (s *CaseStore) FindByID(ctx context.Context, id string) (*domain.MysteryCase, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		log.Error("failed to get case", slog.String("error", err.Error()), slog.String("case_id", id))
		return nil, store.NewStoreError(caseEntity, "find_by_id", "get item failed", err)
	}
	if len(out.Item) == 0 {
		log.Debug("case not found", slog.String("case_id", id))
		return nil, store.ErrCaseNotFound
	}

	mc, err := decodeCase(out.Item)
	if err != nil {
		log.Error("stored case is invalid", slog.String("error", err.Error()), slog.String("case_id", id))
		return nil, store.NewStoreError(caseEntity, "find_by_id", "invalid item", err)
	}
	return mc, nil
}

// FindAll implements store.CaseStore.FindAll. It scans the whole table and
// sorts the result, since no index covers every case.
func (s *CaseStore) FindAll(ctx context.Context) ([]*domain.MysteryCase, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	input := &dynamodb.ScanInput{TableName: aws.String(s.table)}
	cases := make([]*domain.MysteryCase, 0)

	for {
		out, err := s.client.Scan(ctx, input)
		if err != nil {
			log.Error("failed to scan cases", slog.String("error", err.Error()))
			return nil, store.NewStoreError(caseEntity, "find_all", "scan failed", err)
		}

		page, err := decodeCases(out.Items)
		if err != nil {
			log.Error("stored case is invalid", slog.String("error", err.Error()))
			return nil, store.NewStoreError(caseEntity, "find_all", "invalid item", err)
		}
		cases = append(cases, page...)

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}

	sortNewestFirst(cases)
	log.Debug("cases retrieved", slog.String("operation", "find_all"), slog.Int("count", len(cases)))
	return cases, nil
}

// FindAllPublished implements store.CaseStore.FindAllPublished by querying the
// published index in descending createdAt order. Index reads are eventually
// consistent.
func (s *CaseStore) FindAllPublished(ctx context.Context) ([]*domain.MysteryCase, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	keyCond := expression.Key("published").Equal(expression.Value(publishedFlag(true)))
	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return nil, store.NewStoreError(caseEntity, "find_all_published", "build expression", err)
	}

	input := &dynamodb.QueryInput{
		TableName:                 aws.String(s.table),
		IndexName:                 aws.String(s.publishedIndex),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ScanIndexForward:          aws.Bool(false),
	}
	cases := make([]*domain.MysteryCase, 0)

	for {
		out, err := s.client.Query(ctx, input)
		if err != nil {
			log.Error("failed to query published cases", slog.String("error", err.Error()))
			return nil, store.NewStoreError(caseEntity, "find_all_published", "query failed", err)
		}

		page, err := decodeCases(out.Items)
		if err != nil {
			log.Error("stored case is invalid", slog.String("error", err.Error()))
			return nil, store.NewStoreError(caseEntity, "find_all_published", "invalid item", err)
		}
		cases = append(cases, page...)

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}

	// The index leaves ties on createdAt unordered.
	sortNewestFirst(cases)
	log.Debug("cases retrieved", slog.String("operation", "find_all_published"), slog.Int("count", len(cases)))
	return cases, nil
}

// Save implements store.CaseStore.Save. Ids are random UUIDs and createdAt
// comes from the store's clock.
func (s *CaseStore) Save(ctx context.Context, draft domain.CaseDraft, authorID string) (*domain.MysteryCase, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	mc := draft.Materialize(uuid.NewString(), authorID, s.now().UTC(), uuid.NewString)

	item, err := attributevalue.MarshalMap(newCaseItem(mc))
	if err != nil {
		return nil, store.NewStoreError(caseEntity, "save", "encode item", err)
	}

	cond := expression.AttributeNotExists(expression.Name("id"))
	expr, err := expression.NewBuilder().WithCondition(cond).Build()
	if err != nil {
		return nil, store.NewStoreError(caseEntity, "save", "build expression", err)
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(s.table),
		Item:                     item,
		ConditionExpression:      expr.Condition(),
		ExpressionAttributeNames: expr.Names(),
	})
	if err != nil {
		var condErr *types.ConditionalCheckFailedException
		if errors.As(err, &condErr) {
			err = errors.Join(store.ErrInvalidEntity, err)
		}
		log.Error("failed to put case",
			slog.String("error", err.Error()),
			slog.String("case_id", mc.ID))
		return nil, store.NewStoreError(caseEntity, "save", "put item failed", err)
	}

	log.Info("case created",
		slog.String("case_id", mc.ID),
		slog.String("author_id", authorID),
		slog.Bool("is_published", mc.IsPublished),
		slog.Int("evidence_count", len(mc.Evidence)))
	return mc, nil
}

func sortNewestFirst(cases []*domain.MysteryCase) {
	slices.SortStableFunc(cases, func(a, b *domain.MysteryCase) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(b.ID, a.ID)
	})
}
