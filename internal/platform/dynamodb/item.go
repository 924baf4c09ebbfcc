package dynamodb

import (
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/phrazzld/casefile/internal/domain"
)

// caseItem is the stored shape of a case.
type caseItem struct {
	ID          string         `dynamodbav:"id"`
	Title       string         `dynamodbav:"title"`
	Description string         `dynamodbav:"description"`
	Difficulty  string         `dynamodbav:"difficulty"`
	AuthorID    string         `dynamodbav:"authorId"`
	Evidence    []evidenceItem `dynamodbav:"evidence"`
	Suspects    []string       `dynamodbav:"suspects"`
	Victims     []string       `dynamodbav:"victims"`
	Solution    string         `dynamodbav:"solution"`
	IsPublished bool           `dynamodbav:"isPublished"`

	// Published and CreatedAt are the key of the published index.
	Published string `dynamodbav:"published"`
	CreatedAt string `dynamodbav:"createdAt"`
}

type evidenceItem struct {
	ID          string `dynamodbav:"id"`
	Title       string `dynamodbav:"title"`
	Type        string `dynamodbav:"type"`
	Content     string `dynamodbav:"content"`
	Description string `dynamodbav:"description,omitempty"`
	FileName    string `dynamodbav:"fileName,omitempty"`
	DataAIHint  string `dynamodbav:"dataAiHint,omitempty"`
}

func publishedFlag(published bool) string {
	if published {
		return "true"
	}
	return "false"
}

func newCaseItem(mc *domain.MysteryCase) caseItem {
	evidence := make([]evidenceItem, len(mc.Evidence))
	for i, ev := range mc.Evidence {
		evidence[i] = evidenceItem{
			ID:          ev.ID,
			Title:       ev.Title,
			Type:        string(ev.Type),
			Content:     ev.Content,
			Description: ev.Description,
			FileName:    ev.FileName,
			DataAIHint:  ev.DataAIHint,
		}
	}

	return caseItem{
		ID:          mc.ID,
		Title:       mc.Title,
		Description: mc.Description,
		Difficulty:  string(mc.Difficulty),
		AuthorID:    mc.AuthorID,
		Evidence:    evidence,
		Suspects:    append([]string{}, mc.Suspects...),
		Victims:     append([]string{}, mc.Victims...),
		Solution:    mc.Solution,
		IsPublished: mc.IsPublished,
		Published:   publishedFlag(mc.IsPublished),
		CreatedAt:   mc.CreatedAt.UTC().Format(timeLayout),
	}
}

func (it caseItem) toDomain() (*domain.MysteryCase, error) {
	createdAt, err := time.Parse(timeLayout, it.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("case %s: invalid createdAt %q: %w", it.ID, it.CreatedAt, err)
	}

	evidence := make([]domain.Evidence, len(it.Evidence))
	for i, ev := range it.Evidence {
		evidence[i] = domain.Evidence{
			ID:          ev.ID,
			Title:       ev.Title,
			Type:        domain.EvidenceType(ev.Type),
			Content:     ev.Content,
			Description: ev.Description,
			FileName:    ev.FileName,
			DataAIHint:  ev.DataAIHint,
		}
	}

	mc := &domain.MysteryCase{
		ID:          it.ID,
		Title:       it.Title,
		Description: it.Description,
		Difficulty:  domain.Difficulty(it.Difficulty),
		AuthorID:    it.AuthorID,
		Evidence:    evidence,
		Suspects:    append([]string{}, it.Suspects...),
		Victims:     append([]string{}, it.Victims...),
		Solution:    it.Solution,
		IsPublished: it.IsPublished,
		CreatedAt:   createdAt.UTC(),
	}
	if err := mc.Validate(); err != nil {
		return nil, fmt.Errorf("case %s: %w", it.ID, err)
	}
	return mc, nil
}

func decodeCase(av map[string]types.AttributeValue) (*domain.MysteryCase, error) {
	var it caseItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return nil, fmt.Errorf("unmarshal case item: %w", err)
	}
	return it.toDomain()
}

func decodeCases(items []map[string]types.AttributeValue) ([]*domain.MysteryCase, error) {
	cases := make([]*domain.MysteryCase, 0, len(items))
	for _, av := range items {
		mc, err := decodeCase(av)
		if err != nil {
			return nil, err
		}
		cases = append(cases, mc)
	}
	return cases, nil
}
