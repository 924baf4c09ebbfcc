package domain

import (
	"fmt"
	"time"
)

// Difficulty is the author's rating of how hard a case is to solve.
type Difficulty string

// Known difficulty levels.
const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// IsValid reports whether d is one of the known difficulty levels.
func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	default:
		return false
	}
}

// MysteryCase is a mystery scenario with evidence, suspects, victims and a
// hidden solution. Cases are created once and never updated.
//
// Every persisted case has at least one evidence item, one suspect and one
// victim. The rule is enforced when the case is created, not by storage.
type MysteryCase struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Difficulty  Difficulty `json:"difficulty"`
	// AuthorID references a User.ID. It is not checked against any user record.
	AuthorID    string     `json:"authorId"`
	Evidence    []Evidence `json:"evidence"`
	Suspects    []string   `json:"suspects"`
	Victims     []string   `json:"victims"`
	Solution    string     `json:"solution"`
	IsPublished bool       `json:"isPublished"`
	// CreatedAt is assigned by the storage backend.
	CreatedAt time.Time `json:"createdAt"`
}

// Clone returns a deep copy of the case so callers can hand it out without
// sharing the evidence, suspect or victim slices.
func (c *MysteryCase) Clone() *MysteryCase {
	if c == nil {
		return nil
	}
	cp := *c
	cp.Evidence = append([]Evidence(nil), c.Evidence...)
	cp.Suspects = append([]string(nil), c.Suspects...)
	cp.Victims = append([]string(nil), c.Victims...)
	return &cp
}

// CaseDraft is a validated case that has not been stored yet. The storage
// backend turns it into a MysteryCase by assigning the case ID, an ID for
// every evidence item and the creation timestamp. Evidence IDs on a draft are
// ignored.
type CaseDraft struct {
	Title       string
	Description string
	Difficulty  Difficulty
	Evidence    []Evidence
	Suspects    []string
	Victims     []string
	Solution    string
	IsPublished bool
}

// Materialize builds the MysteryCase a backend persists for this draft.
// evidenceID is called once per evidence item, in order.
func (d CaseDraft) Materialize(
	id, authorID string,
	createdAt time.Time,
	evidenceID func() string,
) *MysteryCase {
	evidence := make([]Evidence, len(d.Evidence))
	for i, ev := range d.Evidence {
		ev.ID = evidenceID()
		evidence[i] = ev
	}

	return &MysteryCase{
		ID:          id,
		Title:       d.Title,
		Description: d.Description,
		Difficulty:  d.Difficulty,
		AuthorID:    authorID,
		Evidence:    evidence,
		Suspects:    append([]string(nil), d.Suspects...),
		Victims:     append([]string(nil), d.Victims...),
		Solution:    d.Solution,
		IsPublished: d.IsPublished,
		CreatedAt:   createdAt,
	}
}

// Draft returns the stored case as a draft, dropping the fields a backend
// assigns on save.
func (c *MysteryCase) Draft() CaseDraft {
	return CaseDraft{
		Title:       c.Title,
		Description: c.Description,
		Difficulty:  c.Difficulty,
		Evidence:    append([]Evidence(nil), c.Evidence...),
		Suspects:    append([]string(nil), c.Suspects...),
		Victims:     append([]string(nil), c.Victims...),
		Solution:    c.Solution,
		IsPublished: c.IsPublished,
	}
}

// Validate checks the enumerated fields of a stored case. Decoders use it to
// reject documents that were not written by this application.
func (c *MysteryCase) Validate() error {
	if c.ID == "" {
		return ErrInvalidID
	}
	if !c.Difficulty.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidDifficulty, c.Difficulty)
	}
	for _, ev := range c.Evidence {
		if !ev.Type.IsValid() {
			return fmt.Errorf("%w: %q", ErrInvalidEvidenceType, ev.Type)
		}
	}
	return nil
}
