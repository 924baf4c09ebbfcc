package api

import (
	"time"

	"github.com/phrazzld/casefile/internal/domain"
)

// CaseView is a case as served by the read endpoints. The solution is only
// filled in when the caller is the case's author.
type CaseView struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Difficulty  domain.Difficulty `json:"difficulty"`
	AuthorID    string            `json:"authorId"`
	Evidence    []domain.Evidence `json:"evidence"`
	Suspects    []string          `json:"suspects"`
	Victims     []string          `json:"victims"`
	Solution    string            `json:"solution,omitempty"`
	IsPublished bool              `json:"isPublished"`
	CreatedAt   time.Time         `json:"createdAt"`
}

func newCaseView(mc *domain.MysteryCase, viewer string) CaseView {
	v := CaseView{
		ID:          mc.ID,
		Title:       mc.Title,
		Description: mc.Description,
		Difficulty:  mc.Difficulty,
		AuthorID:    mc.AuthorID,
		Evidence:    mc.Evidence,
		Suspects:    mc.Suspects,
		Victims:     mc.Victims,
		IsPublished: mc.IsPublished,
		CreatedAt:   mc.CreatedAt,
	}
	if viewer != "" && viewer == mc.AuthorID {
		v.Solution = mc.Solution
	}
	return v
}

// CaseListResponse is the body of GET /api/cases.
type CaseListResponse struct {
	Success bool       `json:"success"`
	Cases   []CaseView `json:"cases"`
}

// CaseResponse is the body of GET /api/cases/{id}.
type CaseResponse struct {
	Success     bool     `json:"success"`
	CaseDetails CaseView `json:"caseDetails"`
}

// SolveRequest is the body of POST /api/cases/{id}/solve.
type SolveRequest struct {
	Guess string `json:"guess"`
}

// KeyPairResponse is the body of POST /api/auth/keys. The private key is
// returned once and never stored.
type KeyPairResponse struct {
	Success    bool   `json:"success"`
	PublicKey  string `json:"publicKey"`
	PrivateKey string `json:"privateKey"`
}

// SignUpRequest is the body of POST /api/auth/signup.
type SignUpRequest struct {
	PublicKey string `json:"publicKey" validate:"required"`
	Username  string `json:"username"  validate:"max=50"`
}

// LogInRequest is the body of POST /api/auth/login.
type LogInRequest struct {
	PublicKey string `json:"publicKey" validate:"required"`
	// Proof is accepted and ignored.
	Proof string `json:"proof"`
}

// UserResponse carries the current user.
type UserResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	User    *domain.User `json:"user"`
}

// MessageResponse is a success without data.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
