//go:build unit || e2e

package builder

import (
	"time"

	domsession "paylane/internal/domain/session"
	reqdto "paylane/internal/handler/dto/request"
	"paylane/internal/usecase/commands"
	"paylane/internal/usecase/queries"
	"paylane/internal/usecase/shared"

	"github.com/google/uuid"
)

type SessionBuilder struct {
	ResourceID uuid.UUID
	UserWallet string
	Amount     int64
	Status     string
	CreatedAt  time.Time
}

func NewSessionBuilder() *SessionBuilder {
	return &SessionBuilder{
		ResourceID: uuid.New(),
		UserWallet: "0xUSER00000000000000000000000000000000001",
		Amount:     500,
		Status:     string(domsession.StatusPending),
		CreatedAt:  time.Now(),
	}
}

func (s *SessionBuilder) With(mutate func(*SessionBuilder)) *SessionBuilder {
	mutate(s)
	return s
}

// Build methods
func (s *SessionBuilder) BuildDomain() (*domsession.Session, error) {
	return domsession.NewSession(s.ResourceID, s.UserWallet, s.Amount, s.CreatedAt)
}

func (s *SessionBuilder) BuildOpenRequestDTO() reqdto.OpenSessionRequest {
	return reqdto.OpenSessionRequest{
		ResourceID: s.ResourceID,
		UserWallet: s.UserWallet,
	}
}

func (s *SessionBuilder) BuildOpenCommand() commands.OpenSessionRequest {
	return commands.OpenSessionRequest{
		ResourceID: s.ResourceID,
		UserWallet: s.UserWallet,
	}
}

func (s *SessionBuilder) BuildView() *queries.SessionView {
	return &queries.SessionView{
		ID:         uuid.New(),
		ResourceID: s.ResourceID,
		UserWallet: s.UserWallet,
		Amount:     s.Amount,
		Status:     s.Status,
		CreatedAt:  s.CreatedAt,
	}
}

func (s *SessionBuilder) BuildStatusView() *queries.SessionStatusView {
	return &queries.SessionStatusView{
		SessionID:  uuid.New(),
		ResourceID: s.ResourceID,
		UserWallet: s.UserWallet,
		Amount:     s.Amount,
		Status:     s.Status,
	}
}

func (s *SessionBuilder) BuildSnapshot() *shared.SessionSnapshot {
	return &shared.SessionSnapshot{
		ID:         uuid.New(),
		ResourceID: s.ResourceID,
		UserWallet: s.UserWallet,
		Amount:     s.Amount,
		Status:     s.Status,
		CreatedAt:  s.CreatedAt,
	}
}

// Fluent builder methods
func (s *SessionBuilder) WithResourceID(id uuid.UUID) *SessionBuilder {
	s.ResourceID = id
	return s
}

func (s *SessionBuilder) WithUserWallet(wallet string) *SessionBuilder {
	s.UserWallet = wallet
	return s
}

func (s *SessionBuilder) WithAmount(amount int64) *SessionBuilder {
	s.Amount = amount
	return s
}

func (s *SessionBuilder) WithStatus(status string) *SessionBuilder {
	s.Status = status
	return s
}
