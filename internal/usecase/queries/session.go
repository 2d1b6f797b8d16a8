package queries

import (
	"context"
	"time"

	"paylane/internal/infra"
	"paylane/internal/pkg/errs"

	"github.com/google/uuid"
)

type SessionView struct {
	ID         uuid.UUID `json:"session_id"`
	ResourceID uuid.UUID `json:"resource_id"`
	UserWallet string    `json:"user_wallet"`
	Amount     int64     `json:"amount"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// SessionStatusView is the snapshot presentation layers poll.
type SessionStatusView struct {
	SessionID  uuid.UUID `json:"session_id"`
	ResourceID uuid.UUID `json:"resource_id"`
	UserWallet string    `json:"user_wallet"`
	Amount     int64     `json:"amount"`
	Status     string    `json:"status"`
}

type SessionReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*SessionView, error)
	FindAll(ctx context.Context) ([]*SessionView, error)
}

type SessionQueries interface {
	// CheckStatus is a pure read with no side effects, safe at any polling
	// frequency.
	CheckStatus(ctx context.Context, sessionID uuid.UUID) (*SessionStatusView, error)
	ListAll(ctx context.Context) ([]*SessionView, error)
}

type sessionQueriesImpl struct {
	repo SessionReadStore
}

func NewSessionQueries(repo SessionReadStore) SessionQueries {
	return &sessionQueriesImpl{repo: repo}
}

func (q *sessionQueriesImpl) CheckStatus(ctx context.Context, sessionID uuid.UUID) (*SessionStatusView, error) {
	sv, err := q.repo.FindByID(ctx, sessionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrSessionNotFound)
		}
		return nil, err
	}
	return &SessionStatusView{
		SessionID:  sv.ID,
		ResourceID: sv.ResourceID,
		UserWallet: sv.UserWallet,
		Amount:     sv.Amount,
		Status:     sv.Status,
	}, nil
}

func (q *sessionQueriesImpl) ListAll(ctx context.Context) ([]*SessionView, error) {
	return q.repo.FindAll(ctx)
}
