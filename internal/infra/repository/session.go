package repository

import (
	"context"
	"errors"

	"paylane/internal/domain/session"
	"paylane/internal/infra"
	"paylane/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SessionRepository struct {
	pool *pgxpool.Pool
}

func NewSessionRepository(pool *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{pool: pool}
}

func (r *SessionRepository) Create(ctx context.Context, s *session.Session) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO sessions (id, resource_id, user_wallet, amount, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		s.ID(), s.ResourceID(), s.UserWallet(), s.Amount(), string(s.Status()), s.CreatedAt(),
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return infra.WrapRepoErr("session references unknown resource", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to create session", err)
	}
	return nil
}

// MarkPaid is a single unconditional UPDATE: the row serializes concurrent
// calls, the status check constraint only admits pending|paid, and paid is
// terminal, so a second call observes the same paid row.
func (r *SessionRepository) MarkPaid(ctx context.Context, id uuid.UUID) (*shared.SessionSnapshot, error) {
	var snap shared.SessionSnapshot
	err := r.pool.QueryRow(ctx,
		`UPDATE sessions SET status = 'paid' WHERE id = $1
		 RETURNING id, resource_id, user_wallet, amount, status, created_at`,
		id,
	).Scan(&snap.ID, &snap.ResourceID, &snap.UserWallet, &snap.Amount, &snap.Status, &snap.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("session not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to mark session paid", err)
	}
	return &snap, nil
}
