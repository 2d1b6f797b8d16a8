package readstore

import (
	"context"
	"errors"

	"paylane/internal/infra"
	"paylane/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SessionReadStore struct {
	pool *pgxpool.Pool
}

func NewSessionReadStore(pool *pgxpool.Pool) *SessionReadStore {
	return &SessionReadStore{pool: pool}
}

func (r *SessionReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.SessionView, error) {
	var sv queries.SessionView
	err := r.pool.QueryRow(ctx,
		`SELECT id, resource_id, user_wallet, amount, status, created_at
		 FROM sessions WHERE id = $1`,
		id,
	).Scan(&sv.ID, &sv.ResourceID, &sv.UserWallet, &sv.Amount, &sv.Status, &sv.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("session not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find session by ID", err)
	}
	return &sv, nil
}

func (r *SessionReadStore) FindAll(ctx context.Context) ([]*queries.SessionView, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, resource_id, user_wallet, amount, status, created_at
		 FROM sessions ORDER BY created_at, id`,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find all sessions", err)
	}
	defer rows.Close()

	result := []*queries.SessionView{}
	for rows.Next() {
		var sv queries.SessionView
		if err := rows.Scan(&sv.ID, &sv.ResourceID, &sv.UserWallet, &sv.Amount, &sv.Status, &sv.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan session row", err)
		}
		result = append(result, &sv)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read session rows", err)
	}
	return result, nil
}
