package repository

import (
	"context"
	"errors"

	"paylane/internal/domain/resource"
	"paylane/internal/infra"
	"paylane/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ResourceRepository struct {
	pool *pgxpool.Pool
}

func NewResourceRepository(pool *pgxpool.Pool) *ResourceRepository {
	return &ResourceRepository{pool: pool}
}

func (r *ResourceRepository) Create(ctx context.Context, res *resource.Resource) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO resources (id, owner_key, name, description, price, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		res.ID(), res.OwnerKey(), res.Name(), res.Description(), res.Price(), res.CreatedAt(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("resource name already exists for owner", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create resource", err)
	}
	return nil
}

// FindByID looks a resource up across all owners; session open presents
// only the resource id, never the owning merchant's key.
func (r *ResourceRepository) FindByID(ctx context.Context, id uuid.UUID) (*shared.ResourceSnapshot, error) {
	var snap shared.ResourceSnapshot
	err := r.pool.QueryRow(ctx,
		`SELECT id, owner_key, name, price FROM resources WHERE id = $1`,
		id,
	).Scan(&snap.ID, &snap.OwnerKey, &snap.Name, &snap.Price)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("resource not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find resource by ID", err)
	}
	return &snap, nil
}
