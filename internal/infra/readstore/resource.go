package readstore

import (
	"context"

	"paylane/internal/infra"
	"paylane/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ResourceReadStore struct {
	pool *pgxpool.Pool
}

func NewResourceReadStore(pool *pgxpool.Pool) *ResourceReadStore {
	return &ResourceReadStore{pool: pool}
}

// FindByOwner returns the owner's resources in insertion order. An unknown
// owner key yields an empty slice, not an error.
func (r *ResourceReadStore) FindByOwner(ctx context.Context, ownerKey string) ([]*queries.ResourceView, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, description, price, created_at
		 FROM resources WHERE owner_key = $1
		 ORDER BY created_at, id`,
		ownerKey,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find resources by owner", err)
	}
	defer rows.Close()

	result := []*queries.ResourceView{}
	for rows.Next() {
		var rv queries.ResourceView
		if err := rows.Scan(&rv.ID, &rv.Name, &rv.Description, &rv.Price, &rv.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan resource row", err)
		}
		result = append(result, &rv)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read resource rows", err)
	}
	return result, nil
}
