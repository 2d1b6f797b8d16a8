package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type ResourceView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       int64     `json:"price"`
	CreatedAt   time.Time `json:"created_at"`
}

type ResourceReadStore interface {
	FindByOwner(ctx context.Context, ownerKey string) ([]*ResourceView, error)
}

type ResourceQueries interface {
	// ListByOwner returns the owner's resources in insertion order. An
	// unknown key yields an empty list, indistinguishable from a key that
	// owns nothing (minimal disclosure).
	ListByOwner(ctx context.Context, ownerKey string) ([]*ResourceView, error)
}

type resourceQueriesImpl struct {
	repo ResourceReadStore
}

func NewResourceQueries(repo ResourceReadStore) ResourceQueries {
	return &resourceQueriesImpl{repo: repo}
}

func (q *resourceQueriesImpl) ListByOwner(ctx context.Context, ownerKey string) ([]*ResourceView, error) {
	return q.repo.FindByOwner(ctx, ownerKey)
}
