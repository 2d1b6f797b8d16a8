package commands

import (
	"context"

	"paylane/internal/domain/merchant"
	"paylane/internal/domain/resource"
	"paylane/internal/domain/session"
	"paylane/internal/usecase/shared"

	"github.com/google/uuid"
)

type MerchantRepository interface {
	Create(ctx context.Context, m *merchant.Merchant) error
	FindByAPIKey(ctx context.Context, apiKey string) (*shared.MerchantSnapshot, error)
}

type ResourceRepository interface {
	Create(ctx context.Context, r *resource.Resource) error
	FindByID(ctx context.Context, id uuid.UUID) (*shared.ResourceSnapshot, error)
}

type SessionRepository interface {
	Create(ctx context.Context, s *session.Session) error
	// MarkPaid applies the pending→paid transition atomically and returns the
	// post-transition row. Calling it on an already paid session returns the
	// same row unchanged.
	MarkPaid(ctx context.Context, id uuid.UUID) (*shared.SessionSnapshot, error)
}
