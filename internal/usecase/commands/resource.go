package commands

import (
	"context"

	domresource "paylane/internal/domain/resource"
	"paylane/internal/infra"
	"paylane/internal/pkg/clock"
	"paylane/internal/pkg/errs"

	"github.com/google/uuid"
)

type CreateResourceRequest struct {
	Name        string
	Description string
	Price       int64
}

type CreateResourceResult struct {
	ResourceID uuid.UUID
}

type ResourceCommands interface {
	CreateResource(ctx context.Context, ownerKey string, req CreateResourceRequest) (*CreateResourceResult, error)
}

type resourceUseCaseImpl struct {
	merchants MerchantRepository
	resources ResourceRepository
	clock     clock.Clock
}

func NewResourceCommands(merchants MerchantRepository, resources ResourceRepository, clk clock.Clock) ResourceCommands {
	return &resourceUseCaseImpl{merchants: merchants, resources: resources, clock: clk}
}

func (uc *resourceUseCaseImpl) CreateResource(ctx context.Context, ownerKey string, req CreateResourceRequest) (*CreateResourceResult, error) {
	if ownerKey == "" {
		return nil, errs.Mark(domresource.ErrEmptyOwnerKey, errs.ErrValidation)
	}

	if _, err := uc.merchants.FindByAPIKey(ctx, ownerKey); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrMerchantNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	res, err := domresource.NewResource(ownerKey, req.Name, req.Description, req.Price, uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	if err := uc.resources.Create(ctx, res); err != nil {
		// One name per owner, enforced by a unique index
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, errs.ErrDuplicateResource)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return &CreateResourceResult{ResourceID: res.ID()}, nil
}
