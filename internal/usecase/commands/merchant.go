package commands

import (
	"context"

	dommerchant "paylane/internal/domain/merchant"
	"paylane/internal/pkg/apikey"
	"paylane/internal/pkg/clock"
	"paylane/internal/pkg/errs"

	"github.com/google/uuid"
)

type RegisterMerchantRequest struct {
	Name          string
	WalletAddress string
}

type RegisterMerchantResult struct {
	MerchantID    uuid.UUID
	APIKey        string
	WalletAddress string
}

type MerchantCommands interface {
	Register(ctx context.Context, req RegisterMerchantRequest) (*RegisterMerchantResult, error)
}

type merchantUseCaseImpl struct {
	merchants MerchantRepository
	clock     clock.Clock
}

func NewMerchantCommands(merchants MerchantRepository, clk clock.Clock) MerchantCommands {
	return &merchantUseCaseImpl{merchants: merchants, clock: clk}
}

func (uc *merchantUseCaseImpl) Register(ctx context.Context, req RegisterMerchantRequest) (*RegisterMerchantResult, error) {
	key, err := apikey.Generate()
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate merchant api key")
	}

	m, err := dommerchant.NewMerchant(req.Name, key, req.WalletAddress, uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	if err := uc.merchants.Create(ctx, m); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return &RegisterMerchantResult{
		MerchantID:    m.ID(),
		APIKey:        m.APIKey(),
		WalletAddress: m.WalletAddress(),
	}, nil
}
