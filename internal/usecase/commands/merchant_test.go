//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	dommerchant "paylane/internal/domain/merchant"
	"paylane/internal/infra"
	"paylane/internal/pkg/clock"
	"paylane/internal/pkg/errs"
	"paylane/internal/usecase/commands"
	commandsmock "paylane/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newMerchantCommands(t *testing.T) (commands.MerchantCommands, *commandsmock.MockMerchantRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	merchants := commandsmock.NewMockMerchantRepository(ctrl)
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	uc := commands.NewMerchantCommands(merchants, clk)
	return uc, merchants
}

func TestMerchantCommands_Register(t *testing.T) {
	ctx := context.Background()

	req := commands.RegisterMerchantRequest{
		Name:          "Demo Merchant",
		WalletAddress: "0xMERCHANT000000000000000000000000000001",
	}

	t.Run("registers a merchant with a freshly issued key", func(t *testing.T) {
		uc, merchants := newMerchantCommands(t)

		var created *dommerchant.Merchant
		merchants.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, m *dommerchant.Merchant) error {
				created = m
				return nil
			})

		result, err := uc.Register(ctx, req)
		require.NoError(t, err)
		require.NotNil(t, result)

		require.NotNil(t, created)
		assert.NotEqual(t, uuid.Nil, result.MerchantID)
		assert.Len(t, result.APIKey, 32) // 16 random bytes, hex encoded
		assert.Equal(t, created.APIKey(), result.APIKey)
		assert.Equal(t, req.WalletAddress, result.WalletAddress)
	})

	t.Run("each registration issues a distinct key", func(t *testing.T) {
		uc, merchants := newMerchantCommands(t)

		merchants.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(2)

		first, err := uc.Register(ctx, req)
		require.NoError(t, err)
		second, err := uc.Register(ctx, req)
		require.NoError(t, err)

		assert.NotEqual(t, first.APIKey, second.APIKey)
	})

	t.Run("empty name is a validation error", func(t *testing.T) {
		uc, _ := newMerchantCommands(t)

		badReq := req
		badReq.Name = ""

		result, err := uc.Register(ctx, badReq)
		require.Nil(t, result)
		require.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("repository failure surfaces", func(t *testing.T) {
		uc, merchants := newMerchantCommands(t)

		merchants.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("insert failed", nil, infra.KindDBFailure))

		result, err := uc.Register(ctx, req)
		require.Nil(t, result)
		require.ErrorIs(t, err, errs.ErrDatabaseOperationFailed)
	})
}
