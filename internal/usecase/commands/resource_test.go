//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	domresource "paylane/internal/domain/resource"
	"paylane/internal/infra"
	"paylane/internal/pkg/clock"
	"paylane/internal/pkg/errs"
	"paylane/internal/usecase/commands"
	"paylane/tests/common/builder"
	commandsmock "paylane/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newResourceCommands(t *testing.T) (commands.ResourceCommands, *commandsmock.MockMerchantRepository, *commandsmock.MockResourceRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	merchants := commandsmock.NewMockMerchantRepository(ctrl)
	resources := commandsmock.NewMockResourceRepository(ctrl)
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	uc := commands.NewResourceCommands(merchants, resources, clk)
	return uc, merchants, resources
}

func TestResourceCommands_CreateResource(t *testing.T) {
	ctx := context.Background()

	merchantSnap := builder.NewMerchantBuilder().BuildSnapshot()
	req := builder.NewResourceBuilder().BuildCreateCommand()

	t.Run("creates a resource owned by the calling key", func(t *testing.T) {
		uc, merchants, resources := newResourceCommands(t)

		merchants.EXPECT().FindByAPIKey(gomock.Any(), testOwnerKey).Return(merchantSnap, nil)

		var created *domresource.Resource
		resources.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r *domresource.Resource) error {
				created = r
				return nil
			})

		result, err := uc.CreateResource(ctx, testOwnerKey, req)
		require.NoError(t, err)
		require.NotNil(t, result)

		require.NotNil(t, created)
		assert.Equal(t, created.ID(), result.ResourceID)
		assert.Equal(t, testOwnerKey, created.OwnerKey())
		assert.Equal(t, req.Price, created.Price())
	})

	t.Run("empty owner key is a validation error", func(t *testing.T) {
		uc, _, _ := newResourceCommands(t)

		result, err := uc.CreateResource(ctx, "", req)
		require.Nil(t, result)
		require.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("unknown owner key maps to merchant not found", func(t *testing.T) {
		uc, merchants, _ := newResourceCommands(t)

		merchants.EXPECT().FindByAPIKey(gomock.Any(), testOwnerKey).
			Return(nil, infra.WrapRepoErr("merchant not found", nil, infra.KindNotFound))

		result, err := uc.CreateResource(ctx, testOwnerKey, req)
		require.Nil(t, result)
		require.ErrorIs(t, err, errs.ErrMerchantNotFound)
	})

	t.Run("non-positive price is a validation error", func(t *testing.T) {
		uc, merchants, _ := newResourceCommands(t)

		merchants.EXPECT().FindByAPIKey(gomock.Any(), testOwnerKey).Return(merchantSnap, nil)

		badReq := req
		badReq.Price = 0

		result, err := uc.CreateResource(ctx, testOwnerKey, badReq)
		require.Nil(t, result)
		require.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("duplicate name for the same owner is rejected", func(t *testing.T) {
		uc, merchants, resources := newResourceCommands(t)

		merchants.EXPECT().FindByAPIKey(gomock.Any(), testOwnerKey).Return(merchantSnap, nil)
		resources.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("duplicate resource", nil, infra.KindDuplicateKey))

		result, err := uc.CreateResource(ctx, testOwnerKey, req)
		require.Nil(t, result)
		require.ErrorIs(t, err, errs.ErrDuplicateResource)
	})

	t.Run("repository failure surfaces as database operation failed", func(t *testing.T) {
		uc, merchants, resources := newResourceCommands(t)

		merchants.EXPECT().FindByAPIKey(gomock.Any(), testOwnerKey).Return(merchantSnap, nil)
		resources.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("insert failed", nil, infra.KindDBFailure))

		result, err := uc.CreateResource(ctx, testOwnerKey, req)
		require.Nil(t, result)
		require.ErrorIs(t, err, errs.ErrDatabaseOperationFailed)
	})
}
