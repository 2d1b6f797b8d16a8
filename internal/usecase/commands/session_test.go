//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	domsession "paylane/internal/domain/session"
	"paylane/internal/infra"
	"paylane/internal/pkg/clock"
	"paylane/internal/pkg/errs"
	"paylane/internal/usecase/commands"
	"paylane/tests/common/builder"
	commandsmock "paylane/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testOwnerKey = "mk_0123456789abcdef0123456789abcdef"

func newSessionCommands(t *testing.T) (commands.SessionCommands, *commandsmock.MockMerchantRepository, *commandsmock.MockResourceRepository, *commandsmock.MockSessionRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	merchants := commandsmock.NewMockMerchantRepository(ctrl)
	resources := commandsmock.NewMockResourceRepository(ctrl)
	sessions := commandsmock.NewMockSessionRepository(ctrl)
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	uc := commands.NewSessionCommands(merchants, resources, sessions, clk)
	return uc, merchants, resources, sessions
}

func TestSessionCommands_OpenSession(t *testing.T) {
	ctx := context.Background()

	merchantSnap := builder.NewMerchantBuilder().BuildSnapshot()
	resourceSnap := builder.NewResourceBuilder().WithPrice(500).BuildSnapshot()

	req := commands.OpenSessionRequest{
		ResourceID: resourceSnap.ID,
		UserWallet: "0xUSER00000000000000000000000000000000001",
	}

	t.Run("opens a pending session snapshotting the resource price", func(t *testing.T) {
		uc, merchants, resources, sessions := newSessionCommands(t)

		merchants.EXPECT().FindByAPIKey(gomock.Any(), testOwnerKey).Return(merchantSnap, nil)
		resources.EXPECT().FindByID(gomock.Any(), resourceSnap.ID).Return(resourceSnap, nil)

		var created *domsession.Session
		sessions.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, s *domsession.Session) error {
				created = s
				return nil
			})

		result, err := uc.OpenSession(ctx, testOwnerKey, req)
		require.NoError(t, err)
		require.NotNil(t, result)

		assert.Equal(t, int64(500), result.Amount)
		assert.Equal(t, merchantSnap.WalletAddress, result.PayToWallet)
		assert.Equal(t, string(domsession.StatusPending), result.Status)

		require.NotNil(t, created)
		assert.Equal(t, resourceSnap.ID, created.ResourceID())
		assert.Equal(t, int64(500), created.Amount())
		assert.False(t, created.IsPaid())
	})

	t.Run("payment routes to the resource owner's wallet", func(t *testing.T) {
		uc, merchants, resources, sessions := newSessionCommands(t)

		payer := builder.NewMerchantBuilder().
			WithAPIKey("mk_payer00000000000000000000000000000").
			WithWalletAddress("0xPAYER0000000000000000000000000000000001").
			BuildSnapshot()
		owner := builder.NewMerchantBuilder().
			WithAPIKey("mk_owner00000000000000000000000000000").
			WithWalletAddress("0xOWNER0000000000000000000000000000000001").
			BuildSnapshot()
		owned := builder.NewResourceBuilder().
			WithOwnerKey(owner.APIKey).
			WithPrice(500).
			BuildSnapshot()

		merchants.EXPECT().FindByAPIKey(gomock.Any(), payer.APIKey).Return(payer, nil)
		resources.EXPECT().FindByID(gomock.Any(), owned.ID).Return(owned, nil)
		merchants.EXPECT().FindByAPIKey(gomock.Any(), owner.APIKey).Return(owner, nil)
		sessions.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		result, err := uc.OpenSession(ctx, payer.APIKey, commands.OpenSessionRequest{
			ResourceID: owned.ID,
			UserWallet: "0xUSER00000000000000000000000000000000001",
		})
		require.NoError(t, err)
		assert.Equal(t, owner.WalletAddress, result.PayToWallet)
	})

	t.Run("empty owner key is a validation error", func(t *testing.T) {
		uc, _, _, _ := newSessionCommands(t)

		result, err := uc.OpenSession(ctx, "", req)
		require.Nil(t, result)
		require.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("unknown owner key maps to merchant not found", func(t *testing.T) {
		uc, merchants, _, _ := newSessionCommands(t)

		merchants.EXPECT().FindByAPIKey(gomock.Any(), testOwnerKey).
			Return(nil, infra.WrapRepoErr("merchant not found", nil, infra.KindNotFound))

		result, err := uc.OpenSession(ctx, testOwnerKey, req)
		require.Nil(t, result)
		require.ErrorIs(t, err, errs.ErrMerchantNotFound)
	})

	t.Run("missing resource opens no session", func(t *testing.T) {
		uc, merchants, resources, _ := newSessionCommands(t)

		merchants.EXPECT().FindByAPIKey(gomock.Any(), testOwnerKey).Return(merchantSnap, nil)
		resources.EXPECT().FindByID(gomock.Any(), resourceSnap.ID).
			Return(nil, infra.WrapRepoErr("resource not found", nil, infra.KindNotFound))

		// sessions.Create must never be called; the controller enforces it

		result, err := uc.OpenSession(ctx, testOwnerKey, req)
		require.Nil(t, result)
		require.ErrorIs(t, err, errs.ErrResourceNotFound)
	})

	t.Run("empty user wallet is a validation error", func(t *testing.T) {
		uc, merchants, resources, _ := newSessionCommands(t)

		merchants.EXPECT().FindByAPIKey(gomock.Any(), testOwnerKey).Return(merchantSnap, nil)
		resources.EXPECT().FindByID(gomock.Any(), resourceSnap.ID).Return(resourceSnap, nil)

		badReq := req
		badReq.UserWallet = ""

		result, err := uc.OpenSession(ctx, testOwnerKey, badReq)
		require.Nil(t, result)
		require.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("repeated opens create distinct sessions", func(t *testing.T) {
		uc, merchants, resources, sessions := newSessionCommands(t)

		merchants.EXPECT().FindByAPIKey(gomock.Any(), testOwnerKey).Return(merchantSnap, nil).Times(2)
		resources.EXPECT().FindByID(gomock.Any(), resourceSnap.ID).Return(resourceSnap, nil).Times(2)
		sessions.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(2)

		first, err := uc.OpenSession(ctx, testOwnerKey, req)
		require.NoError(t, err)
		second, err := uc.OpenSession(ctx, testOwnerKey, req)
		require.NoError(t, err)

		assert.NotEqual(t, first.SessionID, second.SessionID)
	})
}

func TestSessionCommands_MarkPaid(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the paid snapshot", func(t *testing.T) {
		uc, _, _, sessions := newSessionCommands(t)

		snap := builder.NewSessionBuilder().WithStatus("paid").BuildSnapshot()
		sessions.EXPECT().MarkPaid(gomock.Any(), snap.ID).Return(snap, nil)

		actual, err := uc.MarkPaid(ctx, snap.ID)
		require.NoError(t, err)
		assert.Equal(t, "paid", actual.Status)
		assert.Equal(t, snap.Amount, actual.Amount)
	})

	t.Run("second call returns the same snapshot unchanged", func(t *testing.T) {
		uc, _, _, sessions := newSessionCommands(t)

		snap := builder.NewSessionBuilder().WithStatus("paid").BuildSnapshot()
		sessions.EXPECT().MarkPaid(gomock.Any(), snap.ID).Return(snap, nil).Times(2)

		first, err := uc.MarkPaid(ctx, snap.ID)
		require.NoError(t, err)
		second, err := uc.MarkPaid(ctx, snap.ID)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("unknown session maps to session not found", func(t *testing.T) {
		uc, _, _, sessions := newSessionCommands(t)

		sessionID := uuid.New()
		sessions.EXPECT().MarkPaid(gomock.Any(), sessionID).
			Return(nil, infra.WrapRepoErr("session not found", nil, infra.KindNotFound))

		actual, err := uc.MarkPaid(ctx, sessionID)
		require.Nil(t, actual)
		require.ErrorIs(t, err, errs.ErrSessionNotFound)
	})
}
