//go:build e2e

package repository_test

import (
	"context"
	"testing"

	"paylane/internal/infra"
	"paylane/internal/infra/readstore"
	"paylane/internal/infra/repository"
	"paylane/tests/common/builder"
	"paylane/tests/common/dbtest"
	"paylane/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	ownerAKey    = "mk_ownera0000000000000000000000000000"
	ownerBKey    = "mk_ownerb0000000000000000000000000000"
	ownerAWallet = "0xMERCHANTA00000000000000000000000000001"
	ownerBWallet = "0xMERCHANTB00000000000000000000000000001"
	payerWallet  = "0xUSER00000000000000000000000000000000001"
)

type RepositorySuite struct {
	e2e.SharedSuite

	merchants *repository.MerchantRepository
	resources *repository.ResourceRepository
	sessions  *repository.SessionRepository

	resourceReads *readstore.ResourceReadStore
	sessionReads  *readstore.SessionReadStore
}

func TestRepositorySuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(RepositorySuite))
}

func (s *RepositorySuite) SetupSuite() {
	s.SetupSharedSuite(s.T())

	s.merchants = repository.NewMerchantRepository(s.DB)
	s.resources = repository.NewResourceRepository(s.DB)
	s.sessions = repository.NewSessionRepository(s.DB)
	s.resourceReads = readstore.NewResourceReadStore(s.DB)
	s.sessionReads = readstore.NewSessionReadStore(s.DB)
}

// =============================================================================
// Merchant Repository
// =============================================================================

func (s *RepositorySuite) TestMerchantRepository() {
	ctx := context.Background()

	s.Run("FindByAPIKey: 登録済みマーチャントのスナップショットを返す", func() {
		t := s.T()
		dbtest.CreateTestMerchant(t, s.DB, "Merchant A", ownerAKey, ownerAWallet)

		snap, err := s.merchants.FindByAPIKey(ctx, ownerAKey)
		require.NoError(t, err)
		require.Equal(t, ownerAKey, snap.APIKey)
		require.Equal(t, ownerAWallet, snap.WalletAddress)
	})

	s.Run("FindByAPIKey: 未知のキーは KindNotFound", func() {
		t := s.T()

		_, err := s.merchants.FindByAPIKey(ctx, "mk_unknown000000000000000000000000000")
		require.Error(t, err)
		require.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	s.Run("Create: api_key 重複は KindDuplicateKey", func() {
		t := s.T()
		dbtest.CreateTestMerchant(t, s.DB, "Merchant A", ownerAKey, ownerAWallet)

		dup, err := builder.NewMerchantBuilder().WithAPIKey(ownerAKey).BuildDomain()
		require.NoError(t, err)

		err = s.merchants.Create(ctx, dup)
		require.Error(t, err)
		require.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	})
}

// =============================================================================
// Resource Repository / Read Store
// =============================================================================

func (s *RepositorySuite) TestResourceRepository() {
	ctx := context.Background()

	s.Run("FindByID: owner_key と価格をスナップショットで返す", func() {
		t := s.T()
		dbtest.CreateTestMerchant(t, s.DB, "Merchant A", ownerAKey, ownerAWallet)
		resourceID := dbtest.CreateTestResource(t, s.DB, ownerAKey, "Premium API Access", 500)

		snap, err := s.resources.FindByID(ctx, resourceID)
		require.NoError(t, err)
		require.Equal(t, ownerAKey, snap.OwnerKey)
		require.Equal(t, int64(500), snap.Price)
	})

	s.Run("FindByID: 未知の ID は KindNotFound", func() {
		t := s.T()

		_, err := s.resources.FindByID(ctx, uuid.New())
		require.Error(t, err)
		require.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	s.Run("Create: 同一オーナーの名前重複は KindDuplicateKey", func() {
		t := s.T()
		dbtest.CreateTestMerchant(t, s.DB, "Merchant A", ownerAKey, ownerAWallet)
		dbtest.CreateTestResource(t, s.DB, ownerAKey, "Premium API Access", 500)

		dup, err := builder.NewResourceBuilder().
			WithOwnerKey(ownerAKey).
			WithName("Premium API Access").
			BuildDomain()
		require.NoError(t, err)

		err = s.resources.Create(ctx, dup)
		require.Error(t, err)
		require.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	})

	s.Run("FindByOwner: 登録順で返り、他オーナーのリソースを含まない", func() {
		t := s.T()
		dbtest.CreateTestMerchant(t, s.DB, "Merchant A", ownerAKey, ownerAWallet)
		dbtest.CreateTestMerchant(t, s.DB, "Merchant B", ownerBKey, ownerBWallet)

		dbtest.CreateTestResource(t, s.DB, ownerAKey, "Alpha", 100)
		dbtest.CreateTestResource(t, s.DB, ownerBKey, "Intruder", 999)
		dbtest.CreateTestResource(t, s.DB, ownerAKey, "Bravo", 200)
		dbtest.CreateTestResource(t, s.DB, ownerAKey, "Charlie", 300)

		views, err := s.resourceReads.FindByOwner(ctx, ownerAKey)
		require.NoError(t, err)
		require.Len(t, views, 3)

		names := []string{views[0].Name, views[1].Name, views[2].Name}
		require.Equal(t, []string{"Alpha", "Bravo", "Charlie"}, names)
	})

	s.Run("FindByOwner: 未知のキーは空スライス", func() {
		t := s.T()

		views, err := s.resourceReads.FindByOwner(ctx, "mk_unknown000000000000000000000000000")
		require.NoError(t, err)
		require.NotNil(t, views)
		require.Empty(t, views)
	})
}

// =============================================================================
// Session Repository / Read Store
// =============================================================================

func (s *RepositorySuite) TestSessionRepository() {
	ctx := context.Background()

	s.Run("Create: 存在しないリソース参照は KindForeignKeyViolated", func() {
		t := s.T()

		orphan, err := builder.NewSessionBuilder().WithResourceID(uuid.New()).BuildDomain()
		require.NoError(t, err)

		err = s.sessions.Create(ctx, orphan)
		require.Error(t, err)
		require.True(t, infra.IsKind(err, infra.KindForeignKeyViolated))
	})

	s.Run("MarkPaid: pending を paid に遷移し、二度目も同じ行を返す", func() {
		t := s.T()
		dbtest.CreateTestMerchant(t, s.DB, "Merchant A", ownerAKey, ownerAWallet)
		resourceID := dbtest.CreateTestResource(t, s.DB, ownerAKey, "Premium API Access", 500)
		sessionID := dbtest.CreateTestSession(t, s.DB, resourceID, payerWallet, 500, "pending")

		first, err := s.sessions.MarkPaid(ctx, sessionID)
		require.NoError(t, err)
		require.Equal(t, "paid", first.Status)
		require.Equal(t, int64(500), first.Amount)

		second, err := s.sessions.MarkPaid(ctx, sessionID)
		require.NoError(t, err)
		require.Equal(t, first, second)
	})

	s.Run("MarkPaid: 未知のセッションは KindNotFound", func() {
		t := s.T()

		_, err := s.sessions.MarkPaid(ctx, uuid.New())
		require.Error(t, err)
		require.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	s.Run("FindByID: 保存したセッションを射影する", func() {
		t := s.T()
		dbtest.CreateTestMerchant(t, s.DB, "Merchant A", ownerAKey, ownerAWallet)
		resourceID := dbtest.CreateTestResource(t, s.DB, ownerAKey, "Premium API Access", 500)
		sessionID := dbtest.CreateTestSession(t, s.DB, resourceID, payerWallet, 500, "pending")

		view, err := s.sessionReads.FindByID(ctx, sessionID)
		require.NoError(t, err)
		require.Equal(t, sessionID, view.ID)
		require.Equal(t, resourceID, view.ResourceID)
		require.Equal(t, payerWallet, view.UserWallet)
		require.Equal(t, "pending", view.Status)
	})
}
