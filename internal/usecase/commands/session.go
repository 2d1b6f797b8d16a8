package commands

import (
	"context"

	domsession "paylane/internal/domain/session"
	"paylane/internal/infra"
	"paylane/internal/pkg/clock"
	"paylane/internal/pkg/errs"
	"paylane/internal/usecase/shared"

	"github.com/google/uuid"
)

type OpenSessionRequest struct {
	ResourceID uuid.UUID
	UserWallet string
}

type OpenSessionResult struct {
	SessionID   uuid.UUID
	Amount      int64
	PayToWallet string
	Status      string
}

type SessionCommands interface {
	// OpenSession creates a fresh pending session against the resource,
	// snapshotting its price. Repeated calls for the same resource/wallet
	// pair open distinct sessions; deduplication is the caller's concern.
	OpenSession(ctx context.Context, ownerKey string, req OpenSessionRequest) (*OpenSessionResult, error)
	// MarkPaid is idempotent: a second invocation returns the already paid
	// session unchanged.
	MarkPaid(ctx context.Context, sessionID uuid.UUID) (*shared.SessionSnapshot, error)
}

type sessionUseCaseImpl struct {
	merchants MerchantRepository
	resources ResourceRepository
	sessions  SessionRepository
	clock     clock.Clock
}

func NewSessionCommands(merchants MerchantRepository, resources ResourceRepository, sessions SessionRepository, clk clock.Clock) SessionCommands {
	return &sessionUseCaseImpl{merchants: merchants, resources: resources, sessions: sessions, clock: clk}
}

func (uc *sessionUseCaseImpl) OpenSession(ctx context.Context, ownerKey string, req OpenSessionRequest) (*OpenSessionResult, error) {
	if ownerKey == "" {
		return nil, errs.Mark(errs.New("owner key cannot be empty"), errs.ErrValidation)
	}

	m, err := uc.merchants.FindByAPIKey(ctx, ownerKey)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrMerchantNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	// Resource lookup is by id alone: the payer does not present the owning
	// merchant's key, so any listed resource is payable (marketplace model).
	res, err := uc.resources.FindByID(ctx, req.ResourceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrResourceNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	// Payment routes to the resource's owner, who is not necessarily the
	// merchant presenting the key.
	payee := m
	if res.OwnerKey != m.APIKey {
		payee, err = uc.merchants.FindByAPIKey(ctx, res.OwnerKey)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}

	sess, err := domsession.NewSession(res.ID, req.UserWallet, res.Price, uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	if err := uc.sessions.Create(ctx, sess); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return &OpenSessionResult{
		SessionID:   sess.ID(),
		Amount:      sess.Amount(),
		PayToWallet: payee.WalletAddress,
		Status:      string(sess.Status()),
	}, nil
}

func (uc *sessionUseCaseImpl) MarkPaid(ctx context.Context, sessionID uuid.UUID) (*shared.SessionSnapshot, error) {
	snap, err := uc.sessions.MarkPaid(ctx, sessionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrSessionNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return snap, nil
}
