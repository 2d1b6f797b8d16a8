package repository

import (
	"context"
	"errors"

	"paylane/internal/domain/merchant"
	"paylane/internal/infra"
	"paylane/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
)

type MerchantRepository struct {
	pool *pgxpool.Pool
}

func NewMerchantRepository(pool *pgxpool.Pool) *MerchantRepository {
	return &MerchantRepository{pool: pool}
}

func (r *MerchantRepository) Create(ctx context.Context, m *merchant.Merchant) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO merchants (id, name, api_key, wallet_address, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		m.ID(), m.Name(), m.APIKey(), m.WalletAddress(), m.CreatedAt(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("merchant api key already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create merchant", err)
	}
	return nil
}

func (r *MerchantRepository) FindByAPIKey(ctx context.Context, apiKey string) (*shared.MerchantSnapshot, error) {
	var snap shared.MerchantSnapshot
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, api_key, wallet_address FROM merchants WHERE api_key = $1`,
		apiKey,
	).Scan(&snap.ID, &snap.Name, &snap.APIKey, &snap.WalletAddress)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("merchant not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find merchant by api key", err)
	}
	return &snap, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgErrCodeUniqueViolation
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgErrCodeForeignKeyViolation
}
