//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestMerchant(t *testing.T, db DBLike, name, apiKey, walletAddress string) uuid.UUID {
	t.Helper()

	merchantID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO merchants (id, name, api_key, wallet_address) VALUES ($1, $2, $3, $4) ON CONFLICT (api_key) DO NOTHING",
		merchantID, name, apiKey, walletAddress)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM merchants WHERE api_key = $1", apiKey).Scan(&merchantID)
	}

	return merchantID
}

func CreateTestResource(t *testing.T, db DBLike, ownerKey, name string, price int64) uuid.UUID {
	t.Helper()

	resourceID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO resources (id, owner_key, name, description, price) VALUES ($1, $2, $3, '', $4) ON CONFLICT (owner_key, name) DO NOTHING",
		resourceID, ownerKey, name, price)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM resources WHERE owner_key = $1 AND name = $2", ownerKey, name).Scan(&resourceID)
	}

	return resourceID
}

func CreateTestSession(t *testing.T, db DBLike, resourceID uuid.UUID, userWallet string, amount int64, status string) uuid.UUID {
	t.Helper()

	sessionID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, "INSERT INTO sessions (id, resource_id, user_wallet, amount, status) VALUES ($1, $2, $3, $4, $5)",
		sessionID, resourceID, userWallet, amount, status)
	require.NoError(t, err)

	return sessionID
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables between subtests
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return nil
}
