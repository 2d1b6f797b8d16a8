package shared

import (
	"time"

	"github.com/google/uuid"
)

// Minimal snapshots returned by write-side repositories.

type MerchantSnapshot struct {
	ID            uuid.UUID
	Name          string
	APIKey        string
	WalletAddress string
}

type ResourceSnapshot struct {
	ID       uuid.UUID
	OwnerKey string
	Name     string
	Price    int64
}

type SessionSnapshot struct {
	ID         uuid.UUID
	ResourceID uuid.UUID
	UserWallet string
	Amount     int64
	Status     string
	CreatedAt  time.Time
}
