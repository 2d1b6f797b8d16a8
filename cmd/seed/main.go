// seed creates a demo merchant for local testing and prints its API key.
// Idempotent: does nothing when a merchant already exists.
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"paylane/internal/domain/merchant"
	infradb "paylane/internal/infra/db"
	"paylane/internal/infra/repository"
	"paylane/internal/pkg/apikey"
	"paylane/internal/pkg/config"
)

const (
	demoMerchantName  = "Demo Merchant"
	demoWalletAddress = "DEMO_WALLET"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	pool, cleanup, err := infradb.Connect(cfg.DB)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var count int
	if err := pool.QueryRow(ctx, "SELECT count(*) FROM merchants").Scan(&count); err != nil {
		log.Fatalf("seed: %v", err)
	}
	if count > 0 {
		fmt.Println("merchants already seeded, nothing to do")
		return
	}

	key, err := apikey.Generate()
	if err != nil {
		log.Fatalf("seed: %v", err)
	}

	m, err := merchant.NewMerchant(demoMerchantName, key, demoWalletAddress, time.Now())
	if err != nil {
		log.Fatalf("seed: %v", err)
	}

	if err := repository.NewMerchantRepository(pool).Create(ctx, m); err != nil {
		log.Fatalf("seed: %v", err)
	}

	fmt.Println("✅ demo merchant created")
	fmt.Println("🔑 API KEY:", m.APIKey())
}
