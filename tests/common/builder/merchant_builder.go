//go:build unit || e2e

package builder

import (
	"time"

	dommerchant "paylane/internal/domain/merchant"
	reqdto "paylane/internal/handler/dto/request"
	"paylane/internal/usecase/commands"
	"paylane/internal/usecase/shared"

	"github.com/google/uuid"
)

type MerchantBuilder struct {
	Name          string
	APIKey        string
	WalletAddress string
	CreatedAt     time.Time
}

func NewMerchantBuilder() *MerchantBuilder {
	return &MerchantBuilder{
		Name:          "Test Merchant",
		APIKey:        "mk_0123456789abcdef0123456789abcdef",
		WalletAddress: "0xMERCHANT000000000000000000000000000001",
		CreatedAt:     time.Now(),
	}
}

func (m *MerchantBuilder) With(mutate func(*MerchantBuilder)) *MerchantBuilder {
	mutate(m)
	return m
}

// Build methods
func (m *MerchantBuilder) BuildDomain() (*dommerchant.Merchant, error) {
	return dommerchant.NewMerchant(m.Name, m.APIKey, m.WalletAddress, m.CreatedAt)
}

func (m *MerchantBuilder) BuildRegisterRequestDTO() reqdto.RegisterMerchantRequest {
	return reqdto.RegisterMerchantRequest{
		Name:          m.Name,
		WalletAddress: m.WalletAddress,
	}
}

func (m *MerchantBuilder) BuildRegisterCommand() commands.RegisterMerchantRequest {
	return commands.RegisterMerchantRequest{
		Name:          m.Name,
		WalletAddress: m.WalletAddress,
	}
}

func (m *MerchantBuilder) BuildSnapshot() *shared.MerchantSnapshot {
	return &shared.MerchantSnapshot{
		ID:            uuid.New(),
		Name:          m.Name,
		APIKey:        m.APIKey,
		WalletAddress: m.WalletAddress,
	}
}

// Fluent builder methods
func (m *MerchantBuilder) WithName(name string) *MerchantBuilder {
	m.Name = name
	return m
}

func (m *MerchantBuilder) WithAPIKey(key string) *MerchantBuilder {
	m.APIKey = key
	return m
}

func (m *MerchantBuilder) WithWalletAddress(addr string) *MerchantBuilder {
	m.WalletAddress = addr
	return m
}
