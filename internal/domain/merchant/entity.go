package merchant

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyMerchantName   = errors.New("merchant name cannot be empty")
	ErrEmptyAPIKey         = errors.New("api key cannot be empty")
	ErrEmptyWalletAddress  = errors.New("wallet address cannot be empty")
	ErrMerchantNameTooLong = errors.New("merchant name is too long (max 255 characters)")
)

const MaxMerchantNameLength = 255

type Merchant struct {
	id            uuid.UUID
	name          string
	apiKey        string
	walletAddress string
	createdAt     time.Time
}

func NewMerchant(name, apiKey, walletAddress string, now time.Time) (*Merchant, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyMerchantName
	}
	if len(name) > MaxMerchantNameLength {
		return nil, ErrMerchantNameTooLong
	}
	if apiKey == "" {
		return nil, ErrEmptyAPIKey
	}
	if strings.TrimSpace(walletAddress) == "" {
		return nil, ErrEmptyWalletAddress
	}

	return &Merchant{
		id:            uuid.New(),
		name:          name,
		apiKey:        apiKey,
		walletAddress: strings.TrimSpace(walletAddress),
		createdAt:     now,
	}, nil
}

func (m *Merchant) ID() uuid.UUID         { return m.id }
func (m *Merchant) Name() string          { return m.name }
func (m *Merchant) APIKey() string        { return m.apiKey }
func (m *Merchant) WalletAddress() string { return m.walletAddress }
func (m *Merchant) CreatedAt() time.Time  { return m.createdAt }
