package resource

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyOwnerKey       = errors.New("owner key cannot be empty")
	ErrEmptyResourceName   = errors.New("resource name cannot be empty")
	ErrNonPositivePrice    = errors.New("price must be greater than zero")
	ErrResourceNameTooLong = errors.New("resource name is too long (max 255 characters)")
)

const (
	MaxResourceNameLength = 255
)

// Resource is a monetizable unit of API access with a fixed price,
// expressed in the smallest currency unit. Immutable once created.
type Resource struct {
	id          uuid.UUID
	ownerKey    string
	name        string
	description string
	price       int64
	createdAt   time.Time
}

func NewResource(ownerKey, name, description string, price int64, now time.Time) (*Resource, error) {
	if strings.TrimSpace(ownerKey) == "" {
		return nil, ErrEmptyOwnerKey
	}

	if err := validateResourceName(name); err != nil {
		return nil, err
	}

	if price <= 0 {
		return nil, ErrNonPositivePrice
	}

	return &Resource{
		id:          uuid.New(),
		ownerKey:    strings.TrimSpace(ownerKey),
		name:        strings.TrimSpace(name),
		description: description,
		price:       price,
		createdAt:   now,
	}, nil
}

func validateResourceName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyResourceName
	}
	if len(name) > MaxResourceNameLength {
		return ErrResourceNameTooLong
	}
	return nil
}

func (r *Resource) ID() uuid.UUID        { return r.id }
func (r *Resource) OwnerKey() string     { return r.ownerKey }
func (r *Resource) Name() string         { return r.name }
func (r *Resource) Description() string  { return r.description }
func (r *Resource) Price() int64         { return r.price }
func (r *Resource) CreatedAt() time.Time { return r.createdAt }
