//go:build unit || e2e

package builder

import (
	"time"

	domresource "paylane/internal/domain/resource"
	reqdto "paylane/internal/handler/dto/request"
	"paylane/internal/usecase/commands"
	"paylane/internal/usecase/queries"
	"paylane/internal/usecase/shared"

	"github.com/google/uuid"
)

type ResourceBuilder struct {
	OwnerKey    string
	Name        string
	Description string
	Price       int64
	CreatedAt   time.Time
}

func NewResourceBuilder() *ResourceBuilder {
	return &ResourceBuilder{
		OwnerKey:    "mk_0123456789abcdef0123456789abcdef",
		Name:        "Premium API Access",
		Description: "Unlimited calls for one hour",
		Price:       500,
		CreatedAt:   time.Now(),
	}
}

func (r *ResourceBuilder) With(mutate func(*ResourceBuilder)) *ResourceBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *ResourceBuilder) BuildDomain() (*domresource.Resource, error) {
	return domresource.NewResource(r.OwnerKey, r.Name, r.Description, r.Price, r.CreatedAt)
}

func (r *ResourceBuilder) BuildCreateRequestDTO() reqdto.CreateResourceRequest {
	return reqdto.CreateResourceRequest{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
	}
}

func (r *ResourceBuilder) BuildCreateCommand() commands.CreateResourceRequest {
	return commands.CreateResourceRequest{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
	}
}

func (r *ResourceBuilder) BuildView() *queries.ResourceView {
	return &queries.ResourceView{
		ID:          uuid.New(),
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		CreatedAt:   r.CreatedAt,
	}
}

func (r *ResourceBuilder) BuildSnapshot() *shared.ResourceSnapshot {
	return &shared.ResourceSnapshot{
		ID:       uuid.New(),
		OwnerKey: r.OwnerKey,
		Name:     r.Name,
		Price:    r.Price,
	}
}

// Fluent builder methods
func (r *ResourceBuilder) WithOwnerKey(key string) *ResourceBuilder {
	r.OwnerKey = key
	return r
}

func (r *ResourceBuilder) WithName(name string) *ResourceBuilder {
	r.Name = name
	return r
}

func (r *ResourceBuilder) WithDescription(desc string) *ResourceBuilder {
	r.Description = desc
	return r
}

func (r *ResourceBuilder) WithPrice(price int64) *ResourceBuilder {
	r.Price = price
	return r
}
