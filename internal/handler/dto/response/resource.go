package response

import (
	"paylane/internal/usecase/queries"
)

type ResourceResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	CreatedAt   int64  `json:"created_at"`
}

func FromResourceView(v *queries.ResourceView) *ResourceResponse {
	return &ResourceResponse{
		ID:          v.ID.String(),
		Name:        v.Name,
		Description: v.Description,
		Price:       v.Price,
		CreatedAt:   v.CreatedAt.Unix(),
	}
}

func FromResourceList(items []*queries.ResourceView) []*ResourceResponse {
	res := make([]*ResourceResponse, len(items))
	for i, it := range items {
		res[i] = FromResourceView(it)
	}
	return res
}
