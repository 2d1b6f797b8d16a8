package request

import (
	"paylane/internal/usecase/commands"
)

type CreateResourceRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	Description string `json:"description"`
	Price       int64  `json:"price" binding:"required,gt=0"`
}

func (r CreateResourceRequest) ToCommand() commands.CreateResourceRequest {
	return commands.CreateResourceRequest{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
	}
}
