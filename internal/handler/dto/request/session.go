package request

import (
	"paylane/internal/usecase/commands"

	"github.com/google/uuid"
)

type OpenSessionRequest struct {
	ResourceID uuid.UUID `json:"resource_id" binding:"required"`
	UserWallet string    `json:"user_wallet" binding:"required"`
}

func (r OpenSessionRequest) ToCommand() commands.OpenSessionRequest {
	return commands.OpenSessionRequest{
		ResourceID: r.ResourceID,
		UserWallet: r.UserWallet,
	}
}
