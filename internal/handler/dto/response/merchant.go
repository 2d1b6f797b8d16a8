package response

import (
	"paylane/internal/usecase/commands"
)

type MerchantResponse struct {
	ID            string `json:"id"`
	APIKey        string `json:"api_key"`
	WalletAddress string `json:"wallet_address"`
}

func FromMerchantResult(r *commands.RegisterMerchantResult) *MerchantResponse {
	return &MerchantResponse{
		ID:            r.MerchantID.String(),
		APIKey:        r.APIKey,
		WalletAddress: r.WalletAddress,
	}
}
