package request

type RegisterMerchantRequest struct {
	Name          string `json:"name" binding:"required,max=255"`
	WalletAddress string `json:"wallet_address" binding:"required"`
}
