package response

import (
	"paylane/internal/usecase/commands"
	"paylane/internal/usecase/queries"
	"paylane/internal/usecase/shared"
)

type OpenSessionResponse struct {
	SessionID   string `json:"session_id"`
	Amount      int64  `json:"amount"`
	PayToWallet string `json:"pay_to_wallet"`
	Status      string `json:"status"`
}

func FromOpenSessionResult(r *commands.OpenSessionResult) *OpenSessionResponse {
	return &OpenSessionResponse{
		SessionID:   r.SessionID.String(),
		Amount:      r.Amount,
		PayToWallet: r.PayToWallet,
		Status:      r.Status,
	}
}

type SessionResponse struct {
	SessionID  string `json:"session_id"`
	ResourceID string `json:"resource_id"`
	UserWallet string `json:"user_wallet"`
	Amount     int64  `json:"amount"`
	Status     string `json:"status"`
	CreatedAt  int64  `json:"created_at"`
}

func FromSessionSnapshot(s *shared.SessionSnapshot) *SessionResponse {
	return &SessionResponse{
		SessionID:  s.ID.String(),
		ResourceID: s.ResourceID.String(),
		UserWallet: s.UserWallet,
		Amount:     s.Amount,
		Status:     s.Status,
		CreatedAt:  s.CreatedAt.Unix(),
	}
}

func FromSessionList(items []*queries.SessionView) []*SessionResponse {
	res := make([]*SessionResponse, len(items))
	for i, it := range items {
		res[i] = &SessionResponse{
			SessionID:  it.ID.String(),
			ResourceID: it.ResourceID.String(),
			UserWallet: it.UserWallet,
			Amount:     it.Amount,
			Status:     it.Status,
			CreatedAt:  it.CreatedAt.Unix(),
		}
	}
	return res
}

type SessionStatusResponse struct {
	SessionID  string `json:"session_id"`
	ResourceID string `json:"resource_id"`
	UserWallet string `json:"user_wallet"`
	Amount     int64  `json:"amount"`
	Status     string `json:"status"`
}

func FromSessionStatusView(v *queries.SessionStatusView) *SessionStatusResponse {
	return &SessionStatusResponse{
		SessionID:  v.SessionID.String(),
		ResourceID: v.ResourceID.String(),
		UserWallet: v.UserWallet,
		Amount:     v.Amount,
		Status:     v.Status,
	}
}
