package response

import (
	"paylane/internal/usecase/queries"
)

type AnalyticsResponse struct {
	TotalSessions int   `json:"total_sessions"`
	PaidSessions  int   `json:"paid_sessions"`
	Revenue       int64 `json:"revenue"`
}

func FromAnalyticsView(v *queries.AnalyticsView) *AnalyticsResponse {
	return &AnalyticsResponse{
		TotalSessions: v.TotalSessions,
		PaidSessions:  v.PaidSessions,
		Revenue:       v.Revenue,
	}
}
