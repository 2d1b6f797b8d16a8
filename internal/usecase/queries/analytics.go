package queries

import (
	"context"

	"paylane/internal/domain/session"
)

type AnalyticsView struct {
	TotalSessions int   `json:"total_sessions"`
	PaidSessions  int   `json:"paid_sessions"`
	Revenue       int64 `json:"revenue"`
}

type AnalyticsQueries interface {
	// Recompute derives a point-in-time rollup from the full session ledger.
	// It is a stateless read: two calls with no intervening mutation return
	// identical output. Counts are ledger-wide; the owner key identifies the
	// calling merchant but does not scope the totals.
	Recompute(ctx context.Context, ownerKey string) (*AnalyticsView, error)
}

type analyticsQueriesImpl struct {
	sessions SessionReadStore
}

func NewAnalyticsQueries(sessions SessionReadStore) AnalyticsQueries {
	return &analyticsQueriesImpl{sessions: sessions}
}

func (q *analyticsQueriesImpl) Recompute(ctx context.Context, _ string) (*AnalyticsView, error) {
	rows, err := q.sessions.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	view := &AnalyticsView{TotalSessions: len(rows)}
	for _, sv := range rows {
		if sv.Status == string(session.StatusPaid) {
			view.PaidSessions++
			view.Revenue += sv.Amount
		}
	}
	return view, nil
}
