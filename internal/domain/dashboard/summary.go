// Package dashboard aggregates the counters shown on the admin home page.
package dashboard

import "context"

// Summary is a point-in-time snapshot of the business.
type Summary struct {
	UsersByRole           map[string]int64 `json:"users_by_role"`
	ApplicationsByStatus  map[string]int64 `json:"applications_by_status"`
	PendingRecharges      int64            `json:"pending_recharges"`
	ApprovedRechargeTotal float64          `json:"approved_recharge_total"`
}

// Service builds the dashboard summary.
type Service interface {
	Summary(ctx context.Context) (*Summary, error)
}
