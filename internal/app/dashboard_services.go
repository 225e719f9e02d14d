package app

import (
	"context"

	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/applications"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/dashboard"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/payments"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/users"
)

// dashboardService implements dashboard.Service
type dashboardService struct {
	users        users.Repository
	applications applications.Repository
	recharges    payments.RechargeRepository
}

// NewDashboardService creates a new instance of dashboard.Service
func NewDashboardService(u users.Repository, a applications.Repository, r payments.RechargeRepository) (dashboard.Service, error) {
	return &dashboardService{users: u, applications: a, recharges: r}, nil
}

func (s *dashboardService) Summary(ctx context.Context) (*dashboard.Summary, error) {
	byRole, err := s.users.CountByRole(ctx)
	if err != nil {
		return nil, err
	}
	byStatus, err := s.applications.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	recharges, err := s.recharges.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	approved, err := s.recharges.SumApproved(ctx)
	if err != nil {
		return nil, err
	}

	summary := &dashboard.Summary{
		UsersByRole:           make(map[string]int64, len(byRole)),
		ApplicationsByStatus:  make(map[string]int64, len(byStatus)),
		PendingRecharges:      recharges[payments.RechargePending],
		ApprovedRechargeTotal: approved,
	}
	for role, n := range byRole {
		summary.UsersByRole[string(role)] = n
	}
	for status, n := range byStatus {
		summary.ApplicationsByStatus[string(status)] = n
	}
	return summary, nil
}
