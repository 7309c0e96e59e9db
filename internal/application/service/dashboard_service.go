package service

import (
	"context"

	"github.com/kiranps/tradebooks-api/internal/domain/repository"
)

// DashboardStats aggregates the figures shown on the dashboard
type DashboardStats struct {
	MonthlyPurchases   float64                        `json:"monthly_purchases"`
	MonthlyExpenses    float64                        `json:"monthly_expenses"`
	OutstandingPayable float64                        `json:"outstanding_payable"`
	TopSuppliers       []repository.TopSupplierResult `json:"top_suppliers"`
	TopItems           []repository.TopItemResult     `json:"top_items"`
	DailySpend         []repository.DailySpendResult  `json:"daily_spend"`
}

// DashboardService handles dashboard statistics
type DashboardService struct {
	dashboardRepo repository.DashboardRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(dashboardRepo repository.DashboardRepository) *DashboardService {
	return &DashboardService{dashboardRepo: dashboardRepo}
}

// GetStats returns the aggregated dashboard statistics
func (s *DashboardService) GetStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}

	var err error
	if stats.MonthlyPurchases, err = s.dashboardRepo.GetMonthlyPurchases(ctx); err != nil {
		return nil, err
	}
	if stats.MonthlyExpenses, err = s.dashboardRepo.GetMonthlyExpenses(ctx); err != nil {
		return nil, err
	}
	if stats.OutstandingPayable, err = s.dashboardRepo.GetOutstandingPayable(ctx); err != nil {
		return nil, err
	}
	if stats.TopSuppliers, err = s.dashboardRepo.GetTopSuppliers(ctx, 5); err != nil {
		return nil, err
	}
	if stats.TopItems, err = s.dashboardRepo.GetTopItems(ctx, 5); err != nil {
		return nil, err
	}
	if stats.DailySpend, err = s.dashboardRepo.GetDailySpend(ctx, 30); err != nil {
		return nil, err
	}

	return stats, nil
}
