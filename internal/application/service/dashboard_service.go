package service

import (
	"context"
	"time"

	"github.com/stockify/stockify-api/internal/domain/repository"
	"github.com/stockify/stockify-api/internal/report"
)

// DashboardService builds the landing-page summary
type DashboardService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(orderRepo repository.OrderRepository, productRepo repository.ProductRepository) *DashboardService {
	return &DashboardService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
	}
}

// GetStats aggregates today/week/month revenue, due totals and stock
// alerts for the current branch. All orders are loaded so the due total
// covers invoices older than the revenue windows.
func (s *DashboardService) GetStats(ctx context.Context) (*report.DashboardStats, error) {
	orders, err := s.orderRepo.ListInRange(ctx, nil, nil)
	if err != nil {
		return nil, err
	}

	products, err := s.productRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	return report.AggregateDashboard(orders, products, time.Now()), nil
}
