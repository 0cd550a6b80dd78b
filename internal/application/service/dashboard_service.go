package service

import (
	"context"
	"fmt"
	"time"

	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/domain/report"
	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/domain/repository"
)

const topSellingLimit = 5

// DashboardService provides the live dashboard widgets
type DashboardService struct {
	dashboardRepo repository.DashboardRepository
	loc           *time.Location
	now           func() time.Time
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(dashboardRepo repository.DashboardRepository, loc *time.Location) *DashboardService {
	return &DashboardService{
		dashboardRepo: dashboardRepo,
		loc:           loc,
		now:           time.Now,
	}
}

func (s *DashboardService) today() report.DateRange {
	today, _ := report.TodayAndYesterday(s.now(), s.loc)
	return today
}

// LiveSalesTrend returns today's sales per hour slot
func (s *DashboardService) LiveSalesTrend(ctx context.Context) ([]repository.SalesTrendPoint, error) {
	points, err := s.dashboardRepo.SalesTrend(ctx, s.today())
	if err != nil {
		return nil, fmt.Errorf("sales trend: %w", err)
	}
	return points, nil
}

// TopSellingItems returns today's five best selling items by quantity
func (s *DashboardService) TopSellingItems(ctx context.Context) ([]repository.TopSellingItem, error) {
	items, err := s.dashboardRepo.TopSellingItems(ctx, s.today(), topSellingLimit)
	if err != nil {
		return nil, fmt.Errorf("top selling items: %w", err)
	}
	return items, nil
}
