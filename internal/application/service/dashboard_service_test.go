package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/domain/report"
	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/domain/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDashboardRepo struct {
	trend []repository.SalesTrendPoint
	top   []repository.TopSellingItem
	rng   report.DateRange
	limit int
	err   error
}

func (f *fakeDashboardRepo) SalesTrend(_ context.Context, r report.DateRange) ([]repository.SalesTrendPoint, error) {
	f.rng = r
	return f.trend, f.err
}

func (f *fakeDashboardRepo) TopSellingItems(_ context.Context, r report.DateRange, limit int) ([]repository.TopSellingItem, error) {
	f.rng, f.limit = r, limit
	return f.top, f.err
}

func newTestDashboardService(repo *fakeDashboardRepo, loc *time.Location) *DashboardService {
	s := NewDashboardService(repo, loc)
	s.now = fixedClock
	return s
}

func TestDashboardService_LiveSalesTrendCoversToday(t *testing.T) {
	repo := &fakeDashboardRepo{trend: []repository.SalesTrendPoint{
		{HourSlot: "2024-03-15 09:00", TotalAmount: decimal.RequireFromString("42.50"), TotalItems: 3},
	}}
	s := newTestDashboardService(repo, time.UTC)

	points, err := s.LiveSalesTrend(context.Background())
	require.NoError(t, err)
	assert.Equal(t, repo.trend, points)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), repo.rng.From)
	assert.Equal(t, time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC), repo.rng.To)
}

func TestDashboardService_TodayFollowsReportZone(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*60*60)
	repo := &fakeDashboardRepo{}
	s := newTestDashboardService(repo, loc)

	_, err := s.LiveSalesTrend(context.Background())
	require.NoError(t, err)
	assert.True(t, repo.rng.From.Equal(time.Date(2024, 3, 15, 0, 0, 0, 0, loc)))
	assert.True(t, repo.rng.To.Equal(time.Date(2024, 3, 16, 0, 0, 0, 0, loc)))
}

func TestDashboardService_TopSellingItemsAsksForFive(t *testing.T) {
	repo := &fakeDashboardRepo{top: []repository.TopSellingItem{{ItemID: 7, ItemName: "Cola", TotalQty: 12}}}
	s := newTestDashboardService(repo, time.UTC)

	items, err := s.TopSellingItems(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Cola", items[0].ItemName)
	assert.Equal(t, 5, repo.limit)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), repo.rng.From)
}

func TestDashboardService_WrapsRepositoryErrors(t *testing.T) {
	cause := errors.New("connection reset")
	s := newTestDashboardService(&fakeDashboardRepo{err: cause}, time.UTC)

	_, err := s.LiveSalesTrend(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "sales trend")

	_, err = s.TopSellingItems(context.Background())
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "top selling items")
}
