package repository

import (
	"context"

	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/domain/report"
	domainRepo "github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/domain/repository"
	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/infrastructure/database"
)

type dashboardRepository struct {
	q  *database.Querier
	tz string
}

// NewDashboardRepository creates a new dashboard repository
func NewDashboardRepository(q *database.Querier, tz string) domainRepo.DashboardRepository {
	return &dashboardRepository{q: q, tz: tz}
}

// salesTrendSQL joins line quantities pre-summed per invoice; grand_total counts
// once per header
const salesTrendSQL = `
	SELECT
		to_char(date_trunc('hour', h.created_date_time AT TIME ZONE ?), 'YYYY-MM-DD HH24:00') AS hour_slot,
		COALESCE(SUM(h.grand_total), 0) AS total_amount,
		COALESCE(SUM(q.qty), 0) AS total_items
	FROM invoice_headers h
	LEFT JOIN (
		SELECT invoice_id, SUM(quantity) AS qty
		FROM invoice_lines
		GROUP BY invoice_id
	) q ON q.invoice_id = h.invoice_id
	WHERE h.is_voided = false
		AND h.created_date_time >= ? AND h.created_date_time < ?
	GROUP BY 1
	ORDER BY 1
`

func (r *dashboardRepository) SalesTrend(ctx context.Context, rng report.DateRange) ([]domainRepo.SalesTrendPoint, error) {
	results := make([]domainRepo.SalesTrendPoint, 0)
	err := r.q.Query(ctx, &results, salesTrendSQL, r.tz, rng.From, rng.To)
	return results, err
}

func (r *dashboardRepository) TopSellingItems(ctx context.Context, rng report.DateRange, limit int) ([]domainRepo.TopSellingItem, error) {
	results := make([]domainRepo.TopSellingItem, 0)
	err := r.q.Query(ctx, &results, `
		SELECT l.item_id, l.item_name, SUM(l.quantity) AS total_qty
		FROM invoice_lines l
		JOIN invoice_headers h ON h.invoice_id = l.invoice_id
		WHERE h.is_voided = false
			AND h.created_date_time >= ? AND h.created_date_time < ?
		GROUP BY l.item_id, l.item_name
		ORDER BY total_qty DESC, l.item_name ASC
		LIMIT ?
	`, rng.From, rng.To, limit)
	return results, err
}
