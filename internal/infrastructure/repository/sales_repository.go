package repository

import (
	"context"
	"errors"

	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/domain/entity"
	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/domain/report"
	domainRepo "github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/domain/repository"
	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/infrastructure/database"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const invoiceColumns = `
	h.invoice_id, h.invoice_code, h.created_date_time, h.is_voided, h.voided_by, h.voided_on,
	h.payment_type, h.sub_total, h.total_tax, h.grand_total, h.coins_discount, h.change_amount,
	h.user_name`

type salesRepository struct {
	q *database.Querier
	// tz is the IANA zone used to cut calendar dates and hours
	tz string
}

// NewSalesRepository creates a new sales reporting repository
func NewSalesRepository(q *database.Querier, tz string) domainRepo.SalesRepository {
	return &salesRepository{q: q, tz: tz}
}

func (r *salesRepository) SalesTotal(ctx context.Context, rng report.DateRange) (decimal.Decimal, error) {
	var row struct {
		Total decimal.Decimal `gorm:"column:total"`
	}
	err := r.q.Query(ctx, &row, `
		SELECT COALESCE(SUM(grand_total), 0) AS total
		FROM invoice_headers
		WHERE is_voided = false
			AND created_date_time >= ? AND created_date_time < ?
	`, rng.From, rng.To)
	if err != nil {
		return decimal.Zero, err
	}
	return row.Total, nil
}

// lineQty totals an invoice's quantity from its lines; invoice_headers keeps no item count
const lineQty = `(SELECT COALESCE(SUM(x.quantity), 0) FROM invoice_lines x WHERE x.invoice_id = h.invoice_id)`

// historyQuery builds the header-with-lines listing. Filters select whole
// invoices so a matched invoice always comes back with every line.
func historyQuery(filter domainRepo.SalesHistoryFilter) (string, []interface{}) {
	var c conditions
	c.between("h.created_date_time", filter.Range)
	if filter.PaymentType != "" {
		c.add("h.payment_type = ?", filter.PaymentType)
	}
	if filter.InvoiceCode != "" {
		c.add("h.invoice_code = ?", filter.InvoiceCode)
	}
	if filter.Search != "" {
		p := likePattern(filter.Search)
		c.add(`(h.invoice_code ILIKE ? OR h.user_name ILIKE ?
			OR EXISTS (SELECT 1 FROM invoice_lines x WHERE x.invoice_id = h.invoice_id AND x.item_name ILIKE ?))`, p, p, p)
	}

	return `
		SELECT ` + invoiceColumns + `, ` + lineQty + ` AS total_qty,
			l.line_id, l.item_id, l.item_name, l.price, l.quantity, l.discount, l.tax, l.total
		FROM invoice_headers h
		LEFT JOIN invoice_lines l ON l.invoice_id = h.invoice_id` + c.where() + `
		ORDER BY h.created_date_time DESC, h.invoice_id DESC, l.line_id
	`, c.args
}

func (r *salesRepository) History(ctx context.Context, filter domainRepo.SalesHistoryFilter) ([]report.InvoiceRow, error) {
	query, args := historyQuery(filter)
	rows := make([]report.InvoiceRow, 0)
	err := r.q.Query(ctx, &rows, query, args...)
	return rows, err
}

func (r *salesRepository) ReportRows(ctx context.Context, rng report.DateRange) ([]report.InvoiceRow, error) {
	rows := make([]report.InvoiceRow, 0)
	err := r.q.Query(ctx, &rows, `
		SELECT `+invoiceColumns+`,
			COALESCE(SUM(l.quantity), 0) AS total_qty
		FROM invoice_headers h
		LEFT JOIN invoice_lines l ON l.invoice_id = h.invoice_id
		WHERE h.created_date_time >= ? AND h.created_date_time < ?
		GROUP BY h.invoice_id
		ORDER BY h.created_date_time DESC
	`, rng.From, rng.To)
	return rows, err
}

func (r *salesRepository) ActiveSalesTax(ctx context.Context) (decimal.Decimal, error) {
	company, err := r.Company(ctx)
	if err != nil || company == nil {
		return decimal.Zero, err
	}
	return company.SalesTax, nil
}

func (r *salesRepository) Company(ctx context.Context) (*entity.Company, error) {
	var company entity.Company
	err := r.q.DB().WithContext(ctx).Order("id").First(&company).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &company, err
}

func (r *salesRepository) FlashMetrics(ctx context.Context, rng report.DateRange) (report.FlashMetricsRow, error) {
	var row report.FlashMetricsRow
	err := r.q.Query(ctx, &row, `
		SELECT
			SUM(grand_total) AS gross_sales,
			SUM(total_tax) AS total_tax,
			COUNT(DISTINCT invoice_id) AS transactions
		FROM invoice_headers
		WHERE is_voided = false
			AND created_date_time >= ? AND created_date_time < ?
	`, rng.From, rng.To)
	return row, err
}

func (r *salesRepository) PaymentTotals(ctx context.Context, rng report.DateRange) ([]report.PaymentRow, error) {
	rows := make([]report.PaymentRow, 0)
	err := r.q.Query(ctx, &rows, `
		SELECT payment_type, SUM(grand_total) AS total
		FROM invoice_headers
		WHERE is_voided = false
			AND created_date_time >= ? AND created_date_time < ?
		GROUP BY payment_type
		ORDER BY total DESC
	`, rng.From, rng.To)
	return rows, err
}

func (r *salesRepository) TaxSplit(ctx context.Context, rng report.DateRange) (report.TaxSplitRow, error) {
	var row report.TaxSplitRow
	err := r.q.Query(ctx, &row, `
		SELECT
			SUM(CASE WHEN i.taxable THEN l.total + l.tax ELSE 0 END) AS taxable_sales,
			SUM(CASE WHEN NOT i.taxable THEN l.total ELSE 0 END) AS non_taxable_sales
		FROM invoice_lines l
		JOIN invoice_headers h ON h.invoice_id = l.invoice_id
		JOIN items i ON i.item_id = l.item_id
		WHERE h.is_voided = false
			AND h.created_date_time >= ? AND h.created_date_time < ?
	`, rng.From, rng.To)
	return row, err
}

// hourlySummarySQL sums line quantities and line totals per local hour
const hourlySummarySQL = `
	SELECT
		to_char(h.created_date_time AT TIME ZONE ?, 'YYYY-MM-DD') AS sale_date,
		EXTRACT(HOUR FROM h.created_date_time AT TIME ZONE ?)::int AS sale_hour,
		COUNT(DISTINCT h.invoice_id) AS transactions,
		SUM(l.quantity) AS total_items,
		SUM(l.total) AS total_amount
	FROM invoice_headers h
	JOIN invoice_lines l ON l.invoice_id = h.invoice_id
	WHERE h.is_voided = false
		AND h.created_date_time >= ? AND h.created_date_time < ?
	GROUP BY 1, 2
	ORDER BY 1, 2
`

func (r *salesRepository) HourlySummary(ctx context.Context, rng report.DateRange) ([]report.HourSummaryRow, error) {
	rows := make([]report.HourSummaryRow, 0)
	err := r.q.Query(ctx, &rows, hourlySummarySQL, r.tz, r.tz, rng.From, rng.To)
	return rows, err
}

func (r *salesRepository) HourlyItems(ctx context.Context, rng report.DateRange) ([]report.HourItemRow, error) {
	rows := make([]report.HourItemRow, 0)
	err := r.q.Query(ctx, &rows, `
		SELECT
			to_char(h.created_date_time AT TIME ZONE ?, 'YYYY-MM-DD') AS sale_date,
			EXTRACT(HOUR FROM h.created_date_time AT TIME ZONE ?)::int AS sale_hour,
			l.item_name,
			l.quantity,
			l.price AS unit_price,
			l.total AS total_price,
			l.discount,
			l.tax,
			h.created_date_time AS sold_at
		FROM invoice_lines l
		JOIN invoice_headers h ON h.invoice_id = l.invoice_id
		WHERE h.is_voided = false
			AND h.created_date_time >= ? AND h.created_date_time < ?
		ORDER BY h.created_date_time, l.line_id
	`, r.tz, r.tz, rng.From, rng.To)
	return rows, err
}

func (r *salesRepository) ItemSales(ctx context.Context, filter domainRepo.ItemSalesFilter) ([]report.ItemSaleRow, error) {
	var c conditions
	c.add("l.item_id = ?", filter.ItemID)
	c.between("h.created_date_time", filter.Range)
	if filter.InvoiceCode != "" {
		c.add("h.invoice_code = ?", filter.InvoiceCode)
	}

	rows := make([]report.ItemSaleRow, 0)
	err := r.q.Query(ctx, &rows, `
		SELECT
			h.invoice_code,
			i.upc,
			COALESCE(i.name, l.item_name) AS item_name,
			l.price,
			l.quantity,
			l.tax,
			(l.price * l.quantity + l.tax) AS total_price,
			h.user_name,
			h.created_date_time AS date_time,
			h.payment_type,
			h.is_voided
		FROM invoice_headers h
		JOIN invoice_lines l ON l.invoice_id = h.invoice_id
		LEFT JOIN items i ON i.item_id = l.item_id`+c.where()+`
		ORDER BY h.created_date_time DESC, l.line_id
	`, c.args...)
	return rows, err
}

func (r *salesRepository) InvoiceByCode(ctx context.Context, code string) (*entity.InvoiceHeader, error) {
	var invoice entity.InvoiceHeader
	err := r.q.DB().WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB { return db.Order("line_id") }).
		First(&invoice, "invoice_code = ?", code).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &invoice, err
}
