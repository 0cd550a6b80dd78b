package repository

import (
	"context"

	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/domain/entity"
	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/domain/report"
	"github.com/shopspring/decimal"
)

// SalesHistoryFilter narrows the invoice history listing. Range is optional.
type SalesHistoryFilter struct {
	Range       *report.DateRange
	PaymentType string
	InvoiceCode string
	Search      string
}

// ItemSalesFilter selects one item's sales lines.
type ItemSalesFilter struct {
	ItemID      int64
	Range       *report.DateRange
	InvoiceCode string
}

// SalesRepository issues the read-only aggregate queries behind the sales
// reports. Every method returns declared row shapes; voided invoices are
// excluded from sums unless stated otherwise.
type SalesRepository interface {
	// SalesTotal sums GrandTotal of non-voided invoices in the range
	SalesTotal(ctx context.Context, r report.DateRange) (decimal.Decimal, error)

	// History returns header LEFT JOIN line rows, voided invoices included
	History(ctx context.Context, filter SalesHistoryFilter) ([]report.InvoiceRow, error)

	// ReportRows returns one row per invoice with its summed quantity, newest first
	ReportRows(ctx context.Context, r report.DateRange) ([]report.InvoiceRow, error)

	ActiveSalesTax(ctx context.Context) (decimal.Decimal, error)
	Company(ctx context.Context) (*entity.Company, error)

	FlashMetrics(ctx context.Context, r report.DateRange) (report.FlashMetricsRow, error)
	PaymentTotals(ctx context.Context, r report.DateRange) ([]report.PaymentRow, error)
	TaxSplit(ctx context.Context, r report.DateRange) (report.TaxSplitRow, error)

	HourlySummary(ctx context.Context, r report.DateRange) ([]report.HourSummaryRow, error)
	HourlyItems(ctx context.Context, r report.DateRange) ([]report.HourItemRow, error)

	ItemSales(ctx context.Context, filter ItemSalesFilter) ([]report.ItemSaleRow, error)

	// InvoiceByCode loads an invoice with its lines, nil when it does not exist
	InvoiceByCode(ctx context.Context, code string) (*entity.InvoiceHeader, error)
}
