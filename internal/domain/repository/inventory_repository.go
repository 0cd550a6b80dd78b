package repository

import (
	"context"
	"time"

	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/domain/report"
	"github.com/shopspring/decimal"
)

type LowStockItem struct {
	ItemID          int64           `gorm:"column:item_id" json:"item_id"`
	Name            string          `gorm:"column:name" json:"name"`
	UPC             string          `gorm:"column:upc" json:"upc"`
	ItemCost        decimal.Decimal `gorm:"column:item_cost" json:"item_cost"`
	ChargedCost     decimal.Decimal `gorm:"column:charged_cost" json:"charged_cost"`
	InStock         int             `gorm:"column:in_stock" json:"in_stock"`
	StockAlertLimit int             `gorm:"column:stock_alert_limit" json:"stock_alert_limit"`
}

// DroppedItem is a line of a voided invoice.
type DroppedItem struct {
	InvoiceCode string              `gorm:"column:invoice_code" json:"invoice_code"`
	ItemID      int64               `gorm:"column:item_id" json:"item_id"`
	ItemName    string              `gorm:"column:item_name" json:"item_name"`
	UPC         *string             `gorm:"column:upc" json:"upc"`
	Category    *string             `gorm:"column:category" json:"category"`
	Price       decimal.NullDecimal `gorm:"column:price" json:"price"`
	Quantity    int64               `gorm:"column:quantity" json:"quantity"`
	TotalPrice  decimal.NullDecimal `gorm:"column:total_price" json:"total_price"`
	VoidedBy    *string             `gorm:"column:voided_by" json:"voided_by"`
	VoidedOn    *time.Time          `gorm:"column:voided_on" json:"voided_on"`
	BilledBy    *string             `gorm:"column:billed_by" json:"billed_by"`
}

// TrackingFilter is shared by the three audit trail queries. Zero values
// mean "no filter".
type TrackingFilter struct {
	ItemID int64
	Range  *report.DateRange
}

type SalesTrailRow struct {
	SrNo         int64               `gorm:"column:sr_no" json:"sr_no"`
	InvoiceCode  string              `gorm:"column:invoice_code" json:"invoice_code"`
	ItemName     string              `gorm:"column:item_name" json:"item_name"`
	SoldQty      int64               `gorm:"column:sold_qty" json:"sold_qty"`
	SoldPrice    decimal.NullDecimal `gorm:"column:sold_price" json:"sold_price"`
	TotalPrice   decimal.NullDecimal `gorm:"column:total_price" json:"total_price"`
	Discount     decimal.NullDecimal `gorm:"column:discount" json:"discount"`
	Tax          decimal.NullDecimal `gorm:"column:tax" json:"tax"`
	SoldBy       string              `gorm:"column:sold_by" json:"sold_by"`
	SoldDateTime time.Time           `gorm:"column:sold_date_time" json:"sold_date_time"`
}

type QuantityTrailRow struct {
	SrNo         int64     `gorm:"column:sr_no" json:"sr_no"`
	ItemName     string    `gorm:"column:item_name" json:"item_name"`
	OldQty       int64     `gorm:"column:old_qty" json:"old_qty"`
	NewQty       int64     `gorm:"column:new_qty" json:"new_qty"`
	ModifiedDate time.Time `gorm:"column:modified_date" json:"modified_date"`
	ModifiedBy   string    `gorm:"column:modified_by" json:"modified_by"`
}

type PriceTrailRow struct {
	SrNo           int64               `gorm:"column:sr_no" json:"sr_no"`
	ItemName       string              `gorm:"column:item_name" json:"item_name"`
	OldChargedCost decimal.NullDecimal `gorm:"column:old_charged_cost" json:"old_charged_cost"`
	NewChargedCost decimal.NullDecimal `gorm:"column:new_charged_cost" json:"new_charged_cost"`
	ModifiedDate   time.Time           `gorm:"column:modified_date" json:"modified_date"`
	ModifiedBy     string              `gorm:"column:modified_by" json:"modified_by"`
}

// VoidResult tells whether the invoice existed and how many item counters moved.
// AlreadyVoided invoices are left untouched.
type VoidResult struct {
	Found         bool
	AlreadyVoided bool
	InvoiceID     int64
	ItemsDropped  int64
}

// InventoryRepository defines stock and audit queries plus the void write
type InventoryRepository interface {
	LowStock(ctx context.Context) ([]LowStockItem, error)
	DroppedItems(ctx context.Context) ([]DroppedItem, error)
	ActiveCount(ctx context.Context) (int64, error)

	SalesTrail(ctx context.Context, filter TrackingFilter) ([]SalesTrailRow, error)
	QuantityTrail(ctx context.Context, filter TrackingFilter) ([]QuantityTrailRow, error)
	PriceTrail(ctx context.Context, filter TrackingFilter) ([]PriceTrailRow, error)

	// VoidInvoice marks the invoice voided and adds its line quantities to
	// each item's dropped counter, all in one transaction
	VoidInvoice(ctx context.Context, invoiceCode, voidedBy string, at time.Time) (VoidResult, error)

	// VoidInvoiceWithProcedure delegates the same write to a stored procedure
	VoidInvoiceWithProcedure(ctx context.Context, procedure, invoiceCode, voidedBy string) (VoidResult, error)
}
