package repository

import (
	"context"

	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/domain/report"
	"github.com/shopspring/decimal"
)

// SalesTrendPoint is the sales of one hour slot.
type SalesTrendPoint struct {
	HourSlot    string          `gorm:"column:hour_slot" json:"hour_slot"`
	TotalAmount decimal.Decimal `gorm:"column:total_amount" json:"total_amount"`
	TotalItems  int64           `gorm:"column:total_items" json:"total_items"`
}

// TopSellingItem is an item ranked by quantity sold.
type TopSellingItem struct {
	ItemID   int64  `gorm:"column:item_id" json:"item_id"`
	ItemName string `gorm:"column:item_name" json:"item_name"`
	TotalQty int64  `gorm:"column:total_qty" json:"total_qty"`
}

// DashboardRepository defines the live dashboard aggregations
type DashboardRepository interface {
	// SalesTrend returns non-voided sales per hour slot, oldest first
	SalesTrend(ctx context.Context, r report.DateRange) ([]SalesTrendPoint, error)

	// TopSellingItems returns the items with the highest sold quantity
	TopSellingItems(ctx context.Context, r report.DateRange, limit int) ([]TopSellingItem, error)
}
