package repository

import (
	"context"

	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/domain/entity"
	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/pkg/pagination"
	"github.com/shopspring/decimal"
)

// ProductFilterParams represents filter parameters for listing items
type ProductFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	CategoryID *int64
	LowStock   bool
	SortBy     string
	SortOrder  string
}

// ItemName is the lightweight id/name pair used by pickers.
type ItemName struct {
	ItemID int64  `gorm:"column:item_id" json:"item_id"`
	Name   string `gorm:"column:name" json:"name"`
}

// ItemReportRow is one row of the catalog report.
type ItemReportRow struct {
	ItemID       int64           `gorm:"column:item_id"`
	Name         string          `gorm:"column:name"`
	UPC          string          `gorm:"column:upc"`
	ItemCost     decimal.Decimal `gorm:"column:item_cost"`
	ChargedCost  decimal.Decimal `gorm:"column:charged_cost"`
	InStock      int64           `gorm:"column:in_stock"`
	VendorName   *string         `gorm:"column:vendor_name"`
	CaseCost     decimal.Decimal `gorm:"column:case_cost"`
	NumberInCase int64           `gorm:"column:number_in_case"`
	SalesTax     decimal.Decimal `gorm:"column:sales_tax"`
	CategoryName *string         `gorm:"column:category_name"`
	Pack         int64           `gorm:"column:pack"`
	IsManual     bool            `gorm:"column:is_manual"`
}

// ProductRepository defines catalog persistence
type ProductRepository interface {
	Create(ctx context.Context, item *entity.Item) error
	// Update saves the item and replaces its bulk pricing tiers when tiers is non-nil
	Update(ctx context.Context, item *entity.Item, tiers []entity.BulkPricing) error
	GetByID(ctx context.Context, id int64) (*entity.Item, error)
	// Delete removes the item and its bulk pricing tiers; false when nothing was deleted
	Delete(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context, params *ProductFilterParams) ([]entity.Item, int64, error)
	Names(ctx context.Context) ([]ItemName, error)
	ReportRows(ctx context.Context) ([]ItemReportRow, error)

	Categories(ctx context.Context) ([]entity.Category, error)
	CategoryItems(ctx context.Context, categoryID int64) ([]ItemName, error)
}
