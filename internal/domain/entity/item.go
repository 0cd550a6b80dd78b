package entity

import (
	"time"

	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/domain/enum"
	"github.com/shopspring/decimal"
)

// Item is a sellable product in the store catalog
type Item struct {
	ItemID                int64           `gorm:"column:item_id;primaryKey;autoIncrement" json:"item_id"`
	Name                  string          `gorm:"type:text;not null" json:"name"`
	UPC                   string          `gorm:"column:upc;size:500;index" json:"upc"`
	AdditionalDescription *string         `gorm:"type:text" json:"additional_description,omitempty"`
	ItemCost              decimal.Decimal `gorm:"type:numeric(12,2);default:0" json:"item_cost"`
	ChargedCost           decimal.Decimal `gorm:"type:numeric(12,2);default:0" json:"charged_cost"`
	Taxable               bool            `gorm:"default:false" json:"taxable"`
	InStock               int             `gorm:"default:0" json:"in_stock"`
	VendorName            *string         `gorm:"type:text" json:"vendor_name,omitempty"`
	CaseCost              decimal.Decimal `gorm:"type:numeric(12,2);default:0" json:"case_cost"`
	NumberInCase          int             `gorm:"default:0" json:"number_in_case"`
	SalesTax              decimal.Decimal `gorm:"type:numeric(20,5);default:0" json:"sales_tax"`
	QuickAdd              bool            `gorm:"default:false" json:"quick_add"`
	DroppedItem           int             `gorm:"default:0" json:"dropped_item"`
	EnableStockAlert      bool            `gorm:"default:false" json:"enable_stock_alert"`
	StockAlertLimit       int             `gorm:"default:0" json:"stock_alert_limit"`
	AltUPC                *string         `gorm:"column:alt_upc;size:500" json:"alt_upc,omitempty"`
	ImageURL              *string         `gorm:"column:image_url;type:text" json:"image_url,omitempty"`
	CategoryID            *int64          `gorm:"index" json:"category_id,omitempty"`
	IsActive              bool            `gorm:"default:true;index" json:"is_active"`
	CostPerItem           decimal.Decimal `gorm:"type:numeric(18,2);default:0" json:"cost_per_item"`
	Pack                  int             `gorm:"default:0" json:"pack"`
	IsManual              bool            `gorm:"default:false" json:"is_manual"`
	CreatedDate           time.Time       `gorm:"autoCreateTime" json:"created_date"`
	UpdatedAt             *time.Time      `json:"updated_at,omitempty"`
	UpdatedBy             *string         `gorm:"size:100" json:"updated_by,omitempty"`

	// Relationships
	Category         *Category     `gorm:"foreignKey:CategoryID;references:CategoryID" json:"category,omitempty"`
	BulkPricingTiers []BulkPricing `gorm:"foreignKey:ItemID;references:ItemID" json:"bulk_pricing_tiers"`
}

// TableName returns the table name for the Item model
func (Item) TableName() string {
	return "items"
}

// IsLowStock mirrors the low stock alert rule used by the inventory dashboard.
func (i *Item) IsLowStock() bool {
	return i.EnableStockAlert && i.IsActive && i.InStock <= i.StockAlertLimit
}

// Category groups catalog items
type Category struct {
	CategoryID  int64   `gorm:"column:category_id;primaryKey;autoIncrement" json:"category_id"`
	Name        string  `gorm:"size:255;not null" json:"name"`
	Description *string `gorm:"type:text" json:"description,omitempty"`
	Active      bool    `gorm:"default:true" json:"active"`
}

// TableName returns the table name for the Category model
func (Category) TableName() string {
	return "categories"
}

// BulkPricing is a quantity price break for an item
type BulkPricing struct {
	BulkPricingID int64             `gorm:"column:bulk_pricing_id;primaryKey;autoIncrement" json:"bulk_pricing_id"`
	ItemID        int64             `gorm:"not null;index" json:"item_id"`
	Quantity      int               `gorm:"not null" json:"quantity"`
	Pricing       decimal.Decimal   `gorm:"type:numeric(12,2);not null" json:"pricing"`
	DiscountType  enum.DiscountType `gorm:"size:50" json:"discount_type"`
}

// TableName returns the table name for the BulkPricing model
func (BulkPricing) TableName() string {
	return "bulk_pricing"
}
