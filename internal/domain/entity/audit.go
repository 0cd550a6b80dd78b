package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemSalesAudit records each item sale as it happened at the till
type ItemSalesAudit struct {
	ID           int64           `gorm:"primaryKey;autoIncrement"`
	ItemID       int64           `gorm:"index"`
	InvoiceCode  string          `gorm:"size:100"`
	ItemName     string          `gorm:"type:text"`
	SoldQty      int             `gorm:"default:0"`
	SoldPrice    decimal.Decimal `gorm:"type:numeric(12,2)"`
	TotalPrice   decimal.Decimal `gorm:"type:numeric(12,2)"`
	Discount     decimal.Decimal `gorm:"type:numeric(12,2)"`
	Tax          decimal.Decimal `gorm:"type:numeric(12,2)"`
	SoldBy       string          `gorm:"size:100"`
	SoldDateTime time.Time       `gorm:"index"`
}

func (ItemSalesAudit) TableName() string {
	return "item_sales_audit"
}

// ItemQtyAudit records stock level changes
type ItemQtyAudit struct {
	ID           int64 `gorm:"primaryKey;autoIncrement"`
	ItemID       int64 `gorm:"index"`
	OldQty       int
	NewQty       int
	ModifiedDate time.Time `gorm:"index"`
	ModifiedBy   string    `gorm:"size:100"`
}

func (ItemQtyAudit) TableName() string {
	return "item_qty_audit"
}

// ItemPriceAudit records charged cost changes
type ItemPriceAudit struct {
	ID             int64           `gorm:"primaryKey;autoIncrement"`
	ItemID         int64           `gorm:"index"`
	OldChargedCost decimal.Decimal `gorm:"type:numeric(12,2)"`
	NewChargedCost decimal.Decimal `gorm:"type:numeric(12,2)"`
	ModifiedDate   time.Time       `gorm:"index"`
	ModifiedBy     string          `gorm:"size:100"`
}

func (ItemPriceAudit) TableName() string {
	return "item_price_audit"
}
