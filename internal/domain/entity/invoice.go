package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceHeader is a completed till sale
type InvoiceHeader struct {
	InvoiceID       int64           `gorm:"column:invoice_id;primaryKey;autoIncrement" json:"invoice_id"`
	InvoiceCode     string          `gorm:"size:100;uniqueIndex;not null" json:"invoice_code"`
	CreatedDateTime time.Time       `gorm:"not null;index" json:"created_date_time"`
	IsVoided        bool            `gorm:"default:false;index" json:"is_voided"`
	VoidedBy        *string         `gorm:"size:100" json:"voided_by,omitempty"`
	VoidedOn        *time.Time      `json:"voided_on,omitempty"`
	PaymentType     string          `gorm:"size:50;index" json:"payment_type"`
	SubTotal        decimal.Decimal `gorm:"type:numeric(12,2);default:0" json:"sub_total"`
	TotalTax        decimal.Decimal `gorm:"type:numeric(12,2);default:0" json:"total_tax"`
	GrandTotal      decimal.Decimal `gorm:"type:numeric(12,2);default:0" json:"grand_total"`
	CoinsDiscount   decimal.Decimal `gorm:"type:numeric(12,2);default:0" json:"coins_discount"`
	ChangeAmount    decimal.Decimal `gorm:"type:numeric(12,2);default:0" json:"change_amount"`
	UserName        string          `gorm:"size:100" json:"user_name"`

	Lines []InvoiceLine `gorm:"foreignKey:InvoiceID;references:InvoiceID" json:"lines,omitempty"`
}

// TableName returns the table name for the InvoiceHeader model
func (InvoiceHeader) TableName() string {
	return "invoice_headers"
}

// InvoiceLine is one item sold on an invoice
type InvoiceLine struct {
	LineID    int64           `gorm:"column:line_id;primaryKey;autoIncrement" json:"line_id"`
	InvoiceID int64           `gorm:"not null;index" json:"invoice_id"`
	ItemID    int64           `gorm:"index" json:"item_id"`
	ItemName  string          `gorm:"type:text" json:"item_name"`
	Price     decimal.Decimal `gorm:"type:numeric(12,2);default:0" json:"price"`
	Quantity  int             `gorm:"default:0" json:"quantity"`
	Discount  decimal.Decimal `gorm:"type:numeric(12,2);default:0" json:"discount"`
	Tax       decimal.Decimal `gorm:"type:numeric(12,2);default:0" json:"tax"`
	Total     decimal.Decimal `gorm:"type:numeric(12,2);default:0" json:"total"`
	CreatedAt time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

// TableName returns the table name for the InvoiceLine model
func (InvoiceLine) TableName() string {
	return "invoice_lines"
}

// Company holds store-wide settings such as the active sales tax rate
type Company struct {
	ID       int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string          `gorm:"size:255" json:"name"`
	Address  *string         `gorm:"type:text" json:"address,omitempty"`
	Phone    *string         `gorm:"size:50" json:"phone,omitempty"`
	TaxID    *string         `gorm:"size:100" json:"tax_id,omitempty"`
	SalesTax decimal.Decimal `gorm:"type:numeric(20,5);default:0" json:"sales_tax"`
}

// TableName returns the table name for the Company model
func (Company) TableName() string {
	return "company"
}
