// Package report turns flat query rows into the nested structures returned by
// the sales reporting endpoints and consumed by the document renderer.
//
// Everything here is pure: no I/O, no clocks except the ones passed in.
package report

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceRow is one row of an invoice header LEFT JOIN invoice line query.
// Header columns repeat for every line. Line columns are nil when the invoice
// has no lines.
type InvoiceRow struct {
	InvoiceID       int64               `gorm:"column:invoice_id"`
	InvoiceCode     string              `gorm:"column:invoice_code"`
	CreatedDateTime time.Time           `gorm:"column:created_date_time"`
	IsVoided        bool                `gorm:"column:is_voided"`
	VoidedBy        *string             `gorm:"column:voided_by"`
	VoidedOn        *time.Time          `gorm:"column:voided_on"`
	PaymentType     *string             `gorm:"column:payment_type"`
	SubTotal        decimal.NullDecimal `gorm:"column:sub_total"`
	TotalTax        decimal.NullDecimal `gorm:"column:total_tax"`
	GrandTotal      decimal.NullDecimal `gorm:"column:grand_total"`
	CoinsDiscount   decimal.NullDecimal `gorm:"column:coins_discount"`
	ChangeAmount    decimal.NullDecimal `gorm:"column:change_amount"`
	UserName        *string             `gorm:"column:user_name"`
	TotalQty        *int64              `gorm:"column:total_qty"`

	LineID   *int64              `gorm:"column:line_id"`
	ItemID   *int64              `gorm:"column:item_id"`
	ItemName *string             `gorm:"column:item_name"`
	Price    decimal.NullDecimal `gorm:"column:price"`
	Quantity *int64              `gorm:"column:quantity"`
	Discount decimal.NullDecimal `gorm:"column:discount"`
	Tax      decimal.NullDecimal `gorm:"column:tax"`
	Total    decimal.NullDecimal `gorm:"column:total"`
}

// Invoice is the header part of a grouped invoice.
type Invoice struct {
	InvoiceID       int64           `json:"invoice_id"`
	InvoiceCode     string          `json:"invoice_code"`
	CreatedDateTime time.Time       `json:"created_date_time"`
	IsVoided        bool            `json:"is_voided"`
	VoidedBy        *string         `json:"voided_by"`
	VoidedOn        *time.Time      `json:"voided_on"`
	PaymentType     string          `json:"payment_type"`
	SubTotal        decimal.Decimal `json:"sub_total"`
	TotalTax        decimal.Decimal `json:"total_tax"`
	GrandTotal      decimal.Decimal `json:"grand_total"`
	CoinsDiscount   decimal.Decimal `json:"coins_discount"`
	ChangeAmount    decimal.Decimal `json:"change_amount"`
	UserName        string          `json:"user_name"`
	TotalQty        int64           `json:"total_qty"`
}

// InvoiceLine is one sold item of a grouped invoice.
type InvoiceLine struct {
	LineID   int64           `json:"line_id"`
	ItemID   int64           `json:"item_id"`
	ItemName string          `json:"item_name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int64           `json:"quantity"`
	Discount decimal.Decimal `json:"discount"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// GroupedInvoice pairs an invoice header with its lines in query order.
type GroupedInvoice struct {
	Invoice
	Lines []InvoiceLine `json:"lines"`
}

// FlashMetricsRow is the single aggregate row of the flash report metrics query.
type FlashMetricsRow struct {
	GrossSales   decimal.NullDecimal `gorm:"column:gross_sales"`
	TotalTax     decimal.NullDecimal `gorm:"column:total_tax"`
	Transactions *int64              `gorm:"column:transactions"`
}

// PaymentRow is one payment type total.
type PaymentRow struct {
	PaymentType *string             `gorm:"column:payment_type"`
	Total       decimal.NullDecimal `gorm:"column:total"`
}

// TaxSplitRow splits line revenue by whether the item is taxable.
type TaxSplitRow struct {
	TaxableSales    decimal.NullDecimal `gorm:"column:taxable_sales"`
	NonTaxableSales decimal.NullDecimal `gorm:"column:non_taxable_sales"`
}

// HourSummaryRow is one (date, hour) aggregate of the hourly report.
// SaleDate is formatted as 2006-01-02 by the query.
type HourSummaryRow struct {
	SaleDate     string              `gorm:"column:sale_date"`
	SaleHour     int                 `gorm:"column:sale_hour"`
	Transactions int64               `gorm:"column:transactions"`
	TotalItems   *int64              `gorm:"column:total_items"`
	TotalAmount  decimal.NullDecimal `gorm:"column:total_amount"`
}

// HourItemRow is one sold line within an hour of the hourly report.
type HourItemRow struct {
	SaleDate   string              `gorm:"column:sale_date"`
	SaleHour   int                 `gorm:"column:sale_hour"`
	ItemName   *string             `gorm:"column:item_name"`
	Quantity   *int64              `gorm:"column:quantity"`
	UnitPrice  decimal.NullDecimal `gorm:"column:unit_price"`
	TotalPrice decimal.NullDecimal `gorm:"column:total_price"`
	Discount   decimal.NullDecimal `gorm:"column:discount"`
	Tax        decimal.NullDecimal `gorm:"column:tax"`
	SoldAt     time.Time           `gorm:"column:sold_at"`
}

// ItemSaleRow is one line of a single item's sales history.
type ItemSaleRow struct {
	InvoiceCode string              `gorm:"column:invoice_code" json:"invoice_code"`
	UPC         *string             `gorm:"column:upc" json:"upc"`
	ItemName    *string             `gorm:"column:item_name" json:"item_name"`
	Price       decimal.NullDecimal `gorm:"column:price" json:"price"`
	Quantity    *int64              `gorm:"column:quantity" json:"quantity"`
	Tax         decimal.NullDecimal `gorm:"column:tax" json:"tax"`
	TotalPrice  decimal.NullDecimal `gorm:"column:total_price" json:"total_price"`
	UserName    *string             `gorm:"column:user_name" json:"user_name"`
	DateTime    time.Time           `gorm:"column:date_time" json:"date_time"`
	PaymentType *string             `gorm:"column:payment_type" json:"payment_type"`
	IsVoided    bool                `gorm:"column:is_voided" json:"is_voided"`
}

func orZero(d decimal.NullDecimal) decimal.Decimal {
	if !d.Valid {
		return decimal.Zero
	}
	return d.Decimal
}

func orEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func orZeroInt(i *int64) int64 {
	if i == nil {
		return 0
	}
	return *i
}
