package entity

import "github.com/shopspring/decimal"

// ReceiptHeader holds the store header printed at the top of a slip.
type ReceiptHeader struct {
	StoreName string `json:"store_name"`
	Address   string `json:"address,omitempty"`
	Phone     string `json:"phone,omitempty"`
	TaxID     string `json:"tax_id,omitempty"`
}

// ReceiptItem is a single line on a reprinted invoice.
type ReceiptItem struct {
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Total     decimal.Decimal `json:"total"`
}

// Receipt is composed from an invoice at print time and never stored.
type Receipt struct {
	Header      ReceiptHeader   `json:"header"`
	InvoiceNo   string          `json:"invoice_no"`
	Date        string          `json:"date"`
	Cashier     string          `json:"cashier,omitempty"`
	PaymentType string          `json:"payment_type,omitempty"`
	Voided      bool            `json:"voided"`
	Items       []ReceiptItem   `json:"items"`
	SubTotal    decimal.Decimal `json:"sub_total"`
	Tax         decimal.Decimal `json:"tax"`
	Discount    decimal.Decimal `json:"discount"`
	Total       decimal.Decimal `json:"total"`
	Change      decimal.Decimal `json:"change"`
	Footer      string          `json:"footer,omitempty"`
}
