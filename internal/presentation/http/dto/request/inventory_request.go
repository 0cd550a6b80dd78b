package request

// TrackingRequest selects an inventory audit trail
type TrackingRequest struct {
	TrackingType string `json:"tracking_type" binding:"required"`
	ItemID       int64  `json:"item_id" binding:"omitempty,min=1"`
	FromDate     string `json:"from_date"`
	ToDate       string `json:"to_date"`
}

// VoidInvoiceRequest represents an invoice void
type VoidInvoiceRequest struct {
	InvoiceCode string `json:"invoice_code" binding:"required,max=100"`
}
