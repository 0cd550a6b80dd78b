package request

import "github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/application/service"

// DateRangeRequest is the date filter shared by the report endpoints.
// Dates are YYYY-MM-DD or full timestamps; report_type is a keyword such as
// "today", "week", "2024" or "March 2024".
type DateRangeRequest struct {
	FromDate   string `json:"from_date" form:"from_date"`
	ToDate     string `json:"to_date" form:"to_date"`
	ReportType string `json:"report_type" form:"report_type"`
}

func (r DateRangeRequest) ToInput() service.RangeInput {
	return service.RangeInput{
		FromDate:   r.FromDate,
		ToDate:     r.ToDate,
		ReportType: r.ReportType,
	}
}

// SalesHistoryRequest represents sales history filters
type SalesHistoryRequest struct {
	DateRangeRequest
	PaymentType string `json:"payment_type" binding:"omitempty,max=50"`
	InvoiceCode string `json:"invoice_code" binding:"omitempty,max=100"`
	Search      string `json:"search" binding:"omitempty,max=255"`
}

// DownloadReportRequest selects the period and file type of a sales report
type DownloadReportRequest struct {
	DateRangeRequest
	Format string `json:"format" binding:"omitempty,oneof=pdf xlsx PDF XLSX"`
}

// ItemHistoryRequest represents a single item's sales history query
type ItemHistoryRequest struct {
	ItemID      int64  `json:"item_id" binding:"required,min=1"`
	FromDate    string `json:"from_date"`
	ToDate      string `json:"to_date"`
	InvoiceCode string `json:"invoice_code" binding:"omitempty,max=100"`
}
