package handler

import (
	"context"

	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/application/service"
	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/domain/enum"
	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/domain/report"
	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/presentation/http/dto/request"
	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// SalesService is what SalesHandler needs from the sales use cases
type SalesService interface {
	TodayYesterday(ctx context.Context) (*service.TodayYesterdaySales, error)
	History(ctx context.Context, in service.HistoryInput) ([]report.GroupedInvoice, error)
	Download(ctx context.Context, in service.DownloadInput) (*service.File, error)
	ActiveSalesTax(ctx context.Context) (decimal.Decimal, error)
	PerItemHistory(ctx context.Context, in service.ItemHistoryInput) (*report.ItemHistory, error)
}

// SalesHandler handles sales history and sales report requests
type SalesHandler struct {
	salesService SalesService
}

// NewSalesHandler creates a new sales handler
func NewSalesHandler(salesService SalesService) *SalesHandler {
	return &SalesHandler{salesService: salesService}
}

// TodayYesterday returns today's and yesterday's sales totals
func (h *SalesHandler) TodayYesterday(c *gin.Context) {
	totals, err := h.salesService.TodayYesterday(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Sales totals retrieved successfully", totals)
}

// History returns invoices with their lines
// @Summary Sales history
// @Tags sales
// @Accept json
// @Produce json
// @Param request body request.SalesHistoryRequest false "Filters"
// @Success 200 {object} response.APIResponse
// @Router /sales/history [post]
func (h *SalesHandler) History(c *gin.Context) {
	var req request.SalesHistoryRequest
	if !bindOptionalJSON(c, &req) {
		return
	}

	invoices, err := h.salesService.History(c.Request.Context(), service.HistoryInput{
		RangeInput:  req.ToInput(),
		PaymentType: req.PaymentType,
		InvoiceCode: req.InvoiceCode,
		Search:      req.Search,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, resultMessage(len(invoices) > 0, "Sales history retrieved successfully"), gin.H{
		"total_records": len(invoices),
		"has_data":      len(invoices) > 0,
		"invoices":      invoices,
	})
}

// Download streams the sales report as a PDF or workbook
// @Summary Download sales report
// @Tags sales
// @Accept json
// @Produce application/pdf
// @Param request body request.DownloadReportRequest false "Period and format"
// @Router /sales/download [post]
func (h *SalesHandler) Download(c *gin.Context) {
	var req request.DownloadReportRequest
	if !bindOptionalJSON(c, &req) {
		return
	}

	file, err := h.salesService.Download(c.Request.Context(), service.DownloadInput{
		RangeInput: req.ToInput(),
		Format:     enum.ParseReportFormat(req.Format),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, file.ContentType, file.Name, file.Data)
}

func (h *SalesHandler) ActiveSalesTax(c *gin.Context) {
	rate, err := h.salesService.ActiveSalesTax(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Active sales tax retrieved successfully", gin.H{"sales_tax": rate})
}

// ItemHistory returns one item's sales with totals
func (h *SalesHandler) ItemHistory(c *gin.Context) {
	var req request.ItemHistoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	history, err := h.salesService.PerItemHistory(c.Request.Context(), service.ItemHistoryInput{
		ItemID:      req.ItemID,
		FromDate:    req.FromDate,
		ToDate:      req.ToDate,
		InvoiceCode: req.InvoiceCode,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Item sales history retrieved successfully", history)
}
