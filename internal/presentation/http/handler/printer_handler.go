package handler

import (
	"context"
	"strings"

	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/application/service"
	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/domain/entity"
	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

type PrinterService interface {
	GetStatus(ctx context.Context) *service.PrinterStatus
	TestPrint(ctx context.Context) (*entity.Receipt, error)
	PrintInvoice(ctx context.Context, code string) (*entity.Receipt, error)
	PrintFlashReport(ctx context.Context, in service.RangeInput) (*service.FlashResult, error)
}

// PrinterHandler handles printer-related HTTP requests.
type PrinterHandler struct {
	printerService PrinterService
}

// NewPrinterHandler creates a new printer handler.
func NewPrinterHandler(printerService PrinterService) *PrinterHandler {
	return &PrinterHandler{printerService: printerService}
}

// GetStatus returns the current printer connection status.
func (h *PrinterHandler) GetStatus(c *gin.Context) {
	status := h.printerService.GetStatus(c.Request.Context())
	response.OK(c, "Printer status retrieved", status)
}

// printed answers a print request. When the slip was composed but the
// printer failed, the composed data is still returned with a warning.
func printed(c *gin.Context, message string, data interface{}, err error) {
	if err != nil {
		if data == nil {
			response.Error(c, err)
			return
		}
		response.OK(c, "Document generated but printing failed", gin.H{
			"document": data,
			"warning":  err.Error(),
		})
		return
	}
	response.OK(c, message, gin.H{"document": data})
}

// TestPrint sends a test slip to the printer.
func (h *PrinterHandler) TestPrint(c *gin.Context) {
	receipt, err := h.printerService.TestPrint(c.Request.Context())
	printed(c, "Test page sent to printer", receipt, err)
}

// PrintInvoice reprints the receipt of an invoice.
func (h *PrinterHandler) PrintInvoice(c *gin.Context) {
	code := strings.TrimSpace(c.Param("code"))
	if code == "" {
		response.BadRequest(c, "Invalid invoice code")
		return
	}

	receipt, err := h.printerService.PrintInvoice(c.Request.Context(), code)
	if receipt == nil {
		printed(c, "", nil, err)
		return
	}
	printed(c, "Invoice receipt printed successfully", receipt, err)
}

// PrintFlashReport prints the flash report for a period.
func (h *PrinterHandler) PrintFlashReport(c *gin.Context) {
	in, ok := bindRange(c)
	if !ok {
		return
	}

	res, err := h.printerService.PrintFlashReport(c.Request.Context(), in)
	if res == nil {
		printed(c, "", nil, err)
		return
	}
	printed(c, "Flash report printed successfully", res, err)
}
