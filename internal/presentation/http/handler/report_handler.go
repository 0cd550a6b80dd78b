package handler

import (
	"context"

	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/application/service"
	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/presentation/http/dto/request"
	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// ReportService is what ReportHandler needs from the report use cases
type ReportService interface {
	Flash(ctx context.Context, in service.RangeInput) (*service.FlashResult, error)
	Hourly(ctx context.Context, in service.RangeInput) (*service.HourlyResult, error)
	FlashPDF(ctx context.Context, in service.RangeInput) (*service.File, error)
	HourlyPDF(ctx context.Context, in service.RangeInput) (*service.File, error)
}

// ReportHandler serves the flash and hourly reports
type ReportHandler struct {
	reportService ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

func bindRange(c *gin.Context) (service.RangeInput, bool) {
	var req request.DateRangeRequest
	if !bindOptionalJSON(c, &req) {
		return service.RangeInput{}, false
	}
	return req.ToInput(), true
}

// Flash returns gross, net, tax and payment totals for a period
// @Summary Flash report
// @Tags sales
// @Accept json
// @Produce json
// @Param request body request.DateRangeRequest false "Period"
// @Success 200 {object} response.APIResponse
// @Router /sales/flash-report [post]
func (h *ReportHandler) Flash(c *gin.Context) {
	in, ok := bindRange(c)
	if !ok {
		return
	}
	res, err := h.reportService.Flash(c.Request.Context(), in)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, resultMessage(res.HasData, "Flash report generated successfully"), res)
}

func (h *ReportHandler) FlashDownload(c *gin.Context) {
	in, ok := bindRange(c)
	if !ok {
		return
	}
	file, err := h.reportService.FlashPDF(c.Request.Context(), in)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, file.ContentType, file.Name, file.Data)
}

// Hourly returns sales grouped by calendar hour
func (h *ReportHandler) Hourly(c *gin.Context) {
	in, ok := bindRange(c)
	if !ok {
		return
	}
	res, err := h.reportService.Hourly(c.Request.Context(), in)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, resultMessage(res.HasData, "Hourly report generated successfully"), res)
}

func (h *ReportHandler) HourlyDownload(c *gin.Context) {
	in, ok := bindRange(c)
	if !ok {
		return
	}
	file, err := h.reportService.HourlyPDF(c.Request.Context(), in)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, file.ContentType, file.Name, file.Data)
}

// NoDataMessage answers a successful report query whose range held no sales.
const NoDataMessage = "No data found for the given date range"

func resultMessage(hasData bool, msg string) string {
	if !hasData {
		return NoDataMessage
	}
	return msg
}
