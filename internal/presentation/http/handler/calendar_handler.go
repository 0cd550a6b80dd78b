package handler

import (
	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/application/service"
	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// CalendarHandler serves the month and year pickers of the report filters
type CalendarHandler struct {
	calendarService *service.CalendarService
}

func NewCalendarHandler(calendarService *service.CalendarService) *CalendarHandler {
	return &CalendarHandler{calendarService: calendarService}
}

func (h *CalendarHandler) Months(c *gin.Context) {
	response.OK(c, "Months retrieved successfully", h.calendarService.Months())
}

func (h *CalendarHandler) Years(c *gin.Context) {
	response.OK(c, "Years retrieved successfully", h.calendarService.Years())
}
