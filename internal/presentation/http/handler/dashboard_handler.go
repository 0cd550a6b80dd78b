package handler

import (
	"context"

	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/domain/repository"
	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

type DashboardService interface {
	LiveSalesTrend(ctx context.Context) ([]repository.SalesTrendPoint, error)
	TopSellingItems(ctx context.Context) ([]repository.TopSellingItem, error)
}

// DashboardHandler handles dashboard-related HTTP requests
type DashboardHandler struct {
	dashboardService DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// LiveSalesTrend returns today's sales per hour
func (h *DashboardHandler) LiveSalesTrend(c *gin.Context) {
	points, err := h.dashboardService.LiveSalesTrend(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	if points == nil {
		points = []repository.SalesTrendPoint{}
	}
	response.OK(c, "Sales trend retrieved successfully", points)
}

// TopSellingItems returns today's best sellers
func (h *DashboardHandler) TopSellingItems(c *gin.Context) {
	items, err := h.dashboardService.TopSellingItems(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	if items == nil {
		items = []repository.TopSellingItem{}
	}
	response.OK(c, "Top selling items retrieved successfully", items)
}
