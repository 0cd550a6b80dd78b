package handler

import (
	"context"

	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/application/service"
	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/domain/repository"
	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/presentation/http/dto/request"
	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

type InventoryService interface {
	LowStock(ctx context.Context) ([]repository.LowStockItem, error)
	DroppedItems(ctx context.Context) ([]repository.DroppedItem, error)
	TotalCount(ctx context.Context) (int64, error)
	Tracking(ctx context.Context, in service.TrackingInput) (*service.TrackingResult, error)
	VoidInvoice(ctx context.Context, invoiceCode, voidedBy string) (*service.VoidResult, error)
}

// InventoryHandler handles stock, audit trail and void requests
type InventoryHandler struct {
	inventoryService InventoryService
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(inventoryService InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

func (h *InventoryHandler) LowStock(c *gin.Context) {
	items, err := h.inventoryService.LowStock(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	if items == nil {
		items = []repository.LowStockItem{}
	}
	response.OK(c, "Low stock items retrieved successfully", items)
}

// DroppedItems lists the lines of voided invoices with their count
func (h *InventoryHandler) DroppedItems(c *gin.Context) {
	items, err := h.inventoryService.DroppedItems(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	if items == nil {
		items = []repository.DroppedItem{}
	}
	response.OK(c, "Dropped items retrieved successfully", gin.H{
		"total_count": len(items),
		"items":       items,
	})
}

func (h *InventoryHandler) TotalCount(c *gin.Context) {
	count, err := h.inventoryService.TotalCount(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Inventory count retrieved successfully", gin.H{"total_count": count})
}

// Tracking reads the sales, quantity or price audit trail of the inventory
// @Summary Inventory tracking
// @Tags inventory
// @Accept json
// @Produce json
// @Param request body request.TrackingRequest true "Trail and filters"
// @Success 200 {object} response.APIResponse
// @Failure 422 {object} response.APIResponse
// @Router /inventory/tracking [post]
func (h *InventoryHandler) Tracking(c *gin.Context) {
	var req request.TrackingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	res, err := h.inventoryService.Tracking(c.Request.Context(), service.TrackingInput{
		Type:     req.TrackingType,
		ItemID:   req.ItemID,
		FromDate: req.FromDate,
		ToDate:   req.ToDate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, res.Type.String()+" tracking retrieved successfully", res)
}

// VoidInvoice voids an invoice on behalf of the signed in user
// @Summary Void invoice
// @Tags inventory
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "Replay protection key"
// @Param request body request.VoidInvoiceRequest true "Invoice"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Failure 409 {object} response.APIResponse
// @Router /inventory/void-invoice [post]
func (h *InventoryHandler) VoidInvoice(c *gin.Context) {
	var req request.VoidInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	voidedBy := GetUsername(c)
	if voidedBy == "" {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	res, err := h.inventoryService.VoidInvoice(c.Request.Context(), req.InvoiceCode, voidedBy)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Invoice voided successfully", res)
}
