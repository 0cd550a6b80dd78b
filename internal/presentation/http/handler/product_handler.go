package handler

import (
	"context"
	"net/http"

	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/application/service"
	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/domain/entity"
	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/domain/enum"
	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/domain/repository"
	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/presentation/http/dto/request"
	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/presentation/http/dto/response"
	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/pkg/pagination"
	"github.com/gin-gonic/gin"
)

// ProductService is what ProductHandler needs from the catalog use cases
type ProductService interface {
	ListProducts(ctx context.Context, params *repository.ProductFilterParams) (*pagination.PaginatedResult[entity.Item], error)
	GetProduct(ctx context.Context, id int64) (*entity.Item, error)
	CreateProduct(ctx context.Context, in *service.ItemInput, createdBy string) (*entity.Item, error)
	UpdateProduct(ctx context.Context, id int64, in *service.ItemInput, updatedBy string) (*entity.Item, error)
	DeleteProduct(ctx context.Context, id int64) error
	ProductNames(ctx context.Context) ([]repository.ItemName, error)
	Categories(ctx context.Context) ([]entity.Category, error)
	CategoryProducts(ctx context.Context, categoryID int64) ([]repository.ItemName, error)
	ItemsReport(ctx context.Context, format enum.ReportFormat) (*service.File, error)
}

// ProductHandler handles product-related HTTP requests
type ProductHandler struct {
	productService ProductService
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// List handles listing active products
// @Summary List products
// @Tags products
// @Produce json
// @Param search query string false "Name or UPC"
// @Param category_id query int false "Category"
// @Param low_stock query bool false "Only items at or below their alert limit"
// @Param page query int false "Page"
// @Param per_page query int false "Page size"
// @Success 200 {object} response.APIResponse
// @Router /products [get]
func (h *ProductHandler) List(c *gin.Context) {
	var filter request.ProductFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.ProductFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
		Search:    filter.Search,
		LowStock:  filter.LowStock,
		SortBy:    filter.SortBy,
		SortOrder: filter.SortOrder,
	}
	if filter.CategoryID > 0 {
		params.CategoryID = &filter.CategoryID
	}

	result, err := h.productService.ListProducts(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, http.StatusOK, "Products retrieved successfully", result)
}

// Get returns a product with its bulk pricing tiers
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	item, err := h.productService.GetProduct(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Product retrieved successfully", item)
}

// Create handles product creation
func (h *ProductHandler) Create(c *gin.Context) {
	var req request.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	item, err := h.productService.CreateProduct(c.Request.Context(), req.ToInput(), GetUsername(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Product created successfully", item)
}

// Update handles product update
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req request.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	item, err := h.productService.UpdateProduct(c.Request.Context(), id, req.ToInput(), GetUsername(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Product updated successfully", item)
}

// Delete handles product deletion
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.productService.DeleteProduct(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Product deleted successfully", nil)
}

func (h *ProductHandler) Names(c *gin.Context) {
	names, err := h.productService.ProductNames(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	if names == nil {
		names = []repository.ItemName{}
	}
	response.OK(c, "Product names retrieved successfully", names)
}

func (h *ProductHandler) Categories(c *gin.Context) {
	categories, err := h.productService.Categories(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	if categories == nil {
		categories = []entity.Category{}
	}
	response.OK(c, "Categories retrieved successfully", categories)
}

// CategoryProducts lists the active products of one category
func (h *ProductHandler) CategoryProducts(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	items, err := h.productService.CategoryProducts(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	if items == nil {
		items = []repository.ItemName{}
	}
	response.OK(c, "Category products retrieved successfully", items)
}

// Report downloads the catalog as a PDF (default) or ?format=xlsx workbook
func (h *ProductHandler) Report(c *gin.Context) {
	var req request.ReportFormatRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindError(c, err)
		return
	}

	file, err := h.productService.ItemsReport(c.Request.Context(), enum.ParseReportFormat(req.Format))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, file.ContentType, file.Name, file.Data)
}
