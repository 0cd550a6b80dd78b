package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/domain/entity"
	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/domain/enum"
	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/domain/repository"
	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/pkg/apperror"
	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/pkg/document"
	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/pkg/pagination"
	"github.com/shopspring/decimal"
)

// ProductService handles catalog items, categories and the items report
type ProductService struct {
	productRepo repository.ProductRepository
	now         func() time.Time
	newSurface  SurfaceFactory
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		now:         time.Now,
		newSurface:  PDFSurface,
	}
}

// BulkPricingInput is one quantity price break
type BulkPricingInput struct {
	Quantity     int
	Pricing      decimal.Decimal
	DiscountType enum.DiscountType
}

// ItemInput carries the editable fields of a catalog item
type ItemInput struct {
	Name                  string
	UPC                   string
	AdditionalDescription *string
	ItemCost              decimal.Decimal
	ChargedCost           decimal.Decimal
	CaseCost              decimal.Decimal
	CostPerItem           decimal.Decimal
	SalesTax              decimal.Decimal
	Taxable               bool
	InStock               int
	VendorName            *string
	NumberInCase          int
	QuickAdd              bool
	EnableStockAlert      bool
	StockAlertLimit       int
	AltUPC                *string
	ImageURL              *string
	CategoryID            *int64
	Pack                  int
	IsManual              bool
	// BulkPricingTiers replaces the item's tiers. nil keeps them on update.
	BulkPricingTiers []BulkPricingInput
}

var hundred = decimal.NewFromInt(100)

func (in *ItemInput) validate() error {
	var errs []apperror.FieldError
	if strings.TrimSpace(in.Name) == "" {
		errs = append(errs, apperror.FieldError{Field: "name", Message: "name is required"})
	}
	for i, t := range in.BulkPricingTiers {
		field := fmt.Sprintf("bulk_pricing_tiers[%d]", i)
		if t.Quantity <= 0 {
			errs = append(errs, apperror.FieldError{Field: field + ".quantity", Message: "quantity must be greater than 0"})
		}
		if t.Pricing.IsNegative() {
			errs = append(errs, apperror.FieldError{Field: field + ".pricing", Message: "pricing cannot be negative"})
		}
		if t.DiscountType == enum.DiscountTypePercent && t.Pricing.GreaterThan(hundred) {
			errs = append(errs, apperror.FieldError{Field: field + ".pricing", Message: "percent discount cannot exceed 100"})
		}
	}
	if len(errs) > 0 {
		return apperror.NewValidationError(errs)
	}
	return nil
}

func (in *ItemInput) apply(item *entity.Item) {
	item.Name = strings.TrimSpace(in.Name)
	item.UPC = strings.TrimSpace(in.UPC)
	item.AdditionalDescription = in.AdditionalDescription
	item.ItemCost = in.ItemCost
	item.ChargedCost = in.ChargedCost
	item.CaseCost = in.CaseCost
	item.CostPerItem = in.CostPerItem
	item.SalesTax = in.SalesTax
	item.Taxable = in.Taxable
	item.InStock = in.InStock
	item.VendorName = in.VendorName
	item.NumberInCase = in.NumberInCase
	item.QuickAdd = in.QuickAdd
	item.EnableStockAlert = in.EnableStockAlert
	item.StockAlertLimit = in.StockAlertLimit
	item.AltUPC = in.AltUPC
	item.ImageURL = in.ImageURL
	item.CategoryID = in.CategoryID
	item.Pack = in.Pack
	item.IsManual = in.IsManual
}

func (in *ItemInput) tiers() []entity.BulkPricing {
	if in.BulkPricingTiers == nil {
		return nil
	}
	tiers := make([]entity.BulkPricing, 0, len(in.BulkPricingTiers))
	for _, t := range in.BulkPricingTiers {
		tiers = append(tiers, entity.BulkPricing{
			Quantity:     t.Quantity,
			Pricing:      t.Pricing,
			DiscountType: t.DiscountType,
		})
	}
	return tiers
}

// CreateProduct creates an item together with its bulk pricing tiers
func (s *ProductService) CreateProduct(ctx context.Context, in *ItemInput, createdBy string) (*entity.Item, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	item := &entity.Item{IsActive: true}
	in.apply(item)
	item.UpdatedBy = &createdBy
	item.BulkPricingTiers = in.tiers()

	if err := s.productRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}
	return s.GetProduct(ctx, item.ItemID)
}

// UpdateProduct overwrites an item's fields and, when given, its tiers
func (s *ProductService) UpdateProduct(ctx context.Context, id int64, in *ItemInput, updatedBy string) (*entity.Item, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	item, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load item %d: %w", id, err)
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	in.apply(item)
	now := s.now()
	item.UpdatedAt = &now
	item.UpdatedBy = &updatedBy

	if err := s.productRepo.Update(ctx, item, in.tiers()); err != nil {
		return nil, fmt.Errorf("update item %d: %w", id, err)
	}
	return s.GetProduct(ctx, id)
}

// GetProduct returns an item with its category and bulk pricing tiers
func (s *ProductService) GetProduct(ctx context.Context, id int64) (*entity.Item, error) {
	item, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load item %d: %w", id, err)
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	if item.BulkPricingTiers == nil {
		item.BulkPricingTiers = []entity.BulkPricing{}
	}
	return item, nil
}

// DeleteProduct removes an item and its tiers
func (s *ProductService) DeleteProduct(ctx context.Context, id int64) error {
	deleted, err := s.productRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete item %d: %w", id, err)
	}
	if !deleted {
		return apperror.NewNotFoundError("Product")
	}
	return nil
}

// ListProducts lists active items with filtering
func (s *ProductService) ListProducts(ctx context.Context, params *repository.ProductFilterParams) (*pagination.PaginatedResult[entity.Item], error) {
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	params.Pagination.Validate()

	items, total, err := s.productRepo.List(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(items, pag), nil
}

func (s *ProductService) ProductNames(ctx context.Context) ([]repository.ItemName, error) {
	names, err := s.productRepo.Names(ctx)
	if err != nil {
		return nil, fmt.Errorf("item names: %w", err)
	}
	return names, nil
}

func (s *ProductService) Categories(ctx context.Context) ([]entity.Category, error) {
	categories, err := s.productRepo.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("categories: %w", err)
	}
	return categories, nil
}

func (s *ProductService) CategoryProducts(ctx context.Context, categoryID int64) ([]repository.ItemName, error) {
	items, err := s.productRepo.CategoryItems(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("category %d items: %w", categoryID, err)
	}
	return items, nil
}

// ItemsReport renders the active catalog as a PDF or workbook
func (s *ProductService) ItemsReport(ctx context.Context, format enum.ReportFormat) (*File, error) {
	now := s.now()
	rows, err := s.productRepo.ReportRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("items report rows: %w", err)
	}

	if format == "" {
		format = enum.ReportFormatPDF
	}
	var data []byte
	if format == enum.ReportFormatXLSX {
		data, err = document.WriteXLSX("Items", itemsTableSpec(), rows)
	} else {
		data, err = renderPDF(s.newSurface, itemsReportLayout, "Items Report", func(d *document.Document) error {
			return drawItemsReport(d, rows)
		})
	}
	if err != nil {
		return nil, fmt.Errorf("render items report: %w", err)
	}

	return &File{
		Name:        fileName("items_report", now, format),
		ContentType: format.ContentType(),
		Data:        data,
	}, nil
}
