package request

import (
	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/application/service"
	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/domain/enum"
	"github.com/shopspring/decimal"
)

// BulkPricingRequest is one quantity price break
type BulkPricingRequest struct {
	Quantity     int               `json:"quantity" binding:"required,min=1"`
	Pricing      decimal.Decimal   `json:"pricing"`
	DiscountType enum.DiscountType `json:"discount_type"`
}

// ProductRequest represents a product create or update request.
// Omitting bulk_pricing_tiers on update keeps the existing tiers; an empty
// list removes them.
type ProductRequest struct {
	Name                  string               `json:"name" binding:"required,min=1,max=255"`
	UPC                   string               `json:"upc" binding:"omitempty,max=500"`
	AdditionalDescription *string              `json:"additional_description"`
	ItemCost              decimal.Decimal      `json:"item_cost"`
	ChargedCost           decimal.Decimal      `json:"charged_cost"`
	CaseCost              decimal.Decimal      `json:"case_cost"`
	CostPerItem           decimal.Decimal      `json:"cost_per_item"`
	SalesTax              decimal.Decimal      `json:"sales_tax"`
	Taxable               bool                 `json:"taxable"`
	InStock               int                  `json:"in_stock"`
	VendorName            *string              `json:"vendor_name"`
	NumberInCase          int                  `json:"number_in_case" binding:"min=0"`
	QuickAdd              bool                 `json:"quick_add"`
	EnableStockAlert      bool                 `json:"enable_stock_alert"`
	StockAlertLimit       int                  `json:"stock_alert_limit" binding:"min=0"`
	AltUPC                *string              `json:"alt_upc" binding:"omitempty,max=500"`
	ImageURL              *string              `json:"image_url" binding:"omitempty,url"`
	CategoryID            *int64               `json:"category_id" binding:"omitempty,min=1"`
	Pack                  int                  `json:"pack" binding:"min=0"`
	IsManual              bool                 `json:"is_manual"`
	BulkPricingTiers      []BulkPricingRequest `json:"bulk_pricing_tiers" binding:"omitempty,dive"`
}

func (r *ProductRequest) ToInput() *service.ItemInput {
	in := &service.ItemInput{
		Name:                  r.Name,
		UPC:                   r.UPC,
		AdditionalDescription: r.AdditionalDescription,
		ItemCost:              r.ItemCost,
		ChargedCost:           r.ChargedCost,
		CaseCost:              r.CaseCost,
		CostPerItem:           r.CostPerItem,
		SalesTax:              r.SalesTax,
		Taxable:               r.Taxable,
		InStock:               r.InStock,
		VendorName:            r.VendorName,
		NumberInCase:          r.NumberInCase,
		QuickAdd:              r.QuickAdd,
		EnableStockAlert:      r.EnableStockAlert,
		StockAlertLimit:       r.StockAlertLimit,
		AltUPC:                r.AltUPC,
		ImageURL:              r.ImageURL,
		CategoryID:            r.CategoryID,
		Pack:                  r.Pack,
		IsManual:              r.IsManual,
	}
	if r.BulkPricingTiers != nil {
		in.BulkPricingTiers = make([]service.BulkPricingInput, 0, len(r.BulkPricingTiers))
		for _, t := range r.BulkPricingTiers {
			in.BulkPricingTiers = append(in.BulkPricingTiers, service.BulkPricingInput{
				Quantity:     t.Quantity,
				Pricing:      t.Pricing,
				DiscountType: t.DiscountType,
			})
		}
	}
	return in
}

// ProductFilterRequest represents product filter parameters
type ProductFilterRequest struct {
	Search     string `form:"search"`
	CategoryID int64  `form:"category_id"`
	LowStock   bool   `form:"low_stock"`
	SortBy     string `form:"sort_by"`
	SortOrder  string `form:"sort_order" binding:"omitempty,oneof=asc desc"`
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
}

// ReportFormatRequest is the ?format= query of file downloads
type ReportFormatRequest struct {
	Format string `form:"format" binding:"omitempty,oneof=pdf xlsx PDF XLSX"`
}
