package service

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/domain/entity"
	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/domain/enum"
	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/domain/repository"
	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/pkg/apperror"
	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/pkg/document"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProductService(repo *fakeProductRepo) (*ProductService, *document.Recorder) {
	rec := document.NewRecorder()
	s := NewProductService(repo)
	s.now = fixedClock
	s.newSurface = recorderFactory(rec)
	return s, rec
}

func TestProductService_CreateProduct(t *testing.T) {
	repo := newFakeProductRepo()
	s, _ := newTestProductService(repo)

	item, err := s.CreateProduct(context.Background(), &ItemInput{
		Name:        "  Oat Milk ",
		UPC:         "0001",
		ChargedCost: decimal.RequireFromString("3.49"),
		BulkPricingTiers: []BulkPricingInput{
			{Quantity: 6, Pricing: decimal.RequireFromString("10"), DiscountType: enum.DiscountTypePercent},
		},
	}, "admin")
	require.NoError(t, err)

	assert.Equal(t, int64(1), item.ItemID)
	assert.Equal(t, "Oat Milk", item.Name)
	assert.True(t, item.IsActive)
	require.Len(t, item.BulkPricingTiers, 1)
	assert.Equal(t, 6, item.BulkPricingTiers[0].Quantity)
}

func TestProductService_CreateProduct_Validation(t *testing.T) {
	s, _ := newTestProductService(newFakeProductRepo())

	_, err := s.CreateProduct(context.Background(), &ItemInput{
		BulkPricingTiers: []BulkPricingInput{
			{Quantity: 0, Pricing: decimal.NewFromInt(1)},
			{Quantity: 2, Pricing: decimal.NewFromInt(150), DiscountType: enum.DiscountTypePercent},
		},
	}, "admin")
	require.Error(t, err)

	appErr := apperror.GetAppError(err)
	assert.Equal(t, http.StatusUnprocessableEntity, appErr.Code)
	fields := make([]string, 0, len(appErr.Errors))
	for _, fe := range appErr.Errors {
		fields = append(fields, fe.Field)
	}
	assert.Equal(t, []string{"name", "bulk_pricing_tiers[0].quantity", "bulk_pricing_tiers[1].pricing"}, fields)
}

func TestProductService_UpdateProduct_KeepsTiersWhenOmitted(t *testing.T) {
	repo := newFakeProductRepo()
	repo.items[5] = &entity.Item{
		ItemID:           5,
		Name:             "Tea",
		IsActive:         true,
		BulkPricingTiers: []entity.BulkPricing{{ItemID: 5, Quantity: 3, Pricing: decimal.NewFromInt(2)}},
	}
	s, _ := newTestProductService(repo)

	item, err := s.UpdateProduct(context.Background(), 5, &ItemInput{Name: "Green Tea"}, "manager")
	require.NoError(t, err)

	assert.Equal(t, "Green Tea", item.Name)
	assert.Nil(t, repo.savedTiers)
	assert.Len(t, item.BulkPricingTiers, 1)
	require.NotNil(t, item.UpdatedBy)
	assert.Equal(t, "manager", *item.UpdatedBy)
	require.NotNil(t, item.UpdatedAt)
	assert.Equal(t, fixedNow, *item.UpdatedAt)
}

func TestProductService_UpdateProduct_ReplacesTiers(t *testing.T) {
	repo := newFakeProductRepo()
	repo.items[5] = &entity.Item{ItemID: 5, Name: "Tea"}
	s, _ := newTestProductService(repo)

	_, err := s.UpdateProduct(context.Background(), 5, &ItemInput{Name: "Tea", BulkPricingTiers: []BulkPricingInput{}}, "manager")
	require.NoError(t, err)
	require.NotNil(t, repo.savedTiers)
	assert.Empty(t, repo.savedTiers)
}

func TestProductService_NotFound(t *testing.T) {
	s, _ := newTestProductService(newFakeProductRepo())
	ctx := context.Background()

	_, err := s.GetProduct(ctx, 99)
	assert.Equal(t, http.StatusNotFound, apperror.GetAppError(err).Code)

	_, err = s.UpdateProduct(ctx, 99, &ItemInput{Name: "x"}, "admin")
	assert.Equal(t, http.StatusNotFound, apperror.GetAppError(err).Code)

	err = s.DeleteProduct(ctx, 99)
	assert.Equal(t, http.StatusNotFound, apperror.GetAppError(err).Code)
}

func TestProductService_GetProduct_EmptyTiersSlice(t *testing.T) {
	repo := newFakeProductRepo()
	repo.items[1] = &entity.Item{ItemID: 1, Name: "Soap"}
	s, _ := newTestProductService(repo)

	item, err := s.GetProduct(context.Background(), 1)
	require.NoError(t, err)
	assert.NotNil(t, item.BulkPricingTiers)
}

func TestProductService_ListProducts(t *testing.T) {
	repo := newFakeProductRepo()
	repo.items[1] = &entity.Item{ItemID: 1, Name: "Soap"}
	repo.items[2] = &entity.Item{ItemID: 2, Name: "Salt"}
	s, _ := newTestProductService(repo)

	got, err := s.ListProducts(context.Background(), &repository.ProductFilterParams{Search: "s"})
	require.NoError(t, err)

	assert.Len(t, got.Items, 2)
	assert.Equal(t, int64(2), got.Pagination.Total)
	require.NotNil(t, repo.listParams.Pagination)
	assert.Equal(t, 1, repo.listParams.Pagination.Page)
}

func TestProductService_ItemsReport(t *testing.T) {
	repo := newFakeProductRepo()
	repo.reportRows = []repository.ItemReportRow{
		{ItemID: 1, Name: "Very long product name that needs to wrap inside its narrow column", UPC: "123", InStock: 4},
	}
	s, rec := newTestProductService(repo)

	file, err := s.ItemsReport(context.Background(), enum.ReportFormatPDF)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(file.Name, "items_report_"))
	assert.Equal(t, "application/pdf", file.ContentType)
	texts := rec.Texts(1)
	assert.Equal(t, "Items Report", texts[0])
	assert.Contains(t, texts, "Category")
}

func TestProductService_ItemsReport_XLSX(t *testing.T) {
	s, _ := newTestProductService(newFakeProductRepo())

	file, err := s.ItemsReport(context.Background(), enum.ReportFormatXLSX)
	require.NoError(t, err)
	assert.Equal(t, "items_report_1710513000000.xlsx", file.Name)
	assert.Equal(t, []byte("PK"), file.Data[:2])
}
