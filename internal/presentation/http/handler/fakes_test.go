package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/application/service"
	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/domain/entity"
	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/domain/enum"
	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/domain/report"
	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/domain/repository"
	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"errors"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return env
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// signedIn stands in for the auth middleware.
func signedIn(username string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ContextUserID, uuid.MustParse("11111111-1111-1111-1111-111111111111"))
		c.Set(ContextUsername, username)
		c.Set(ContextRole, "Manager")
		c.Next()
	}
}

type fakeAuthService struct {
	input  *service.LoginInput
	output *service.LoginOutput
	err    error
}

func (f *fakeAuthService) Login(_ context.Context, in *service.LoginInput) (*service.LoginOutput, error) {
	f.input = in
	return f.output, f.err
}

func (f *fakeAuthService) GetProfile(_ context.Context, id uuid.UUID) (*entity.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &entity.User{ID: id, Username: "manager1", Role: "Manager", IsActive: true}, nil
}

type fakeSalesService struct {
	history   service.HistoryInput
	download  service.DownloadInput
	itemInput service.ItemHistoryInput
	invoices  []report.GroupedInvoice
	file      *service.File
	err       error
}

func (f *fakeSalesService) TodayYesterday(context.Context) (*service.TodayYesterdaySales, error) {
	return &service.TodayYesterdaySales{}, f.err
}

func (f *fakeSalesService) History(_ context.Context, in service.HistoryInput) ([]report.GroupedInvoice, error) {
	f.history = in
	return f.invoices, f.err
}

func (f *fakeSalesService) Download(_ context.Context, in service.DownloadInput) (*service.File, error) {
	f.download = in
	return f.file, f.err
}

func (f *fakeSalesService) ActiveSalesTax(context.Context) (decimal.Decimal, error) {
	return decimal.RequireFromString("8.25"), f.err
}

func (f *fakeSalesService) PerItemHistory(_ context.Context, in service.ItemHistoryInput) (*report.ItemHistory, error) {
	f.itemInput = in
	return &report.ItemHistory{}, f.err
}

type fakeReportService struct {
	in     service.RangeInput
	flash  *service.FlashResult
	hourly *service.HourlyResult
	file   *service.File
	err    error
}

func (f *fakeReportService) Flash(_ context.Context, in service.RangeInput) (*service.FlashResult, error) {
	f.in = in
	if f.err != nil {
		return nil, f.err
	}
	if f.flash != nil {
		return f.flash, nil
	}
	return &service.FlashResult{}, nil
}

func (f *fakeReportService) Hourly(_ context.Context, in service.RangeInput) (*service.HourlyResult, error) {
	f.in = in
	if f.err != nil {
		return nil, f.err
	}
	if f.hourly != nil {
		return f.hourly, nil
	}
	return &service.HourlyResult{}, nil
}

func (f *fakeReportService) FlashPDF(_ context.Context, in service.RangeInput) (*service.File, error) {
	f.in = in
	return f.file, f.err
}

func (f *fakeReportService) HourlyPDF(_ context.Context, in service.RangeInput) (*service.File, error) {
	f.in = in
	return f.file, f.err
}

type fakeInventoryService struct {
	tracking  service.TrackingInput
	voidCode  string
	voidedBy  string
	voidCalls int
	err       error
}

func (f *fakeInventoryService) LowStock(context.Context) ([]repository.LowStockItem, error) {
	return nil, f.err
}

func (f *fakeInventoryService) DroppedItems(context.Context) ([]repository.DroppedItem, error) {
	return nil, f.err
}

func (f *fakeInventoryService) TotalCount(context.Context) (int64, error) {
	return 42, f.err
}

func (f *fakeInventoryService) Tracking(_ context.Context, in service.TrackingInput) (*service.TrackingResult, error) {
	f.tracking = in
	if f.err != nil {
		return nil, f.err
	}
	return &service.TrackingResult{Type: enum.TrackingTypeQuantity, Rows: []string{}}, nil
}

func (f *fakeInventoryService) VoidInvoice(_ context.Context, code, voidedBy string) (*service.VoidResult, error) {
	f.voidCalls++
	f.voidCode, f.voidedBy = code, voidedBy
	if f.err != nil {
		return nil, f.err
	}
	return &service.VoidResult{InvoiceCode: code, VoidedBy: voidedBy, ItemsDropped: 3}, nil
}

type fakeProductService struct {
	created   *service.ItemInput
	createdBy string
	listed    *repository.ProductFilterParams
	format    enum.ReportFormat
	err       error
}

func (f *fakeProductService) ListProducts(_ context.Context, p *repository.ProductFilterParams) (*pagination.PaginatedResult[entity.Item], error) {
	f.listed = p
	if f.err != nil {
		return nil, f.err
	}
	return pagination.NewPaginatedResult([]entity.Item{{ItemID: 1, Name: "Cola"}}, pagination.NewPagination(p.Pagination.Page, p.Pagination.PerPage, 1)), nil
}

func (f *fakeProductService) GetProduct(_ context.Context, id int64) (*entity.Item, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &entity.Item{ItemID: id, Name: "Cola"}, nil
}

func (f *fakeProductService) CreateProduct(_ context.Context, in *service.ItemInput, by string) (*entity.Item, error) {
	f.created, f.createdBy = in, by
	if f.err != nil {
		return nil, f.err
	}
	return &entity.Item{ItemID: 9, Name: in.Name}, nil
}

func (f *fakeProductService) UpdateProduct(_ context.Context, id int64, in *service.ItemInput, _ string) (*entity.Item, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &entity.Item{ItemID: id, Name: in.Name}, nil
}

func (f *fakeProductService) DeleteProduct(context.Context, int64) error {
	return f.err
}

func (f *fakeProductService) ProductNames(context.Context) ([]repository.ItemName, error) {
	return nil, f.err
}

func (f *fakeProductService) Categories(context.Context) ([]entity.Category, error) {
	return nil, f.err
}

func (f *fakeProductService) CategoryProducts(context.Context, int64) ([]repository.ItemName, error) {
	return nil, f.err
}

func (f *fakeProductService) ItemsReport(_ context.Context, format enum.ReportFormat) (*service.File, error) {
	f.format = format
	if f.err != nil {
		return nil, f.err
	}
	return &service.File{Name: "items_report_1." + string(format), ContentType: format.ContentType(), Data: []byte("data")}, nil
}

type fakePrinterService struct {
	receipt *entity.Receipt
	flash   *service.FlashResult
	err     error
}

func (f *fakePrinterService) GetStatus(context.Context) *service.PrinterStatus {
	return &service.PrinterStatus{Configured: true, Connected: f.err == nil, Type: "network"}
}

func (f *fakePrinterService) TestPrint(context.Context) (*entity.Receipt, error) {
	return f.receipt, f.err
}

func (f *fakePrinterService) PrintInvoice(context.Context, string) (*entity.Receipt, error) {
	return f.receipt, f.err
}

func (f *fakePrinterService) PrintFlashReport(context.Context, service.RangeInput) (*service.FlashResult, error) {
	return f.flash, f.err
}
