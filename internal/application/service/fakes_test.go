package service

import (
	"context"
	"sync"
	"time"

	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/domain/entity"
	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/domain/report"
	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/domain/repository"
	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/pkg/document"
	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/pkg/printer"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var fixedNow = time.Date(2024, time.March, 15, 14, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func strPtr(s string) *string { return &s }

func i64Ptr(v int64) *int64 { return &v }

func nd(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(s))
}

// recorderFactory hands out one Recorder so tests can inspect what was drawn.
func recorderFactory(rec *document.Recorder) SurfaceFactory {
	return func(document.Layout, string) document.Surface { return rec }
}

type fakeSalesRepo struct {
	mu sync.Mutex

	totals        map[time.Time]decimal.Decimal
	historyRows   []report.InvoiceRow
	historyFilter *repository.SalesHistoryFilter
	reportRows    []report.InvoiceRow
	reportRange   *report.DateRange
	salesTax      decimal.Decimal
	company       *entity.Company
	metrics       report.FlashMetricsRow
	payments      []report.PaymentRow
	taxSplit      report.TaxSplitRow
	hourSummary   []report.HourSummaryRow
	hourItems     []report.HourItemRow
	itemSales     []report.ItemSaleRow
	itemFilter    *repository.ItemSalesFilter
	invoices      map[string]*entity.InvoiceHeader
	err           error
}

func (f *fakeSalesRepo) SalesTotal(_ context.Context, r report.DateRange) (decimal.Decimal, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.totals[r.From], f.err
}

func (f *fakeSalesRepo) History(_ context.Context, filter repository.SalesHistoryFilter) ([]report.InvoiceRow, error) {
	f.historyFilter = &filter
	return f.historyRows, f.err
}

func (f *fakeSalesRepo) ReportRows(_ context.Context, r report.DateRange) ([]report.InvoiceRow, error) {
	f.reportRange = &r
	return f.reportRows, f.err
}

func (f *fakeSalesRepo) ActiveSalesTax(context.Context) (decimal.Decimal, error) {
	return f.salesTax, f.err
}

func (f *fakeSalesRepo) Company(context.Context) (*entity.Company, error) {
	return f.company, f.err
}

func (f *fakeSalesRepo) FlashMetrics(context.Context, report.DateRange) (report.FlashMetricsRow, error) {
	return f.metrics, f.err
}

func (f *fakeSalesRepo) PaymentTotals(context.Context, report.DateRange) ([]report.PaymentRow, error) {
	return f.payments, f.err
}

func (f *fakeSalesRepo) TaxSplit(context.Context, report.DateRange) (report.TaxSplitRow, error) {
	return f.taxSplit, f.err
}

func (f *fakeSalesRepo) HourlySummary(context.Context, report.DateRange) ([]report.HourSummaryRow, error) {
	return f.hourSummary, f.err
}

func (f *fakeSalesRepo) HourlyItems(context.Context, report.DateRange) ([]report.HourItemRow, error) {
	return f.hourItems, f.err
}

func (f *fakeSalesRepo) ItemSales(_ context.Context, filter repository.ItemSalesFilter) ([]report.ItemSaleRow, error) {
	f.itemFilter = &filter
	return f.itemSales, f.err
}

func (f *fakeSalesRepo) InvoiceByCode(_ context.Context, code string) (*entity.InvoiceHeader, error) {
	return f.invoices[code], f.err
}

type fakeInventoryRepo struct {
	lowStock      []repository.LowStockItem
	dropped       []repository.DroppedItem
	count         int64
	salesTrail    []repository.SalesTrailRow
	qtyTrail      []repository.QuantityTrailRow
	priceTrail    []repository.PriceTrailRow
	lastFilter    *repository.TrackingFilter
	voidResult    repository.VoidResult
	voidCalls     int
	procedureUsed string
	voidedAt      time.Time
	err           error
}

func (f *fakeInventoryRepo) LowStock(context.Context) ([]repository.LowStockItem, error) {
	return f.lowStock, f.err
}

func (f *fakeInventoryRepo) DroppedItems(context.Context) ([]repository.DroppedItem, error) {
	return f.dropped, f.err
}

func (f *fakeInventoryRepo) ActiveCount(context.Context) (int64, error) {
	return f.count, f.err
}

func (f *fakeInventoryRepo) SalesTrail(_ context.Context, filter repository.TrackingFilter) ([]repository.SalesTrailRow, error) {
	f.lastFilter = &filter
	return f.salesTrail, f.err
}

func (f *fakeInventoryRepo) QuantityTrail(_ context.Context, filter repository.TrackingFilter) ([]repository.QuantityTrailRow, error) {
	f.lastFilter = &filter
	return f.qtyTrail, f.err
}

func (f *fakeInventoryRepo) PriceTrail(_ context.Context, filter repository.TrackingFilter) ([]repository.PriceTrailRow, error) {
	f.lastFilter = &filter
	return f.priceTrail, f.err
}

func (f *fakeInventoryRepo) VoidInvoice(_ context.Context, _, _ string, at time.Time) (repository.VoidResult, error) {
	f.voidCalls++
	f.voidedAt = at
	return f.voidResult, f.err
}

func (f *fakeInventoryRepo) VoidInvoiceWithProcedure(_ context.Context, procedure, _, _ string) (repository.VoidResult, error) {
	f.voidCalls++
	f.procedureUsed = procedure
	return f.voidResult, f.err
}

type fakeProductRepo struct {
	items      map[int64]*entity.Item
	nextID     int64
	savedTiers []entity.BulkPricing
	listParams *repository.ProductFilterParams
	reportRows []repository.ItemReportRow
	err        error
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{items: map[int64]*entity.Item{}, nextID: 1}
}

func (f *fakeProductRepo) Create(_ context.Context, item *entity.Item) error {
	if f.err != nil {
		return f.err
	}
	item.ItemID = f.nextID
	f.nextID++
	f.items[item.ItemID] = item
	return nil
}

func (f *fakeProductRepo) Update(_ context.Context, item *entity.Item, tiers []entity.BulkPricing) error {
	if f.err != nil {
		return f.err
	}
	if tiers != nil {
		item.BulkPricingTiers = tiers
	}
	f.savedTiers = tiers
	f.items[item.ItemID] = item
	return nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, id int64) (*entity.Item, error) {
	if f.err != nil {
		return nil, f.err
	}
	item, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	cp := *item
	return &cp, nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id int64) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	_, ok := f.items[id]
	delete(f.items, id)
	return ok, nil
}

func (f *fakeProductRepo) List(_ context.Context, params *repository.ProductFilterParams) ([]entity.Item, int64, error) {
	f.listParams = params
	out := make([]entity.Item, 0, len(f.items))
	for _, it := range f.items {
		out = append(out, *it)
	}
	return out, int64(len(out)), f.err
}

func (f *fakeProductRepo) Names(context.Context) ([]repository.ItemName, error) {
	return nil, f.err
}

func (f *fakeProductRepo) ReportRows(context.Context) ([]repository.ItemReportRow, error) {
	return f.reportRows, f.err
}

func (f *fakeProductRepo) Categories(context.Context) ([]entity.Category, error) {
	return nil, f.err
}

func (f *fakeProductRepo) CategoryItems(context.Context, int64) ([]repository.ItemName, error) {
	return nil, f.err
}

type fakeUserRepo struct {
	users   map[string]*entity.User
	touched map[uuid.UUID]time.Time
}

func (f *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	return f.users[username], nil
}

func (f *fakeUserRepo) TouchLastLogin(_ context.Context, id uuid.UUID, at time.Time) error {
	if f.touched == nil {
		f.touched = map[uuid.UUID]time.Time{}
	}
	f.touched[id] = at
	return nil
}

type fakePrinter struct {
	kind    printer.Kind
	printed [][]byte
	err     error
}

func (p *fakePrinter) Print(_ context.Context, data []byte) error {
	if p.err != nil {
		return p.err
	}
	p.printed = append(p.printed, data)
	return nil
}

func (p *fakePrinter) Ready(context.Context) bool { return p.err == nil }

func (p *fakePrinter) Kind() printer.Kind { return p.kind }
