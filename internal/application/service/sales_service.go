package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/domain/enum"
	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/domain/report"
	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/domain/repository"
	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/pkg/apperror"
	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/pkg/document"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// SalesService serves sales history, totals and the sales report download
type SalesService struct {
	salesRepo  repository.SalesRepository
	loc        *time.Location
	now        func() time.Time
	newSurface SurfaceFactory
}

// NewSalesService creates a new sales service
func NewSalesService(salesRepo repository.SalesRepository, loc *time.Location) *SalesService {
	return &SalesService{
		salesRepo:  salesRepo,
		loc:        loc,
		now:        time.Now,
		newSurface: PDFSurface,
	}
}

// TodayYesterdaySales compares the non-voided totals of the two days.
type TodayYesterdaySales struct {
	TodaySales     decimal.Decimal `json:"today_sales"`
	YesterdaySales decimal.Decimal `json:"yesterday_sales"`
}

// TodayYesterday returns today's sales so far and yesterday's full-day sales
func (s *SalesService) TodayYesterday(ctx context.Context) (*TodayYesterdaySales, error) {
	today, yesterday := report.TodayAndYesterday(s.now(), s.loc)
	out := &TodayYesterdaySales{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		total, err := s.salesRepo.SalesTotal(gctx, today)
		out.TodaySales = total
		return err
	})
	g.Go(func() error {
		total, err := s.salesRepo.SalesTotal(gctx, yesterday)
		out.YesterdaySales = total
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("sales totals: %w", err)
	}
	return out, nil
}

// HistoryInput filters the sales history listing
type HistoryInput struct {
	RangeInput
	PaymentType string
	InvoiceCode string
	Search      string
}

// History returns invoices with their nested lines, newest first
func (s *SalesService) History(ctx context.Context, in HistoryInput) ([]report.GroupedInvoice, error) {
	filter := repository.SalesHistoryFilter{
		PaymentType: strings.TrimSpace(in.PaymentType),
		InvoiceCode: strings.TrimSpace(in.InvoiceCode),
		Search:      strings.TrimSpace(in.Search),
	}
	// an invoice code lookup spans all dates unless a range is given
	if filter.InvoiceCode == "" || in.FromDate != "" || in.ToDate != "" || in.ReportType != "" {
		rng, err := resolveRange(s.now(), in.RangeInput, s.loc)
		if err != nil {
			return nil, err
		}
		filter.Range = &rng
	}

	rows, err := s.salesRepo.History(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("sales history: %w", err)
	}
	return report.GroupInvoiceRows(rows), nil
}

// DownloadInput selects the period and file type of the sales report
type DownloadInput struct {
	RangeInput
	Format enum.ReportFormat
}

// Download renders the sales report for the resolved period. An empty period
// still produces a document with a "No records found" row.
func (s *SalesService) Download(ctx context.Context, in DownloadInput) (*File, error) {
	now := s.now()
	rng, err := resolveRange(now, in.RangeInput, s.loc)
	if err != nil {
		return nil, err
	}

	rows, err := s.salesRepo.ReportRows(ctx, rng)
	if err != nil {
		return nil, fmt.Errorf("sales report rows: %w", err)
	}
	invoices := report.Invoices(report.GroupInvoiceRows(rows))

	format := in.Format
	if format == "" {
		format = enum.ReportFormatPDF
	}
	spec := salesTableSpec(s.loc)

	var data []byte
	if format == enum.ReportFormatXLSX {
		data, err = document.WriteXLSX("Sales", spec, invoices)
	} else {
		data, err = renderPDF(s.newSurface, salesReportLayout, "Sales Report", func(d *document.Document) error {
			return drawSalesReport(d, spec, invoices, rng)
		})
	}
	if err != nil {
		return nil, fmt.Errorf("render sales report: %w", err)
	}

	return &File{
		Name:        fileName("sales_report", now, format),
		ContentType: format.ContentType(),
		Data:        data,
	}, nil
}

// ActiveSalesTax returns the store's configured sales tax rate
func (s *SalesService) ActiveSalesTax(ctx context.Context) (decimal.Decimal, error) {
	rate, err := s.salesRepo.ActiveSalesTax(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("active sales tax: %w", err)
	}
	return rate, nil
}

// ItemHistoryInput selects one item's sales
type ItemHistoryInput struct {
	ItemID      int64
	FromDate    string
	ToDate      string
	InvoiceCode string
}

// PerItemHistory lists the sales lines of an item with running totals. With
// no dates the whole history is returned.
func (s *SalesService) PerItemHistory(ctx context.Context, in ItemHistoryInput) (*report.ItemHistory, error) {
	if in.ItemID <= 0 {
		return nil, apperror.NewFieldError("item_id", "item_id is required")
	}
	filter := repository.ItemSalesFilter{
		ItemID:      in.ItemID,
		InvoiceCode: strings.TrimSpace(in.InvoiceCode),
	}
	if in.FromDate != "" || in.ToDate != "" {
		rng, err := resolveRange(s.now(), RangeInput{FromDate: in.FromDate, ToDate: in.ToDate}, s.loc)
		if err != nil {
			return nil, err
		}
		filter.Range = &rng
	}

	rows, err := s.salesRepo.ItemSales(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("item sales: %w", err)
	}
	history := report.SummarizeItemSales(rows)
	return &history, nil
}
