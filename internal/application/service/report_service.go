package service

import (
	"context"
	"fmt"
	"time"

	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/domain/enum"
	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/domain/report"
	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/domain/repository"
	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/pkg/document"
	"golang.org/x/sync/errgroup"
)

// ReportService builds the flash and hourly sales reports
type ReportService struct {
	salesRepo  repository.SalesRepository
	loc        *time.Location
	now        func() time.Time
	newSurface SurfaceFactory
}

// NewReportService creates a new report service
func NewReportService(salesRepo repository.SalesRepository, loc *time.Location) *ReportService {
	return &ReportService{
		salesRepo:  salesRepo,
		loc:        loc,
		now:        time.Now,
		newSurface: PDFSurface,
	}
}

// FlashResult is a flash report together with the period it covers.
type FlashResult struct {
	Range   report.DateRange   `json:"range"`
	Report  report.FlashReport `json:"report"`
	HasData bool               `json:"has_data"`
}

// Flash runs the three flash report aggregates concurrently and combines them
func (s *ReportService) Flash(ctx context.Context, in RangeInput) (*FlashResult, error) {
	rng, err := resolveRange(s.now(), in, s.loc)
	if err != nil {
		return nil, err
	}
	fr, err := s.flash(ctx, rng)
	if err != nil {
		return nil, err
	}
	return &FlashResult{Range: rng, Report: fr, HasData: !fr.IsEmpty()}, nil
}

func (s *ReportService) flash(ctx context.Context, rng report.DateRange) (report.FlashReport, error) {
	var (
		metrics  report.FlashMetricsRow
		payments []report.PaymentRow
		tax      report.TaxSplitRow
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		metrics, err = s.salesRepo.FlashMetrics(gctx, rng)
		return err
	})
	g.Go(func() (err error) {
		payments, err = s.salesRepo.PaymentTotals(gctx, rng)
		return err
	})
	g.Go(func() (err error) {
		tax, err = s.salesRepo.TaxSplit(gctx, rng)
		return err
	})
	if err := g.Wait(); err != nil {
		return report.FlashReport{}, fmt.Errorf("flash report: %w", err)
	}

	return report.ComputeFlashReport(metrics, payments, tax), nil
}

// HourlyResult is the hourly report together with the period it covers.
type HourlyResult struct {
	Range   report.DateRange    `json:"range"`
	Buckets []report.HourBucket `json:"buckets"`
	HasData bool                `json:"has_data"`
}

// Hourly buckets sales by calendar hour with each hour's sold items
func (s *ReportService) Hourly(ctx context.Context, in RangeInput) (*HourlyResult, error) {
	rng, err := resolveRange(s.now(), in, s.loc)
	if err != nil {
		return nil, err
	}
	buckets, err := s.hourly(ctx, rng)
	if err != nil {
		return nil, err
	}
	return &HourlyResult{Range: rng, Buckets: buckets, HasData: len(buckets) > 0}, nil
}

func (s *ReportService) hourly(ctx context.Context, rng report.DateRange) ([]report.HourBucket, error) {
	var (
		summary []report.HourSummaryRow
		items   []report.HourItemRow
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		summary, err = s.salesRepo.HourlySummary(gctx, rng)
		return err
	})
	g.Go(func() (err error) {
		items, err = s.salesRepo.HourlyItems(gctx, rng)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("hourly report: %w", err)
	}

	return report.BucketHourly(summary, items), nil
}

// FlashPDF renders the flash report as a PDF
func (s *ReportService) FlashPDF(ctx context.Context, in RangeInput) (*File, error) {
	now := s.now()
	res, err := s.Flash(ctx, in)
	if err != nil {
		return nil, err
	}

	data, err := renderPDF(s.newSurface, flashReportLayout, "Flash Report", func(d *document.Document) error {
		drawFlashReport(d, res.Report, res.Range, now.In(s.loc))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("render flash report: %w", err)
	}
	return &File{
		Name:        fileName("flash_report", now, enum.ReportFormatPDF),
		ContentType: enum.ReportFormatPDF.ContentType(),
		Data:        data,
	}, nil
}

// HourlyPDF renders the hourly report as a PDF
func (s *ReportService) HourlyPDF(ctx context.Context, in RangeInput) (*File, error) {
	now := s.now()
	res, err := s.Hourly(ctx, in)
	if err != nil {
		return nil, err
	}

	data, err := renderPDF(s.newSurface, hourlyReportLayout, "Hourly Sales Report", func(d *document.Document) error {
		return drawHourlyReport(d, res.Buckets, res.Range, s.loc)
	})
	if err != nil {
		return nil, fmt.Errorf("render hourly report: %w", err)
	}
	return &File{
		Name:        fileName("hourly_report", now, enum.ReportFormatPDF),
		ContentType: enum.ReportFormatPDF.ContentType(),
		Data:        data,
	}, nil
}
