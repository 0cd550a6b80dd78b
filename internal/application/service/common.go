package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/domain/enum"
	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/domain/report"
	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/pkg/apperror"
	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/pkg/document"
)

// File is a generated download.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// SurfaceFactory creates the drawing surface for a new document.
type SurfaceFactory func(layout document.Layout, title string) document.Surface

// PDFSurface renders with gofpdf.
func PDFSurface(layout document.Layout, title string) document.Surface {
	return document.NewPDF(layout, title)
}

// RangeInput is the date filter accepted by every report.
type RangeInput struct {
	FromDate   string
	ToDate     string
	ReportType string
}

// resolveRange maps a request filter to a concrete range, turning parse
// failures into validation errors.
func resolveRange(now time.Time, in RangeInput, loc *time.Location) (report.DateRange, error) {
	r, err := report.ResolveDateRange(now, in.FromDate, in.ToDate, in.ReportType, loc)
	if errors.Is(err, report.ErrInvalidDateRange) {
		return r, apperror.NewFieldError("from_date", err.Error())
	}
	return r, err
}

func fileName(prefix string, now time.Time, format enum.ReportFormat) string {
	return fmt.Sprintf("%s_%d.%s", prefix, now.UnixMilli(), format.Extension())
}

// renderPDF lays out a document and serializes it.
func renderPDF(newSurface SurfaceFactory, layout document.Layout, title string, draw func(d *document.Document) error) ([]byte, error) {
	d := document.New(newSurface(layout, title), layout)
	if err := draw(d); err != nil {
		return nil, err
	}
	return d.Bytes()
}
