package service

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/domain/entity"
	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/domain/report"
	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/pkg/apperror"
	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/pkg/document"
	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/pkg/printer"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPrinterService(p *fakePrinter, repo *fakeSalesRepo) *PrinterService {
	reports, _ := newTestReportService(repo)
	s := NewPrinterService(p, repo, reports, "Corner Store", "Thanks!", time.UTC)
	s.now = fixedClock
	return s
}

func storedInvoice() *entity.InvoiceHeader {
	return &entity.InvoiceHeader{
		InvoiceID:       3,
		InvoiceCode:     "INV-3",
		CreatedDateTime: time.Date(2024, time.March, 15, 9, 5, 0, 0, time.UTC),
		PaymentType:     "Cash",
		SubTotal:        decimal.RequireFromString("7.00"),
		TotalTax:        decimal.RequireFromString("0.56"),
		GrandTotal:      decimal.RequireFromString("7.56"),
		ChangeAmount:    decimal.RequireFromString("2.44"),
		UserName:        "jane",
		Lines: []entity.InvoiceLine{
			{ItemName: "Coffee", Price: decimal.RequireFromString("2.50"), Quantity: 2},
			{ItemName: "Bagel", Price: decimal.RequireFromString("2.00"), Quantity: 1, Total: decimal.RequireFromString("2.00")},
		},
	}
}

func TestPrinterService_PrintInvoice(t *testing.T) {
	p := &fakePrinter{kind: printer.KindNetwork}
	repo := &fakeSalesRepo{
		invoices: map[string]*entity.InvoiceHeader{"INV-3": storedInvoice()},
		company:  &entity.Company{Name: "Main Street Market", Phone: strPtr("555-0100")},
	}
	s := newTestPrinterService(p, repo)

	receipt, err := s.PrintInvoice(context.Background(), "INV-3")
	require.NoError(t, err)

	assert.Equal(t, "Main Street Market", receipt.Header.StoreName)
	assert.Equal(t, "2024-03-15 09:05", receipt.Date)
	require.Len(t, receipt.Items, 2)
	assert.Equal(t, "5", receipt.Items[0].Total.String())

	require.Len(t, p.printed, 1)
	out := p.printed[0]
	assert.True(t, bytes.Contains(out, []byte("Main Street Market")))
	assert.True(t, bytes.Contains(out, []byte("2x Coffee")))
	assert.True(t, bytes.Contains(out, []byte("$7.56")))
	assert.True(t, bytes.Contains(out, []byte("Thanks!")))
}

func TestPrinterService_PrintInvoice_NotFound(t *testing.T) {
	p := &fakePrinter{kind: printer.KindUSB}
	s := newTestPrinterService(p, &fakeSalesRepo{})

	_, err := s.PrintInvoice(context.Background(), "missing")
	assert.Equal(t, http.StatusNotFound, apperror.GetAppError(err).Code)
	assert.Empty(t, p.printed)
}

func TestPrinterService_PrinterFailure(t *testing.T) {
	p := &fakePrinter{kind: printer.KindUSB, err: errors.New("device busy")}
	s := newTestPrinterService(p, &fakeSalesRepo{})

	receipt, err := s.TestPrint(context.Background())
	assert.Equal(t, apperror.ErrPrinterUnavailable, apperror.GetAppError(err))
	assert.NotNil(t, receipt)
}

func TestPrinterService_PrintFlashReport(t *testing.T) {
	p := &fakePrinter{kind: printer.KindNetwork}
	repo := &fakeSalesRepo{
		metrics:  report.FlashMetricsRow{GrossSales: nd("20.00"), Transactions: i64Ptr(2)},
		payments: []report.PaymentRow{{PaymentType: strPtr("Card"), Total: nd("20.00")}},
	}
	s := newTestPrinterService(p, repo)

	res, err := s.PrintFlashReport(context.Background(), RangeInput{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.Report.Metrics.Transactions)

	require.Len(t, p.printed, 1)
	assert.True(t, bytes.Contains(p.printed[0], []byte("FLASH REPORT")))
	assert.True(t, bytes.Contains(p.printed[0], []byte("$10.00")))
}

func TestPrinterService_GetStatus(t *testing.T) {
	s := newTestPrinterService(&fakePrinter{kind: printer.KindNone}, &fakeSalesRepo{})

	status := s.GetStatus(context.Background())
	assert.False(t, status.Configured)
	assert.Equal(t, "none", status.Type)
}

func TestFormatReceipt_Voided(t *testing.T) {
	out := FormatReceipt(&entity.Receipt{Header: entity.ReceiptHeader{StoreName: "S"}, InvoiceNo: "X", Voided: true}, printer.Width58mm)
	assert.True(t, bytes.Contains(out, []byte("*** VOID ***")))
}

func TestFormatFlashSlip_NoPayments(t *testing.T) {
	rng := report.DateRange{From: fixedNow.Add(-time.Hour), To: fixedNow}
	out := FormatFlashSlip("", report.FlashReport{}, rng, fixedNow, printer.Width80mm)
	assert.True(t, bytes.Contains(out, []byte("No payments recorded")))
	assert.True(t, bytes.Contains(out, []byte("2024-03-15")))
	assert.True(t, bytes.Contains(out, []byte("Cash in Drawer:")))
}

func TestFormatFlashSlip_CashInDrawer(t *testing.T) {
	rng := report.DateRange{From: fixedNow.Add(-time.Hour), To: fixedNow}
	fr := report.FlashReport{Payments: []report.PaymentTotal{
		{PaymentType: "Card", Total: decimal.RequireFromString("30.00")},
		{PaymentType: "CASH", Total: decimal.RequireFromString("80.25")},
	}}
	out := FormatFlashSlip("", fr, rng, fixedNow, printer.Width80mm)
	assert.True(t, bytes.Contains(out, []byte("Cash in Drawer:")))
	assert.True(t, bytes.Contains(out, []byte(document.Money(decimal.RequireFromString("80.25")))))
}
