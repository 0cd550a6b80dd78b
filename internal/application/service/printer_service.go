package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/domain/entity"
	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/domain/report"
	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/domain/repository"
	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/pkg/apperror"
	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/pkg/document"
	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/pkg/printer"
	"github.com/shopspring/decimal"
)

const receiptDateLayout = "2006-01-02 15:04"

// PrinterService handles receipt formatting and thermal printing.
type PrinterService struct {
	printer   printer.Printer
	salesRepo repository.SalesRepository
	reports   *ReportService
	storeName string
	footer    string
	width     int
	loc       *time.Location
	now       func() time.Time
}

// NewPrinterService creates a new printer service.
func NewPrinterService(
	p printer.Printer,
	salesRepo repository.SalesRepository,
	reports *ReportService,
	storeName, footer string,
	loc *time.Location,
) *PrinterService {
	return &PrinterService{
		printer:   p,
		salesRepo: salesRepo,
		reports:   reports,
		storeName: storeName,
		footer:    footer,
		width:     printer.Width58mm,
		loc:       loc,
		now:       time.Now,
	}
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetStatus returns printer connection status.
func (s *PrinterService) GetStatus(ctx context.Context) *PrinterStatus {
	kind := s.printer.Kind()
	return &PrinterStatus{
		Configured: kind != printer.KindNone,
		Connected:  s.printer.Ready(ctx),
		Type:       string(kind),
	}
}

func (s *PrinterService) send(ctx context.Context, what string, data []byte) error {
	if err := s.printer.Print(ctx, data); err != nil {
		log.Printf("Printer error (%s): %v", what, err)
		return apperror.ErrPrinterUnavailable
	}
	return nil
}

// TestPrint sends a test slip to the printer and returns what was printed.
func (s *PrinterService) TestPrint(ctx context.Context) (*entity.Receipt, error) {
	two := decimal.NewFromInt(2)
	price := decimal.RequireFromString("1.50")
	receipt := &entity.Receipt{
		Header:    entity.ReceiptHeader{StoreName: "PRINTER TEST"},
		InvoiceNo: "TEST-001",
		Date:      s.now().In(s.loc).Format(receiptDateLayout),
		Cashier:   "System",
		Items: []entity.ReceiptItem{
			{Name: "Test Item", Quantity: 2, UnitPrice: price, Total: price.Mul(two)},
		},
		SubTotal: price.Mul(two),
		Total:    price.Mul(two),
		Footer:   s.footer,
	}

	if err := s.send(ctx, "test", FormatReceipt(receipt, s.width)); err != nil {
		return receipt, err
	}
	return receipt, nil
}

// PrintInvoice reprints a stored invoice. Voided invoices print with a VOID banner.
func (s *PrinterService) PrintInvoice(ctx context.Context, code string) (*entity.Receipt, error) {
	inv, err := s.salesRepo.InvoiceByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("load invoice %s: %w", code, err)
	}
	if inv == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	company, err := s.salesRepo.Company(ctx)
	if err != nil {
		return nil, fmt.Errorf("load company: %w", err)
	}

	receipt := s.receipt(inv, company)
	if err := s.send(ctx, "invoice "+code, FormatReceipt(receipt, s.width)); err != nil {
		return receipt, err
	}
	return receipt, nil
}

func (s *PrinterService) receipt(inv *entity.InvoiceHeader, company *entity.Company) *entity.Receipt {
	header := entity.ReceiptHeader{StoreName: s.storeName}
	if company != nil {
		if company.Name != "" {
			header.StoreName = company.Name
		}
		header.Address = deref(company.Address)
		header.Phone = deref(company.Phone)
		header.TaxID = deref(company.TaxID)
	}

	r := &entity.Receipt{
		Header:      header,
		InvoiceNo:   inv.InvoiceCode,
		Date:        inv.CreatedDateTime.In(s.loc).Format(receiptDateLayout),
		Cashier:     inv.UserName,
		PaymentType: inv.PaymentType,
		Voided:      inv.IsVoided,
		Items:       make([]entity.ReceiptItem, 0, len(inv.Lines)),
		SubTotal:    inv.SubTotal,
		Tax:         inv.TotalTax,
		Discount:    inv.CoinsDiscount,
		Total:       inv.GrandTotal,
		Change:      inv.ChangeAmount,
		Footer:      s.footer,
	}
	for _, l := range inv.Lines {
		total := l.Total
		if total.IsZero() {
			total = l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
		}
		r.Items = append(r.Items, entity.ReceiptItem{
			Name:      l.ItemName,
			Quantity:  l.Quantity,
			UnitPrice: l.Price,
			Total:     total,
		})
	}
	return r
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// PrintFlashReport prints the flash report of a range on the thermal printer.
func (s *PrinterService) PrintFlashReport(ctx context.Context, in RangeInput) (*FlashResult, error) {
	res, err := s.reports.Flash(ctx, in)
	if err != nil {
		return nil, err
	}
	data := FormatFlashSlip(s.storeName, res.Report, res.Range, s.now().In(s.loc), s.width)
	if err := s.send(ctx, "flash report", data); err != nil {
		return res, err
	}
	return res, nil
}

// FormatReceipt converts a Receipt into ESC/POS bytes.
func FormatReceipt(r *entity.Receipt, width int) []byte {
	slip := printer.NewSlip(width)

	slip.Title(r.Header.StoreName)
	if r.Header.Address != "" {
		slip.Text(r.Header.Address)
	}
	if r.Header.Phone != "" {
		slip.Text(r.Header.Phone)
	}
	if r.Header.TaxID != "" {
		slip.TextF("Tax ID: %s", r.Header.TaxID)
	}
	if r.Voided {
		slip.SetBold(true).Text("*** VOID ***").SetBold(false)
	}

	slip.SetAlign(printer.AlignLeft).
		Separator('-').
		KeyValue("Invoice:", r.InvoiceNo).
		KeyValue("Date:", r.Date)
	if r.Cashier != "" {
		slip.KeyValue("Cashier:", r.Cashier)
	}
	if r.PaymentType != "" {
		slip.KeyValue("Payment:", r.PaymentType)
	}
	slip.Separator('-')

	for _, item := range r.Items {
		slip.ItemLine(int64(item.Quantity), item.Name, document.Money(item.Total))
		if item.Quantity > 1 {
			slip.TextF("  @ %s each", document.Money(item.UnitPrice))
		}
	}
	slip.Separator('-')

	slip.KeyValue("Subtotal:", document.Money(r.SubTotal))
	if r.Tax.IsPositive() {
		slip.KeyValue("Tax:", document.Money(r.Tax))
	}
	if r.Discount.IsPositive() {
		slip.KeyValue("Discount:", "-"+document.Money(r.Discount))
	}
	slip.SetBold(true).
		KeyValue("TOTAL:", document.Money(r.Total)).
		SetBold(false)
	if r.Change.IsPositive() {
		slip.KeyValue("Change:", document.Money(r.Change))
	}
	slip.Separator('-')

	if r.Footer != "" {
		slip.SetAlign(printer.AlignCenter).
			LineFeed().
			Text(r.Footer).
			SetAlign(printer.AlignLeft)
	}

	return slip.FeedLines(3).PartialCut().Bytes()
}

// cashPaymentType is the payment type counted into the drawer total.
const cashPaymentType = "Cash"

// FormatFlashSlip lays out a flash report for a receipt printer.
func FormatFlashSlip(storeName string, fr report.FlashReport, rng report.DateRange, generated time.Time, width int) []byte {
	slip := printer.NewSlip(width)

	slip.Title("FLASH REPORT")
	if storeName != "" {
		slip.Text(storeName)
	}
	slip.Text(rng.String()).
		SetAlign(printer.AlignLeft).
		Separator('=')

	m := fr.Metrics
	slip.KeyValue("Transactions:", fmt.Sprintf("%d", m.Transactions)).
		KeyValue("Gross Sales:", document.Money(m.GrossSales)).
		KeyValue("Tax:", document.Money(m.TotalTax)).
		SetBold(true).
		KeyValue("Net Sales:", document.Money(m.NetSales)).
		SetBold(false).
		KeyValue("Avg Sale:", document.Money(m.AvgTransaction)).
		Separator('-')

	slip.Text("PAYMENTS")
	if len(fr.Payments) == 0 {
		slip.Text("No payments recorded")
	}
	for _, p := range fr.Payments {
		slip.KeyValue(p.PaymentType, document.Money(p.Total))
	}
	slip.SetBold(true).
		KeyValue("Cash in Drawer:", document.Money(fr.PaymentTotal(cashPaymentType))).
		SetBold(false)
	slip.Separator('-').
		KeyValue("Taxable:", document.Money(fr.TaxSplit.TaxableSales)).
		KeyValue("Non-taxable:", document.Money(fr.TaxSplit.NonTaxableSales)).
		Separator('=').
		TextF("Printed %s", generated.Format(receiptDateLayout))

	return slip.FeedLines(3).PartialCut().Bytes()
}
