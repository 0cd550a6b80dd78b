package service

import (
	"fmt"
	"time"

	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/domain/report"
	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/domain/repository"
	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/pkg/document"
)

var (
	salesReportLayout  = document.A4(15)
	flashReportLayout  = document.A4(50)
	hourlyReportLayout = document.A4(40)
	itemsReportLayout  = document.A4(18)
)

var (
	flashPrimary  = document.Hex("#2563EB")
	flashAccent   = document.Hex("#3B82F6")
	hourBanner    = document.Hex("#3F51B5")
	hourTableHead = document.Hex("#2196F3")
)

const noRecords = "No records found"

func salesTableSpec(loc *time.Location) document.TableSpec[report.Invoice] {
	return document.TableSpec[report.Invoice]{
		WidthMode: document.Percent,
		Style:     document.DefaultStyle(),
		Empty:     noRecords,
		Columns: []document.Column[report.Invoice]{
			{Label: "ID", Width: 0.06, Value: func(i report.Invoice) any { return i.InvoiceID }, Format: document.Integer},
			{Label: "Code", Width: 0.14, Value: func(i report.Invoice) any { return i.InvoiceCode }},
			{Label: "Price", Width: 0.08, Align: document.AlignRight, Value: func(i report.Invoice) any { return i.GrandTotal }, Format: document.Number},
			{Label: "Qty", Width: 0.07, Align: document.AlignRight, Value: func(i report.Invoice) any { return i.TotalQty }, Format: document.Integer},
			{Label: "Tax", Width: 0.07, Align: document.AlignRight, Value: func(i report.Invoice) any { return i.TotalTax }, Format: document.Number},
			{Label: "Disc", Width: 0.07, Align: document.AlignRight, Value: func(i report.Invoice) any { return i.CoinsDiscount }, Format: document.Number},
			{Label: "User", Width: 0.12, Value: func(i report.Invoice) any { return i.UserName }},
			{Label: "Pay", Width: 0.10, Value: func(i report.Invoice) any { return i.PaymentType }},
			{Label: "Voided", Width: 0.08, Align: document.AlignCenter, Value: func(i report.Invoice) any { return i.IsVoided }, Format: document.YesNo},
			{Label: "Date", Width: 0.21, Align: document.AlignCenter, Value: func(i report.Invoice) any { return i.CreatedDateTime.In(loc) }, Format: document.DateTime},
		},
	}
}

func drawSalesReport(d *document.Document, spec document.TableSpec[report.Invoice], invoices []report.Invoice, rng report.DateRange) error {
	d.Title("Sales Report", 18)
	d.Line(rng.String(), 10, document.Regular, document.AlignCenter)
	d.Advance(8)
	return document.DrawTable(d, spec, invoices)
}

func drawFlashReport(d *document.Document, fr report.FlashReport, rng report.DateRange, generated time.Time) {
	d.Banner("FLASH REPORT", "", 40, flashPrimary, document.White)
	d.Advance(14)

	section := func(title string) {
		// keep a heading together with at least one line under it
		d.Ensure(24 + 18)
		d.Banner(title, "", 24, flashAccent, document.White)
		d.Advance(4)
	}
	last := rng.To.Add(-time.Second)

	section("DATE & TRANSACTION INFO")
	d.KeyValue("From Date:", rng.From.Format(document.DateTimeLayout), 11)
	d.KeyValue("To Date:", last.Format(document.DateTimeLayout), 11)
	d.KeyValue("Total Transactions:", fmt.Sprintf("%d", fr.Metrics.Transactions), 11)
	d.KeyValue("Avg Transaction Amount:", document.Money(fr.Metrics.AvgTransaction), 11)
	d.Advance(12)

	section("SALES SUMMARY")
	d.KeyValue("Gross Sales:", document.Money(fr.Metrics.GrossSales), 11)
	d.KeyValue("Net Sales:", document.Money(fr.Metrics.NetSales), 11)
	d.Advance(12)

	section("PAYMENTS")
	if len(fr.Payments) == 0 {
		d.Line("No payments recorded", 11, document.Regular, document.AlignLeft)
	}
	for _, p := range fr.Payments {
		d.KeyValue(p.PaymentType+":", document.Money(p.Total), 11)
	}
	d.Advance(12)

	section("TAX")
	d.KeyValue("Taxable Sales:", document.Money(fr.TaxSplit.TaxableSales), 11)
	d.KeyValue("Non-Taxable Sales:", document.Money(fr.TaxSplit.NonTaxableSales), 11)
	d.KeyValue("Tax Amount:", document.Money(fr.Metrics.TotalTax), 11)
	d.Advance(24)

	d.Line(fmt.Sprintf("Generated on %s at %s", generated.Format("2006-01-02"), generated.Format(document.TimeOfDayLayout)),
		8, document.Regular, document.AlignCenter)
}

func hourItemsSpec(loc *time.Location) document.TableSpec[report.ItemDetail] {
	st := document.DefaultStyle()
	st.RowHeight = 20
	st.HeaderHeight = 20
	st.FontSize = 8
	st.HeaderFont = 8
	st.HeaderFill = hourTableHead
	st.ZebraFill = document.Hex("#F2F2F2")
	st.Borders = false

	return document.TableSpec[report.ItemDetail]{
		WidthMode: document.Scale,
		Style:     st,
		Columns: []document.Column[report.ItemDetail]{
			{Label: "Name", Width: 150, Value: func(i report.ItemDetail) any { return i.ItemName }},
			{Label: "Qty", Width: 40, Align: document.AlignRight, Value: func(i report.ItemDetail) any { return i.Quantity }, Format: document.Integer},
			{Label: "Unit Price", Width: 60, Align: document.AlignRight, Value: func(i report.ItemDetail) any { return i.UnitPrice }, Format: document.Currency},
			{Label: "Total Price", Width: 60, Align: document.AlignRight, Value: func(i report.ItemDetail) any { return i.TotalPrice }, Format: document.Currency},
			{Label: "Tax", Width: 50, Align: document.AlignRight, Value: func(i report.ItemDetail) any { return i.Tax }, Format: document.Currency},
			{Label: "Discount", Width: 60, Align: document.AlignRight, Value: func(i report.ItemDetail) any { return i.Discount }, Format: document.Currency},
			{Label: "Sold At", Width: 60, Align: document.AlignCenter, Value: func(i report.ItemDetail) any { return i.SoldAt.In(loc) }, Format: document.TimeOfDay},
		},
	}
}

const hourBannerHeight = 25

func hourSummary(b report.HourBucket) string {
	return fmt.Sprintf("Total: %s | Items: %d | Transactions: %d", document.Money(b.TotalAmount), b.TotalItems, b.Transactions)
}

func drawHourlyReport(d *document.Document, buckets []report.HourBucket, rng report.DateRange, loc *time.Location) error {
	d.SetFooter(document.PageNumberFooter(d))
	d.Title("Hourly Report", 16)
	d.Line(rng.String(), 10, document.Regular, document.AlignCenter)
	d.Advance(10)

	if len(buckets) == 0 {
		d.Line(noRecords, 10, document.Regular, document.AlignCenter)
		return nil
	}

	spec := hourItemsSpec(loc)
	for _, b := range buckets {
		b := b
		title := "Hour: " + b.Hour
		summary := hourSummary(b)

		if len(b.ItemsDetail) == 0 {
			d.Ensure(hourBannerHeight + 30)
			d.Banner(title, summary, hourBannerHeight, hourBanner, document.White)
			d.Line("No items sold during this hour", 10, document.Regular, document.AlignLeft)
			d.Advance(10)
			continue
		}

		// banner, table header and the first row move to a new page together
		d.Ensure(hourBannerHeight + spec.Style.HeaderHeight + spec.Style.RowHeight)
		d.Banner(title, summary, hourBannerHeight, hourBanner, document.White)
		pop := d.PushBreakHook(func() {
			d.Banner(title+" (cont.)", summary, hourBannerHeight, hourBanner, document.White)
		})
		err := document.DrawTable(d, spec, b.ItemsDetail)
		pop()
		if err != nil {
			return fmt.Errorf("hour %s: %w", b.Hour, err)
		}
		d.Advance(10)
	}
	return nil
}

func itemsTableSpec() document.TableSpec[repository.ItemReportRow] {
	st := document.DefaultStyle()
	st.RowHeight = 14
	st.HeaderHeight = 20
	st.Padding = 3
	st.FontSize = 7
	st.HeaderFont = 7
	st.HeaderFill = document.Hex("#4CAF50")
	st.HeaderText = document.Black
	st.ZebraFill = document.Hex("#E6E6E6")
	st.Border = document.Black

	return document.TableSpec[repository.ItemReportRow]{
		WidthMode: document.Scale,
		Style:     st,
		Wrap:      true,
		Empty:     noRecords,
		Columns: []document.Column[repository.ItemReportRow]{
			{Label: "ID", Width: 40, Value: func(r repository.ItemReportRow) any { return r.ItemID }, Format: document.Integer},
			{Label: "Name", Width: 110, Value: func(r repository.ItemReportRow) any { return r.Name }},
			{Label: "UPC", Width: 50, Value: func(r repository.ItemReportRow) any { return r.UPC }},
			{Label: "Item Cost", Width: 40, Align: document.AlignRight, Value: func(r repository.ItemReportRow) any { return r.ItemCost }, Format: document.Number},
			{Label: "Charged", Width: 50, Align: document.AlignRight, Value: func(r repository.ItemReportRow) any { return r.ChargedCost }, Format: document.Number},
			{Label: "In Stock", Width: 35, Align: document.AlignRight, Value: func(r repository.ItemReportRow) any { return r.InStock }, Format: document.Integer},
			{Label: "Vendor", Width: 60, Value: func(r repository.ItemReportRow) any { return r.VendorName }},
			{Label: "Case Cost", Width: 40, Align: document.AlignRight, Value: func(r repository.ItemReportRow) any { return r.CaseCost }, Format: document.Number},
			{Label: "No. In Case", Width: 50, Align: document.AlignRight, Value: func(r repository.ItemReportRow) any { return r.NumberInCase }, Format: document.Integer},
			{Label: "Sales Tax", Width: 40, Align: document.AlignRight, Value: func(r repository.ItemReportRow) any { return r.SalesTax }, Format: document.Number},
			{Label: "Category", Width: 70, Value: func(r repository.ItemReportRow) any { return r.CategoryName }},
		},
	}
}

func drawItemsReport(d *document.Document, rows []repository.ItemReportRow) error {
	d.Title("Items Report", 16)
	d.Advance(6)
	return document.DrawTable(d, itemsTableSpec(), rows)
}
