package report

import (
	"strings"

	"github.com/shopspring/decimal"
)

// UnknownPaymentType labels sales whose payment type was never recorded.
const UnknownPaymentType = "Unknown"

// FlashMetrics holds the headline sales figures of a range.
type FlashMetrics struct {
	GrossSales     decimal.Decimal `json:"gross_sales"`
	TotalTax       decimal.Decimal `json:"total_tax"`
	NetSales       decimal.Decimal `json:"net_sales"`
	AvgTransaction decimal.Decimal `json:"avg_transaction"`
	Transactions   int64           `json:"transactions"`
}

// PaymentTotal is the non-voided sales total taken with one payment type.
type PaymentTotal struct {
	PaymentType string          `json:"payment_type"`
	Total       decimal.Decimal `json:"total"`
}

// TaxSplit divides line sales between taxable and non-taxable items.
type TaxSplit struct {
	TaxableSales    decimal.Decimal `json:"taxable_sales"`
	NonTaxableSales decimal.Decimal `json:"non_taxable_sales"`
}

// FlashReport is the gross/net/tax snapshot of a date range.
type FlashReport struct {
	Metrics  FlashMetrics   `json:"metrics"`
	Payments []PaymentTotal `json:"payments"`
	TaxSplit TaxSplit       `json:"tax_split"`
}

// PaymentTotal returns the total of one payment type, zero if it had no sales.
func (r *FlashReport) PaymentTotal(paymentType string) decimal.Decimal {
	for _, p := range r.Payments {
		if strings.EqualFold(p.PaymentType, paymentType) {
			return p.Total
		}
	}
	return decimal.Zero
}

// IsEmpty reports whether the range had no non-voided sales.
func (r *FlashReport) IsEmpty() bool {
	return r.Metrics.Transactions == 0 && len(r.Payments) == 0
}

// ComputeFlashReport merges the three flash aggregates. Null sums count as
// zero and the average is zero when there were no transactions.
func ComputeFlashReport(metrics FlashMetricsRow, payments []PaymentRow, tax TaxSplitRow) FlashReport {
	gross := orZero(metrics.GrossSales)
	totalTax := orZero(metrics.TotalTax)
	count := orZeroInt(metrics.Transactions)

	avg := decimal.Zero
	if count > 0 {
		avg = gross.Div(decimal.NewFromInt(count)).Round(2)
	}

	return FlashReport{
		Metrics: FlashMetrics{
			GrossSales:     gross,
			TotalTax:       totalTax,
			NetSales:       gross.Sub(totalTax),
			AvgTransaction: avg,
			Transactions:   count,
		},
		Payments: mergePayments(payments),
		TaxSplit: TaxSplit{
			TaxableSales:    orZero(tax.TaxableSales),
			NonTaxableSales: orZero(tax.NonTaxableSales),
		},
	}
}

func mergePayments(rows []PaymentRow) []PaymentTotal {
	out := make([]PaymentTotal, 0, len(rows))
	index := make(map[string]int, len(rows))

	for _, row := range rows {
		name := strings.TrimSpace(orEmpty(row.PaymentType))
		if name == "" {
			name = UnknownPaymentType
		}
		if pos, ok := index[name]; ok {
			out[pos].Total = out[pos].Total.Add(orZero(row.Total))
			continue
		}
		index[name] = len(out)
		out = append(out, PaymentTotal{PaymentType: name, Total: orZero(row.Total)})
	}

	return out
}
