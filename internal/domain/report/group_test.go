package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func i64(v int64) *int64 { return &v }

func str(v string) *string { return &v }

func dec(s string) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: decimal.RequireFromString(s), Valid: true}
}

func TestGroupInvoiceRows(t *testing.T) {
	created := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	rows := []InvoiceRow{
		{InvoiceID: 1, InvoiceCode: "INV-1", CreatedDateTime: created, GrandTotal: dec("12.50"), LineID: i64(10), ItemID: i64(100), ItemName: str("Cola"), Quantity: i64(2), Total: dec("5.00")},
		{InvoiceID: 1, InvoiceCode: "INV-1", CreatedDateTime: created, GrandTotal: dec("12.50"), LineID: i64(11), ItemID: i64(101), ItemName: str("Chips"), Quantity: i64(1), Total: dec("7.50")},
		{InvoiceID: 2, InvoiceCode: "INV-2", CreatedDateTime: created, PaymentType: str("Cash")},
	}

	groups := GroupInvoiceRows(rows)

	require.Len(t, groups, 2)
	assert.Equal(t, int64(1), groups[0].InvoiceID)
	assert.Len(t, groups[0].Lines, 2)
	assert.Equal(t, int64(10), groups[0].Lines[0].LineID)
	assert.Equal(t, int64(11), groups[0].Lines[1].LineID)
	assert.True(t, groups[0].GrandTotal.Equal(decimal.RequireFromString("12.50")))

	assert.Equal(t, int64(2), groups[1].InvoiceID)
	assert.NotNil(t, groups[1].Lines)
	assert.Empty(t, groups[1].Lines)
	assert.Equal(t, "Cash", groups[1].PaymentType)
	assert.True(t, groups[1].SubTotal.IsZero())
}

func TestGroupInvoiceRows_FirstSeenOrder(t *testing.T) {
	rows := []InvoiceRow{
		{InvoiceID: 7, LineID: i64(1)},
		{InvoiceID: 3, LineID: i64(2)},
		{InvoiceID: 7, LineID: i64(3)},
		{InvoiceID: 5},
		{InvoiceID: 3, LineID: i64(4)},
	}

	groups := GroupInvoiceRows(rows)

	require.Len(t, groups, 3)
	assert.Equal(t, []int64{7, 3, 5}, []int64{groups[0].InvoiceID, groups[1].InvoiceID, groups[2].InvoiceID})

	distinct := map[int64]bool{}
	withLine := 0
	for _, r := range rows {
		distinct[r.InvoiceID] = true
		if r.LineID != nil {
			withLine++
		}
	}
	total := 0
	for _, g := range groups {
		total += len(g.Lines)
	}
	assert.Equal(t, len(distinct), len(groups))
	assert.Equal(t, withLine, total)
}

func TestGroupInvoiceRows_Idempotent(t *testing.T) {
	rows := []InvoiceRow{
		{InvoiceID: 1, LineID: i64(1), Price: dec("1.10")},
		{InvoiceID: 2},
	}

	assert.Equal(t, GroupInvoiceRows(rows), GroupInvoiceRows(rows))
}

func TestGroupInvoiceRows_Empty(t *testing.T) {
	groups := GroupInvoiceRows(nil)
	assert.NotNil(t, groups)
	assert.Empty(t, groups)
	assert.Empty(t, Invoices(groups))
}
