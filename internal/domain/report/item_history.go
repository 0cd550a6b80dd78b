package report

import "github.com/shopspring/decimal"

// ItemHistory is a single item's sales lines with running totals.
type ItemHistory struct {
	TotalRecords  int             `json:"total_records"`
	TotalQuantity int64           `json:"total_quantity"`
	TotalPrice    decimal.Decimal `json:"total_price"`
	Sales         []ItemSaleRow   `json:"sales_history"`
}

// SummarizeItemSales totals quantity and price over lines with a positive
// quantity. Returned or refunded lines stay in the listing but not in totals.
func SummarizeItemSales(rows []ItemSaleRow) ItemHistory {
	h := ItemHistory{
		TotalRecords: len(rows),
		TotalPrice:   decimal.Zero,
		Sales:        rows,
	}
	if h.Sales == nil {
		h.Sales = make([]ItemSaleRow, 0)
	}

	for _, row := range rows {
		qty := orZeroInt(row.Quantity)
		if qty <= 0 {
			continue
		}
		h.TotalQuantity += qty
		h.TotalPrice = h.TotalPrice.Add(orZero(row.TotalPrice))
	}

	return h
}
