package report

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const (
	saleDateLayout  = "2006-01-02"
	hourLabelLayout = "01/02/2006"
)

// ItemDetail is one sold line inside an hour bucket.
type ItemDetail struct {
	ItemName   string          `json:"item_name"`
	Quantity   int64           `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
	Discount   decimal.Decimal `json:"discount"`
	Tax        decimal.Decimal `json:"tax"`
	SoldAt     time.Time       `json:"sold_at"`
}

// HourBucket is one calendar hour of sales.
type HourBucket struct {
	SaleDate     string          `json:"sale_date"`
	SaleHour     int             `json:"sale_hour"`
	Hour         string          `json:"hour"`
	Transactions int64           `json:"transactions"`
	TotalItems   int64           `json:"total_items"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	ItemsDetail  []ItemDetail    `json:"items_detail"`
}

// BucketHourly attaches item rows to their (date, hour) summary row. Output
// follows the summary order, every summary row yields exactly one bucket and
// item rows without a matching summary row are dropped.
func BucketHourly(summary []HourSummaryRow, items []HourItemRow) []HourBucket {
	out := make([]HourBucket, 0, len(summary))
	index := make(map[string]int, len(summary))

	for _, row := range summary {
		key := hourKey(row.SaleDate, row.SaleHour)
		if _, dup := index[key]; dup {
			continue
		}
		index[key] = len(out)
		out = append(out, HourBucket{
			SaleDate:     row.SaleDate,
			SaleHour:     row.SaleHour,
			Hour:         HourLabel(row.SaleDate, row.SaleHour),
			Transactions: row.Transactions,
			TotalItems:   orZeroInt(row.TotalItems),
			TotalAmount:  orZero(row.TotalAmount),
			ItemsDetail:  make([]ItemDetail, 0),
		})
	}

	for _, row := range items {
		pos, ok := index[hourKey(row.SaleDate, row.SaleHour)]
		if !ok {
			continue
		}
		out[pos].ItemsDetail = append(out[pos].ItemsDetail, ItemDetail{
			ItemName:   orEmpty(row.ItemName),
			Quantity:   orZeroInt(row.Quantity),
			UnitPrice:  orZero(row.UnitPrice),
			TotalPrice: orZero(row.TotalPrice),
			Discount:   orZero(row.Discount),
			Tax:        orZero(row.Tax),
			SoldAt:     row.SoldAt,
		})
	}

	return out
}

func hourKey(saleDate string, hour int) string {
	return fmt.Sprintf("%s_%02d", saleDate, hour)
}

// HourLabel renders a bucket key as "03/15/2024 14:00".
func HourLabel(saleDate string, hour int) string {
	day := saleDate
	if t, err := time.Parse(saleDateLayout, saleDate); err == nil {
		day = t.Format(hourLabelLayout)
	}
	return fmt.Sprintf("%s %02d:00", day, hour)
}
