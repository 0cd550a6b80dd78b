package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBucketHourly(t *testing.T) {
	summary := []HourSummaryRow{
		{SaleDate: "2024-03-15", SaleHour: 9, Transactions: 2, TotalItems: i64(3), TotalAmount: dec("20.00")},
		{SaleDate: "2024-03-15", SaleHour: 10, Transactions: 1, TotalItems: i64(1), TotalAmount: dec("4.00")},
		{SaleDate: "2024-03-16", SaleHour: 9, Transactions: 1},
	}
	soldAt := time.Date(2024, 3, 15, 9, 12, 0, 0, time.UTC)
	items := []HourItemRow{
		{SaleDate: "2024-03-15", SaleHour: 9, ItemName: str("Cola"), Quantity: i64(2), TotalPrice: dec("10.00"), SoldAt: soldAt},
		{SaleDate: "2024-03-15", SaleHour: 9, ItemName: str("Chips"), Quantity: i64(1), TotalPrice: dec("10.00"), SoldAt: soldAt},
		{SaleDate: "2024-03-15", SaleHour: 10, ItemName: str("Gum"), Quantity: i64(1), TotalPrice: dec("4.00"), SoldAt: soldAt.Add(time.Hour)},
		{SaleDate: "2024-03-17", SaleHour: 1, ItemName: str("Orphan")},
	}

	buckets := BucketHourly(summary, items)

	require.Len(t, buckets, 3)
	assert.Equal(t, "03/15/2024 09:00", buckets[0].Hour)
	assert.Len(t, buckets[0].ItemsDetail, 2)
	assert.Equal(t, "Cola", buckets[0].ItemsDetail[0].ItemName)
	assert.Equal(t, "Chips", buckets[0].ItemsDetail[1].ItemName)
	assert.Len(t, buckets[1].ItemsDetail, 1)

	assert.Equal(t, "2024-03-16", buckets[2].SaleDate)
	assert.NotNil(t, buckets[2].ItemsDetail)
	assert.Empty(t, buckets[2].ItemsDetail)
	assert.True(t, buckets[2].TotalAmount.IsZero())
	assert.Equal(t, int64(0), buckets[2].TotalItems)
}

func TestBucketHourly_PreservesInputOrder(t *testing.T) {
	summary := []HourSummaryRow{
		{SaleDate: "2024-03-15", SaleHour: 14},
		{SaleDate: "2024-03-15", SaleHour: 8},
		{SaleDate: "2024-03-15", SaleHour: 14},
	}

	buckets := BucketHourly(summary, nil)

	require.Len(t, buckets, 2)
	assert.Equal(t, 14, buckets[0].SaleHour)
	assert.Equal(t, 8, buckets[1].SaleHour)
}

func TestBucketHourly_Empty(t *testing.T) {
	buckets := BucketHourly(nil, nil)
	assert.NotNil(t, buckets)
	assert.Empty(t, buckets)
}

func TestHourLabel_BadDate(t *testing.T) {
	assert.Equal(t, "garbage 07:00", HourLabel("garbage", 7))
}
