package repository

import (
	"context"
	"time"

	domainRepo "github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/domain/repository"
	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/infrastructure/database"
)

type inventoryRepository struct {
	q *database.Querier
}

// NewInventoryRepository creates a new inventory repository
func NewInventoryRepository(q *database.Querier) domainRepo.InventoryRepository {
	return &inventoryRepository{q: q}
}

func (r *inventoryRepository) LowStock(ctx context.Context) ([]domainRepo.LowStockItem, error) {
	results := make([]domainRepo.LowStockItem, 0)
	err := r.q.Query(ctx, &results, `
		SELECT item_id, name, upc, item_cost, charged_cost, in_stock, stock_alert_limit
		FROM items
		WHERE is_active = true
			AND enable_stock_alert = true
			AND in_stock <= stock_alert_limit
		ORDER BY in_stock ASC, name ASC
	`)
	return results, err
}

func (r *inventoryRepository) DroppedItems(ctx context.Context) ([]domainRepo.DroppedItem, error) {
	results := make([]domainRepo.DroppedItem, 0)
	err := r.q.Query(ctx, &results, `
		SELECT
			h.invoice_code,
			l.item_id,
			l.item_name,
			i.upc,
			c.name AS category,
			l.price,
			l.quantity,
			l.total AS total_price,
			h.voided_by,
			h.voided_on,
			h.user_name AS billed_by
		FROM invoice_lines l
		JOIN invoice_headers h ON h.invoice_id = l.invoice_id
		LEFT JOIN items i ON i.item_id = l.item_id
		LEFT JOIN categories c ON c.category_id = i.category_id
		WHERE h.is_voided = true
		ORDER BY h.voided_on DESC NULLS LAST, l.line_id
	`)
	return results, err
}

func (r *inventoryRepository) ActiveCount(ctx context.Context) (int64, error) {
	var count int64
	err := r.q.Query(ctx, &count, `SELECT COUNT(*) FROM items WHERE is_active = true`)
	return count, err
}

func trackingConditions(filter domainRepo.TrackingFilter, timeColumn string) conditions {
	var c conditions
	if filter.ItemID > 0 {
		c.add("a.item_id = ?", filter.ItemID)
	}
	c.between(timeColumn, filter.Range)
	return c
}

func (r *inventoryRepository) SalesTrail(ctx context.Context, filter domainRepo.TrackingFilter) ([]domainRepo.SalesTrailRow, error) {
	c := trackingConditions(filter, "a.sold_date_time")
	results := make([]domainRepo.SalesTrailRow, 0)
	err := r.q.Query(ctx, &results, `
		SELECT
			ROW_NUMBER() OVER (ORDER BY a.sold_date_time DESC, a.id DESC) AS sr_no,
			a.invoice_code, a.item_name, a.sold_qty, a.sold_price, a.total_price,
			a.discount, a.tax, a.sold_by, a.sold_date_time
		FROM item_sales_audit a`+c.where()+`
		ORDER BY sr_no
	`, c.args...)
	return results, err
}

func (r *inventoryRepository) QuantityTrail(ctx context.Context, filter domainRepo.TrackingFilter) ([]domainRepo.QuantityTrailRow, error) {
	c := trackingConditions(filter, "a.modified_date")
	results := make([]domainRepo.QuantityTrailRow, 0)
	err := r.q.Query(ctx, &results, `
		SELECT
			ROW_NUMBER() OVER (ORDER BY a.modified_date DESC, a.id DESC) AS sr_no,
			COALESCE(i.name, '') AS item_name,
			a.old_qty, a.new_qty, a.modified_date, a.modified_by
		FROM item_qty_audit a
		LEFT JOIN items i ON i.item_id = a.item_id`+c.where()+`
		ORDER BY sr_no
	`, c.args...)
	return results, err
}

func (r *inventoryRepository) PriceTrail(ctx context.Context, filter domainRepo.TrackingFilter) ([]domainRepo.PriceTrailRow, error) {
	c := trackingConditions(filter, "a.modified_date")
	results := make([]domainRepo.PriceTrailRow, 0)
	err := r.q.Query(ctx, &results, `
		SELECT
			ROW_NUMBER() OVER (ORDER BY a.modified_date DESC, a.id DESC) AS sr_no,
			COALESCE(i.name, '') AS item_name,
			a.old_charged_cost, a.new_charged_cost, a.modified_date, a.modified_by
		FROM item_price_audit a
		LEFT JOIN items i ON i.item_id = a.item_id`+c.where()+`
		ORDER BY sr_no
	`, c.args...)
	return results, err
}

type voidTarget struct {
	InvoiceID int64 `gorm:"column:invoice_id"`
	IsVoided  bool  `gorm:"column:is_voided"`
}

func (r *inventoryRepository) VoidInvoice(ctx context.Context, invoiceCode, voidedBy string, at time.Time) (domainRepo.VoidResult, error) {
	var result domainRepo.VoidResult
	err := r.q.Transaction(ctx, func(tx *database.Querier) error {
		var targets []voidTarget
		if err := tx.Query(ctx, &targets, `
			SELECT invoice_id, is_voided FROM invoice_headers
			WHERE invoice_code = ?
			FOR UPDATE
		`, invoiceCode); err != nil {
			return err
		}
		if len(targets) == 0 {
			return nil
		}
		result.Found = true
		result.InvoiceID = targets[0].InvoiceID
		if targets[0].IsVoided {
			result.AlreadyVoided = true
			return nil
		}

		if _, err := tx.Exec(ctx, `
			UPDATE invoice_headers
			SET is_voided = true, voided_on = ?, voided_by = ?
			WHERE invoice_id = ?
		`, at, voidedBy, result.InvoiceID); err != nil {
			return err
		}

		n, err := tx.Exec(ctx, `
			UPDATE items AS i
			SET dropped_item = COALESCE(i.dropped_item, 0) + l.qty
			FROM (
				SELECT item_id, SUM(quantity) AS qty
				FROM invoice_lines
				WHERE invoice_id = ?
				GROUP BY item_id
			) AS l
			WHERE i.item_id = l.item_id
		`, result.InvoiceID)
		result.ItemsDropped = n
		return err
	})
	if err != nil {
		return domainRepo.VoidResult{}, err
	}
	return result, nil
}

func (r *inventoryRepository) VoidInvoiceWithProcedure(ctx context.Context, procedure, invoiceCode, voidedBy string) (domainRepo.VoidResult, error) {
	var targets []voidTarget
	if err := r.q.Query(ctx, &targets, `
		SELECT invoice_id, is_voided FROM invoice_headers WHERE invoice_code = ?
	`, invoiceCode); err != nil {
		return domainRepo.VoidResult{}, err
	}
	if len(targets) == 0 {
		return domainRepo.VoidResult{}, nil
	}
	result := domainRepo.VoidResult{Found: true, InvoiceID: targets[0].InvoiceID}
	if targets[0].IsVoided {
		result.AlreadyVoided = true
		return result, nil
	}
	if err := r.q.CallProcedure(ctx, procedure, invoiceCode, voidedBy); err != nil {
		return domainRepo.VoidResult{}, err
	}
	return result, nil
}
