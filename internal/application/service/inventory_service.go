package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/domain/enum"
	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/domain/repository"
	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/pkg/apperror"
)

// InventoryService handles stock alerts, audit trails and invoice voids
type InventoryService struct {
	inventoryRepo repository.InventoryRepository
	voidProcedure string
	loc           *time.Location
	now           func() time.Time
}

// NewInventoryService creates a new inventory service. A non-empty
// voidProcedure routes invoice voids through that stored procedure.
func NewInventoryService(inventoryRepo repository.InventoryRepository, voidProcedure string, loc *time.Location) *InventoryService {
	return &InventoryService{
		inventoryRepo: inventoryRepo,
		voidProcedure: voidProcedure,
		loc:           loc,
		now:           time.Now,
	}
}

func (s *InventoryService) LowStock(ctx context.Context) ([]repository.LowStockItem, error) {
	items, err := s.inventoryRepo.LowStock(ctx)
	if err != nil {
		return nil, fmt.Errorf("low stock: %w", err)
	}
	return items, nil
}

// DroppedItems lists the lines of voided invoices
func (s *InventoryService) DroppedItems(ctx context.Context) ([]repository.DroppedItem, error) {
	items, err := s.inventoryRepo.DroppedItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("dropped items: %w", err)
	}
	return items, nil
}

func (s *InventoryService) TotalCount(ctx context.Context) (int64, error) {
	count, err := s.inventoryRepo.ActiveCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("active item count: %w", err)
	}
	return count, nil
}

// TrackingInput selects an audit trail and its filters
type TrackingInput struct {
	Type     string
	ItemID   int64
	FromDate string
	ToDate   string
}

// TrackingResult holds the rows of whichever trail was requested.
type TrackingResult struct {
	Type enum.TrackingType `json:"type"`
	Rows interface{}       `json:"rows"`
}

// Tracking reads the sales, quantity or price audit trail. Without dates the
// whole trail is returned.
func (s *InventoryService) Tracking(ctx context.Context, in TrackingInput) (*TrackingResult, error) {
	t, err := enum.ParseTrackingType(strings.TrimSpace(in.Type))
	if err != nil {
		return nil, apperror.NewFieldError("type", err.Error())
	}

	filter := repository.TrackingFilter{ItemID: in.ItemID}
	if in.FromDate != "" || in.ToDate != "" {
		rng, err := resolveRange(s.now(), RangeInput{FromDate: in.FromDate, ToDate: in.ToDate}, s.loc)
		if err != nil {
			return nil, err
		}
		filter.Range = &rng
	}

	var rows interface{}
	switch t {
	case enum.TrackingTypeSales:
		rows, err = s.inventoryRepo.SalesTrail(ctx, filter)
	case enum.TrackingTypeQuantity:
		rows, err = s.inventoryRepo.QuantityTrail(ctx, filter)
	case enum.TrackingTypePrice:
		rows, err = s.inventoryRepo.PriceTrail(ctx, filter)
	}
	if err != nil {
		return nil, fmt.Errorf("%s trail: %w", t, err)
	}
	return &TrackingResult{Type: t, Rows: rows}, nil
}

// VoidResult is returned to the caller after a successful void.
type VoidResult struct {
	InvoiceCode  string    `json:"invoice_code"`
	InvoiceID    int64     `json:"invoice_id"`
	VoidedBy     string    `json:"voided_by"`
	VoidedOn     time.Time `json:"voided_on"`
	ItemsDropped int64     `json:"items_dropped"`
}

// VoidInvoice marks an invoice voided and moves its line quantities into the
// items' dropped counters
func (s *InventoryService) VoidInvoice(ctx context.Context, invoiceCode, voidedBy string) (*VoidResult, error) {
	invoiceCode = strings.TrimSpace(invoiceCode)
	if invoiceCode == "" {
		return nil, apperror.NewFieldError("invoice_code", "invoice_code is required")
	}
	at := s.now().In(s.loc)

	var (
		res repository.VoidResult
		err error
	)
	if s.voidProcedure != "" {
		res, err = s.inventoryRepo.VoidInvoiceWithProcedure(ctx, s.voidProcedure, invoiceCode, voidedBy)
	} else {
		res, err = s.inventoryRepo.VoidInvoice(ctx, invoiceCode, voidedBy, at)
	}
	if err != nil {
		return nil, fmt.Errorf("void invoice %s: %w", invoiceCode, err)
	}
	if !res.Found {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	if res.AlreadyVoided {
		return nil, apperror.ErrInvoiceVoided
	}

	log.Printf("Invoice %s voided by %s (%d items dropped)", invoiceCode, voidedBy, res.ItemsDropped)
	return &VoidResult{
		InvoiceCode:  invoiceCode,
		InvoiceID:    res.InvoiceID,
		VoidedBy:     voidedBy,
		VoidedOn:     at,
		ItemsDropped: res.ItemsDropped,
	}, nil
}
