package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/domain/entity"
	domainRepo "github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/domain/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// sortable maps accepted sort keys to item columns.
var sortable = map[string]string{
	"name":         "name",
	"upc":          "upc",
	"in_stock":     "in_stock",
	"charged_cost": "charged_cost",
	"item_cost":    "item_cost",
	"created_date": "created_date",
	"item_id":      "item_id",
}

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new catalog item repository
func NewProductRepository(db *gorm.DB) domainRepo.ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, item *entity.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *productRepository) Update(ctx context.Context, item *entity.Item, tiers []entity.BulkPricing) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(item).Error; err != nil {
			return err
		}
		if tiers == nil {
			return nil
		}
		if err := tx.Where("item_id = ?", item.ItemID).Delete(&entity.BulkPricing{}).Error; err != nil {
			return err
		}
		for i := range tiers {
			tiers[i].BulkPricingID = 0
			tiers[i].ItemID = item.ItemID
		}
		if len(tiers) > 0 {
			if err := tx.Create(&tiers).Error; err != nil {
				return err
			}
		}
		item.BulkPricingTiers = tiers
		return nil
	})
}

func (r *productRepository) GetByID(ctx context.Context, id int64) (*entity.Item, error) {
	var item entity.Item
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("BulkPricingTiers", func(db *gorm.DB) *gorm.DB { return db.Order("quantity ASC") }).
		First(&item, "item_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &item, err
}

func (r *productRepository) Delete(ctx context.Context, id int64) (bool, error) {
	var deleted bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("item_id = ?", id).Delete(&entity.BulkPricing{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&entity.Item{}, "item_id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected > 0
		return nil
	})
	return deleted, err
}

func (r *productRepository) List(ctx context.Context, params *domainRepo.ProductFilterParams) ([]entity.Item, int64, error) {
	var items []entity.Item
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Item{}).Scopes(ActiveItems)

	if params.Search != "" {
		p := likePattern(params.Search)
		query = query.Where("name ILIKE ? OR upc ILIKE ?", p, p)
	}

	if params.CategoryID != nil {
		query = query.Where("category_id = ?", *params.CategoryID)
	}

	if params.LowStock {
		query = query.Where("enable_stock_alert = ? AND in_stock <= stock_alert_limit", true)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Sorting
	sortBy := "name"
	sortOrder := "ASC"
	if col, ok := sortable[params.SortBy]; ok {
		sortBy = col
	}
	if strings.EqualFold(params.SortOrder, "desc") {
		sortOrder = "DESC"
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Category").
		Order(sortBy + " " + sortOrder + ", item_id ASC").
		Find(&items).Error

	return items, total, err
}

func (r *productRepository) Names(ctx context.Context) ([]domainRepo.ItemName, error) {
	names := make([]domainRepo.ItemName, 0)
	err := r.db.WithContext(ctx).Model(&entity.Item{}).
		Scopes(ActiveItems).
		Select("item_id, name").
		Order("name ASC").
		Scan(&names).Error
	return names, err
}

func (r *productRepository) ReportRows(ctx context.Context) ([]domainRepo.ItemReportRow, error) {
	rows := make([]domainRepo.ItemReportRow, 0)
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			i.item_id, i.name, i.upc, i.item_cost, i.charged_cost, i.in_stock,
			i.vendor_name, i.case_cost, i.number_in_case, i.sales_tax,
			c.name AS category_name, i.pack, i.is_manual
		FROM items i
		LEFT JOIN categories c ON c.category_id = i.category_id
		WHERE i.is_active = true
		ORDER BY i.item_id
	`).Scan(&rows).Error
	return rows, err
}

func (r *productRepository) Categories(ctx context.Context) ([]entity.Category, error) {
	categories := make([]entity.Category, 0)
	err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("name ASC").
		Find(&categories).Error
	return categories, err
}

func (r *productRepository) CategoryItems(ctx context.Context, categoryID int64) ([]domainRepo.ItemName, error) {
	names := make([]domainRepo.ItemName, 0)
	err := r.db.WithContext(ctx).Model(&entity.Item{}).
		Scopes(ActiveItems).
		Select("item_id, name").
		Where("category_id = ?", categoryID).
		Order("name ASC").
		Scan(&names).Error
	return names, err
}
