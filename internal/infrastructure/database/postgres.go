package database

import (
	"fmt"
	"log"

	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/config"
	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/domain/entity"
	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/pkg/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig, debug bool) (*gorm.DB, error) {
	logLevel := logger.Warn
	if debug {
		logLevel = logger.Info
	}

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// Close releases the connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&entity.User{},

		// Catalog
		&entity.Category{},
		&entity.Item{},
		&entity.BulkPricing{},

		// Sales
		&entity.Company{},
		&entity.InvoiceHeader{},
		&entity.InvoiceLine{},

		// Audit trails
		&entity.ItemSalesAudit{},
		&entity.ItemQtyAudit{},
		&entity.ItemPriceAudit{},

		&entity.IdempotencyKey{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData creates the company settings row and, when ADMIN_USERNAME
// and ADMIN_PASSWORD are configured, the first admin account.
func SeedDefaultData(db *gorm.DB) error {
	log.Println("Seeding default data...")

	var companies int64
	if err := db.Model(&entity.Company{}).Count(&companies).Error; err != nil {
		return fmt.Errorf("count company rows: %w", err)
	}
	if companies == 0 {
		company := entity.Company{
			Name:     viper.GetString("PRINTER_STORE_NAME"),
			SalesTax: decimal.Zero,
		}
		if err := db.Create(&company).Error; err != nil {
			log.Printf("Warning: failed to create company settings: %v", err)
		}
	}

	adminUsername := viper.GetString("ADMIN_USERNAME")
	adminPassword := viper.GetString("ADMIN_PASSWORD")
	adminName := viper.GetString("ADMIN_NAME")

	if adminUsername != "" && adminPassword != "" {
		var existingAdmin entity.User
		if err := db.Where("username = ?", adminUsername).First(&existingAdmin).Error; err != nil {
			hashedPassword, err := utils.HashPassword(adminPassword)
			if err != nil {
				log.Printf("Warning: failed to hash admin password: %v", err)
			} else {
				if adminName == "" {
					adminName = "Administrator"
				}
				adminUser := entity.User{
					ID:       uuid.New(),
					Username: adminUsername,
					UserCode: "ADM001",
					FullName: adminName,
					Password: hashedPassword,
					Role:     entity.RoleAdmin,
					IsActive: true,
				}
				if err := db.Create(&adminUser).Error; err != nil {
					log.Printf("Warning: failed to create admin user: %v", err)
				} else {
					log.Printf("Admin user created: %s", adminUsername)
				}
			}
		} else {
			log.Printf("Admin user already exists: %s", adminUsername)
		}
	}

	log.Println("Default data seeding completed")
	return nil
}
