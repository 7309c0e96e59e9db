package database

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/kiranps/tradebooks-api/internal/config"
	"github.com/kiranps/tradebooks-api/internal/domain/entity"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Info

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

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		// People and places
		&entity.User{},
		&entity.Branch{},
		&entity.Employee{},
		&entity.Customer{},
		&entity.Supplier{},

		// Catalog
		&entity.Item{},

		// Documents
		&entity.PurchaseInvoice{},
		&entity.PurchaseInvoiceLine{},
		&entity.Payment{},
		&entity.Quotation{},
		&entity.QuotationLine{},
		&entity.CreditNote{},
		&entity.CreditNoteLine{},
		&entity.ExpenseVoucher{},
		&entity.ExpenseLine{},

		// System entities
		&entity.CompanySettings{},
		&entity.IdempotencyKey{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData seeds the database with the default branch, company settings
// and an initial admin user so a fresh install is usable immediately.
func SeedDefaultData(db *gorm.DB, seed *config.SeedConfig) error {
	log.Println("Seeding default data...")

	// Default branch, so documents have somewhere to attach
	var branch entity.Branch
	if err := db.Where("code = ?", "HO").First(&branch).Error; err != nil {
		branch = entity.Branch{
			Name: "Head Office",
			Code: "HO",
		}
		if err := db.Create(&branch).Error; err != nil {
			log.Printf("Warning: failed to create default branch: %v", err)
		}
	}

	// Single company settings row
	var settings entity.CompanySettings
	if err := db.First(&settings).Error; err != nil {
		settings = entity.CompanySettings{
			InvoicePrefix:       "PI-",
			QuotationPrefix:     "QT-",
			CreditNotePrefix:    "CN-",
			ExpensePrefix:       "EXP-",
			Currency:            "INR",
			AutoRoundOffDefault: true,
		}
		if err := db.Create(&settings).Error; err != nil {
			log.Printf("Warning: failed to create company settings: %v", err)
		}
	}

	// Initial admin user
	if seed.AdminEmail != "" && seed.AdminPassword != "" {
		var existing entity.User
		if err := db.Where("email = ?", seed.AdminEmail).First(&existing).Error; err != nil {
			hashedPassword, err := bcrypt.GenerateFromPassword([]byte(seed.AdminPassword), bcrypt.DefaultCost)
			if err != nil {
				log.Printf("Warning: failed to hash admin password: %v", err)
			} else {
				admin := entity.User{
					ID:        uuid.New(),
					FirstName: "Admin",
					LastName:  "User",
					Email:     seed.AdminEmail,
					Password:  string(hashedPassword),
					Role:      entity.RoleAdmin,
				}
				if err := db.Create(&admin).Error; err != nil {
					log.Printf("Warning: failed to create admin user: %v", err)
				} else {
					log.Printf("Admin user created: %s", seed.AdminEmail)
				}
			}
		}
	}

	log.Println("Default data seeding completed")
	return nil
}
