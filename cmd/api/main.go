package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kiranps/tradebooks-api/internal/application/service"
	"github.com/kiranps/tradebooks-api/internal/config"
	domainRepo "github.com/kiranps/tradebooks-api/internal/domain/repository"
	"github.com/kiranps/tradebooks-api/internal/infrastructure/database"
	"github.com/kiranps/tradebooks-api/internal/infrastructure/repository"
	"github.com/kiranps/tradebooks-api/internal/presentation/http/handler"
	"github.com/kiranps/tradebooks-api/internal/presentation/http/routes"
	"github.com/kiranps/tradebooks-api/pkg/oauth"
	"github.com/kiranps/tradebooks-api/pkg/printer"
	"github.com/kiranps/tradebooks-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db, &cfg.Seed); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	branchRepo := repository.NewBranchRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	itemRepo := repository.NewItemRepository(db)
	invoiceRepo := repository.NewPurchaseInvoiceRepository(db)
	invoiceLineRepo := repository.NewPurchaseInvoiceLineRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	quotationRepo := repository.NewQuotationRepository(db)
	quotationLineRepo := repository.NewQuotationLineRepository(db)
	creditNoteRepo := repository.NewCreditNoteRepository(db)
	creditNoteLineRepo := repository.NewCreditNoteLineRepository(db)
	expenseRepo := repository.NewExpenseVoucherRepository(db)
	expenseLineRepo := repository.NewExpenseLineRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	dashboardRepo := repository.NewDashboardRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize Google OAuth service
	googleOAuthService := oauth.NewGoogleService(oauth.Config{
		ClientID:     cfg.GoogleOAuth.ClientID,
		ClientSecret: cfg.GoogleOAuth.ClientSecret,
		RedirectURL:  cfg.GoogleOAuth.RedirectURL,
	})

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	userService := service.NewUserService(userRepo, branchRepo)
	branchService := service.NewBranchService(branchRepo)
	employeeService := service.NewEmployeeService(employeeRepo, branchRepo)
	customerService := service.NewCustomerService(customerRepo)
	supplierService := service.NewSupplierService(supplierRepo)
	itemService := service.NewItemService(itemRepo)
	invoiceService := service.NewPurchaseInvoiceService(invoiceRepo, invoiceLineRepo, paymentRepo, itemRepo, supplierRepo)
	quotationService := service.NewQuotationService(quotationRepo, quotationLineRepo, itemRepo, customerRepo)
	creditNoteService := service.NewCreditNoteService(creditNoteRepo, creditNoteLineRepo, itemRepo, customerRepo)
	expenseService := service.NewExpenseService(expenseRepo, expenseLineRepo)
	voucherService := service.NewVoucherService(invoiceRepo, quotationRepo, creditNoteRepo, expenseRepo, settingsRepo)
	settingsService := service.NewSettingsService(settingsRepo)
	dashboardService := service.NewDashboardService(dashboardRepo)

	// Initialize thermal printer
	thermalPrinter, err := printer.New(cfg.Printer.Type, cfg.Printer.USBPath, cfg.Printer.Address)
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		thermalPrinter = printer.NewNullPrinter()
	}
	printerService := service.NewPrinterService(thermalPrinter, voucherService, cfg.Printer.Type)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:            handler.NewAuthHandler(authService, googleOAuthService),
		User:            handler.NewUserHandler(userService),
		Branch:          handler.NewBranchHandler(branchService),
		Employee:        handler.NewEmployeeHandler(employeeService),
		Customer:        handler.NewCustomerHandler(customerService),
		Supplier:        handler.NewSupplierHandler(supplierService),
		Item:            handler.NewItemHandler(itemService),
		PurchaseInvoice: handler.NewPurchaseInvoiceHandler(invoiceService),
		Quotation:       handler.NewQuotationHandler(quotationService),
		CreditNote:      handler.NewCreditNoteHandler(creditNoteService),
		Expense:         handler.NewExpenseHandler(expenseService),
		Voucher:         handler.NewVoucherHandler(voucherService),
		Printer:         handler.NewPrinterHandler(printerService),
		Settings:        handler.NewSettingsHandler(settingsService),
		Dashboard:       handler.NewDashboardHandler(dashboardService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		BranchRepo:      branchRepo,
		IdempotencyRepo: idempotencyRepo,
	})

	// Periodic cleanup of expired idempotency keys
	go idempotencyCleanupLoop(idempotencyRepo)

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func idempotencyCleanupLoop(repo domainRepo.IdempotencyRepository) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := repo.DeleteExpired(ctx); err != nil {
			log.Printf("Warning: failed to clean up idempotency keys: %v", err)
		}
		cancel()
	}
}
