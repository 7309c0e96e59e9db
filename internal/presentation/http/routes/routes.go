package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kiranps/tradebooks-api/internal/config"
	"github.com/kiranps/tradebooks-api/internal/domain/entity"
	domainRepo "github.com/kiranps/tradebooks-api/internal/domain/repository"
	"github.com/kiranps/tradebooks-api/internal/presentation/http/handler"
	"github.com/kiranps/tradebooks-api/internal/presentation/http/middleware"
	"github.com/kiranps/tradebooks-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth            *handler.AuthHandler
	User            *handler.UserHandler
	Branch          *handler.BranchHandler
	Employee        *handler.EmployeeHandler
	Customer        *handler.CustomerHandler
	Supplier        *handler.SupplierHandler
	Item            *handler.ItemHandler
	PurchaseInvoice *handler.PurchaseInvoiceHandler
	Quotation       *handler.QuotationHandler
	CreditNote      *handler.CreditNoteHandler
	Expense         *handler.ExpenseHandler
	Voucher         *handler.VoucherHandler
	Printer         *handler.PrinterHandler
	Settings        *handler.SettingsHandler
	Dashboard       *handler.DashboardHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	BranchRepo      domainRepo.BranchRepository
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-user rate limiter
		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		// Optional branch scoping via the X-Branch-ID header
		protected.Use(middleware.BranchMiddleware(deps.BranchRepo))

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/register", h.Auth.Register)
		auth.POST("/refresh", h.Auth.RefreshToken)
		// Google OAuth routes
		auth.GET("/google", h.Auth.GoogleLogin)
		auth.GET("/google/callback", h.Auth.GoogleCallback)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Auth/Profile routes
	protected.POST("/auth/logout", h.Auth.Logout)
	protected.GET("/profile", h.Auth.GetProfile)
	protected.PUT("/profile", h.Auth.UpdateProfile)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	// Dashboard
	protected.GET("/dashboard", h.Dashboard.GetStats)

	registerUserRoutes(protected, h)
	registerBranchRoutes(protected, h)
	registerEmployeeRoutes(protected, h)
	registerCustomerRoutes(protected, h)
	registerSupplierRoutes(protected, h)
	registerItemRoutes(protected, h)
	registerPurchaseInvoiceRoutes(protected, h, deps)
	registerQuotationRoutes(protected, h)
	registerCreditNoteRoutes(protected, h)
	registerExpenseRoutes(protected, h, deps)
	registerVoucherRoutes(protected, h)
	registerPrinterRoutes(protected, h)
	registerSettingsRoutes(protected, h)
}

func registerUserRoutes(protected *gin.RouterGroup, h *Handlers) {
	users := protected.Group("/users")
	users.Use(middleware.RequireRole(entity.RoleAdmin))
	{
		users.GET("", h.User.List)
		users.POST("", h.User.Create)
		users.GET("/:id", h.User.Get)
		users.PUT("/:id", h.User.Update)
		users.DELETE("/:id", h.User.Delete)
	}
}

func registerBranchRoutes(protected *gin.RouterGroup, h *Handlers) {
	branches := protected.Group("/branches")
	{
		branches.GET("", h.Branch.List)
		branches.GET("/:id", h.Branch.Get)

		admin := branches.Group("")
		admin.Use(middleware.RequireRole(entity.RoleAdmin))
		{
			admin.POST("", h.Branch.Create)
			admin.PUT("/:id", h.Branch.Update)
			admin.DELETE("/:id", h.Branch.Delete)
		}
	}
}

func registerEmployeeRoutes(protected *gin.RouterGroup, h *Handlers) {
	employees := protected.Group("/employees")
	{
		employees.GET("", h.Employee.List)
		employees.GET("/:id", h.Employee.Get)

		admin := employees.Group("")
		admin.Use(middleware.RequireRole(entity.RoleAdmin))
		{
			admin.POST("", h.Employee.Create)
			admin.PUT("/:id", h.Employee.Update)
			admin.DELETE("/:id", h.Employee.Delete)
		}
	}
}

func registerCustomerRoutes(protected *gin.RouterGroup, h *Handlers) {
	customers := protected.Group("/customers")
	{
		customers.GET("", h.Customer.List)
		customers.POST("", h.Customer.Create)
		customers.GET("/:id", h.Customer.Get)
		customers.PUT("/:id", h.Customer.Update)
		customers.DELETE("/:id", middleware.RequireRole(entity.RoleAdmin), h.Customer.Delete)
	}
}

func registerSupplierRoutes(protected *gin.RouterGroup, h *Handlers) {
	suppliers := protected.Group("/suppliers")
	{
		suppliers.GET("", h.Supplier.List)
		suppliers.POST("", h.Supplier.Create)
		suppliers.GET("/:id", h.Supplier.Get)
		suppliers.PUT("/:id", h.Supplier.Update)
		suppliers.DELETE("/:id", middleware.RequireRole(entity.RoleAdmin), h.Supplier.Delete)
	}
}

func registerItemRoutes(protected *gin.RouterGroup, h *Handlers) {
	items := protected.Group("/items")
	{
		items.GET("", h.Item.List)
		items.GET("/search", h.Item.Search)
		items.POST("", h.Item.Create)
		items.POST("/import", h.Item.Import)
		items.GET("/:id", h.Item.Get)
		items.PUT("/:id", h.Item.Update)
		items.DELETE("/:id", middleware.RequireRole(entity.RoleAdmin), h.Item.Delete)
	}
}

func registerPurchaseInvoiceRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	idempotent := middleware.Idempotency(middleware.IdempotencyConfig{
		Repo: deps.IdempotencyRepo,
	})

	invoices := protected.Group("/purchase-invoices")
	{
		invoices.GET("", h.PurchaseInvoice.List)
		// Invoice creation uses idempotency middleware to prevent duplicates
		invoices.POST("", idempotent, h.PurchaseInvoice.Create)
		invoices.GET("/unpaid", h.PurchaseInvoice.GetUnpaid)
		invoices.GET("/:id", h.PurchaseInvoice.Get)
		invoices.PUT("/:id", h.PurchaseInvoice.Update)
		invoices.DELETE("/:id", h.PurchaseInvoice.Delete)
		invoices.POST("/:id/cancel", h.PurchaseInvoice.Cancel)
		invoices.GET("/:id/payments", h.PurchaseInvoice.ListPayments)
		invoices.POST("/:id/payments", idempotent, h.PurchaseInvoice.RecordPayment)
		invoices.DELETE("/:id/payments/:paymentId", h.PurchaseInvoice.DeletePayment)
	}
}

func registerQuotationRoutes(protected *gin.RouterGroup, h *Handlers) {
	quotations := protected.Group("/quotations")
	{
		quotations.GET("", h.Quotation.List)
		quotations.POST("", h.Quotation.Create)
		quotations.GET("/:id", h.Quotation.Get)
		quotations.PUT("/:id", h.Quotation.Update)
		quotations.PUT("/:id/status", h.Quotation.UpdateStatus)
		quotations.DELETE("/:id", h.Quotation.Delete)
	}
}

func registerCreditNoteRoutes(protected *gin.RouterGroup, h *Handlers) {
	creditNotes := protected.Group("/credit-notes")
	{
		creditNotes.GET("", h.CreditNote.List)
		creditNotes.POST("", h.CreditNote.Create)
		creditNotes.GET("/:id", h.CreditNote.Get)
		creditNotes.PUT("/:id", h.CreditNote.Update)
		creditNotes.DELETE("/:id", h.CreditNote.Delete)
	}
}

func registerExpenseRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	expenses := protected.Group("/expenses")
	{
		expenses.GET("", h.Expense.List)
		expenses.POST("", middleware.Idempotency(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Expense.Create)
		expenses.GET("/:id", h.Expense.Get)
		expenses.PUT("/:id", h.Expense.Update)
		expenses.DELETE("/:id", h.Expense.Delete)
	}
}

func registerVoucherRoutes(protected *gin.RouterGroup, h *Handlers) {
	vouchers := protected.Group("/vouchers")
	{
		vouchers.GET("/purchase-invoices/:id", h.Voucher.PurchaseInvoice)
		vouchers.GET("/quotations/:id", h.Voucher.Quotation)
		vouchers.GET("/credit-notes/:id", h.Voucher.CreditNote)
		vouchers.GET("/expenses/:id", h.Voucher.Expense)
	}
}

func registerPrinterRoutes(protected *gin.RouterGroup, h *Handlers) {
	printerGroup := protected.Group("/printer")
	{
		printerGroup.GET("/status", h.Printer.GetStatus)
		printerGroup.POST("/test", h.Printer.TestPrint)
		printerGroup.POST("/print", h.Printer.PrintVoucher)
	}
}

func registerSettingsRoutes(protected *gin.RouterGroup, h *Handlers) {
	settings := protected.Group("/settings")
	{
		settings.GET("", h.Settings.Get)
		settings.PUT("", middleware.RequireRole(entity.RoleAdmin), h.Settings.Update)
	}
}
