package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TopSupplierResult represents a supplier's purchase volume
type TopSupplierResult struct {
	SupplierID   uuid.UUID
	SupplierName string
	TotalBilled  float64
	InvoiceCount int
}

// TopItemResult represents an item's purchase volume
type TopItemResult struct {
	ItemName     string
	HSN          string
	QuantityIn   float64
	TotalTaxable float64
}

// DailySpendResult represents purchase and expense spend for a single day
type DailySpendResult struct {
	Date      time.Time
	Purchases float64
	Expenses  float64
}

// DashboardRepository defines the interface for dashboard aggregation queries
type DashboardRepository interface {
	// GetTopSuppliers returns suppliers ordered by total billed amount
	GetTopSuppliers(ctx context.Context, limit int) ([]TopSupplierResult, error)

	// GetTopItems returns the most purchased items by taxable value
	GetTopItems(ctx context.Context, limit int) ([]TopItemResult, error)

	// GetDailySpend returns purchase and expense spend for the last N days
	GetDailySpend(ctx context.Context, days int) ([]DailySpendResult, error)

	// GetOutstandingPayable returns the sum of balance due across unpaid invoices
	GetOutstandingPayable(ctx context.Context) (float64, error)

	// GetMonthlyPurchases returns the total invoiced amount for the current month
	GetMonthlyPurchases(ctx context.Context) (float64, error)

	// GetMonthlyExpenses returns the total expense voucher amount for the current month
	GetMonthlyExpenses(ctx context.Context) (float64, error)
}
