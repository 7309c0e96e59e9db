package repository

import (
	"context"
	"database/sql"
	"time"

	domainRepo "github.com/kiranps/tradebooks-api/internal/domain/repository"
	"gorm.io/gorm"
)

type dashboardRepository struct {
	db *gorm.DB
}

// NewDashboardRepository creates a new dashboard repository
func NewDashboardRepository(db *gorm.DB) domainRepo.DashboardRepository {
	return &dashboardRepository{db: db}
}

func (r *dashboardRepository) GetTopSuppliers(ctx context.Context, limit int) ([]domainRepo.TopSupplierResult, error) {
	var results []domainRepo.TopSupplierResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			s.id as supplier_id,
			s.name as supplier_name,
			COALESCE(SUM(pi.rounded_total), 0) as total_billed,
			COUNT(pi.id) as invoice_count
		FROM purchase_invoices pi
		JOIN suppliers s ON s.id = pi.supplier_id
		WHERE pi.status <> 3 AND pi.deleted_at IS NULL
		GROUP BY s.id, s.name
		ORDER BY total_billed DESC
		LIMIT ?
	`, limit).Scan(&results).Error

	if err != nil {
		return nil, err
	}

	return results, nil
}

func (r *dashboardRepository) GetTopItems(ctx context.Context, limit int) ([]domainRepo.TopItemResult, error) {
	var results []domainRepo.TopItemResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			l.item_name,
			l.hsn,
			COALESCE(SUM(l.quantity), 0) as quantity_in,
			COALESCE(SUM(l.taxable_amount), 0) as total_taxable
		FROM purchase_invoice_lines l
		JOIN purchase_invoices pi ON pi.id = l.invoice_id
		WHERE pi.status <> 3 AND pi.deleted_at IS NULL
		GROUP BY l.item_name, l.hsn
		ORDER BY total_taxable DESC
		LIMIT ?
	`, limit).Scan(&results).Error

	if err != nil {
		return nil, err
	}

	return results, nil
}

func (r *dashboardRepository) GetDailySpend(ctx context.Context, days int) ([]domainRepo.DailySpendResult, error) {
	results := make([]domainRepo.DailySpendResult, 0, days)
	now := time.Now()

	for i := days - 1; i >= 0; i-- {
		date := now.AddDate(0, 0, -i)
		startOfDay := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
		endOfDay := startOfDay.Add(24 * time.Hour)

		var purchases sql.NullFloat64
		err := r.db.WithContext(ctx).Raw(`
			SELECT COALESCE(SUM(rounded_total), 0)
			FROM purchase_invoices
			WHERE status <> 3 AND deleted_at IS NULL
			AND date >= ? AND date < ?
		`, startOfDay, endOfDay).Scan(&purchases).Error
		if err != nil {
			return nil, err
		}

		var expenses sql.NullFloat64
		err = r.db.WithContext(ctx).Raw(`
			SELECT COALESCE(SUM(rounded_total), 0)
			FROM expense_vouchers
			WHERE deleted_at IS NULL
			AND date >= ? AND date < ?
		`, startOfDay, endOfDay).Scan(&expenses).Error
		if err != nil {
			return nil, err
		}

		result := domainRepo.DailySpendResult{Date: startOfDay}
		if purchases.Valid {
			result.Purchases = purchases.Float64
		}
		if expenses.Valid {
			result.Expenses = expenses.Float64
		}
		results = append(results, result)
	}

	return results, nil
}

func (r *dashboardRepository) GetOutstandingPayable(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(balance_due), 0)
		FROM purchase_invoices
		WHERE status IN (0, 1) AND deleted_at IS NULL
	`).Scan(&total).Error

	return total, err
}

func (r *dashboardRepository) GetMonthlyPurchases(ctx context.Context) (float64, error) {
	now := time.Now()
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	var total float64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(rounded_total), 0)
		FROM purchase_invoices
		WHERE status <> 3 AND deleted_at IS NULL AND date >= ?
	`, startOfMonth).Scan(&total).Error

	return total, err
}

func (r *dashboardRepository) GetMonthlyExpenses(ctx context.Context) (float64, error) {
	now := time.Now()
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	var total float64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(rounded_total), 0)
		FROM expense_vouchers
		WHERE deleted_at IS NULL AND date >= ?
	`, startOfMonth).Scan(&total).Error

	return total, err
}
