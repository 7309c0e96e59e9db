package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"

	"github.com/kiranps/tradebooks-api/internal/domain/entity"
)

func newDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	require.NoError(t, err)
	return db
}

func TestBranchScopeFiltersByBranch(t *testing.T) {
	db := newDryRunDB(t)
	branchID := uuid.New()
	ctx := WithBranch(context.Background(), branchID)

	var invoices []entity.PurchaseInvoice
	tx := db.Model(&entity.PurchaseInvoice{}).Scopes(BranchScope(ctx)).Find(&invoices)
	require.NoError(t, tx.Error)

	assert.Contains(t, tx.Statement.SQL.String(), "branch_id")
	assert.Contains(t, tx.Statement.Vars, branchID)
}

func TestBranchScopeWithoutBranchInContext(t *testing.T) {
	db := newDryRunDB(t)

	var invoices []entity.PurchaseInvoice
	tx := db.Model(&entity.PurchaseInvoice{}).Scopes(BranchScope(context.Background())).Find(&invoices)
	require.NoError(t, tx.Error)

	assert.NotContains(t, tx.Statement.SQL.String(), "branch_id")
}

func TestBranchScopeSkippedForAdmin(t *testing.T) {
	db := newDryRunDB(t)
	ctx := WithBranch(context.Background(), uuid.New())
	ctx = WithSkipBranchScope(ctx, true)

	var quotations []entity.Quotation
	tx := db.Model(&entity.Quotation{}).Scopes(BranchScope(ctx)).Find(&quotations)
	require.NoError(t, tx.Error)

	assert.NotContains(t, tx.Statement.SQL.String(), "branch_id")
}

func TestDocumentRepositoriesApplyBranchScope(t *testing.T) {
	db := newDryRunDB(t)
	branchID := uuid.New()
	ctx := WithBranch(context.Background(), branchID)
	id := uuid.New()

	repos := map[string]func() *gorm.DB{
		"purchase_invoice": func() *gorm.DB {
			var inv []entity.PurchaseInvoice
			return db.WithContext(ctx).Scopes(BranchScope(ctx)).Find(&inv, "id = ?", id)
		},
		"quotation": func() *gorm.DB {
			var q []entity.Quotation
			return db.WithContext(ctx).Scopes(BranchScope(ctx)).Find(&q, "id = ?", id)
		},
		"credit_note": func() *gorm.DB {
			var n []entity.CreditNote
			return db.WithContext(ctx).Scopes(BranchScope(ctx)).Find(&n, "id = ?", id)
		},
		"expense_voucher": func() *gorm.DB {
			var v []entity.ExpenseVoucher
			return db.WithContext(ctx).Scopes(BranchScope(ctx)).Find(&v, "id = ?", id)
		},
	}

	for name, query := range repos {
		tx := query()
		assert.Contains(t, tx.Statement.SQL.String(), "branch_id", name)
	}
}
