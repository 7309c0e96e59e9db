package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/kiranps/tradebooks-api/internal/domain/entity"
	domainRepo "github.com/kiranps/tradebooks-api/internal/domain/repository"
	"gorm.io/gorm"
)

type expenseVoucherRepository struct {
	db *gorm.DB
}

// NewExpenseVoucherRepository creates a new expense voucher repository
func NewExpenseVoucherRepository(db *gorm.DB) domainRepo.ExpenseVoucherRepository {
	return &expenseVoucherRepository{db: db}
}

func (r *expenseVoucherRepository) Create(ctx context.Context, voucher *entity.ExpenseVoucher) error {
	return r.db.WithContext(ctx).Create(voucher).Error
}

func (r *expenseVoucherRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.ExpenseVoucher, error) {
	var voucher entity.ExpenseVoucher
	err := r.db.WithContext(ctx).Scopes(BranchScope(ctx)).First(&voucher, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &voucher, err
}

// GetByVoucherNo stays unscoped: voucher numbers are unique across the
// company, so the duplicate check must see every branch.
func (r *expenseVoucherRepository) GetByVoucherNo(ctx context.Context, voucherNo string) (*entity.ExpenseVoucher, error) {
	var voucher entity.ExpenseVoucher
	err := r.db.WithContext(ctx).First(&voucher, "voucher_no = ?", voucherNo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &voucher, err
}

func (r *expenseVoucherRepository) Update(ctx context.Context, voucher *entity.ExpenseVoucher) error {
	return r.db.WithContext(ctx).Save(voucher).Error
}

func (r *expenseVoucherRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.ExpenseVoucher{}, "id = ?", id).Error
}

func (r *expenseVoucherRepository) List(ctx context.Context, params *domainRepo.ExpenseFilterParams) ([]entity.ExpenseVoucher, int64, error) {
	var vouchers []entity.ExpenseVoucher
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.ExpenseVoucher{}).Scopes(BranchScope(ctx))

	if params.Search != "" {
		query = query.Where("voucher_no ILIKE ? OR paid_to ILIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%")
	}

	if params.Mode != nil {
		query = query.Where("payment_mode = ?", *params.Mode)
	}

	if params.BranchID != nil {
		query = query.Where("branch_id = ?", *params.BranchID)
	}

	if params.StartDate != nil {
		query = query.Where("date >= ?", *params.StartDate)
	}

	if params.EndDate != nil {
		query = query.Where("date <= ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortBy := "created_at"
	sortOrder := "DESC"
	if params.SortBy != "" {
		sortBy = params.SortBy
	}
	if params.SortOrder == "ASC" || params.SortOrder == "asc" {
		sortOrder = "ASC"
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order(sortBy + " " + sortOrder).
		Find(&vouchers).Error

	return vouchers, total, err
}

func (r *expenseVoucherRepository) GetWithLines(ctx context.Context, id uuid.UUID) (*entity.ExpenseVoucher, error) {
	var voucher entity.ExpenseVoucher
	err := r.db.WithContext(ctx).
		Scopes(BranchScope(ctx)).
		Preload("Branch").
		Preload("Lines").
		First(&voucher, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &voucher, err
}

func (r *expenseVoucherRepository) GetNextVoucherNumber(ctx context.Context) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.ExpenseVoucher{}).Count(&count).Error
	return int(count) + 1, err
}

type expenseLineRepository struct {
	db *gorm.DB
}

// NewExpenseLineRepository creates a new expense line repository
func NewExpenseLineRepository(db *gorm.DB) domainRepo.ExpenseLineRepository {
	return &expenseLineRepository{db: db}
}

func (r *expenseLineRepository) CreateBatch(ctx context.Context, lines []entity.ExpenseLine) error {
	return r.db.WithContext(ctx).Create(&lines).Error
}

func (r *expenseLineRepository) GetByVoucherID(ctx context.Context, voucherID uuid.UUID) ([]entity.ExpenseLine, error) {
	var lines []entity.ExpenseLine
	err := r.db.WithContext(ctx).
		Where("voucher_id = ?", voucherID).
		Find(&lines).Error
	return lines, err
}

func (r *expenseLineRepository) DeleteByVoucherID(ctx context.Context, voucherID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.ExpenseLine{}, "voucher_id = ?", voucherID).Error
}
