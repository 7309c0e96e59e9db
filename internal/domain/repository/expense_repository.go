package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kiranps/tradebooks-api/internal/domain/entity"
	"github.com/kiranps/tradebooks-api/internal/domain/enum"
	"github.com/kiranps/tradebooks-api/pkg/pagination"
)

// ExpenseVoucherRepository defines the interface for expense voucher data operations
type ExpenseVoucherRepository interface {
	Create(ctx context.Context, voucher *entity.ExpenseVoucher) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ExpenseVoucher, error)
	GetByVoucherNo(ctx context.Context, voucherNo string) (*entity.ExpenseVoucher, error)
	Update(ctx context.Context, voucher *entity.ExpenseVoucher) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *ExpenseFilterParams) ([]entity.ExpenseVoucher, int64, error)
	GetWithLines(ctx context.Context, id uuid.UUID) (*entity.ExpenseVoucher, error)
	GetNextVoucherNumber(ctx context.Context) (int, error)
}

// ExpenseFilterParams contains filtering parameters for expense voucher queries
type ExpenseFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Mode       *enum.PaymentMode
	BranchID   *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
	SortBy     string
	SortOrder  string
}

// ExpenseLineRepository defines the interface for expense line data operations
type ExpenseLineRepository interface {
	CreateBatch(ctx context.Context, lines []entity.ExpenseLine) error
	GetByVoucherID(ctx context.Context, voucherID uuid.UUID) ([]entity.ExpenseLine, error)
	DeleteByVoucherID(ctx context.Context, voucherID uuid.UUID) error
}
