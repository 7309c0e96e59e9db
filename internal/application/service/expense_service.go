package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kiranps/tradebooks-api/internal/domain/entity"
	"github.com/kiranps/tradebooks-api/internal/domain/enum"
	"github.com/kiranps/tradebooks-api/internal/domain/repository"
	"github.com/kiranps/tradebooks-api/internal/finance"
	"github.com/kiranps/tradebooks-api/pkg/apperror"
	"github.com/kiranps/tradebooks-api/pkg/pagination"
)

// ExpenseService handles expense voucher operations. Expense lines are plain
// description-amount pairs, so each one runs through the line engine as a
// quantity-1, discount-free, untaxed row.
type ExpenseService struct {
	voucherRepo repository.ExpenseVoucherRepository
	lineRepo    repository.ExpenseLineRepository
}

// NewExpenseService creates a new expense service
func NewExpenseService(
	voucherRepo repository.ExpenseVoucherRepository,
	lineRepo repository.ExpenseLineRepository,
) *ExpenseService {
	return &ExpenseService{
		voucherRepo: voucherRepo,
		lineRepo:    lineRepo,
	}
}

// ExpenseLineInput is one expense row as it arrives from the client
type ExpenseLineInput struct {
	Description string
	Amount      string
}

// CreateExpenseVoucherInput represents the input for creating an expense voucher
type CreateExpenseVoucherInput struct {
	UserID       uuid.UUID
	BranchID     *uuid.UUID
	Date         time.Time
	PaidTo       string
	PaymentMode  enum.PaymentMode
	AutoRoundOff bool
	AmountPaid   string
	Note         *string
	Lines        []ExpenseLineInput
}

// CreateExpenseVoucher creates a new expense voucher
func (s *ExpenseService) CreateExpenseVoucher(ctx context.Context, input *CreateExpenseVoucherInput) (*entity.ExpenseVoucher, error) {
	nextNum, err := s.voucherRepo.GetNextVoucherNumber(ctx)
	if err != nil {
		return nil, err
	}
	voucherNo := fmt.Sprintf("EXP-%06d", nextNum)

	voucher := &entity.ExpenseVoucher{
		UserID:      input.UserID,
		BranchID:    input.BranchID,
		Date:        input.Date,
		VoucherNo:   voucherNo,
		PaidTo:      input.PaidTo,
		PaymentMode: input.PaymentMode,
		Note:        input.Note,
	}

	lines := expenseLinesFromInput(input.Lines)
	applyExpenseTotals(voucher, lines, input.AutoRoundOff, finance.ParseAmount(input.AmountPaid))

	if err := s.voucherRepo.Create(ctx, voucher); err != nil {
		return nil, err
	}

	for i := range lines {
		lines[i].VoucherID = voucher.ID
	}
	if len(lines) > 0 {
		if err := s.lineRepo.CreateBatch(ctx, lines); err != nil {
			return nil, err
		}
	}

	return s.voucherRepo.GetWithLines(ctx, voucher.ID)
}

func expenseLinesFromInput(inputs []ExpenseLineInput) []entity.ExpenseLine {
	lines := make([]entity.ExpenseLine, 0, len(inputs))
	for _, in := range inputs {
		amounts := finance.ComputeLine(1, finance.ParseAmount(in.Amount), 0, 0)
		lines = append(lines, entity.ExpenseLine{
			Description: in.Description,
			Amount:      amounts.LineTotal,
		})
	}
	return lines
}

func applyExpenseTotals(voucher *entity.ExpenseVoucher, lines []entity.ExpenseLine, autoRoundOff bool, amountPaid float64) {
	items := make([]finance.LineItem, 0, len(lines))
	for i := range lines {
		items = append(items, finance.LineItem{
			Quantity: 1,
			UnitRate: lines[i].Amount,
			Amounts: finance.LineAmounts{
				TaxableAmount: lines[i].Amount,
				LineTotal:     lines[i].Amount,
			},
		})
	}

	totals := finance.ComputeTotals(items, finance.Adjustments{
		AutoRoundOff: autoRoundOff,
		AmountPaid:   amountPaid,
	})

	voucher.SubTotal = totals.SubTotal
	voucher.AutoRoundOff = autoRoundOff
	voucher.RoundedTotal = totals.RoundedTotal
	voucher.RoundOffDelta = totals.RoundOffDelta
	voucher.AmountPaid = amountPaid
	voucher.BalanceDue = totals.BalanceDue
}

// GetExpenseVoucher retrieves an expense voucher by ID
func (s *ExpenseService) GetExpenseVoucher(ctx context.Context, id uuid.UUID) (*entity.ExpenseVoucher, error) {
	voucher, err := s.voucherRepo.GetWithLines(ctx, id)
	if err != nil {
		return nil, err
	}
	if voucher == nil {
		return nil, apperror.NewNotFoundError("Expense voucher")
	}
	return voucher, nil
}

// ListExpenseVouchersInput represents the input for listing expense vouchers
type ListExpenseVouchersInput struct {
	Pagination *pagination.PaginationParams
	Search     string
	Mode       *enum.PaymentMode
	BranchID   *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
}

// ListExpenseVouchers lists expense vouchers with filtering
func (s *ExpenseService) ListExpenseVouchers(ctx context.Context, input *ListExpenseVouchersInput) (*pagination.PaginatedResult[entity.ExpenseVoucher], error) {
	params := &repository.ExpenseFilterParams{
		Pagination: input.Pagination,
		Search:     input.Search,
		Mode:       input.Mode,
		BranchID:   input.BranchID,
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
	}

	vouchers, total, err := s.voucherRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(input.Pagination.Page, input.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(vouchers, pag), nil
}

// UpdateExpenseVoucherInput represents the input for updating an expense voucher
type UpdateExpenseVoucherInput struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	IsAdmin      bool
	BranchID     *uuid.UUID
	Date         time.Time
	PaidTo       string
	PaymentMode  enum.PaymentMode
	AutoRoundOff bool
	AmountPaid   string
	Note         *string
	Lines        []ExpenseLineInput
}

// UpdateExpenseVoucher replaces the voucher's lines and recomputes its totals
func (s *ExpenseService) UpdateExpenseVoucher(ctx context.Context, input *UpdateExpenseVoucherInput) (*entity.ExpenseVoucher, error) {
	voucher, err := s.voucherRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if voucher == nil {
		return nil, apperror.NewNotFoundError("Expense voucher")
	}

	if !input.IsAdmin && voucher.UserID != input.UserID {
		return nil, apperror.ErrForbidden
	}

	voucher.BranchID = input.BranchID
	voucher.Date = input.Date
	voucher.PaidTo = input.PaidTo
	voucher.PaymentMode = input.PaymentMode
	voucher.Note = input.Note

	lines := expenseLinesFromInput(input.Lines)
	applyExpenseTotals(voucher, lines, input.AutoRoundOff, finance.ParseAmount(input.AmountPaid))

	if err := s.voucherRepo.Update(ctx, voucher); err != nil {
		return nil, err
	}

	if err := s.lineRepo.DeleteByVoucherID(ctx, voucher.ID); err != nil {
		return nil, err
	}
	for i := range lines {
		lines[i].VoucherID = voucher.ID
	}
	if len(lines) > 0 {
		if err := s.lineRepo.CreateBatch(ctx, lines); err != nil {
			return nil, err
		}
	}

	return s.voucherRepo.GetWithLines(ctx, voucher.ID)
}

// DeleteExpenseVoucher deletes an expense voucher
func (s *ExpenseService) DeleteExpenseVoucher(ctx context.Context, userID, id uuid.UUID, isAdmin bool) error {
	voucher, err := s.voucherRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if voucher == nil {
		return apperror.NewNotFoundError("Expense voucher")
	}

	if !isAdmin && voucher.UserID != userID {
		return apperror.ErrForbidden
	}

	if err := s.lineRepo.DeleteByVoucherID(ctx, id); err != nil {
		return err
	}

	return s.voucherRepo.Delete(ctx, id)
}
