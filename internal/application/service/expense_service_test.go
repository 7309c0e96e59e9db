package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiranps/tradebooks-api/internal/domain/enum"
	"github.com/kiranps/tradebooks-api/pkg/apperror"
)

func newExpenseServiceFixture() (*ExpenseService, *fakeExpenseRepo) {
	lineRepo := newFakeExpenseLineRepo()
	voucherRepo := newFakeExpenseRepo(lineRepo)
	return NewExpenseService(voucherRepo, lineRepo), voucherRepo
}

func TestCreateExpenseVoucherTotals(t *testing.T) {
	svc, _ := newExpenseServiceFixture()
	ctx := context.Background()

	voucher, err := svc.CreateExpenseVoucher(ctx, &CreateExpenseVoucherInput{
		UserID:       uuid.New(),
		Date:         time.Now(),
		PaidTo:       "City Transporters",
		PaymentMode:  enum.PaymentModeCash,
		AutoRoundOff: true,
		AmountPaid:   "200",
		Lines: []ExpenseLineInput{
			{Description: "Freight", Amount: "450.25"},
			{Description: "Loading charges", Amount: "120.40"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "EXP-000001", voucher.VoucherNo)
	require.Len(t, voucher.Lines, 2)
	assert.InDelta(t, 570.65, voucher.SubTotal, 1e-9)
	assert.True(t, voucher.AutoRoundOff)
	assert.InDelta(t, 571, voucher.RoundedTotal, 1e-9)
	assert.InDelta(t, 0.35, voucher.RoundOffDelta, 1e-9)
	assert.InDelta(t, 200, voucher.AmountPaid, 1e-9)
	assert.InDelta(t, 371, voucher.BalanceDue, 1e-9)
}

func TestCreateExpenseVoucherWithoutRounding(t *testing.T) {
	svc, _ := newExpenseServiceFixture()
	ctx := context.Background()

	voucher, err := svc.CreateExpenseVoucher(ctx, &CreateExpenseVoucherInput{
		UserID:      uuid.New(),
		Date:        time.Now(),
		PaidTo:      "Stationery World",
		PaymentMode: enum.PaymentModeUPI,
		Lines: []ExpenseLineInput{
			{Description: "Printer paper", Amount: "349.60"},
		},
	})
	require.NoError(t, err)

	assert.InDelta(t, 349.60, voucher.SubTotal, 1e-9)
	assert.InDelta(t, 349.60, voucher.RoundedTotal, 1e-9)
	assert.InDelta(t, 0, voucher.RoundOffDelta, 1e-9)
	assert.InDelta(t, 349.60, voucher.BalanceDue, 1e-9)
}

func TestUpdateExpenseVoucherRecomputesTotals(t *testing.T) {
	svc, _ := newExpenseServiceFixture()
	ctx := context.Background()
	userID := uuid.New()

	voucher, err := svc.CreateExpenseVoucher(ctx, &CreateExpenseVoucherInput{
		UserID:      userID,
		Date:        time.Now(),
		PaidTo:      "City Transporters",
		PaymentMode: enum.PaymentModeCash,
		Lines: []ExpenseLineInput{
			{Description: "Freight", Amount: "450.25"},
		},
	})
	require.NoError(t, err)

	updated, err := svc.UpdateExpenseVoucher(ctx, &UpdateExpenseVoucherInput{
		ID:           voucher.ID,
		UserID:       userID,
		Date:         voucher.Date,
		PaidTo:       voucher.PaidTo,
		PaymentMode:  voucher.PaymentMode,
		AutoRoundOff: true,
		AmountPaid:   "100.50",
		Lines: []ExpenseLineInput{
			{Description: "Freight", Amount: "450.25"},
			{Description: "Unloading", Amount: "75.25"},
		},
	})
	require.NoError(t, err)

	require.Len(t, updated.Lines, 2)
	assert.InDelta(t, 525.50, updated.SubTotal, 1e-9)
	assert.InDelta(t, 526, updated.RoundedTotal, 1e-9)
	assert.InDelta(t, 0.50, updated.RoundOffDelta, 1e-9)
	assert.InDelta(t, 425.50, updated.BalanceDue, 1e-9)
}

func TestUpdateExpenseVoucherForbiddenForOtherUser(t *testing.T) {
	svc, _ := newExpenseServiceFixture()
	ctx := context.Background()

	voucher, err := svc.CreateExpenseVoucher(ctx, &CreateExpenseVoucherInput{
		UserID:      uuid.New(),
		Date:        time.Now(),
		PaidTo:      "City Transporters",
		PaymentMode: enum.PaymentModeCash,
		Lines:       []ExpenseLineInput{{Description: "Freight", Amount: "100"}},
	})
	require.NoError(t, err)

	_, err = svc.UpdateExpenseVoucher(ctx, &UpdateExpenseVoucherInput{
		ID:          voucher.ID,
		UserID:      uuid.New(),
		Date:        voucher.Date,
		PaidTo:      voucher.PaidTo,
		PaymentMode: voucher.PaymentMode,
	})
	assert.ErrorIs(t, err, apperror.ErrForbidden)
}
