package request

import (
	"time"

	"github.com/kiranps/tradebooks-api/internal/domain/enum"
)

// ExpenseLineRequest represents one line of an expense voucher
type ExpenseLineRequest struct {
	Description string `json:"description" binding:"required,max=255"`
	Amount      string `json:"amount"`
}

// CreateExpenseVoucherRequest represents an expense voucher creation request
type CreateExpenseVoucherRequest struct {
	Date         time.Time            `json:"date" binding:"required"`
	PaidTo       string               `json:"paid_to" binding:"omitempty,max=255"`
	PaymentMode  enum.PaymentMode     `json:"payment_mode"`
	AutoRoundOff bool                 `json:"auto_round_off"`
	AmountPaid   string               `json:"amount_paid"`
	Note         *string              `json:"note"`
	Lines        []ExpenseLineRequest `json:"lines"`
}

// UpdateExpenseVoucherRequest represents an expense voucher update request
type UpdateExpenseVoucherRequest struct {
	Date         time.Time            `json:"date" binding:"required"`
	PaidTo       string               `json:"paid_to" binding:"omitempty,max=255"`
	PaymentMode  enum.PaymentMode     `json:"payment_mode"`
	AutoRoundOff bool                 `json:"auto_round_off"`
	AmountPaid   string               `json:"amount_paid"`
	Note         *string              `json:"note"`
	Lines        []ExpenseLineRequest `json:"lines"`
}

// ExpenseFilterRequest represents expense voucher filter parameters
type ExpenseFilterRequest struct {
	Search    string `form:"search"`
	Mode      string `form:"mode"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
}
