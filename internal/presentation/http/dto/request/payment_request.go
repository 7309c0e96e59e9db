package request

import (
	"time"

	"github.com/kiranps/tradebooks-api/internal/domain/enum"
)

// RecordPaymentRequest represents a payment against a purchase invoice
type RecordPaymentRequest struct {
	Date        time.Time        `json:"date" binding:"required"`
	Amount      string           `json:"amount" binding:"required"`
	Mode        enum.PaymentMode `json:"mode"`
	ReferenceNo *string          `json:"reference_no" binding:"omitempty,max=100"`
	Note        *string          `json:"note"`
}

// PaymentFilterRequest represents payment filter parameters
type PaymentFilterRequest struct {
	InvoiceID string `form:"invoice_id"`
	Mode      string `form:"mode"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
}
