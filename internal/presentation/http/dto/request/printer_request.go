package request

// PrintVoucherRequest is the payload for printing a document voucher.
type PrintVoucherRequest struct {
	Type string `json:"type" binding:"required,oneof=purchase_invoice quotation credit_note expense"`
	ID   string `json:"id" binding:"required"`
}
