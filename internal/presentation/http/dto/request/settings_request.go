package request

// UpdateSettingsRequest represents a company settings update request
type UpdateSettingsRequest struct {
	CompanyName         *string `json:"company_name" binding:"omitempty,max=255"`
	Address             *string `json:"address"`
	Phone               *string `json:"phone" binding:"omitempty,max=50"`
	Email               *string `json:"email" binding:"omitempty,email"`
	GSTIN               *string `json:"gstin" binding:"omitempty,max=50"`
	InvoicePrefix       *string `json:"invoice_prefix" binding:"omitempty,max=20"`
	QuotationPrefix     *string `json:"quotation_prefix" binding:"omitempty,max=20"`
	CreditNotePrefix    *string `json:"credit_note_prefix" binding:"omitempty,max=20"`
	ExpensePrefix       *string `json:"expense_prefix" binding:"omitempty,max=20"`
	Currency            *string `json:"currency" binding:"omitempty,max=10"`
	AutoRoundOffDefault *bool   `json:"auto_round_off_default"`
}
