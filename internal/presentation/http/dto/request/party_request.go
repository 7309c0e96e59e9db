package request

// CreateCustomerRequest represents a customer creation request
type CreateCustomerRequest struct {
	Name          string  `json:"name" binding:"required,min=2,max=255"`
	Email         *string `json:"email" binding:"omitempty,email"`
	Phone         *string `json:"phone" binding:"omitempty,max=50"`
	GSTIN         *string `json:"gstin" binding:"omitempty,max=50"`
	Address       *string `json:"address"`
	AccountHolder *string `json:"account_holder" binding:"omitempty,max=255"`
	AccountNumber *string `json:"account_number" binding:"omitempty,max=100"`
	BankName      *string `json:"bank_name" binding:"omitempty,max=255"`
}

// UpdateCustomerRequest represents a customer update request
type UpdateCustomerRequest struct {
	Name          *string `json:"name" binding:"omitempty,min=2,max=255"`
	Email         *string `json:"email" binding:"omitempty,email"`
	Phone         *string `json:"phone" binding:"omitempty,max=50"`
	GSTIN         *string `json:"gstin" binding:"omitempty,max=50"`
	Address       *string `json:"address"`
	AccountHolder *string `json:"account_holder" binding:"omitempty,max=255"`
	AccountNumber *string `json:"account_number" binding:"omitempty,max=100"`
	BankName      *string `json:"bank_name" binding:"omitempty,max=255"`
}

// CreateSupplierRequest represents a supplier creation request
type CreateSupplierRequest struct {
	Name          string  `json:"name" binding:"required,min=2,max=255"`
	FirmName      *string `json:"firm_name" binding:"omitempty,max=255"`
	Email         *string `json:"email" binding:"omitempty,email"`
	Phone         *string `json:"phone" binding:"omitempty,max=50"`
	GSTIN         *string `json:"gstin" binding:"omitempty,max=50"`
	Address       *string `json:"address"`
	AccountHolder *string `json:"account_holder" binding:"omitempty,max=255"`
	AccountNumber *string `json:"account_number" binding:"omitempty,max=100"`
	BankName      *string `json:"bank_name" binding:"omitempty,max=255"`
}

// UpdateSupplierRequest represents a supplier update request
type UpdateSupplierRequest struct {
	Name          *string `json:"name" binding:"omitempty,min=2,max=255"`
	FirmName      *string `json:"firm_name" binding:"omitempty,max=255"`
	Email         *string `json:"email" binding:"omitempty,email"`
	Phone         *string `json:"phone" binding:"omitempty,max=50"`
	GSTIN         *string `json:"gstin" binding:"omitempty,max=50"`
	Address       *string `json:"address"`
	AccountHolder *string `json:"account_holder" binding:"omitempty,max=255"`
	AccountNumber *string `json:"account_number" binding:"omitempty,max=100"`
	BankName      *string `json:"bank_name" binding:"omitempty,max=255"`
}
