package request

// CreateItemRequest represents an item creation request. Prices arrive as raw
// strings so malformed input degrades to zero instead of failing validation.
type CreateItemRequest struct {
	Name          string  `json:"name" binding:"required,min=1,max=255"`
	Code          string  `json:"code" binding:"omitempty,max=100"`
	HSN           *string `json:"hsn" binding:"omitempty,max=50"`
	Unit          string  `json:"unit" binding:"omitempty,max=50"`
	PurchasePrice string  `json:"purchase_price"`
	SellingPrice  string  `json:"selling_price"`
	TaxDescriptor string  `json:"tax_descriptor" binding:"omitempty,max=100"`
	Notes         *string `json:"notes"`
}

// UpdateItemRequest represents an item update request
type UpdateItemRequest struct {
	Name          *string `json:"name" binding:"omitempty,min=1,max=255"`
	HSN           *string `json:"hsn" binding:"omitempty,max=50"`
	Unit          *string `json:"unit" binding:"omitempty,max=50"`
	PurchasePrice *string `json:"purchase_price"`
	SellingPrice  *string `json:"selling_price"`
	TaxDescriptor *string `json:"tax_descriptor" binding:"omitempty,max=100"`
	Notes         *string `json:"notes"`
}

// ItemFilterRequest represents item filter parameters
type ItemFilterRequest struct {
	Search    string `form:"search"`
	HSN       string `form:"hsn"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order"`
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
}
