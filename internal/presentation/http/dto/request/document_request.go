package request

import (
	"time"

	"github.com/google/uuid"

	"github.com/kiranps/tradebooks-api/internal/domain/enum"
)

// DocumentLineRequest represents one line of a financial document. Numeric
// fields arrive as raw strings and degrade to their defaults when malformed.
type DocumentLineRequest struct {
	ItemID          *uuid.UUID `json:"item_id"`
	ItemName        string     `json:"item_name" binding:"omitempty,max=255"`
	HSN             string     `json:"hsn" binding:"omitempty,max=50"`
	Unit            string     `json:"unit" binding:"omitempty,max=50"`
	Quantity        string     `json:"quantity"`
	UnitRate        string     `json:"unit_rate"`
	DiscountPercent string     `json:"discount_percent"`
	TaxDescriptor   string     `json:"tax_descriptor" binding:"omitempty,max=100"`
}

// CreatePurchaseInvoiceRequest represents a purchase invoice creation request
type CreatePurchaseInvoiceRequest struct {
	SupplierID        *uuid.UUID            `json:"supplier_id"`
	Date              time.Time             `json:"date" binding:"required"`
	InvoiceNo         string                `json:"invoice_no" binding:"omitempty,max=100"`
	AdditionalCharges string                `json:"additional_charges"`
	OverallDiscount   string                `json:"overall_discount"`
	DiscountType      enum.DiscountType     `json:"discount_type"`
	AutoRoundOff      bool                  `json:"auto_round_off"`
	AmountPaid        string                `json:"amount_paid"`
	Note              *string               `json:"note"`
	Lines             []DocumentLineRequest `json:"lines"`
}

// UpdatePurchaseInvoiceRequest represents a purchase invoice update request
type UpdatePurchaseInvoiceRequest struct {
	SupplierID        *uuid.UUID            `json:"supplier_id"`
	Date              time.Time             `json:"date" binding:"required"`
	AdditionalCharges string                `json:"additional_charges"`
	OverallDiscount   string                `json:"overall_discount"`
	DiscountType      enum.DiscountType     `json:"discount_type"`
	AutoRoundOff      bool                  `json:"auto_round_off"`
	Note              *string               `json:"note"`
	Lines             []DocumentLineRequest `json:"lines"`
}

// PurchaseInvoiceFilterRequest represents purchase invoice filter parameters
type PurchaseInvoiceFilterRequest struct {
	Search     string `form:"search"`
	Status     string `form:"status"`
	SupplierID string `form:"supplier_id"`
	StartDate  string `form:"start_date"`
	EndDate    string `form:"end_date"`
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
}

// CreateQuotationRequest represents a quotation creation request
type CreateQuotationRequest struct {
	CustomerID        *uuid.UUID            `json:"customer_id"`
	Date              time.Time             `json:"date" binding:"required"`
	AdditionalCharges string                `json:"additional_charges"`
	OverallDiscount   string                `json:"overall_discount"`
	DiscountType      enum.DiscountType     `json:"discount_type"`
	AutoRoundOff      bool                  `json:"auto_round_off"`
	Status            enum.QuotationStatus  `json:"status"`
	Note              *string               `json:"note"`
	Lines             []DocumentLineRequest `json:"lines"`
}

// UpdateQuotationRequest represents a quotation update request
type UpdateQuotationRequest struct {
	CustomerID        *uuid.UUID            `json:"customer_id"`
	Date              time.Time             `json:"date" binding:"required"`
	AdditionalCharges string                `json:"additional_charges"`
	OverallDiscount   string                `json:"overall_discount"`
	DiscountType      enum.DiscountType     `json:"discount_type"`
	AutoRoundOff      bool                  `json:"auto_round_off"`
	Status            enum.QuotationStatus  `json:"status"`
	Note              *string               `json:"note"`
	Lines             []DocumentLineRequest `json:"lines"`
}

// UpdateQuotationStatusRequest represents a quotation status change request
type UpdateQuotationStatusRequest struct {
	Status enum.QuotationStatus `json:"status"`
}

// QuotationFilterRequest represents quotation filter parameters
type QuotationFilterRequest struct {
	Search     string `form:"search"`
	Status     string `form:"status"`
	CustomerID string `form:"customer_id"`
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
}

// CreateCreditNoteRequest represents a credit note creation request
type CreateCreditNoteRequest struct {
	CustomerID        *uuid.UUID            `json:"customer_id"`
	Date              time.Time             `json:"date" binding:"required"`
	Reason            *string               `json:"reason"`
	AdditionalCharges string                `json:"additional_charges"`
	OverallDiscount   string                `json:"overall_discount"`
	DiscountType      enum.DiscountType     `json:"discount_type"`
	AutoRoundOff      bool                  `json:"auto_round_off"`
	Lines             []DocumentLineRequest `json:"lines"`
}

// UpdateCreditNoteRequest represents a credit note update request
type UpdateCreditNoteRequest struct {
	CustomerID        *uuid.UUID            `json:"customer_id"`
	Date              time.Time             `json:"date" binding:"required"`
	Reason            *string               `json:"reason"`
	AdditionalCharges string                `json:"additional_charges"`
	OverallDiscount   string                `json:"overall_discount"`
	DiscountType      enum.DiscountType     `json:"discount_type"`
	AutoRoundOff      bool                  `json:"auto_round_off"`
	Lines             []DocumentLineRequest `json:"lines"`
}

// CreditNoteFilterRequest represents credit note filter parameters
type CreditNoteFilterRequest struct {
	Search     string `form:"search"`
	CustomerID string `form:"customer_id"`
	StartDate  string `form:"start_date"`
	EndDate    string `form:"end_date"`
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
}
