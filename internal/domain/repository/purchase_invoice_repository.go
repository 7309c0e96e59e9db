package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kiranps/tradebooks-api/internal/domain/entity"
	"github.com/kiranps/tradebooks-api/internal/domain/enum"
	"github.com/kiranps/tradebooks-api/pkg/pagination"
)

// PurchaseInvoiceRepository defines the interface for purchase invoice data operations
type PurchaseInvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.PurchaseInvoice) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.PurchaseInvoice, error)
	GetByInvoiceNo(ctx context.Context, invoiceNo string) (*entity.PurchaseInvoice, error)
	Update(ctx context.Context, invoice *entity.PurchaseInvoice) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *PurchaseInvoiceFilterParams) ([]entity.PurchaseInvoice, int64, error)
	GetWithLines(ctx context.Context, id uuid.UUID) (*entity.PurchaseInvoice, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.InvoiceStatus) error
	// GetUnpaid retrieves invoices that still carry a balance due
	GetUnpaid(ctx context.Context, params *pagination.PaginationParams) ([]entity.PurchaseInvoice, int64, error)
	GetNextInvoiceNumber(ctx context.Context) (int, error)
}

// PurchaseInvoiceFilterParams contains filtering parameters for purchase invoice queries
type PurchaseInvoiceFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Status     *enum.InvoiceStatus
	SupplierID *uuid.UUID
	BranchID   *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
	SortBy     string
	SortOrder  string
}

// PurchaseInvoiceLineRepository defines the interface for purchase invoice line data operations
type PurchaseInvoiceLineRepository interface {
	CreateBatch(ctx context.Context, lines []entity.PurchaseInvoiceLine) error
	GetByInvoiceID(ctx context.Context, invoiceID uuid.UUID) ([]entity.PurchaseInvoiceLine, error)
	DeleteByInvoiceID(ctx context.Context, invoiceID uuid.UUID) error
}

// PaymentRepository defines the interface for supplier payment data operations
type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error)
	GetByInvoiceID(ctx context.Context, invoiceID uuid.UUID) ([]entity.Payment, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// SumByInvoiceID returns the total amount paid against an invoice
	SumByInvoiceID(ctx context.Context, invoiceID uuid.UUID) (float64, error)
	List(ctx context.Context, params *PaymentFilterParams) ([]entity.Payment, int64, error)
}

// PaymentFilterParams contains filtering parameters for payment queries
type PaymentFilterParams struct {
	Pagination *pagination.PaginationParams
	InvoiceID  *uuid.UUID
	Mode       *enum.PaymentMode
	StartDate  *time.Time
	EndDate    *time.Time
}
