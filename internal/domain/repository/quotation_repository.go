package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/kiranps/tradebooks-api/internal/domain/entity"
	"github.com/kiranps/tradebooks-api/internal/domain/enum"
	"github.com/kiranps/tradebooks-api/pkg/pagination"
)

// QuotationRepository defines the interface for quotation data operations
type QuotationRepository interface {
	Create(ctx context.Context, quotation *entity.Quotation) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Quotation, error)
	GetByReference(ctx context.Context, reference string) (*entity.Quotation, error)
	Update(ctx context.Context, quotation *entity.Quotation) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *QuotationFilterParams) ([]entity.Quotation, int64, error)
	GetWithLines(ctx context.Context, id uuid.UUID) (*entity.Quotation, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.QuotationStatus) error
	GetNextReferenceNumber(ctx context.Context) (int, error)
}

// QuotationFilterParams contains filtering parameters for quotation queries
type QuotationFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Status     *enum.QuotationStatus
	CustomerID *uuid.UUID
	BranchID   *uuid.UUID
	SortBy     string
	SortOrder  string
}

// QuotationLineRepository defines the interface for quotation line data operations
type QuotationLineRepository interface {
	CreateBatch(ctx context.Context, lines []entity.QuotationLine) error
	GetByQuotationID(ctx context.Context, quotationID uuid.UUID) ([]entity.QuotationLine, error)
	DeleteByQuotationID(ctx context.Context, quotationID uuid.UUID) error
}
