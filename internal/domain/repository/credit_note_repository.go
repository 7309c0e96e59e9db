package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kiranps/tradebooks-api/internal/domain/entity"
	"github.com/kiranps/tradebooks-api/pkg/pagination"
)

// CreditNoteRepository defines the interface for credit note data operations
type CreditNoteRepository interface {
	Create(ctx context.Context, note *entity.CreditNote) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.CreditNote, error)
	GetByNoteNo(ctx context.Context, noteNo string) (*entity.CreditNote, error)
	Update(ctx context.Context, note *entity.CreditNote) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *CreditNoteFilterParams) ([]entity.CreditNote, int64, error)
	GetWithLines(ctx context.Context, id uuid.UUID) (*entity.CreditNote, error)
	GetNextNoteNumber(ctx context.Context) (int, error)
}

// CreditNoteFilterParams contains filtering parameters for credit note queries
type CreditNoteFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	CustomerID *uuid.UUID
	BranchID   *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
	SortBy     string
	SortOrder  string
}

// CreditNoteLineRepository defines the interface for credit note line data operations
type CreditNoteLineRepository interface {
	CreateBatch(ctx context.Context, lines []entity.CreditNoteLine) error
	GetByNoteID(ctx context.Context, noteID uuid.UUID) ([]entity.CreditNoteLine, error)
	DeleteByNoteID(ctx context.Context, noteID uuid.UUID) error
}
