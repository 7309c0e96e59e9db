package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/kiranps/tradebooks-api/internal/domain/entity"
	domainRepo "github.com/kiranps/tradebooks-api/internal/domain/repository"
	"gorm.io/gorm"
)

type creditNoteRepository struct {
	db *gorm.DB
}

// NewCreditNoteRepository creates a new credit note repository
func NewCreditNoteRepository(db *gorm.DB) domainRepo.CreditNoteRepository {
	return &creditNoteRepository{db: db}
}

func (r *creditNoteRepository) Create(ctx context.Context, note *entity.CreditNote) error {
	return r.db.WithContext(ctx).Create(note).Error
}

func (r *creditNoteRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.CreditNote, error) {
	var note entity.CreditNote
	err := r.db.WithContext(ctx).
		Scopes(BranchScope(ctx)).
		Preload("Customer").
		First(&note, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &note, err
}

// GetByNoteNo stays unscoped: note numbers are unique across the
// company, so the duplicate check must see every branch.
func (r *creditNoteRepository) GetByNoteNo(ctx context.Context, noteNo string) (*entity.CreditNote, error) {
	var note entity.CreditNote
	err := r.db.WithContext(ctx).First(&note, "note_no = ?", noteNo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &note, err
}

func (r *creditNoteRepository) Update(ctx context.Context, note *entity.CreditNote) error {
	return r.db.WithContext(ctx).Save(note).Error
}

func (r *creditNoteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.CreditNote{}, "id = ?", id).Error
}

func (r *creditNoteRepository) List(ctx context.Context, params *domainRepo.CreditNoteFilterParams) ([]entity.CreditNote, int64, error) {
	var notes []entity.CreditNote
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.CreditNote{}).Scopes(BranchScope(ctx))

	if params.Search != "" {
		query = query.Where("note_no ILIKE ? OR customer_name ILIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%")
	}

	if params.CustomerID != nil {
		query = query.Where("customer_id = ?", *params.CustomerID)
	}

	if params.BranchID != nil {
		query = query.Where("branch_id = ?", *params.BranchID)
	}

	if params.StartDate != nil {
		query = query.Where("date >= ?", *params.StartDate)
	}

	if params.EndDate != nil {
		query = query.Where("date <= ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortBy := "created_at"
	sortOrder := "DESC"
	if params.SortBy != "" {
		sortBy = params.SortBy
	}
	if params.SortOrder == "ASC" || params.SortOrder == "asc" {
		sortOrder = "ASC"
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Customer").
		Order(sortBy + " " + sortOrder).
		Find(&notes).Error

	return notes, total, err
}

func (r *creditNoteRepository) GetWithLines(ctx context.Context, id uuid.UUID) (*entity.CreditNote, error) {
	var note entity.CreditNote
	err := r.db.WithContext(ctx).
		Scopes(BranchScope(ctx)).
		Preload("Customer").
		Preload("Branch").
		Preload("Lines").
		First(&note, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &note, err
}

func (r *creditNoteRepository) GetNextNoteNumber(ctx context.Context) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.CreditNote{}).Count(&count).Error
	return int(count) + 1, err
}

type creditNoteLineRepository struct {
	db *gorm.DB
}

// NewCreditNoteLineRepository creates a new credit note line repository
func NewCreditNoteLineRepository(db *gorm.DB) domainRepo.CreditNoteLineRepository {
	return &creditNoteLineRepository{db: db}
}

func (r *creditNoteLineRepository) CreateBatch(ctx context.Context, lines []entity.CreditNoteLine) error {
	return r.db.WithContext(ctx).Create(&lines).Error
}

func (r *creditNoteLineRepository) GetByNoteID(ctx context.Context, noteID uuid.UUID) ([]entity.CreditNoteLine, error) {
	var lines []entity.CreditNoteLine
	err := r.db.WithContext(ctx).
		Where("credit_note_id = ?", noteID).
		Find(&lines).Error
	return lines, err
}

func (r *creditNoteLineRepository) DeleteByNoteID(ctx context.Context, noteID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.CreditNoteLine{}, "credit_note_id = ?", noteID).Error
}
