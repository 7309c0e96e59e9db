package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kiranps/tradebooks-api/internal/domain/entity"
	"github.com/kiranps/tradebooks-api/internal/domain/enum"
	"github.com/kiranps/tradebooks-api/internal/domain/repository"
	"github.com/kiranps/tradebooks-api/internal/finance"
	"github.com/kiranps/tradebooks-api/pkg/apperror"
	"github.com/kiranps/tradebooks-api/pkg/pagination"
)

// CreditNoteService handles credit note operations. Credit notes run through
// the same line engine as invoices but with tax disabled: every line is
// computed at a 0% rate regardless of its descriptor.
type CreditNoteService struct {
	noteRepo     repository.CreditNoteRepository
	lineRepo     repository.CreditNoteLineRepository
	itemRepo     repository.ItemRepository
	customerRepo repository.CustomerRepository
}

// NewCreditNoteService creates a new credit note service
func NewCreditNoteService(
	noteRepo repository.CreditNoteRepository,
	lineRepo repository.CreditNoteLineRepository,
	itemRepo repository.ItemRepository,
	customerRepo repository.CustomerRepository,
) *CreditNoteService {
	return &CreditNoteService{
		noteRepo:     noteRepo,
		lineRepo:     lineRepo,
		itemRepo:     itemRepo,
		customerRepo: customerRepo,
	}
}

// CreateCreditNoteInput represents the input for creating a credit note
type CreateCreditNoteInput struct {
	UserID            uuid.UUID
	BranchID          *uuid.UUID
	CustomerID        *uuid.UUID
	Date              time.Time
	Reason            *string
	AdditionalCharges string
	OverallDiscount   string
	DiscountType      enum.DiscountType
	AutoRoundOff      bool
	Lines             []DocumentLineInput
}

// CreateCreditNote creates a new credit note
func (s *CreditNoteService) CreateCreditNote(ctx context.Context, input *CreateCreditNoteInput) (*entity.CreditNote, error) {
	nextNum, err := s.noteRepo.GetNextNoteNumber(ctx)
	if err != nil {
		return nil, err
	}
	noteNo := fmt.Sprintf("CN-%06d", nextNum)

	var customerName string
	if input.CustomerID != nil {
		customer, err := s.customerRepo.GetByID(ctx, *input.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer != nil {
			customerName = customer.Name
		}
	}

	adj := finance.AdjustmentsFromForm(
		input.AdditionalCharges, input.OverallDiscount, "",
		input.DiscountType, input.AutoRoundOff,
	)

	doc, err := buildDocument(ctx, s.itemRepo, false, false, input.Lines, adj)
	if err != nil {
		return nil, err
	}

	note := &entity.CreditNote{
		UserID:       input.UserID,
		BranchID:     input.BranchID,
		CustomerID:   input.CustomerID,
		Date:         input.Date,
		NoteNo:       noteNo,
		CustomerName: customerName,
		Reason:       input.Reason,
	}
	applyTotalsToCreditNote(note, doc)

	if err := s.noteRepo.Create(ctx, note); err != nil {
		return nil, err
	}

	lines := creditNoteLinesFromDocument(note.ID, input.Lines, doc)
	if len(lines) > 0 {
		if err := s.lineRepo.CreateBatch(ctx, lines); err != nil {
			return nil, err
		}
	}

	return s.noteRepo.GetWithLines(ctx, note.ID)
}

func applyTotalsToCreditNote(n *entity.CreditNote, doc *finance.Document) {
	n.SubTotal = doc.Totals.SubTotal
	n.AdditionalCharges = doc.Adjustments.AdditionalCharges
	n.OverallDiscount = doc.Adjustments.OverallDiscount
	n.DiscountType = doc.Adjustments.DiscountType
	n.DiscountValue = doc.Totals.DiscountValue
	n.TotalBeforeRound = doc.Totals.TotalBeforeRound
	n.AutoRoundOff = doc.Adjustments.AutoRoundOff
	n.RoundedTotal = doc.Totals.RoundedTotal
	n.RoundOffDelta = doc.Totals.RoundOffDelta
}

func creditNoteLinesFromDocument(noteID uuid.UUID, inputs []DocumentLineInput, doc *finance.Document) []entity.CreditNoteLine {
	lines := make([]entity.CreditNoteLine, 0, len(doc.Lines))
	for i := range doc.Lines {
		l := doc.Lines[i]
		line := entity.CreditNoteLine{
			CreditNoteID:    noteID,
			ItemName:        l.ItemName,
			HSN:             l.HSN,
			Unit:            l.Unit,
			Quantity:        l.Quantity,
			UnitRate:        l.UnitRate,
			DiscountPercent: l.DiscountPercent,
			LineTotal:       l.Amounts.LineTotal,
		}
		if i < len(inputs) {
			line.ItemID = inputs[i].ItemID
		}
		lines = append(lines, line)
	}
	return lines
}

// GetCreditNote retrieves a credit note by ID
func (s *CreditNoteService) GetCreditNote(ctx context.Context, id uuid.UUID) (*entity.CreditNote, error) {
	note, err := s.noteRepo.GetWithLines(ctx, id)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, apperror.NewNotFoundError("Credit note")
	}
	return note, nil
}

// ListCreditNotesInput represents the input for listing credit notes
type ListCreditNotesInput struct {
	Pagination *pagination.PaginationParams
	Search     string
	CustomerID *uuid.UUID
	BranchID   *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
}

// ListCreditNotes lists credit notes with filtering
func (s *CreditNoteService) ListCreditNotes(ctx context.Context, input *ListCreditNotesInput) (*pagination.PaginatedResult[entity.CreditNote], error) {
	params := &repository.CreditNoteFilterParams{
		Pagination: input.Pagination,
		Search:     input.Search,
		CustomerID: input.CustomerID,
		BranchID:   input.BranchID,
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
	}

	notes, total, err := s.noteRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(input.Pagination.Page, input.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(notes, pag), nil
}

// UpdateCreditNoteInput represents the input for updating a credit note
type UpdateCreditNoteInput struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	IsAdmin           bool
	BranchID          *uuid.UUID
	CustomerID        *uuid.UUID
	Date              time.Time
	Reason            *string
	AdditionalCharges string
	OverallDiscount   string
	DiscountType      enum.DiscountType
	AutoRoundOff      bool
	Lines             []DocumentLineInput
}

// UpdateCreditNote replaces the note's lines and recomputes its totals
func (s *CreditNoteService) UpdateCreditNote(ctx context.Context, input *UpdateCreditNoteInput) (*entity.CreditNote, error) {
	note, err := s.noteRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, apperror.NewNotFoundError("Credit note")
	}

	if !input.IsAdmin && note.UserID != input.UserID {
		return nil, apperror.ErrForbidden
	}

	var customerName string
	if input.CustomerID != nil {
		customer, err := s.customerRepo.GetByID(ctx, *input.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer != nil {
			customerName = customer.Name
		}
	}

	adj := finance.AdjustmentsFromForm(
		input.AdditionalCharges, input.OverallDiscount, "",
		input.DiscountType, input.AutoRoundOff,
	)

	doc, err := buildDocument(ctx, s.itemRepo, false, false, input.Lines, adj)
	if err != nil {
		return nil, err
	}

	note.BranchID = input.BranchID
	note.CustomerID = input.CustomerID
	note.Date = input.Date
	note.CustomerName = customerName
	note.Reason = input.Reason
	applyTotalsToCreditNote(note, doc)

	if err := s.noteRepo.Update(ctx, note); err != nil {
		return nil, err
	}

	if err := s.lineRepo.DeleteByNoteID(ctx, note.ID); err != nil {
		return nil, err
	}
	lines := creditNoteLinesFromDocument(note.ID, input.Lines, doc)
	if len(lines) > 0 {
		if err := s.lineRepo.CreateBatch(ctx, lines); err != nil {
			return nil, err
		}
	}

	return s.noteRepo.GetWithLines(ctx, note.ID)
}

// DeleteCreditNote deletes a credit note
func (s *CreditNoteService) DeleteCreditNote(ctx context.Context, userID, id uuid.UUID, isAdmin bool) error {
	note, err := s.noteRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if note == nil {
		return apperror.NewNotFoundError("Credit note")
	}

	if !isAdmin && note.UserID != userID {
		return apperror.ErrForbidden
	}

	if err := s.lineRepo.DeleteByNoteID(ctx, id); err != nil {
		return err
	}

	return s.noteRepo.Delete(ctx, id)
}
