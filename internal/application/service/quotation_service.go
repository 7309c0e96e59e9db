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

// QuotationService handles quotation-related operations
type QuotationService struct {
	quotationRepo repository.QuotationRepository
	lineRepo      repository.QuotationLineRepository
	itemRepo      repository.ItemRepository
	customerRepo  repository.CustomerRepository
}

// NewQuotationService creates a new quotation service
func NewQuotationService(
	quotationRepo repository.QuotationRepository,
	lineRepo repository.QuotationLineRepository,
	itemRepo repository.ItemRepository,
	customerRepo repository.CustomerRepository,
) *QuotationService {
	return &QuotationService{
		quotationRepo: quotationRepo,
		lineRepo:      lineRepo,
		itemRepo:      itemRepo,
		customerRepo:  customerRepo,
	}
}

// CreateQuotationInput represents the input for creating a quotation
type CreateQuotationInput struct {
	UserID            uuid.UUID
	BranchID          *uuid.UUID
	CustomerID        *uuid.UUID
	Date              time.Time
	AdditionalCharges string
	OverallDiscount   string
	DiscountType      enum.DiscountType
	AutoRoundOff      bool
	Note              *string
	Status            enum.QuotationStatus
	Lines             []DocumentLineInput
}

// CreateQuotation creates a new quotation. Catalog lines are priced at the
// item's selling price.
func (s *QuotationService) CreateQuotation(ctx context.Context, input *CreateQuotationInput) (*entity.Quotation, error) {
	nextNum, err := s.quotationRepo.GetNextReferenceNumber(ctx)
	if err != nil {
		return nil, err
	}
	reference := fmt.Sprintf("QT-%06d", nextNum)

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

	doc, err := buildDocument(ctx, s.itemRepo, true, false, input.Lines, adj)
	if err != nil {
		return nil, err
	}

	quotation := &entity.Quotation{
		UserID:       input.UserID,
		BranchID:     input.BranchID,
		CustomerID:   input.CustomerID,
		Date:         input.Date,
		Reference:    reference,
		CustomerName: customerName,
		Status:       input.Status,
		Note:         input.Note,
	}
	applyTotalsToQuotation(quotation, doc)

	if err := s.quotationRepo.Create(ctx, quotation); err != nil {
		return nil, err
	}

	lines := quotationLinesFromDocument(quotation.ID, input.Lines, doc)
	if len(lines) > 0 {
		if err := s.lineRepo.CreateBatch(ctx, lines); err != nil {
			return nil, err
		}
	}

	return s.quotationRepo.GetWithLines(ctx, quotation.ID)
}

func applyTotalsToQuotation(q *entity.Quotation, doc *finance.Document) {
	q.SubTotal = doc.Totals.SubTotal
	q.AdditionalCharges = doc.Adjustments.AdditionalCharges
	q.OverallDiscount = doc.Adjustments.OverallDiscount
	q.DiscountType = doc.Adjustments.DiscountType
	q.DiscountValue = doc.Totals.DiscountValue
	q.TotalTax = doc.Totals.TotalTax
	q.TotalBeforeRound = doc.Totals.TotalBeforeRound
	q.AutoRoundOff = doc.Adjustments.AutoRoundOff
	q.RoundedTotal = doc.Totals.RoundedTotal
	q.RoundOffDelta = doc.Totals.RoundOffDelta
}

func quotationLinesFromDocument(quotationID uuid.UUID, inputs []DocumentLineInput, doc *finance.Document) []entity.QuotationLine {
	lines := make([]entity.QuotationLine, 0, len(doc.Lines))
	for i := range doc.Lines {
		l := doc.Lines[i]
		line := entity.QuotationLine{
			QuotationID:     quotationID,
			ItemName:        l.ItemName,
			HSN:             l.HSN,
			Unit:            l.Unit,
			Quantity:        l.Quantity,
			UnitRate:        l.UnitRate,
			DiscountPercent: l.DiscountPercent,
			TaxDescriptor:   l.TaxDescriptor,
			TaxPercent:      l.TaxPercent,
			TaxableAmount:   l.Amounts.TaxableAmount,
			TaxAmount:       l.Amounts.TaxAmount,
			LineTotal:       l.Amounts.LineTotal,
		}
		if i < len(inputs) {
			line.ItemID = inputs[i].ItemID
		}
		lines = append(lines, line)
	}
	return lines
}

// GetQuotation retrieves a quotation by ID
func (s *QuotationService) GetQuotation(ctx context.Context, id uuid.UUID) (*entity.Quotation, error) {
	quotation, err := s.quotationRepo.GetWithLines(ctx, id)
	if err != nil {
		return nil, err
	}
	if quotation == nil {
		return nil, apperror.NewNotFoundError("Quotation")
	}
	return quotation, nil
}

// ListQuotationsInput represents the input for listing quotations
type ListQuotationsInput struct {
	Pagination *pagination.PaginationParams
	Search     string
	Status     *enum.QuotationStatus
	CustomerID *uuid.UUID
	BranchID   *uuid.UUID
}

// ListQuotations lists quotations with filtering
func (s *QuotationService) ListQuotations(ctx context.Context, input *ListQuotationsInput) (*pagination.PaginatedResult[entity.Quotation], error) {
	params := &repository.QuotationFilterParams{
		Pagination: input.Pagination,
		Search:     input.Search,
		Status:     input.Status,
		CustomerID: input.CustomerID,
		BranchID:   input.BranchID,
	}

	quotations, total, err := s.quotationRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(input.Pagination.Page, input.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(quotations, pag), nil
}

// UpdateQuotationInput represents the input for updating a quotation
type UpdateQuotationInput struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	IsAdmin           bool
	BranchID          *uuid.UUID
	CustomerID        *uuid.UUID
	Date              time.Time
	AdditionalCharges string
	OverallDiscount   string
	DiscountType      enum.DiscountType
	AutoRoundOff      bool
	Note              *string
	Status            enum.QuotationStatus
	Lines             []DocumentLineInput
}

// UpdateQuotation replaces the quotation's lines and recomputes its totals
func (s *QuotationService) UpdateQuotation(ctx context.Context, input *UpdateQuotationInput) (*entity.Quotation, error) {
	quotation, err := s.quotationRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if quotation == nil {
		return nil, apperror.NewNotFoundError("Quotation")
	}

	if !input.IsAdmin && quotation.UserID != input.UserID {
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

	doc, err := buildDocument(ctx, s.itemRepo, true, false, input.Lines, adj)
	if err != nil {
		return nil, err
	}

	quotation.BranchID = input.BranchID
	quotation.CustomerID = input.CustomerID
	quotation.Date = input.Date
	quotation.CustomerName = customerName
	quotation.Status = input.Status
	quotation.Note = input.Note
	applyTotalsToQuotation(quotation, doc)

	if err := s.quotationRepo.Update(ctx, quotation); err != nil {
		return nil, err
	}

	if err := s.lineRepo.DeleteByQuotationID(ctx, quotation.ID); err != nil {
		return nil, err
	}
	lines := quotationLinesFromDocument(quotation.ID, input.Lines, doc)
	if len(lines) > 0 {
		if err := s.lineRepo.CreateBatch(ctx, lines); err != nil {
			return nil, err
		}
	}

	return s.quotationRepo.GetWithLines(ctx, quotation.ID)
}

// DeleteQuotation deletes a quotation
func (s *QuotationService) DeleteQuotation(ctx context.Context, userID, id uuid.UUID, isAdmin bool) error {
	quotation, err := s.quotationRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if quotation == nil {
		return apperror.NewNotFoundError("Quotation")
	}

	if !isAdmin && quotation.UserID != userID {
		return apperror.ErrForbidden
	}

	if err := s.lineRepo.DeleteByQuotationID(ctx, id); err != nil {
		return err
	}

	return s.quotationRepo.Delete(ctx, id)
}

// UpdateQuotationStatus updates the status of a quotation
func (s *QuotationService) UpdateQuotationStatus(ctx context.Context, userID, id uuid.UUID, status enum.QuotationStatus, isAdmin bool) error {
	quotation, err := s.quotationRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if quotation == nil {
		return apperror.NewNotFoundError("Quotation")
	}

	if !isAdmin && quotation.UserID != userID {
		return apperror.ErrForbidden
	}

	return s.quotationRepo.UpdateStatus(ctx, id, status)
}
