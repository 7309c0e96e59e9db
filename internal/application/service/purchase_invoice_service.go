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

// PurchaseInvoiceService handles purchase invoice operations
type PurchaseInvoiceService struct {
	invoiceRepo  repository.PurchaseInvoiceRepository
	lineRepo     repository.PurchaseInvoiceLineRepository
	paymentRepo  repository.PaymentRepository
	itemRepo     repository.ItemRepository
	supplierRepo repository.SupplierRepository
}

// NewPurchaseInvoiceService creates a new purchase invoice service
func NewPurchaseInvoiceService(
	invoiceRepo repository.PurchaseInvoiceRepository,
	lineRepo repository.PurchaseInvoiceLineRepository,
	paymentRepo repository.PaymentRepository,
	itemRepo repository.ItemRepository,
	supplierRepo repository.SupplierRepository,
) *PurchaseInvoiceService {
	return &PurchaseInvoiceService{
		invoiceRepo:  invoiceRepo,
		lineRepo:     lineRepo,
		paymentRepo:  paymentRepo,
		itemRepo:     itemRepo,
		supplierRepo: supplierRepo,
	}
}

// CreatePurchaseInvoiceInput represents the input for creating a purchase invoice
type CreatePurchaseInvoiceInput struct {
	UserID            uuid.UUID
	BranchID          *uuid.UUID
	SupplierID        *uuid.UUID
	Date              time.Time
	InvoiceNo         string
	AdditionalCharges string
	OverallDiscount   string
	DiscountType      enum.DiscountType
	AutoRoundOff      bool
	AmountPaid        string
	Note              *string
	Lines             []DocumentLineInput
}

// CreatePurchaseInvoice creates a purchase invoice, running every line and
// the document totals through the computation engine before persisting.
func (s *PurchaseInvoiceService) CreatePurchaseInvoice(ctx context.Context, input *CreatePurchaseInvoiceInput) (*entity.PurchaseInvoice, error) {
	invoiceNo := input.InvoiceNo
	if invoiceNo == "" {
		nextNum, err := s.invoiceRepo.GetNextInvoiceNumber(ctx)
		if err != nil {
			return nil, err
		}
		invoiceNo = fmt.Sprintf("PI-%06d", nextNum)
	} else {
		existing, err := s.invoiceRepo.GetByInvoiceNo(ctx, invoiceNo)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.NewConflictError("Invoice number already used")
		}
	}

	if input.SupplierID != nil {
		supplier, err := s.supplierRepo.GetByID(ctx, *input.SupplierID)
		if err != nil {
			return nil, err
		}
		if supplier == nil {
			return nil, apperror.NewNotFoundError("Supplier")
		}
	}

	adj := finance.AdjustmentsFromForm(
		input.AdditionalCharges, input.OverallDiscount, input.AmountPaid,
		input.DiscountType, input.AutoRoundOff,
	)

	doc, err := buildDocument(ctx, s.itemRepo, true, true, input.Lines, adj)
	if err != nil {
		return nil, err
	}

	invoice := &entity.PurchaseInvoice{
		UserID:     input.UserID,
		BranchID:   input.BranchID,
		SupplierID: input.SupplierID,
		Date:       input.Date,
		InvoiceNo:  invoiceNo,
		Note:       input.Note,
	}
	applyTotalsToInvoice(invoice, doc)
	invoice.Status = enum.StatusForBalance(invoice.AmountPaid, invoice.BalanceDue)

	if err := s.invoiceRepo.Create(ctx, invoice); err != nil {
		return nil, err
	}

	lines := invoiceLinesFromDocument(invoice.ID, input.Lines, doc)
	if len(lines) > 0 {
		if err := s.lineRepo.CreateBatch(ctx, lines); err != nil {
			return nil, err
		}
	}

	return s.invoiceRepo.GetWithLines(ctx, invoice.ID)
}

func applyTotalsToInvoice(invoice *entity.PurchaseInvoice, doc *finance.Document) {
	invoice.SubTotal = doc.Totals.SubTotal
	invoice.AdditionalCharges = doc.Adjustments.AdditionalCharges
	invoice.OverallDiscount = doc.Adjustments.OverallDiscount
	invoice.DiscountType = doc.Adjustments.DiscountType
	invoice.DiscountValue = doc.Totals.DiscountValue
	invoice.TotalTax = doc.Totals.TotalTax
	invoice.TotalBeforeRound = doc.Totals.TotalBeforeRound
	invoice.AutoRoundOff = doc.Adjustments.AutoRoundOff
	invoice.RoundedTotal = doc.Totals.RoundedTotal
	invoice.RoundOffDelta = doc.Totals.RoundOffDelta
	invoice.AmountPaid = doc.Adjustments.AmountPaid
	invoice.BalanceDue = doc.Totals.BalanceDue
}

func invoiceLinesFromDocument(invoiceID uuid.UUID, inputs []DocumentLineInput, doc *finance.Document) []entity.PurchaseInvoiceLine {
	lines := make([]entity.PurchaseInvoiceLine, 0, len(doc.Lines))
	for i := range doc.Lines {
		l := doc.Lines[i]
		line := entity.PurchaseInvoiceLine{
			InvoiceID:       invoiceID,
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

// GetPurchaseInvoice retrieves a purchase invoice with its lines and payments
func (s *PurchaseInvoiceService) GetPurchaseInvoice(ctx context.Context, id uuid.UUID) (*entity.PurchaseInvoice, error) {
	invoice, err := s.invoiceRepo.GetWithLines(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Purchase invoice")
	}
	return invoice, nil
}

// ListPurchaseInvoicesInput represents the input for listing purchase invoices
type ListPurchaseInvoicesInput struct {
	Pagination *pagination.PaginationParams
	Search     string
	Status     *enum.InvoiceStatus
	SupplierID *uuid.UUID
	BranchID   *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
}

// ListPurchaseInvoices lists purchase invoices with filtering
func (s *PurchaseInvoiceService) ListPurchaseInvoices(ctx context.Context, input *ListPurchaseInvoicesInput) (*pagination.PaginatedResult[entity.PurchaseInvoice], error) {
	params := &repository.PurchaseInvoiceFilterParams{
		Pagination: input.Pagination,
		Search:     input.Search,
		Status:     input.Status,
		SupplierID: input.SupplierID,
		BranchID:   input.BranchID,
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
	}

	invoices, total, err := s.invoiceRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(input.Pagination.Page, input.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(invoices, pag), nil
}

// UpdatePurchaseInvoiceInput represents the input for updating a purchase invoice
type UpdatePurchaseInvoiceInput struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	IsAdmin           bool
	BranchID          *uuid.UUID
	SupplierID        *uuid.UUID
	Date              time.Time
	AdditionalCharges string
	OverallDiscount   string
	DiscountType      enum.DiscountType
	AutoRoundOff      bool
	Note              *string
	Lines             []DocumentLineInput
}

// UpdatePurchaseInvoice replaces the invoice's lines and recomputes its
// totals. The invoice number never changes on update; the amount already
// paid is carried over from the stored invoice.
func (s *PurchaseInvoiceService) UpdatePurchaseInvoice(ctx context.Context, input *UpdatePurchaseInvoiceInput) (*entity.PurchaseInvoice, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Purchase invoice")
	}

	if !input.IsAdmin && invoice.UserID != input.UserID {
		return nil, apperror.ErrForbidden
	}
	if invoice.Status == enum.InvoiceStatusCancelled {
		return nil, apperror.NewBadRequestError("Cancelled invoices cannot be edited")
	}

	adj := finance.Adjustments{
		AdditionalCharges: finance.ParseAmount(input.AdditionalCharges),
		OverallDiscount:   finance.ParseAmount(input.OverallDiscount),
		DiscountType:      input.DiscountType,
		AutoRoundOff:      input.AutoRoundOff,
		AmountPaid:        invoice.AmountPaid,
	}

	doc, err := buildDocument(ctx, s.itemRepo, true, true, input.Lines, adj)
	if err != nil {
		return nil, err
	}

	invoice.BranchID = input.BranchID
	invoice.SupplierID = input.SupplierID
	invoice.Date = input.Date
	invoice.Note = input.Note
	applyTotalsToInvoice(invoice, doc)
	invoice.Status = enum.StatusForBalance(invoice.AmountPaid, invoice.BalanceDue)

	if err := s.invoiceRepo.Update(ctx, invoice); err != nil {
		return nil, err
	}

	if err := s.lineRepo.DeleteByInvoiceID(ctx, invoice.ID); err != nil {
		return nil, err
	}
	lines := invoiceLinesFromDocument(invoice.ID, input.Lines, doc)
	if len(lines) > 0 {
		if err := s.lineRepo.CreateBatch(ctx, lines); err != nil {
			return nil, err
		}
	}

	return s.invoiceRepo.GetWithLines(ctx, invoice.ID)
}

// DeletePurchaseInvoice deletes an invoice along with its lines
func (s *PurchaseInvoiceService) DeletePurchaseInvoice(ctx context.Context, userID, id uuid.UUID, isAdmin bool) error {
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if invoice == nil {
		return apperror.NewNotFoundError("Purchase invoice")
	}

	if !isAdmin && invoice.UserID != userID {
		return apperror.ErrForbidden
	}

	if err := s.lineRepo.DeleteByInvoiceID(ctx, id); err != nil {
		return err
	}

	return s.invoiceRepo.Delete(ctx, id)
}

// CancelPurchaseInvoice marks an invoice as cancelled
func (s *PurchaseInvoiceService) CancelPurchaseInvoice(ctx context.Context, userID, id uuid.UUID, isAdmin bool) error {
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if invoice == nil {
		return apperror.NewNotFoundError("Purchase invoice")
	}

	if !isAdmin && invoice.UserID != userID {
		return apperror.ErrForbidden
	}

	return s.invoiceRepo.UpdateStatus(ctx, id, enum.InvoiceStatusCancelled)
}

// GetUnpaidInvoices lists invoices that still carry a balance due
func (s *PurchaseInvoiceService) GetUnpaidInvoices(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.PurchaseInvoice], error) {
	invoices, total, err := s.invoiceRepo.GetUnpaid(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(invoices, pag), nil
}

// RecordPaymentInput represents the input for recording a payment
type RecordPaymentInput struct {
	InvoiceID   uuid.UUID
	UserID      uuid.UUID
	Date        time.Time
	Amount      string
	Mode        enum.PaymentMode
	ReferenceNo *string
	Note        *string
}

// RecordPayment records a payment against an invoice and re-derives the
// invoice's paid amount, balance due and settlement status.
func (s *PurchaseInvoiceService) RecordPayment(ctx context.Context, input *RecordPaymentInput) (*entity.Payment, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, input.InvoiceID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Purchase invoice")
	}
	if invoice.Status == enum.InvoiceStatusCancelled {
		return nil, apperror.NewBadRequestError("Cannot record payment on a cancelled invoice")
	}

	amount := finance.ParseAmount(input.Amount)
	if amount <= 0 {
		return nil, apperror.NewBadRequestError("Payment amount must be positive")
	}

	payment := &entity.Payment{
		InvoiceID:   input.InvoiceID,
		UserID:      input.UserID,
		Date:        input.Date,
		Amount:      amount,
		Mode:        input.Mode,
		ReferenceNo: input.ReferenceNo,
		Note:        input.Note,
	}

	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	if err := s.refreshInvoiceBalance(ctx, invoice); err != nil {
		return nil, err
	}

	return payment, nil
}

// DeletePayment removes a recorded payment and re-derives the invoice balance
func (s *PurchaseInvoiceService) DeletePayment(ctx context.Context, paymentID uuid.UUID) error {
	payment, err := s.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		return err
	}
	if payment == nil {
		return apperror.NewNotFoundError("Payment")
	}

	invoice, err := s.invoiceRepo.GetByID(ctx, payment.InvoiceID)
	if err != nil {
		return err
	}

	if err := s.paymentRepo.Delete(ctx, paymentID); err != nil {
		return err
	}

	if invoice != nil {
		return s.refreshInvoiceBalance(ctx, invoice)
	}
	return nil
}

// ListPayments lists payments recorded against an invoice
func (s *PurchaseInvoiceService) ListPayments(ctx context.Context, invoiceID uuid.UUID) ([]entity.Payment, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Purchase invoice")
	}
	return s.paymentRepo.GetByInvoiceID(ctx, invoiceID)
}

func (s *PurchaseInvoiceService) refreshInvoiceBalance(ctx context.Context, invoice *entity.PurchaseInvoice) error {
	paid, err := s.paymentRepo.SumByInvoiceID(ctx, invoice.ID)
	if err != nil {
		return err
	}

	invoice.AmountPaid = paid
	invoice.BalanceDue = invoice.RoundedTotal - paid
	invoice.Status = enum.StatusForBalance(invoice.AmountPaid, invoice.BalanceDue)

	return s.invoiceRepo.Update(ctx, invoice)
}
