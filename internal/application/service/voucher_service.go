package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/kiranps/tradebooks-api/internal/domain/entity"
	"github.com/kiranps/tradebooks-api/internal/domain/repository"
	"github.com/kiranps/tradebooks-api/pkg/apperror"
	"github.com/kiranps/tradebooks-api/pkg/numwords"
)

const voucherDateLayout = "02-01-2006"

// VoucherService assembles printable vouchers from stored documents. The
// voucher is a value object; layout and rendering belong to the client.
type VoucherService struct {
	invoiceRepo    repository.PurchaseInvoiceRepository
	quotationRepo  repository.QuotationRepository
	creditNoteRepo repository.CreditNoteRepository
	expenseRepo    repository.ExpenseVoucherRepository
	settingsRepo   repository.SettingsRepository
}

// NewVoucherService creates a new voucher service
func NewVoucherService(
	invoiceRepo repository.PurchaseInvoiceRepository,
	quotationRepo repository.QuotationRepository,
	creditNoteRepo repository.CreditNoteRepository,
	expenseRepo repository.ExpenseVoucherRepository,
	settingsRepo repository.SettingsRepository,
) *VoucherService {
	return &VoucherService{
		invoiceRepo:    invoiceRepo,
		quotationRepo:  quotationRepo,
		creditNoteRepo: creditNoteRepo,
		expenseRepo:    expenseRepo,
		settingsRepo:   settingsRepo,
	}
}

func (s *VoucherService) buildHeader(ctx context.Context) (entity.VoucherHeader, error) {
	header := entity.VoucherHeader{}
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return header, err
	}
	if settings == nil {
		return header, nil
	}
	header.CompanyName = settings.CompanyName
	if settings.Address != nil {
		header.Address = *settings.Address
	}
	if settings.Phone != nil {
		header.Phone = *settings.Phone
	}
	if settings.GSTIN != nil {
		header.GSTIN = *settings.GSTIN
	}
	return header, nil
}

// PurchaseInvoiceVoucher builds a printable voucher for a purchase invoice
func (s *VoucherService) PurchaseInvoiceVoucher(ctx context.Context, id uuid.UUID) (*entity.Voucher, error) {
	invoice, err := s.invoiceRepo.GetWithLines(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Purchase invoice")
	}

	header, err := s.buildHeader(ctx)
	if err != nil {
		return nil, err
	}

	voucher := &entity.Voucher{
		Header:        header,
		Title:         "Purchase Invoice",
		DocumentNo:    invoice.InvoiceNo,
		Date:          invoice.Date.Format(voucherDateLayout),
		SubTotal:      invoice.SubTotal,
		DiscountValue: invoice.DiscountValue,
		TotalTax:      invoice.TotalTax,
		RoundOffDelta: invoice.RoundOffDelta,
		GrandTotal:    invoice.RoundedTotal,
		AmountPaid:    invoice.AmountPaid,
		BalanceDue:    invoice.BalanceDue,
		AmountInWords: numwords.AmountInWords(invoice.RoundedTotal),
	}

	if invoice.Supplier != nil {
		voucher.PartyName = invoice.Supplier.Name
		if invoice.Supplier.FirmName != nil && *invoice.Supplier.FirmName != "" {
			voucher.PartyName = *invoice.Supplier.FirmName
		}
		if invoice.Supplier.GSTIN != nil {
			voucher.PartyGSTIN = *invoice.Supplier.GSTIN
		}
	}

	voucher.Lines = make([]entity.VoucherLine, 0, len(invoice.Lines))
	for _, line := range invoice.Lines {
		voucher.Lines = append(voucher.Lines, entity.VoucherLine{
			Name:            line.ItemName,
			HSN:             line.HSN,
			Unit:            line.Unit,
			Quantity:        line.Quantity,
			UnitRate:        line.UnitRate,
			DiscountPercent: line.DiscountPercent,
			TaxPercent:      line.TaxPercent,
			LineTotal:       line.LineTotal,
		})
	}

	return voucher, nil
}

// QuotationVoucher builds a printable voucher for a quotation
func (s *VoucherService) QuotationVoucher(ctx context.Context, id uuid.UUID) (*entity.Voucher, error) {
	quotation, err := s.quotationRepo.GetWithLines(ctx, id)
	if err != nil {
		return nil, err
	}
	if quotation == nil {
		return nil, apperror.NewNotFoundError("Quotation")
	}

	header, err := s.buildHeader(ctx)
	if err != nil {
		return nil, err
	}

	voucher := &entity.Voucher{
		Header:        header,
		Title:         "Quotation",
		DocumentNo:    quotation.Reference,
		Date:          quotation.Date.Format(voucherDateLayout),
		PartyName:     quotation.CustomerName,
		SubTotal:      quotation.SubTotal,
		DiscountValue: quotation.DiscountValue,
		TotalTax:      quotation.TotalTax,
		RoundOffDelta: quotation.RoundOffDelta,
		GrandTotal:    quotation.RoundedTotal,
		AmountInWords: numwords.AmountInWords(quotation.RoundedTotal),
	}

	if quotation.Customer != nil && quotation.Customer.GSTIN != nil {
		voucher.PartyGSTIN = *quotation.Customer.GSTIN
	}

	voucher.Lines = make([]entity.VoucherLine, 0, len(quotation.Lines))
	for _, line := range quotation.Lines {
		voucher.Lines = append(voucher.Lines, entity.VoucherLine{
			Name:            line.ItemName,
			HSN:             line.HSN,
			Unit:            line.Unit,
			Quantity:        line.Quantity,
			UnitRate:        line.UnitRate,
			DiscountPercent: line.DiscountPercent,
			TaxPercent:      line.TaxPercent,
			LineTotal:       line.LineTotal,
		})
	}

	return voucher, nil
}

// CreditNoteVoucher builds a printable voucher for a credit note
func (s *VoucherService) CreditNoteVoucher(ctx context.Context, id uuid.UUID) (*entity.Voucher, error) {
	note, err := s.creditNoteRepo.GetWithLines(ctx, id)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, apperror.NewNotFoundError("Credit note")
	}

	header, err := s.buildHeader(ctx)
	if err != nil {
		return nil, err
	}

	voucher := &entity.Voucher{
		Header:        header,
		Title:         "Credit Note",
		DocumentNo:    note.NoteNo,
		Date:          note.Date.Format(voucherDateLayout),
		PartyName:     note.CustomerName,
		SubTotal:      note.SubTotal,
		DiscountValue: note.DiscountValue,
		RoundOffDelta: note.RoundOffDelta,
		GrandTotal:    note.RoundedTotal,
		AmountInWords: numwords.AmountInWords(note.RoundedTotal),
	}

	if note.Customer != nil && note.Customer.GSTIN != nil {
		voucher.PartyGSTIN = *note.Customer.GSTIN
	}

	voucher.Lines = make([]entity.VoucherLine, 0, len(note.Lines))
	for _, line := range note.Lines {
		voucher.Lines = append(voucher.Lines, entity.VoucherLine{
			Name:            line.ItemName,
			HSN:             line.HSN,
			Unit:            line.Unit,
			Quantity:        line.Quantity,
			UnitRate:        line.UnitRate,
			DiscountPercent: line.DiscountPercent,
			LineTotal:       line.LineTotal,
		})
	}

	return voucher, nil
}

// ExpenseVoucherPrint builds a printable voucher for an expense voucher
func (s *VoucherService) ExpenseVoucherPrint(ctx context.Context, id uuid.UUID) (*entity.Voucher, error) {
	expense, err := s.expenseRepo.GetWithLines(ctx, id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, apperror.NewNotFoundError("Expense voucher")
	}

	header, err := s.buildHeader(ctx)
	if err != nil {
		return nil, err
	}

	voucher := &entity.Voucher{
		Header:        header,
		Title:         "Expense Voucher",
		DocumentNo:    expense.VoucherNo,
		Date:          expense.Date.Format(voucherDateLayout),
		PartyName:     expense.PaidTo,
		SubTotal:      expense.SubTotal,
		RoundOffDelta: expense.RoundOffDelta,
		GrandTotal:    expense.RoundedTotal,
		AmountPaid:    expense.AmountPaid,
		BalanceDue:    expense.BalanceDue,
		AmountInWords: numwords.AmountInWords(expense.RoundedTotal),
	}

	voucher.Lines = make([]entity.VoucherLine, 0, len(expense.Lines))
	for _, line := range expense.Lines {
		voucher.Lines = append(voucher.Lines, entity.VoucherLine{
			Name:      line.Description,
			Quantity:  1,
			UnitRate:  line.Amount,
			LineTotal: line.Amount,
		})
	}

	return voucher, nil
}
