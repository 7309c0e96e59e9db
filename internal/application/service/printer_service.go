package service

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"github.com/google/uuid"
	"github.com/kiranps/tradebooks-api/internal/domain/entity"
	"github.com/kiranps/tradebooks-api/pkg/printer"
)

// PrinterService formats vouchers as ESC/POS and sends them to a thermal printer.
type PrinterService struct {
	printer        printer.Printer
	voucherService *VoucherService
	printerType    string
}

// NewPrinterService creates a new printer service.
func NewPrinterService(p printer.Printer, voucherService *VoucherService, printerType string) *PrinterService {
	return &PrinterService{
		printer:        p,
		voucherService: voucherService,
		printerType:    printerType,
	}
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetStatus returns printer connection status.
func (s *PrinterService) GetStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

// TestPrint sends a test voucher to the printer.
// Returns the voucher data so the handler can return it as JSON when no printer is attached.
func (s *PrinterService) TestPrint() (*entity.Voucher, error) {
	voucher := &entity.Voucher{
		Header: entity.VoucherHeader{
			CompanyName: "PRINTER TEST",
			Address:     "Test Address",
			Phone:       "+91 00000 00000",
		},
		Title:      "Test Voucher",
		DocumentNo: "TEST-001",
		Date:       "01-01-2000",
		Lines: []entity.VoucherLine{
			{Name: "Test Item 1", Quantity: 1, UnitRate: 10.00, LineTotal: 10.00},
			{Name: "Test Item 2", Quantity: 2, UnitRate: 5.00, LineTotal: 10.00},
		},
		SubTotal:      20.00,
		GrandTotal:    20.00,
		AmountInWords: "Rupees Twenty Only",
	}

	data := FormatVoucher(voucher)
	if err := s.printer.Print(data); err != nil {
		return voucher, fmt.Errorf("test print failed: %w", err)
	}

	return voucher, nil
}

// PrintPurchaseInvoice assembles a purchase invoice voucher and prints it.
func (s *PrinterService) PrintPurchaseInvoice(ctx context.Context, id uuid.UUID) (*entity.Voucher, error) {
	voucher, err := s.voucherService.PurchaseInvoiceVoucher(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.print(voucher, id)
}

// PrintQuotation assembles a quotation voucher and prints it.
func (s *PrinterService) PrintQuotation(ctx context.Context, id uuid.UUID) (*entity.Voucher, error) {
	voucher, err := s.voucherService.QuotationVoucher(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.print(voucher, id)
}

// PrintCreditNote assembles a credit note voucher and prints it.
func (s *PrinterService) PrintCreditNote(ctx context.Context, id uuid.UUID) (*entity.Voucher, error) {
	voucher, err := s.voucherService.CreditNoteVoucher(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.print(voucher, id)
}

// PrintExpenseVoucher assembles an expense voucher and prints it.
func (s *PrinterService) PrintExpenseVoucher(ctx context.Context, id uuid.UUID) (*entity.Voucher, error) {
	voucher, err := s.voucherService.ExpenseVoucherPrint(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.print(voucher, id)
}

func (s *PrinterService) print(voucher *entity.Voucher, id uuid.UUID) (*entity.Voucher, error) {
	data := FormatVoucher(voucher)
	if err := s.printer.Print(data); err != nil {
		log.Printf("Printer error (document %s): %v", id, err)
		return voucher, fmt.Errorf("failed to print voucher: %w", err)
	}
	return voucher, nil
}

// FormatVoucher converts a Voucher into ESC/POS bytes.
func FormatVoucher(v *entity.Voucher) []byte {
	doc := printer.NewDocument(48) // 80mm paper = 48 chars

	// Header
	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(v.Header.CompanyName).
		SetFontSize(printer.FontNormal).
		SetBold(false)

	if v.Header.Address != "" {
		doc.Text(v.Header.Address)
	}
	if v.Header.Phone != "" {
		doc.Text(v.Header.Phone)
	}
	if v.Header.GSTIN != "" {
		doc.TextF("GSTIN: %s", v.Header.GSTIN)
	}

	doc.LineFeed().
		SetBold(true).
		Text(v.Title).
		SetBold(false).
		SetAlign(printer.AlignLeft).
		Separator('-')

	// Document info
	doc.KeyValue("No:", v.DocumentNo).
		KeyValue("Date:", v.Date)

	if v.PartyName != "" {
		doc.KeyValue("Party:", v.PartyName)
	}
	if v.PartyGSTIN != "" {
		doc.KeyValue("Party GSTIN:", v.PartyGSTIN)
	}

	doc.Separator('-')

	// Lines
	for _, line := range v.Lines {
		qty := strconv.FormatFloat(line.Quantity, 'f', -1, 64)
		doc.ItemLine(qty, line.Name, fmt.Sprintf("%.2f", line.LineTotal))
		if line.Quantity != 1 {
			doc.TextF("  @ %.2f each", line.UnitRate)
		}
	}

	doc.Separator('-')

	// Totals
	doc.KeyValue("Subtotal:", fmt.Sprintf("%.2f", v.SubTotal))
	if v.DiscountValue > 0 {
		doc.KeyValue("Discount:", fmt.Sprintf("%.2f", v.DiscountValue))
	}
	if v.TotalTax > 0 {
		doc.KeyValue("Tax:", fmt.Sprintf("%.2f", v.TotalTax))
	}
	if v.RoundOffDelta != 0 {
		doc.KeyValue("Round off:", fmt.Sprintf("%+.2f", v.RoundOffDelta))
	}
	doc.SetBold(true).
		KeyValue("TOTAL:", fmt.Sprintf("%.2f", v.GrandTotal)).
		SetBold(false)

	if v.AmountPaid > 0 {
		doc.KeyValue("Paid:", fmt.Sprintf("%.2f", v.AmountPaid))
	}
	if v.BalanceDue > 0 {
		doc.KeyValue("Balance:", fmt.Sprintf("%.2f", v.BalanceDue))
	}

	doc.Separator('-')

	// Amount in words
	if v.AmountInWords != "" {
		doc.Text(v.AmountInWords)
		doc.Separator('-')
	}

	doc.FeedLines(3).
		PartialCut()

	return doc.Bytes()
}
