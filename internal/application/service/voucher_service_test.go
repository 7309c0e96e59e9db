package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiranps/tradebooks-api/internal/domain/entity"
	"github.com/kiranps/tradebooks-api/pkg/apperror"
)

func strPtr(s string) *string { return &s }

func TestPurchaseInvoiceVoucher(t *testing.T) {
	lineRepo := newFakeInvoiceLineRepo()
	invoiceRepo := newFakeInvoiceRepo(lineRepo)
	settingsRepo := &fakeSettingsRepo{settings: &entity.CompanySettings{
		CompanyName: "Tradebooks Steel & Hardware",
		Address:     strPtr("12 Market Road, Kochi"),
		Phone:       strPtr("+91 98470 00000"),
		GSTIN:       strPtr("32AAAAA0000A1Z5"),
	}}
	svc := NewVoucherService(invoiceRepo, nil, nil, nil, settingsRepo)

	invoiceID := uuid.New()
	invoice := entity.PurchaseInvoice{
		ID:        invoiceID,
		InvoiceNo: "PI-000007",
		Date:      time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		Supplier: &entity.Supplier{
			Name:     "Ravi Kumar",
			FirmName: strPtr("Kumar Steel Agencies"),
			GSTIN:    strPtr("32BBBBB1111B1Z6"),
		},
		SubTotal:      1062,
		DiscountValue: 55.6,
		TotalTax:      162,
		RoundOffDelta: -0.4,
		RoundedTotal:  1056,
		AmountPaid:    500,
		BalanceDue:    556,
	}
	require.NoError(t, invoiceRepo.Create(context.Background(), &invoice))
	require.NoError(t, lineRepo.CreateBatch(context.Background(), []entity.PurchaseInvoiceLine{
		{
			InvoiceID:       invoiceID,
			ItemName:        "TMT Bar 12mm",
			HSN:             "7214",
			Unit:            "Kg",
			Quantity:        2,
			UnitRate:        500,
			DiscountPercent: 10,
			TaxPercent:      18,
			LineTotal:       1062,
		},
	}))

	voucher, err := svc.PurchaseInvoiceVoucher(context.Background(), invoiceID)
	require.NoError(t, err)

	assert.Equal(t, "Purchase Invoice", voucher.Title)
	assert.Equal(t, "PI-000007", voucher.DocumentNo)
	assert.Equal(t, "14-03-2025", voucher.Date)

	// Header comes from company settings.
	assert.Equal(t, "Tradebooks Steel & Hardware", voucher.Header.CompanyName)
	assert.Equal(t, "12 Market Road, Kochi", voucher.Header.Address)
	assert.Equal(t, "32AAAAA0000A1Z5", voucher.Header.GSTIN)

	// The firm name takes precedence over the contact name.
	assert.Equal(t, "Kumar Steel Agencies", voucher.PartyName)
	assert.Equal(t, "32BBBBB1111B1Z6", voucher.PartyGSTIN)

	assert.Equal(t, 1062.0, voucher.SubTotal)
	assert.Equal(t, 1056.0, voucher.GrandTotal)
	assert.Equal(t, 556.0, voucher.BalanceDue)
	assert.Equal(t, "Rupees One Thousand Fifty Six Only", voucher.AmountInWords)

	require.Len(t, voucher.Lines, 1)
	assert.Equal(t, "TMT Bar 12mm", voucher.Lines[0].Name)
	assert.Equal(t, "7214", voucher.Lines[0].HSN)
	assert.Equal(t, 18.0, voucher.Lines[0].TaxPercent)
	assert.Equal(t, 1062.0, voucher.Lines[0].LineTotal)
}

func TestPurchaseInvoiceVoucherWithoutSettings(t *testing.T) {
	lineRepo := newFakeInvoiceLineRepo()
	invoiceRepo := newFakeInvoiceRepo(lineRepo)
	svc := NewVoucherService(invoiceRepo, nil, nil, nil, &fakeSettingsRepo{})

	invoice := entity.PurchaseInvoice{
		ID:           uuid.New(),
		InvoiceNo:    "PI-000001",
		Date:         time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
		RoundedTotal: 100,
	}
	require.NoError(t, invoiceRepo.Create(context.Background(), &invoice))

	voucher, err := svc.PurchaseInvoiceVoucher(context.Background(), invoice.ID)
	require.NoError(t, err)

	// No settings row yet and no supplier attached; the voucher still prints.
	assert.Empty(t, voucher.Header.CompanyName)
	assert.Empty(t, voucher.PartyName)
	assert.Equal(t, "Rupees One Hundred Only", voucher.AmountInWords)
}

func TestPurchaseInvoiceVoucherNotFound(t *testing.T) {
	lineRepo := newFakeInvoiceLineRepo()
	svc := NewVoucherService(newFakeInvoiceRepo(lineRepo), nil, nil, nil, &fakeSettingsRepo{})

	_, err := svc.PurchaseInvoiceVoucher(context.Background(), uuid.New())
	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 404, appErr.Code)
}

func TestQuotationVoucher(t *testing.T) {
	lineRepo := newFakeQuotationLineRepo()
	quotationRepo := newFakeQuotationRepo(lineRepo)
	settingsRepo := &fakeSettingsRepo{settings: &entity.CompanySettings{
		CompanyName: "Tradebooks Steel & Hardware",
	}}
	svc := NewVoucherService(nil, quotationRepo, nil, nil, settingsRepo)

	quotationID := uuid.New()
	quotation := entity.Quotation{
		ID:           quotationID,
		Reference:    "QT-000003",
		Date:         time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
		CustomerName: "Sharma Traders",
		Customer: &entity.Customer{
			Name:  "Sharma Traders",
			GSTIN: strPtr("27CCCCC2222C1Z7"),
		},
		SubTotal:     1771.25,
		TotalTax:     270.19,
		RoundedTotal: 1771,
	}
	require.NoError(t, quotationRepo.Create(context.Background(), &quotation))
	require.NoError(t, lineRepo.CreateBatch(context.Background(), []entity.QuotationLine{
		{QuotationID: quotationID, ItemName: "GI Pipe 1 inch", Quantity: 25, UnitRate: 71, TaxPercent: 18, LineTotal: 1771.25},
	}))

	voucher, err := svc.QuotationVoucher(context.Background(), quotationID)
	require.NoError(t, err)

	assert.Equal(t, "Quotation", voucher.Title)
	assert.Equal(t, "QT-000003", voucher.DocumentNo)
	assert.Equal(t, "30-06-2025", voucher.Date)
	assert.Equal(t, "Sharma Traders", voucher.PartyName)
	assert.Equal(t, "27CCCCC2222C1Z7", voucher.PartyGSTIN)
	assert.Equal(t, "Rupees One Thousand Seven Hundred Seventy One Only", voucher.AmountInWords)
	require.Len(t, voucher.Lines, 1)
	assert.Equal(t, "GI Pipe 1 inch", voucher.Lines[0].Name)
}
