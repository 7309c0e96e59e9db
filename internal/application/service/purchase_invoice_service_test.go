package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiranps/tradebooks-api/internal/domain/entity"
	"github.com/kiranps/tradebooks-api/internal/domain/enum"
	"github.com/kiranps/tradebooks-api/pkg/apperror"
)

func newInvoiceServiceFixture() (*PurchaseInvoiceService, *fakeInvoiceRepo, *fakePaymentRepo, *fakeItemRepo, *fakeSupplierRepo) {
	lineRepo := newFakeInvoiceLineRepo()
	invoiceRepo := newFakeInvoiceRepo(lineRepo)
	paymentRepo := newFakePaymentRepo()
	itemRepo := newFakeItemRepo()
	supplierRepo := newFakeSupplierRepo()

	svc := NewPurchaseInvoiceService(invoiceRepo, lineRepo, paymentRepo, itemRepo, supplierRepo)
	return svc, invoiceRepo, paymentRepo, itemRepo, supplierRepo
}

func TestCreatePurchaseInvoiceComputesTotals(t *testing.T) {
	svc, _, _, _, _ := newInvoiceServiceFixture()
	ctx := context.Background()

	invoice, err := svc.CreatePurchaseInvoice(ctx, &CreatePurchaseInvoiceInput{
		UserID:            uuid.New(),
		Date:              time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		AdditionalCharges: "50",
		OverallDiscount:   "5",
		DiscountType:      enum.DiscountTypePercentage,
		AutoRoundOff:      true,
		AmountPaid:        "500",
		Lines: []DocumentLineInput{
			{ItemName: "Cement 50kg", Quantity: "2", UnitRate: "500", DiscountPercent: "10", TaxDescriptor: "GST @ 18%"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "PI-000001", invoice.InvoiceNo)
	assert.InDelta(t, 1062, invoice.SubTotal, 1e-9)
	assert.InDelta(t, 55.6, invoice.DiscountValue, 1e-9)
	assert.InDelta(t, 162, invoice.TotalTax, 1e-9)
	assert.InDelta(t, 1056.4, invoice.TotalBeforeRound, 1e-9)
	assert.InDelta(t, 1056, invoice.RoundedTotal, 1e-9)
	assert.InDelta(t, -0.4, invoice.RoundOffDelta, 1e-9)
	assert.InDelta(t, 556, invoice.BalanceDue, 1e-9)
	assert.Equal(t, enum.InvoiceStatusPartial, invoice.Status)

	require.Len(t, invoice.Lines, 1)
	line := invoice.Lines[0]
	assert.Equal(t, "Cement 50kg", line.ItemName)
	assert.InDelta(t, 18, line.TaxPercent, 1e-9)
	assert.InDelta(t, 900, line.TaxableAmount, 1e-9)
	assert.InDelta(t, 1062, line.LineTotal, 1e-9)
}

func TestCreatePurchaseInvoiceDuplicateNumber(t *testing.T) {
	svc, invoiceRepo, _, _, _ := newInvoiceServiceFixture()
	ctx := context.Background()

	require.NoError(t, invoiceRepo.Create(ctx, &entity.PurchaseInvoice{
		UserID:    uuid.New(),
		InvoiceNo: "PI-000042",
	}))

	_, err := svc.CreatePurchaseInvoice(ctx, &CreatePurchaseInvoiceInput{
		UserID:    uuid.New(),
		Date:      time.Now(),
		InvoiceNo: "PI-000042",
	})
	require.Error(t, err)

	appErr := apperror.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 409, appErr.Code)
}

func TestCreatePurchaseInvoiceUnknownSupplier(t *testing.T) {
	svc, _, _, _, _ := newInvoiceServiceFixture()
	missing := uuid.New()

	_, err := svc.CreatePurchaseInvoice(context.Background(), &CreatePurchaseInvoiceInput{
		UserID:     uuid.New(),
		SupplierID: &missing,
		Date:       time.Now(),
	})
	require.Error(t, err)

	appErr := apperror.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 404, appErr.Code)
}

func TestCreatePurchaseInvoiceFromCatalog(t *testing.T) {
	svc, _, _, itemRepo, _ := newInvoiceServiceFixture()
	ctx := context.Background()

	item := entity.Item{
		UserID:        uuid.New(),
		Name:          "TMT Bar 12mm",
		Code:          "TMT12",
		Unit:          "Kg",
		PurchasePrice: 62,
		SellingPrice:  71,
		TaxDescriptor: "GST @ 18%",
	}
	require.NoError(t, itemRepo.Create(ctx, &item))

	invoice, err := svc.CreatePurchaseInvoice(ctx, &CreatePurchaseInvoiceInput{
		UserID: uuid.New(),
		Date:   time.Now(),
		Lines: []DocumentLineInput{
			{ItemID: &item.ID, Quantity: "100"},
		},
	})
	require.NoError(t, err)

	require.Len(t, invoice.Lines, 1)
	line := invoice.Lines[0]
	// Inbound documents price catalog lines at the purchase price.
	assert.Equal(t, "TMT Bar 12mm", line.ItemName)
	assert.InDelta(t, 62, line.UnitRate, 1e-9)
	assert.InDelta(t, 100, line.Quantity, 1e-9)
	assert.Equal(t, "GST @ 18%", line.TaxDescriptor)
	assert.InDelta(t, 18, line.TaxPercent, 1e-9)
	require.NotNil(t, line.ItemID)
	assert.Equal(t, item.ID, *line.ItemID)
}

func TestUpdatePurchaseInvoiceOwnership(t *testing.T) {
	svc, _, _, _, _ := newInvoiceServiceFixture()
	ctx := context.Background()

	owner := uuid.New()
	invoice, err := svc.CreatePurchaseInvoice(ctx, &CreatePurchaseInvoiceInput{
		UserID: owner,
		Date:   time.Now(),
		Lines: []DocumentLineInput{
			{ItemName: "Sand", Quantity: "1", UnitRate: "100"},
		},
	})
	require.NoError(t, err)

	// A different non-admin user cannot edit the invoice.
	_, err = svc.UpdatePurchaseInvoice(ctx, &UpdatePurchaseInvoiceInput{
		ID:     invoice.ID,
		UserID: uuid.New(),
		Date:   invoice.Date,
	})
	assert.ErrorIs(t, err, apperror.ErrForbidden)

	// An admin can.
	updated, err := svc.UpdatePurchaseInvoice(ctx, &UpdatePurchaseInvoiceInput{
		ID:      invoice.ID,
		UserID:  uuid.New(),
		IsAdmin: true,
		Date:    invoice.Date,
		Lines: []DocumentLineInput{
			{ItemName: "Sand", Quantity: "2", UnitRate: "100"},
		},
	})
	require.NoError(t, err)
	assert.InDelta(t, 200, updated.SubTotal, 1e-9)
	require.Len(t, updated.Lines, 1)
}

func TestUpdateCancelledInvoiceRejected(t *testing.T) {
	svc, invoiceRepo, _, _, _ := newInvoiceServiceFixture()
	ctx := context.Background()

	owner := uuid.New()
	invoice, err := svc.CreatePurchaseInvoice(ctx, &CreatePurchaseInvoiceInput{
		UserID: owner,
		Date:   time.Now(),
		Lines:  []DocumentLineInput{{ItemName: "Sand", Quantity: "1", UnitRate: "100"}},
	})
	require.NoError(t, err)

	require.NoError(t, invoiceRepo.UpdateStatus(ctx, invoice.ID, enum.InvoiceStatusCancelled))

	_, err = svc.UpdatePurchaseInvoice(ctx, &UpdatePurchaseInvoiceInput{
		ID:     invoice.ID,
		UserID: owner,
		Date:   invoice.Date,
	})
	require.Error(t, err)

	appErr := apperror.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 400, appErr.Code)
}

func TestRecordPaymentSettlesInvoice(t *testing.T) {
	svc, invoiceRepo, _, _, _ := newInvoiceServiceFixture()
	ctx := context.Background()

	owner := uuid.New()
	invoice, err := svc.CreatePurchaseInvoice(ctx, &CreatePurchaseInvoiceInput{
		UserID: owner,
		Date:   time.Now(),
		Lines:  []DocumentLineInput{{ItemName: "Bricks", Quantity: "1000", UnitRate: "8"}},
	})
	require.NoError(t, err)
	require.InDelta(t, 8000, invoice.RoundedTotal, 1e-9)
	require.Equal(t, enum.InvoiceStatusUnpaid, invoice.Status)

	_, err = svc.RecordPayment(ctx, &RecordPaymentInput{
		InvoiceID: invoice.ID,
		UserID:    owner,
		Date:      time.Now(),
		Amount:    "3000",
		Mode:      enum.PaymentModeBank,
	})
	require.NoError(t, err)

	stored, err := invoiceRepo.GetByID(ctx, invoice.ID)
	require.NoError(t, err)
	assert.InDelta(t, 3000, stored.AmountPaid, 1e-9)
	assert.InDelta(t, 5000, stored.BalanceDue, 1e-9)
	assert.Equal(t, enum.InvoiceStatusPartial, stored.Status)

	_, err = svc.RecordPayment(ctx, &RecordPaymentInput{
		InvoiceID: invoice.ID,
		UserID:    owner,
		Date:      time.Now(),
		Amount:    "5000",
		Mode:      enum.PaymentModeCash,
	})
	require.NoError(t, err)

	stored, err = invoiceRepo.GetByID(ctx, invoice.ID)
	require.NoError(t, err)
	assert.InDelta(t, 0, stored.BalanceDue, 1e-9)
	assert.Equal(t, enum.InvoiceStatusPaid, stored.Status)
}

func TestRecordPaymentRejectsNonPositiveAmount(t *testing.T) {
	svc, _, _, _, _ := newInvoiceServiceFixture()
	ctx := context.Background()

	owner := uuid.New()
	invoice, err := svc.CreatePurchaseInvoice(ctx, &CreatePurchaseInvoiceInput{
		UserID: owner,
		Date:   time.Now(),
		Lines:  []DocumentLineInput{{ItemName: "Bricks", Quantity: "10", UnitRate: "8"}},
	})
	require.NoError(t, err)

	for _, amount := range []string{"0", "-50", "not-a-number"} {
		_, err := svc.RecordPayment(ctx, &RecordPaymentInput{
			InvoiceID: invoice.ID,
			UserID:    owner,
			Date:      time.Now(),
			Amount:    amount,
			Mode:      enum.PaymentModeCash,
		})
		require.Error(t, err, "amount %q should be rejected", amount)
	}
}

func TestDeletePaymentRestoresBalance(t *testing.T) {
	svc, invoiceRepo, _, _, _ := newInvoiceServiceFixture()
	ctx := context.Background()

	owner := uuid.New()
	invoice, err := svc.CreatePurchaseInvoice(ctx, &CreatePurchaseInvoiceInput{
		UserID: owner,
		Date:   time.Now(),
		Lines:  []DocumentLineInput{{ItemName: "Steel", Quantity: "10", UnitRate: "100"}},
	})
	require.NoError(t, err)

	payment, err := svc.RecordPayment(ctx, &RecordPaymentInput{
		InvoiceID: invoice.ID,
		UserID:    owner,
		Date:      time.Now(),
		Amount:    "1000",
		Mode:      enum.PaymentModeUPI,
	})
	require.NoError(t, err)

	stored, _ := invoiceRepo.GetByID(ctx, invoice.ID)
	require.Equal(t, enum.InvoiceStatusPaid, stored.Status)

	require.NoError(t, svc.DeletePayment(ctx, payment.ID))

	stored, _ = invoiceRepo.GetByID(ctx, invoice.ID)
	assert.InDelta(t, 0, stored.AmountPaid, 1e-9)
	assert.InDelta(t, 1000, stored.BalanceDue, 1e-9)
	assert.Equal(t, enum.InvoiceStatusUnpaid, stored.Status)
}

func TestCancelPurchaseInvoice(t *testing.T) {
	svc, invoiceRepo, _, _, _ := newInvoiceServiceFixture()
	ctx := context.Background()

	owner := uuid.New()
	invoice, err := svc.CreatePurchaseInvoice(ctx, &CreatePurchaseInvoiceInput{
		UserID: owner,
		Date:   time.Now(),
		Lines:  []DocumentLineInput{{ItemName: "Gravel", Quantity: "1", UnitRate: "500"}},
	})
	require.NoError(t, err)

	require.NoError(t, svc.CancelPurchaseInvoice(ctx, owner, invoice.ID, false))

	stored, _ := invoiceRepo.GetByID(ctx, invoice.ID)
	assert.Equal(t, enum.InvoiceStatusCancelled, stored.Status)

	_, err = svc.RecordPayment(ctx, &RecordPaymentInput{
		InvoiceID: invoice.ID,
		UserID:    owner,
		Date:      time.Now(),
		Amount:    "100",
		Mode:      enum.PaymentModeCash,
	})
	require.Error(t, err)
}

func TestCreatePurchaseInvoiceOmittedQuantityKeepsDefault(t *testing.T) {
	svc, _, _, _, _ := newInvoiceServiceFixture()
	ctx := context.Background()

	invoice, err := svc.CreatePurchaseInvoice(ctx, &CreatePurchaseInvoiceInput{
		UserID: uuid.New(),
		Date:   time.Now(),
		Lines: []DocumentLineInput{
			// Empty string means the field was omitted from the form, so the
			// default quantity of one stands.
			{ItemName: "Binding Wire", UnitRate: "250"},
			// A present but malformed value degrades to zero instead.
			{ItemName: "Nails 2in", Quantity: "a few", UnitRate: "80"},
		},
	})
	require.NoError(t, err)

	require.Len(t, invoice.Lines, 2)
	assert.InDelta(t, 1, invoice.Lines[0].Quantity, 1e-9)
	assert.InDelta(t, 250, invoice.Lines[0].TaxableAmount, 1e-9)
	assert.InDelta(t, 0, invoice.Lines[1].Quantity, 1e-9)
	assert.InDelta(t, 0, invoice.Lines[1].TaxableAmount, 1e-9)
}
