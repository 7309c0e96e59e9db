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

func newQuotationServiceFixture() (*QuotationService, *fakeQuotationRepo, *fakeItemRepo, *fakeCustomerRepo) {
	lineRepo := newFakeQuotationLineRepo()
	quotationRepo := newFakeQuotationRepo(lineRepo)
	itemRepo := newFakeItemRepo()
	customerRepo := newFakeCustomerRepo()

	svc := NewQuotationService(quotationRepo, lineRepo, itemRepo, customerRepo)
	return svc, quotationRepo, itemRepo, customerRepo
}

func TestCreateQuotationUsesSellingPrice(t *testing.T) {
	svc, _, itemRepo, _ := newQuotationServiceFixture()
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

	quotation, err := svc.CreateQuotation(ctx, &CreateQuotationInput{
		UserID: uuid.New(),
		Date:   time.Now(),
		Lines: []DocumentLineInput{
			{ItemID: &item.ID, Quantity: "10"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "QT-000001", quotation.Reference)
	require.Len(t, quotation.Lines, 1)
	line := quotation.Lines[0]
	// Outbound documents price catalog lines at the selling price.
	assert.InDelta(t, 71, line.UnitRate, 1e-9)
	assert.InDelta(t, 710, line.TaxableAmount, 1e-9)
	assert.InDelta(t, 127.8, line.TaxAmount, 1e-9)
}

func TestCreateQuotationSnapshotsCustomerName(t *testing.T) {
	svc, _, _, customerRepo := newQuotationServiceFixture()
	ctx := context.Background()

	customer := entity.Customer{UserID: uuid.New(), Name: "Sharma Traders"}
	require.NoError(t, customerRepo.Create(ctx, &customer))

	quotation, err := svc.CreateQuotation(ctx, &CreateQuotationInput{
		UserID:     uuid.New(),
		CustomerID: &customer.ID,
		Date:       time.Now(),
		Status:     enum.QuotationStatusSent,
		Lines:      []DocumentLineInput{{ItemName: "Pipe", Quantity: "5", UnitRate: "120"}},
	})
	require.NoError(t, err)

	assert.Equal(t, "Sharma Traders", quotation.CustomerName)
	assert.Equal(t, enum.QuotationStatusSent, quotation.Status)
	assert.InDelta(t, 600, quotation.SubTotal, 1e-9)
}

func TestQuotationReferenceSequence(t *testing.T) {
	svc, _, _, _ := newQuotationServiceFixture()
	ctx := context.Background()

	first, err := svc.CreateQuotation(ctx, &CreateQuotationInput{
		UserID: uuid.New(),
		Date:   time.Now(),
	})
	require.NoError(t, err)

	second, err := svc.CreateQuotation(ctx, &CreateQuotationInput{
		UserID: uuid.New(),
		Date:   time.Now(),
	})
	require.NoError(t, err)

	assert.Equal(t, "QT-000001", first.Reference)
	assert.Equal(t, "QT-000002", second.Reference)
}

func TestUpdateQuotationRecomputesTotals(t *testing.T) {
	svc, _, _, _ := newQuotationServiceFixture()
	ctx := context.Background()

	owner := uuid.New()
	quotation, err := svc.CreateQuotation(ctx, &CreateQuotationInput{
		UserID: owner,
		Date:   time.Now(),
		Lines:  []DocumentLineInput{{ItemName: "Pipe", Quantity: "5", UnitRate: "120"}},
	})
	require.NoError(t, err)
	require.InDelta(t, 600, quotation.SubTotal, 1e-9)

	updated, err := svc.UpdateQuotation(ctx, &UpdateQuotationInput{
		ID:     quotation.ID,
		UserID: owner,
		Date:   quotation.Date,
		Lines: []DocumentLineInput{
			{ItemName: "Pipe", Quantity: "5", UnitRate: "120"},
			{ItemName: "Elbow Joint", Quantity: "20", UnitRate: "15", TaxDescriptor: "GST @ 12%"},
		},
	})
	require.NoError(t, err)

	assert.InDelta(t, 936, updated.SubTotal, 1e-9)
	assert.InDelta(t, 36, updated.TotalTax, 1e-9)
	require.Len(t, updated.Lines, 2)
	// The reference never changes on update.
	assert.Equal(t, quotation.Reference, updated.Reference)
}

func TestQuotationOwnershipChecks(t *testing.T) {
	svc, quotationRepo, _, _ := newQuotationServiceFixture()
	ctx := context.Background()

	owner := uuid.New()
	stranger := uuid.New()
	quotation, err := svc.CreateQuotation(ctx, &CreateQuotationInput{
		UserID: owner,
		Date:   time.Now(),
	})
	require.NoError(t, err)

	err = svc.UpdateQuotationStatus(ctx, stranger, quotation.ID, enum.QuotationStatusAccepted, false)
	assert.ErrorIs(t, err, apperror.ErrForbidden)

	err = svc.DeleteQuotation(ctx, stranger, quotation.ID, false)
	assert.ErrorIs(t, err, apperror.ErrForbidden)

	require.NoError(t, svc.UpdateQuotationStatus(ctx, stranger, quotation.ID, enum.QuotationStatusAccepted, true))
	stored, _ := quotationRepo.GetByID(ctx, quotation.ID)
	assert.Equal(t, enum.QuotationStatusAccepted, stored.Status)

	require.NoError(t, svc.DeleteQuotation(ctx, owner, quotation.ID, false))
	stored, _ = quotationRepo.GetByID(ctx, quotation.ID)
	assert.Nil(t, stored)

	err = svc.DeleteQuotation(ctx, owner, quotation.ID, false)
	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 404, appErr.Code)
}
