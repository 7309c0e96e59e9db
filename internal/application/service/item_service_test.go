package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiranps/tradebooks-api/internal/domain/entity"
)

func TestImportItems(t *testing.T) {
	itemRepo := newFakeItemRepo()
	svc := NewItemService(itemRepo)
	userID := uuid.New()

	// Pre-existing catalog item to collide with.
	require.NoError(t, itemRepo.Create(context.Background(), &entity.Item{
		UserID:        userID,
		Name:          "Cement 50kg",
		Code:          "CEM-50",
		Unit:          "Bag",
		TaxDescriptor: "GST @ 28%",
	}))

	rows := []ImportItemRow{
		{Name: "TMT Bar 12mm", Code: "TMT-12", Unit: "Kg", PurchasePrice: "62", SellingPrice: "71", TaxDescriptor: "GST @ 18%", HSN: "7214"},
		{Name: "", Code: "MISSING-NAME"},
		{Name: "Cement 50kg Duplicate", Code: "CEM-50"},
		{Name: "GI Pipe 1 inch", Code: "GIP-1", PurchasePrice: "not-a-number", SellingPrice: "240.50"},
		{Name: "GI Pipe Again", Code: "GIP-1"},
	}

	result, err := svc.ImportItems(context.Background(), userID, rows)
	require.NoError(t, err)

	assert.Equal(t, 5, result.TotalRows)
	assert.Equal(t, 2, result.Successful)
	assert.Equal(t, 3, result.Failed)
	require.Len(t, result.Errors, 3)

	// Data rows are reported 1-based with the header as row 1.
	assert.Equal(t, 3, result.Errors[0].Row)
	assert.Equal(t, "name", result.Errors[0].Field)
	assert.Equal(t, 4, result.Errors[1].Row)
	assert.Contains(t, result.Errors[1].Message, "already exists")
	assert.Equal(t, 6, result.Errors[2].Row)
	assert.Contains(t, result.Errors[2].Message, "same as row 5")

	bar, err := itemRepo.GetByCode(context.Background(), "TMT-12")
	require.NoError(t, err)
	require.NotNil(t, bar)
	assert.Equal(t, 62.0, bar.PurchasePrice)
	assert.Equal(t, 71.0, bar.SellingPrice)
	require.NotNil(t, bar.HSN)
	assert.Equal(t, "7214", *bar.HSN)

	// Unparseable prices degrade to zero instead of failing the row.
	pipe, err := itemRepo.GetByCode(context.Background(), "GIP-1")
	require.NoError(t, err)
	require.NotNil(t, pipe)
	assert.Equal(t, 0.0, pipe.PurchasePrice)
	assert.Equal(t, 240.50, pipe.SellingPrice)
	assert.Equal(t, "Pcs", pipe.Unit)
	assert.Equal(t, "None", pipe.TaxDescriptor)
}

func TestImportItemsGeneratesCodes(t *testing.T) {
	itemRepo := newFakeItemRepo()
	svc := NewItemService(itemRepo)

	rows := []ImportItemRow{
		{Name: "Loose Nails"},
		{Name: "Binding Wire"},
	}

	result, err := svc.ImportItems(context.Background(), uuid.New(), rows)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Successful)
	assert.Zero(t, result.Failed)

	items, _, err := itemRepo.List(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, items, 2)
	for _, item := range items {
		assert.NotEmpty(t, item.Code)
	}
}
