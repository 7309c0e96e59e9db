package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDocumentDefaults(t *testing.T) {
	doc := NewDocument(true, false)

	require.Len(t, doc.Lines, 1)
	line := doc.Lines[0]
	assert.Equal(t, 1.0, line.Quantity)
	assert.Equal(t, 0.0, line.UnitRate)
	assert.Equal(t, 0.0, line.DiscountPercent)
	assert.Equal(t, "None", line.TaxDescriptor)
	assert.Equal(t, Totals{}, doc.Totals)
}

func TestRemoveLastLineIsNoOp(t *testing.T) {
	doc := NewDocument(true, false)

	assert.False(t, doc.RemoveLine(0))
	require.Len(t, doc.Lines, 1)

	doc.AddLine()
	assert.True(t, doc.RemoveLine(1))
	assert.False(t, doc.RemoveLine(0))
	assert.Len(t, doc.Lines, 1)
}

func TestRemoveLineOutOfRange(t *testing.T) {
	doc := NewDocument(true, false)
	doc.AddLine()

	assert.False(t, doc.RemoveLine(-1))
	assert.False(t, doc.RemoveLine(5))
	assert.Len(t, doc.Lines, 2)
}

func TestApplyCatalogItem(t *testing.T) {
	item := CatalogItem{
		Name:          "Copper Wire 2.5mm",
		HSN:           "8544",
		Unit:          "Mtr",
		PurchasePrice: 42,
		SellingPrice:  55,
		TaxDescriptor: "GST @ 18%",
	}

	inbound := NewDocument(true, true)
	inbound.Lines[0].SetQuantity("3")
	inbound.ApplyCatalogItem(0, item)

	line := inbound.Lines[0]
	assert.Equal(t, "Copper Wire 2.5mm", line.ItemName)
	assert.Equal(t, "8544", line.HSN)
	assert.Equal(t, "Mtr", line.Unit)
	assert.Equal(t, 42.0, line.UnitRate)
	assert.Equal(t, 18.0, line.TaxPercent)
	assert.Equal(t, 3.0, line.Quantity)
	assert.InDelta(t, 3*42*1.18, line.Amounts.LineTotal, 1e-9)

	outbound := NewDocument(true, false)
	outbound.ApplyCatalogItem(0, item)
	assert.Equal(t, 55.0, outbound.Lines[0].UnitRate)
}

func TestTaxDisabledDocument(t *testing.T) {
	doc := NewDocument(false, false)
	doc.Lines[0].SetQuantity("2")
	doc.Lines[0].SetUnitRate("500")
	doc.Lines[0].SetTaxDescriptor("GST @ 18%")
	doc.Recompute()

	// Credit notes run through the same engine with tax forced to zero.
	assert.InDelta(t, 1000, doc.Lines[0].Amounts.LineTotal, 1e-9)
	assert.InDelta(t, 0, doc.Lines[0].Amounts.TaxAmount, 1e-9)
}

func TestMalformedFieldDegradesToZero(t *testing.T) {
	doc := NewDocument(true, false)
	doc.Lines[0].SetQuantity("2")
	doc.Lines[0].SetUnitRate("500")
	doc.Lines[0].SetTaxDescriptor("GST @ 18%")

	second := doc.AddLine()
	second.SetQuantity("1")
	second.SetUnitRate("not-a-number")
	doc.Recompute()

	assert.InDelta(t, 0, doc.Lines[1].Amounts.LineTotal, 1e-9)
	// The healthy line is unaffected.
	assert.InDelta(t, 1180, doc.Lines[0].Amounts.LineTotal, 1e-9)
	assert.InDelta(t, 1180, doc.Totals.SubTotal, 1e-9)
}

func TestRecomputeIdempotent(t *testing.T) {
	doc := NewDocument(true, false)
	doc.Lines[0].SetQuantity("2")
	doc.Lines[0].SetUnitRate("500")
	doc.Lines[0].SetDiscountPercent("10")
	doc.Lines[0].SetTaxDescriptor("GST @ 18%")
	doc.Adjustments.AdditionalCharges = 50
	doc.Adjustments.OverallDiscount = 5
	doc.Adjustments.AutoRoundOff = true

	doc.Recompute()
	first := doc.Totals
	doc.Recompute()
	assert.Equal(t, first, doc.Totals)
	assert.InDelta(t, 1056, doc.Totals.RoundedTotal, 1e-9)
}
