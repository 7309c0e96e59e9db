package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiranps/tradebooks-api/internal/domain/enum"
)

func lineWith(qty, rate, discount, tax float64) LineItem {
	l := LineItem{Quantity: qty, UnitRate: rate, DiscountPercent: discount, TaxPercent: tax}
	l.Amounts = ComputeLine(qty, rate, discount, tax)
	return l
}

func TestComputeTotalsEndToEnd(t *testing.T) {
	// One line {qty:2, rate:500, discount:10, tax:"GST @ 18%"}.
	line := lineWith(2, 500, 10, ParseTaxPercent("GST @ 18%"))
	require.InDelta(t, 1062, line.Amounts.LineTotal, 1e-9)

	totals := ComputeTotals([]LineItem{line}, Adjustments{
		AdditionalCharges: 50,
		OverallDiscount:   5,
		DiscountType:      enum.DiscountTypePercentage,
		AutoRoundOff:      true,
		AmountPaid:        500,
	})

	assert.InDelta(t, 1062, totals.SubTotal, 1e-9)
	assert.InDelta(t, 1112, totals.TaxableValue, 1e-9)
	assert.InDelta(t, 55.6, totals.DiscountValue, 1e-9)
	assert.InDelta(t, 1056.4, totals.TotalBeforeRound, 1e-9)
	assert.InDelta(t, 1056, totals.RoundedTotal, 1e-9)
	assert.InDelta(t, -0.4, totals.RoundOffDelta, 1e-9)
	assert.InDelta(t, 162, totals.TotalTax, 1e-9)
	assert.InDelta(t, 556, totals.BalanceDue, 1e-9)
}

func TestComputeTotalsRoundingBoundary(t *testing.T) {
	line := lineWith(1, 100.40, 0, 0)

	rounded := ComputeTotals([]LineItem{line}, Adjustments{AutoRoundOff: true})
	assert.InDelta(t, 100, rounded.RoundedTotal, 1e-9)
	assert.InDelta(t, -0.40, rounded.RoundOffDelta, 1e-9)

	raw := ComputeTotals([]LineItem{line}, Adjustments{AutoRoundOff: false})
	assert.InDelta(t, 100.40, raw.RoundedTotal, 1e-9)
	assert.InDelta(t, 0, raw.RoundOffDelta, 1e-9)
}

func TestComputeTotalsDiscountTypeSwitch(t *testing.T) {
	line := lineWith(1, 1000, 0, 0)

	pct := ComputeTotals([]LineItem{line}, Adjustments{
		OverallDiscount: 10,
		DiscountType:    enum.DiscountTypePercentage,
	})
	assert.InDelta(t, 100, pct.DiscountValue, 1e-9)

	fixed := ComputeTotals([]LineItem{line}, Adjustments{
		OverallDiscount: 10,
		DiscountType:    enum.DiscountTypeFixed,
	})
	assert.InDelta(t, 10, fixed.DiscountValue, 1e-9)
}

func TestComputeTotalsIdempotent(t *testing.T) {
	lines := []LineItem{lineWith(2, 500, 10, 18), lineWith(1, 75.5, 0, 5)}
	adj := Adjustments{AdditionalCharges: 20, OverallDiscount: 3, AutoRoundOff: true, AmountPaid: 100}

	first := ComputeTotals(lines, adj)
	second := ComputeTotals(lines, adj)
	assert.Equal(t, first, second)
}

func TestComputeTotalsEmptyLines(t *testing.T) {
	totals := ComputeTotals(nil, Adjustments{})
	assert.Equal(t, Totals{}, totals)
}

func TestAdjustmentsFromForm(t *testing.T) {
	adj := AdjustmentsFromForm("50", "oops", "500", enum.DiscountTypePercentage, true)
	assert.InDelta(t, 50, adj.AdditionalCharges, 1e-9)
	assert.InDelta(t, 0, adj.OverallDiscount, 1e-9)
	assert.InDelta(t, 500, adj.AmountPaid, 1e-9)
	assert.True(t, adj.AutoRoundOff)
}
