package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeLine(t *testing.T) {
	tests := []struct {
		name        string
		qty         float64
		rate        float64
		discount    float64
		tax         float64
		wantTaxable float64
		wantTax     float64
		wantTotal   float64
	}{
		{"plain", 2, 500, 0, 0, 1000, 0, 1000},
		{"discount then tax", 2, 500, 10, 18, 900, 162, 1062},
		{"zero quantity", 0, 500, 10, 18, 0, 0, 0},
		{"zero rate", 3, 0, 5, 18, 0, 0, 0},
		{"full discount", 1, 100, 100, 18, 0, 0, 0},
		{"negative quantity passes through", -2, 500, 10, 18, -900, -162, -1062},
		{"discount above 100 not clamped", 1, 100, 150, 0, -50, 0, -50},
		{"fractional tax", 1, 1000, 0, 0.25, 1000, 2.5, 1002.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeLine(tt.qty, tt.rate, tt.discount, tt.tax)
			assert.InDelta(t, tt.wantTaxable, got.TaxableAmount, 1e-9)
			assert.InDelta(t, tt.wantTax, got.TaxAmount, 1e-9)
			assert.InDelta(t, tt.wantTotal, got.LineTotal, 1e-9)
		})
	}
}

// The discount must apply before tax: (q*r*(1-d/100))*(1+t/100).
func TestComputeLineOrder(t *testing.T) {
	got := ComputeLine(4, 250, 20, 12)
	want := (4 * 250 * (1 - 20.0/100)) * (1 + 12.0/100)
	assert.InDelta(t, want, got.LineTotal, 1e-9)
}
