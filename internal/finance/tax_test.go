package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTaxPercent(t *testing.T) {
	tests := []struct {
		name       string
		descriptor string
		want       float64
	}{
		{"none", "None", 0},
		{"exempted", "Exempted", 0},
		{"empty", "", 0},
		{"simple gst", "GST @ 18%", 18},
		{"composite", "GST @ 28% + Cess @ 5%", 33},
		{"percent only", "18%", 18},
		{"at only", "IGST @ 12", 12},
		{"fractional", "GST @ 0.25%", 0.25},
		{"no space after at", "GST @5%", 5},
		{"garbage", "garbage", 0},
		{"number without marker", "GST 18", 0},
		{"whitespace", "  GST @ 18%  ", 18},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseTaxPercent(tt.descriptor))
		})
	}
}

func TestParseTaxPercentNeverPanics(t *testing.T) {
	inputs := []string{"@", "%", "@%", "@@@", "% % %", "18", "@ + %", "GST @ % + 18"}
	for _, in := range inputs {
		assert.NotPanics(t, func() { ParseTaxPercent(in) }, "input %q", in)
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"12.5", 12.5},
		{" 12.5 ", 12.5},
		{"-3", -3},
		{"", 0},
		{"abc", 0},
		{"12a", 0},
		{"NaN", 0},
		{"Inf", 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseAmount(tt.in), "input %q", tt.in)
	}
}
