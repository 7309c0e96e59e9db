package finance

// LineAmounts holds the computed money fields of a single document line.
type LineAmounts struct {
	TaxableAmount float64 `json:"taxable_amount"`
	TaxAmount     float64 `json:"tax_amount"`
	LineTotal     float64 `json:"line_total"`
}

// ComputeLine derives a line's taxable amount, tax amount and total from its
// raw inputs. The order is fixed: the discount applies to quantity times
// rate, tax applies to the discounted base. Document totals depend on this
// order, so it must not be rearranged.
//
// Negative quantities and rates propagate through the same formula; credit
// notes and returns rely on that.
func ComputeLine(quantity, unitRate, discountPercent, taxPercent float64) LineAmounts {
	base := quantity * unitRate
	discount := base * discountPercent / 100
	taxable := base - discount
	tax := taxable * taxPercent / 100

	return LineAmounts{
		TaxableAmount: taxable,
		TaxAmount:     tax,
		LineTotal:     taxable + tax,
	}
}
