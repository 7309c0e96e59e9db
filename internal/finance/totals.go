package finance

import (
	"github.com/kiranps/tradebooks-api/internal/domain/enum"
)

// Adjustments are the document-header values applied on top of line totals.
type Adjustments struct {
	AdditionalCharges float64           `json:"additional_charges"`
	OverallDiscount   float64           `json:"overall_discount"`
	DiscountType      enum.DiscountType `json:"discount_type"`
	AutoRoundOff      bool              `json:"auto_round_off"`
	AmountPaid        float64           `json:"amount_paid"`
}

// AdjustmentsFromForm builds Adjustments from raw form input. Non-numeric
// values degrade to zero, matching the line-level policy.
func AdjustmentsFromForm(additionalCharges, overallDiscount, amountPaid string, discountType enum.DiscountType, autoRoundOff bool) Adjustments {
	return Adjustments{
		AdditionalCharges: ParseAmount(additionalCharges),
		OverallDiscount:   ParseAmount(overallDiscount),
		DiscountType:      discountType,
		AutoRoundOff:      autoRoundOff,
		AmountPaid:        ParseAmount(amountPaid),
	}
}

// Totals is the aggregate money summary of a document.
type Totals struct {
	SubTotal         float64 `json:"sub_total"`
	TaxableValue     float64 `json:"taxable_value"`
	DiscountValue    float64 `json:"discount_value"`
	TotalTax         float64 `json:"total_tax"`
	TotalBeforeRound float64 `json:"total_before_round"`
	RoundedTotal     float64 `json:"rounded_total"`
	RoundOffDelta    float64 `json:"round_off_delta"`
	BalanceDue       float64 `json:"balance_due"`
}

// ComputeTotals folds computed lines plus header adjustments into document
// totals. It never fails: an empty line list returns all-zero totals.
//
// The round-off delta is retained rather than discarded because it is shown
// to the user and persisted for reconciliation on some document types.
func ComputeTotals(lines []LineItem, adj Adjustments) Totals {
	var subTotal, totalTax float64
	for i := range lines {
		subTotal += lines[i].Amounts.LineTotal
		totalTax += lines[i].Amounts.TaxAmount
	}

	taxableValue := subTotal + adj.AdditionalCharges

	var discountValue float64
	if adj.DiscountType == enum.DiscountTypeFixed {
		discountValue = adj.OverallDiscount
	} else {
		discountValue = taxableValue * adj.OverallDiscount / 100
	}

	totalBeforeRound := taxableValue - discountValue

	roundedTotal := totalBeforeRound
	if adj.AutoRoundOff {
		roundedTotal = RoundHalfUp(totalBeforeRound)
	}

	return Totals{
		SubTotal:         subTotal,
		TaxableValue:     taxableValue,
		DiscountValue:    discountValue,
		TotalTax:         totalTax,
		TotalBeforeRound: totalBeforeRound,
		RoundedTotal:     roundedTotal,
		RoundOffDelta:    roundedTotal - totalBeforeRound,
		BalanceDue:       roundedTotal - adj.AmountPaid,
	}
}
