package numwords

import (
	"math"
	"strings"
)

var ones = [...]string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var tens = [...]string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

// below100 spells 0-99; returns "" for 0 so callers can skip empty groups.
func below100(n int) string {
	if n < 20 {
		return ones[n]
	}
	if n%10 == 0 {
		return tens[n/10]
	}
	return tens[n/10] + " " + ones[n%10]
}

func below1000(n int) string {
	if n < 100 {
		return below100(n)
	}
	s := ones[n/100] + " Hundred"
	if n%100 != 0 {
		s += " " + below100(n%100)
	}
	return s
}

// inWords spells a non-negative integer using the Indian grouping
// (thousand, lakh, crore).
func inWords(n int64) string {
	if n == 0 {
		return "Zero"
	}

	var parts []string
	appendGroup := func(v int64, label string) {
		if v == 0 {
			return
		}
		s := below1000(int(v))
		if label != "" {
			s += " " + label
		}
		parts = append(parts, s)
	}

	appendGroup(n/10000000, "Crore")
	appendGroup((n/100000)%100, "Lakh")
	appendGroup((n/1000)%100, "Thousand")
	appendGroup(n%1000, "")

	return strings.Join(parts, " ")
}

// AmountInWords renders a currency amount the way printed vouchers show it,
// e.g. 1056.40 -> "Rupees One Thousand Fifty Six and Forty Paise Only".
// Negative amounts are spelled with a "Minus" prefix.
func AmountInWords(amount float64) string {
	prefix := ""
	if amount < 0 {
		prefix = "Minus "
		amount = -amount
	}

	// Work in paise to avoid drift on the fractional part.
	paiseTotal := int64(math.Round(amount * 100))
	rupees := paiseTotal / 100
	paise := paiseTotal % 100

	s := prefix + "Rupees " + inWords(rupees)
	if paise > 0 {
		s += " and " + below100(int(paise)) + " Paise"
	}
	return s + " Only"
}
