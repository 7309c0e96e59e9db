package finance

import (
	"regexp"
	"strconv"
	"strings"
)

// taxRatePattern matches a number immediately preceded by "@" or immediately
// followed by "%". The single left-to-right scan means "GST @ 18%" matches
// once via the "@" branch rather than double-counting.
var taxRatePattern = regexp.MustCompile(`@\s*(\d+(?:\.\d+)?)|(\d+(?:\.\d+)?)\s*%`)

// ParseTaxPercent resolves a free-form tax rate label into an effective
// percentage. Composite labels such as "GST @ 28% + Cess @ 5%" sum to the
// combined rate; CGST/SGST splitting is a print-time concern, not handled
// here. Unparseable input yields 0, never an error.
func ParseTaxPercent(descriptor string) float64 {
	label := strings.TrimSpace(descriptor)
	if label == "" || label == "None" || label == "Exempted" {
		return 0
	}

	var total float64
	for _, m := range taxRatePattern.FindAllStringSubmatch(label, -1) {
		num := m[1]
		if num == "" {
			num = m[2]
		}
		v, err := strconv.ParseFloat(num, 64)
		if err != nil {
			continue
		}
		total += v
	}
	return total
}
