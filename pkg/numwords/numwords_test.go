package numwords

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAmountInWords(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "Rupees Zero Only"},
		{1, "Rupees One Only"},
		{21, "Rupees Twenty One Only"},
		{100, "Rupees One Hundred Only"},
		{118, "Rupees One Hundred Eighteen Only"},
		{1056, "Rupees One Thousand Fifty Six Only"},
		{1056.40, "Rupees One Thousand Fifty Six and Forty Paise Only"},
		{100000, "Rupees One Lakh Only"},
		{2550000, "Rupees Twenty Five Lakh Fifty Thousand Only"},
		{10000000, "Rupees One Crore Only"},
		{12345678.90, "Rupees One Crore Twenty Three Lakh Forty Five Thousand Six Hundred Seventy Eight and Ninety Paise Only"},
		{0.05, "Rupees Zero and Five Paise Only"},
		{-250, "Minus Rupees Two Hundred Fifty Only"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, AmountInWords(tt.amount), "amount %v", tt.amount)
	}
}
