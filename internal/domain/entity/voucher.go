package entity

// VoucherHeader holds the company/branch header printed at the top of a voucher.
type VoucherHeader struct {
	CompanyName string `json:"company_name"`
	Address     string `json:"address,omitempty"`
	Phone       string `json:"phone,omitempty"`
	GSTIN       string `json:"gstin,omitempty"`
}

// VoucherLine represents a single line item on a printed voucher.
type VoucherLine struct {
	Name            string  `json:"name"`
	HSN             string  `json:"hsn,omitempty"`
	Unit            string  `json:"unit,omitempty"`
	Quantity        float64 `json:"quantity"`
	UnitRate        float64 `json:"unit_rate"`
	DiscountPercent float64 `json:"discount_percent"`
	TaxPercent      float64 `json:"tax_percent"`
	LineTotal       float64 `json:"line_total"`
}

// Voucher is a value object representing a printable document voucher.
// It is not a database entity. It is composed from invoice/quotation data
// at print time; the print/PDF layout itself lives in the front end.
type Voucher struct {
	Header        VoucherHeader `json:"header"`
	Title         string        `json:"title"`
	DocumentNo    string        `json:"document_no"`
	Date          string        `json:"date"`
	PartyName     string        `json:"party_name,omitempty"`
	PartyGSTIN    string        `json:"party_gstin,omitempty"`
	Lines         []VoucherLine `json:"lines"`
	SubTotal      float64       `json:"sub_total"`
	DiscountValue float64       `json:"discount_value"`
	TotalTax      float64       `json:"total_tax"`
	RoundOffDelta float64       `json:"round_off_delta"`
	GrandTotal    float64       `json:"grand_total"`
	AmountPaid    float64       `json:"amount_paid,omitempty"`
	BalanceDue    float64       `json:"balance_due,omitempty"`
	AmountInWords string        `json:"amount_in_words"`
}
