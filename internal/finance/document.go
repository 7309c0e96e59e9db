package finance

import (
	"github.com/kiranps/tradebooks-api/internal/domain/enum"
)

// LineItem is one editable row of a document. The Amounts field caches the
// last computed result for the row; Recompute refreshes it.
type LineItem struct {
	ItemName        string      `json:"item_name"`
	HSN             string      `json:"hsn"`
	Unit            string      `json:"unit"`
	Quantity        float64     `json:"quantity"`
	UnitRate        float64     `json:"unit_rate"`
	DiscountPercent float64     `json:"discount_percent"`
	TaxDescriptor   string      `json:"tax_descriptor"`
	TaxPercent      float64     `json:"tax_percent"`
	Amounts         LineAmounts `json:"amounts"`
}

// SetQuantity updates quantity from raw form input. Non-numeric input zeroes
// the field; the rest of the document is unaffected.
func (l *LineItem) SetQuantity(raw string) {
	l.Quantity = ParseAmount(raw)
}

// SetUnitRate updates the unit rate from raw form input.
func (l *LineItem) SetUnitRate(raw string) {
	l.UnitRate = ParseAmount(raw)
}

// SetDiscountPercent updates the line discount from raw form input. The value
// is not clamped to [0,100]; negative adjustments depend on that.
func (l *LineItem) SetDiscountPercent(raw string) {
	l.DiscountPercent = ParseAmount(raw)
}

// SetTaxDescriptor stores the label and resolves its effective percentage.
func (l *LineItem) SetTaxDescriptor(descriptor string) {
	l.TaxDescriptor = descriptor
	l.TaxPercent = ParseTaxPercent(descriptor)
}

// CatalogItem is the view of an item-master row the engine needs when a line
// is populated from the catalog.
type CatalogItem struct {
	Name          string
	HSN           string
	Unit          string
	PurchasePrice float64
	SellingPrice  float64
	TaxDescriptor string
}

// Document is an in-memory document under edit: lines plus header
// adjustments, with totals re-derived on demand. Recompute is a pure
// function of the current inputs; there is no hidden state, so calling it
// twice in a row yields identical totals.
type Document struct {
	// TaxEnabled is false for document types without GST handling (credit
	// notes); their lines run through the same engine with tax forced to 0.
	TaxEnabled bool `json:"tax_enabled"`
	// Inbound documents price catalog lines at purchase cost, outbound ones
	// at selling price.
	Inbound     bool        `json:"inbound"`
	Lines       []LineItem  `json:"lines"`
	Adjustments Adjustments `json:"adjustments"`
	Totals      Totals      `json:"totals"`
}

// NewDocument returns a document seeded with the single default line every
// document starts with.
func NewDocument(taxEnabled, inbound bool) *Document {
	d := &Document{
		TaxEnabled: taxEnabled,
		Inbound:    inbound,
		Adjustments: Adjustments{
			// New documents discount by percentage; edits keep whatever
			// type was persisted.
			DiscountType: enum.DiscountTypePercentage,
		},
		Lines: []LineItem{defaultLine()},
	}
	d.Recompute()
	return d
}

func defaultLine() LineItem {
	return LineItem{
		Quantity:      1,
		TaxDescriptor: "None",
	}
}

// AddLine appends a default row and returns a pointer to it.
func (d *Document) AddLine() *LineItem {
	d.Lines = append(d.Lines, defaultLine())
	return &d.Lines[len(d.Lines)-1]
}

// RemoveLine drops the row at index. Removing the last remaining line is a
// no-op: a document always retains at least one line.
func (d *Document) RemoveLine(index int) bool {
	if index < 0 || index >= len(d.Lines) || len(d.Lines) <= 1 {
		return false
	}
	d.Lines = append(d.Lines[:index], d.Lines[index+1:]...)
	return true
}

// ApplyCatalogItem overwrites the row's name, HSN, unit, rate and tax
// atomically from the catalog, keeping the row's current quantity.
func (d *Document) ApplyCatalogItem(index int, item CatalogItem) {
	if index < 0 || index >= len(d.Lines) {
		return
	}
	line := &d.Lines[index]
	line.ItemName = item.Name
	line.HSN = item.HSN
	line.Unit = item.Unit
	if d.Inbound {
		line.UnitRate = item.PurchasePrice
	} else {
		line.UnitRate = item.SellingPrice
	}
	line.SetTaxDescriptor(item.TaxDescriptor)
	d.Recompute()
}

// Recompute re-runs the line engine over every row and re-derives the
// document totals. Callers invoke it after each mutation; there is no
// implicit observation of edits.
func (d *Document) Recompute() {
	for i := range d.Lines {
		line := &d.Lines[i]
		taxPercent := line.TaxPercent
		if !d.TaxEnabled {
			taxPercent = 0
		}
		line.Amounts = ComputeLine(line.Quantity, line.UnitRate, line.DiscountPercent, taxPercent)
	}
	d.Totals = ComputeTotals(d.Lines, d.Adjustments)
}
