package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/kiranps/tradebooks-api/internal/domain/repository"
	"github.com/kiranps/tradebooks-api/internal/finance"
)

// DocumentLineInput is one line row as it arrives from the client. Numeric
// fields are raw strings; the engine degrades malformed values to zero
// instead of rejecting the document.
type DocumentLineInput struct {
	ItemID          *uuid.UUID
	ItemName        string
	HSN             string
	Unit            string
	Quantity        string
	UnitRate        string
	DiscountPercent string
	TaxDescriptor   string
}

// buildDocument assembles a finance.Document from raw line inputs. Lines
// carrying an ItemID are first populated from the catalog, then any
// explicitly supplied fields override the catalog values. An empty input
// slice yields the engine's default single-line document.
func buildDocument(
	ctx context.Context,
	itemRepo repository.ItemRepository,
	taxEnabled, inbound bool,
	lines []DocumentLineInput,
	adj finance.Adjustments,
) (*finance.Document, error) {
	doc := finance.NewDocument(taxEnabled, inbound)
	doc.Adjustments = adj

	for i, in := range lines {
		var line *finance.LineItem
		if i == 0 {
			line = &doc.Lines[0]
		} else {
			line = doc.AddLine()
		}

		if in.ItemID != nil && itemRepo != nil {
			item, err := itemRepo.GetByID(ctx, *in.ItemID)
			if err != nil {
				return nil, err
			}
			if item != nil {
				doc.ApplyCatalogItem(i, item.Catalog())
				line = &doc.Lines[i]
			}
		}

		if in.ItemName != "" {
			line.ItemName = in.ItemName
		}
		if in.HSN != "" {
			line.HSN = in.HSN
		}
		if in.Unit != "" {
			line.Unit = in.Unit
		}
		// Bound DTOs cannot distinguish an omitted numeric field from an
		// explicit empty string, so "" means absent here and the default or
		// catalog-seeded value stands. Present-but-garbage input still
		// degrades to zero inside the setters.
		if in.Quantity != "" {
			line.SetQuantity(in.Quantity)
		}
		if in.UnitRate != "" {
			line.SetUnitRate(in.UnitRate)
		}
		if in.DiscountPercent != "" {
			line.SetDiscountPercent(in.DiscountPercent)
		}
		if in.TaxDescriptor != "" {
			line.SetTaxDescriptor(in.TaxDescriptor)
		}
	}

	doc.Recompute()
	return doc, nil
}
