package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kiranps/tradebooks-api/internal/finance"
)

// Item represents one row of the item catalog. Prices are stored as decimal
// currency values; the tax rate is kept as the free-form descriptor the
// business uses on its rate cards (e.g. "GST @ 18%").
type Item struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	UserID        uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Name          string         `gorm:"size:255;not null" json:"name"`
	Code          string         `gorm:"size:100;unique;not null" json:"code"`
	HSN           *string        `gorm:"size:50;column:hsn" json:"hsn,omitempty"`
	Unit          string         `gorm:"size:50;default:'Pcs'" json:"unit"`
	PurchasePrice float64        `gorm:"type:decimal(15,2);default:0" json:"purchase_price"`
	SellingPrice  float64        `gorm:"type:decimal(15,2);default:0" json:"selling_price"`
	TaxDescriptor string         `gorm:"size:100;default:'None'" json:"tax_descriptor"`
	Notes         *string        `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new item
func (i *Item) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Item model
func (Item) TableName() string {
	return "items"
}

// TaxPercent resolves the stored descriptor to an effective rate
func (i *Item) TaxPercent() float64 {
	return finance.ParseTaxPercent(i.TaxDescriptor)
}

// Catalog returns the view of the item the document engine consumes when a
// line is populated from the catalog.
func (i *Item) Catalog() finance.CatalogItem {
	hsn := ""
	if i.HSN != nil {
		hsn = *i.HSN
	}
	return finance.CatalogItem{
		Name:          i.Name,
		HSN:           hsn,
		Unit:          i.Unit,
		PurchasePrice: i.PurchasePrice,
		SellingPrice:  i.SellingPrice,
		TaxDescriptor: i.TaxDescriptor,
	}
}
