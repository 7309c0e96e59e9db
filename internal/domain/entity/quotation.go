package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kiranps/tradebooks-api/internal/domain/enum"
)

// Quotation represents a price quotation for a customer. Quotations carry the
// same money columns as invoices but track no settlement.
type Quotation struct {
	ID           uuid.UUID            `gorm:"type:uuid;primary_key" json:"id"`
	BranchID     *uuid.UUID           `gorm:"type:uuid;index" json:"branch_id,omitempty"`
	UserID       uuid.UUID            `gorm:"type:uuid;not null;index" json:"user_id"`
	CustomerID   *uuid.UUID           `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	Date         time.Time            `gorm:"type:date;not null" json:"date"`
	Reference    string               `gorm:"size:100;unique;not null" json:"reference"`
	CustomerName string               `gorm:"size:255" json:"customer_name"`
	Status       enum.QuotationStatus `gorm:"default:0" json:"status"`

	SubTotal          float64           `gorm:"type:decimal(15,2);default:0" json:"sub_total"`
	AdditionalCharges float64           `gorm:"type:decimal(15,2);default:0" json:"additional_charges"`
	OverallDiscount   float64           `gorm:"type:decimal(15,2);default:0" json:"overall_discount"`
	DiscountType      enum.DiscountType `gorm:"default:0" json:"discount_type"`
	DiscountValue     float64           `gorm:"type:decimal(15,2);default:0" json:"discount_value"`
	TotalTax          float64           `gorm:"type:decimal(15,2);default:0" json:"total_tax"`
	TotalBeforeRound  float64           `gorm:"type:decimal(15,2);default:0" json:"total_before_round"`
	AutoRoundOff      bool              `gorm:"default:false" json:"auto_round_off"`
	RoundedTotal      float64           `gorm:"type:decimal(15,2);default:0" json:"rounded_total"`
	RoundOffDelta     float64           `gorm:"type:decimal(15,2);default:0" json:"round_off_delta"`

	Note      *string        `gorm:"type:text" json:"note,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	User     User            `gorm:"foreignKey:UserID" json:"-"`
	Branch   *Branch         `gorm:"foreignKey:BranchID" json:"branch,omitempty"`
	Customer *Customer       `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Lines    []QuotationLine `gorm:"foreignKey:QuotationID" json:"lines,omitempty"`
}

// BeforeCreate generates a UUID before creating a new quotation
func (q *Quotation) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Quotation model
func (Quotation) TableName() string {
	return "quotations"
}

// QuotationLine represents one row of a quotation
type QuotationLine struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	QuotationID uuid.UUID  `gorm:"type:uuid;not null;index" json:"quotation_id"`
	ItemID      *uuid.UUID `gorm:"type:uuid;index" json:"item_id,omitempty"`

	ItemName        string  `gorm:"size:255" json:"item_name"`
	HSN             string  `gorm:"size:50;column:hsn" json:"hsn"`
	Unit            string  `gorm:"size:50" json:"unit"`
	Quantity        float64 `gorm:"type:decimal(15,3);default:0" json:"quantity"`
	UnitRate        float64 `gorm:"type:decimal(15,2);default:0" json:"unit_rate"`
	DiscountPercent float64 `gorm:"type:decimal(5,2);default:0" json:"discount_percent"`
	TaxDescriptor   string  `gorm:"size:100;default:'None'" json:"tax_descriptor"`
	TaxPercent      float64 `gorm:"type:decimal(5,2);default:0" json:"tax_percent"`
	TaxableAmount   float64 `gorm:"type:decimal(15,2);default:0" json:"taxable_amount"`
	TaxAmount       float64 `gorm:"type:decimal(15,2);default:0" json:"tax_amount"`
	LineTotal       float64 `gorm:"type:decimal(15,2);default:0" json:"line_total"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Quotation Quotation `gorm:"foreignKey:QuotationID" json:"-"`
	Item      *Item     `gorm:"foreignKey:ItemID" json:"item,omitempty"`
}

// BeforeCreate generates a UUID before creating a new quotation line
func (l *QuotationLine) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the QuotationLine model
func (QuotationLine) TableName() string {
	return "quotation_lines"
}
