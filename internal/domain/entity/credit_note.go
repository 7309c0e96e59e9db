package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kiranps/tradebooks-api/internal/domain/enum"
)

// CreditNote represents a credit issued to a customer, typically for returns.
// Credit notes carry no tax: their lines run through the shared engine with
// the rate forced to zero, and negative quantities/rates are allowed.
type CreditNote struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	BranchID     *uuid.UUID `gorm:"type:uuid;index" json:"branch_id,omitempty"`
	UserID       uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	CustomerID   *uuid.UUID `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	Date         time.Time  `gorm:"type:date;not null" json:"date"`
	NoteNo       string     `gorm:"size:100;unique;not null" json:"note_no"`
	CustomerName string     `gorm:"size:255" json:"customer_name"`
	Reason       *string    `gorm:"type:text" json:"reason,omitempty"`

	SubTotal          float64           `gorm:"type:decimal(15,2);default:0" json:"sub_total"`
	AdditionalCharges float64           `gorm:"type:decimal(15,2);default:0" json:"additional_charges"`
	OverallDiscount   float64           `gorm:"type:decimal(15,2);default:0" json:"overall_discount"`
	DiscountType      enum.DiscountType `gorm:"default:0" json:"discount_type"`
	DiscountValue     float64           `gorm:"type:decimal(15,2);default:0" json:"discount_value"`
	TotalBeforeRound  float64           `gorm:"type:decimal(15,2);default:0" json:"total_before_round"`
	AutoRoundOff      bool              `gorm:"default:false" json:"auto_round_off"`
	RoundedTotal      float64           `gorm:"type:decimal(15,2);default:0" json:"rounded_total"`
	RoundOffDelta     float64           `gorm:"type:decimal(15,2);default:0" json:"round_off_delta"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	User     User             `gorm:"foreignKey:UserID" json:"-"`
	Branch   *Branch          `gorm:"foreignKey:BranchID" json:"branch,omitempty"`
	Customer *Customer        `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Lines    []CreditNoteLine `gorm:"foreignKey:CreditNoteID" json:"lines,omitempty"`
}

// BeforeCreate generates a UUID before creating a new credit note
func (n *CreditNote) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the CreditNote model
func (CreditNote) TableName() string {
	return "credit_notes"
}

// CreditNoteLine represents one row of a credit note
type CreditNoteLine struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	CreditNoteID uuid.UUID  `gorm:"type:uuid;not null;index" json:"credit_note_id"`
	ItemID       *uuid.UUID `gorm:"type:uuid;index" json:"item_id,omitempty"`

	ItemName        string  `gorm:"size:255" json:"item_name"`
	HSN             string  `gorm:"size:50;column:hsn" json:"hsn"`
	Unit            string  `gorm:"size:50" json:"unit"`
	Quantity        float64 `gorm:"type:decimal(15,3);default:0" json:"quantity"`
	UnitRate        float64 `gorm:"type:decimal(15,2);default:0" json:"unit_rate"`
	DiscountPercent float64 `gorm:"type:decimal(5,2);default:0" json:"discount_percent"`
	LineTotal       float64 `gorm:"type:decimal(15,2);default:0" json:"line_total"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	CreditNote CreditNote `gorm:"foreignKey:CreditNoteID" json:"-"`
	Item       *Item      `gorm:"foreignKey:ItemID" json:"item,omitempty"`
}

// BeforeCreate generates a UUID before creating a new credit note line
func (l *CreditNoteLine) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the CreditNoteLine model
func (CreditNoteLine) TableName() string {
	return "credit_note_lines"
}
