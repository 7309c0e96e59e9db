package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kiranps/tradebooks-api/internal/domain/enum"
)

// PurchaseInvoice represents an inbound invoice from a supplier. The money
// columns mirror the aggregator's output so printed vouchers and reports can
// be served without recomputing.
type PurchaseInvoice struct {
	ID          uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	BranchID    *uuid.UUID         `gorm:"type:uuid;index" json:"branch_id,omitempty"`
	UserID      uuid.UUID          `gorm:"type:uuid;not null;index" json:"user_id"`
	SupplierID  *uuid.UUID         `gorm:"type:uuid;index" json:"supplier_id,omitempty"`
	CreatedByID *uuid.UUID         `gorm:"type:uuid;column:created_by" json:"created_by,omitempty"`
	Date        time.Time          `gorm:"type:date;not null" json:"date"`
	InvoiceNo   string             `gorm:"size:100;unique;not null" json:"invoice_no"`
	Status      enum.InvoiceStatus `gorm:"default:0" json:"status"`

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
	AmountPaid        float64           `gorm:"type:decimal(15,2);default:0" json:"amount_paid"`
	BalanceDue        float64           `gorm:"type:decimal(15,2);default:0" json:"balance_due"`

	Note      *string        `gorm:"type:text" json:"note,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	User     User                  `gorm:"foreignKey:UserID" json:"-"`
	Branch   *Branch               `gorm:"foreignKey:BranchID" json:"branch,omitempty"`
	Supplier *Supplier             `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
	Lines    []PurchaseInvoiceLine `gorm:"foreignKey:InvoiceID" json:"lines,omitempty"`
	Payments []Payment             `gorm:"foreignKey:InvoiceID" json:"payments,omitempty"`
}

// BeforeCreate generates a UUID before creating a new purchase invoice
func (p *PurchaseInvoice) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PurchaseInvoice model
func (PurchaseInvoice) TableName() string {
	return "purchase_invoices"
}

// PurchaseInvoiceLine represents one row of a purchase invoice
type PurchaseInvoiceLine struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceID uuid.UUID  `gorm:"type:uuid;not null;index" json:"invoice_id"`
	ItemID    *uuid.UUID `gorm:"type:uuid;index" json:"item_id,omitempty"`

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
	Invoice PurchaseInvoice `gorm:"foreignKey:InvoiceID" json:"-"`
	Item    *Item           `gorm:"foreignKey:ItemID" json:"item,omitempty"`
}

// BeforeCreate generates a UUID before creating a new purchase invoice line
func (l *PurchaseInvoiceLine) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PurchaseInvoiceLine model
func (PurchaseInvoiceLine) TableName() string {
	return "purchase_invoice_lines"
}
