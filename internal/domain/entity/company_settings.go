package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CompanySettings holds the company profile and document numbering defaults.
// A single row is seeded at startup and edited from the settings screen.
type CompanySettings struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Company profile, printed on voucher headers
	CompanyName string  `gorm:"size:255;default:''" json:"company_name"`
	Address     *string `gorm:"type:text" json:"address,omitempty"`
	Phone       *string `gorm:"size:50" json:"phone,omitempty"`
	Email       *string `gorm:"size:255" json:"email,omitempty"`
	GSTIN       *string `gorm:"size:50;column:gstin" json:"gstin,omitempty"`

	// Document numbering
	InvoicePrefix    string `gorm:"size:20;default:'PI-'" json:"invoice_prefix"`
	QuotationPrefix  string `gorm:"size:20;default:'QT-'" json:"quotation_prefix"`
	CreditNotePrefix string `gorm:"size:20;default:'CN-'" json:"credit_note_prefix"`
	ExpensePrefix    string `gorm:"size:20;default:'EXP-'" json:"expense_prefix"`

	// Defaults applied to new documents
	Currency            string `gorm:"size:10;default:'INR'" json:"currency"`
	AutoRoundOffDefault bool   `gorm:"default:true" json:"auto_round_off_default"`
}

// BeforeCreate generates a UUID before creating new settings
func (s *CompanySettings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the CompanySettings model
func (CompanySettings) TableName() string {
	return "company_settings"
}
