package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kiranps/tradebooks-api/internal/domain/enum"
)

// Payment represents a settlement recorded against a purchase invoice
type Payment struct {
	ID          uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceID   uuid.UUID        `gorm:"type:uuid;not null;index" json:"invoice_id"`
	UserID      uuid.UUID        `gorm:"type:uuid;not null;index" json:"user_id"`
	Date        time.Time        `gorm:"type:date;not null" json:"date"`
	Amount      float64          `gorm:"type:decimal(15,2);not null" json:"amount"`
	Mode        enum.PaymentMode `gorm:"size:50;default:'cash'" json:"mode"`
	ReferenceNo *string          `gorm:"size:100" json:"reference_no,omitempty"`
	Note        *string          `gorm:"type:text" json:"note,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
	DeletedAt   gorm.DeletedAt   `gorm:"index" json:"-"`

	// Relationships
	Invoice PurchaseInvoice `gorm:"foreignKey:InvoiceID" json:"-"`
	User    User            `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new payment
func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Payment model
func (Payment) TableName() string {
	return "payments"
}
