package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kiranps/tradebooks-api/internal/domain/enum"
)

// ExpenseVoucher represents a payment voucher for day-to-day expenses. Lines
// are plain description/amount pairs; totals still run through the shared
// aggregator (quantity 1, no discount, no tax).
type ExpenseVoucher struct {
	ID          uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	BranchID    *uuid.UUID       `gorm:"type:uuid;index" json:"branch_id,omitempty"`
	UserID      uuid.UUID        `gorm:"type:uuid;not null;index" json:"user_id"`
	Date        time.Time        `gorm:"type:date;not null" json:"date"`
	VoucherNo   string           `gorm:"size:100;unique;not null" json:"voucher_no"`
	PaidTo      string           `gorm:"size:255" json:"paid_to"`
	PaymentMode enum.PaymentMode `gorm:"size:50;default:'cash'" json:"payment_mode"`

	SubTotal      float64 `gorm:"type:decimal(15,2);default:0" json:"sub_total"`
	AutoRoundOff  bool    `gorm:"default:false" json:"auto_round_off"`
	RoundedTotal  float64 `gorm:"type:decimal(15,2);default:0" json:"rounded_total"`
	RoundOffDelta float64 `gorm:"type:decimal(15,2);default:0" json:"round_off_delta"`
	AmountPaid    float64 `gorm:"type:decimal(15,2);default:0" json:"amount_paid"`
	BalanceDue    float64 `gorm:"type:decimal(15,2);default:0" json:"balance_due"`

	Note      *string        `gorm:"type:text" json:"note,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	User   User          `gorm:"foreignKey:UserID" json:"-"`
	Branch *Branch       `gorm:"foreignKey:BranchID" json:"branch,omitempty"`
	Lines  []ExpenseLine `gorm:"foreignKey:VoucherID" json:"lines,omitempty"`
}

// BeforeCreate generates a UUID before creating a new expense voucher
func (v *ExpenseVoucher) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ExpenseVoucher model
func (ExpenseVoucher) TableName() string {
	return "expense_vouchers"
}

// ExpenseLine represents one row of an expense voucher
type ExpenseLine struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	VoucherID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"voucher_id"`
	Description string         `gorm:"size:255;not null" json:"description"`
	Amount      float64        `gorm:"type:decimal(15,2);default:0" json:"amount"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Voucher ExpenseVoucher `gorm:"foreignKey:VoucherID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new expense line
func (l *ExpenseLine) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ExpenseLine model
func (ExpenseLine) TableName() string {
	return "expense_lines"
}
