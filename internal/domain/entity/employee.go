package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Employee represents an employee record
type Employee struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	BranchID    *uuid.UUID     `gorm:"type:uuid;index" json:"branch_id,omitempty"`
	Name        string         `gorm:"size:255;not null" json:"name"`
	Designation *string        `gorm:"size:255" json:"designation,omitempty"`
	Phone       *string        `gorm:"size:50" json:"phone,omitempty"`
	Email       *string        `gorm:"size:255" json:"email,omitempty"`
	Address     *string        `gorm:"type:text" json:"address,omitempty"`
	JoiningDate *time.Time     `gorm:"type:date" json:"joining_date,omitempty"`
	Salary      float64        `gorm:"type:decimal(15,2);default:0" json:"salary"`
	Active      bool           `gorm:"default:true" json:"active"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Branch *Branch `gorm:"foreignKey:BranchID" json:"branch,omitempty"`
}

// BeforeCreate generates a UUID before creating a new employee
func (e *Employee) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Employee model
func (Employee) TableName() string {
	return "employees"
}
