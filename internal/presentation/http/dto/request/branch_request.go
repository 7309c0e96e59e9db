package request

import (
	"time"

	"github.com/google/uuid"
)

// CreateBranchRequest represents a branch creation request
type CreateBranchRequest struct {
	Name    string  `json:"name" binding:"required,min=2,max=255"`
	Code    string  `json:"code" binding:"omitempty,max=50"`
	Address *string `json:"address"`
	Phone   *string `json:"phone" binding:"omitempty,max=50"`
	GSTIN   *string `json:"gstin" binding:"omitempty,max=50"`
}

// UpdateBranchRequest represents a branch update request
type UpdateBranchRequest struct {
	Name    *string `json:"name" binding:"omitempty,min=2,max=255"`
	Address *string `json:"address"`
	Phone   *string `json:"phone" binding:"omitempty,max=50"`
	GSTIN   *string `json:"gstin" binding:"omitempty,max=50"`
}

// CreateEmployeeRequest represents an employee creation request
type CreateEmployeeRequest struct {
	Name        string     `json:"name" binding:"required,min=2,max=255"`
	BranchID    *uuid.UUID `json:"branch_id"`
	Designation *string    `json:"designation" binding:"omitempty,max=255"`
	Phone       *string    `json:"phone" binding:"omitempty,max=50"`
	Email       *string    `json:"email" binding:"omitempty,email"`
	Address     *string    `json:"address"`
	JoiningDate *time.Time `json:"joining_date"`
	Salary      string     `json:"salary"`
}

// UpdateEmployeeRequest represents an employee update request
type UpdateEmployeeRequest struct {
	Name        *string    `json:"name" binding:"omitempty,min=2,max=255"`
	BranchID    *uuid.UUID `json:"branch_id"`
	Designation *string    `json:"designation" binding:"omitempty,max=255"`
	Phone       *string    `json:"phone" binding:"omitempty,max=50"`
	Email       *string    `json:"email" binding:"omitempty,email"`
	Address     *string    `json:"address"`
	JoiningDate *time.Time `json:"joining_date"`
	Salary      *string    `json:"salary"`
	Active      *bool      `json:"active"`
}

// EmployeeFilterRequest represents employee filter parameters
type EmployeeFilterRequest struct {
	Search     string `form:"search"`
	BranchID   string `form:"branch_id"`
	ActiveOnly bool   `form:"active_only"`
	SortBy     string `form:"sort_by"`
	SortOrder  string `form:"sort_order"`
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
}
