package request

import "github.com/google/uuid"

// CreateUserRequest represents a user creation request
type CreateUserRequest struct {
	FirstName string     `json:"first_name" binding:"required,min=2,max=255"`
	LastName  string     `json:"last_name" binding:"required,min=2,max=255"`
	Email     string     `json:"email" binding:"required,email"`
	Password  string     `json:"password" binding:"required,min=8"`
	Role      string     `json:"role" binding:"omitempty,oneof=admin staff"`
	BranchID  *uuid.UUID `json:"branch_id"`
}

// UpdateUserRequest represents a user update request
type UpdateUserRequest struct {
	FirstName *string    `json:"first_name" binding:"omitempty,min=2,max=255"`
	LastName  *string    `json:"last_name" binding:"omitempty,min=2,max=255"`
	Role      *string    `json:"role" binding:"omitempty,oneof=admin staff"`
	BranchID  *uuid.UUID `json:"branch_id"`
}
