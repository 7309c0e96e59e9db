package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/kiranps/tradebooks-api/internal/domain/entity"
	"github.com/kiranps/tradebooks-api/pkg/pagination"
)

// BranchRepository defines the interface for branch data operations
type BranchRepository interface {
	// Create creates a new branch
	Create(ctx context.Context, branch *entity.Branch) error

	// GetByID retrieves a branch by ID
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Branch, error)

	// GetByCode retrieves a branch by its short code
	GetByCode(ctx context.Context, code string) (*entity.Branch, error)

	// Update updates an existing branch
	Update(ctx context.Context, branch *entity.Branch) error

	// Delete soft-deletes a branch
	Delete(ctx context.Context, id uuid.UUID) error

	// List retrieves branches with pagination
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Branch, int64, error)

	// CodeExists checks if a branch code is already taken
	CodeExists(ctx context.Context, code string) (bool, error)

	// Count returns the total number of branches
	Count(ctx context.Context) (int64, error)
}

// EmployeeRepository defines the interface for employee data operations
type EmployeeRepository interface {
	Create(ctx context.Context, employee *entity.Employee) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Employee, error)
	Update(ctx context.Context, employee *entity.Employee) error
	Delete(ctx context.Context, id uuid.UUID) error
	// List retrieves employees, optionally scoped to a branch
	List(ctx context.Context, params *EmployeeFilterParams) ([]entity.Employee, int64, error)
	// GetByBranch retrieves all active employees of a branch
	GetByBranch(ctx context.Context, branchID uuid.UUID) ([]entity.Employee, error)
}

// EmployeeFilterParams contains filtering parameters for employee queries
type EmployeeFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	BranchID   *uuid.UUID
	ActiveOnly bool
	SortBy     string
	SortOrder  string
}
