package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kiranps/tradebooks-api/internal/domain/entity"
	"github.com/kiranps/tradebooks-api/internal/domain/repository"
	"github.com/kiranps/tradebooks-api/internal/finance"
	"github.com/kiranps/tradebooks-api/pkg/apperror"
	"github.com/kiranps/tradebooks-api/pkg/pagination"
	"github.com/kiranps/tradebooks-api/pkg/utils"
)

// BranchService handles branch management operations
type BranchService struct {
	branchRepo repository.BranchRepository
}

// NewBranchService creates a new branch service
func NewBranchService(branchRepo repository.BranchRepository) *BranchService {
	return &BranchService{branchRepo: branchRepo}
}

// CreateBranchInput represents the create branch input
type CreateBranchInput struct {
	Name    string
	Code    string
	Address *string
	Phone   *string
	GSTIN   *string
}

// CreateBranch creates a new branch
func (s *BranchService) CreateBranch(ctx context.Context, input *CreateBranchInput) (*entity.Branch, error) {
	code := input.Code
	if code == "" {
		code = utils.GenerateBranchCode()
	} else {
		exists, err := s.branchRepo.CodeExists(ctx, code)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, apperror.NewConflictError("Branch code already exists")
		}
	}

	branch := &entity.Branch{
		Name:    input.Name,
		Code:    code,
		Address: input.Address,
		Phone:   input.Phone,
		GSTIN:   input.GSTIN,
	}

	if err := s.branchRepo.Create(ctx, branch); err != nil {
		return nil, err
	}

	return branch, nil
}

// GetBranch returns a branch by ID
func (s *BranchService) GetBranch(ctx context.Context, id uuid.UUID) (*entity.Branch, error) {
	branch, err := s.branchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, apperror.NewNotFoundError("Branch")
	}
	return branch, nil
}

// ListBranches returns a paginated list of branches
func (s *BranchService) ListBranches(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Branch], error) {
	branches, total, err := s.branchRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(branches, pag), nil
}

// UpdateBranchInput represents the update branch input
type UpdateBranchInput struct {
	ID      uuid.UUID
	Name    *string
	Address *string
	Phone   *string
	GSTIN   *string
}

// UpdateBranch updates a branch. The branch code never changes.
func (s *BranchService) UpdateBranch(ctx context.Context, input *UpdateBranchInput) (*entity.Branch, error) {
	branch, err := s.branchRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, apperror.NewNotFoundError("Branch")
	}

	if input.Name != nil {
		branch.Name = *input.Name
	}
	if input.Address != nil {
		branch.Address = input.Address
	}
	if input.Phone != nil {
		branch.Phone = input.Phone
	}
	if input.GSTIN != nil {
		branch.GSTIN = input.GSTIN
	}

	if err := s.branchRepo.Update(ctx, branch); err != nil {
		return nil, err
	}

	return branch, nil
}

// DeleteBranch deletes a branch
func (s *BranchService) DeleteBranch(ctx context.Context, id uuid.UUID) error {
	branch, err := s.branchRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if branch == nil {
		return apperror.NewNotFoundError("Branch")
	}
	return s.branchRepo.Delete(ctx, id)
}

// EmployeeService handles employee management operations
type EmployeeService struct {
	employeeRepo repository.EmployeeRepository
	branchRepo   repository.BranchRepository
}

// NewEmployeeService creates a new employee service
func NewEmployeeService(employeeRepo repository.EmployeeRepository, branchRepo repository.BranchRepository) *EmployeeService {
	return &EmployeeService{
		employeeRepo: employeeRepo,
		branchRepo:   branchRepo,
	}
}

// CreateEmployeeInput represents the create employee input
type CreateEmployeeInput struct {
	Name        string
	BranchID    *uuid.UUID
	Designation *string
	Phone       *string
	Email       *string
	Address     *string
	JoiningDate *time.Time
	Salary      string
}

// CreateEmployee creates a new employee
func (s *EmployeeService) CreateEmployee(ctx context.Context, input *CreateEmployeeInput) (*entity.Employee, error) {
	if input.BranchID != nil {
		branch, err := s.branchRepo.GetByID(ctx, *input.BranchID)
		if err != nil {
			return nil, err
		}
		if branch == nil {
			return nil, apperror.NewNotFoundError("Branch")
		}
	}

	employee := &entity.Employee{
		Name:        input.Name,
		BranchID:    input.BranchID,
		Designation: input.Designation,
		Phone:       input.Phone,
		Email:       input.Email,
		Address:     input.Address,
		JoiningDate: input.JoiningDate,
		Salary:      finance.ParseAmount(input.Salary),
		Active:      true,
	}

	if err := s.employeeRepo.Create(ctx, employee); err != nil {
		return nil, err
	}

	return employee, nil
}

// GetEmployee returns an employee by ID
func (s *EmployeeService) GetEmployee(ctx context.Context, id uuid.UUID) (*entity.Employee, error) {
	employee, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, apperror.NewNotFoundError("Employee")
	}
	return employee, nil
}

// ListEmployees returns a paginated list of employees
func (s *EmployeeService) ListEmployees(ctx context.Context, params *repository.EmployeeFilterParams) (*pagination.PaginatedResult[entity.Employee], error) {
	employees, total, err := s.employeeRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(employees, pag), nil
}

// UpdateEmployeeInput represents the update employee input
type UpdateEmployeeInput struct {
	ID          uuid.UUID
	Name        *string
	BranchID    *uuid.UUID
	Designation *string
	Phone       *string
	Email       *string
	Address     *string
	JoiningDate *time.Time
	Salary      *string
	Active      *bool
}

// UpdateEmployee updates an employee
func (s *EmployeeService) UpdateEmployee(ctx context.Context, input *UpdateEmployeeInput) (*entity.Employee, error) {
	employee, err := s.employeeRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, apperror.NewNotFoundError("Employee")
	}

	if input.Name != nil {
		employee.Name = *input.Name
	}
	if input.BranchID != nil {
		branch, err := s.branchRepo.GetByID(ctx, *input.BranchID)
		if err != nil {
			return nil, err
		}
		if branch == nil {
			return nil, apperror.NewNotFoundError("Branch")
		}
		employee.BranchID = input.BranchID
	}
	if input.Designation != nil {
		employee.Designation = input.Designation
	}
	if input.Phone != nil {
		employee.Phone = input.Phone
	}
	if input.Email != nil {
		employee.Email = input.Email
	}
	if input.Address != nil {
		employee.Address = input.Address
	}
	if input.JoiningDate != nil {
		employee.JoiningDate = input.JoiningDate
	}
	if input.Salary != nil {
		employee.Salary = finance.ParseAmount(*input.Salary)
	}
	if input.Active != nil {
		employee.Active = *input.Active
	}

	if err := s.employeeRepo.Update(ctx, employee); err != nil {
		return nil, err
	}

	return employee, nil
}

// DeleteEmployee deletes an employee
func (s *EmployeeService) DeleteEmployee(ctx context.Context, id uuid.UUID) error {
	employee, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if employee == nil {
		return apperror.NewNotFoundError("Employee")
	}
	return s.employeeRepo.Delete(ctx, id)
}
