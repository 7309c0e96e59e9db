package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/kiranps/tradebooks-api/internal/domain/entity"
	"github.com/kiranps/tradebooks-api/internal/domain/repository"
	"github.com/kiranps/tradebooks-api/pkg/apperror"
	"github.com/kiranps/tradebooks-api/pkg/pagination"
	"github.com/kiranps/tradebooks-api/pkg/utils"
)

// UserService handles user management operations
type UserService struct {
	userRepo   repository.UserRepository
	branchRepo repository.BranchRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository, branchRepo repository.BranchRepository) *UserService {
	return &UserService{
		userRepo:   userRepo,
		branchRepo: branchRepo,
	}
}

// CreateUserInput represents the create user input
type CreateUserInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Role      string
	BranchID  *uuid.UUID
}

// CreateUser creates a new user with the given role
func (s *UserService) CreateUser(ctx context.Context, input *CreateUserInput) (*entity.User, error) {
	existing, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Email already registered")
	}

	role := input.Role
	if role == "" {
		role = entity.RoleStaff
	}
	if role != entity.RoleAdmin && role != entity.RoleStaff {
		return nil, apperror.NewBadRequestError("Invalid role")
	}

	if input.BranchID != nil {
		branch, err := s.branchRepo.GetByID(ctx, *input.BranchID)
		if err != nil {
			return nil, err
		}
		if branch == nil {
			return nil, apperror.NewNotFoundError("Branch")
		}
	}

	hashedPassword, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Password:  hashedPassword,
		Role:      role,
		BranchID:  input.BranchID,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// GetUser returns a user by ID
func (s *UserService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}
	return user, nil
}

// ListUsers returns a paginated list of users
func (s *UserService) ListUsers(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.User], error) {
	users, total, err := s.userRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(users, pag), nil
}

// UpdateUserInput represents the update user input
type UpdateUserInput struct {
	ID        uuid.UUID
	FirstName *string
	LastName  *string
	Role      *string
	BranchID  *uuid.UUID
}

// UpdateUser updates a user's details, role or branch assignment
func (s *UserService) UpdateUser(ctx context.Context, input *UpdateUserInput) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}

	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.Role != nil {
		if *input.Role != entity.RoleAdmin && *input.Role != entity.RoleStaff {
			return nil, apperror.NewBadRequestError("Invalid role")
		}
		user.Role = *input.Role
	}
	if input.BranchID != nil {
		branch, err := s.branchRepo.GetByID(ctx, *input.BranchID)
		if err != nil {
			return nil, err
		}
		if branch == nil {
			return nil, apperror.NewNotFoundError("Branch")
		}
		user.BranchID = input.BranchID
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// DeleteUser deletes a user. The caller cannot delete their own account.
func (s *UserService) DeleteUser(ctx context.Context, id, callerID uuid.UUID) error {
	if id == callerID {
		return apperror.NewBadRequestError("Cannot delete your own account")
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.NewNotFoundError("User")
	}

	return s.userRepo.Delete(ctx, id)
}
