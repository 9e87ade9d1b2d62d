package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/stockify/stockify-api/internal/domain/entity"
	"github.com/stockify/stockify-api/internal/domain/enum"
	"github.com/stockify/stockify-api/internal/domain/repository"
	"github.com/stockify/stockify-api/pkg/apperror"
	"github.com/stockify/stockify-api/pkg/pagination"
	"github.com/stockify/stockify-api/pkg/utils"
)

// BranchService handles store branch operations
type BranchService struct {
	branchRepo repository.BranchRepository
	userRepo   repository.UserRepository
}

// NewBranchService creates a new branch service
func NewBranchService(branchRepo repository.BranchRepository, userRepo repository.UserRepository) *BranchService {
	return &BranchService{branchRepo: branchRepo, userRepo: userRepo}
}

// CreateBranchInput represents the create branch input
type CreateBranchInput struct {
	Name    string
	Address *string
	Phone   *string
	Email   *string
}

// CreateBranch creates a new branch
func (s *BranchService) CreateBranch(ctx context.Context, input *CreateBranchInput) (*entity.Branch, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperror.NewBadRequestError("Branch name is required")
	}

	existing, err := s.branchRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Branch already exists")
	}

	branch := &entity.Branch{
		Name:    name,
		Slug:    utils.Slugify(name),
		Address: input.Address,
		Phone:   input.Phone,
		Email:   input.Email,
		Status:  enum.StatusActive,
	}

	if err := s.branchRepo.Create(ctx, branch); err != nil {
		return nil, err
	}

	return branch, nil
}

// GetBranch retrieves a branch by slug
func (s *BranchService) GetBranch(ctx context.Context, slug string) (*entity.Branch, error) {
	branch, err := s.branchRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, apperror.NewNotFoundError("Branch")
	}
	return branch, nil
}

// ListBranches lists branches with pagination
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
	Slug    string
	Name    *string
	Address *string
	Phone   *string
	Email   *string
	Status  *enum.Status
}

// UpdateBranch updates a branch
func (s *BranchService) UpdateBranch(ctx context.Context, input *UpdateBranchInput) (*entity.Branch, error) {
	branch, err := s.branchRepo.GetBySlug(ctx, input.Slug)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, apperror.NewNotFoundError("Branch")
	}

	if input.Name != nil {
		newName := strings.TrimSpace(*input.Name)
		if newName == "" {
			return nil, apperror.NewBadRequestError("Branch name cannot be empty")
		}
		if !strings.EqualFold(newName, branch.Name) {
			existing, err := s.branchRepo.GetByName(ctx, newName)
			if err != nil {
				return nil, err
			}
			if existing != nil && existing.ID != branch.ID {
				return nil, apperror.NewConflictError("Branch already exists")
			}
		}
		branch.Name = newName
		branch.Slug = utils.Slugify(newName)
	}
	if input.Address != nil {
		branch.Address = input.Address
	}
	if input.Phone != nil {
		branch.Phone = input.Phone
	}
	if input.Email != nil {
		branch.Email = input.Email
	}
	if input.Status != nil {
		if !input.Status.Valid() {
			return nil, apperror.NewBadRequestError("Invalid status")
		}
		branch.Status = *input.Status
	}

	if err := s.branchRepo.Update(ctx, branch); err != nil {
		return nil, err
	}

	return branch, nil
}

// DeleteBranch soft-deletes a branch. The last active branch cannot be
// deleted since every user and product needs a branch to belong to.
func (s *BranchService) DeleteBranch(ctx context.Context, slug string) error {
	branch, err := s.branchRepo.GetBySlug(ctx, slug)
	if err != nil {
		return err
	}
	if branch == nil {
		return apperror.NewNotFoundError("Branch")
	}

	_, total, err := s.branchRepo.List(ctx, &pagination.PaginationParams{Page: 1, PerPage: 1}, "")
	if err != nil {
		return err
	}
	if total <= 1 {
		return apperror.NewBadRequestError("Cannot delete the last branch")
	}

	return s.branchRepo.Delete(ctx, branch.ID)
}

// AssignUserToBranch moves a user to a different branch
func (s *BranchService) AssignUserToBranch(ctx context.Context, userID, branchID uuid.UUID) (*entity.User, error) {
	branch, err := s.branchRepo.GetByID(ctx, branchID)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, apperror.NewNotFoundError("Branch")
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}

	user.BranchID = &branchID
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return s.userRepo.GetByID(ctx, userID)
}
