package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/stockify/stockify-api/internal/domain/entity"
	"github.com/stockify/stockify-api/pkg/pagination"
)

// BranchRepository defines the interface for branch data operations
type BranchRepository interface {
	Create(ctx context.Context, branch *entity.Branch) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Branch, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Branch, error)
	GetByName(ctx context.Context, name string) (*entity.Branch, error)
	Update(ctx context.Context, branch *entity.Branch) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Branch, int64, error)
	// GetDefault returns the oldest active branch, used when a user has no
	// branch assignment yet
	GetDefault(ctx context.Context) (*entity.Branch, error)
}
