package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stockify/stockify-api/internal/domain/entity"
	domainRepo "github.com/stockify/stockify-api/internal/domain/repository"
)

type returnRepository struct {
	db *gorm.DB
}

// NewReturnRepository creates a new return repository
func NewReturnRepository(db *gorm.DB) domainRepo.ReturnRepository {
	return &returnRepository{db: db}
}

func (r *returnRepository) Create(ctx context.Context, ret *entity.Return) error {
	return r.db.WithContext(ctx).Create(ret).Error
}

func (r *returnRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Return, error) {
	var ret entity.Return
	err := r.db.WithContext(ctx).First(&ret, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &ret, err
}

func (r *returnRepository) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Return, error) {
	var ret entity.Return
	err := r.db.WithContext(ctx).
		Preload("Items").
		First(&ret, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &ret, err
}

func (r *returnRepository) GetByOrderID(ctx context.Context, orderID uuid.UUID) ([]entity.Return, error) {
	var returns []entity.Return
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("order_id = ?", orderID).
		Order("created_at ASC").
		Find(&returns).Error
	return returns, err
}

func (r *returnRepository) List(ctx context.Context, params *domainRepo.ReturnFilterParams) ([]entity.Return, int64, error) {
	var returns []entity.Return
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Return{}).Scopes(BranchScope(ctx))

	if params.Search != "" {
		query = query.Where("invoice_no ILIKE ?", "%"+params.Search+"%")
	}
	if params.OrderID != nil {
		query = query.Where("order_id = ?", *params.OrderID)
	}
	if params.StartDate != nil {
		query = query.Where("created_at >= ?", *params.StartDate)
	}
	if params.EndDate != nil {
		query = query.Where("created_at <= ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Items").
		Order("created_at DESC").
		Find(&returns).Error

	return returns, total, err
}

// ListInRange loads all returns with items inside the inclusive range
// for report aggregation. Nil bounds leave that side open.
func (r *returnRepository) ListInRange(ctx context.Context, from, to *time.Time) ([]entity.Return, error) {
	var returns []entity.Return

	query := r.db.WithContext(ctx).Model(&entity.Return{}).Scopes(BranchScope(ctx))
	if from != nil {
		query = query.Where("created_at >= ?", *from)
	}
	if to != nil {
		query = query.Where("created_at <= ?", *to)
	}

	err := query.Preload("Items").
		Order("created_at ASC").
		Find(&returns).Error
	return returns, err
}

type returnItemRepository struct {
	db *gorm.DB
}

// NewReturnItemRepository creates a new return item repository
func NewReturnItemRepository(db *gorm.DB) domainRepo.ReturnItemRepository {
	return &returnItemRepository{db: db}
}

func (r *returnItemRepository) CreateBatch(ctx context.Context, items []entity.ReturnItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *returnItemRepository) GetByReturnID(ctx context.Context, returnID uuid.UUID) ([]entity.ReturnItem, error) {
	var items []entity.ReturnItem
	err := r.db.WithContext(ctx).
		Where("return_id = ?", returnID).
		Find(&items).Error
	return items, err
}
