package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stockify/stockify-api/internal/domain/entity"
	domainRepo "github.com/stockify/stockify-api/internal/domain/repository"
)

type stockEntryRepository struct {
	db *gorm.DB
}

// NewStockEntryRepository creates a new stock entry repository
func NewStockEntryRepository(db *gorm.DB) domainRepo.StockEntryRepository {
	return &stockEntryRepository{db: db}
}

func (r *stockEntryRepository) Create(ctx context.Context, entry *entity.StockEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *stockEntryRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.StockEntry, error) {
	var entry entity.StockEntry
	err := r.db.WithContext(ctx).
		Preload("Product").
		First(&entry, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &entry, err
}

func (r *stockEntryRepository) List(ctx context.Context, params *domainRepo.StockEntryFilterParams) ([]entity.StockEntry, int64, error) {
	var entries []entity.StockEntry
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.StockEntry{}).Scopes(BranchScope(ctx))

	if params.ProductID != nil {
		query = query.Where("product_id = ?", *params.ProductID)
	}
	if params.Type != nil {
		query = query.Where("type = ?", *params.Type)
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
		Preload("Product").
		Order("created_at DESC").
		Find(&entries).Error

	return entries, total, err
}
