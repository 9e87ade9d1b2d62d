package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/stockify/stockify-api/internal/domain/entity"
	"github.com/stockify/stockify-api/internal/domain/enum"
	"github.com/stockify/stockify-api/internal/domain/repository"
	infraRepo "github.com/stockify/stockify-api/internal/infrastructure/repository"
	"github.com/stockify/stockify-api/pkg/apperror"
	"github.com/stockify/stockify-api/pkg/pagination"
)

// StockService handles manual stock adjustments. Sales and returns move
// quantity through the order and return services; this covers deliveries,
// corrections and write-offs.
type StockService struct {
	stockEntryRepo repository.StockEntryRepository
	productRepo    repository.ProductRepository
}

// NewStockService creates a new stock service
func NewStockService(stockEntryRepo repository.StockEntryRepository, productRepo repository.ProductRepository) *StockService {
	return &StockService{stockEntryRepo: stockEntryRepo, productRepo: productRepo}
}

// AdjustStockInput represents a manual stock adjustment request
type AdjustStockInput struct {
	UserID    uuid.UUID
	ProductID uuid.UUID
	Type      enum.StockEntryType
	Quantity  int
	Note      *string
}

// AdjustStock applies a stock adjustment and records the entry. The product
// quantity update is atomic; an out adjustment that would take stock below
// zero is rejected without recording anything.
func (s *StockService) AdjustStock(ctx context.Context, input *AdjustStockInput) (*entity.StockEntry, error) {
	branchID, ok := infraRepo.GetBranchID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("Branch context required")
	}

	if !input.Type.Valid() {
		return nil, apperror.NewBadRequestError("Stock entry type must be 'in' or 'out'")
	}
	if input.Quantity <= 0 {
		return nil, apperror.NewBadRequestError("Quantity must be greater than zero")
	}

	product, err := s.productRepo.GetByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	entry := &entity.StockEntry{
		ProductID: input.ProductID,
		BranchID:  branchID,
		UserID:    input.UserID,
		Type:      input.Type,
		Quantity:  input.Quantity,
		Note:      input.Note,
	}

	applied, err := s.productRepo.AdjustQuantity(ctx, input.ProductID, entry.Delta())
	if err != nil {
		return nil, err
	}
	if !applied {
		return nil, apperror.NewInsufficientStockError([]string{product.Name})
	}

	if err := s.stockEntryRepo.Create(ctx, entry); err != nil {
		// Roll the quantity change back so stock and entries stay consistent
		if _, rbErr := s.productRepo.AdjustQuantity(ctx, input.ProductID, -entry.Delta()); rbErr != nil {
			return nil, rbErr
		}
		return nil, err
	}

	return s.stockEntryRepo.GetByID(ctx, entry.ID)
}

// GetStockEntry retrieves a stock entry by ID
func (s *StockService) GetStockEntry(ctx context.Context, id uuid.UUID) (*entity.StockEntry, error) {
	entry, err := s.stockEntryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, apperror.NewNotFoundError("Stock entry")
	}
	return entry, nil
}

// ListStockEntries lists stock entries, newest first
func (s *StockService) ListStockEntries(ctx context.Context, params *repository.StockEntryFilterParams) (*pagination.PaginatedResult[entity.StockEntry], error) {
	entries, total, err := s.stockEntryRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(entries, pag), nil
}

// ParseStockEntryType parses a stock entry type string from a request
func ParseStockEntryType(v string) (enum.StockEntryType, error) {
	t := enum.StockEntryType(strings.ToLower(strings.TrimSpace(v)))
	if !t.Valid() {
		return "", apperror.NewBadRequestError("Stock entry type must be 'in' or 'out'")
	}
	return t, nil
}
