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
)

// TaxService handles tax rate operations
type TaxService struct {
	taxRepo repository.TaxRepository
}

// NewTaxService creates a new tax service
func NewTaxService(taxRepo repository.TaxRepository) *TaxService {
	return &TaxService{taxRepo: taxRepo}
}

// CreateTax creates a new tax rate
func (s *TaxService) CreateTax(ctx context.Context, userID uuid.UUID, name string, rate int) (*entity.Tax, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperror.NewBadRequestError("Tax name is required")
	}
	if rate < 0 || rate > 100 {
		return nil, apperror.NewBadRequestError("Tax rate must be between 0 and 100")
	}

	existing, err := s.taxRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Tax already exists")
	}

	tax := &entity.Tax{
		UserID: userID,
		Name:   name,
		Rate:   rate,
		Status: enum.StatusActive,
	}

	if err := s.taxRepo.Create(ctx, tax); err != nil {
		return nil, err
	}

	return tax, nil
}

// GetTax retrieves a tax rate by ID
func (s *TaxService) GetTax(ctx context.Context, id uuid.UUID) (*entity.Tax, error) {
	tax, err := s.taxRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tax == nil {
		return nil, apperror.NewNotFoundError("Tax")
	}
	return tax, nil
}

// ListTaxes lists tax rates with pagination
func (s *TaxService) ListTaxes(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Tax], error) {
	taxes, total, err := s.taxRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(taxes, pag), nil
}

// UpdateTax updates a tax rate
func (s *TaxService) UpdateTax(ctx context.Context, id uuid.UUID, name *string, rate *int, status *enum.Status) (*entity.Tax, error) {
	tax, err := s.taxRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tax == nil {
		return nil, apperror.NewNotFoundError("Tax")
	}

	if name != nil {
		newName := strings.TrimSpace(*name)
		if newName == "" {
			return nil, apperror.NewBadRequestError("Tax name cannot be empty")
		}
		if !strings.EqualFold(newName, tax.Name) {
			existing, err := s.taxRepo.GetByName(ctx, newName)
			if err != nil {
				return nil, err
			}
			if existing != nil && existing.ID != tax.ID {
				return nil, apperror.NewConflictError("Tax already exists")
			}
		}
		tax.Name = newName
	}
	if rate != nil {
		if *rate < 0 || *rate > 100 {
			return nil, apperror.NewBadRequestError("Tax rate must be between 0 and 100")
		}
		tax.Rate = *rate
	}
	if status != nil {
		if !status.Valid() {
			return nil, apperror.NewBadRequestError("Invalid status")
		}
		tax.Status = *status
	}

	if err := s.taxRepo.Update(ctx, tax); err != nil {
		return nil, err
	}

	return tax, nil
}

// DeleteTax soft-deletes a tax rate
func (s *TaxService) DeleteTax(ctx context.Context, id uuid.UUID) error {
	tax, err := s.taxRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if tax == nil {
		return apperror.NewNotFoundError("Tax")
	}

	return s.taxRepo.Delete(ctx, id)
}
