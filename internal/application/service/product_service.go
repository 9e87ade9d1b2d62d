package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/stockify/stockify-api/internal/domain/entity"
	"github.com/stockify/stockify-api/internal/domain/enum"
	"github.com/stockify/stockify-api/internal/domain/repository"
	infraRepo "github.com/stockify/stockify-api/internal/infrastructure/repository"
	"github.com/stockify/stockify-api/pkg/apperror"
	"github.com/stockify/stockify-api/pkg/numeric"
	"github.com/stockify/stockify-api/pkg/pagination"
	"github.com/stockify/stockify-api/pkg/utils"
)

// ProductService handles product-related operations
type ProductService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	supplierRepo repository.SupplierRepository
}

// NewProductService creates a new product service
func NewProductService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	supplierRepo repository.SupplierRepository,
) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		supplierRepo: supplierRepo,
	}
}

// CreateProductInput represents the create product input
type CreateProductInput struct {
	UserID        uuid.UUID
	CategoryID    *uuid.UUID
	SupplierID    *uuid.UUID
	Name          string
	SKU           string
	Quantity      int
	QuantityAlert int
	PurchasePrice numeric.Amount
	SellingPrice  numeric.Amount
	TaxRate       int
	TaxType       int
	Notes         *string
}

// CreateProduct creates a new product
func (s *ProductService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	branchID, ok := infraRepo.GetBranchID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("Branch context required")
	}

	if strings.TrimSpace(input.Name) == "" {
		return nil, apperror.NewBadRequestError("Product name is required")
	}
	if input.Quantity < 0 {
		return nil, apperror.NewBadRequestError("Quantity cannot be negative")
	}

	// Auto-generate SKU if not provided
	sku := strings.TrimSpace(input.SKU)
	if sku == "" {
		sku = utils.GenerateSKU()
	}

	// Check if SKU already exists
	existingProduct, err := s.productRepo.GetBySKU(ctx, sku)
	if err != nil {
		return nil, err
	}
	if existingProduct != nil {
		return nil, apperror.NewConflictError("Product SKU already exists")
	}

	if input.CategoryID != nil {
		category, err := s.categoryRepo.GetByID(ctx, *input.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, apperror.NewNotFoundError("Category")
		}
	}

	if input.SupplierID != nil {
		supplier, err := s.supplierRepo.GetByID(ctx, *input.SupplierID)
		if err != nil {
			return nil, err
		}
		if supplier == nil {
			return nil, apperror.NewNotFoundError("Supplier")
		}
	}

	product := &entity.Product{
		BranchID:      branchID,
		UserID:        input.UserID,
		CategoryID:    input.CategoryID,
		SupplierID:    input.SupplierID,
		Name:          strings.TrimSpace(input.Name),
		Slug:          utils.Slugify(input.Name),
		SKU:           sku,
		Quantity:      input.Quantity,
		QuantityAlert: input.QuantityAlert,
		PurchasePrice: input.PurchasePrice.Cents(),
		SellingPrice:  input.SellingPrice.Cents(),
		TaxRate:       input.TaxRate,
		TaxType:       enum.TaxType(input.TaxType),
		Status:        enum.StatusActive,
		Notes:         input.Notes,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return s.productRepo.GetByID(ctx, product.ID)
}

// GetProduct retrieves a product by slug
func (s *ProductService) GetProduct(ctx context.Context, slug string) (*entity.Product, error) {
	product, err := s.productRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// GetProductByID retrieves a product by ID
func (s *ProductService) GetProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// ListProducts lists products with filtering
func (s *ProductService) ListProducts(ctx context.Context, params *repository.ProductFilterParams) (*pagination.PaginatedResult[entity.Product], error) {
	products, total, err := s.productRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(products, pag), nil
}

// UpdateProductInput represents the update product input
type UpdateProductInput struct {
	ProductSlug   string
	CategoryID    *uuid.UUID
	SupplierID    *uuid.UUID
	Name          *string
	SKU           *string
	QuantityAlert *int
	PurchasePrice *numeric.Amount
	SellingPrice  *numeric.Amount
	TaxRate       *int
	TaxType       *int
	Status        *enum.Status
	Notes         *string
}

// UpdateProduct updates a product. Stock quantity is deliberately not
// updatable here; it moves through orders, returns and stock entries.
func (s *ProductService) UpdateProduct(ctx context.Context, input *UpdateProductInput) (*entity.Product, error) {
	product, err := s.productRepo.GetBySlug(ctx, input.ProductSlug)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	// Check if new SKU is unique
	if input.SKU != nil && *input.SKU != product.SKU {
		existingProduct, err := s.productRepo.GetBySKU(ctx, *input.SKU)
		if err != nil {
			return nil, err
		}
		if existingProduct != nil && existingProduct.ID != product.ID {
			return nil, apperror.NewConflictError("Product SKU already exists")
		}
		product.SKU = *input.SKU
	}

	if input.CategoryID != nil {
		product.CategoryID = input.CategoryID
	}
	if input.SupplierID != nil {
		product.SupplierID = input.SupplierID
	}
	if input.Name != nil {
		product.Name = *input.Name
		product.Slug = utils.Slugify(*input.Name)
	}
	if input.QuantityAlert != nil {
		product.QuantityAlert = *input.QuantityAlert
	}
	if input.PurchasePrice != nil {
		product.PurchasePrice = input.PurchasePrice.Cents()
	}
	if input.SellingPrice != nil {
		product.SellingPrice = input.SellingPrice.Cents()
	}
	if input.TaxRate != nil {
		product.TaxRate = *input.TaxRate
	}
	if input.TaxType != nil {
		product.TaxType = enum.TaxType(*input.TaxType)
	}
	if input.Status != nil {
		if !input.Status.Valid() {
			return nil, apperror.NewBadRequestError("Invalid status")
		}
		product.Status = *input.Status
	}
	if input.Notes != nil {
		product.Notes = input.Notes
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return s.productRepo.GetByID(ctx, product.ID)
}

// DeleteProduct soft-deletes a product
func (s *ProductService) DeleteProduct(ctx context.Context, slug string) error {
	product, err := s.productRepo.GetBySlug(ctx, slug)
	if err != nil {
		return err
	}
	if product == nil {
		return apperror.NewNotFoundError("Product")
	}

	return s.productRepo.Delete(ctx, product.ID)
}

// GetLowStockProducts returns products at or below their alert threshold
func (s *ProductService) GetLowStockProducts(ctx context.Context) ([]entity.Product, error) {
	return s.productRepo.GetLowStock(ctx)
}

// ImportProductRow represents a single row from the import file
type ImportProductRow struct {
	Name          string
	SKU           string
	Quantity      int
	QuantityAlert int
	PurchasePrice float64
	SellingPrice  float64
	TaxRate       int
	TaxType       int
	Notes         string
	CategoryName  string
	SupplierName  string
}

// ImportResult contains the result of a product import operation
type ImportResult struct {
	TotalRows  int              `json:"total_rows"`
	Successful int              `json:"successful"`
	Failed     int              `json:"failed"`
	Errors     []ImportRowError `json:"errors,omitempty"`
}

// ImportRowError describes an error for a specific row during import
type ImportRowError struct {
	Row     int    `json:"row"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ImportProducts validates and bulk-creates products from parsed import rows
func (s *ProductService) ImportProducts(ctx context.Context, userID uuid.UUID, rows []ImportProductRow) (*ImportResult, error) {
	branchID, ok := infraRepo.GetBranchID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("Branch context required")
	}

	result := &ImportResult{TotalRows: len(rows)}
	var rowErrors []ImportRowError

	// Load categories and suppliers for name-based matching
	categoryMap := make(map[string]*uuid.UUID)
	supplierMap := make(map[string]*uuid.UUID)

	categories, _, _ := s.categoryRepo.List(ctx, &pagination.PaginationParams{Page: 1, PerPage: 100}, "")
	for i := range categories {
		categoryMap[strings.ToLower(categories[i].Name)] = &categories[i].ID
	}

	suppliers, _, _ := s.supplierRepo.List(ctx, &pagination.PaginationParams{Page: 1, PerPage: 100}, "")
	for i := range suppliers {
		supplierMap[strings.ToLower(suppliers[i].Name)] = &suppliers[i].ID
	}

	// Track SKUs seen in this import batch to detect duplicates within the file
	seenSKUs := make(map[string]int) // sku -> row number (1-indexed)

	var validProducts []entity.Product

	for i, row := range rows {
		rowNum := i + 2 // +2 because row 1 is the header, data starts at row 2

		if strings.TrimSpace(row.Name) == "" {
			rowErrors = append(rowErrors, ImportRowError{Row: rowNum, Field: "name", Message: "Name is required"})
			continue
		}

		// Auto-generate SKU if empty
		sku := strings.TrimSpace(row.SKU)
		if sku == "" {
			sku = utils.GenerateSKU()
		}

		// Check for duplicate SKU within the file
		if prevRow, exists := seenSKUs[sku]; exists {
			rowErrors = append(rowErrors, ImportRowError{
				Row:     rowNum,
				Field:   "sku",
				Message: fmt.Sprintf("Duplicate SKU '%s' (same as row %d)", sku, prevRow),
			})
			continue
		}

		// Check if SKU already exists in DB
		existingProduct, err := s.productRepo.GetBySKU(ctx, sku)
		if err != nil {
			rowErrors = append(rowErrors, ImportRowError{Row: rowNum, Field: "sku", Message: "Error checking SKU: " + err.Error()})
			continue
		}
		if existingProduct != nil {
			rowErrors = append(rowErrors, ImportRowError{
				Row:     rowNum,
				Field:   "sku",
				Message: fmt.Sprintf("Product SKU '%s' already exists", sku),
			})
			continue
		}

		seenSKUs[sku] = rowNum

		// Generate slug with uniqueness suffix
		slug := utils.Slugify(row.Name) + "-" + strings.ToLower(uuid.New().String()[:8])

		var categoryID *uuid.UUID
		if row.CategoryName != "" {
			if id, ok := categoryMap[strings.ToLower(strings.TrimSpace(row.CategoryName))]; ok {
				categoryID = id
			}
		}

		var supplierID *uuid.UUID
		if row.SupplierName != "" {
			if id, ok := supplierMap[strings.ToLower(strings.TrimSpace(row.SupplierName))]; ok {
				supplierID = id
			}
		}

		product := entity.Product{
			BranchID:      branchID,
			UserID:        userID,
			CategoryID:    categoryID,
			SupplierID:    supplierID,
			Name:          strings.TrimSpace(row.Name),
			Slug:          slug,
			SKU:           sku,
			Quantity:      row.Quantity,
			QuantityAlert: row.QuantityAlert,
			PurchasePrice: numeric.FromFloat(row.PurchasePrice).Cents(),
			SellingPrice:  numeric.FromFloat(row.SellingPrice).Cents(),
			TaxRate:       row.TaxRate,
			TaxType:       enum.TaxType(row.TaxType),
			Status:        enum.StatusActive,
		}

		if row.Notes != "" {
			notes := row.Notes
			product.Notes = &notes
		}

		validProducts = append(validProducts, product)
	}

	// Batch create valid products
	if len(validProducts) > 0 {
		if err := s.productRepo.CreateBatch(ctx, validProducts); err != nil {
			return nil, apperror.NewAppError(500, "Failed to import products: "+err.Error())
		}
	}

	result.Successful = len(validProducts)
	result.Failed = len(rowErrors)
	result.Errors = rowErrors

	return result, nil
}
