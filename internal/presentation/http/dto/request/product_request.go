package request

import (
	"github.com/google/uuid"

	"github.com/stockify/stockify-api/pkg/numeric"
)

// CreateProductRequest represents a product creation request
type CreateProductRequest struct {
	CategoryID    *uuid.UUID     `json:"category_id"`
	SupplierID    *uuid.UUID     `json:"supplier_id"`
	Name          string         `json:"name" binding:"required,min=2,max=255"`
	SKU           string         `json:"sku" binding:"omitempty,max=100"`
	Quantity      int            `json:"quantity" binding:"min=0"`
	QuantityAlert int            `json:"quantity_alert" binding:"min=0"`
	PurchasePrice numeric.Amount `json:"purchase_price"`
	SellingPrice  numeric.Amount `json:"selling_price"`
	TaxRate       int            `json:"tax_rate" binding:"min=0,max=100"`
	TaxType       int            `json:"tax_type" binding:"min=0,max=1"`
	Notes         *string        `json:"notes"`
}

// UpdateProductRequest represents a product update request
type UpdateProductRequest struct {
	CategoryID    *uuid.UUID      `json:"category_id"`
	SupplierID    *uuid.UUID      `json:"supplier_id"`
	Name          *string         `json:"name" binding:"omitempty,min=2,max=255"`
	SKU           *string         `json:"sku" binding:"omitempty,min=1,max=100"`
	QuantityAlert *int            `json:"quantity_alert" binding:"omitempty,min=0"`
	PurchasePrice *numeric.Amount `json:"purchase_price"`
	SellingPrice  *numeric.Amount `json:"selling_price"`
	TaxRate       *int            `json:"tax_rate" binding:"omitempty,min=0,max=100"`
	TaxType       *int            `json:"tax_type" binding:"omitempty,min=0,max=1"`
	Status        *string         `json:"status" binding:"omitempty,oneof=active inactive"`
	Notes         *string         `json:"notes"`
}

// ProductFilterRequest represents product filter parameters
type ProductFilterRequest struct {
	Search     string `form:"search"`
	CategoryID string `form:"category_id"`
	SupplierID string `form:"supplier_id"`
	Status     string `form:"status"`
	LowStock   bool   `form:"low_stock"`
	SortBy     string `form:"sort_by"`
	SortOrder  string `form:"sort_order"`
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
}
