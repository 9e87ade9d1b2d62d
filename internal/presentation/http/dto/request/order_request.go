package request

import (
	"github.com/google/uuid"

	"github.com/stockify/stockify-api/pkg/numeric"
)

// OrderItemRequest represents a line item in an order request
type OrderItemRequest struct {
	ProductID uuid.UUID      `json:"product_id" binding:"required"`
	Quantity  int            `json:"quantity" binding:"required,min=1"`
	UnitPrice numeric.Amount `json:"unit_price"` // Optional override; product price when zero
}

// CreateOrderRequest represents an order creation request
type CreateOrderRequest struct {
	CustomerName  string             `json:"customer_name" binding:"required,min=1,max=255"`
	CustomerPhone string             `json:"customer_phone" binding:"omitempty,max=50"`
	OrderDate     string             `json:"order_date" binding:"omitempty"` // YYYY-MM-DD, defaults to today
	PaymentMethod string             `json:"payment_method" binding:"required,oneof=cash card mobile bank_transfer"`
	TaxRate       int                `json:"tax_rate" binding:"min=0,max=100"`
	Paid          numeric.Amount     `json:"paid"`
	TransactionID *string            `json:"transaction_id"`
	Items         []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

// UpdateOrderRequest represents an order update request. Omitted fields
// are left unchanged; a present items array replaces the line items.
type UpdateOrderRequest struct {
	CustomerName  *string            `json:"customer_name" binding:"omitempty,min=1,max=255"`
	CustomerPhone *string            `json:"customer_phone" binding:"omitempty,max=50"`
	OrderDate     *string            `json:"order_date" binding:"omitempty"` // YYYY-MM-DD
	PaymentMethod *string            `json:"payment_method" binding:"omitempty,oneof=cash card mobile bank_transfer"`
	TaxRate       *int               `json:"tax_rate" binding:"omitempty,min=0,max=100"`
	Paid          *numeric.Amount    `json:"paid"`
	TransactionID *string            `json:"transaction_id"`
	Items         []OrderItemRequest `json:"items" binding:"omitempty,min=1,dive"`
}

// PayDueRequest represents a payment against an order's outstanding balance
type PayDueRequest struct {
	Amount numeric.Amount `json:"amount" binding:"required"`
}

// OrderFilterRequest represents order filter parameters
type OrderFilterRequest struct {
	Search        string `form:"search"`
	Status        string `form:"status"`
	PaymentMethod string `form:"payment_method"`
	CustomerPhone string `form:"customer_phone"`
	StartDate     string `form:"start_date"` // YYYY-MM-DD
	EndDate       string `form:"end_date"`   // YYYY-MM-DD
	SortBy        string `form:"sort_by"`
	SortOrder     string `form:"sort_order"`
	Page          int    `form:"page"`
	PerPage       int    `form:"per_page"`
	Cursor        string `form:"cursor"`
	Limit         int    `form:"limit"` // For cursor-based pagination
}

// ReturnItemRequest represents a line item in a return request
type ReturnItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
}

// CreateReturnRequest represents a return creation request
type CreateReturnRequest struct {
	OrderID uuid.UUID           `json:"order_id" binding:"required"`
	Reason  *string             `json:"reason"`
	Items   []ReturnItemRequest `json:"items" binding:"required,min=1,dive"`
}

// ReturnFilterRequest represents return filter parameters
type ReturnFilterRequest struct {
	Search    string `form:"search"`
	OrderID   string `form:"order_id"`
	StartDate string `form:"start_date"` // YYYY-MM-DD
	EndDate   string `form:"end_date"`   // YYYY-MM-DD
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
}
