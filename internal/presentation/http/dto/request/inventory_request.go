package request

import "github.com/google/uuid"

// CreateCategoryRequest represents a category creation request
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,min=2,max=255"`
}

// UpdateCategoryRequest represents a category update request
type UpdateCategoryRequest struct {
	Name   *string `json:"name" binding:"omitempty,min=2,max=255"`
	Status *string `json:"status" binding:"omitempty,oneof=active inactive"`
}

// CreateSupplierRequest represents a supplier creation request
type CreateSupplierRequest struct {
	Name          string  `json:"name" binding:"required,min=2,max=255"`
	Email         *string `json:"email" binding:"omitempty,email"`
	Phone         *string `json:"phone" binding:"omitempty,max=50"`
	Address       *string `json:"address"`
	ShopName      *string `json:"shopname" binding:"omitempty,max=255"`
	Photo         *string `json:"photo"`
	AccountHolder *string `json:"account_holder"`
	AccountNumber *string `json:"account_number"`
	BankName      *string `json:"bank_name"`
}

// UpdateSupplierRequest represents a supplier update request
type UpdateSupplierRequest struct {
	Name          *string `json:"name" binding:"omitempty,min=2,max=255"`
	Email         *string `json:"email" binding:"omitempty,email"`
	Phone         *string `json:"phone" binding:"omitempty,max=50"`
	Address       *string `json:"address"`
	ShopName      *string `json:"shopname" binding:"omitempty,max=255"`
	Photo         *string `json:"photo"`
	AccountHolder *string `json:"account_holder"`
	AccountNumber *string `json:"account_number"`
	BankName      *string `json:"bank_name"`
	Status        *string `json:"status" binding:"omitempty,oneof=active inactive"`
}

// CreateTaxRequest represents a tax creation request
type CreateTaxRequest struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
	Rate int    `json:"rate" binding:"min=0,max=100"`
}

// UpdateTaxRequest represents a tax update request
type UpdateTaxRequest struct {
	Name   *string `json:"name" binding:"omitempty,min=1,max=255"`
	Rate   *int    `json:"rate" binding:"omitempty,min=0,max=100"`
	Status *string `json:"status" binding:"omitempty,oneof=active inactive"`
}

// CreateBranchRequest represents a branch creation request
type CreateBranchRequest struct {
	Name    string  `json:"name" binding:"required,min=2,max=255"`
	Address *string `json:"address"`
	Phone   *string `json:"phone" binding:"omitempty,max=50"`
	Email   *string `json:"email" binding:"omitempty,email"`
}

// UpdateBranchRequest represents a branch update request
type UpdateBranchRequest struct {
	Name    *string `json:"name" binding:"omitempty,min=2,max=255"`
	Address *string `json:"address"`
	Phone   *string `json:"phone" binding:"omitempty,max=50"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Status  *string `json:"status" binding:"omitempty,oneof=active inactive"`
}

// AssignBranchRequest moves a user to a branch
type AssignBranchRequest struct {
	UserID   uuid.UUID `json:"user_id" binding:"required"`
	BranchID uuid.UUID `json:"branch_id" binding:"required"`
}

// AdjustStockRequest represents a manual stock adjustment request
type AdjustStockRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Type      string    `json:"type" binding:"required,oneof=in out"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
	Note      *string   `json:"note"`
}

// StockEntryFilterRequest represents stock entry filter parameters
type StockEntryFilterRequest struct {
	ProductID string `form:"product_id"`
	Type      string `form:"type"`
	StartDate string `form:"start_date"` // YYYY-MM-DD
	EndDate   string `form:"end_date"`   // YYYY-MM-DD
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
}
