package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/stockify/stockify-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Product represents a product in the inventory
type Product struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	BranchID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"branch_id"`
	UserID        uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	CategoryID    *uuid.UUID     `gorm:"type:uuid;index" json:"category_id,omitempty"`
	SupplierID    *uuid.UUID     `gorm:"type:uuid;index" json:"supplier_id,omitempty"`
	Name          string         `gorm:"size:255;not null" json:"name"`
	Slug          string         `gorm:"size:255;unique;not null" json:"slug"`
	SKU           string         `gorm:"size:100;unique;not null;column:sku" json:"sku"`
	Quantity      int            `gorm:"default:0" json:"quantity"`
	QuantityAlert int            `gorm:"default:0" json:"quantity_alert"`
	PurchasePrice int64          `gorm:"default:0" json:"-"` // Stored in cents
	SellingPrice  int64          `gorm:"default:0" json:"-"` // Stored in cents
	TaxRate       int            `gorm:"default:0" json:"tax_rate"`
	TaxType       enum.TaxType   `gorm:"default:0" json:"tax_type"`
	Status        enum.Status    `gorm:"size:20;default:'active'" json:"status"`
	Notes         *string        `gorm:"type:text" json:"notes,omitempty"`
	ProductImage  *string        `gorm:"size:255" json:"product_image,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Branch   Branch    `gorm:"foreignKey:BranchID" json:"-"`
	User     User      `gorm:"foreignKey:UserID" json:"-"`
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Supplier *Supplier `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
}

// BeforeCreate generates a UUID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// GetPurchasePriceDecimal returns the purchase price as a decimal (for display)
func (p *Product) GetPurchasePriceDecimal() float64 {
	return float64(p.PurchasePrice) / 100
}

// GetSellingPriceDecimal returns the selling price as a decimal (for display)
func (p *Product) GetSellingPriceDecimal() float64 {
	return float64(p.SellingPrice) / 100
}

// SetPurchasePriceFromDecimal sets the purchase price from a decimal value
func (p *Product) SetPurchasePriceFromDecimal(price float64) {
	p.PurchasePrice = int64(price * 100)
}

// SetSellingPriceFromDecimal sets the selling price from a decimal value
func (p *Product) SetSellingPriceFromDecimal(price float64) {
	p.SellingPrice = int64(price * 100)
}

// IsLowStock reports whether quantity has fallen to the alert threshold
func (p *Product) IsLowStock() bool {
	return p.QuantityAlert > 0 && p.Quantity <= p.QuantityAlert
}

// ProductJSON is a helper struct for JSON marshaling with decimal prices
type ProductJSON struct {
	ID            uuid.UUID    `json:"id"`
	BranchID      uuid.UUID    `json:"branch_id"`
	UserID        uuid.UUID    `json:"user_id"`
	CategoryID    *uuid.UUID   `json:"category_id,omitempty"`
	SupplierID    *uuid.UUID   `json:"supplier_id,omitempty"`
	Name          string       `json:"name"`
	Slug          string       `json:"slug"`
	SKU           string       `json:"sku"`
	Quantity      int          `json:"quantity"`
	QuantityAlert int          `json:"quantity_alert"`
	PurchasePrice float64      `json:"purchase_price"` // Decimal value for JSON
	SellingPrice  float64      `json:"selling_price"`  // Decimal value for JSON
	TaxRate       int          `json:"tax_rate"`
	TaxType       enum.TaxType `json:"tax_type"`
	Status        enum.Status  `json:"status"`
	Notes         *string      `json:"notes,omitempty"`
	ProductImage  *string      `json:"product_image,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
	Category      *Category    `json:"category,omitempty"`
	Supplier      *Supplier    `json:"supplier,omitempty"`
}

// MarshalJSON converts Product to JSON with decimal prices
func (p Product) MarshalJSON() ([]byte, error) {
	return json.Marshal(ProductJSON{
		ID:            p.ID,
		BranchID:      p.BranchID,
		UserID:        p.UserID,
		CategoryID:    p.CategoryID,
		SupplierID:    p.SupplierID,
		Name:          p.Name,
		Slug:          p.Slug,
		SKU:           p.SKU,
		Quantity:      p.Quantity,
		QuantityAlert: p.QuantityAlert,
		PurchasePrice: p.GetPurchasePriceDecimal(),
		SellingPrice:  p.GetSellingPriceDecimal(),
		TaxRate:       p.TaxRate,
		TaxType:       p.TaxType,
		Status:        p.Status,
		Notes:         p.Notes,
		ProductImage:  p.ProductImage,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
		Category:      p.Category,
		Supplier:      p.Supplier,
	})
}

// Category represents a product category
type Category struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Slug      string         `gorm:"size:255;unique;not null" json:"slug"`
	Status    enum.Status    `gorm:"size:20;default:'active'" json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	User     User      `gorm:"foreignKey:UserID" json:"-"`
	Products []Product `gorm:"foreignKey:CategoryID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new category
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Category model
func (Category) TableName() string {
	return "categories"
}
