package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/stockify/stockify-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Order represents a sales order
type Order struct {
	ID            uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	BranchID      uuid.UUID          `gorm:"type:uuid;not null;index" json:"branch_id"`
	UserID        uuid.UUID          `gorm:"type:uuid;not null;index" json:"user_id"`
	InvoiceNo     string             `gorm:"size:100;unique;not null" json:"invoice_no"`
	CustomerName  string             `gorm:"size:255;not null" json:"customer_name"`
	CustomerPhone string             `gorm:"size:50;index" json:"customer_phone"`
	OrderDate     time.Time          `gorm:"type:date;not null;index" json:"order_date"`
	TotalItems    int                `gorm:"default:0" json:"total_items"`
	SubTotal      int64              `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	TaxRate       int                `gorm:"default:0" json:"tax_rate"`
	TaxAmount     int64              `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	Total         int64              `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	Paid          int64              `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	Due           int64              `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	Status        enum.OrderStatus   `gorm:"size:20;default:'due';index" json:"status"`
	PaymentMethod enum.PaymentMethod `gorm:"size:50" json:"payment_method"`
	TransactionID *string            `gorm:"size:255" json:"transaction_id,omitempty"`
	Attachment    *string            `gorm:"size:255" json:"attachment,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
	DeletedAt     gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relationships
	Branch  Branch      `gorm:"foreignKey:BranchID" json:"-"`
	User    User        `gorm:"foreignKey:UserID" json:"-"`
	Items   []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
	Returns []Return    `gorm:"foreignKey:OrderID" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (o Order) MarshalJSON() ([]byte, error) {
	type Alias Order
	return json.Marshal(&struct {
		Alias
		SubTotal  float64 `json:"sub_total"`
		TaxAmount float64 `json:"tax_amount"`
		Total     float64 `json:"total"`
		Paid      float64 `json:"paid"`
		Due       float64 `json:"due"`
	}{
		Alias:     Alias(o),
		SubTotal:  float64(o.SubTotal) / 100,
		TaxAmount: float64(o.TaxAmount) / 100,
		Total:     float64(o.Total) / 100,
		Paid:      float64(o.Paid) / 100,
		Due:       float64(o.Due) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new order
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// GetTotalDecimal returns the total as a decimal
func (o *Order) GetTotalDecimal() float64 {
	return float64(o.Total) / 100
}

// GetSubTotalDecimal returns the subtotal as a decimal
func (o *Order) GetSubTotalDecimal() float64 {
	return float64(o.SubTotal) / 100
}

// OrderItem represents a line item in an order. Product name and SKU are
// denormalized at sale time so reports stay stable if the product changes.
type OrderItem struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	OrderID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"order_id"`
	ProductID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"product_id"`
	ProductName string         `gorm:"size:255;not null" json:"product_name"`
	SKU         string         `gorm:"size:100;not null;column:sku" json:"sku"`
	Quantity    int            `gorm:"not null" json:"quantity"`
	UnitPrice   int64          `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	SubTotal    int64          `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Order   Order   `gorm:"foreignKey:OrderID" json:"-"`
	Product Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (oi OrderItem) MarshalJSON() ([]byte, error) {
	type Alias OrderItem
	return json.Marshal(&struct {
		Alias
		UnitPrice float64 `json:"unit_price"`
		SubTotal  float64 `json:"sub_total"`
	}{
		Alias:     Alias(oi),
		UnitPrice: float64(oi.UnitPrice) / 100,
		SubTotal:  float64(oi.SubTotal) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new order item
func (oi *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if oi.ID == uuid.Nil {
		oi.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the OrderItem model
func (OrderItem) TableName() string {
	return "order_items"
}
