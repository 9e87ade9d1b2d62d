package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/stockify/stockify-api/internal/domain/enum"
	"gorm.io/gorm"
)

// StockEntry records a manual stock adjustment against a product.
// Sales and returns move quantity through their own flows; entries cover
// deliveries, corrections and write-offs.
type StockEntry struct {
	ID        uuid.UUID           `gorm:"type:uuid;primary_key" json:"id"`
	ProductID uuid.UUID           `gorm:"type:uuid;not null;index" json:"product_id"`
	BranchID  uuid.UUID           `gorm:"type:uuid;not null;index" json:"branch_id"`
	UserID    uuid.UUID           `gorm:"type:uuid;not null;index" json:"user_id"`
	Type      enum.StockEntryType `gorm:"size:10;not null" json:"type"`
	Quantity  int                 `gorm:"not null" json:"quantity"`
	Note      *string             `gorm:"type:text" json:"note,omitempty"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
	DeletedAt gorm.DeletedAt      `gorm:"index" json:"-"`

	// Relationships
	Product Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	User    User    `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new stock entry
func (e *StockEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the StockEntry model
func (StockEntry) TableName() string {
	return "stock_entries"
}

// Delta returns the signed quantity change this entry applies
func (e *StockEntry) Delta() int {
	if e.Type == enum.StockEntryOut {
		return -e.Quantity
	}
	return e.Quantity
}
