package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Settings holds the company profile and receipt customization.
// A single row exists per installation; the service creates it on first read.
type Settings struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Company profile
	CompanyName  string  `gorm:"size:255;default:'Stockify'" json:"company_name"`
	Address      *string `gorm:"type:text" json:"address,omitempty"`
	Phone        *string `gorm:"size:50" json:"phone,omitempty"`
	Email        *string `gorm:"size:255" json:"email,omitempty"`
	TaxNumber    *string `gorm:"size:100" json:"tax_number,omitempty"`
	Currency     string  `gorm:"size:10;default:'USD'" json:"currency"`
	CompanyLogo  *string `gorm:"size:255" json:"company_logo,omitempty"`

	// Receipt customization
	ReceiptHeader      *string `gorm:"type:text" json:"receipt_header,omitempty"`
	ReceiptFooter      *string `gorm:"type:text" json:"receipt_footer,omitempty"`
	ReceiptHeaderImage *string `gorm:"size:255" json:"receipt_header_image,omitempty"`
	ReceiptFooterImage *string `gorm:"size:255" json:"receipt_footer_image,omitempty"`
}

// BeforeCreate generates a UUID before creating settings
func (s *Settings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Settings model
func (Settings) TableName() string {
	return "settings"
}
