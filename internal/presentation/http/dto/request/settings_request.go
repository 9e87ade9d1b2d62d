package request

// UpdateSettingsRequest represents a settings update request
type UpdateSettingsRequest struct {
	CompanyName        *string `json:"company_name" binding:"omitempty,min=1,max=255"`
	Address            *string `json:"address"`
	Phone              *string `json:"phone" binding:"omitempty,max=50"`
	Email              *string `json:"email" binding:"omitempty,email"`
	TaxNumber          *string `json:"tax_number" binding:"omitempty,max=100"`
	Currency           *string `json:"currency" binding:"omitempty,min=1,max=10"`
	CompanyLogo        *string `json:"company_logo"`
	ReceiptHeader      *string `json:"receipt_header"`
	ReceiptFooter      *string `json:"receipt_footer"`
	ReceiptHeaderImage *string `json:"receipt_header_image"`
	ReceiptFooterImage *string `json:"receipt_footer_image"`
}

// PrintReceiptRequest is the request body for printing a receipt.
type PrintReceiptRequest struct {
	OrderID string `json:"order_id" binding:"required,uuid"`
}

// ReportFilterRequest represents report query parameters
type ReportFilterRequest struct {
	StartDate string `form:"start_date"` // YYYY-MM-DD, inclusive
	EndDate   string `form:"end_date"`   // YYYY-MM-DD, inclusive
	Format    string `form:"format"`     // csv, xlsx or pdf for file export
}
