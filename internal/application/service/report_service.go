package service

import (
	"context"
	"time"

	"github.com/stockify/stockify-api/internal/domain/repository"
	"github.com/stockify/stockify-api/internal/report"
	"github.com/stockify/stockify-api/pkg/export"
)

// ReportService aggregates sales, vendor and returns reports and builds
// the export tables for file downloads.
type ReportService struct {
	orderRepo   repository.OrderRepository
	returnRepo  repository.ReturnRepository
	productRepo repository.ProductRepository
}

// NewReportService creates a new report service
func NewReportService(
	orderRepo repository.OrderRepository,
	returnRepo repository.ReturnRepository,
	productRepo repository.ProductRepository,
) *ReportService {
	return &ReportService{
		orderRepo:   orderRepo,
		returnRepo:  returnRepo,
		productRepo: productRepo,
	}
}

// SalesReport aggregates sales inside the inclusive date range. Nil bounds
// are open.
func (s *ReportService) SalesReport(ctx context.Context, from, to *time.Time) (*report.SalesReport, error) {
	orders, err := s.orderRepo.ListInRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return report.AggregateSales(orders, from, to), nil
}

// VendorReport aggregates stock value and potential revenue per supplier
func (s *ReportService) VendorReport(ctx context.Context) (*report.VendorReport, error) {
	products, err := s.productRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return report.AggregateVendors(products), nil
}

// ReturnsReport aggregates returns inside the inclusive date range
func (s *ReportService) ReturnsReport(ctx context.Context, from, to *time.Time) (*report.ReturnsReport, error) {
	returns, err := s.returnRepo.ListInRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return report.AggregateReturns(returns, from, to), nil
}

// SalesExportTable builds the order-level export table for the sales report
func (s *ReportService) SalesExportTable(ctx context.Context, from, to *time.Time) (*export.Table, error) {
	orders, err := s.orderRepo.ListInRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	table := &export.Table{
		Title:       "Sales Report",
		GeneratedAt: time.Now(),
		Columns: []export.Column{
			{Key: "invoice_no", Label: "Invoice No", Width: 28},
			{Key: "order_date", Label: "Date", Width: 22},
			{Key: "customer_name", Label: "Customer", Width: 34},
			{Key: "customer_phone", Label: "Phone", Width: 24},
			{Key: "payment_method", Label: "Payment Method", Width: 24},
			{Key: "status", Label: "Status", Width: 20},
			{Key: "total_items", Label: "Items", Width: 14},
			{Key: "sub_total", Label: "Sub Total", Width: 20},
			{Key: "tax_amount", Label: "Tax", Width: 18},
			{Key: "total", Label: "Total", Width: 20},
			{Key: "paid", Label: "Paid", Width: 20},
			{Key: "due", Label: "Due", Width: 20},
		},
	}

	for _, o := range orders {
		table.Rows = append(table.Rows, export.Row{
			"invoice_no":     o.InvoiceNo,
			"order_date":     o.OrderDate,
			"customer_name":  o.CustomerName,
			"customer_phone": o.CustomerPhone,
			"payment_method": o.PaymentMethod.String(),
			"status":         o.Status.String(),
			"total_items":    o.TotalItems,
			"sub_total":      float64(o.SubTotal) / 100,
			"tax_amount":     float64(o.TaxAmount) / 100,
			"total":          float64(o.Total) / 100,
			"paid":           float64(o.Paid) / 100,
			"due":            float64(o.Due) / 100,
		})
	}

	return table, nil
}

// VendorExportTable builds the per-supplier export table for the vendor report
func (s *ReportService) VendorExportTable(ctx context.Context) (*export.Table, error) {
	rep, err := s.VendorReport(ctx)
	if err != nil {
		return nil, err
	}

	table := &export.Table{
		Title:       "Vendor Report",
		GeneratedAt: time.Now(),
		Columns: []export.Column{
			{Key: "name", Label: "Vendor", Width: 40},
			{Key: "products", Label: "Products", Width: 18},
			{Key: "active", Label: "Active", Width: 16},
			{Key: "inactive", Label: "Inactive", Width: 16},
			{Key: "stock_quantity", Label: "Stock Qty", Width: 18},
			{Key: "stock_value", Label: "Stock Value", Width: 22},
			{Key: "potential_revenue", Label: "Potential Revenue", Width: 26},
			{Key: "low_stock", Label: "Low Stock", Width: 18},
		},
	}

	for _, v := range rep.Vendors {
		table.Rows = append(table.Rows, export.Row{
			"name":              v.Name,
			"products":          v.Products,
			"active":            v.ActiveProducts,
			"inactive":          v.InactiveProducts,
			"stock_quantity":    v.StockQuantity,
			"stock_value":       v.StockValue,
			"potential_revenue": v.PotentialRevenue,
			"low_stock":         v.LowStockProducts,
		})
	}

	return table, nil
}

// ReturnsExportTable builds the per-return export table for the returns report
func (s *ReportService) ReturnsExportTable(ctx context.Context, from, to *time.Time) (*export.Table, error) {
	returns, err := s.returnRepo.ListInRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	table := &export.Table{
		Title:       "Returns Report",
		GeneratedAt: time.Now(),
		Columns: []export.Column{
			{Key: "created_at", Label: "Date", Width: 22},
			{Key: "invoice_no", Label: "Invoice No", Width: 28},
			{Key: "items", Label: "Items Returned", Width: 20},
			{Key: "sub_total", Label: "Sub Total", Width: 20},
			{Key: "tax_amount", Label: "Tax", Width: 18},
			{Key: "total", Label: "Refunded", Width: 20},
			{Key: "reason", Label: "Reason", Width: 40},
		},
	}

	for _, r := range returns {
		items := 0
		for _, item := range r.Items {
			items += item.Quantity
		}
		reason := ""
		if r.Reason != nil {
			reason = *r.Reason
		}
		table.Rows = append(table.Rows, export.Row{
			"created_at": r.CreatedAt,
			"invoice_no": r.InvoiceNo,
			"items":      items,
			"sub_total":  float64(r.SubTotal) / 100,
			"tax_amount": float64(r.TaxAmount) / 100,
			"total":      float64(r.Total) / 100,
			"reason":     reason,
		})
	}

	return table, nil
}
