package report

import (
	"sort"

	"github.com/stockify/stockify-api/internal/domain/entity"
	"github.com/stockify/stockify-api/internal/domain/enum"
)

// VendorReport summarizes inventory grouped by supplier
type VendorReport struct {
	TotalVendors     int           `json:"total_vendors"`
	TotalProducts    int           `json:"total_products"`
	TotalStockValue  float64       `json:"total_stock_value"`
	PotentialRevenue float64       `json:"potential_revenue"`
	Vendors          []VendorStats `json:"vendors"`
}

// VendorStats is one supplier's slice of the inventory
type VendorStats struct {
	SupplierID       string  `json:"supplier_id,omitempty"`
	Name             string  `json:"name"`
	Products         int     `json:"products"`
	ActiveProducts   int     `json:"active_products"`
	InactiveProducts int     `json:"inactive_products"`
	StockQuantity    int     `json:"stock_quantity"`
	StockValue       float64 `json:"stock_value"`       // quantity * purchase price
	PotentialRevenue float64 `json:"potential_revenue"` // quantity * selling price
	LowStockProducts int     `json:"low_stock_products"`
}

// unassignedVendor groups products without a supplier
const unassignedVendor = "Unassigned"

// AggregateVendors builds the vendor report from the product list.
// Products need Supplier preloaded; products without one are grouped
// under a single "Unassigned" bucket. Vendors sort descending by stock
// value with name ascending as tie-break.
func AggregateVendors(products []entity.Product) *VendorReport {
	rep := &VendorReport{
		TotalProducts: len(products),
		Vendors:       []VendorStats{},
	}

	type vendorAcc struct {
		id        string
		name      string
		products  int
		active    int
		inactive  int
		quantity  int
		value     int64
		potential int64
		lowStock  int
	}

	var totalValue, totalPotential int64
	vendors := make(map[string]*vendorAcc)

	for i := range products {
		p := &products[i]

		key := unassignedVendor
		name := unassignedVendor
		id := ""
		if p.Supplier != nil {
			key = p.Supplier.ID.String()
			name = p.Supplier.Name
			id = key
		}

		acc, ok := vendors[key]
		if !ok {
			acc = &vendorAcc{id: id, name: name}
			vendors[key] = acc
		}

		value := int64(p.Quantity) * p.PurchasePrice
		potential := int64(p.Quantity) * p.SellingPrice

		acc.products++
		if p.Status == enum.StatusInactive {
			acc.inactive++
		} else {
			acc.active++
		}
		acc.quantity += p.Quantity
		acc.value += value
		acc.potential += potential
		if p.IsLowStock() {
			acc.lowStock++
		}

		totalValue += value
		totalPotential += potential
	}

	rep.TotalVendors = len(vendors)
	rep.TotalStockValue = cents(totalValue)
	rep.PotentialRevenue = cents(totalPotential)

	for _, acc := range vendors {
		rep.Vendors = append(rep.Vendors, VendorStats{
			SupplierID:       acc.id,
			Name:             acc.name,
			Products:         acc.products,
			ActiveProducts:   acc.active,
			InactiveProducts: acc.inactive,
			StockQuantity:    acc.quantity,
			StockValue:       cents(acc.value),
			PotentialRevenue: cents(acc.potential),
			LowStockProducts: acc.lowStock,
		})
	}
	sort.Slice(rep.Vendors, func(i, j int) bool {
		a, b := rep.Vendors[i], rep.Vendors[j]
		if a.StockValue != b.StockValue {
			return a.StockValue > b.StockValue
		}
		return a.Name < b.Name
	})

	return rep
}
