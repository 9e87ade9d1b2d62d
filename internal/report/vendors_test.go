package report

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockify/stockify-api/internal/domain/entity"
	"github.com/stockify/stockify-api/internal/domain/enum"
)

func TestAggregateVendorsEmpty(t *testing.T) {
	rep := AggregateVendors(nil)

	assert.Equal(t, 0, rep.TotalVendors)
	assert.Equal(t, 0, rep.TotalProducts)
	assert.Empty(t, rep.Vendors)
}

func TestAggregateVendorsGrouping(t *testing.T) {
	acme := &entity.Supplier{Name: "Acme"}
	acme.ID = uuid.New()
	globex := &entity.Supplier{Name: "Globex"}
	globex.ID = uuid.New()

	products := []entity.Product{
		{Supplier: acme, Quantity: 10, PurchasePrice: 500, SellingPrice: 900, Status: enum.StatusActive},
		{Supplier: acme, Quantity: 2, PurchasePrice: 1000, SellingPrice: 1500, QuantityAlert: 5, Status: enum.StatusInactive},
		{Supplier: globex, Quantity: 1, PurchasePrice: 100, SellingPrice: 200, Status: enum.StatusActive},
		{Quantity: 3, PurchasePrice: 200, SellingPrice: 400, Status: enum.StatusActive}, // no supplier
	}

	rep := AggregateVendors(products)

	assert.Equal(t, 3, rep.TotalVendors)
	assert.Equal(t, 4, rep.TotalProducts)
	// 10*5 + 2*10 + 1*1 + 3*2 = 77.00
	assert.Equal(t, 77.0, rep.TotalStockValue)
	// 10*9 + 2*15 + 1*2 + 3*4 = 134.00
	assert.Equal(t, 134.0, rep.PotentialRevenue)

	require.Len(t, rep.Vendors, 3)
	// Acme has the highest stock value and sorts first
	assert.Equal(t, "Acme", rep.Vendors[0].Name)
	assert.Equal(t, acme.ID.String(), rep.Vendors[0].SupplierID)
	assert.Equal(t, 2, rep.Vendors[0].Products)
	assert.Equal(t, 1, rep.Vendors[0].ActiveProducts)
	assert.Equal(t, 1, rep.Vendors[0].InactiveProducts)
	assert.Equal(t, 12, rep.Vendors[0].StockQuantity)
	assert.Equal(t, 70.0, rep.Vendors[0].StockValue)
	assert.Equal(t, 120.0, rep.Vendors[0].PotentialRevenue)
	assert.Equal(t, 1, rep.Vendors[0].LowStockProducts)

	// Unassigned bucket has no supplier id
	var unassigned *VendorStats
	for i := range rep.Vendors {
		if rep.Vendors[i].Name == "Unassigned" {
			unassigned = &rep.Vendors[i]
		}
	}
	require.NotNil(t, unassigned)
	assert.Empty(t, unassigned.SupplierID)
	assert.Equal(t, 1, unassigned.Products)
	assert.Equal(t, 1, unassigned.ActiveProducts)
	assert.Equal(t, 0, unassigned.InactiveProducts)
}
