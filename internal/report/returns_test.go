package report

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockify/stockify-api/internal/domain/entity"
)

func TestAggregateReturnsEmpty(t *testing.T) {
	rep := AggregateReturns(nil, nil, nil)

	assert.Equal(t, 0, rep.TotalReturns)
	assert.Equal(t, float64(0), rep.TotalRefunded)
	assert.Empty(t, rep.DailyReturns)
	assert.Empty(t, rep.ByOrder)
}

func TestAggregateReturnsTotals(t *testing.T) {
	orderA := uuid.New()
	orderB := uuid.New()

	returns := []entity.Return{
		{
			OrderID:   orderA,
			InvoiceNo: "INV-001",
			Total:     5000,
			TaxAmount: 500,
			CreatedAt: day("2026-04-01"),
			Items: []entity.ReturnItem{
				{ProductName: "Keyboard", SKU: "KB-1", Quantity: 1, SubTotal: 4500},
			},
		},
		{
			OrderID:   orderA,
			InvoiceNo: "INV-001",
			Total:     2000,
			TaxAmount: 200,
			CreatedAt: day("2026-04-02"),
			Items: []entity.ReturnItem{
				{ProductName: "Mouse", SKU: "MS-1", Quantity: 2, SubTotal: 1800},
			},
		},
		{
			OrderID:   orderB,
			InvoiceNo: "INV-002",
			Total:     1000,
			TaxAmount: 100,
			CreatedAt: day("2026-04-02"),
			Items: []entity.ReturnItem{
				{ProductName: "Keyboard", SKU: "KB-1", Quantity: 1, SubTotal: 900},
			},
		},
	}

	rep := AggregateReturns(returns, nil, nil)

	assert.Equal(t, 3, rep.TotalReturns)
	assert.Equal(t, 4, rep.TotalItemsReturned)
	assert.Equal(t, 80.0, rep.TotalRefunded)
	assert.Equal(t, 8.0, rep.TaxRefunded)

	require.Len(t, rep.DailyReturns, 2)
	assert.Equal(t, "2026-04-01", rep.DailyReturns[0].Date)
	assert.Equal(t, 50.0, rep.DailyReturns[0].Refunded)
	assert.Equal(t, 2, rep.DailyReturns[1].Returns)

	require.Len(t, rep.ByOrder, 2)
	assert.Equal(t, orderA.String(), rep.ByOrder[0].OrderID)
	assert.Equal(t, 2, rep.ByOrder[0].Returns)
	assert.Equal(t, 70.0, rep.ByOrder[0].Refunded)

	require.Len(t, rep.TopProducts, 2)
	// Keyboard returned twice across orders, ranked by quantity
	assert.Equal(t, "Keyboard", rep.TopProducts[0].Name)
	assert.Equal(t, 2, rep.TopProducts[0].Quantity)
	assert.Equal(t, 54.0, rep.TopProducts[0].Refunded)
}

func TestAggregateReturnsDateFilter(t *testing.T) {
	returns := []entity.Return{
		{OrderID: uuid.New(), InvoiceNo: "INV-001", Total: 100, CreatedAt: day("2026-04-01")},
		{OrderID: uuid.New(), InvoiceNo: "INV-002", Total: 200, CreatedAt: day("2026-04-10")},
	}

	from := day("2026-04-05")
	rep := AggregateReturns(returns, &from, nil)

	assert.Equal(t, 1, rep.TotalReturns)
	assert.Equal(t, 2.0, rep.TotalRefunded)
}
