package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockify/stockify-api/internal/domain/entity"
	"github.com/stockify/stockify-api/internal/domain/enum"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestAggregateSalesEmpty(t *testing.T) {
	rep := AggregateSales(nil, nil, nil)

	assert.Equal(t, 0, rep.TotalOrders)
	assert.Equal(t, float64(0), rep.TotalRevenue)
	assert.Equal(t, float64(0), rep.AverageOrderValue)
	assert.Equal(t, float64(0), rep.ConversionRate)
	assert.Empty(t, rep.DailySales)
	assert.Empty(t, rep.TopCustomers)
}

func TestAggregateSalesTotals(t *testing.T) {
	orders := []entity.Order{
		{
			CustomerName:  "Alice",
			CustomerPhone: "0700000001",
			OrderDate:     day("2026-03-01"),
			Total:         10000, // 100.00
			Status:        enum.OrderStatusPaid,
			PaymentMethod: enum.PaymentMethodCash,
			Items: []entity.OrderItem{
				{ProductName: "Keyboard", SKU: "KB-1", Quantity: 2, SubTotal: 8000},
				{ProductName: "Mouse", SKU: "MS-1", Quantity: 1, SubTotal: 2000},
			},
		},
		{
			CustomerName:  "Bob",
			CustomerPhone: "0700000002",
			OrderDate:     day("2026-03-02"),
			Total:         20000, // 200.00
			Status:        enum.OrderStatusDue,
			PaymentMethod: enum.PaymentMethodCard,
			Items: []entity.OrderItem{
				{ProductName: "Monitor", SKU: "MN-1", Quantity: 1, SubTotal: 20000},
			},
		},
	}

	rep := AggregateSales(orders, nil, nil)

	assert.Equal(t, 2, rep.TotalOrders)
	assert.Equal(t, 300.0, rep.TotalRevenue)
	assert.Equal(t, 1, rep.PaidOrders)
	assert.Equal(t, 1, rep.DueOrders)
	assert.Equal(t, 0, rep.PartialPaidOrders)
	assert.Equal(t, 2, rep.UniqueCustomers)
	assert.Equal(t, 4, rep.TotalItemsSold)
	assert.Equal(t, 150.0, rep.AverageOrderValue)
	assert.Equal(t, 50.0, rep.ConversionRate)

	require.Len(t, rep.DailySales, 2)
	assert.Equal(t, "2026-03-01", rep.DailySales[0].Date)
	assert.Equal(t, 100.0, rep.DailySales[0].Revenue)
	assert.Equal(t, 1, rep.DailySales[0].Orders)

	require.Len(t, rep.PaymentMethods, 2)
	assert.Equal(t, enum.PaymentMethodCard, rep.PaymentMethods[0].Method)
	assert.Equal(t, 200.0, rep.PaymentMethods[0].Amount)

	require.Len(t, rep.TopProducts, 3)
	assert.Equal(t, "Monitor", rep.TopProducts[0].Name)
	assert.Equal(t, 200.0, rep.TopProducts[0].Revenue)
	assert.Equal(t, "Keyboard", rep.TopProducts[1].Name)
}

func TestAggregateSalesAverageOrderValueKeepsPrecision(t *testing.T) {
	orders := []entity.Order{
		{OrderDate: day("2026-03-01"), Total: 34, PaymentMethod: enum.PaymentMethodCash},
		{OrderDate: day("2026-03-01"), Total: 33, PaymentMethod: enum.PaymentMethodCash},
		{OrderDate: day("2026-03-02"), Total: 33, PaymentMethod: enum.PaymentMethodCash},
	}

	rep := AggregateSales(orders, nil, nil)

	assert.Equal(t, 1.0, rep.TotalRevenue)
	// 1.00 over 3 orders must not floor to whole cents
	assert.InDelta(t, 1.0/3.0, rep.AverageOrderValue, 1e-9)
}

func TestAggregateSalesDateRangeInclusive(t *testing.T) {
	orders := []entity.Order{
		{CustomerPhone: "1", OrderDate: day("2026-03-01"), Total: 100, Status: enum.OrderStatusPaid},
		{CustomerPhone: "2", OrderDate: day("2026-03-05"), Total: 200, Status: enum.OrderStatusPaid},
		{CustomerPhone: "3", OrderDate: day("2026-03-10"), Total: 400, Status: enum.OrderStatusPaid},
	}

	from := day("2026-03-01")
	to := day("2026-03-05")
	rep := AggregateSales(orders, &from, &to)

	assert.Equal(t, 2, rep.TotalOrders)
	assert.Equal(t, 3.0, rep.TotalRevenue)

	// Open lower bound
	rep = AggregateSales(orders, nil, &to)
	assert.Equal(t, 2, rep.TotalOrders)

	// Open upper bound
	rep = AggregateSales(orders, &to, nil)
	assert.Equal(t, 2, rep.TotalOrders)
}

func TestAggregateSalesCustomersKeyedByPhone(t *testing.T) {
	orders := []entity.Order{
		{CustomerName: "Alice", CustomerPhone: "0700", OrderDate: day("2026-03-01"), Total: 100, Status: enum.OrderStatusPaid},
		{CustomerName: "Alice W", CustomerPhone: "0700", OrderDate: day("2026-03-02"), Total: 300, Status: enum.OrderStatusPaid},
		{CustomerName: "Bob", CustomerPhone: "0711", OrderDate: day("2026-03-02"), Total: 200, Status: enum.OrderStatusPaid},
	}

	rep := AggregateSales(orders, nil, nil)

	assert.Equal(t, 2, rep.UniqueCustomers)
	require.Len(t, rep.TopCustomers, 2)
	assert.Equal(t, "0700", rep.TopCustomers[0].Phone)
	assert.Equal(t, 2, rep.TopCustomers[0].Orders)
	assert.Equal(t, 4.0, rep.TopCustomers[0].Spend)
}

func TestAggregateSalesTopNCap(t *testing.T) {
	orders := make([]entity.Order, 0, TopN+5)
	for i := 0; i < TopN+5; i++ {
		orders = append(orders, entity.Order{
			CustomerName:  "Customer",
			CustomerPhone: string(rune('a' + i)),
			OrderDate:     day("2026-03-01"),
			Total:         int64(100 * (i + 1)),
			Status:        enum.OrderStatusPaid,
		})
	}

	rep := AggregateSales(orders, nil, nil)

	assert.Len(t, rep.TopCustomers, TopN)
	// Highest spender first
	assert.Equal(t, float64(TopN+5), rep.TopCustomers[0].Spend)
}

func TestInRangeDayGranularity(t *testing.T) {
	from := day("2026-03-01")
	to := day("2026-03-01")

	// Time of day inside the bound day never excludes
	at := time.Date(2026, 3, 1, 23, 59, 59, 0, time.UTC)
	assert.True(t, InRange(at, &from, &to))

	next := day("2026-03-02")
	assert.False(t, InRange(next, &from, &to))
}
