package report

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockify/stockify-api/internal/domain/entity"
	"github.com/stockify/stockify-api/internal/domain/enum"
)

func TestAggregateDashboard(t *testing.T) {
	now := time.Date(2026, 4, 15, 14, 30, 0, 0, time.UTC)

	orders := []entity.Order{
		{OrderDate: day("2026-04-15"), Total: 10000, PaymentMethod: enum.PaymentMethodCash},           // today
		{OrderDate: day("2026-04-12"), Total: 5000, PaymentMethod: enum.PaymentMethodCard},            // this week
		{OrderDate: day("2026-04-02"), Total: 3000, PaymentMethod: enum.PaymentMethodCash},            // this month only
		{OrderDate: day("2026-03-20"), Total: 7000, Due: 7000, PaymentMethod: enum.PaymentMethodCash}, // old, still due
		{OrderDate: day("2026-04-15"), Total: 2000, Due: 500, PaymentMethod: enum.PaymentMethodCash},  // today, partial
	}
	products := []entity.Product{
		{Quantity: 2, QuantityAlert: 5},
		{Quantity: 50, QuantityAlert: 5},
		{Quantity: 0, QuantityAlert: 0}, // no alert threshold set
	}

	stats := AggregateDashboard(orders, products, now)

	assert.Equal(t, 120.0, stats.TodayRevenue)
	assert.Equal(t, 2, stats.TodayOrders)
	assert.Equal(t, 170.0, stats.WeekRevenue)
	assert.Equal(t, 200.0, stats.MonthRevenue)
	// Due totals cover invoices outside the revenue windows
	assert.Equal(t, 75.0, stats.TotalDue)
	assert.Equal(t, 2, stats.DueOrders)
	assert.Equal(t, 3, stats.TotalProducts)
	assert.Equal(t, 1, stats.LowStockCount)

	// Payment-method chart covers the current month, so the March order
	// is excluded: cash 100+30+20, card 50
	require.Len(t, stats.PaymentMethods, 2)
	assert.Equal(t, enum.PaymentMethodCash, stats.PaymentMethods[0].Method)
	assert.Equal(t, 150.0, stats.PaymentMethods[0].Amount)
	assert.Equal(t, 3, stats.PaymentMethods[0].Orders)
	assert.Equal(t, enum.PaymentMethodCard, stats.PaymentMethods[1].Method)
	assert.Equal(t, 50.0, stats.PaymentMethods[1].Amount)
}

func TestAggregateDashboardCategorySales(t *testing.T) {
	now := time.Date(2026, 4, 15, 12, 0, 0, 0, time.UTC)

	drinks := &entity.Category{ID: uuid.New(), Name: "Drinks"}
	snacks := &entity.Category{ID: uuid.New(), Name: "Snacks"}

	cola := entity.Product{Category: drinks}
	cola.ID = uuid.New()
	chips := entity.Product{Category: snacks}
	chips.ID = uuid.New()
	misc := entity.Product{} // no category assigned
	misc.ID = uuid.New()

	orders := []entity.Order{
		{
			OrderDate:     day("2026-04-10"),
			Total:         9000,
			PaymentMethod: enum.PaymentMethodCash,
			Items: []entity.OrderItem{
				{ProductID: cola.ID, Quantity: 2, SubTotal: 4000},
				{ProductID: chips.ID, Quantity: 1, SubTotal: 2000},
				{ProductID: misc.ID, Quantity: 3, SubTotal: 3000},
			},
		},
		{
			OrderDate:     day("2026-04-14"),
			Total:         1000,
			PaymentMethod: enum.PaymentMethodCard,
			Items: []entity.OrderItem{
				{ProductID: cola.ID, Quantity: 1, SubTotal: 1000},
			},
		},
		{
			// outside the month window, must not count
			OrderDate:     day("2026-03-05"),
			Total:         8000,
			PaymentMethod: enum.PaymentMethodCash,
			Items: []entity.OrderItem{
				{ProductID: chips.ID, Quantity: 4, SubTotal: 8000},
			},
		},
	}

	stats := AggregateDashboard(orders, []entity.Product{cola, chips, misc}, now)

	require.Len(t, stats.CategorySales, 3)
	assert.Equal(t, "Drinks", stats.CategorySales[0].Category)
	assert.Equal(t, 50.0, stats.CategorySales[0].Revenue)
	assert.Equal(t, 3, stats.CategorySales[0].Quantity)
	assert.Equal(t, "Uncategorized", stats.CategorySales[1].Category)
	assert.Equal(t, 30.0, stats.CategorySales[1].Revenue)
	assert.Equal(t, "Snacks", stats.CategorySales[2].Category)
	assert.Equal(t, 20.0, stats.CategorySales[2].Revenue)
}

func TestAggregateDashboardWeeklySeriesZeroFilled(t *testing.T) {
	now := time.Date(2026, 4, 15, 9, 0, 0, 0, time.UTC)

	orders := []entity.Order{
		{OrderDate: day("2026-04-13"), Total: 4000},
	}

	stats := AggregateDashboard(orders, nil, now)

	require.Len(t, stats.WeeklySales, 7)
	assert.Equal(t, "2026-04-09", stats.WeeklySales[0].Date)
	assert.Equal(t, "2026-04-15", stats.WeeklySales[6].Date)

	for _, d := range stats.WeeklySales {
		if d.Date == "2026-04-13" {
			assert.Equal(t, 40.0, d.Revenue)
			assert.Equal(t, 1, d.Orders)
		} else {
			assert.Equal(t, 0.0, d.Revenue)
			assert.Equal(t, 0, d.Orders)
		}
	}
}

func TestAggregateDashboardTopListsCappedAtFive(t *testing.T) {
	now := time.Date(2026, 4, 15, 12, 0, 0, 0, time.UTC)

	var orders []entity.Order
	for i := 0; i < 7; i++ {
		orders = append(orders, entity.Order{
			OrderDate:     day("2026-04-10"),
			CustomerName:  string(rune('A' + i)),
			CustomerPhone: "070000000" + string(rune('0'+i)),
			Total:         int64(1000 * (i + 1)),
			PaymentMethod: enum.PaymentMethodCash,
			Items: []entity.OrderItem{
				{ProductName: "P" + string(rune('A'+i)), SKU: "SKU-" + string(rune('A'+i)), Quantity: 1, SubTotal: int64(1000 * (i + 1))},
			},
		})
	}

	stats := AggregateDashboard(orders, nil, now)

	require.Len(t, stats.TopCustomers, DashboardTopN)
	assert.Equal(t, "G", stats.TopCustomers[0].Name)
	assert.Equal(t, 70.0, stats.TopCustomers[0].Spend)

	require.Len(t, stats.TopProducts, DashboardTopN)
	assert.Equal(t, "PG", stats.TopProducts[0].Name)
	assert.Equal(t, 70.0, stats.TopProducts[0].Revenue)
}

func TestAggregateDashboardEmpty(t *testing.T) {
	stats := AggregateDashboard(nil, nil, time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, 0.0, stats.TodayRevenue)
	assert.Equal(t, 0, stats.TotalProducts)
	require.Len(t, stats.WeeklySales, 7)
}
