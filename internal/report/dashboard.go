package report

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/stockify/stockify-api/internal/domain/entity"
	"github.com/stockify/stockify-api/internal/domain/enum"
)

// DashboardStats is the landing-page summary
type DashboardStats struct {
	TodayRevenue   float64             `json:"today_revenue"`
	TodayOrders    int                 `json:"today_orders"`
	WeekRevenue    float64             `json:"week_revenue"`
	MonthRevenue   float64             `json:"month_revenue"`
	TotalDue       float64             `json:"total_due"`
	DueOrders      int                 `json:"due_orders"`
	TotalProducts  int                 `json:"total_products"`
	LowStockCount  int                 `json:"low_stock_count"`
	WeeklySales    []DailySale         `json:"weekly_sales"` // last 7 days, zero-filled
	PaymentMethods []PaymentMethodStat `json:"payment_methods"`
	CategorySales  []CategorySale      `json:"category_sales"`
	TopProducts    []ProductRevenue    `json:"top_products"`
	TopCustomers   []CustomerSpend     `json:"top_customers"`
}

// DashboardTopN caps the dashboard's ranked lists for on-screen display
const DashboardTopN = 5

// CategorySale is the revenue share of one product category
type CategorySale struct {
	Category string  `json:"category"`
	Quantity int     `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

// AggregateDashboard builds the dashboard summary from the recent order
// window and the current product list. now anchors "today"; callers pass
// time.Now() outside tests. The weekly series covers the 7 days ending
// today with zero entries for days without sales. Chart data and the
// top-5 ranked lists cover the current month.
func AggregateDashboard(orders []entity.Order, products []entity.Product, now time.Time) *DashboardStats {
	stats := &DashboardStats{
		TotalProducts: len(products),
		WeeklySales:   make([]DailySale, 0, 7),
	}

	today := truncateDay(now)
	weekStart := today.AddDate(0, 0, -6)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	categoryOf := make(map[uuid.UUID]string, len(products))
	for i := range products {
		name := "Uncategorized"
		if products[i].Category != nil {
			name = products[i].Category.Name
		}
		categoryOf[products[i].ID] = name
	}

	var todayCents, weekCents, monthCents, dueCents int64
	dailyRevenue := make(map[string]int64)
	dailyOrders := make(map[string]int)

	type methodAcc struct {
		amount int64
		orders int
	}
	type categoryAcc struct {
		revenue  int64
		quantity int
	}
	type productAcc struct {
		name     string
		sku      string
		quantity int
		revenue  int64
	}
	type customerAcc struct {
		name   string
		orders int
		spend  int64
	}
	methods := make(map[enum.PaymentMethod]*methodAcc)
	categories := make(map[string]*categoryAcc)
	topProducts := make(map[string]*productAcc)
	topCustomers := make(map[string]*customerAcc)

	for i := range orders {
		o := &orders[i]
		day := truncateDay(o.OrderDate)

		if day.Equal(today) {
			todayCents += o.Total
			stats.TodayOrders++
		}
		if !day.Before(weekStart) && !day.After(today) {
			weekCents += o.Total
			key := day.Format("2006-01-02")
			dailyRevenue[key] += o.Total
			dailyOrders[key]++
		}
		if !day.Before(monthStart) && !day.After(today) {
			monthCents += o.Total

			m, ok := methods[o.PaymentMethod]
			if !ok {
				m = &methodAcc{}
				methods[o.PaymentMethod] = m
			}
			m.amount += o.Total
			m.orders++

			cust, ok := topCustomers[o.CustomerPhone]
			if !ok {
				cust = &customerAcc{name: o.CustomerName}
				topCustomers[o.CustomerPhone] = cust
			}
			cust.orders++
			cust.spend += o.Total

			for _, item := range o.Items {
				name, known := categoryOf[item.ProductID]
				if !known {
					name = "Uncategorized"
				}
				cat, ok := categories[name]
				if !ok {
					cat = &categoryAcc{}
					categories[name] = cat
				}
				cat.revenue += item.SubTotal
				cat.quantity += item.Quantity

				key := item.ProductName + "|" + item.SKU
				prod, ok := topProducts[key]
				if !ok {
					prod = &productAcc{name: item.ProductName, sku: item.SKU}
					topProducts[key] = prod
				}
				prod.quantity += item.Quantity
				prod.revenue += item.SubTotal
			}
		}
		if o.Due > 0 {
			dueCents += o.Due
			stats.DueOrders++
		}
	}

	for i := range products {
		if products[i].IsLowStock() {
			stats.LowStockCount++
		}
	}

	stats.TodayRevenue = cents(todayCents)
	stats.WeekRevenue = cents(weekCents)
	stats.MonthRevenue = cents(monthCents)
	stats.TotalDue = cents(dueCents)

	for d := weekStart; !d.After(today); d = d.AddDate(0, 0, 1) {
		key := d.Format("2006-01-02")
		stats.WeeklySales = append(stats.WeeklySales, DailySale{
			Date:    key,
			Revenue: cents(dailyRevenue[key]),
			Orders:  dailyOrders[key],
		})
	}

	stats.PaymentMethods = make([]PaymentMethodStat, 0, len(methods))
	for method, acc := range methods {
		stats.PaymentMethods = append(stats.PaymentMethods, PaymentMethodStat{
			Method: method,
			Amount: cents(acc.amount),
			Orders: acc.orders,
		})
	}
	sort.Slice(stats.PaymentMethods, func(i, j int) bool {
		a, b := stats.PaymentMethods[i], stats.PaymentMethods[j]
		if a.Amount != b.Amount {
			return a.Amount > b.Amount
		}
		return a.Method < b.Method
	})

	stats.CategorySales = make([]CategorySale, 0, len(categories))
	for name, acc := range categories {
		stats.CategorySales = append(stats.CategorySales, CategorySale{
			Category: name,
			Quantity: acc.quantity,
			Revenue:  cents(acc.revenue),
		})
	}
	sort.Slice(stats.CategorySales, func(i, j int) bool {
		a, b := stats.CategorySales[i], stats.CategorySales[j]
		if a.Revenue != b.Revenue {
			return a.Revenue > b.Revenue
		}
		return a.Category < b.Category
	})

	stats.TopProducts = make([]ProductRevenue, 0, len(topProducts))
	for _, acc := range topProducts {
		stats.TopProducts = append(stats.TopProducts, ProductRevenue{
			Name:     acc.name,
			SKU:      acc.sku,
			Quantity: acc.quantity,
			Revenue:  cents(acc.revenue),
		})
	}
	sort.Slice(stats.TopProducts, func(i, j int) bool {
		a, b := stats.TopProducts[i], stats.TopProducts[j]
		if a.Revenue != b.Revenue {
			return a.Revenue > b.Revenue
		}
		return a.Name < b.Name
	})
	if len(stats.TopProducts) > DashboardTopN {
		stats.TopProducts = stats.TopProducts[:DashboardTopN]
	}

	stats.TopCustomers = make([]CustomerSpend, 0, len(topCustomers))
	for phone, acc := range topCustomers {
		stats.TopCustomers = append(stats.TopCustomers, CustomerSpend{
			Name:   acc.name,
			Phone:  phone,
			Orders: acc.orders,
			Spend:  cents(acc.spend),
		})
	}
	sort.Slice(stats.TopCustomers, func(i, j int) bool {
		a, b := stats.TopCustomers[i], stats.TopCustomers[j]
		if a.Spend != b.Spend {
			return a.Spend > b.Spend
		}
		return a.Name < b.Name
	})
	if len(stats.TopCustomers) > DashboardTopN {
		stats.TopCustomers = stats.TopCustomers[:DashboardTopN]
	}

	return stats
}
