// Package report computes sales, vendor, return and dashboard summaries
// as pure functions over entity slices. Aggregation happens in integer
// cents and converts to decimal amounts only in the resulting report
// shapes, which are served as JSON and fed to the export formatters.
package report

import (
	"sort"
	"time"

	"github.com/stockify/stockify-api/internal/domain/entity"
	"github.com/stockify/stockify-api/internal/domain/enum"
)

// TopN is the number of entries kept in ranked breakdown lists
const TopN = 10

// SalesReport is the full sales summary over a date range
type SalesReport struct {
	TotalRevenue      float64              `json:"total_revenue"`
	TotalOrders       int                  `json:"total_orders"`
	PaidOrders        int                  `json:"paid_orders"`
	DueOrders         int                  `json:"due_orders"`
	PartialPaidOrders int                  `json:"partial_paid_orders"`
	UniqueCustomers   int                  `json:"unique_customers"`
	TotalItemsSold    int                  `json:"total_items_sold"`
	AverageOrderValue float64              `json:"average_order_value"`
	ConversionRate    float64              `json:"conversion_rate"`
	DailySales        []DailySale          `json:"daily_sales"`
	PaymentMethods    []PaymentMethodStat  `json:"payment_methods"`
	TopCustomers      []CustomerSpend      `json:"top_customers"`
	TopProducts       []ProductRevenue     `json:"top_products"`
}

// DailySale is one day's revenue and order count
type DailySale struct {
	Date    string  `json:"date"` // YYYY-MM-DD
	Revenue float64 `json:"revenue"`
	Orders  int     `json:"orders"`
}

// PaymentMethodStat is the share of revenue taken through one method
type PaymentMethodStat struct {
	Method enum.PaymentMethod `json:"method"`
	Amount float64            `json:"amount"`
	Orders int                `json:"orders"`
}

// CustomerSpend ranks a customer by total spend. Customers are keyed by
// phone number since orders carry no customer foreign key.
type CustomerSpend struct {
	Name   string  `json:"name"`
	Phone  string  `json:"phone"`
	Orders int     `json:"orders"`
	Spend  float64 `json:"spend"`
}

// ProductRevenue ranks a product by revenue across order lines
type ProductRevenue struct {
	Name     string  `json:"name"`
	SKU      string  `json:"sku"`
	Quantity int     `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

// InRange reports whether day falls inside the inclusive [from, to]
// range. Nil bounds leave that side open. Comparison is at day
// granularity so time-of-day never excludes an order.
func InRange(day time.Time, from, to *time.Time) bool {
	d := truncateDay(day)
	if from != nil && d.Before(truncateDay(*from)) {
		return false
	}
	if to != nil && d.After(truncateDay(*to)) {
		return false
	}
	return true
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// FilterOrders returns the orders whose order date falls inside the
// inclusive range
func FilterOrders(orders []entity.Order, from, to *time.Time) []entity.Order {
	filtered := make([]entity.Order, 0, len(orders))
	for _, o := range orders {
		if InRange(o.OrderDate, from, to) {
			filtered = append(filtered, o)
		}
	}
	return filtered
}

// AggregateSales builds the sales report for the orders inside the
// inclusive date range. It is a single pass per breakdown with
// deterministic ordering: ranked lists sort descending by their metric
// and break ties by name ascending.
func AggregateSales(orders []entity.Order, from, to *time.Time) *SalesReport {
	orders = FilterOrders(orders, from, to)

	rep := &SalesReport{
		TotalOrders:    len(orders),
		DailySales:     []DailySale{},
		PaymentMethods: []PaymentMethodStat{},
		TopCustomers:   []CustomerSpend{},
		TopProducts:    []ProductRevenue{},
	}

	var revenueCents int64

	type dailyAcc struct {
		revenue int64
		orders  int
	}
	type methodAcc struct {
		amount int64
		orders int
	}
	type customerAcc struct {
		name   string
		orders int
		spend  int64
	}
	type productAcc struct {
		name     string
		sku      string
		quantity int
		revenue  int64
	}

	daily := make(map[string]*dailyAcc)
	methods := make(map[enum.PaymentMethod]*methodAcc)
	customers := make(map[string]*customerAcc)
	products := make(map[string]*productAcc)

	for i := range orders {
		o := &orders[i]
		revenueCents += o.Total

		switch o.Status {
		case enum.OrderStatusPaid:
			rep.PaidOrders++
		case enum.OrderStatusDue:
			rep.DueOrders++
		case enum.OrderStatusPartialPaid:
			rep.PartialPaidOrders++
		}

		day := o.OrderDate.Format("2006-01-02")
		if acc, ok := daily[day]; ok {
			acc.revenue += o.Total
			acc.orders++
		} else {
			daily[day] = &dailyAcc{revenue: o.Total, orders: 1}
		}

		if acc, ok := methods[o.PaymentMethod]; ok {
			acc.amount += o.Total
			acc.orders++
		} else {
			methods[o.PaymentMethod] = &methodAcc{amount: o.Total, orders: 1}
		}

		if acc, ok := customers[o.CustomerPhone]; ok {
			acc.orders++
			acc.spend += o.Total
		} else {
			customers[o.CustomerPhone] = &customerAcc{name: o.CustomerName, orders: 1, spend: o.Total}
		}

		for _, item := range o.Items {
			rep.TotalItemsSold += item.Quantity
			key := item.ProductName + "|" + item.SKU
			if acc, ok := products[key]; ok {
				acc.quantity += item.Quantity
				acc.revenue += item.SubTotal
			} else {
				products[key] = &productAcc{
					name:     item.ProductName,
					sku:      item.SKU,
					quantity: item.Quantity,
					revenue:  item.SubTotal,
				}
			}
		}
	}

	rep.TotalRevenue = cents(revenueCents)
	rep.UniqueCustomers = len(customers)
	if rep.TotalOrders > 0 {
		rep.AverageOrderValue = rep.TotalRevenue / float64(rep.TotalOrders)
		rep.ConversionRate = float64(rep.PaidOrders) / float64(rep.TotalOrders) * 100
	}

	for day, acc := range daily {
		rep.DailySales = append(rep.DailySales, DailySale{
			Date:    day,
			Revenue: cents(acc.revenue),
			Orders:  acc.orders,
		})
	}
	sort.Slice(rep.DailySales, func(i, j int) bool {
		return rep.DailySales[i].Date < rep.DailySales[j].Date
	})

	for method, acc := range methods {
		rep.PaymentMethods = append(rep.PaymentMethods, PaymentMethodStat{
			Method: method,
			Amount: cents(acc.amount),
			Orders: acc.orders,
		})
	}
	sort.Slice(rep.PaymentMethods, func(i, j int) bool {
		a, b := rep.PaymentMethods[i], rep.PaymentMethods[j]
		if a.Amount != b.Amount {
			return a.Amount > b.Amount
		}
		return a.Method < b.Method
	})

	for phone, acc := range customers {
		rep.TopCustomers = append(rep.TopCustomers, CustomerSpend{
			Name:   acc.name,
			Phone:  phone,
			Orders: acc.orders,
			Spend:  cents(acc.spend),
		})
	}
	sort.Slice(rep.TopCustomers, func(i, j int) bool {
		a, b := rep.TopCustomers[i], rep.TopCustomers[j]
		if a.Spend != b.Spend {
			return a.Spend > b.Spend
		}
		return a.Name < b.Name
	})
	if len(rep.TopCustomers) > TopN {
		rep.TopCustomers = rep.TopCustomers[:TopN]
	}

	for _, acc := range products {
		rep.TopProducts = append(rep.TopProducts, ProductRevenue{
			Name:     acc.name,
			SKU:      acc.sku,
			Quantity: acc.quantity,
			Revenue:  cents(acc.revenue),
		})
	}
	sort.Slice(rep.TopProducts, func(i, j int) bool {
		a, b := rep.TopProducts[i], rep.TopProducts[j]
		if a.Revenue != b.Revenue {
			return a.Revenue > b.Revenue
		}
		return a.Name < b.Name
	})
	if len(rep.TopProducts) > TopN {
		rep.TopProducts = rep.TopProducts[:TopN]
	}

	return rep
}

// cents converts integer cents to a decimal amount
func cents(v int64) float64 {
	return float64(v) / 100
}
