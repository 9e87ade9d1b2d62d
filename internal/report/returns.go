package report

import (
	"sort"
	"time"

	"github.com/stockify/stockify-api/internal/domain/entity"
)

// ReturnsReport summarizes refunds over a date range
type ReturnsReport struct {
	TotalReturns       int             `json:"total_returns"`
	TotalItemsReturned int             `json:"total_items_returned"`
	TotalRefunded      float64         `json:"total_refunded"`
	TaxRefunded        float64         `json:"tax_refunded"`
	DailyReturns       []DailyReturn   `json:"daily_returns"`
	ByOrder            []OrderReturns  `json:"by_order"`
	TopProducts        []ProductReturn `json:"top_products"`
}

// DailyReturn is one day's refund activity
type DailyReturn struct {
	Date     string  `json:"date"` // YYYY-MM-DD
	Returns  int     `json:"returns"`
	Refunded float64 `json:"refunded"`
}

// OrderReturns groups the returns raised against one order
type OrderReturns struct {
	OrderID   string  `json:"order_id"`
	InvoiceNo string  `json:"invoice_no"`
	Returns   int     `json:"returns"`
	Refunded  float64 `json:"refunded"`
}

// ProductReturn ranks a product by returned quantity
type ProductReturn struct {
	Name     string  `json:"name"`
	SKU      string  `json:"sku"`
	Quantity int     `json:"quantity"`
	Refunded float64 `json:"refunded"`
}

// AggregateReturns builds the returns report for the returns created
// inside the inclusive date range. Ranked lists break ties by name or
// invoice number ascending.
func AggregateReturns(returns []entity.Return, from, to *time.Time) *ReturnsReport {
	rep := &ReturnsReport{
		DailyReturns: []DailyReturn{},
		ByOrder:      []OrderReturns{},
		TopProducts:  []ProductReturn{},
	}

	type dailyAcc struct {
		returns  int
		refunded int64
	}
	type orderAcc struct {
		invoiceNo string
		returns   int
		refunded  int64
	}
	type productAcc struct {
		name     string
		sku      string
		quantity int
		refunded int64
	}

	var refundedCents, taxCents int64
	daily := make(map[string]*dailyAcc)
	orders := make(map[string]*orderAcc)
	products := make(map[string]*productAcc)

	for i := range returns {
		r := &returns[i]
		if !InRange(r.CreatedAt, from, to) {
			continue
		}

		rep.TotalReturns++
		refundedCents += r.Total
		taxCents += r.TaxAmount

		day := r.CreatedAt.Format("2006-01-02")
		if acc, ok := daily[day]; ok {
			acc.returns++
			acc.refunded += r.Total
		} else {
			daily[day] = &dailyAcc{returns: 1, refunded: r.Total}
		}

		orderKey := r.OrderID.String()
		if acc, ok := orders[orderKey]; ok {
			acc.returns++
			acc.refunded += r.Total
		} else {
			orders[orderKey] = &orderAcc{invoiceNo: r.InvoiceNo, returns: 1, refunded: r.Total}
		}

		for _, item := range r.Items {
			rep.TotalItemsReturned += item.Quantity
			key := item.ProductName + "|" + item.SKU
			if acc, ok := products[key]; ok {
				acc.quantity += item.Quantity
				acc.refunded += item.SubTotal
			} else {
				products[key] = &productAcc{
					name:     item.ProductName,
					sku:      item.SKU,
					quantity: item.Quantity,
					refunded: item.SubTotal,
				}
			}
		}
	}

	rep.TotalRefunded = cents(refundedCents)
	rep.TaxRefunded = cents(taxCents)

	for day, acc := range daily {
		rep.DailyReturns = append(rep.DailyReturns, DailyReturn{
			Date:     day,
			Returns:  acc.returns,
			Refunded: cents(acc.refunded),
		})
	}
	sort.Slice(rep.DailyReturns, func(i, j int) bool {
		return rep.DailyReturns[i].Date < rep.DailyReturns[j].Date
	})

	for orderID, acc := range orders {
		rep.ByOrder = append(rep.ByOrder, OrderReturns{
			OrderID:   orderID,
			InvoiceNo: acc.invoiceNo,
			Returns:   acc.returns,
			Refunded:  cents(acc.refunded),
		})
	}
	sort.Slice(rep.ByOrder, func(i, j int) bool {
		a, b := rep.ByOrder[i], rep.ByOrder[j]
		if a.Refunded != b.Refunded {
			return a.Refunded > b.Refunded
		}
		return a.InvoiceNo < b.InvoiceNo
	})

	for _, acc := range products {
		rep.TopProducts = append(rep.TopProducts, ProductReturn{
			Name:     acc.name,
			SKU:      acc.sku,
			Quantity: acc.quantity,
			Refunded: cents(acc.refunded),
		})
	}
	sort.Slice(rep.TopProducts, func(i, j int) bool {
		a, b := rep.TopProducts[i], rep.TopProducts[j]
		if a.Quantity != b.Quantity {
			return a.Quantity > b.Quantity
		}
		return a.Name < b.Name
	})
	if len(rep.TopProducts) > TopN {
		rep.TopProducts = rep.TopProducts[:TopN]
	}

	return rep
}
