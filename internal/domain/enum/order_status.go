package enum

// OrderStatus represents the payment status of a sales order.
// The values are part of the wire contract and are stored as-is.
type OrderStatus string

const (
	OrderStatusPaid        OrderStatus = "paid"
	OrderStatusDue         OrderStatus = "due"
	OrderStatusPartialPaid OrderStatus = "partial_paid"
)

// Valid reports whether the status is one of the known values.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPaid, OrderStatusDue, OrderStatusPartialPaid:
		return true
	}
	return false
}

func (s OrderStatus) String() string {
	return string(s)
}

// ForPayment derives the order status from total and paid amounts in cents.
func ForPayment(total, paid int64) OrderStatus {
	switch {
	case paid >= total:
		return OrderStatusPaid
	case paid <= 0:
		return OrderStatusDue
	default:
		return OrderStatusPartialPaid
	}
}
