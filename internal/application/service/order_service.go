package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/stockify/stockify-api/internal/domain/entity"
	"github.com/stockify/stockify-api/internal/domain/enum"
	"github.com/stockify/stockify-api/internal/domain/repository"
	"github.com/stockify/stockify-api/internal/infrastructure/events"
	infraRepo "github.com/stockify/stockify-api/internal/infrastructure/repository"
	"github.com/stockify/stockify-api/pkg/apperror"
	"github.com/stockify/stockify-api/pkg/numeric"
	"github.com/stockify/stockify-api/pkg/pagination"
	"github.com/stockify/stockify-api/pkg/utils"
)

// OrderService handles sales order operations
type OrderService struct {
	orderRepo     repository.OrderRepository
	orderItemRepo repository.OrderItemRepository
	productRepo   repository.ProductRepository
	publisher     events.Publisher
}

// NewOrderService creates a new order service
func NewOrderService(
	orderRepo repository.OrderRepository,
	orderItemRepo repository.OrderItemRepository,
	productRepo repository.ProductRepository,
	publisher events.Publisher,
) *OrderService {
	return &OrderService{
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
		productRepo:   productRepo,
		publisher:     publisher,
	}
}

// OrderItemInput represents one line of an order request
type OrderItemInput struct {
	ProductID uuid.UUID
	Quantity  int
	// UnitPrice overrides the product's selling price when positive
	UnitPrice numeric.Amount
}

// CreateOrderInput represents the create order input
type CreateOrderInput struct {
	UserID        uuid.UUID
	CustomerName  string
	CustomerPhone string
	OrderDate     time.Time
	PaymentMethod enum.PaymentMethod
	TaxRate       int
	Paid          numeric.Amount
	TransactionID *string
	Items         []OrderItemInput
}

// CreateOrder creates a new order with its line items. Totals are
// computed server side: each line subtotal is quantity times unit price,
// the order subtotal is the sum of lines, tax applies the order's rate
// to the subtotal, and the status derives from total versus paid.
func (s *OrderService) CreateOrder(ctx context.Context, input *CreateOrderInput) (*entity.Order, error) {
	branchID, ok := infraRepo.GetBranchID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("Branch context required")
	}

	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("Order must contain at least one item")
	}
	if input.CustomerName == "" {
		return nil, apperror.NewBadRequestError("Customer name is required")
	}
	if !input.PaymentMethod.Valid() {
		return nil, apperror.NewBadRequestError("Invalid payment method")
	}
	if input.TaxRate < 0 || input.TaxRate > 100 {
		return nil, apperror.NewBadRequestError("Tax rate must be between 0 and 100")
	}

	// Batch fetch all products in one query (prevents N+1)
	productIDs := make([]uuid.UUID, len(input.Items))
	for i, item := range input.Items {
		productIDs[i] = item.ProductID
	}

	products, err := s.productRepo.GetByIDs(ctx, productIDs)
	if err != nil {
		return nil, err
	}

	productMap := make(map[uuid.UUID]*entity.Product, len(products))
	for i := range products {
		productMap[products[i].ID] = &products[i]
	}

	var subTotal int64
	var totalItems int
	orderItems := make([]entity.OrderItem, 0, len(input.Items))
	stockDecrements := make(map[uuid.UUID]int)

	for _, item := range input.Items {
		product, exists := productMap[item.ProductID]
		if !exists {
			return nil, apperror.NewNotFoundError(fmt.Sprintf("Product %s", item.ProductID))
		}
		if item.Quantity <= 0 {
			return nil, apperror.NewBadRequestError(fmt.Sprintf("Quantity for %s must be positive", product.Name))
		}

		unitPrice := product.SellingPrice
		if item.UnitPrice > 0 {
			unitPrice = item.UnitPrice.Cents()
		}

		itemTotal := unitPrice * int64(item.Quantity)
		subTotal += itemTotal
		totalItems += item.Quantity

		orderItems = append(orderItems, entity.OrderItem{
			ProductID:   item.ProductID,
			ProductName: product.Name,
			SKU:         product.SKU,
			Quantity:    item.Quantity,
			UnitPrice:   unitPrice,
			SubTotal:    itemTotal,
		})

		// Quantities for the same product accumulate across lines
		stockDecrements[product.ID] += item.Quantity
	}

	// Atomically decrement stock - this is race-condition safe.
	// If any product has insufficient stock, the entire operation fails.
	failedIDs, err := s.productRepo.AtomicDecrementBatch(ctx, stockDecrements)
	if err != nil {
		return nil, err
	}

	if len(failedIDs) > 0 {
		var failedNames []string
		for _, id := range failedIDs {
			if product, exists := productMap[id]; exists {
				failedNames = append(failedNames, product.Name)
			}
		}
		return nil, apperror.NewInsufficientStockError(failedNames)
	}

	taxAmount := subTotal * int64(input.TaxRate) / 100
	total := subTotal + taxAmount
	paid := input.Paid.Cents()
	due := total - paid
	if due < 0 {
		due = 0
	}

	orderDate := input.OrderDate
	if orderDate.IsZero() {
		orderDate = time.Now()
	}

	order := &entity.Order{
		BranchID:      branchID,
		UserID:        input.UserID,
		InvoiceNo:     utils.GenerateInvoiceNo(),
		CustomerName:  input.CustomerName,
		CustomerPhone: input.CustomerPhone,
		OrderDate:     orderDate,
		TotalItems:    totalItems,
		SubTotal:      subTotal,
		TaxRate:       input.TaxRate,
		TaxAmount:     taxAmount,
		Total:         total,
		Paid:          paid,
		Due:           due,
		Status:        enum.ForPayment(total, paid),
		PaymentMethod: input.PaymentMethod,
		TransactionID: input.TransactionID,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		// Stock was already decremented - restore it
		_ = s.productRepo.AtomicIncrementBatch(ctx, stockDecrements)
		return nil, err
	}

	for i := range orderItems {
		orderItems[i].OrderID = order.ID
	}

	if err := s.orderItemRepo.CreateBatch(ctx, orderItems); err != nil {
		// Restore stock on failure
		_ = s.productRepo.AtomicIncrementBatch(ctx, stockDecrements)
		return nil, err
	}

	created, err := s.orderRepo.GetWithItems(ctx, order.ID)
	if err != nil {
		return nil, err
	}

	s.publisher.Publish(ctx, events.EventOrderCreated, order.InvoiceNo, created)
	return created, nil
}

// UpdateOrderInput represents the update order input. Nil fields keep
// their current values; a non-nil Items slice replaces the line items.
type UpdateOrderInput struct {
	CustomerName  *string
	CustomerPhone *string
	OrderDate     *time.Time
	PaymentMethod *enum.PaymentMethod
	TaxRate       *int
	Paid          *numeric.Amount
	TransactionID *string
	Items         []OrderItemInput
}

// UpdateOrder updates an order's header fields and optionally replaces
// its line items. Replacing items restores the previously sold stock and
// decrements the new quantities. Totals and status are recomputed server
// side the same way CreateOrder computes them.
func (s *OrderService) UpdateOrder(ctx context.Context, id uuid.UUID, input *UpdateOrderInput) (*entity.Order, error) {
	order, err := s.orderRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}

	if input.CustomerName != nil {
		if *input.CustomerName == "" {
			return nil, apperror.NewBadRequestError("Customer name is required")
		}
		order.CustomerName = *input.CustomerName
	}
	if input.CustomerPhone != nil {
		order.CustomerPhone = *input.CustomerPhone
	}
	if input.OrderDate != nil {
		order.OrderDate = *input.OrderDate
	}
	if input.PaymentMethod != nil {
		if !input.PaymentMethod.Valid() {
			return nil, apperror.NewBadRequestError("Invalid payment method")
		}
		order.PaymentMethod = *input.PaymentMethod
	}
	if input.TaxRate != nil {
		if *input.TaxRate < 0 || *input.TaxRate > 100 {
			return nil, apperror.NewBadRequestError("Tax rate must be between 0 and 100")
		}
		order.TaxRate = *input.TaxRate
	}
	if input.TransactionID != nil {
		order.TransactionID = input.TransactionID
	}

	if input.Items != nil {
		if len(input.Items) == 0 {
			return nil, apperror.NewBadRequestError("Order must contain at least one item")
		}

		productIDs := make([]uuid.UUID, len(input.Items))
		for i, item := range input.Items {
			productIDs[i] = item.ProductID
		}

		products, err := s.productRepo.GetByIDs(ctx, productIDs)
		if err != nil {
			return nil, err
		}

		productMap := make(map[uuid.UUID]*entity.Product, len(products))
		for i := range products {
			productMap[products[i].ID] = &products[i]
		}

		var subTotal int64
		var totalItems int
		orderItems := make([]entity.OrderItem, 0, len(input.Items))
		stockDecrements := make(map[uuid.UUID]int)

		for _, item := range input.Items {
			product, exists := productMap[item.ProductID]
			if !exists {
				return nil, apperror.NewNotFoundError(fmt.Sprintf("Product %s", item.ProductID))
			}
			if item.Quantity <= 0 {
				return nil, apperror.NewBadRequestError(fmt.Sprintf("Quantity for %s must be positive", product.Name))
			}

			unitPrice := product.SellingPrice
			if item.UnitPrice > 0 {
				unitPrice = item.UnitPrice.Cents()
			}

			itemTotal := unitPrice * int64(item.Quantity)
			subTotal += itemTotal
			totalItems += item.Quantity

			orderItems = append(orderItems, entity.OrderItem{
				OrderID:     order.ID,
				ProductID:   item.ProductID,
				ProductName: product.Name,
				SKU:         product.SKU,
				Quantity:    item.Quantity,
				UnitPrice:   unitPrice,
				SubTotal:    itemTotal,
			})

			stockDecrements[product.ID] += item.Quantity
		}

		// Restore the previously sold stock before taking the new quantities
		stockIncrements := make(map[uuid.UUID]int)
		for _, item := range order.Items {
			stockIncrements[item.ProductID] += item.Quantity
		}
		if err := s.productRepo.AtomicIncrementBatch(ctx, stockIncrements); err != nil {
			return nil, err
		}

		failedIDs, err := s.productRepo.AtomicDecrementBatch(ctx, stockDecrements)
		if err != nil {
			_, _ = s.productRepo.AtomicDecrementBatch(ctx, stockIncrements)
			return nil, err
		}
		if len(failedIDs) > 0 {
			// Roll the restoration back so the order's stock stays reserved
			_, _ = s.productRepo.AtomicDecrementBatch(ctx, stockIncrements)
			var failedNames []string
			for _, fid := range failedIDs {
				if product, exists := productMap[fid]; exists {
					failedNames = append(failedNames, product.Name)
				}
			}
			return nil, apperror.NewInsufficientStockError(failedNames)
		}

		if err := s.orderItemRepo.DeleteByOrderID(ctx, order.ID); err != nil {
			return nil, err
		}
		if err := s.orderItemRepo.CreateBatch(ctx, orderItems); err != nil {
			return nil, err
		}

		order.SubTotal = subTotal
		order.TotalItems = totalItems
	}

	order.TaxAmount = order.SubTotal * int64(order.TaxRate) / 100
	order.Total = order.SubTotal + order.TaxAmount
	if input.Paid != nil {
		order.Paid = input.Paid.Cents()
	}
	order.Due = order.Total - order.Paid
	if order.Due < 0 {
		order.Due = 0
	}
	order.Status = enum.ForPayment(order.Total, order.Paid)

	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	updated, err := s.orderRepo.GetWithItems(ctx, order.ID)
	if err != nil {
		return nil, err
	}

	s.publisher.Publish(ctx, events.EventOrderUpdated, order.InvoiceNo, updated)
	return updated, nil
}

// GetOrder retrieves an order with its items
func (s *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// GetOrderByInvoiceNo retrieves an order by its invoice number
func (s *OrderService) GetOrderByInvoiceNo(ctx context.Context, invoiceNo string) (*entity.Order, error) {
	order, err := s.orderRepo.GetByInvoiceNo(ctx, invoiceNo)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// ListOrders lists orders with filtering
func (s *OrderService) ListOrders(ctx context.Context, params *repository.OrderFilterParams) (*pagination.PaginatedResult[entity.Order], error) {
	orders, total, err := s.orderRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(orders, pag), nil
}

// ListOrdersWithCursor lists orders with cursor-based pagination
func (s *OrderService) ListOrdersWithCursor(ctx context.Context, params *repository.OrderCursorFilterParams) (*pagination.CursorPaginatedResult[entity.Order], error) {
	orders, err := s.orderRepo.ListWithCursor(ctx, params)
	if err != nil {
		return nil, err
	}

	hasPrev := params.Cursor.Cursor != ""

	cursorPag, items := pagination.NewCursorPagination(orders, params.Cursor.Limit,
		func(o entity.Order) string { return o.ID.String() },
		func(o entity.Order) time.Time { return o.CreatedAt },
	)
	cursorPag.HasPrev = hasPrev

	return pagination.NewCursorPaginatedResult(items, cursorPag), nil
}

// GetDueOrders returns orders with outstanding dues
func (s *OrderService) GetDueOrders(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Order], error) {
	orders, total, err := s.orderRepo.GetDueOrders(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(orders, pag), nil
}

// PayDue records a payment towards an order's due amount. The status is
// re-derived from the updated paid total.
func (s *OrderService) PayDue(ctx context.Context, orderID uuid.UUID, amount numeric.Amount) (*entity.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}

	amountCents := amount.Cents()
	if amountCents <= 0 {
		return nil, apperror.NewBadRequestError("Payment amount must be positive")
	}
	if amountCents > order.Due {
		return nil, apperror.NewBadRequestError("Payment exceeds outstanding due")
	}

	order.Paid += amountCents
	order.Due = order.Total - order.Paid
	if order.Due < 0 {
		order.Due = 0
	}
	order.Status = enum.ForPayment(order.Total, order.Paid)

	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	s.publisher.Publish(ctx, events.EventOrderUpdated, order.InvoiceNo, order)
	return order, nil
}

// DeleteOrder soft-deletes an order and restores the sold stock
func (s *OrderService) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	order, err := s.orderRepo.GetWithItems(ctx, id)
	if err != nil {
		return err
	}
	if order == nil {
		return apperror.NewNotFoundError("Order")
	}

	// Build increment map for stock restoration
	stockIncrements := make(map[uuid.UUID]int)
	for _, item := range order.Items {
		stockIncrements[item.ProductID] += item.Quantity
	}

	if err := s.productRepo.AtomicIncrementBatch(ctx, stockIncrements); err != nil {
		return err
	}

	if err := s.orderRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.publisher.Publish(ctx, events.EventOrderDeleted, order.InvoiceNo, order)
	return nil
}
