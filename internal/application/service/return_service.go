package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/stockify/stockify-api/internal/domain/entity"
	"github.com/stockify/stockify-api/internal/domain/repository"
	"github.com/stockify/stockify-api/internal/infrastructure/events"
	infraRepo "github.com/stockify/stockify-api/internal/infrastructure/repository"
	"github.com/stockify/stockify-api/pkg/apperror"
	"github.com/stockify/stockify-api/pkg/pagination"
)

// ReturnService handles product returns against prior orders.
// Returns are immutable once created.
type ReturnService struct {
	returnRepo     repository.ReturnRepository
	returnItemRepo repository.ReturnItemRepository
	orderRepo      repository.OrderRepository
	productRepo    repository.ProductRepository
	publisher      events.Publisher
}

// NewReturnService creates a new return service
func NewReturnService(
	returnRepo repository.ReturnRepository,
	returnItemRepo repository.ReturnItemRepository,
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	publisher events.Publisher,
) *ReturnService {
	return &ReturnService{
		returnRepo:     returnRepo,
		returnItemRepo: returnItemRepo,
		orderRepo:      orderRepo,
		productRepo:    productRepo,
		publisher:      publisher,
	}
}

// ReturnItemInput represents one returned line
type ReturnItemInput struct {
	ProductID uuid.UUID
	Quantity  int
}

// CreateReturnInput represents the create return input
type CreateReturnInput struct {
	UserID  uuid.UUID
	OrderID uuid.UUID
	Reason  *string
	Items   []ReturnItemInput
}

// CreateReturn registers a return against an order. Refund amounts use
// the unit prices the order was sold at, and tax is recomputed from the
// order's original tax rate. Returned quantity per product can never
// exceed what the order sold minus what earlier returns already took
// back. Stock is restored for every returned unit.
func (s *ReturnService) CreateReturn(ctx context.Context, input *CreateReturnInput) (*entity.Return, error) {
	branchID, ok := infraRepo.GetBranchID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("Branch context required")
	}

	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("Return must contain at least one item")
	}

	order, err := s.orderRepo.GetWithItems(ctx, input.OrderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}

	// Sold quantity and sale price per product
	soldQty := make(map[uuid.UUID]int, len(order.Items))
	soldItem := make(map[uuid.UUID]*entity.OrderItem, len(order.Items))
	for i := range order.Items {
		item := &order.Items[i]
		soldQty[item.ProductID] += item.Quantity
		soldItem[item.ProductID] = item
	}

	// Subtract quantities already returned
	previous, err := s.returnRepo.GetByOrderID(ctx, input.OrderID)
	if err != nil {
		return nil, err
	}
	for i := range previous {
		for _, item := range previous[i].Items {
			soldQty[item.ProductID] -= item.Quantity
		}
	}

	var subTotal int64
	returnItems := make([]entity.ReturnItem, 0, len(input.Items))
	stockIncrements := make(map[uuid.UUID]int)

	for _, item := range input.Items {
		sold, ok := soldItem[item.ProductID]
		if !ok {
			return nil, apperror.NewBadRequestError(fmt.Sprintf("Product %s is not part of this order", item.ProductID))
		}
		if item.Quantity <= 0 {
			return nil, apperror.NewBadRequestError(fmt.Sprintf("Quantity for %s must be positive", sold.ProductName))
		}
		if item.Quantity > soldQty[item.ProductID] {
			return nil, apperror.NewBadRequestError(fmt.Sprintf("Return quantity for %s exceeds remaining sold quantity", sold.ProductName))
		}
		soldQty[item.ProductID] -= item.Quantity

		itemTotal := sold.UnitPrice * int64(item.Quantity)
		subTotal += itemTotal

		returnItems = append(returnItems, entity.ReturnItem{
			ProductID:   item.ProductID,
			ProductName: sold.ProductName,
			SKU:         sold.SKU,
			Quantity:    item.Quantity,
			UnitPrice:   sold.UnitPrice,
			SubTotal:    itemTotal,
		})

		stockIncrements[item.ProductID] += item.Quantity
	}

	taxAmount := subTotal * int64(order.TaxRate) / 100
	total := subTotal + taxAmount

	ret := &entity.Return{
		OrderID:   order.ID,
		BranchID:  branchID,
		UserID:    input.UserID,
		InvoiceNo: order.InvoiceNo,
		Reason:    input.Reason,
		SubTotal:  subTotal,
		TaxAmount: taxAmount,
		Total:     total,
	}

	if err := s.returnRepo.Create(ctx, ret); err != nil {
		return nil, err
	}

	for i := range returnItems {
		returnItems[i].ReturnID = ret.ID
	}

	if err := s.returnItemRepo.CreateBatch(ctx, returnItems); err != nil {
		return nil, err
	}

	// Returned units go back to stock
	if err := s.productRepo.AtomicIncrementBatch(ctx, stockIncrements); err != nil {
		return nil, err
	}

	created, err := s.returnRepo.GetWithItems(ctx, ret.ID)
	if err != nil {
		return nil, err
	}

	s.publisher.Publish(ctx, events.EventReturnCreated, order.InvoiceNo, created)
	return created, nil
}

// GetReturn retrieves a return with its items
func (s *ReturnService) GetReturn(ctx context.Context, id uuid.UUID) (*entity.Return, error) {
	ret, err := s.returnRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if ret == nil {
		return nil, apperror.NewNotFoundError("Return")
	}
	return ret, nil
}

// ListReturns lists returns with filtering
func (s *ReturnService) ListReturns(ctx context.Context, params *repository.ReturnFilterParams) (*pagination.PaginatedResult[entity.Return], error) {
	returns, total, err := s.returnRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(returns, pag), nil
}

// GetOrderReturns lists the returns raised against one order
func (s *ReturnService) GetOrderReturns(ctx context.Context, orderID uuid.UUID) ([]entity.Return, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return s.returnRepo.GetByOrderID(ctx, orderID)
}
