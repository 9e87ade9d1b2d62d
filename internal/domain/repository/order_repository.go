package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stockify/stockify-api/internal/domain/entity"
	"github.com/stockify/stockify-api/internal/domain/enum"
	"github.com/stockify/stockify-api/pkg/pagination"
)

// OrderRepository defines the interface for order data operations
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	GetByInvoiceNo(ctx context.Context, invoiceNo string) (*entity.Order, error)
	Update(ctx context.Context, order *entity.Order) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *OrderFilterParams) ([]entity.Order, int64, error)
	ListWithCursor(ctx context.Context, params *OrderCursorFilterParams) ([]entity.Order, error)
	// ListInRange returns all orders with items preloaded whose order_date
	// falls inside the inclusive range, for the report aggregators. Nil
	// bounds are open.
	ListInRange(ctx context.Context, from, to *time.Time) ([]entity.Order, error)
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.OrderStatus) error
	GetDueOrders(ctx context.Context, params *pagination.PaginationParams) ([]entity.Order, int64, error)
}

// OrderFilterParams contains filtering parameters for order queries
type OrderFilterParams struct {
	Pagination    *pagination.PaginationParams
	Search        string
	Status        *enum.OrderStatus
	PaymentMethod *enum.PaymentMethod
	CustomerPhone string
	StartDate     *time.Time
	EndDate       *time.Time
	SortBy        string
	SortOrder     string
}

// OrderCursorFilterParams contains cursor-based filtering for order queries
type OrderCursorFilterParams struct {
	Cursor        *pagination.CursorParams
	Search        string
	Status        *enum.OrderStatus
	CustomerPhone string
	StartDate     *time.Time
	EndDate       *time.Time
}

// OrderItemRepository defines the interface for order line item operations
type OrderItemRepository interface {
	Create(ctx context.Context, item *entity.OrderItem) error
	CreateBatch(ctx context.Context, items []entity.OrderItem) error
	GetByOrderID(ctx context.Context, orderID uuid.UUID) ([]entity.OrderItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByOrderID(ctx context.Context, orderID uuid.UUID) error
}

// ReturnRepository defines the interface for return data operations.
// Returns are immutable once created, so there is no Update.
type ReturnRepository interface {
	Create(ctx context.Context, ret *entity.Return) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Return, error)
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Return, error)
	GetByOrderID(ctx context.Context, orderID uuid.UUID) ([]entity.Return, error)
	List(ctx context.Context, params *ReturnFilterParams) ([]entity.Return, int64, error)
	// ListInRange returns all returns with items preloaded created inside
	// the inclusive range, for the report aggregators
	ListInRange(ctx context.Context, from, to *time.Time) ([]entity.Return, error)
}

// ReturnFilterParams contains filtering parameters for return queries
type ReturnFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	OrderID    *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
}

// ReturnItemRepository defines the interface for returned line item operations
type ReturnItemRepository interface {
	CreateBatch(ctx context.Context, items []entity.ReturnItem) error
	GetByReturnID(ctx context.Context, returnID uuid.UUID) ([]entity.ReturnItem, error)
}

// StockEntryRepository defines the interface for stock adjustment operations
type StockEntryRepository interface {
	Create(ctx context.Context, entry *entity.StockEntry) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.StockEntry, error)
	List(ctx context.Context, params *StockEntryFilterParams) ([]entity.StockEntry, int64, error)
}

// StockEntryFilterParams contains filtering parameters for stock entry queries
type StockEntryFilterParams struct {
	Pagination *pagination.PaginationParams
	ProductID  *uuid.UUID
	Type       *enum.StockEntryType
	StartDate  *time.Time
	EndDate    *time.Time
}
