package ports

import (
	"context"
	"time"
)

// GetOrderInput carries the parameters for a single-order lookup.
// Owner is the principal resolved from the verified token, never a
// client-supplied field.
type GetOrderInput struct {
	Owner   string
	OrderID string
}

// ListOrdersInput carries the parameters for the order list.
type ListOrdersInput struct {
	Owner        string
	IncludeItems bool
}

// OrderItemInput is a single line item of a new order.
type OrderItemInput struct {
	ProductID   string
	ProductName string
	UnitPrice   float64
	Quantity    int
}

// CreateOrderInput carries all data needed to create a new order. Owner is
// stamped by the handler from the resolved principal.
type CreateOrderInput struct {
	Owner     string
	Number    string
	CreatedAt time.Time
	Items     []OrderItemInput
}

// OrderItemDetail is a line item in a returned order.
type OrderItemDetail struct {
	ProductID   string
	ProductName string
	UnitPrice   float64
	Quantity    int
}

// OrderDetail is the full order view returned by reads and creates.
type OrderDetail struct {
	ID        string
	Number    string
	CreatedAt time.Time
	Total     float64
	Items     []OrderItemDetail
}

// OrderService defines the owner-scoped use-case operations for orders.
type OrderService interface {
	GetOrder(ctx context.Context, input GetOrderInput) (*OrderDetail, error)
	ListOrders(ctx context.Context, input ListOrdersInput) ([]OrderDetail, error)
	CreateOrder(ctx context.Context, input CreateOrderInput) (*OrderDetail, error)
}
