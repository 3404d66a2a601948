package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/artesania/storefront-api/internal/api/metrics"
	"github.com/artesania/storefront-api/internal/core/domain"
	"github.com/artesania/storefront-api/internal/core/ports"
)

// OrderService implements owner-scoped order reads and writes.
type OrderService struct {
	repo   ports.OrderRepository
	logger zerolog.Logger
}

func NewOrderService(repo ports.OrderRepository, logger zerolog.Logger) *OrderService {
	return &OrderService{repo: repo, logger: logger}
}

// GetOrder retrieves a single order. The repository query is constrained
// to (owner, id) so an order of another account is indistinguishable from
// a missing one.
func (s *OrderService) GetOrder(ctx context.Context, input ports.GetOrderInput) (*ports.OrderDetail, error) {
	order, err := s.repo.FindByOwnerAndID(ctx, input.Owner, input.OrderID)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		s.logger.Error().Err(err).Str("order_id", input.OrderID).Msg("order lookup failed")
		return nil, err
	}
	return toOrderDetail(order), nil
}

// ListOrders returns every order of the owner. An owner without orders
// gets an empty slice, not an error.
func (s *OrderService) ListOrders(ctx context.Context, input ports.ListOrdersInput) ([]ports.OrderDetail, error) {
	orders, err := s.repo.ListByOwner(ctx, input.Owner, input.IncludeItems)
	if err != nil {
		s.logger.Error().Err(err).Str("owner", input.Owner).Msg("order list failed")
		return nil, err
	}

	details := make([]ports.OrderDetail, 0, len(orders))
	for i := range orders {
		details = append(details, *toOrderDetail(&orders[i]))
	}
	return details, nil
}

// CreateOrder validates the input, stamps the owner, and persists the
// order through stage + commit. A commit failure means nothing was
// created.
func (s *OrderService) CreateOrder(ctx context.Context, input ports.CreateOrderInput) (*ports.OrderDetail, error) {
	if input.Owner == "" || input.Number == "" || len(input.Items) == 0 {
		return nil, domain.ErrInvalidRequest
	}
	for _, item := range input.Items {
		if item.ProductID == "" || item.Quantity <= 0 {
			return nil, domain.ErrInvalidRequest
		}
	}

	createdAt := input.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	order := &domain.Order{
		ID:        uuid.NewString(),
		Owner:     input.Owner,
		Number:    input.Number,
		CreatedAt: createdAt,
		Items:     make([]domain.OrderItem, 0, len(input.Items)),
	}
	for _, item := range input.Items {
		order.Items = append(order.Items, domain.OrderItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
		})
	}

	if err := s.repo.Stage(ctx, order); err != nil {
		s.logger.Error().Err(err).Str("owner", input.Owner).Msg("failed to stage order")
		return nil, err
	}
	if err := s.repo.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Str("owner", input.Owner).Msg("order commit failed")
		return nil, err
	}

	metrics.OrdersCreatedTotal.Inc()
	s.logger.Info().Str("order_id", order.ID).Str("owner", order.Owner).Msg("order created")

	return toOrderDetail(order), nil
}

func toOrderDetail(order *domain.Order) *ports.OrderDetail {
	detail := &ports.OrderDetail{
		ID:        order.ID,
		Number:    order.Number,
		CreatedAt: order.CreatedAt,
		Total:     order.Total(),
		Items:     make([]ports.OrderItemDetail, 0, len(order.Items)),
	}
	for _, item := range order.Items {
		detail.Items = append(detail.Items, ports.OrderItemDetail{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
		})
	}
	return detail
}
