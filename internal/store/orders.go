package store

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/vintage-books/internal/domain"
	"github.com/spec-kit/vintage-books/internal/events"
	"github.com/spec-kit/vintage-books/pkg/util"
)

// CreateOrder builds an order for the session user, snapshotting purchaser
// identity, shipping address and items at call time, then clears the cart.
// Caller-supplied totals are trusted verbatim per the legacy contract; the
// trusted path prices them with the checkout package first.
func (s *Store) CreateOrder(ctx context.Context, input domain.OrderInput) (domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.GetCurrentUser(ctx)
	if err != nil {
		return domain.Order{}, err
	}
	if current == nil {
		return domain.Order{}, util.NewNotLoggedIn()
	}

	orders, err := readCollection[domain.Order](ctx, s, KeyOrders)
	if err != nil {
		return domain.Order{}, err
	}

	now := s.now()
	order := domain.Order{
		ID:          s.newID(),
		OrderNumber: s.GenerateOrderNumber(),
		UserID:      current.ID,
		UserName:    current.FullName,
		UserEmail:   current.Email,
		ShippingAddress: domain.ShippingAddress{
			FullName:   fallback(input.FullName, current.FullName),
			Phone:      fallback(input.Phone, current.Phone),
			Address:    fallback(input.Address, current.Address),
			City:       fallback(input.City, current.City),
			PostalCode: fallback(input.PostalCode, current.PostalCode),
		},
		Items:         append([]domain.OrderItem{}, input.Items...),
		Subtotal:      input.Subtotal,
		ShippingCost:  input.ShippingCost,
		Tax:           input.Tax,
		Total:         input.Total,
		PaymentMethod: fallback(input.PaymentMethod, "transfer"),
		PaymentStatus: domain.PaymentStatusPending,
		OrderStatus:   domain.OrderStatusPending,
		Notes:         input.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	orders = append(orders, order)
	if err := writeCollection(ctx, s, KeyOrders, orders); err != nil {
		return domain.Order{}, err
	}

	// Checkout empties the cart.
	if err := writeCollection(ctx, s, KeyCart, []domain.CartItem{}); err != nil {
		return domain.Order{}, err
	}

	s.logger.Info("order created",
		zap.String("order_id", order.ID),
		zap.String("order_number", order.OrderNumber),
		zap.Int64("total", order.Total))
	s.publish(ctx, events.Event{
		Type:   events.EventOrderCreated,
		UserID: order.UserID,
		Payload: events.OrderCreatedPayload{
			OrderID:     order.ID,
			OrderNumber: order.OrderNumber,
			Total:       order.Total,
			ItemCount:   len(order.Items),
		},
	})

	return order, nil
}

// GetOrders returns every order.
func (s *Store) GetOrders(ctx context.Context) ([]domain.Order, error) {
	return readCollection[domain.Order](ctx, s, KeyOrders)
}

// GetUserOrders filters orders by purchaser.
func (s *Store) GetUserOrders(ctx context.Context, userID string) ([]domain.Order, error) {
	orders, err := readCollection[domain.Order](ctx, s, KeyOrders)
	if err != nil {
		return nil, err
	}
	out := []domain.Order{}
	for _, o := range orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

// GetMyOrders returns the session user's orders, or an empty sequence when
// logged out.
func (s *Store) GetMyOrders(ctx context.Context) ([]domain.Order, error) {
	current, err := s.GetCurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return []domain.Order{}, nil
	}
	return s.GetUserOrders(ctx, current.ID)
}

// GetOrderByID looks up one order.
func (s *Store) GetOrderByID(ctx context.Context, id string) (domain.Order, error) {
	orders, err := readCollection[domain.Order](ctx, s, KeyOrders)
	if err != nil {
		return domain.Order{}, err
	}
	for _, o := range orders {
		if o.ID == id {
			return o, nil
		}
	}
	return domain.Order{}, util.NewNotFound("order", map[string]any{"order_id": id})
}

// UpdateOrderStatus sets the fulfillment status and stamps updatedAt. Any
// status string is accepted; the known lifecycle is advisory.
func (s *Store) UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus) (domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders, err := readCollection[domain.Order](ctx, s, KeyOrders)
	if err != nil {
		return domain.Order{}, err
	}

	idx := -1
	for i := range orders {
		if orders[i].ID == orderID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return domain.Order{}, util.NewNotFound("order", map[string]any{"order_id": orderID})
	}

	oldStatus := orders[idx].OrderStatus
	orders[idx].OrderStatus = status
	orders[idx].UpdatedAt = s.now()

	if err := writeCollection(ctx, s, KeyOrders, orders); err != nil {
		return domain.Order{}, err
	}

	s.publish(ctx, events.Event{
		Type:   events.EventOrderStatusChanged,
		UserID: orders[idx].UserID,
		Payload: events.OrderStatusChangedPayload{
			OrderID:     orders[idx].ID,
			OrderNumber: orders[idx].OrderNumber,
			OldStatus:   oldStatus,
			NewStatus:   status,
		},
	})

	return orders[idx], nil
}

func fallback(value, def string) string {
	if value != "" {
		return value
	}
	return def
}
