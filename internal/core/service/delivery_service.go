package service

import (
	"context"
	"time"

	"github.com/tontonjojo/chez-leonie/internal/core/domain"
	"github.com/tontonjojo/chez-leonie/internal/port"
)

// DeliveryService reads the order log and performs the single legal state
// transition: pending -> delivered. Delivered is terminal.
type DeliveryService struct {
	orders port.Collection[[]domain.Order]
}

func NewDeliveryService(orders port.Collection[[]domain.Order]) *DeliveryService {
	return &DeliveryService{orders: orders}
}

// ListPending returns pending orders, most recent first.
func (s *DeliveryService) ListPending(ctx context.Context) []domain.Order {
	return s.filter(ctx, domain.OrderStatusPending)
}

// ListDelivered returns delivered orders, most recent first. Callers may cap
// how many they display; the list itself is unbounded.
func (s *DeliveryService) ListDelivered(ctx context.Context) []domain.Order {
	return s.filter(ctx, domain.OrderStatusDelivered)
}

// Get looks up a single order by id.
func (s *DeliveryService) Get(ctx context.Context, orderID string) (domain.Order, bool) {
	for _, order := range s.orders.Load(ctx, nil) {
		if order.ID == orderID {
			return order, true
		}
	}
	return domain.Order{}, false
}

// MarkDelivered transitions a pending order to delivered and stamps
// DeliveredAt. Unknown ids and already-delivered orders are no-ops, which
// makes the call idempotent. There is no way back to pending.
func (s *DeliveryService) MarkDelivered(ctx context.Context, orderID string) bool {
	log := s.orders.Load(ctx, nil)
	for i, order := range log {
		if order.ID != orderID {
			continue
		}
		if order.Status != domain.OrderStatusPending {
			return false
		}

		now := time.Now()
		log[i].Status = domain.OrderStatusDelivered
		log[i].DeliveredAt = &now
		s.orders.Save(ctx, log)
		return true
	}

	return false
}

func (s *DeliveryService) filter(ctx context.Context, status domain.OrderStatus) []domain.Order {
	var out []domain.Order
	for _, order := range s.orders.Load(ctx, nil) {
		if order.Status == status {
			out = append(out, order)
		}
	}
	return out
}
