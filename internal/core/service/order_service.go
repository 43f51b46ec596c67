package service

import (
	"context"
	"errors"
	"time"

	"github.com/tontonjojo/chez-leonie/internal/core/domain"
	"github.com/tontonjojo/chez-leonie/internal/port"
)

var ErrEmptyDraft = errors.New("draft has no items")

// OrderService composes a draft order from catalog selections and finalizes
// it into the persisted order log. The draft lives only in memory; nothing
// is written until Finalize. One draft, one user: callers dispatch
// operations sequentially, the service does not lock.
type OrderService struct {
	orders port.Collection[[]domain.Order]
	draft  []domain.OrderItem
	events chan domain.Order
}

func NewOrderService(orders port.Collection[[]domain.Order], eventBuffer int) *OrderService {
	return &OrderService{
		orders: orders,
		events: make(chan domain.Order, eventBuffer),
	}
}

// AddToDraft adds one portion of the given dish. A dish already in the
// draft gets its quantity bumped; the existing line keeps its id so that
// line-level operations (quantity edits, removal) stay stable.
func (s *OrderService) AddToDraft(item domain.MenuItem) {
	for i, line := range s.draft {
		if line.MenuItem.ID == item.ID {
			s.draft[i].Quantity++
			return
		}
	}

	s.draft = append(s.draft, domain.NewOrderItem(item, time.Now()))
}

// SetQuantity sets the quantity of the draft line with the given id.
// Anything below 1 removes the line; an unknown id is a no-op.
func (s *OrderService) SetQuantity(lineID string, quantity int) {
	if quantity <= 0 {
		kept := s.draft[:0]
		for _, line := range s.draft {
			if line.ID != lineID {
				kept = append(kept, line)
			}
		}
		s.draft = kept
		return
	}

	for i, line := range s.draft {
		if line.ID == lineID {
			s.draft[i].Quantity = quantity
			return
		}
	}
}

// ClearDraft discards the draft without touching the order log.
func (s *OrderService) ClearDraft() {
	s.draft = nil
}

// Draft returns a copy of the current draft lines in insertion order.
func (s *OrderService) Draft() []domain.OrderItem {
	out := make([]domain.OrderItem, len(s.draft))
	copy(out, s.draft)
	return out
}

// Total is recomputed from the draft on every call; it is only frozen into
// an order at Finalize time.
func (s *OrderService) Total() float64 {
	total := 0.0
	for _, line := range s.draft {
		total += line.LineTotal()
	}
	return total
}

// Finalize freezes the draft into a pending order, prepends it to the order
// log (most-recent-first), clears the draft and announces the order on the
// events channel. An empty draft is rejected with ErrEmptyDraft.
func (s *OrderService) Finalize(ctx context.Context) (domain.Order, error) {
	if len(s.draft) == 0 {
		return domain.Order{}, ErrEmptyDraft
	}

	items := make([]domain.OrderItem, len(s.draft))
	copy(items, s.draft)

	order := domain.NewOrder(items, s.Total(), time.Now())

	log := s.orders.Load(ctx, nil)
	log = append([]domain.Order{order}, log...)
	s.orders.Save(ctx, log)

	s.draft = nil

	select {
	case s.events <- order:
	default:
		// slow or absent consumer must not block order taking
	}

	return order, nil
}

// Events delivers each finalized order once, for downstream notification.
func (s *OrderService) Events() <-chan domain.Order {
	return s.events
}

func (s *OrderService) Close() {
	close(s.events)
}
