package service

import (
	"context"

	"github.com/tontonjojo/chez-leonie/internal/core/domain"
	"github.com/tontonjojo/chez-leonie/internal/port"
)

// ResetService wipes whole collections. All operations are unconditional
// and irreversible; confirmation is the caller's job.
type ResetService struct {
	items  port.Collection[[]domain.MenuItem]
	orders port.Collection[[]domain.Order]
}

func NewResetService(items port.Collection[[]domain.MenuItem], orders port.Collection[[]domain.Order]) *ResetService {
	return &ResetService{items: items, orders: orders}
}

// ClearCatalog empties the menu catalog. The order log is untouched.
func (s *ResetService) ClearCatalog(ctx context.Context) {
	s.items.Save(ctx, []domain.MenuItem{})
}

// ClearOrders empties the order log. The catalog is untouched.
func (s *ResetService) ClearOrders(ctx context.Context) {
	s.orders.Save(ctx, []domain.Order{})
}

// ClearAll empties both collections.
func (s *ResetService) ClearAll(ctx context.Context) {
	s.ClearCatalog(ctx)
	s.ClearOrders(ctx)
}
