package service

import (
	"context"
	"testing"
	"time"

	"github.com/tontonjojo/chez-leonie/internal/core/domain"
)

func seedOrders(t *testing.T) (*mockCollection[[]domain.Order], *DeliveryService, domain.Order, domain.Order) {
	t.Helper()

	orders := &mockCollection[[]domain.Order]{}
	composer := NewOrderService(orders, 10)
	defer composer.Close()
	ctx := context.Background()

	composer.AddToDraft(pizza())
	older, err := composer.Finalize(ctx)
	if err != nil {
		t.Fatalf("seed finalize failed: %v", err)
	}

	composer.AddToDraft(salade())
	newer, err := composer.Finalize(ctx)
	if err != nil {
		t.Fatalf("seed finalize failed: %v", err)
	}

	return orders, NewDeliveryService(orders), older, newer
}

func TestListPending(t *testing.T) {
	_, svc, older, newer := seedOrders(t)

	pending := svc.ListPending(context.Background())
	if len(pending) != 2 {
		t.Fatalf("expected 2 pending orders, got %d", len(pending))
	}
	if pending[0].ID != newer.ID || pending[1].ID != older.ID {
		t.Error("expected most-recent-first ordering")
	}
}

func TestMarkDelivered(t *testing.T) {
	_, svc, older, _ := seedOrders(t)
	ctx := context.Background()

	before := time.Now()
	if !svc.MarkDelivered(ctx, older.ID) {
		t.Fatal("expected transition to happen")
	}

	got, ok := svc.Get(ctx, older.ID)
	if !ok {
		t.Fatal("expected order still in log")
	}
	if got.Status != domain.OrderStatusDelivered {
		t.Errorf("expected delivered status, got %s", got.Status)
	}
	if got.DeliveredAt == nil {
		t.Fatal("expected DeliveredAt set")
	}
	if got.DeliveredAt.Before(got.CreatedAt) {
		t.Error("expected DeliveredAt >= CreatedAt")
	}
	if got.DeliveredAt.Before(before.Truncate(time.Second)) {
		t.Error("expected DeliveredAt stamped now")
	}
	if got.Total != older.Total {
		t.Errorf("expected total frozen at %v, got %v", older.Total, got.Total)
	}

	pending := svc.ListPending(ctx)
	delivered := svc.ListDelivered(ctx)
	if len(pending) != 1 || len(delivered) != 1 {
		t.Errorf("expected 1 pending and 1 delivered, got %d and %d", len(pending), len(delivered))
	}
}

func TestMarkDelivered_Idempotent(t *testing.T) {
	orders, svc, older, _ := seedOrders(t)
	ctx := context.Background()

	svc.MarkDelivered(ctx, older.ID)
	first, _ := svc.Get(ctx, older.ID)
	savesAfterFirst := orders.saveCount

	if svc.MarkDelivered(ctx, older.ID) {
		t.Error("expected second call to be a no-op")
	}

	second, _ := svc.Get(ctx, older.ID)
	if !second.DeliveredAt.Equal(*first.DeliveredAt) {
		t.Error("expected DeliveredAt unchanged by second call")
	}
	if orders.saveCount != savesAfterFirst {
		t.Error("expected no save on the no-op call")
	}
}

func TestMarkDelivered_UnknownID(t *testing.T) {
	orders, svc, _, _ := seedOrders(t)
	savesBefore := orders.saveCount

	if svc.MarkDelivered(context.Background(), "no-such-order") {
		t.Error("expected no-op for unknown id")
	}
	if orders.saveCount != savesBefore {
		t.Error("expected no save for unknown id")
	}
}

func TestGet(t *testing.T) {
	_, svc, older, _ := seedOrders(t)

	got, ok := svc.Get(context.Background(), older.ID)
	if !ok || got.ID != older.ID {
		t.Errorf("expected to find order %s", older.ID)
	}

	if _, ok := svc.Get(context.Background(), "no-such-order"); ok {
		t.Error("expected ok=false for unknown id")
	}
}
