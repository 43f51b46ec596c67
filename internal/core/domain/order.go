package domain

import (
	"fmt"
	"time"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusDelivered OrderStatus = "delivered"
)

// OrderItem is one line of an order. MenuItem is an embedded snapshot taken
// at composition time: later catalog edits never touch placed orders.
type OrderItem struct {
	ID       string   `json:"id"`
	MenuItem MenuItem `json:"menuItem"`
	Quantity int      `json:"quantity"`
}

// NewOrderItem snapshots a menu item into a fresh line with quantity 1.
// The line id combines the menu item id with a timestamp so that removing
// and re-adding the same dish later yields a distinct line.
func NewOrderItem(item MenuItem, now time.Time) OrderItem {
	return OrderItem{
		ID:       fmt.Sprintf("%s-%d", item.ID, now.UnixNano()),
		MenuItem: item,
		Quantity: 1,
	}
}

// LineTotal returns price x quantity for this line.
func (i OrderItem) LineTotal() float64 {
	return i.MenuItem.Price * float64(i.Quantity)
}

// Order is a finalized, persisted order. Total is computed once at finalize
// time and frozen; it is never recomputed from live catalog prices.
// DeliveredAt is set exactly when Status becomes delivered.
type Order struct {
	ID          string      `json:"id"`
	Items       []OrderItem `json:"items"`
	Total       float64     `json:"total"`
	Status      OrderStatus `json:"status"`
	CreatedAt   time.Time   `json:"createdAt"`
	DeliveredAt *time.Time  `json:"deliveredAt,omitempty"`
}

// NewOrder freezes the given lines into a pending order. Order ids are
// time-ordered so the log can be kept most-recent-first.
func NewOrder(items []OrderItem, total float64, now time.Time) Order {
	return Order{
		ID:        fmt.Sprintf("order-%d", now.UnixNano()),
		Items:     items,
		Total:     total,
		Status:    OrderStatusPending,
		CreatedAt: now,
	}
}

// Number is the short reference shown to the user (tail of the id).
func (o Order) Number() string {
	if len(o.ID) <= 6 {
		return o.ID
	}
	return o.ID[len(o.ID)-6:]
}

// ItemCount is the total quantity across all lines.
func (o Order) ItemCount() int {
	count := 0
	for _, item := range o.Items {
		count += item.Quantity
	}
	return count
}
