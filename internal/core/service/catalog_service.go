package service

import (
	"context"
	"errors"
	"strings"

	"github.com/tontonjojo/chez-leonie/internal/core/domain"
	"github.com/tontonjojo/chez-leonie/internal/port"
)

var (
	ErrBlankName    = errors.New("menu item name is blank")
	ErrInvalidPrice = errors.New("menu item price must be positive")
)

// CatalogService owns the menu catalog. It is the only writer; other
// services read the catalog through it and snapshot items into orders.
type CatalogService struct {
	items port.Collection[[]domain.MenuItem]
}

func NewCatalogService(items port.Collection[[]domain.MenuItem]) *CatalogService {
	return &CatalogService{items: items}
}

// Items returns the catalog in display order.
func (s *CatalogService) Items(ctx context.Context) []domain.MenuItem {
	return s.items.Load(ctx, nil)
}

// Add appends a new dish to the catalog. A blank name or non-positive price
// rejects the call and leaves the catalog untouched.
func (s *CatalogService) Add(ctx context.Context, name string, price float64) (domain.MenuItem, error) {
	if err := validateItem(name, price); err != nil {
		return domain.MenuItem{}, err
	}

	item := domain.NewMenuItem(name, price)
	items := append(s.items.Load(ctx, nil), item)
	s.items.Save(ctx, items)

	return item, nil
}

// Update replaces the name and price of the dish with the given id, keeping
// its position. Same validation as Add; an unknown id is a no-op.
func (s *CatalogService) Update(ctx context.Context, id, name string, price float64) error {
	if err := validateItem(name, price); err != nil {
		return err
	}

	items := s.items.Load(ctx, nil)
	for i, item := range items {
		if item.ID == id {
			items[i].Name = strings.TrimSpace(name)
			items[i].Price = price
			s.items.Save(ctx, items)
			return nil
		}
	}

	return nil
}

// Remove deletes the dish with the given id. Removing an unknown id is a
// no-op. Orders already placed keep their embedded snapshots.
func (s *CatalogService) Remove(ctx context.Context, id string) {
	items := s.items.Load(ctx, nil)
	kept := items[:0]
	for _, item := range items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}

	if len(kept) == len(items) {
		return
	}
	s.items.Save(ctx, kept)
}

func validateItem(name string, price float64) error {
	if strings.TrimSpace(name) == "" {
		return ErrBlankName
	}
	if !(price > 0) { // also rejects NaN
		return ErrInvalidPrice
	}
	return nil
}
