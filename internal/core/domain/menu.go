package domain

import (
	"strings"

	"github.com/google/uuid"
)

// MenuItem is one dish on the catalog. Price is a raw monetary amount with
// two-decimal display precision; no fixed-point guarantee is made.
type MenuItem struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// NewMenuItem builds a catalog entry with a freshly generated id. The name
// is stored trimmed; callers validate it beforehand.
func NewMenuItem(name string, price float64) MenuItem {
	return MenuItem{
		ID:    uuid.NewString(),
		Name:  strings.TrimSpace(name),
		Price: price,
	}
}
