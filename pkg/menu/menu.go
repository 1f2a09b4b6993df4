// Package menu holds the read-only catalog of items offered for order.
package menu

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrNotFound indicates no menu item has the requested id.
var ErrNotFound = errors.New("menu item not found")

// Item is a sellable catalog entry.
type Item struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"image_url"`
}

// Catalog is an immutable list of items. It is safe for concurrent use.
type Catalog struct {
	items []Item
}

// NewCatalog returns a catalog holding items in the given order.
func NewCatalog(items ...Item) *Catalog {
	c := &Catalog{items: make([]Item, len(items))}
	copy(c.items, items)
	return c
}

// List returns all items in insertion order.
func (c *Catalog) List() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Get returns the item with the given id.
func (c *Catalog) Get(id string) (Item, error) {
	for _, it := range c.items {
		if it.ID == id {
			return it, nil
		}
	}
	return Item{}, ErrNotFound
}
