// Package memory implements an in-memory order repository.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"fooddelivery/pkg/order"
)

const idLength = 8

// Repository provides an in-memory implementation of order.Repository.
// A single lock covers the map, the insertion order and id generation.
type Repository struct {
	mu     sync.RWMutex
	orders map[string]*order.Order
	ids    []string

	newID func() string
	now   func() time.Time
}

// New creates a new in-memory repository.
func New() *Repository {
	return &Repository{
		orders: make(map[string]*order.Order),
		newID:  shortID,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func shortID() string {
	return uuid.NewString()[:idLength]
}

// Create stores a new order built from d under a fresh id.
func (r *Repository) Create(ctx context.Context, d order.Draft) (order.Order, error) {
	if err := d.Validate(); err != nil {
		return order.Order{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.newID()
	for r.exists(id) {
		id = r.newID()
	}

	o := order.New(id, d, r.now())
	r.orders[id] = &o
	r.ids = append(r.ids, id)
	return o.Clone(), nil
}

// Get retrieves an order by ID.
func (r *Repository) Get(ctx context.Context, id string) (order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.orders[id]
	if !ok {
		return order.Order{}, order.ErrNotFound
	}
	return o.Clone(), nil
}

// List returns all orders in the order they were created.
func (r *Repository) List(ctx context.Context) ([]order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]order.Order, 0, len(r.ids))
	for _, id := range r.ids {
		out = append(out, r.orders[id].Clone())
	}
	return out, nil
}

// UpdateStatus sets the status of an existing order to s.
func (r *Repository) UpdateStatus(ctx context.Context, id string, s order.Status) (order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return order.Order{}, order.ErrNotFound
	}
	if err := s.Validate(); err != nil {
		return order.Order{}, err
	}
	r.setStatus(o, s)
	return o.Clone(), nil
}

// Advance moves an order to the status following its current one.
func (r *Repository) Advance(ctx context.Context, id string) (order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return order.Order{}, order.ErrNotFound
	}
	next, err := o.Status.Next()
	if err != nil {
		return order.Order{}, err
	}
	r.setStatus(o, next)
	return o.Clone(), nil
}

func (r *Repository) setStatus(o *order.Order, s order.Status) {
	o.Status = s
	o.UpdatedAt = r.now()
}

func (r *Repository) exists(id string) bool {
	_, ok := r.orders[id]
	return ok
}
