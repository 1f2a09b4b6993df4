package order

import (
	"context"
	"time"
)

// DefaultPollInterval is how often a watcher checks an order's status.
const DefaultPollInterval = 2 * time.Second

// StatusUpdate is a single observation emitted by a Watcher.
type StatusUpdate struct {
	Status  Status `json:"status"`
	OrderID string `json:"order_id"`
}

// Getter fetches an order by id.
type Getter interface {
	Get(ctx context.Context, id string) (Order, error)
}

// Watcher observes order status by polling.
type Watcher struct {
	orders   Getter
	interval time.Duration
}

// NewWatcher returns a Watcher polling orders every interval.
// A non-positive interval falls back to DefaultPollInterval.
func NewWatcher(orders Getter, interval time.Duration) *Watcher {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Watcher{orders: orders, interval: interval}
}

// Interval returns the poll interval.
func (w *Watcher) Interval() time.Duration {
	return w.interval
}

// Watch subscribes to status changes of order id.
//
// It fails with ErrNotFound when the order does not exist at subscription
// time. Otherwise the current status is sent right away and every later
// poll that sees a different value sends again; changes that happen and
// revert between two polls are not observed. The channel is closed once
// ctx is done.
func (w *Watcher) Watch(ctx context.Context, id string) (<-chan StatusUpdate, error) {
	if _, err := w.orders.Get(ctx, id); err != nil {
		return nil, err
	}

	updates := make(chan StatusUpdate)
	go w.poll(ctx, id, updates)
	return updates, nil
}

func (w *Watcher) poll(ctx context.Context, id string, updates chan<- StatusUpdate) {
	defer close(updates)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	var last Status
	for {
		o, err := w.orders.Get(ctx, id)
		if err == nil && o.Status != last {
			select {
			case updates <- StatusUpdate{Status: o.Status, OrderID: id}:
				last = o.Status
			case <-ctx.Done():
				return
			}
		}

		select {
		case <-ticker.C:
		case <-ctx.Done():
			return
		}
	}
}
