package order_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fooddelivery/pkg/order"
	"fooddelivery/pkg/order/memory"
)

func newStoredOrder(t *testing.T, repo *memory.Repository) order.Order {
	t.Helper()
	o, err := repo.Create(context.Background(), order.Draft{
		CustomerName:    "Jane Doe",
		CustomerAddress: "456 Oak St",
		CustomerPhone:   "555-987-6543",
		Items: []order.LineItem{
			{ID: "2", Name: "Burger", Price: decimal.RequireFromString("10.99"), Quantity: 1},
		},
	})
	require.NoError(t, err)
	return o
}

func receive(t *testing.T, ch <-chan order.StatusUpdate) order.StatusUpdate {
	t.Helper()
	select {
	case u, ok := <-ch:
		require.True(t, ok, "stream closed")
		return u
	case <-time.After(2 * time.Second):
		t.Fatal("no status update received")
		return order.StatusUpdate{}
	}
}

func TestWatcher_EmitsCurrentAndChangedStatus(t *testing.T) {
	repo := memory.New()
	o := newStoredOrder(t, repo)
	w := order.NewWatcher(repo, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	updates, err := w.Watch(ctx, o.ID)
	require.NoError(t, err)

	assert.Equal(t, order.StatusUpdate{Status: order.StatusReceived, OrderID: o.ID}, receive(t, updates))

	_, err = repo.UpdateStatus(ctx, o.ID, order.StatusPreparing)
	require.NoError(t, err)
	assert.Equal(t, order.StatusUpdate{Status: order.StatusPreparing, OrderID: o.ID}, receive(t, updates))

	_, err = repo.Advance(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, order.StatusOutForDelivery, receive(t, updates).Status)
}

func TestWatcher_DoesNotRepeatUnchangedStatus(t *testing.T) {
	repo := memory.New()
	o := newStoredOrder(t, repo)
	w := order.NewWatcher(repo, 5*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	updates, err := w.Watch(ctx, o.ID)
	require.NoError(t, err)
	receive(t, updates)

	select {
	case u := <-updates:
		t.Fatalf("unexpected update %+v", u)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestWatcher_ClosesOnCancel(t *testing.T) {
	repo := memory.New()
	o := newStoredOrder(t, repo)
	w := order.NewWatcher(repo, 5*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	updates, err := w.Watch(ctx, o.ID)
	require.NoError(t, err)
	receive(t, updates)

	cancel()

	require.Eventually(t, func() bool {
		select {
		case _, ok := <-updates:
			return !ok
		default:
			return false
		}
	}, time.Second, 5*time.Millisecond)
}

func TestWatcher_UnknownOrder(t *testing.T) {
	w := order.NewWatcher(memory.New(), 0)
	assert.Equal(t, order.DefaultPollInterval, w.Interval())

	updates, err := w.Watch(context.Background(), "missing")
	assert.ErrorIs(t, err, order.ErrNotFound)
	assert.Nil(t, updates)
}
