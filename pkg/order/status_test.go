package order_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fooddelivery/pkg/order"
)

func TestStatus_Valid(t *testing.T) {
	for _, s := range order.Lifecycle() {
		t.Run(s.String(), func(t *testing.T) {
			assert.True(t, s.Valid())
			require.NoError(t, s.Validate())
		})
	}

	for _, s := range []order.Status{"", "Invalid Status", "preparing", "Cancelled"} {
		t.Run("reject "+s.String(), func(t *testing.T) {
			assert.False(t, s.Valid())
			assert.ErrorIs(t, s.Validate(), order.ErrInvalidStatus)
		})
	}
}

func TestStatus_Lifecycle(t *testing.T) {
	assert.Equal(t, []order.Status{
		"Order Received",
		"Preparing",
		"Out for Delivery",
		"Delivered",
	}, order.Lifecycle())

	l := order.Lifecycle()
	l[0] = "mutated"
	assert.Equal(t, order.StatusReceived, order.Lifecycle()[0])
}

func TestStatus_Next(t *testing.T) {
	tests := []struct {
		from order.Status
		want order.Status
	}{
		{order.StatusReceived, order.StatusPreparing},
		{order.StatusPreparing, order.StatusOutForDelivery},
		{order.StatusOutForDelivery, order.StatusDelivered},
		{"something else", order.StatusReceived},
	}
	for _, tt := range tests {
		t.Run(tt.from.String(), func(t *testing.T) {
			got, err := tt.from.Next()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("delivered is terminal", func(t *testing.T) {
		assert.True(t, order.StatusDelivered.Terminal())
		got, err := order.StatusDelivered.Next()
		assert.ErrorIs(t, err, order.ErrAlreadyTerminal)
		assert.Equal(t, order.StatusDelivered, got)
	})
}
