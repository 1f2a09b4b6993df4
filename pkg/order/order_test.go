package order_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fooddelivery/pkg/order"
)

func TestOrder_JSON(t *testing.T) {
	o := order.New("abcd1234", order.Draft{
		CustomerName:    "John Doe",
		CustomerAddress: "123 Main St",
		CustomerPhone:   "555-123-4567",
		Items: []order.LineItem{
			{ID: "1", Name: "Pizza", Price: decimal.RequireFromString("12.99"), Quantity: 2},
		},
	}, time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC))

	b, err := json.Marshal(o)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, "abcd1234", got["id"])
	assert.Equal(t, "John Doe", got["customer_name"])
	assert.Equal(t, "123 Main St", got["customer_address"])
	assert.Equal(t, "555-123-4567", got["customer_phone"])
	assert.Equal(t, 25.98, got["total_amount"])
	assert.Equal(t, "Order Received", got["status"])
	assert.Equal(t, "2025-01-02T03:04:05Z", got["created_at"])
	assert.Equal(t, "2025-01-02T03:04:05Z", got["updated_at"])

	items, ok := got["items"].([]any)
	require.True(t, ok)
	require.Len(t, items, 1)
	assert.Equal(t, map[string]any{"id": "1", "name": "Pizza", "price": 12.99, "quantity": float64(2)}, items[0])
}

func TestLineItem_DecodesNumericPrice(t *testing.T) {
	var it order.LineItem
	require.NoError(t, json.Unmarshal([]byte(`{"id":"3","name":"Salad","price":8.99,"quantity":3}`), &it))
	assert.Equal(t, "26.97", it.Subtotal().String())
}

func TestLineItem_Quantity(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    int
		wantErr bool
	}{
		{name: "integer", body: `{"id":"1","price":12.99,"quantity":2}`, want: 2},
		{name: "integral float", body: `{"id":"1","price":12.99,"quantity":2.0}`, want: 2},
		{name: "exponent", body: `{"id":"1","price":12.99,"quantity":3e0}`, want: 3},
		{name: "absent", body: `{"id":"1","price":12.99}`, want: 0},
		{name: "fractional", body: `{"id":"1","price":12.99,"quantity":2.5}`, wantErr: true},
		{name: "too large", body: `{"id":"1","price":12.99,"quantity":1e12}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var it order.LineItem
			err := json.Unmarshal([]byte(tt.body), &it)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, it.Quantity)
			assert.Equal(t, "1", it.ID)
			assert.Equal(t, "12.99", it.Price.String())
		})
	}
}
