package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"fooddelivery/pkg/money"
)

// LineItem is a single entry of an order as supplied by the client.
// It is not checked against the menu.
type LineItem struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// UnmarshalJSON accepts any whole-number quantity, including 2.0 or 2e0.
func (i *LineItem) UnmarshalJSON(b []byte) error {
	type plain LineItem
	var raw struct {
		plain
		Quantity decimal.Decimal `json:"quantity"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	q := raw.Quantity
	if !q.IsInteger() || q.Abs().GreaterThan(decimal.NewFromInt(math.MaxInt32)) {
		return fmt.Errorf("quantity %s is not a whole number", q)
	}
	*i = LineItem(raw.plain)
	i.Quantity = int(q.IntPart())
	return nil
}

// Subtotal returns price multiplied by quantity.
func (i LineItem) Subtotal() decimal.Decimal {
	return money.Times(i.Price, i.Quantity)
}

// Order represents a customer purchase tracked through the delivery lifecycle.
type Order struct {
	ID              string          `json:"id"`
	CustomerName    string          `json:"customer_name"`
	CustomerAddress string          `json:"customer_address"`
	CustomerPhone   string          `json:"customer_phone"`
	Items           []LineItem      `json:"items"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	Status          Status          `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// New builds a freshly received order from a validated draft.
func New(id string, d Draft, now time.Time) Order {
	items := make([]LineItem, len(d.Items))
	copy(items, d.Items)
	return Order{
		ID:              id,
		CustomerName:    d.CustomerName,
		CustomerAddress: d.CustomerAddress,
		CustomerPhone:   d.CustomerPhone,
		Items:           items,
		TotalAmount:     Total(items),
		Status:          StatusReceived,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// Total sums the subtotals of items.
func Total(items []LineItem) decimal.Decimal {
	subtotals := make([]decimal.Decimal, len(items))
	for n, it := range items {
		subtotals[n] = it.Subtotal()
	}
	return money.Sum(subtotals...)
}

// Clone returns a deep copy of o.
func (o Order) Clone() Order {
	items := make([]LineItem, len(o.Items))
	copy(items, o.Items)
	o.Items = items
	return o
}

// Repository defines behavior for storing orders.
type Repository interface {
	Create(ctx context.Context, d Draft) (Order, error)
	Get(ctx context.Context, id string) (Order, error)
	List(ctx context.Context) ([]Order, error)
	UpdateStatus(ctx context.Context, id string, s Status) (Order, error)
	Advance(ctx context.Context, id string) (Order, error)
}

var (
	// ErrNotFound indicates the requested order does not exist.
	ErrNotFound = errors.New("order not found")

	// ErrInvalidStatus is returned for a status outside the lifecycle.
	ErrInvalidStatus = errors.New("invalid status")

	// ErrAlreadyTerminal is returned when advancing a delivered order.
	ErrAlreadyTerminal = errors.New("order already delivered")
)
