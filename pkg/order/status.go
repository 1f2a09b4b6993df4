package order

import "fmt"

// Status is the lifecycle state of an order.
//
//	Order Received -> Preparing -> Out for Delivery -> Delivered
//
// Setting a status directly only requires membership in the lifecycle;
// moving backwards or skipping states is allowed. Next is the only
// operation that follows the ordering.
type Status string

const (
	StatusReceived       Status = "Order Received"
	StatusPreparing      Status = "Preparing"
	StatusOutForDelivery Status = "Out for Delivery"
	StatusDelivered      Status = "Delivered"
)

var lifecycle = [...]Status{
	StatusReceived,
	StatusPreparing,
	StatusOutForDelivery,
	StatusDelivered,
}

// Lifecycle returns the statuses in delivery order.
func Lifecycle() []Status {
	out := make([]Status, len(lifecycle))
	copy(out, lifecycle[:])
	return out
}

func (s Status) String() string {
	return string(s)
}

// Valid reports whether s is one of the lifecycle statuses.
func (s Status) Valid() bool {
	return s.index() >= 0
}

// Validate returns ErrInvalidStatus when s is not a lifecycle status.
func (s Status) Validate() error {
	if !s.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, string(s))
	}
	return nil
}

// Terminal reports whether no further status follows s.
func (s Status) Terminal() bool {
	return s.index() == len(lifecycle)-1
}

// Next returns the status that follows s.
//
// A status outside the lifecycle is treated as sitting before the first
// one, so its successor is StatusReceived. Delivered has no successor and
// yields ErrAlreadyTerminal.
func (s Status) Next() (Status, error) {
	i := s.index()
	if i >= len(lifecycle)-1 {
		return s, ErrAlreadyTerminal
	}
	return lifecycle[i+1], nil
}

func (s Status) index() int {
	for i, v := range lifecycle {
		if v == s {
			return i
		}
	}
	return -1
}
