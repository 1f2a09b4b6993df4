package api

import (
	"encoding/json"

	"fooddelivery/pkg/order"
)

// optional records whether a JSON key was present, even when its value is null.
type optional[T any] struct {
	Set   bool
	Value T
}

func (o *optional[T]) UnmarshalJSON(b []byte) error {
	o.Set = true
	if string(b) == "null" {
		return nil
	}
	return json.Unmarshal(b, &o.Value)
}

type createOrderRequest struct {
	CustomerName    optional[string]           `json:"customer_name" swaggertype:"string"`
	CustomerAddress optional[string]           `json:"customer_address" swaggertype:"string"`
	CustomerPhone   optional[string]           `json:"customer_phone" swaggertype:"string"`
	Items           optional[[]order.LineItem] `json:"items" swaggertype:"array,object"`
}

// draft checks that every required key is present and builds a validated draft.
func (req createOrderRequest) draft() (order.Draft, error) {
	if !req.CustomerName.Set || !req.CustomerAddress.Set || !req.CustomerPhone.Set || !req.Items.Set {
		return order.Draft{}, &order.ValidationError{Message: order.MsgMissingFields}
	}

	d := order.Draft{
		CustomerName:    req.CustomerName.Value,
		CustomerAddress: req.CustomerAddress.Value,
		CustomerPhone:   req.CustomerPhone.Value,
		Items:           req.Items.Value,
	}
	if err := d.Validate(); err != nil {
		return order.Draft{}, err
	}
	return d, nil
}

type updateStatusRequest struct {
	Status optional[json.RawMessage] `json:"status" swaggertype:"string"`
}

// status returns the requested status. A value that is not a JSON string
// is reported as not ok.
func (req updateStatusRequest) status() (order.Status, bool) {
	var s string
	if err := json.Unmarshal(req.Status.Value, &s); err != nil {
		return "", false
	}
	return order.Status(s), true
}
