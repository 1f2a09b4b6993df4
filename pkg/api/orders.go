package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"go.opentelemetry.io/otel/attribute"

	"fooddelivery/pkg/cache"
	"fooddelivery/pkg/order"
	"fooddelivery/pkg/otel"
)

const idempotencyHeader = "Idempotency-Key"

// listOrdersHandler lists orders.
// @Summary List orders
// @Produce json
// @Success 200 {array} order.Order
// @Router /api/orders [get]
func (a *API) listOrdersHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "listOrdersHandler")
	defer span.End()

	orders, err := a.orders.List(ctx)
	if err != nil {
		a.orderError(ctx, w, "list orders", err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

// createOrderHandler creates a new order.
// @Summary Create order
// @Description Repeating a request with the same Idempotency-Key returns the order created first.
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "Client chosen key"
// @Param order body createOrderRequest true "Order"
// @Success 201 {object} order.Order
// @Failure 400 {object} errorResponse
// @Router /api/orders [post]
func (a *API) createOrderHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "createOrderHandler")
	defer span.End()

	var req createOrderRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}
	d, err := req.draft()
	if err != nil {
		a.orderError(ctx, w, "create order", err)
		return
	}

	key := r.Header.Get(idempotencyHeader)
	if key != "" && a.idempotency != nil {
		if o, ok := a.replay(ctx, key); ok {
			a.log.Info(ctx, "order replayed", "order_id", o.ID)
			writeJSON(w, http.StatusCreated, o)
			return
		}
	}

	o, err := a.orders.Create(ctx, d)
	if err != nil {
		a.orderError(ctx, w, "create order", err)
		return
	}
	if key != "" && a.idempotency != nil {
		o = a.remember(ctx, key, o)
	}

	span.SetAttributes(attribute.String("order.id", o.ID))
	a.log.Info(ctx, "order created", "order_id", o.ID, "total_amount", o.TotalAmount.String(), "items", len(o.Items))
	writeJSON(w, http.StatusCreated, o)
}

// getOrderHandler retrieves an order by ID.
// @Summary Get order
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} order.Order
// @Failure 404 {object} errorResponse
// @Router /api/orders/{id} [get]
func (a *API) getOrderHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "getOrderHandler")
	defer span.End()

	o, err := a.orders.Get(ctx, mux.Vars(r)["id"])
	if err != nil {
		a.orderError(ctx, w, "get order", err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}

// updateOrderStatusHandler sets the status of an order.
// Any lifecycle status is accepted regardless of the current one.
// @Summary Update order status
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param status body updateStatusRequest true "New status"
// @Success 200 {object} order.Order
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /api/orders/{id} [put]
func (a *API) updateOrderStatusHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "updateOrderStatusHandler")
	defer span.End()

	id := mux.Vars(r)["id"]
	if _, err := a.orders.Get(ctx, id); err != nil {
		a.orderError(ctx, w, "update order status", err)
		return
	}

	var req updateStatusRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}
	if !req.Status.Set {
		writeError(w, http.StatusBadRequest, msgStatusRequired)
		return
	}

	status, ok := req.status()
	if !ok {
		writeError(w, http.StatusBadRequest, msgInvalidStatus)
		return
	}

	o, err := a.orders.UpdateStatus(ctx, id, status)
	if err != nil {
		a.orderError(ctx, w, "update order status", err)
		return
	}
	a.log.Info(ctx, "order status updated", "order_id", o.ID, "status", o.Status)
	writeJSON(w, http.StatusOK, o)
}

// simulateHandler moves an order to its next status.
// @Summary Simulate order progress
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} order.Order
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /api/orders/{id}/simulate [post]
func (a *API) simulateHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "simulateHandler")
	defer span.End()

	o, err := a.orders.Advance(ctx, mux.Vars(r)["id"])
	if err != nil {
		a.orderError(ctx, w, "simulate order", err)
		return
	}
	a.log.Info(ctx, "order advanced", "order_id", o.ID, "status", o.Status)
	writeJSON(w, http.StatusOK, o)
}

// orderError maps store errors to responses. Unexpected errors are logged.
func (a *API) orderError(ctx context.Context, w http.ResponseWriter, op string, err error) {
	var verr *order.ValidationError
	switch {
	case errors.Is(err, order.ErrNotFound):
		writeError(w, http.StatusNotFound, msgOrderNotFound)
	case errors.Is(err, order.ErrInvalidStatus):
		writeError(w, http.StatusBadRequest, msgInvalidStatus)
	case errors.Is(err, order.ErrAlreadyTerminal):
		writeError(w, http.StatusBadRequest, msgAlreadyDelivered)
	case errors.As(err, &verr):
		writeError(w, http.StatusBadRequest, verr.Message)
	default:
		a.log.Error(ctx, op, "error", err)
		writeError(w, http.StatusInternalServerError, msgInternal)
	}
}

// replay returns the order previously created under key.
func (a *API) replay(ctx context.Context, key string) (order.Order, bool) {
	id, err := a.idempotency.Get(ctx, a.idempotency.Key("create-order", key))
	if err != nil {
		if !errors.Is(err, cache.ErrMiss) {
			a.log.Warn(ctx, "idempotency lookup", "error", err)
		}
		return order.Order{}, false
	}
	o, err := a.orders.Get(ctx, id)
	if err != nil {
		return order.Order{}, false
	}
	return o, true
}

// remember binds key to o. When a concurrent request won the key, the
// order it created is returned instead.
func (a *API) remember(ctx context.Context, key string, o order.Order) order.Order {
	stored, err := a.idempotency.SetNX(ctx, a.idempotency.Key("create-order", key), o.ID, a.idempotencyTTL)
	if err != nil {
		a.log.Warn(ctx, "idempotency store", "error", err, "order_id", o.ID)
		return o
	}
	if stored {
		return o
	}
	if winner, ok := a.replay(ctx, key); ok {
		return winner
	}
	return o
}
