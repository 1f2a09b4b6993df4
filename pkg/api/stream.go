package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"fooddelivery/pkg/order"
	"fooddelivery/pkg/otel"
)

// statusStreamHandler streams status changes of an order as server-sent events.
// The stream stays open until the client disconnects. An unknown order gets
// a single error event.
// @Summary Stream order status
// @Produce text/event-stream
// @Param id path string true "Order ID"
// @Success 200 {object} order.StatusUpdate
// @Router /api/orders/{id}/status-stream [get]
func (a *API) statusStreamHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "statusStreamHandler")
	defer span.End()

	id := mux.Vars(r)["id"]
	rc := http.NewResponseController(w)
	// The server write timeout would cut the stream.
	_ = rc.SetWriteDeadline(time.Time{})

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	updates, err := a.watcher.Watch(ctx, id)
	if err != nil {
		msg := msgOrderNotFound
		if !errors.Is(err, order.ErrNotFound) {
			a.log.Error(ctx, "watch order", "error", err, "order_id", id)
			msg = msgInternal
		}
		w.WriteHeader(http.StatusOK)
		_ = writeEvent(w, errorResponse{Error: msg})
		_ = rc.Flush()
		return
	}

	w.WriteHeader(http.StatusOK)
	_ = rc.Flush()
	a.log.Debug(ctx, "status stream opened", "order_id", id)

	for u := range updates {
		if err := writeEvent(w, u); err != nil {
			break
		}
		if err := rc.Flush(); err != nil {
			break
		}
	}
	a.log.Debug(ctx, "status stream closed", "order_id", id)
}
