// Package api exposes the menu and order store over HTTP.
package api

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/otel/trace"

	_ "fooddelivery/docs"
	"fooddelivery/pkg/cache"
	"fooddelivery/pkg/logger"
	"fooddelivery/pkg/menu"
	"fooddelivery/pkg/order"
)

// DefaultIdempotencyTTL is how long an Idempotency-Key is remembered.
const DefaultIdempotencyTTL = 24 * time.Hour

// Config holds the dependencies of the HTTP layer.
type Config struct {
	Log     *logger.Logger
	Tracer  trace.Tracer
	Menu    *menu.Catalog
	Orders  order.Repository
	Watcher *order.Watcher

	// Idempotency is optional; without it Idempotency-Key is ignored.
	Idempotency    cache.Cache
	IdempotencyTTL time.Duration

	// AllowedOrigins lists CORS origins; "*" allows any.
	AllowedOrigins []string
}

// API serves the food delivery endpoints.
type API struct {
	log            *logger.Logger
	tracer         trace.Tracer
	menu           *menu.Catalog
	orders         order.Repository
	watcher        *order.Watcher
	idempotency    cache.Cache
	idempotencyTTL time.Duration
	allowedOrigins []string
}

// New returns an API built from cfg.
func New(cfg Config) *API {
	watcher := cfg.Watcher
	if watcher == nil {
		watcher = order.NewWatcher(cfg.Orders, order.DefaultPollInterval)
	}
	ttl := cfg.IdempotencyTTL
	if ttl <= 0 {
		ttl = DefaultIdempotencyTTL
	}
	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return &API{
		log:            cfg.Log,
		tracer:         cfg.Tracer,
		menu:           cfg.Menu,
		orders:         cfg.Orders,
		watcher:        watcher,
		idempotency:    cfg.Idempotency,
		idempotencyTTL: ttl,
		allowedOrigins: origins,
	}
}

// Handler returns the routed handler with all middleware applied.
func (a *API) Handler() http.Handler {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(notFoundHandler)
	r.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowedHandler)
	r.Use(a.recoverMiddleware, a.traceMiddleware, a.logMiddleware)

	r.HandleFunc("/", a.healthHandler).Methods(http.MethodGet)

	// Routes sit on the root router so a method mismatch reaches
	// MethodNotAllowedHandler instead of NotFoundHandler.
	r.HandleFunc("/api/menu", a.listMenuHandler).Methods(http.MethodGet)
	r.HandleFunc("/api/menu/{id}", a.getMenuItemHandler).Methods(http.MethodGet)
	r.HandleFunc("/api/orders", a.listOrdersHandler).Methods(http.MethodGet)
	r.HandleFunc("/api/orders", a.createOrderHandler).Methods(http.MethodPost)
	r.HandleFunc("/api/orders/{id}", a.getOrderHandler).Methods(http.MethodGet)
	r.HandleFunc("/api/orders/{id}", a.updateOrderStatusHandler).Methods(http.MethodPut)
	r.HandleFunc("/api/orders/{id}/status-stream", a.statusStreamHandler).Methods(http.MethodGet)
	r.HandleFunc("/api/orders/{id}/simulate", a.simulateHandler).Methods(http.MethodPost)

	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	return corsMiddleware(a.allowedOrigins)(r)
}

type healthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// healthHandler reports that the service is up.
// @Summary Health check
// @Produce json
// @Success 200 {object} healthResponse
// @Router / [get]
func (a *API) healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:  "OK",
		Message: "Food Delivery Backend is running 🚀",
	})
}
