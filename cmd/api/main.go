package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fooddelivery/pkg/api"
	"fooddelivery/pkg/cache"
	"fooddelivery/pkg/logger"
	"fooddelivery/pkg/menu"
	"fooddelivery/pkg/order"
	"fooddelivery/pkg/order/memory"
	"fooddelivery/pkg/otel"
)

const serviceName = "food-delivery"

// @title Food Delivery API
// @version 1.0
// @description Menu and order tracking for the food delivery demo
// @host localhost:5000
// @BasePath /
func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := loadConfig(".env")
	if err != nil {
		return err
	}

	log := logger.New(os.Stdout, cfg.LogLevel, serviceName, otel.GetTraceID)
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tp, shutdownTracing, err := otel.InitTracing(log, otel.Config{
		ServiceName: serviceName,
		Host:        cfg.OtelHost,
		Probability: cfg.OtelProbability,
	})
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		shutdownTracing(ctx)
	}()

	orders := memory.New()

	a := api.New(api.Config{
		Log:            log,
		Tracer:         tp.Tracer(serviceName),
		Menu:           menu.NewCatalog(menu.DefaultItems()...),
		Orders:         orders,
		Watcher:        order.NewWatcher(orders, cfg.PollInterval),
		Idempotency:    idempotencyCache(ctx, log, cfg.RedisAddr),
		IdempotencyTTL: cfg.IdempotencyTTL,
		AllowedOrigins: cfg.AllowedOrigins,
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           a.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       2 * time.Minute,
		// Open status streams end when the signal context is cancelled.
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info(ctx, "listening", "addr", cfg.HTTPAddr, "tls", cfg.tls())
		if cfg.tls() {
			serverErr <- srv.ListenAndServeTLS(cfg.TLSCertFile, cfg.TLSKeyFile)
			return
		}
		serverErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info(context.Background(), "shutting down", "timeout", cfg.ShutdownTimeout.String())
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		srv.Close()
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// idempotencyCache connects to Redis when addr is set and falls back to an
// in-process cache when it is empty or unreachable.
func idempotencyCache(ctx context.Context, log *logger.Logger, addr string) cache.Cache {
	if addr == "" {
		log.Info(ctx, "idempotency", "store", "memory")
		return cache.NewMemory(serviceName)
	}

	rc := cache.NewRedis(addr, serviceName)
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := rc.Ping(pingCtx); err != nil {
		log.Warn(ctx, "redis unavailable, using memory", "addr", addr, "error", err)
		rc.Close()
		return cache.NewMemory(serviceName)
	}
	log.Info(ctx, "idempotency", "store", "redis", "addr", addr)
	return rc
}
