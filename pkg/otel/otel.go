// Package otel wires the OpenTelemetry SDK and carries the tracer through
// request contexts.
package otel

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"fooddelivery/pkg/logger"
)

// Config describes where spans go.
type Config struct {
	ServiceName string
	// Host is the OTLP gRPC collector address. Empty disables export.
	Host        string
	Probability float64
}

// InitTracing installs the global tracer provider and propagators.
// The returned function flushes and closes the exporter.
func InitTracing(log *logger.Logger, cfg Config) (trace.TracerProvider, func(ctx context.Context), error) {
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	if cfg.Host == "" {
		log.Info(context.Background(), "otel", "tracer", "noop")
		tp := noop.NewTracerProvider()
		otel.SetTracerProvider(tp)
		return tp, func(context.Context) {}, nil
	}

	conn, err := grpc.NewClient(cfg.Host, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, nil, fmt.Errorf("dial collector %s: %w", cfg.Host, err)
	}

	exporter, err := otlptrace.New(context.Background(), otlptracegrpc.NewClient(otlptracegrpc.WithGRPCConn(conn)))
	if err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("create exporter: %w", err)
	}

	res, err := resource.Merge(
		resource.Default(),
		resource.NewSchemaless(semconv.ServiceName(cfg.ServiceName)),
	)
	if err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("build resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.Probability))),
		sdktrace.WithBatcher(exporter, sdktrace.WithBatchTimeout(5*time.Second)),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	log.Info(context.Background(), "otel", "tracer", cfg.Host, "probability", cfg.Probability)

	shutdown := func(ctx context.Context) {
		if err := tp.Shutdown(ctx); err != nil {
			log.Error(ctx, "otel shutdown", "error", err)
		}
		conn.Close()
	}
	return tp, shutdown, nil
}

type ctxKey int

const (
	tracerKey ctxKey = iota + 1
	traceIDKey
)

// InjectTracing stores tracer and the current trace id in ctx.
func InjectTracing(ctx context.Context, tracer trace.Tracer) context.Context {
	ctx = context.WithValue(ctx, tracerKey, tracer)

	if sc := trace.SpanContextFromContext(ctx); sc.HasTraceID() {
		ctx = context.WithValue(ctx, traceIDKey, sc.TraceID().String())
	}
	return ctx
}

// AddSpan starts a child span with the tracer stored by InjectTracing.
// Without one it returns the span already in ctx.
func AddSpan(ctx context.Context, spanName string, keyValues ...attribute.KeyValue) (context.Context, trace.Span) {
	tracer, ok := ctx.Value(tracerKey).(trace.Tracer)
	if !ok || tracer == nil {
		return ctx, trace.SpanFromContext(ctx)
	}

	ctx, span := tracer.Start(ctx, spanName, trace.WithAttributes(keyValues...))
	return ctx, span
}

// GetTraceID returns the trace id of ctx, or "" when it has none.
func GetTraceID(ctx context.Context) string {
	if sc := trace.SpanContextFromContext(ctx); sc.HasTraceID() {
		return sc.TraceID().String()
	}
	if id, ok := ctx.Value(traceIDKey).(string); ok {
		return id
	}
	return ""
}
