package telemetry

import (
	"context"
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	instrumentsMu  sync.RWMutex
	requestCounter metric.Int64Counter
	cacheFailures  metric.Int64Counter
	cacheDropped   metric.Int64Counter
)

// initInstruments (re)creates the counters from the current global meter
// provider. Before Init the global provider is a no-op.
func initInstruments() {
	meter := otel.Meter(instrumentationName)

	instrumentsMu.Lock()
	defer instrumentsMu.Unlock()

	requestCounter, _ = meter.Int64Counter("http_requests_total",
		metric.WithDescription("HTTP requests by route and status"))
	cacheFailures, _ = meter.Int64Counter("cache_failures_total",
		metric.WithDescription("Failed best-effort cache operations"))
	cacheDropped, _ = meter.Int64Counter("cache_dropped_total",
		metric.WithDescription("Cache operations dropped because the write-through queue was full"))
}

func init() {
	initInstruments()
}

// RecordRequest counts one handled HTTP request
func RecordRequest(ctx context.Context, method, route string, status int) {
	instrumentsMu.RLock()
	c := requestCounter
	instrumentsMu.RUnlock()
	if c == nil {
		return
	}
	c.Add(ctx, 1, metric.WithAttributes(
		attribute.String("method", method),
		attribute.String("route", route),
		attribute.Int("status", status),
	))
}

// RecordCacheFailure counts one failed cache operation
func RecordCacheFailure(ctx context.Context, op string) {
	instrumentsMu.RLock()
	c := cacheFailures
	instrumentsMu.RUnlock()
	if c == nil {
		return
	}
	c.Add(ctx, 1, metric.WithAttributes(attribute.String("op", op)))
}

// RecordCacheDropped counts one cache operation dropped on a full queue
func RecordCacheDropped(ctx context.Context, op string) {
	instrumentsMu.RLock()
	c := cacheDropped
	instrumentsMu.RUnlock()
	if c == nil {
		return
	}
	c.Add(ctx, 1, metric.WithAttributes(attribute.String("op", op)))
}

// Handler serves the Prometheus scrape endpoint
func Handler() http.Handler {
	return promhttp.Handler()
}
