package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"

	"github.com/acclimations/todo-backend/internal/domain"
)

// Label keys for the todo instruments. HTTP instruments use the semconv keys.
const (
	AttrOperation = attribute.Key("todo.operation")
	AttrResult    = attribute.Key("todo.result")
)

// Values of AttrResult.
const (
	ResultSuccess    = "success"
	ResultNotFound   = "not_found"
	ResultValidation = "validation_error"
	ResultError      = "error"
)

// Metrics holds the service's instruments. Every method is a no-op on a nil
// *Metrics, so callers never branch on whether telemetry is enabled.
type Metrics struct {
	meter metric.Meter

	requestDuration metric.Float64Histogram
	requests        metric.Int64Counter
	panics          metric.Int64Counter
	operations      metric.Int64Counter
}

// NewMetrics registers the instruments on a meter named scope.
func NewMetrics(mp metric.MeterProvider, scope string) (*Metrics, error) {
	m := &Metrics{meter: mp.Meter(scope)}

	var errs [4]error
	m.requestDuration, errs[0] = m.meter.Float64Histogram("http.server.request.duration",
		metric.WithDescription("Time spent serving HTTP requests"),
		metric.WithUnit("s"))
	m.requests, errs[1] = m.meter.Int64Counter("http.server.request.total",
		metric.WithDescription("HTTP requests served"),
		metric.WithUnit("{request}"))
	m.panics, errs[2] = m.meter.Int64Counter("http.server.panics.total",
		metric.WithDescription("Handler panics turned into 500 responses"),
		metric.WithUnit("{panic}"))
	m.operations, errs[3] = m.meter.Int64Counter("todo.operations.total",
		metric.WithDescription("Todo service operations by outcome"),
		metric.WithUnit("{operation}"))

	if err := errors.Join(errs[:]...); err != nil {
		return nil, fmt.Errorf("registering instruments: %w", err)
	}
	return m, nil
}

// ObserveItems registers the todo.items gauge, read from count at every
// collection.
func (m *Metrics) ObserveItems(count func(context.Context) int) error {
	if m == nil {
		return nil
	}
	_, err := m.meter.Int64ObservableGauge("todo.items",
		metric.WithDescription("Todos currently stored"),
		metric.WithUnit("{todo}"),
		metric.WithInt64Callback(func(ctx context.Context, o metric.Int64Observer) error {
			o.Observe(int64(count(ctx)))
			return nil
		}),
	)
	if err != nil {
		return fmt.Errorf("registering todo.items: %w", err)
	}
	return nil
}

// RecordRequest records one served request. route is the matched route
// pattern, never the raw path, to keep label cardinality bounded.
func (m *Metrics) RecordRequest(ctx context.Context, method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	result := ResultSuccess
	if status >= http.StatusInternalServerError {
		result = ResultError
	}
	attrs := metric.WithAttributes(
		semconv.HTTPRequestMethodKey.String(method),
		semconv.HTTPRouteKey.String(route),
		semconv.HTTPResponseStatusCodeKey.Int(status),
		AttrResult.String(result),
	)
	m.requestDuration.Record(ctx, elapsed.Seconds(), attrs)
	m.requests.Add(ctx, 1, attrs)
}

// RecordPanic counts a recovered handler panic.
func (m *Metrics) RecordPanic(ctx context.Context, method, route string) {
	if m == nil {
		return
	}
	m.panics.Add(ctx, 1, metric.WithAttributes(
		semconv.HTTPRequestMethodKey.String(method),
		semconv.HTTPRouteKey.String(route),
	))
}

// RecordOperation counts one todo service call, labelled with the outcome
// derived from err.
func (m *Metrics) RecordOperation(ctx context.Context, operation string, err error) {
	if m == nil {
		return
	}
	m.operations.Add(ctx, 1, metric.WithAttributes(
		AttrOperation.String(operation),
		AttrResult.String(Outcome(err)),
	))
}

// Outcome classifies a service error into a result label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return ResultSuccess
	case errors.Is(err, domain.ErrNotFound):
		return ResultNotFound
	case errors.Is(err, domain.ErrValidation):
		return ResultValidation
	default:
		return ResultError
	}
}
