package telemetry_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"

	"github.com/acclimations/todo-backend/internal/domain"
	"github.com/acclimations/todo-backend/internal/platform/telemetry"
)

func newManualMetrics(t *testing.T) (*telemetry.Metrics, *sdkmetric.ManualReader) {
	t.Helper()

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	metrics, err := telemetry.NewMetrics(mp, "todo-backend-test")
	if err != nil {
		t.Fatalf("NewMetrics() error = %v", err)
	}
	return metrics, reader
}

func collect(t *testing.T, reader *sdkmetric.ManualReader, name string) metricdata.Aggregation {
	t.Helper()

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name == name {
				return m.Data
			}
		}
	}
	t.Fatalf("metric %q not collected", name)
	return nil
}

// sumBy totals an Int64 sum keyed by the string value of key.
func sumBy(t *testing.T, data metricdata.Aggregation, key attribute.Key) map[string]int64 {
	t.Helper()

	sum, ok := data.(metricdata.Sum[int64])
	if !ok {
		t.Fatalf("aggregation = %T, want metricdata.Sum[int64]", data)
	}
	out := make(map[string]int64)
	for _, dp := range sum.DataPoints {
		v, _ := dp.Attributes.Value(key)
		out[v.Emit()] += dp.Value
	}
	return out
}

func TestMetrics_RecordOperation(t *testing.T) {
	t.Parallel()
	metrics, reader := newManualMetrics(t)
	ctx := context.Background()

	metrics.RecordOperation(ctx, "CreateTodo", nil)
	metrics.RecordOperation(ctx, "CreateTodo", nil)
	metrics.RecordOperation(ctx, "GetTodo", &domain.NotFoundError{Resource: "todo", ID: "x"})
	metrics.RecordOperation(ctx, "CreateTodo", fmt.Errorf("wrapped: %w", &domain.ValidationError{}))
	metrics.RecordOperation(ctx, "ListTodos", errors.New("boom"))

	got := sumBy(t, collect(t, reader, "todo.operations.total"), telemetry.AttrResult)
	want := map[string]int64{
		telemetry.ResultSuccess:    2,
		telemetry.ResultNotFound:   1,
		telemetry.ResultValidation: 1,
		telemetry.ResultError:      1,
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("result %q = %d, want %d (all: %v)", k, got[k], v, got)
		}
	}
}

func TestMetrics_ObserveItemsFollowsCount(t *testing.T) {
	t.Parallel()
	metrics, reader := newManualMetrics(t)

	count := 3
	if err := metrics.ObserveItems(func(context.Context) int { return count }); err != nil {
		t.Fatalf("ObserveItems() error = %v", err)
	}

	for _, want := range []int{3, 0, 7} {
		count = want
		gauge, ok := collect(t, reader, "todo.items").(metricdata.Gauge[int64])
		if !ok {
			t.Fatal("todo.items is not an int64 gauge")
		}
		if len(gauge.DataPoints) != 1 || gauge.DataPoints[0].Value != int64(want) {
			t.Errorf("todo.items = %+v, want single point %d", gauge.DataPoints, want)
		}
	}
}

func TestMetrics_RecordRequest(t *testing.T) {
	t.Parallel()
	metrics, reader := newManualMetrics(t)
	ctx := context.Background()

	metrics.RecordRequest(ctx, http.MethodGet, "/api/v1/todos/{id}", http.StatusOK, 5*time.Millisecond)
	metrics.RecordRequest(ctx, http.MethodGet, "/api/v1/todos/{id}", http.StatusNotFound, time.Millisecond)
	metrics.RecordRequest(ctx, http.MethodPost, "/api/v1/todos", http.StatusInternalServerError, time.Millisecond)

	byResult := sumBy(t, collect(t, reader, "http.server.request.total"), telemetry.AttrResult)
	if byResult[telemetry.ResultSuccess] != 2 || byResult[telemetry.ResultError] != 1 {
		t.Errorf("requests by result = %v, want 2 success, 1 error", byResult)
	}

	byRoute := sumBy(t, collect(t, reader, "http.server.request.total"), semconv.HTTPRouteKey)
	if byRoute["/api/v1/todos/{id}"] != 2 {
		t.Errorf("requests by route = %v, want 2 for /api/v1/todos/{id}", byRoute)
	}

	hist, ok := collect(t, reader, "http.server.request.duration").(metricdata.Histogram[float64])
	if !ok || len(hist.DataPoints) == 0 {
		t.Fatalf("http.server.request.duration not recorded as histogram")
	}
}

func TestMetrics_RecordPanic(t *testing.T) {
	t.Parallel()
	metrics, reader := newManualMetrics(t)

	metrics.RecordPanic(context.Background(), http.MethodDelete, "/api/v1/todos/{id}")

	got := sumBy(t, collect(t, reader, "http.server.panics.total"), semconv.HTTPRequestMethodKey)
	if got[http.MethodDelete] != 1 {
		t.Errorf("panics by method = %v, want DELETE: 1", got)
	}
}

func TestMetrics_NilReceiver(t *testing.T) {
	t.Parallel()

	var metrics *telemetry.Metrics
	ctx := context.Background()
	metrics.RecordOperation(ctx, "GetTodo", nil)
	metrics.RecordRequest(ctx, http.MethodGet, "/", http.StatusOK, time.Second)
	metrics.RecordPanic(ctx, http.MethodGet, "/")
	if err := metrics.ObserveItems(func(context.Context) int { return 1 }); err != nil {
		t.Errorf("nil ObserveItems() = %v, want nil", err)
	}
}

func TestOutcome(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		err  error
		want string
	}{
		"nil":        {nil, telemetry.ResultSuccess},
		"not found":  {&domain.NotFoundError{ID: "1"}, telemetry.ResultNotFound},
		"validation": {&domain.ValidationError{}, telemetry.ResultValidation},
		"other":      {errors.New("x"), telemetry.ResultError},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			if got := telemetry.Outcome(tt.err); got != tt.want {
				t.Errorf("Outcome(%v) = %q, want %q", tt.err, got, tt.want)
			}
		})
	}
}
