package middleware_test

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/acclimations/todo-backend/internal/platform/telemetry"
)

type middlewareFunc = func(http.Handler) http.Handler

// todoRoutes mounts handler on the todo API's routes behind mws, the way
// the server does.
func todoRoutes(handler http.HandlerFunc, mws ...middlewareFunc) http.Handler {
	r := chi.NewRouter()
	r.Use(mws...)
	r.Get("/api/v1/todos", handler)
	r.Post("/api/v1/todos", handler)
	r.Get("/api/v1/todos/{id}", handler)
	r.Put("/api/v1/todos/{id}", handler)
	r.Delete("/api/v1/todos/{id}", handler)
	return r
}

func serve(h http.Handler, method, target string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, http.NoBody)
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func bufferLogger(level slog.Level) (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: level})), &buf
}

// logLine returns the first JSON record whose msg is msg, or nil.
func logLine(t *testing.T, buf *bytes.Buffer, msg string) map[string]any {
	t.Helper()

	sc := bufio.NewScanner(bytes.NewReader(buf.Bytes()))
	for sc.Scan() {
		var rec map[string]any
		if err := json.Unmarshal(sc.Bytes(), &rec); err != nil {
			t.Fatalf("log line %q is not JSON: %v", sc.Text(), err)
		}
		if rec["msg"] == msg {
			return rec
		}
	}
	return nil
}

func newTestMetrics(t *testing.T) (*telemetry.Metrics, *sdkmetric.ManualReader) {
	t.Helper()

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	metrics, err := telemetry.NewMetrics(mp, "middleware-test")
	if err != nil {
		t.Fatalf("NewMetrics() error = %v", err)
	}
	return metrics, reader
}

// counterPoints returns the data points of the int64 counter called name.
func counterPoints(t *testing.T, reader *sdkmetric.ManualReader, name string) []metricdata.DataPoint[int64] {
	t.Helper()

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != name {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				t.Fatalf("%s aggregation = %T, want Sum[int64]", name, m.Data)
			}
			return sum.DataPoints
		}
	}
	return nil
}

func attrOf(set attribute.Set, key attribute.Key) string {
	v, _ := set.Value(key)
	return v.Emit()
}
