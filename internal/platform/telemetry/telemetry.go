// Package telemetry installs the OpenTelemetry SDK for the todo backend and
// owns the service's metric instruments.
//
//	p, err := telemetry.Start(ctx, telemetry.Settings{
//		ServiceName: "todo-backend",
//		Exporter:    telemetry.ExporterOTLP,
//		Endpoint:    "http://otel-collector:4318",
//	})
//	defer p.Shutdown(ctx)
//
//	metrics, err := telemetry.NewMetrics(p.Meter, "todo-backend")
//	err = metrics.ObserveItems(store.Count)
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"
)

// Exporter names accepted in Settings.Exporter.
const (
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
)

var (
	errUnknownExporter = errors.New("unknown exporter")
	errNoEndpoint      = errors.New("otlp exporter needs an endpoint")
)

// Settings selects where spans and metrics go.
type Settings struct {
	ServiceName string
	Exporter    string
	// Endpoint is the collector URL, e.g. "http://otel-collector:4318".
	// Only used by the OTLP exporter; an https scheme enables TLS.
	Endpoint string
}

// Providers are the SDK providers installed as the OpenTelemetry globals.
type Providers struct {
	Tracer *sdktrace.TracerProvider
	Meter  *sdkmetric.MeterProvider
}

// Start builds tracer and meter providers for s, installs them together with
// a W3C trace-context and baggage propagator as the globals, and returns
// them. Callers must Shutdown the result to flush pending data.
func Start(ctx context.Context, s Settings) (*Providers, error) {
	dst, err := resolveDestination(s.Exporter, s.Endpoint)
	if err != nil {
		return nil, err
	}

	res, err := resource.Merge(resource.Default(),
		resource.NewWithAttributes(semconv.SchemaURL, semconv.ServiceName(s.ServiceName)))
	if err != nil {
		return nil, fmt.Errorf("building resource: %w", err)
	}

	spans, err := dst.spanExporter(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating span exporter: %w", err)
	}
	readings, err := dst.metricExporter(ctx)
	if err != nil {
		_ = spans.Shutdown(ctx)
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	p := &Providers{
		Tracer: sdktrace.NewTracerProvider(
			sdktrace.WithBatcher(spans),
			sdktrace.WithResource(res),
		),
		Meter: sdkmetric.NewMeterProvider(
			sdkmetric.WithReader(sdkmetric.NewPeriodicReader(readings)),
			sdkmetric.WithResource(res),
		),
	}

	otel.SetTracerProvider(p.Tracer)
	otel.SetMeterProvider(p.Meter)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	return p, nil
}

// Shutdown flushes and stops both providers. It is safe on a nil receiver
// and on a partially filled Providers.
func (p *Providers) Shutdown(ctx context.Context) error {
	if p == nil {
		return nil
	}
	var errs []error
	if p.Tracer != nil {
		if err := p.Tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer: %w", err))
		}
	}
	if p.Meter != nil {
		if err := p.Meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter: %w", err))
		}
	}
	return errors.Join(errs...)
}

// destination is a validated exporter choice.
type destination struct {
	otlp     bool
	hostPort string
	insecure bool
}

func resolveDestination(exporter, endpoint string) (destination, error) {
	switch exporter {
	case ExporterStdout:
		return destination{}, nil
	case ExporterOTLP:
		if endpoint == "" {
			return destination{}, errNoEndpoint
		}
		d := destination{otlp: true, hostPort: endpoint, insecure: true}
		if u, err := url.Parse(endpoint); err == nil && u.Host != "" {
			d.hostPort = u.Host
			d.insecure = u.Scheme != "https"
		}
		return d, nil
	default:
		return destination{}, fmt.Errorf("%w %q", errUnknownExporter, exporter)
	}
}

func (d destination) spanExporter(ctx context.Context) (sdktrace.SpanExporter, error) {
	if !d.otlp {
		return stdouttrace.New(stdouttrace.WithPrettyPrint())
	}
	opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(d.hostPort)}
	if d.insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	return otlptracehttp.New(ctx, opts...)
}

func (d destination) metricExporter(ctx context.Context) (sdkmetric.Exporter, error) {
	if !d.otlp {
		return stdoutmetric.New()
	}
	opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(d.hostPort)}
	if d.insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}
	return otlpmetrichttp.New(ctx, opts...)
}
