package telemetry

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.38.0"
	"go.opentelemetry.io/otel/trace"
	"go.scnd.dev/open/prism"
	"go.scnd.dev/open/prism/package/span"
)

type Telemetry struct {
	Config         *prism.Config
	Meter          metric.Meter
	Tracer         trace.Tracer
	Instrument     *Instrument
	MeterProvider  *sdkmetric.MeterProvider
	TracerProvider *sdktrace.TracerProvider
}

func New(ctx context.Context, config *prism.Config) (_ *Telemetry, err error) {
	// * construct telemetry
	telemetry := &Telemetry{
		Config:     config,
		Meter:      nil,
		Tracer:     nil,
		Instrument: nil,
	}

	// * construct resource
	attributes := make([]attribute.KeyValue, 0)
	if config.AppName != nil {
		attributes = append(attributes, semconv.ServiceName(*config.AppName))
	}
	if config.AppVersion != nil {
		attributes = append(attributes, semconv.ServiceVersion(*config.AppVersion))
	}
	res, err := resource.New(ctx, resource.WithAttributes(attributes...))
	if err != nil {
		return nil, span.NewError(nil, "unable to initialize resource", err)
	}

	// * construct meter
	telemetry.Meter, err = NewMeter(ctx, telemetry, res)
	if err != nil {
		return nil, err
	}

	// * construct tracer
	telemetry.Tracer, err = NewTracer(ctx, telemetry, res)
	if err != nil {
		return nil, err
	}

	// * construct instrument
	telemetry.Instrument, err = NewInstrument(telemetry.Meter)
	if err != nil {
		return nil, span.NewError(nil, "unable to initialize instrument", err)
	}

	return telemetry, nil
}

// Exporting reports whether an OTLP collector endpoint is configured.
func (r *Telemetry) Exporting() bool {
	return r.Config.TelemetryUrl != nil && *r.Config.TelemetryUrl != ""
}

func (r *Telemetry) headers() map[string]string {
	headers := make(map[string]string)
	if r.Config.TelemetryOrganization != nil {
		headers["X-Scope-OrgID"] = *r.Config.TelemetryOrganization
	}
	return headers
}

func NewMeter(ctx context.Context, telemetry *Telemetry, res *resource.Resource) (metric.Meter, error) {
	options := []sdkmetric.Option{
		sdkmetric.WithResource(res),
	}

	// * construct exporter
	if telemetry.Exporting() {
		exporter, err := otlpmetricgrpc.New(
			ctx,
			otlpmetricgrpc.WithEndpoint(*telemetry.Config.TelemetryUrl),
			otlpmetricgrpc.WithHeaders(telemetry.headers()),
			otlpmetricgrpc.WithInsecure(),
		)
		if err != nil {
			return nil, span.NewError(nil, "unable to initialize metric exporter", err)
		}
		options = append(options, sdkmetric.WithReader(sdkmetric.NewPeriodicReader(
			exporter,
			sdkmetric.WithInterval(time.Minute),
		)))
	}

	// * construct provider
	telemetry.MeterProvider = sdkmetric.NewMeterProvider(options...)
	otel.SetMeterProvider(telemetry.MeterProvider)

	return telemetry.MeterProvider.Meter("prism-meter"), nil
}

func NewTracer(ctx context.Context, telemetry *Telemetry, res *resource.Resource) (trace.Tracer, error) {
	options := []sdktrace.TracerProviderOption{
		sdktrace.WithResource(res),
	}

	// * construct exporter
	if telemetry.Exporting() {
		exporter, err := otlptracegrpc.New(
			ctx,
			otlptracegrpc.WithEndpoint(*telemetry.Config.TelemetryUrl),
			otlptracegrpc.WithHeaders(telemetry.headers()),
			otlptracegrpc.WithInsecure(),
		)
		if err != nil {
			return nil, span.NewError(nil, "unable to initialize trace exporter", err)
		}
		options = append(options, sdktrace.WithBatcher(exporter))
	}

	// * construct provider
	telemetry.TracerProvider = sdktrace.NewTracerProvider(options...)
	otel.SetTracerProvider(telemetry.TracerProvider)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return telemetry.TracerProvider.Tracer("prism-tracer"), nil
}

// Shutdown flushes pending spans and metrics.
func (r *Telemetry) Shutdown(ctx context.Context) error {
	var errs []error
	if r.TracerProvider != nil {
		errs = append(errs, r.TracerProvider.Shutdown(ctx))
	}
	if r.MeterProvider != nil {
		errs = append(errs, r.MeterProvider.Shutdown(ctx))
	}
	return errors.Join(errs...)
}
