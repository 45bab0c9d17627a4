package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type Instrument struct {
	CompileDurationHistogram metric.Int64Histogram
	CompileResultCounter     metric.Int64Counter
}

func NewInstrument(meter metric.Meter) (*Instrument, error) {
	compileDurationHistogram, err := meter.Int64Histogram(
		"prism.compile.duration",
		metric.WithDescription("Duration of shader compiler invocations"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	compileResultCounter, err := meter.Int64Counter(
		"prism.compile.results",
		metric.WithDescription("Number of shader compiler invocations by outcome"),
	)
	if err != nil {
		return nil, err
	}

	return &Instrument{
		CompileDurationHistogram: compileDurationHistogram,
		CompileResultCounter:     compileResultCounter,
	}, nil
}

func (r *Instrument) CompileRecord(ctx context.Context, duration time.Duration, stage string, status string) {
	attributes := metric.WithAttributes(
		attribute.String("shader.stage", stage),
		attribute.String("compile.status", status),
	)
	r.CompileDurationHistogram.Record(ctx, duration.Milliseconds(), attributes)
	r.CompileResultCounter.Add(ctx, 1, attributes)
}
