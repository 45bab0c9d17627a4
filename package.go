package prism

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/trace"
)

type Layer interface {
	With(ctx context.Context) (Span, context.Context)
}

type Span interface {
	Started() *time.Time
	Variable(key string, value any)
	Error(message string, err error) error
	Trace() trace.Span
	End()
}

type Instrument interface {
	CompileRecord(ctx context.Context, duration time.Duration, stage string, status string)
}
