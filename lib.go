package prism

import (
	"go.opentelemetry.io/otel/trace"
)

// Prism is the runtime shared by every subcommand. It owns the configuration
// and the telemetry providers that span layers report into.
type Prism interface {
	Config() *Config
	Layer(name string, typ string) Layer
	Tracer() trace.Tracer
	Instrument() Instrument
}
