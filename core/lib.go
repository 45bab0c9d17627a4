package core

import (
	"context"

	"go.opentelemetry.io/otel/trace"
	"go.scnd.dev/open/prism"
	"go.scnd.dev/open/prism/package/span"
	"go.scnd.dev/open/prism/package/telemetry"
	"go.uber.org/fx"
)

type Instance struct {
	config    *prism.Config
	telemetry *telemetry.Telemetry
}

func New(lc fx.Lifecycle, config *prism.Config) (_ prism.Prism, err error) {
	i := &Instance{
		config:    config,
		telemetry: nil,
	}

	i.telemetry, err = telemetry.New(context.Background(), config)
	if err != nil {
		return nil, err
	}

	// * flush telemetry on shutdown
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return i.telemetry.Shutdown(ctx)
		},
	})

	return i, nil
}

func (r *Instance) Config() *prism.Config {
	return r.config
}

func (r *Instance) Layer(name string, typ string) prism.Layer {
	return span.NewLayer(r, name, typ)
}

func (r *Instance) Tracer() trace.Tracer {
	return r.telemetry.Tracer
}

func (r *Instance) Instrument() prism.Instrument {
	return r.telemetry.Instrument
}
