package app

import (
	"context"

	"go.scnd.dev/open/prism/core"
	"go.uber.org/fx"
)

// Start assembles the application and runs lifecycle start hooks. The
// returned stop function runs the stop hooks.
func Start(ctx context.Context, option *Option) (*App, func(context.Context) error, error) {
	var application *App
	container := fx.New(
		fx.NopLogger,
		fx.Supply(option),
		fx.Provide(
			Config,
			PrismConfig,
			core.New,
			New,
		),
		fx.Populate(&application),
	)
	if err := container.Err(); err != nil {
		return nil, nil, err
	}

	if err := container.Start(ctx); err != nil {
		return nil, nil, err
	}

	return application, container.Stop, nil
}
