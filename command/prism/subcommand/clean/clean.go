package clean

import (
	"context"
	"fmt"

	"go.scnd.dev/open/prism/command/prism/app"
	"go.scnd.dev/open/prism/command/prism/procedure/driver"
)

type Command struct {
	DryRun bool `help:"Print the artifacts that would be removed without removing them." name:"dry-run" short:"n"`
}

func (r *Command) Run(app *app.App) error {
	return Run(context.Background(), app, r)
}

func Run(ctx context.Context, app *app.App, command *Command) error {
	s, ctx := app.Layer("clean", "command").With(ctx)
	defer s.End()

	d := driver.New(*app.Directory(), nil, app.Out(), app.Layer("driver", "procedure"), nil)
	artifacts, err := d.Clean(ctx, command.DryRun)
	if err != nil {
		return s.Error("clean failed", err)
	}

	if len(artifacts) == 0 {
		fmt.Fprintln(app.Out(), "nothing to clean")
	}

	return nil
}
