package list

import (
	"context"

	"go.scnd.dev/open/prism/command/prism/app"
	"go.scnd.dev/open/prism/command/prism/procedure/printer"
	"go.scnd.dev/open/prism/command/prism/procedure/shader"
)

type Command struct{}

func (r *Command) Run(app *app.App) error {
	return Run(context.Background(), app, r)
}

func Run(ctx context.Context, app *app.App, command *Command) error {
	s, _ := app.Layer("list", "command").With(ctx)
	defer s.End()

	sources, err := shader.Scan(*app.Directory())
	if err != nil {
		return s.Error("unable to scan shader sources", err)
	}

	artifacts, err := shader.ScanArtifacts(*app.Directory())
	if err != nil {
		return s.Error("unable to scan artifacts", err)
	}

	if err := printer.PrintTree(app.Out(), *app.Directory(), sources, artifacts); err != nil {
		return s.Error("unable to print tree", err)
	}

	return nil
}
