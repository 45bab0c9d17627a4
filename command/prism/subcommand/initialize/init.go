package initialize

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lithammer/dedent"
	"go.scnd.dev/open/prism/command/prism/app"
	"go.scnd.dev/open/prism/command/prism/index"
	"go.scnd.dev/open/prism/command/prism/template"
)

var ErrConfigExists = errors.New("configuration file already exists")

type Command struct {
	Force bool `help:"Overwrite an existing configuration file." short:"f"`
}

func (r *Command) Run(app *app.App) error {
	return Run(context.Background(), app, r)
}

func Run(ctx context.Context, app *app.App, command *Command) error {
	s, _ := app.Layer("init", "command").With(ctx)
	defer s.End()

	path := filepath.Join(*app.Directory(), index.ConfigFile)
	s.Variable("path", path)

	// * check existing file
	if _, err := os.Stat(path); err == nil && !command.Force {
		return s.Error(fmt.Sprintf("refusing to overwrite %s, use --force", path), ErrConfigExists)
	}

	// * write template
	if err := os.WriteFile(path, template.StructurePrismConfig, 0o644); err != nil {
		return s.Error("unable to write configuration file", err)
	}

	message := dedent.Dedent(`
		created %s

		next steps:
		  1. point compiler.root at your Vulkan SDK, or export VULKAN_SDK
		  2. place .vert and .frag sources next to the configuration file
		  3. run prism build
	`)
	fmt.Fprintf(app.Out(), strings.TrimLeft(message, "\n"), path)

	return nil
}
