package build

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.scnd.dev/open/prism/command/prism/app"
	"go.scnd.dev/open/prism/command/prism/procedure/compiler"
	"go.scnd.dev/open/prism/command/prism/procedure/driver"
)

type Command struct {
	CompilerRoot string        `help:"Override the compiler install path." name:"compiler-root" placeholder:"PATH"`
	Timeout      time.Duration `help:"Abort a single compiler invocation after this duration." placeholder:"DURATION"`
}

func (r *Command) Run(app *app.App) error {
	return Run(context.Background(), app, r, compiler.NewExecRunner())
}

func Run(ctx context.Context, app *app.App, command *Command, runner compiler.Runner) error {
	s, ctx := app.Layer("build", "command").With(ctx)
	defer s.End()

	// * apply flag overrides
	config := *app.Config().Compiler
	if command.CompilerRoot != "" {
		config.Root = &command.CompilerRoot
	}
	if command.Timeout > 0 {
		config.Timeout = &command.Timeout
	}

	// * construct compiler
	c, err := compiler.New(&config, runner)
	if err != nil {
		return s.Error("unable to resolve compiler", err)
	}
	if *app.Verbose() {
		log.Printf("using compiler %s %v", c.Executable, c.Flags)
	}

	// * build shaders
	d := driver.New(*app.Directory(), c, app.Out(), app.Layer("driver", "procedure"), app.Prism().Instrument())
	report, err := d.Build(ctx)
	if err != nil {
		return s.Error("build aborted", err)
	}

	for _, result := range report.Failed() {
		fmt.Fprintf(app.Out(), "failed: %s (exit %d)\n", result.Source.Name, result.ExitCode)
		if result.Diagnostics != "" {
			fmt.Fprintln(app.Out(), result.Diagnostics)
		}
	}
	if *app.Verbose() {
		for _, result := range report.Succeeded() {
			log.Printf("compiled %s in %s", result.Output, result.Duration)
		}
	}
	fmt.Fprintln(app.Out(), report.Summary())

	if len(report.Failed()) > 0 {
		return s.Error("build failed", fmt.Errorf("%d of %d shaders failed to compile", len(report.Failed()), len(report.Results)))
	}

	return nil
}
