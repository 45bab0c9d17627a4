package main

import (
	"context"
	"log"

	"github.com/alecthomas/kong"
	"github.com/bsthun/gut"
	"go.scnd.dev/open/prism/command/prism/app"
	"go.scnd.dev/open/prism/command/prism/subcommand/build"
	"go.scnd.dev/open/prism/command/prism/subcommand/clean"
	"go.scnd.dev/open/prism/command/prism/subcommand/initialize"
	"go.scnd.dev/open/prism/command/prism/subcommand/list"
	"go.scnd.dev/open/prism/command/prism/subcommand/publish"
)

type Command struct {
	Verbose   bool   `help:"Enable verbose output." short:"v"`
	Directory string `help:"Shader directory." short:"C" default:"." type:"existingdir"`
	Config    string `help:"Configuration file, relative to the shader directory." default:"prism.yml"`

	Build   build.Command      `cmd:"" default:"withargs" help:"Compile every shader source in the directory."`
	Clean   clean.Command      `cmd:"" help:"Remove compiled artifacts."`
	List    list.Command       `cmd:"" help:"Show shader sources and compiled artifacts."`
	Init    initialize.Command `cmd:"init" help:"Write a prism.yml template."`
	Publish publish.Command    `cmd:"" help:"Upload compiled artifacts to object storage."`
}

func main() {
	command := new(Command)
	ctx := kong.Parse(
		command,
		kong.Name("prism"),
		kong.Description("Prism Shader Build Driver"),
		kong.UsageOnError(),
	)

	application, stop, err := app.Start(context.Background(), &app.Option{
		Verbose:   command.Verbose,
		Directory: command.Directory,
		Config:    command.Config,
		Out:       nil,

		SkipConfig: ctx.Command() == "init",
	})
	if err != nil {
		gut.Fatal("unable to start prism", err)
	}
	if command.Verbose {
		log.Printf("shader directory %s", command.Directory)
	}

	err = ctx.Run(application)
	if err := stop(context.Background()); err != nil {
		log.Printf("unable to flush telemetry: %v", err)
	}
	ctx.FatalIfErrorf(err)
}
