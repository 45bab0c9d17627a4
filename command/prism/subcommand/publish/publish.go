package publish

import (
	"context"
	"fmt"
	"log"

	"go.scnd.dev/open/prism/command/prism/app"
	"go.scnd.dev/open/prism/command/prism/procedure/publish"
	"go.scnd.dev/open/prism/command/prism/procedure/shader"
)

type Command struct {
	Prefix string `help:"Override the object key prefix." placeholder:"PREFIX"`
}

func (r *Command) Run(app *app.App) error {
	return Run(context.Background(), app, r, nil)
}

func Run(ctx context.Context, app *app.App, command *Command, uploader publish.Uploader) error {
	s, ctx := app.Layer("publish", "command").With(ctx)
	defer s.End()

	// * apply flag overrides
	config := app.Config().Storage
	if config == nil {
		return s.Error("unable to publish", publish.ErrStorageMissing)
	}
	override := *config
	if command.Prefix != "" {
		override.Prefix = &command.Prefix
	}

	// * connect storage
	if uploader == nil {
		client, err := publish.NewClient(config)
		if err != nil {
			return s.Error("unable to connect storage", err)
		}
		uploader = client
	}

	publisher, err := publish.New(&override, uploader, app.Out())
	if err != nil {
		return s.Error("unable to publish", err)
	}

	artifacts, err := shader.ScanArtifacts(*app.Directory())
	if err != nil {
		return s.Error("unable to scan artifacts", err)
	}
	if len(artifacts) == 0 {
		fmt.Fprintln(app.Out(), "nothing to publish, run prism build first")
		return nil
	}

	uploads, err := publisher.Publish(ctx, artifacts)
	if err != nil {
		return s.Error("publish failed", err)
	}
	if *app.Verbose() {
		for _, upload := range uploads {
			log.Printf("uploaded %s with etag %s", upload.Object, upload.ETag)
		}
	}

	return nil
}
