package app

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/bsthun/gut"
	"go.scnd.dev/open/prism"
	"go.scnd.dev/open/prism/command/prism/common/config"
	"go.scnd.dev/open/prism/command/prism/index"
)

var Version = "dev"

type Option struct {
	Verbose   bool
	Directory string
	Config    string
	Out       io.Writer

	// SkipConfig leaves prism.yml unread, for commands that rewrite it.
	SkipConfig bool
}

var _ index.App = (*App)(nil)

type App struct {
	option *Option
	config *index.Config
	prism  prism.Prism
}

func New(option *Option, config *index.Config, prism prism.Prism) *App {
	return &App{
		option: option,
		config: config,
		prism:  prism,
	}
}

// Config loads prism.yml from the shader directory, falling back to
// defaults when the file does not exist.
func Config(option *Option) (*index.Config, error) {
	if option.SkipConfig {
		return index.DefaultConfig(), nil
	}

	path := option.Config
	if path == "" {
		path = index.ConfigFile
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(option.Directory, path)
	}

	cfg, err := config.New[index.Config](path)
	if errors.Is(err, os.ErrNotExist) {
		return index.DefaultConfig(), nil
	}
	if err != nil {
		return nil, err
	}

	if cfg.Compiler == nil {
		cfg.Compiler = index.DefaultConfig().Compiler
	}

	return cfg, nil
}

func PrismConfig(config *index.Config) *prism.Config {
	cfg := &prism.Config{
		AppName:               gut.Ptr("prism"),
		AppVersion:            gut.Ptr(Version),
		TelemetryUrl:          nil,
		TelemetryOrganization: nil,
	}
	if config.Telemetry != nil {
		cfg.TelemetryUrl = config.Telemetry.Url
		cfg.TelemetryOrganization = config.Telemetry.Organization
	}
	return cfg
}

func (r *App) Verbose() *bool {
	return &r.option.Verbose
}

func (r *App) Directory() *string {
	return &r.option.Directory
}

func (r *App) Config() *index.Config {
	return r.config
}

func (r *App) Out() io.Writer {
	if r.option.Out == nil {
		return os.Stdout
	}
	return r.option.Out
}

func (r *App) Prism() prism.Prism {
	return r.prism
}

func (r *App) Layer(name string, typ string) prism.Layer {
	return r.prism.Layer(name, typ)
}
