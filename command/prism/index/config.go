package index

import (
	"go.scnd.dev/open/prism/command/prism/procedure/compiler"
	"go.scnd.dev/open/prism/command/prism/procedure/publish"
)

const ConfigFile = "prism.yml"

// Config is the contents of prism.yml.
type Config struct {
	Compiler  *compiler.Config `yaml:"compiler"`
	Storage   *publish.Config  `yaml:"storage"`
	Telemetry *Telemetry       `yaml:"telemetry"`
}

type Telemetry struct {
	Url          *string `yaml:"url" validate:"omitempty,hostname_port"`
	Organization *string `yaml:"organization"`
}

func DefaultConfig() *Config {
	return &Config{
		Compiler:  new(compiler.Config),
		Storage:   nil,
		Telemetry: nil,
	}
}
