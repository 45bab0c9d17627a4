package index

import (
	"io"

	"go.scnd.dev/open/prism"
)

type App interface {
	Verbose() *bool
	Directory() *string
	Config() *Config
	Out() io.Writer
	Prism() prism.Prism
}
