package app

import (
	"bytes"
	"testing"

	"go.scnd.dev/open/prism/command/prism/index"
	"go.scnd.dev/open/prism/core"
	"go.uber.org/fx/fxtest"
)

// SetupAppTest builds an App over directory with an isolated output buffer.
func SetupAppTest(t *testing.T, directory string, config *index.Config) (*App, *bytes.Buffer) {
	t.Helper()

	out := new(bytes.Buffer)
	option := &Option{
		Verbose:   true,
		Directory: directory,
		Config:    index.ConfigFile,
		Out:       out,
	}
	if config == nil {
		config = index.DefaultConfig()
	}

	lc := fxtest.NewLifecycle(t)
	instance, err := core.New(lc, PrismConfig(config))
	if err != nil {
		t.Fatalf("unable to construct prism: %v", err)
	}
	lc.RequireStart()
	t.Cleanup(lc.RequireStop)

	return New(option, config, instance), out
}
