package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.scnd.dev/open/prism/command/prism/index"
)

func TestConfigDefaultsWithoutFile(t *testing.T) {
	cfg, err := Config(&Option{Directory: t.TempDir()})
	require.NoError(t, err)
	require.NotNil(t, cfg.Compiler)
	require.Nil(t, cfg.Compiler.Root)
	require.Nil(t, cfg.Storage)
}

func TestConfigLoadsFile(t *testing.T) {
	t.Setenv("PRISM_APP_TEST_SDK", "/opt/vulkan")
	directory := t.TempDir()
	content := "compiler:\n  root: \"{{ env.PRISM_APP_TEST_SDK }}\"\n  timeout: 30s\ntelemetry:\n  url: collector:4317\n"
	require.NoError(t, os.WriteFile(filepath.Join(directory, index.ConfigFile), []byte(content), 0o644))

	cfg, err := Config(&Option{Directory: directory})
	require.NoError(t, err)
	require.Equal(t, "/opt/vulkan", *cfg.Compiler.Root)
	require.Equal(t, "30s", cfg.Compiler.Timeout.String())
	require.Equal(t, "collector:4317", *PrismConfig(cfg).TelemetryUrl)
}

func TestConfigRejectsInvalidStorage(t *testing.T) {
	directory := t.TempDir()
	content := "storage:\n  endpoint: not a url\n"
	require.NoError(t, os.WriteFile(filepath.Join(directory, "custom.yml"), []byte(content), 0o644))

	_, err := Config(&Option{Directory: directory, Config: "custom.yml"})
	require.ErrorContains(t, err, "invalid configuration")
	require.ErrorContains(t, err, "storage.endpoint: url")
}

func TestConfigSkipIgnoresBrokenFile(t *testing.T) {
	directory := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(directory, index.ConfigFile), []byte("storage:\n  endpoint: not a url\n"), 0o644))

	_, err := Config(&Option{Directory: directory})
	require.Error(t, err)

	cfg, err := Config(&Option{Directory: directory, SkipConfig: true})
	require.NoError(t, err)
	require.Nil(t, cfg.Storage)

	_, stop, err := Start(context.Background(), &Option{Directory: directory, SkipConfig: true})
	require.NoError(t, err)
	require.NoError(t, stop(context.Background()))
}

func TestStart(t *testing.T) {
	out := new(bytes.Buffer)
	application, stop, err := Start(context.Background(), &Option{
		Directory: t.TempDir(),
		Out:       out,
	})
	require.NoError(t, err)
	require.NotNil(t, application.Prism())
	require.Equal(t, "prism", *application.Prism().Config().AppName)
	require.Same(t, out, application.Out())
	require.NoError(t, stop(context.Background()))
}
