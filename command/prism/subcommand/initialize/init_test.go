package initialize

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.scnd.dev/open/prism/command/prism/app"
	"go.scnd.dev/open/prism/command/prism/index"
	"go.scnd.dev/open/prism/command/prism/template"
)

func TestInitWritesTemplate(t *testing.T) {
	directory := t.TempDir()
	application, out := app.SetupAppTest(t, directory, nil)

	require.NoError(t, Run(context.Background(), application, new(Command)))

	content, err := os.ReadFile(filepath.Join(directory, index.ConfigFile))
	require.NoError(t, err)
	require.Equal(t, template.StructurePrismConfig, content)
	require.Contains(t, out.String(), "created "+filepath.Join(directory, index.ConfigFile))
	require.Contains(t, out.String(), "3. run prism build")

	// * template loads as a valid configuration
	cfg, err := app.Config(&app.Option{Directory: directory})
	require.NoError(t, err)
	require.Equal(t, "VULKAN_SDK", *cfg.Compiler.Environment)
	require.Nil(t, cfg.Storage)
}

func TestInitRefusesOverwrite(t *testing.T) {
	directory := t.TempDir()
	path := filepath.Join(directory, index.ConfigFile)
	require.NoError(t, os.WriteFile(path, []byte("compiler: {}\n"), 0o644))
	application, _ := app.SetupAppTest(t, directory, nil)

	err := Run(context.Background(), application, new(Command))
	require.ErrorIs(t, err, ErrConfigExists)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "compiler: {}\n", string(content))
}

func TestInitForce(t *testing.T) {
	directory := t.TempDir()
	path := filepath.Join(directory, index.ConfigFile)
	require.NoError(t, os.WriteFile(path, []byte("compiler: {}\n"), 0o644))
	application, _ := app.SetupAppTest(t, directory, nil)

	require.NoError(t, Run(context.Background(), application, &Command{Force: true}))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, template.StructurePrismConfig, content)
}

func TestInitForceRepairsInvalidConfig(t *testing.T) {
	directory := t.TempDir()
	path := filepath.Join(directory, index.ConfigFile)
	require.NoError(t, os.WriteFile(path, []byte("storage:\n  endpoint: not a url\n"), 0o644))

	application, stop, err := app.Start(context.Background(), &app.Option{
		Directory:  directory,
		Out:        new(bytes.Buffer),
		SkipConfig: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, stop(context.Background())) })

	require.NoError(t, Run(context.Background(), application, &Command{Force: true}))

	cfg, err := app.Config(&app.Option{Directory: directory})
	require.NoError(t, err)
	require.Nil(t, cfg.Storage)
}
