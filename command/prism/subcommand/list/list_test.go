package list

import (
	"context"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.scnd.dev/open/prism/command/prism/app"
	"go.scnd.dev/open/prism/command/prism/procedure/spirv"
)

func TestList(t *testing.T) {
	directory := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(directory, "basic.vert"), []byte("#version 450\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(directory, "basic_vert.spv"), spirv.Encode(binary.LittleEndian, 0x00010300, 8), 0o644))
	application, out := app.SetupAppTest(t, directory, nil)

	require.NoError(t, Run(context.Background(), application, new(Command)))
	require.Contains(t, out.String(), "sources (1)")
	require.Contains(t, out.String(), "basic.vert [vert]")
	require.Contains(t, out.String(), "-> basic_vert.spv")
	require.Contains(t, out.String(), "basic_vert.spv [spir-v 1.3, 5 words]")
}

func TestListMissingDirectory(t *testing.T) {
	application, _ := app.SetupAppTest(t, filepath.Join(t.TempDir(), "missing"), nil)

	require.ErrorContains(t, Run(context.Background(), application, new(Command)), "unable to scan shader sources")
}
