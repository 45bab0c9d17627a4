package spirv

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLittleEndian(t *testing.T) {
	data := Encode(binary.LittleEndian, 0x00010300, 42)
	data = append(data, 0, 0, 0, 0)

	header, err := Parse(data)
	require.NoError(t, err)
	require.Equal(t, binary.LittleEndian, header.ByteOrder)
	require.Equal(t, "1.3", header.VersionString())
	require.EqualValues(t, 42, header.Bound)
	require.Equal(t, 6, header.Words)
}

func TestParseBigEndian(t *testing.T) {
	header, err := Parse(Encode(binary.BigEndian, 0x00010000, 7))
	require.NoError(t, err)
	require.Equal(t, binary.BigEndian, header.ByteOrder)
	require.Equal(t, "1.0", header.VersionString())
}

func TestParseRejects(t *testing.T) {
	_, err := Parse([]byte{0x03, 0x02, 0x23, 0x07})
	require.ErrorIs(t, err, ErrInvalid)

	_, err = Parse(append(Encode(binary.LittleEndian, 0x00010000, 1), 0x00))
	require.ErrorIs(t, err, ErrInvalid)

	_, err = Parse([]byte("#version 450\nvoid main"))
	require.ErrorIs(t, err, ErrInvalid)
}

func TestInspect(t *testing.T) {
	path := filepath.Join(t.TempDir(), "basic_frag.spv")
	require.NoError(t, os.WriteFile(path, Encode(binary.LittleEndian, 0x00010500, 3), 0o644))

	header, err := Inspect(path)
	require.NoError(t, err)
	require.Equal(t, "1.5", header.VersionString())

	_, err = Inspect(filepath.Join(t.TempDir(), "missing.spv"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
