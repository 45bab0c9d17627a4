// Package spirv reads the module header of compiled SPIR-V blobs.
package spirv

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"
)

const (
	Magic       uint32 = 0x07230203
	WordSize           = 4
	HeaderWords        = 5
)

var ErrInvalid = errors.New("invalid spir-v module")

type Header struct {
	ByteOrder binary.ByteOrder
	Version   uint32
	Generator uint32
	Bound     uint32
	Schema    uint32
	Words     int
}

// VersionString formats the version word as "major.minor".
func (r *Header) VersionString() string {
	major := (r.Version >> 16) & 0xff
	minor := (r.Version >> 8) & 0xff
	return fmt.Sprintf("%d.%d", major, minor)
}

func Parse(data []byte) (*Header, error) {
	if len(data) < HeaderWords*WordSize {
		return nil, fmt.Errorf("%w: %d bytes is shorter than the header", ErrInvalid, len(data))
	}
	if len(data)%WordSize != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a whole number of words", ErrInvalid, len(data))
	}

	// * detect endianness from magic
	var order binary.ByteOrder
	switch {
	case binary.LittleEndian.Uint32(data) == Magic:
		order = binary.LittleEndian
	case binary.BigEndian.Uint32(data) == Magic:
		order = binary.BigEndian
	default:
		return nil, fmt.Errorf("%w: bad magic number 0x%08x", ErrInvalid, binary.LittleEndian.Uint32(data))
	}

	return &Header{
		ByteOrder: order,
		Version:   order.Uint32(data[4:]),
		Generator: order.Uint32(data[8:]),
		Bound:     order.Uint32(data[12:]),
		Schema:    order.Uint32(data[16:]),
		Words:     len(data) / WordSize,
	}, nil
}

func Inspect(path string) (*Header, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Encode writes a header-only module. Used to produce placeholder blobs.
func Encode(order binary.ByteOrder, version uint32, bound uint32) []byte {
	data := make([]byte, HeaderWords*WordSize)
	order.PutUint32(data[0:], Magic)
	order.PutUint32(data[4:], version)
	order.PutUint32(data[8:], 0)
	order.PutUint32(data[12:], bound)
	order.PutUint32(data[16:], 0)
	return data
}
