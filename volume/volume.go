// Package volume loads raw scalar volumes from disk and synthesizes
// procedural test fields. All volumes are promoted to float32 on load
// regardless of the on-disk encoding.
package volume

import (
	"fmt"
	"math"
)

// GridShape is the extent of a volume along each axis, in voxels.
type GridShape struct {
	X, Y, Z int
}

// String renders the shape the way it appears in raw file names.
func (s GridShape) String() string {
	return fmt.Sprintf("%dx%dx%d", s.X, s.Y, s.Z)
}

// Voxels returns the total sample count, or an error if the shape is
// degenerate or the product overflows int.
func (s GridShape) Voxels() (int, error) {
	if s.X <= 0 || s.Y <= 0 || s.Z <= 0 {
		return 0, fmt.Errorf("volume: invalid shape %s", s)
	}
	n := s.X * s.Y * s.Z
	if n/s.X/s.Y != s.Z || n > math.MaxInt/4 {
		return 0, fmt.Errorf("volume: shape %s overflows", s)
	}
	return n, nil
}

// Encoding identifies the per-voxel scalar encoding of a raw file.
type Encoding int

const (
	EncodingUint8 Encoding = iota
	EncodingUint16
	EncodingFloat32
)

func (e Encoding) String() string {
	switch e {
	case EncodingUint8:
		return "uint8"
	case EncodingUint16:
		return "uint16"
	case EncodingFloat32:
		return "float32"
	}
	return "unknown"
}

// ByteWidth returns the on-disk size of one voxel.
func (e Encoding) ByteWidth() int {
	switch e {
	case EncodingUint8:
		return 1
	case EncodingUint16:
		return 2
	case EncodingFloat32:
		return 4
	}
	return 0
}

// EncodingForDType maps the dtype token of a raw file name to an
// encoding. Unknown tokens yield an UnsupportedEncodingError.
func EncodingForDType(dtype string) (Encoding, error) {
	switch dtype {
	case "uint8":
		return EncodingUint8, nil
	case "uint16":
		return EncodingUint16, nil
	case "float32":
		return EncodingFloat32, nil
	}
	return 0, &UnsupportedEncodingError{DType: dtype}
}
