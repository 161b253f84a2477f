package volume

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
)

// Volume is a scalar field promoted to float32, laid out x-fastest.
type Volume struct {
	Name  string
	Shape GridShape
	Data  []float32
}

// LoadRaw reads a raw volume whose shape and encoding are carried in
// its file name. Files shorter than the shape demands are padded with
// zero voxels rather than rejected; trailing bytes beyond the shape
// are ignored.
func LoadRaw(path string) (*Volume, error) {
	parsed, err := ParseRawName(filepath.Base(path))
	if err != nil {
		return nil, err
	}
	enc, err := EncodingForDType(parsed.DType)
	if err != nil {
		return nil, err
	}
	voxels, err := parsed.Shape.Voxels()
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("volume: %w", err)
	}
	defer f.Close()

	raw := make([]byte, voxels*enc.ByteWidth())
	if _, err := io.ReadFull(f, raw); err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, fmt.Errorf("volume: read %s: %w", path, err)
	}

	return &Volume{
		Name:  parsed.Name,
		Shape: parsed.Shape,
		Data:  promote(raw, enc, voxels),
	}, nil
}

// promote widens raw little-endian voxels to float32. Integer
// encodings keep their numeric values; they are not normalized.
func promote(raw []byte, enc Encoding, voxels int) []float32 {
	data := make([]float32, voxels)
	switch enc {
	case EncodingUint8:
		for i := 0; i < voxels; i++ {
			data[i] = float32(raw[i])
		}
	case EncodingUint16:
		for i := 0; i < voxels; i++ {
			data[i] = float32(binary.LittleEndian.Uint16(raw[2*i:]))
		}
	case EncodingFloat32:
		for i := 0; i < voxels; i++ {
			data[i] = math.Float32frombits(binary.LittleEndian.Uint32(raw[4*i:]))
		}
	}
	return data
}
