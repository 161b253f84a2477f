package zfp

import "math"

// Type identifies the scalar type of an uncompressed field.
type Type uint32

const (
	TypeNone Type = iota
	TypeInt32
	TypeInt64
	TypeFloat
	TypeDouble
)

func (t Type) String() string {
	switch t {
	case TypeInt32:
		return "int32"
	case TypeInt64:
		return "int64"
	case TypeFloat:
		return "float"
	case TypeDouble:
		return "double"
	default:
		return "none"
	}
}

// precision returns the uncompressed bits per scalar, or 0 for an
// unsupported type.
func (t Type) precision() int {
	switch t {
	case TypeInt32, TypeFloat:
		return 32
	case TypeInt64, TypeDouble:
		return 64
	default:
		return 0
	}
}

// Field describes an uncompressed scalar field: a reference to caller-owned
// sample data plus its shape. The codec only ever reads through a Field; it
// never takes ownership of the data.
type Field struct {
	typ        Type
	nx, ny, nz int
	data       []float32
}

// Field3D builds a descriptor for a dense 3D grid stored x fastest, then y,
// then z (sample (x,y,z) at index x + nx*(y + ny*z)).
func Field3D(data []float32, t Type, nx, ny, nz int) *Field {
	return &Field{typ: t, nx: nx, ny: ny, nz: nz, data: data}
}

func (f *Field) validate() error {
	if f == nil {
		return newError(ErrBadParam, "zfp: nil field")
	}
	if f.nx <= 0 || f.ny <= 0 || f.nz <= 0 {
		return newError(ErrBadField, "zfp: invalid field dimensions")
	}
	n, err := f.sampleCount()
	if err != nil {
		return err
	}
	if f.typ != TypeFloat {
		return newError(ErrBadType, "zfp: only float fields are implemented")
	}
	if len(f.data) < n {
		return newError(ErrBadField, "zfp: field data shorter than its shape")
	}
	return nil
}

func (f *Field) sampleCount() (int, error) {
	n := f.nx * f.ny * f.nz
	if n/f.nx/f.ny != f.nz || n > math.MaxInt/4 { // overflow check
		return 0, newError(ErrBadField, "zfp: field sample count overflow")
	}
	return n, nil
}

// blockCount returns the number of 4x4x4 blocks covering the field along each
// axis and in total.
func (f *Field) blockCount() (bx, by, bz, total int, err error) {
	if err := f.validate(); err != nil {
		return 0, 0, 0, 0, err
	}
	bx = (f.nx + blockDim - 1) / blockDim
	by = (f.ny + blockDim - 1) / blockDim
	bz = (f.nz + blockDim - 1) / blockDim
	total = bx * by * bz
	if total/bx/by != bz { // overflow check
		return 0, 0, 0, 0, newError(ErrBadField, "zfp: block count overflow")
	}
	return bx, by, bz, total, nil
}
