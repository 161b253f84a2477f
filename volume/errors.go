package volume

import "fmt"

// FormatError reports a raw file name that does not follow the
// <name>_<X>x<Y>x<Z>_<dtype>.raw convention.
type FormatError struct {
	Name string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("volume: file name %q does not match <name>_<X>x<Y>x<Z>_<dtype>.raw", e.Name)
}

// UnsupportedEncodingError reports a dtype token the loader cannot
// promote to float32.
type UnsupportedEncodingError struct {
	DType string
}

func (e *UnsupportedEncodingError) Error() string {
	return fmt.Sprintf("volume: unsupported voxel encoding %q", e.DType)
}

// UnknownGeneratorError reports a procedural field name with no
// registered generator.
type UnknownGeneratorError struct {
	Name string
}

func (e *UnknownGeneratorError) Error() string {
	return fmt.Sprintf("volume: unknown generator %q", e.Name)
}
