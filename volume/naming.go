package volume

import (
	"strconv"
	"strings"
)

// RawName is the result of parsing a raw volume file name of the form
// <name>_<X>x<Y>x<Z>_<dtype>.raw.
type RawName struct {
	Name  string
	Shape GridShape
	DType string
}

// ParseRawName parses a raw volume file name. The name portion is
// matched greedily, so when several _<X>x<Y>x<Z>_ groups appear the
// last one is taken as the shape and the earlier ones fold into the
// name.
func ParseRawName(filename string) (RawName, error) {
	base, ok := strings.CutSuffix(filename, ".raw")
	if !ok {
		return RawName{}, &FormatError{Name: filename}
	}
	parts := strings.Split(base, "_")
	for i := len(parts) - 2; i >= 1; i-- {
		shape, ok := parseShape(parts[i])
		if !ok {
			continue
		}
		name := strings.Join(parts[:i], "_")
		if !isWord(name) {
			continue
		}
		dtype := strings.Join(parts[i+1:], "_")
		if dtype == "" {
			continue
		}
		return RawName{Name: name, Shape: shape, DType: dtype}, nil
	}
	return RawName{}, &FormatError{Name: filename}
}

func parseShape(s string) (GridShape, bool) {
	dims := strings.Split(s, "x")
	if len(dims) != 3 {
		return GridShape{}, false
	}
	var n [3]int
	for i, d := range dims {
		if d == "" || !isDigits(d) {
			return GridShape{}, false
		}
		v, err := strconv.Atoi(d)
		if err != nil || v <= 0 {
			return GridShape{}, false
		}
		n[i] = v
	}
	return GridShape{X: n[0], Y: n[1], Z: n[2]}, true
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func isWord(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '_':
		default:
			return false
		}
	}
	return true
}
