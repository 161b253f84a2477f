package volume

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// GeneratorNames lists the recognized procedural field names.
var GeneratorNames = []string{"plane_x", "quarter_sphere", "sphere", "wavelet"}

// Generate synthesizes a procedural scalar field of the given shape.
// Every variant is a pure function of the voxel coordinates, so the
// output is fully deterministic.
func Generate(name string, shape GridShape) ([]float32, error) {
	voxels, err := shape.Voxels()
	if err != nil {
		return nil, err
	}
	var f func(x, y, z int) float32
	switch name {
	case "plane_x":
		f = func(x, y, z int) float32 {
			return float32(x) / float32(shape.X)
		}
	case "quarter_sphere":
		// Distance from the origin corner over the grid diagonal.
		diag := r3.Norm(r3.Vec{X: float64(shape.X), Y: float64(shape.Y), Z: float64(shape.Z)})
		f = func(x, y, z int) float32 {
			p := r3.Vec{X: float64(x), Y: float64(y), Z: float64(z)}
			return float32(r3.Norm(p) / diag)
		}
	case "sphere":
		// Distance from the grid center over half the x extent. The
		// x-only normalization is deliberate and kept for non-cubic
		// grids.
		center := r3.Vec{X: float64(shape.X) / 2, Y: float64(shape.Y) / 2, Z: float64(shape.Z) / 2}
		radius := float64(shape.X) / 2
		f = func(x, y, z int) float32 {
			p := r3.Vec{X: float64(x), Y: float64(y), Z: float64(z)}
			return float32(r3.Norm(r3.Sub(p, center)) / radius)
		}
	case "wavelet":
		f = func(x, y, z int) float32 {
			cx := 2*float64(x)/float64(shape.X) - 1
			cy := 2*float64(y)/float64(shape.Y) - 1
			cz := 2*float64(z)/float64(shape.Z) - 1
			return float32(math.Sin(3*cx) + math.Sin(3*cy) + math.Cos(3*cz))
		}
	default:
		return nil, &UnknownGeneratorError{Name: name}
	}

	data := make([]float32, voxels)
	for z := 0; z < shape.Z; z++ {
		for y := 0; y < shape.Y; y++ {
			for x := 0; x < shape.X; x++ {
				data[x+shape.X*(y+shape.Y*z)] = f(x, y, z)
			}
		}
	}
	return data, nil
}
