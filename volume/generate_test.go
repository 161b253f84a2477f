package volume_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openscivis/zfptestdata/volume"
)

func TestGeneratePlaneX(t *testing.T) {
	data, err := volume.Generate("plane_x", volume.GridShape{X: 4, Y: 1, Z: 1})
	require.NoError(t, err)
	assert.Equal(t, []float32{0, 0.25, 0.5, 0.75}, data)
}

func TestGeneratePlaneXConstantInYZ(t *testing.T) {
	shape := volume.GridShape{X: 4, Y: 3, Z: 2}
	data, err := volume.Generate("plane_x", shape)
	require.NoError(t, err)
	for z := 0; z < shape.Z; z++ {
		for y := 0; y < shape.Y; y++ {
			for x := 0; x < shape.X; x++ {
				assert.Equal(t, float32(x)*0.25, data[x+shape.X*(y+shape.Y*z)])
			}
		}
	}
}

func TestGenerateSphere(t *testing.T) {
	shape := volume.GridShape{X: 10, Y: 10, Z: 10}
	data, err := volume.Generate("sphere", shape)
	require.NoError(t, err)

	at := func(x, y, z int) float32 { return data[x+shape.X*(y+shape.Y*z)] }
	assert.InDelta(t, 0.0, at(5, 5, 5), 1e-6)
	assert.InDelta(t, 1.0, at(0, 5, 5), 1e-6)
	assert.InDelta(t, 1.0, at(5, 0, 5), 1e-6)
}

func TestGenerateSphereNormalizesByXExtentOnly(t *testing.T) {
	// Non-cubic grid: (5,10,5) is 9 from center along y, divided by
	// the half x extent of 5, so values above 1 appear.
	shape := volume.GridShape{X: 10, Y: 20, Z: 10}
	data, err := volume.Generate("sphere", shape)
	require.NoError(t, err)
	assert.InDelta(t, 9.0/5.0, data[5+shape.X*(19+shape.Y*5)], 1e-6)
}

func TestGenerateQuarterSphere(t *testing.T) {
	shape := volume.GridShape{X: 3, Y: 4, Z: 12}
	data, err := volume.Generate("quarter_sphere", shape)
	require.NoError(t, err)

	assert.Equal(t, float32(0), data[0])
	// Corner voxel (2,3,11): distance sqrt(4+9+121) over diagonal 13.
	want := float32(math.Sqrt(134) / 13)
	assert.InDelta(t, want, data[2+shape.X*(3+shape.Y*11)], 1e-6)
}

func TestGenerateWavelet(t *testing.T) {
	shape := volume.GridShape{X: 8, Y: 8, Z: 8}
	data, err := volume.Generate("wavelet", shape)
	require.NoError(t, err)
	require.Len(t, data, 512)

	at := func(x, y, z int) float64 { return float64(data[x+shape.X*(y+shape.Y*z)]) }
	// Origin voxel maps to normalized coordinates (-1,-1,-1).
	assert.InDelta(t, math.Sin(-3)+math.Sin(-3)+math.Cos(-3), at(0, 0, 0), 1e-6)
	// Grid center maps to (0,0,0): sin(0)+sin(0)+cos(0).
	assert.InDelta(t, 1.0, at(4, 4, 4), 1e-6)
}

func TestGenerateDeterministic(t *testing.T) {
	shape := volume.GridShape{X: 7, Y: 5, Z: 3}
	for _, name := range volume.GeneratorNames {
		first, err := volume.Generate(name, shape)
		require.NoError(t, err)
		second, err := volume.Generate(name, shape)
		require.NoError(t, err)
		assert.Equal(t, first, second, "generator %s", name)
	}
}

func TestGenerateUnknownName(t *testing.T) {
	_, err := volume.Generate("torus", volume.GridShape{X: 4, Y: 4, Z: 4})
	var uerr *volume.UnknownGeneratorError
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, "torus", uerr.Name)
}

func TestGenerateInvalidShape(t *testing.T) {
	_, err := volume.Generate("plane_x", volume.GridShape{X: 0, Y: 4, Z: 4})
	require.Error(t, err)
}
