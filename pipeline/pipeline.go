// Package pipeline wires volume loading or generation to the zfp
// codec and writes the fixed-rate payload to disk.
package pipeline

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"

	"github.com/openscivis/zfptestdata/volume"
	"github.com/openscivis/zfptestdata/zfp"
)

// Options selects the input mode and rate for one compression run.
// Exactly one of RawPath or Generator must be set; Dims is required in
// generator mode.
type Options struct {
	RawPath   string
	Generator string
	Dims      volume.GridShape
	Rate      int
	OutDir    string

	// Report receives the human-readable size summary. Defaults to
	// io.Discard when nil.
	Report io.Writer
}

// Result describes the artifact produced by a run.
type Result struct {
	OutPath          string
	UncompressedSize int
	CompressedSize   int
	Rate             int
}

// NonIntegerRateError is returned when the codec rounds the requested
// rate to a non-integral achieved rate. The pipeline only accepts
// whole-bit-per-value budgets.
type NonIntegerRateError struct {
	Requested int
	Achieved  float64
}

func (e *NonIntegerRateError) Error() string {
	return fmt.Sprintf("pipeline: requested rate %d resolved to non-integer rate %g", e.Requested, e.Achieved)
}

// ValidateRate rejects achieved rates the codec rounded off an
// integer bit budget.
func ValidateRate(requested int, achieved float64) error {
	if math.Floor(achieved) != achieved {
		return &NonIntegerRateError{Requested: requested, Achieved: achieved}
	}
	return nil
}

// Run loads or generates a volume, compresses it at the requested
// fixed rate, and writes `<base>.crate<rate>.zfp`. The output file is
// not created until the payload is final, so a failed run leaves no
// partial artifact.
func Run(opts Options) (*Result, error) {
	report := opts.Report
	if report == nil {
		report = io.Discard
	}
	if opts.Rate < 1 || opts.Rate > 32 {
		return nil, fmt.Errorf("pipeline: compression rate %d outside [1, 32]", opts.Rate)
	}

	var (
		data    []float32
		shape   volume.GridShape
		outBase string
	)
	switch {
	case opts.RawPath != "" && opts.Generator != "":
		return nil, fmt.Errorf("pipeline: raw and generator modes are mutually exclusive")
	case opts.RawPath != "":
		vol, err := volume.LoadRaw(opts.RawPath)
		if err != nil {
			return nil, err
		}
		data, shape = vol.Data, vol.Shape
		outBase = filepath.Base(opts.RawPath)
	case opts.Generator != "":
		var err error
		data, err = volume.Generate(opts.Generator, opts.Dims)
		if err != nil {
			return nil, err
		}
		shape = opts.Dims
		outBase = fmt.Sprintf("%s_%s_float32.gen", opts.Generator, shape)
	default:
		return nil, fmt.Errorf("pipeline: either a raw path or a generator name is required")
	}

	fmt.Fprintf(report, "Uncompressed size: %s\n", humanize.IBytes(uint64(len(data)*4)))

	s := zfp.OpenStream()
	defer s.Close()
	achieved := s.SetRate(float64(opts.Rate), zfp.TypeFloat, 3, false)
	fmt.Fprintf(report, "Used compression rate: %g\n", achieved)
	if err := ValidateRate(opts.Rate, achieved); err != nil {
		return nil, err
	}

	field := zfp.Field3D(data, zfp.TypeFloat, shape.X, shape.Y, shape.Z)
	maxSize, err := s.MaximumSize(field)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, maxSize)
	s.SetBitStream(zfp.NewBitstream(buf))
	s.Rewind()
	n, err := s.Compress(field)
	if err != nil {
		return nil, err
	}
	payload := buf[:n]
	fmt.Fprintf(report, "Total compressed size: %s\n", humanize.IBytes(uint64(n)))

	outPath := filepath.Join(opts.OutDir, fmt.Sprintf("%s.crate%d.zfp", outBase, int(achieved)))
	if err := os.WriteFile(outPath, payload, 0o644); err != nil {
		return nil, fmt.Errorf("pipeline: write %s: %w", outPath, err)
	}

	return &Result{
		OutPath:          outPath,
		UncompressedSize: len(data) * 4,
		CompressedSize:   n,
		Rate:             int(achieved),
	}, nil
}
