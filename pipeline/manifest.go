package pipeline

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"

	"github.com/openscivis/zfptestdata/volume"
)

// Manifest describes a batch of compression runs, decoded from TOML.
//
//	out_dir = "testdata"
//
//	[[volume]]
//	gen = "wavelet"
//	dims = [64, 64, 64]
//	crates = [4, 8]
//
//	[[volume]]
//	raw = "skull_256x256x256_uint8.raw"
//	crates = [8]
type Manifest struct {
	OutDir  string  `toml:"out_dir"`
	Volumes []Entry `toml:"volume"`
}

// Entry is one volume in a manifest, compressed once per listed rate.
type Entry struct {
	Raw    string `toml:"raw"`
	Gen    string `toml:"gen"`
	Dims   []int  `toml:"dims"`
	Crates []int  `toml:"crates"`
}

func (e *Entry) options(outDir string, rate int) (Options, error) {
	opts := Options{RawPath: e.Raw, Generator: e.Gen, Rate: rate, OutDir: outDir}
	if e.Gen != "" {
		if len(e.Dims) != 3 {
			return Options{}, fmt.Errorf("pipeline: generator entry %q needs dims = [x, y, z]", e.Gen)
		}
		opts.Dims = volume.GridShape{X: e.Dims[0], Y: e.Dims[1], Z: e.Dims[2]}
	}
	return opts, nil
}

// RunManifest executes every (volume, rate) pair in a TOML manifest
// file, stopping at the first failure.
func RunManifest(path string, report io.Writer) ([]*Result, error) {
	var m Manifest
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return nil, fmt.Errorf("pipeline: manifest %s: %w", path, err)
	}
	if len(m.Volumes) == 0 {
		return nil, fmt.Errorf("pipeline: manifest %s lists no volumes", path)
	}

	var results []*Result
	for i, entry := range m.Volumes {
		if len(entry.Crates) == 0 {
			return nil, fmt.Errorf("pipeline: manifest volume %d lists no crates", i)
		}
		for _, rate := range entry.Crates {
			opts, err := entry.options(m.OutDir, rate)
			if err != nil {
				return nil, err
			}
			opts.Report = report
			res, err := Run(opts)
			if err != nil {
				return nil, err
			}
			results = append(results, res)
		}
	}
	return results, nil
}
