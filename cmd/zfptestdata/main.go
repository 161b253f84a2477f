// Command zfptestdata compresses raw voxel volumes, or procedurally
// generated scalar fields, into fixed-rate .zfp payloads for codec
// benchmarking.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/openscivis/zfptestdata/pipeline"
	"github.com/openscivis/zfptestdata/volume"
)

const usage = `Usage:
Compress a raw volume:
  zfptestdata -raw <name_XxYxZ_dtype.raw> -crate <rate>

Generate a field and compress it:
  zfptestdata -gen <plane_x|quarter_sphere|sphere|wavelet> -dims <x y z> -crate <rate>

Run a batch of volumes from a TOML manifest:
  zfptestdata -manifest <volumes.toml>

Shared options:

    -crate <rate>    Target bits per value in the output stream, an
                     integer in [1-32]. All inputs are widened to
                     float32, so 32 stores full precision.

    -out <dir>       Directory for output files (default: current).

    -h               Show this help.
`

type cliArgs struct {
	rawPath   string
	genName   string
	dims      volume.GridShape
	haveDims  bool
	crate     int
	haveCrate bool
	manifest  string
	outDir    string
}

// parseArgs walks the argument list by hand: the grammar uses
// single-dash multi-letter flags and -dims consumes three values,
// neither of which the flag package can express.
func parseArgs(args []string) (cliArgs, error) {
	var c cliArgs
	next := func(i *int, flag string) (string, error) {
		*i++
		if *i >= len(args) {
			return "", fmt.Errorf("%s requires a value", flag)
		}
		return args[*i], nil
	}
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-h":
			fmt.Print(usage)
			os.Exit(0)
		case "-crate":
			v, err := next(&i, "-crate")
			if err != nil {
				return c, err
			}
			rate, err := strconv.Atoi(v)
			if err != nil {
				return c, fmt.Errorf("-crate: %q is not an integer", v)
			}
			c.crate, c.haveCrate = rate, true
		case "-raw":
			v, err := next(&i, "-raw")
			if err != nil {
				return c, err
			}
			c.rawPath = v
		case "-gen":
			v, err := next(&i, "-gen")
			if err != nil {
				return c, err
			}
			c.genName = v
		case "-dims":
			var d [3]int
			for axis := range d {
				v, err := next(&i, "-dims")
				if err != nil {
					return c, err
				}
				n, err := strconv.Atoi(v)
				if err != nil || n <= 0 {
					return c, fmt.Errorf("-dims: %q is not a positive integer", v)
				}
				d[axis] = n
			}
			c.dims = volume.GridShape{X: d[0], Y: d[1], Z: d[2]}
			c.haveDims = true
		case "-manifest":
			v, err := next(&i, "-manifest")
			if err != nil {
				return c, err
			}
			c.manifest = v
		case "-out":
			v, err := next(&i, "-out")
			if err != nil {
				return c, err
			}
			c.outDir = v
		default:
			return c, fmt.Errorf("Unrecognized argument %s", args[i])
		}
	}
	return c, nil
}

func run(c cliArgs) error {
	if c.manifest != "" {
		if c.rawPath != "" || c.genName != "" || c.haveCrate {
			return fmt.Errorf("-manifest cannot be combined with -raw, -gen or -crate")
		}
		_, err := pipeline.RunManifest(c.manifest, os.Stdout)
		return err
	}

	if c.rawPath == "" && c.genName == "" {
		return fmt.Errorf("a mode -raw or -gen is required")
	}
	if c.rawPath != "" && c.genName != "" {
		return fmt.Errorf("only one mode -raw or -gen may be passed")
	}
	if c.genName != "" && !c.haveDims {
		return fmt.Errorf("generated mode requires volume dims to generate")
	}
	if !c.haveCrate {
		return fmt.Errorf("a compression rate -crate is required")
	}
	if c.crate < 1 || c.crate > 32 {
		return fmt.Errorf("-crate must be an integer in [1-32], got %d", c.crate)
	}

	_, err := pipeline.Run(pipeline.Options{
		RawPath:   c.rawPath,
		Generator: c.genName,
		Dims:      c.dims,
		Rate:      c.crate,
		OutDir:    c.outDir,
		Report:    os.Stdout,
	})
	return err
}

func main() {
	c, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n%s", err, usage)
		os.Exit(1)
	}
	if err := run(c); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
