package main

import (
	"flag"
	"fmt"
	"os"

	extjfx "github.com/extjfx/extjfx/lib"
)

const reduceUsage = `Usage: extjfx reduce [options] [<file>...]

Downsamples a series of data points to at most -max-points points that
preserve its visual shape, and writes the reduced series to -output.

Arguments:
  <file>  A file with data points encoded in one of the supported
          encodings (json | csv) [default: stdin]

Options:
  --reducer     Downsampling strategy [rdp, minmax, lttb, none].
                [default: rdp]
  --max-points  Number of points to downsample the series to.
                [default: 200]
  --range       X range to reduce over in lower:upper format.
                [default: the full extent of the input]
  --to          Output encoding [json, csv]. [default: json]
  --max-input   Max bytes to read per input file [-1 = no limit].
  --output      Output file. [default: stdout]

Examples:
  cat samples.json | extjfx reduce -max-points=500 > reduced.json
  extjfx reduce -reducer=minmax -range=0:60 -to=csv samples.csv > reduced.csv
`

func reduceCmd() command {
	fs := flag.NewFlagSet("extjfx reduce", flag.ExitOnError)
	opts := &reduceOpts{
		reducer:  reducerFlag{name: "rdp", reducer: extjfx.NewRDPReducer()},
		encoding: encodingFlag{name: "json"},
		maxInput: -1,
	}

	fs.Var(&opts.reducer, "reducer", "Downsampling strategy [rdp, minmax, lttb, none]")
	fs.IntVar(&opts.maxPoints, "max-points", extjfx.DefaultMaxPointsCount, "Number of points to downsample to")
	fs.Var(&opts.xRange, "range", "X range to reduce over (lower:upper)")
	fs.Var(&opts.encoding, "to", "Output encoding [json, csv]")
	fs.Var(&maxInputFlag{n: &opts.maxInput}, "max-input", "Max bytes to read per input [-1 = no limit]")
	fs.StringVar(&opts.outputf, "output", "stdout", "Output file")

	fs.Usage = func() {
		fmt.Fprint(os.Stderr, reduceUsage+"\n")
	}

	return command{fs, func(args []string) error {
		fs.Parse(args)
		files := fs.Args()
		if len(files) == 0 {
			files = append(files, "stdin")
		}
		return reduce(opts, files)
	}}
}

// reduceOpts aggregates the reduce function command options
type reduceOpts struct {
	reducer   reducerFlag
	maxPoints int
	xRange    rangeFlag
	encoding  encodingFlag
	maxInput  int64
	outputf   string
}

func reduce(opts *reduceOpts, files []string) error {
	decs, mc, err := decoders(files, opts.maxInput)
	defer mc.Close()
	if err != nil {
		return err
	}

	ps, err := readPoints(decs)
	if err != nil {
		return err
	}

	out, err := file(opts.outputf, true)
	if err != nil {
		return err
	}
	defer out.Close()

	data := extjfx.ArrayDataOfPoints(ps)

	reduced := ps
	if opts.reducer.reducer != nil && len(ps) > 0 {
		xRange := opts.xRange.xRange
		if !opts.xRange.set {
			if xRange, err = extjfx.NewRange(ps[0].X, ps[len(ps)-1].X); err != nil {
				return fmt.Errorf("input points are not sorted by X: %s", err)
			}
		}

		if reduced, err = opts.reducer.reducer.Reduce(data, xRange, opts.maxPoints); err != nil {
			return err
		}
	}

	enc := opts.encoding.encoder(out)
	for i := range reduced {
		if err = enc.Encode(&reduced[i]); err != nil {
			return err
		}
	}

	return nil
}
