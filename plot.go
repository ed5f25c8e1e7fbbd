package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	extjfx "github.com/extjfx/extjfx/lib"
	"github.com/extjfx/extjfx/lib/plot"
)

const plotUsage = `Usage: extjfx plot [options] [<file>...]

Outputs an HTML time series plot of the input data points. Each input
file becomes one labeled series. The X coordinate of every point is
interpreted as a timestamp in seconds and must be monotonically
increasing within a file.

Click and drag to select a region to zoom into. Double click to zoom out.

Arguments:
  <file>  A file with data points encoded in one of the supported
          encodings (json | csv) [default: stdin]

Options:
  --title       Title and header of the resulting HTML page.
                [default: extjfx Plot]
  --max-points  Threshold of data points to downsample series to.
                Series with less than --max-points number of data
                points are not downsampled. [default: 4000]
  --reducer     Downsampling strategy [rdp, minmax, lttb, none].
                [default: rdp]
  --output      Output file. [default: stdout]

Examples:
  cat samples.json | extjfx plot > plot.html
  extjfx plot -reducer=lttb cpu.csv mem.csv > plot.html
`

func plotCmd() command {
	fs := flag.NewFlagSet("extjfx plot", flag.ExitOnError)
	title := fs.String("title", "extjfx Plot", "Title and header of the resulting HTML page")
	maxPoints := fs.Int("max-points", 4000, "Threshold of data points above which series are downsampled.")
	output := fs.String("output", "stdout", "Output file")
	reducer := reducerFlag{name: "rdp", reducer: extjfx.NewRDPReducer()}
	fs.Var(&reducer, "reducer", "Downsampling strategy [rdp, minmax, lttb, none]")

	fs.Usage = func() {
		fmt.Fprint(os.Stderr, plotUsage+"\n")
	}

	return command{fs, func(args []string) error {
		fs.Parse(args)
		files := fs.Args()
		if len(files) == 0 {
			files = append(files, "stdin")
		}
		return plotRun(files, *maxPoints, reducer.reducer, *title, *output)
	}}
}

func plotRun(files []string, maxPoints int, reducer extjfx.DataReducer, title, output string) error {
	decs, mc, err := decoders(files, -1)
	defer mc.Close()
	if err != nil {
		return err
	}

	out, err := file(output, true)
	if err != nil {
		return err
	}
	defer out.Close()

	p := plot.New(
		plot.Title(title),
		plot.MaxPoints(maxPoints),
		plot.Reducer(reducer),
	)

	for i, dec := range decs {
		label := seriesLabel(files[i])
		for {
			var pt extjfx.Point
			if err = dec.Decode(&pt); err != nil {
				if err == io.EOF {
					break
				}
				return err
			}

			// Plot timestamps are in milliseconds.
			if err = p.Add(label, uint64(pt.X*1000), pt.Y); err != nil {
				return err
			}
		}
	}

	p.Close()

	_, err = p.WriteTo(out)
	return err
}

func seriesLabel(name string) string {
	if name == "stdin" {
		return name
	}
	base := filepath.Base(name)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
