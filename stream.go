package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	extjfx "github.com/extjfx/extjfx/lib"
	"github.com/extjfx/extjfx/lib/prom"
)

const streamUsage = `Usage: extjfx stream [options] [<file>]

Feeds a stream of data points through a fixed-capacity FIFO buffer and
maintains a continuously reduced view over it. When the input ends, or
on SIGINT, the final reduced view is written to -output.

With -prom, reduction metrics are exposed on a Prometheus endpoint for
the lifetime of the stream.

Arguments:
  <file>  A file with data points encoded in one of the supported
          encodings (json | csv) [default: stdin]

Options:
  --capacity    Capacity of the FIFO buffer in points. [default: 10000]
  --max-points  Number of points to downsample the view to.
                [default: 200]
  --reducer     Downsampling strategy [rdp, minmax, lttb, none].
                [default: rdp]
  --window      Fixed X range to reduce over in lower:upper format.
                [default: auto-range over the buffer contents]
  --prom        Prometheus exposition bind URL, e.g. http://0.0.0.0:8880.
  --to          Output encoding [json, csv]. [default: json]
  --output      Output file. [default: stdout]

Examples:
  tail -f samples.json | extjfx stream -capacity=100000 > reduced.json
  extjfx stream -window=0:60 -prom=http://0.0.0.0:8880 samples.json
`

func streamCmd() command {
	fs := flag.NewFlagSet("extjfx stream", flag.ExitOnError)
	opts := &streamOpts{
		reducer:  reducerFlag{name: "rdp", reducer: extjfx.NewRDPReducer()},
		encoding: encodingFlag{name: "json"},
	}

	fs.IntVar(&opts.capacity, "capacity", 10000, "Capacity of the FIFO buffer in points")
	fs.IntVar(&opts.maxPoints, "max-points", extjfx.DefaultMaxPointsCount, "Number of points to downsample to")
	fs.Var(&opts.reducer, "reducer", "Downsampling strategy [rdp, minmax, lttb, none]")
	fs.Var(&opts.window, "window", "Fixed X range to reduce over (lower:upper)")
	fs.StringVar(&opts.promURL, "prom", "", "Prometheus exposition bind URL")
	fs.Var(&opts.encoding, "to", "Output encoding [json, csv]")
	fs.StringVar(&opts.outputf, "output", "stdout", "Output file")

	fs.Usage = func() {
		fmt.Fprint(os.Stderr, streamUsage+"\n")
	}

	return command{fs, func(args []string) error {
		fs.Parse(args)
		input := "stdin"
		if args := fs.Args(); len(args) > 0 {
			input = args[0]
		}
		return stream(opts, input)
	}}
}

// streamOpts aggregates the stream function command options
type streamOpts struct {
	capacity  int
	maxPoints int
	reducer   reducerFlag
	window    rangeFlag
	promURL   string
	encoding  encodingFlag
	outputf   string
}

func stream(opts *streamOpts, input string) error {
	if opts.capacity <= 0 {
		return fmt.Errorf("capacity must be positive, got %d", opts.capacity)
	}

	if opts.maxPoints < extjfx.MinPointsCount {
		return fmt.Errorf("max-points must be at least %d, got %d", extjfx.MinPointsCount, opts.maxPoints)
	}

	in, err := file(input, false)
	if err != nil {
		return err
	}
	defer in.Close()

	dec := extjfx.DecoderFor(in)
	if dec == nil {
		return fmt.Errorf("decode: can't detect encoding of %q", input)
	}

	out, err := file(opts.outputf, true)
	if err != nil {
		return err
	}
	defer out.Close()

	axis := extjfx.NewAxis()
	if opts.window.set {
		axis.SetAutoRanging(false)
		axis.SetBounds(opts.window.xRange.Lower(), opts.window.xRange.Upper())
	}

	seriesOpts := []extjfx.SeriesOpt{
		extjfx.WithReducer(opts.reducer.reducer),
		extjfx.WithMaxPoints(opts.maxPoints),
	}

	if opts.promURL != "" {
		pm, err := prom.NewMetricsWithParams(opts.promURL)
		if err != nil {
			return err
		}
		defer pm.Close()
		seriesOpts = append(seriesOpts, extjfx.WithObserver(pm.Observer(input)))
	}

	fifo := extjfx.NewFifoData(opts.capacity)
	series := extjfx.NewReducingSeries(axis, seriesOpts...)
	defer series.Dispose()

	if err = series.SetData(fifo); err != nil {
		return err
	}

	sigch := make(chan os.Signal, 1)
	signal.Notify(sigch, os.Interrupt)

decode:
	for {
		select {
		case <-sigch:
			break decode
		default:
			var p extjfx.Point
			if err = dec.Decode(&p); err != nil {
				if err == io.EOF {
					break decode
				}
				return err
			}
			fifo.Append(p)
		}
	}

	if err = series.Refresh(); err != nil {
		return err
	}

	enc := opts.encoding.encoder(out)
	for _, p := range series.Points() {
		if err = enc.Encode(&p); err != nil {
			return err
		}
	}

	return nil
}
