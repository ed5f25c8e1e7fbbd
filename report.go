package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/streadway/quantile"

	extjfx "github.com/extjfx/extjfx/lib"
)

const reportUsage = `Usage: extjfx report [options] [<file>...]

Summarizes the X extent and Y distribution of a series of data points.

Arguments:
  <file>  A file with data points encoded in one of the supported
          encodings (json | csv) [default: stdin]

Options:
  --type       Report type [text, json, hist]. [default: text]
  --est        Quantile estimator [tdigest, quantile]. [default: tdigest]
  --buckets    Histogram buckets, e.g.: "[0, 10, 100]". Used with
               -type=hist.
  --max-input  Max bytes to read per input file [-1 = no limit].
  --output     Output file. [default: stdout]

Examples:
  cat samples.json | extjfx report
  extjfx report -type=json samples.csv > stats.json
  extjfx report -type=hist -buckets="[0, 10, 100]" samples.json
`

func reportCmd() command {
	fs := flag.NewFlagSet("extjfx report", flag.ExitOnError)
	typ := fs.String("type", "text", "Report type [text, json, hist]")
	est := fs.String("est", "tdigest", "Quantile estimator [tdigest, quantile]")
	var buckets extjfx.Buckets
	fs.Var(&bucketsFlag{buckets: &buckets}, "buckets", "Histogram buckets (with -type=hist)")
	output := fs.String("output", "stdout", "Output file")
	maxInput := int64(-1)
	fs.Var(&maxInputFlag{n: &maxInput}, "max-input", "Max bytes to read per input [-1 = no limit]")

	fs.Usage = func() {
		fmt.Fprint(os.Stderr, reportUsage+"\n")
	}

	return command{fs, func(args []string) error {
		fs.Parse(args)
		files := fs.Args()
		if len(files) == 0 {
			files = append(files, "stdin")
		}
		return report(*typ, *est, *output, buckets, maxInput, files)
	}}
}

func report(typ, est, output string, buckets extjfx.Buckets, maxInput int64, files []string) error {
	if typ == "hist" && len(buckets) == 0 {
		return fmt.Errorf("-type=hist requires -buckets")
	}

	var estimator extjfx.Estimator
	switch est {
	case "tdigest":
		estimator = extjfx.NewTdigestEstimator(100)
	case "quantile":
		estimator = extjfx.NewQuantileEstimator(
			quantile.Known(0.50, 0.01),
			quantile.Known(0.90, 0.005),
			quantile.Known(0.95, 0.005),
			quantile.Known(0.99, 0.001),
		)
	default:
		return fmt.Errorf("unsupported estimator %q [tdigest, quantile]", est)
	}

	decs, mc, err := decoders(files, maxInput)
	defer mc.Close()
	if err != nil {
		return err
	}

	out, err := file(output, true)
	if err != nil {
		return err
	}
	defer out.Close()

	st := extjfx.NewSeriesStats(estimator)
	hist := &extjfx.Histogram{Buckets: buckets}
	for _, dec := range decs {
		for {
			var p extjfx.Point
			if err = dec.Decode(&p); err != nil {
				if err == io.EOF {
					break
				}
				return err
			}
			st.Add(p)
			if typ == "hist" {
				hist.Add(p)
			}
		}
	}
	st.Close()

	switch typ {
	case "text":
		return reportText(out, st)
	case "hist":
		return reportHist(out, hist)
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(st)
	default:
		return fmt.Errorf("unsupported report type %q [text, json, hist]", typ)
	}
}

func reportText(w io.Writer, st *extjfx.SeriesStats) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', tabwriter.StripEscape)
	fmt.Fprintf(tw, "Points\t[count]\t%d\n", st.Count)
	fmt.Fprintf(tw, "X\t[min, max]\t%g, %g\n", st.XMin, st.XMax)
	fmt.Fprintf(tw, "Y\t[min, mean, max]\t%g, %g, %g\n", st.YMin, st.YMean, st.YMax)
	fmt.Fprintf(tw, "Y quantiles\t[50, 90, 95, 99]\t%g, %g, %g, %g\n", st.P50, st.P90, st.P95, st.P99)
	return tw.Flush()
}

func reportHist(w io.Writer, h *extjfx.Histogram) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', tabwriter.StripEscape)
	fmt.Fprintf(tw, "Bucket\t#\t%%\tHistogram\n")
	for i, count := range h.Counts {
		ratio := 0.0
		if h.Total > 0 {
			ratio = float64(count) / float64(h.Total)
		}
		left, right := h.Buckets.Nth(i)
		fmt.Fprintf(tw, "[%s,\t%s]\t%d\t%.2f%%\t%s\n", left, right, count, ratio*100, strings.Repeat("#", int(ratio*40)))
	}
	return tw.Flush()
}

// bucketsFlag adapts extjfx.Buckets to the flag.Value interface.
type bucketsFlag struct{ buckets *extjfx.Buckets }

func (f *bucketsFlag) String() string {
	if f.buckets == nil {
		return ""
	}
	strs := make([]string, len(*f.buckets))
	for i, b := range *f.buckets {
		strs[i] = fmt.Sprint(b)
	}
	return "[" + strings.Join(strs, ", ") + "]"
}

func (f *bucketsFlag) Set(v string) error {
	return f.buckets.UnmarshalText([]byte(v))
}
