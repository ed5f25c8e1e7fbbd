package main

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/c2h5oh/datasize"

	extjfx "github.com/extjfx/extjfx/lib"
)

// reducerFlag implements the flag.Value interface for selecting a
// downsampling strategy by name.
type reducerFlag struct {
	name    string
	reducer extjfx.DataReducer
}

func (f *reducerFlag) Set(v string) error {
	switch v {
	case "rdp":
		f.reducer = extjfx.NewRDPReducer()
	case "minmax":
		f.reducer = extjfx.NewMinMaxReducer()
	case "lttb":
		f.reducer = extjfx.NewLTTBReducer()
	case "none":
		f.reducer = nil
	default:
		return fmt.Errorf("unsupported reducer %q [rdp, minmax, lttb, none]", v)
	}
	f.name = v
	return nil
}

func (f *reducerFlag) String() string { return f.name }

// rangeFlag parses an X range in "lower:upper" format.
type rangeFlag struct {
	set    bool
	xRange extjfx.Range[float64]
}

func (f *rangeFlag) Set(v string) error {
	ps := strings.SplitN(v, ":", 2)
	if len(ps) != 2 {
		return fmt.Errorf("-range format %q doesn't match the \"lower:upper\" format (i.e. 0:60)", v)
	}

	lower, err := strconv.ParseFloat(ps[0], 64)
	if err != nil {
		return err
	}

	upper, err := strconv.ParseFloat(ps[1], 64)
	if err != nil {
		return err
	}

	if f.xRange, err = extjfx.NewRange(lower, upper); err != nil {
		return err
	}

	f.set = true
	return nil
}

func (f *rangeFlag) String() string {
	if !f.set {
		return ""
	}
	return fmt.Sprintf("%g:%g", f.xRange.Lower(), f.xRange.Upper())
}

type maxInputFlag struct{ n *int64 }

func (f *maxInputFlag) Set(v string) (err error) {
	if v == "-1" {
		*(f.n) = -1
		return nil
	}

	var ds datasize.ByteSize
	if err = ds.UnmarshalText([]byte(v)); err != nil {
		return err
	}

	if ds > math.MaxInt64 {
		return fmt.Errorf("-max-input=%d overflows int64", ds)
	}

	*(f.n) = int64(ds)
	return nil
}

func (f *maxInputFlag) String() string {
	if f.n == nil {
		return ""
	} else if *(f.n) == -1 {
		return "-1"
	}
	return datasize.ByteSize(*(f.n)).String()
}

// encodingFlag selects the output point encoding.
type encodingFlag struct {
	name string
}

func (f *encodingFlag) Set(v string) error {
	switch v {
	case "json", "csv":
		f.name = v
		return nil
	default:
		return fmt.Errorf("unsupported encoding %q [json, csv]", v)
	}
}

func (f *encodingFlag) String() string { return f.name }

func (f *encodingFlag) encoder(w io.Writer) extjfx.Encoder {
	if f.name == "csv" {
		return extjfx.NewCSVEncoder(w)
	}
	return extjfx.NewJSONEncoder(w)
}
