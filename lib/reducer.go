package extjfx

import (
	"errors"
	"fmt"
)

// MinPointsCount is the smallest admissible reduction budget: the two
// anchor points of the window.
const MinPointsCount = 2

// ErrNilData is returned by reducers called without source data.
var ErrNilData = errors.New("reduce: chart data must not be nil")

// A DataReducer reduces source data within an X-domain window down to a
// bounded number of visually equivalent points.
//
// Implementations must be stateless per call: the returned slice is always
// freshly allocated, the source data is never mutated, and identical
// arguments yield identical output.
type DataReducer interface {
	// Reduce returns at most maxPoints points approximating the samples
	// of data whose X coordinates fall within xRange. The output is
	// sorted by ascending X whenever the input was. An empty source
	// yields an empty slice and no error.
	//
	// Reduce returns an error if data is nil or maxPoints < MinPointsCount.
	Reduce(data ChartData, xRange Range[float64], maxPoints int) ([]Point, error)
}

// checkReduceArgs validates the common reducer preconditions.
func checkReduceArgs(data ChartData, maxPoints int) error {
	if data == nil {
		return ErrNilData
	}
	if maxPoints < MinPointsCount {
		return errBudget(maxPoints)
	}
	return nil
}

func errBudget(n int) error {
	return fmt.Errorf("reduce: max points count %d below minimum of %d", n, MinPointsCount)
}

// windowOf returns the window's points unreduced.
func windowOf(data ChartData, window Range[int]) []Point {
	if window.upper < window.lower {
		return []Point{}
	}
	out := make([]Point, 0, window.upper-window.lower+1)
	for i := window.lower; i <= window.upper; i++ {
		out = append(out, data.At(i))
	}
	return out
}
