package extjfx

import "github.com/dgryski/go-lttb"

// LTTBReducer reduces data with the Largest-Triangle-Three-Buckets
// algorithm described in https://skemman.is/bitstream/1946/15343/3/SS_MSthesis.pdf
//
// LTTB picks, per bucket, the point forming the largest triangle with its
// neighbors, which preserves the perceived shape of trend data well at
// uniform density. Unlike RDPReducer it always spends the whole budget.
// Extra payloads are not carried through: the underlying implementation
// works on bare coordinates.
type LTTBReducer struct{}

// NewLTTBReducer returns the LTTB strategy.
func NewLTTBReducer() *LTTBReducer { return &LTTBReducer{} }

// Reduce implements DataReducer.
func (r *LTTBReducer) Reduce(data ChartData, xRange Range[float64], maxPoints int) ([]Point, error) {
	if err := checkReduceArgs(data, maxPoints); err != nil {
		return nil, err
	}
	if data.Size() == 0 {
		return []Point{}, nil
	}

	window := indexRangeOf(data, xRange)
	if window.upper-window.lower+1 <= maxPoints {
		return windowOf(data, window), nil
	}

	in := make([]lttb.Point[float64], 0, window.upper-window.lower+1)
	for i := window.lower; i <= window.upper; i++ {
		in = append(in, lttb.Point[float64]{X: data.XAt(i), Y: data.YAt(i)})
	}

	sampled := lttb.LTTB(in, maxPoints)
	out := make([]Point, len(sampled))
	for i, p := range sampled {
		out[i] = Point{X: p.X, Y: p.Y}
	}
	return out, nil
}
