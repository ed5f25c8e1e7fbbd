package plot

import (
	"errors"

	tsz "github.com/tsenart/go-tsz"

	extjfx "github.com/extjfx/extjfx/lib"
)

// An in-memory timeSeries of points with high compression of both
// timestamps and values. It's not safe for concurrent use.
type timeSeries struct {
	label string
	prev  uint64
	data  *tsz.Series
	len   int
}

func newTimeSeries(label string) *timeSeries {
	return &timeSeries{
		label: label,
		data:  tsz.New(0),
	}
}

var errMonotonicTimestamp = errors.New("timeseries: non monotonically increasing timestamp")

// add pushes a value at t milliseconds since the series began.
func (ts *timeSeries) add(t uint64, v float64) error {
	if ts.prev > t {
		return errMonotonicTimestamp
	}

	ts.data.Push(t, v)
	ts.prev = t
	ts.len++

	return nil
}

// points decodes the whole compressed stream, with X in seconds.
func (ts *timeSeries) points() ([]extjfx.Point, error) {
	ps := make([]extjfx.Point, 0, ts.len)
	it := ts.data.Iter()
	for it.Next() {
		t, v := it.Values()
		ps = append(ps, extjfx.Point{X: float64(t) / 1000, Y: v})
	}
	return ps, it.Err()
}
