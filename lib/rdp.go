package extjfx

import (
	"container/heap"
	"math"
)

// RDPReducer reduces data with a modified Ramer-Douglas-Peucker algorithm.
//
// Where classic RDP removes every point whose elimination stays under a
// fixed error tolerance, this variant inverts the parameters: the output
// size is the hard constraint, and points are admitted most-significant
// first until the budget is spent. Each candidate segment is ranked by the
// perpendicular distance of its farthest interior point from the chord
// connecting its endpoints; the window's first and last points are always
// kept. The result is a deterministic, bounded-size approximation for any
// requested budget.
type RDPReducer struct{}

// NewRDPReducer returns the default reduction strategy.
func NewRDPReducer() *RDPReducer { return &RDPReducer{} }

// Reduce implements DataReducer.
func (r *RDPReducer) Reduce(data ChartData, xRange Range[float64], maxPoints int) ([]Point, error) {
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

	kept := keptIndices(data, window, maxPoints)
	out := make([]Point, 0, maxPoints)
	for _, i := range kept {
		out = append(out, data.At(i))
	}
	return out, nil
}

// keptIndices marks up to maxPoints surviving indices within the window and
// returns them in ascending order. The window is known to hold more than
// maxPoints samples.
func keptIndices(data ChartData, window Range[int], maxPoints int) []int {
	remaining := make([]bool, window.upper-window.lower+1)
	remaining[0] = true
	remaining[len(remaining)-1] = true
	count := 2

	q := &segmentQueue{newSegment(data, window.lower, window.upper)}
	for count < maxPoints && q.Len() > 0 {
		s := heap.Pop(q).(segment)
		remaining[s.farthest-window.lower] = true
		count++

		// A sub-segment whose farthest point is adjacent to its boundary
		// spans no interior points and cannot be split further.
		if s.farthest > s.first+1 {
			heap.Push(q, newSegment(data, s.first, s.farthest))
		}
		if s.farthest < s.last-1 {
			heap.Push(q, newSegment(data, s.farthest, s.last))
		}
	}

	kept := make([]int, 0, count)
	for i, on := range remaining {
		if on {
			kept = append(kept, window.lower+i)
		}
	}
	return kept
}

// A segment spans window indices [first, last] and records the interior
// point farthest from the line through the segment's endpoints.
type segment struct {
	first, last int
	farthest    int
	distance    float64
}

// newSegment scans the interior of [first, last] for the farthest point.
// first < last-1 must hold.
func newSegment(data ChartData, first, last int) segment {
	x1, y1 := data.XAt(first), data.YAt(first)
	x2, y2 := data.XAt(last), data.YAt(last)
	dx, dy := x1-x2, y1-y2
	length := math.Sqrt(dx*dx + dy*dy)

	s := segment{first: first, last: last, farthest: -1, distance: -1}
	for i := first + 1; i < last; i++ {
		px, py := data.XAt(i), data.YAt(i)
		var d float64
		if length == 0 {
			// Coincident endpoints leave the chord undefined; rank by
			// distance to the shared endpoint instead.
			d = math.Hypot(px-x1, py-y1)
		} else {
			d = math.Abs(dy*px-dx*py+x1*y2-x2*y1) / length
		}
		if d > s.distance {
			s.farthest, s.distance = i, d
		}
	}
	return s
}

// segmentQueue is a max-heap of segments ordered by farthest-point
// distance. Ties pop lowest starting index first to keep reduction results
// independent of heap internals.
type segmentQueue []segment

func (q segmentQueue) Len() int { return len(q) }

func (q segmentQueue) Less(i, j int) bool {
	if q[i].distance != q[j].distance {
		return q[i].distance > q[j].distance
	}
	return q[i].first < q[j].first
}

func (q segmentQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *segmentQueue) Push(v any) { *q = append(*q, v.(segment)) }

func (q *segmentQueue) Pop() any {
	old := *q
	n := len(old)
	s := old[n-1]
	*q = old[:n-1]
	return s
}
