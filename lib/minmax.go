package extjfx

// MinMaxReducer reduces data by merging points per pixel column.
//
// The X window is partitioned into maxPoints equal-width columns; within a
// column only the points needed to preserve the visual excursion survive:
// the first, lowest, highest and last point in original temporal order,
// deduplicated when coincident, so a column contributes at most four
// points. Sources with fewer than 2*maxPoints points are passed through
// unchanged, as merging is pointless below an average of two points per
// column.
//
// Compared to RDPReducer this strategy is more tolerant of data with gaps
// and non-uniform density, at the cost of shape fidelity at low zoom. It
// treats maxPoints as the column (pixel) budget, so continuous excursions
// may retain up to four points per column.
type MinMaxReducer struct{}

// NewMinMaxReducer returns the pixel-column bucketing strategy.
func NewMinMaxReducer() *MinMaxReducer { return &MinMaxReducer{} }

// Reduce implements DataReducer.
func (r *MinMaxReducer) Reduce(data ChartData, xRange Range[float64], maxPoints int) ([]Point, error) {
	if err := checkReduceArgs(data, maxPoints); err != nil {
		return nil, err
	}
	if data.Size() == 0 {
		return []Point{}, nil
	}
	if data.Size() < 2*maxPoints {
		return PointsOf(data), nil
	}

	xMin, xMax := xRange.Lower(), xRange.Upper()
	if xMax <= xMin {
		return windowOf(data, indexRangeOf(data, xRange)), nil
	}

	// First and last source indices inside the window proper; the one-index
	// expansion of indexRangeOf does not apply here since out-of-window
	// points cannot be assigned a column.
	lo := InsertionIndex(data, xMin)
	hi := data.Size() - 1
	for hi >= 0 && data.XAt(hi) > xMax {
		hi--
	}
	if lo > hi {
		return []Point{}, nil
	}

	width := xMax - xMin
	column := func(x float64) int {
		c := int(float64(maxPoints) * (x - xMin) / width)
		return min(c, maxPoints-1)
	}

	out := make([]Point, 0, maxPoints)

	// Interpolate a lead-in point at the window edge when the first column
	// is empty but data exists before it, so a zoomed view still draws
	// from the left edge.
	if lo > 0 && column(data.XAt(lo)) > 0 {
		x0, y0 := data.XAt(lo-1), data.YAt(lo-1)
		x1, y1 := data.XAt(lo), data.YAt(lo)
		y := y0 + (y1-y0)*(xMin-x0)/(x1-x0)
		out = append(out, Point{X: xMin, Y: y})
	}

	for i := lo; i <= hi; {
		col := column(data.XAt(i))

		// Scan the column's points, tracking extremes.
		first, last := i, i
		imin, imax := i, i
		for ; i <= hi && column(data.XAt(i)) == col; i++ {
			last = i
			if data.YAt(i) < data.YAt(imin) {
				imin = i
			}
			if data.YAt(i) > data.YAt(imax) {
				imax = i
			}
		}

		out = appendColumn(out, data, first, imin, imax, last)
	}

	return out, nil
}

// appendColumn emits the surviving points of one column in temporal order,
// skipping duplicate indices.
func appendColumn(out []Point, data ChartData, first, imin, imax, last int) []Point {
	a, b := imin, imax
	if a > b {
		a, b = b, a
	}

	prev := -1
	for _, i := range [4]int{first, a, b, last} {
		if i != prev {
			out = append(out, data.At(i))
			prev = i
		}
	}
	return out
}
