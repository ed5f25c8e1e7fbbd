package extjfx

// BinarySearch searches data for a sample with the given X coordinate.
// The data must be sorted by ascending X.
//
// It returns the index of an exact match; otherwise -(insertion point) - 1,
// where the insertion point is the index of the first sample with a greater
// X, or data.Size() if every sample is smaller. The result is >= 0 if and
// only if x was found, mirroring the classic array binary-search convention
// so callers can decode the insertion point from a negative result.
//
// It panics if data is nil.
func BinarySearch(data ChartData, x float64) int {
	if data == nil {
		panic("extjfx: nil chart data")
	}

	low, high := 0, data.Size()-1
	for low <= high {
		mid := int(uint(low+high) >> 1)
		switch mx := data.XAt(mid); {
		case mx < x:
			low = mid + 1
		case mx > x:
			high = mid - 1
		default:
			return mid
		}
	}
	return -(low + 1)
}

// InsertionIndex returns the index at which a sample with the given X
// coordinate would be inserted into data to keep it sorted.
//
// It panics if data is nil.
func InsertionIndex(data ChartData, x float64) int {
	if i := BinarySearch(data, x); i >= 0 {
		return i
	} else {
		return -i - 1
	}
}

// indexRangeOf converts an X-domain range into the inclusive index window
// of data covering it. When a bound falls strictly between two samples the
// window is expanded by one index on that side so the curve still draws
// continuously to the edges of the viewport.
func indexRangeOf(data ChartData, xRange Range[float64]) Range[int] {
	lo := BinarySearch(data, xRange.Lower())
	if lo < 0 {
		lo = -lo - 1
		// Include the previous point to draw a line from it.
		lo = max(lo-1, 0)
	}

	hi := BinarySearch(data, xRange.Upper())
	if hi < 0 {
		hi = -hi - 1
		// Include the next point to draw a line to it.
		hi = min(hi, data.Size()-1)
	}

	return Range[int]{lower: lo, upper: hi}
}
