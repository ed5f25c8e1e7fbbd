package extjfx

// ChartData is a read-only, index-addressable view over (x, y) samples
// sorted by ascending X. It is the sole input contract of the reducers.
//
// Implementations that wrap mutable storage fire an invalidation callback
// whenever the underlying data changes shape or values. Immutable
// implementations never fire and may implement Subscribe as a no-op.
type ChartData interface {
	// Size returns the number of samples.
	Size() int

	// XAt returns the X coordinate of the sample at index i.
	XAt(i int) float64

	// YAt returns the Y coordinate of the sample at index i.
	YAt(i int) float64

	// At returns the sample at index i.
	At(i int) Point

	// Subscribe registers fn to be invoked on every invalidation of the
	// underlying data and returns a function that unregisters it.
	Subscribe(fn func()) (cancel func())
}

// PointsOf copies all samples of data into a fresh slice.
func PointsOf(data ChartData) []Point {
	ps := make([]Point, data.Size())
	for i := range ps {
		ps[i] = data.At(i)
	}
	return ps
}
