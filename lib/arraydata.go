package extjfx

import "fmt"

// ArrayData is an immutable ChartData backed by two column slices. It never
// fires invalidation. The constructors copy their input, so later mutation
// of the caller's slices does not leak into the data.
type ArrayData struct {
	xs, ys []float64
	extras []any
}

// NewArrayData returns an ArrayData over the given X and Y columns. It
// returns an error if the columns have different lengths.
func NewArrayData(xs, ys []float64) (*ArrayData, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("arraydata: x length %d != y length %d", len(xs), len(ys))
	}
	d := &ArrayData{
		xs: append([]float64(nil), xs...),
		ys: append([]float64(nil), ys...),
	}
	return d, nil
}

// ArrayDataOfY returns an ArrayData over the given Y column with X
// coordinates generated as the indices 0..len(ys)-1.
func ArrayDataOfY(ys []float64) *ArrayData {
	xs := make([]float64, len(ys))
	for i := range xs {
		xs[i] = float64(i)
	}
	d, _ := NewArrayData(xs, ys)
	return d
}

// ArrayDataOfPoints returns an ArrayData holding a copy of the given points.
func ArrayDataOfPoints(ps []Point) *ArrayData {
	d := &ArrayData{
		xs: make([]float64, len(ps)),
		ys: make([]float64, len(ps)),
	}
	for i, p := range ps {
		d.xs[i], d.ys[i] = p.X, p.Y
		if p.Extra != nil {
			if d.extras == nil {
				d.extras = make([]any, len(ps))
			}
			d.extras[i] = p.Extra
		}
	}
	return d
}

func (d *ArrayData) Size() int         { return len(d.xs) }
func (d *ArrayData) XAt(i int) float64 { return d.xs[i] }
func (d *ArrayData) YAt(i int) float64 { return d.ys[i] }

func (d *ArrayData) At(i int) Point {
	p := Point{X: d.xs[i], Y: d.ys[i]}
	if d.extras != nil {
		p.Extra = d.extras[i]
	}
	return p
}

// Subscribe implements ChartData. ArrayData is immutable and never
// invalidates, so the callback is dropped.
func (d *ArrayData) Subscribe(func()) (cancel func()) { return func() {} }
