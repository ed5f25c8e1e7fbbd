package extjfx

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMinMaxReducer_passThrough(t *testing.T) {
	t.Parallel()

	// Below two points per column merging is pointless.
	ps := []Point{{X: 0, Y: 1}, {X: 1, Y: 9}, {X: 2, Y: -4}, {X: 3, Y: 2}, {X: 4, Y: 0}}
	data := ArrayDataOfPoints(ps)

	got, err := NewMinMaxReducer().Reduce(data, fullRange(t, data), 3)
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(ps, got); diff != "" {
		t.Error(diff)
	}
}

func TestMinMaxReducer_columns(t *testing.T) {
	t.Parallel()

	ys := []float64{5, 1, 9, 3, 2, 8, 0, 4, 7, 7, 1, 6}
	data := ArrayDataOfY(ys)

	got, err := NewMinMaxReducer().Reduce(data, fullRange(t, data), 3)
	if err != nil {
		t.Fatal(err)
	}

	// Per column: first, lowest, highest and last point in temporal order,
	// deduplicated when coincident.
	want := []Point{
		{X: 0, Y: 5}, {X: 1, Y: 1}, {X: 2, Y: 9}, {X: 3, Y: 3},
		{X: 4, Y: 2}, {X: 5, Y: 8}, {X: 6, Y: 0}, {X: 7, Y: 4},
		{X: 8, Y: 7}, {X: 10, Y: 1}, {X: 11, Y: 6},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Error(diff)
	}
}

func TestMinMaxReducer_monotone(t *testing.T) {
	t.Parallel()

	ys := make([]float64, 12)
	for i := range ys {
		ys[i] = float64(i)
	}
	data := ArrayDataOfY(ys)

	got, err := NewMinMaxReducer().Reduce(data, fullRange(t, data), 3)
	if err != nil {
		t.Fatal(err)
	}

	// On monotone data min and max coincide with the column edges, so each
	// column collapses to two points.
	want := []Point{
		{X: 0, Y: 0}, {X: 3, Y: 3},
		{X: 4, Y: 4}, {X: 7, Y: 7},
		{X: 8, Y: 8}, {X: 11, Y: 11},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Error(diff)
	}
}

func TestMinMaxReducer_leadInInterpolation(t *testing.T) {
	t.Parallel()

	ps := make([]Point, 12)
	ps[0] = Point{X: 0, Y: 0}
	for i := 1; i < 12; i++ {
		x := float64(i + 7)
		ps[i] = Point{X: x, Y: x}
	}
	data := ArrayDataOfPoints(ps)

	xRange, err := NewRange(1.0, 15.0)
	if err != nil {
		t.Fatal(err)
	}

	got, err := NewMinMaxReducer().Reduce(data, xRange, 3)
	if err != nil {
		t.Fatal(err)
	}

	// The first column is empty but data exists before the window, so a
	// point interpolated onto the window edge leads the output.
	want := []Point{
		{X: 1, Y: 1},
		{X: 8, Y: 8}, {X: 10, Y: 10},
		{X: 11, Y: 11}, {X: 15, Y: 15},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Error(diff)
	}
}

func TestMinMaxReducer_degenerateRange(t *testing.T) {
	t.Parallel()

	ys := make([]float64, 12)
	for i := range ys {
		ys[i] = float64(i * i)
	}
	data := ArrayDataOfY(ys)

	got, err := NewMinMaxReducer().Reduce(data, Range[float64]{9, 9}, 3)
	if err != nil {
		t.Fatal(err)
	}

	want := []Point{{X: 9, Y: 81}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Error(diff)
	}
}

func TestMinMaxReducer_emptyWindow(t *testing.T) {
	t.Parallel()

	ys := make([]float64, 12)
	data := ArrayDataOfY(ys)

	got, err := NewMinMaxReducer().Reduce(data, Range[float64]{100, 200}, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("got: %v, want: empty", got)
	}
}

func TestMinMaxReducer_badArgs(t *testing.T) {
	t.Parallel()

	r := NewMinMaxReducer()

	if _, err := r.Reduce(nil, Range[float64]{0, 1}, 2); err != ErrNilData {
		t.Errorf("nil data: got: %v, want: %v", err, ErrNilData)
	}
	if _, err := r.Reduce(ArrayDataOfY([]float64{1}), Range[float64]{0, 1}, 0); err == nil {
		t.Error("budget 0: expected error")
	}
}
