package extjfx

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func fullRange(t testing.TB, data ChartData) Range[float64] {
	t.Helper()
	r, err := NewRange(data.XAt(0), data.XAt(data.Size()-1))
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestRDPReducer_anchorsOnly(t *testing.T) {
	t.Parallel()

	data := ArrayDataOfPoints([]Point{{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}})

	got, err := NewRDPReducer().Reduce(data, fullRange(t, data), 2)
	if err != nil {
		t.Fatal(err)
	}

	want := []Point{{X: 0, Y: 1}, {X: 2, Y: 1}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Error(diff)
	}
}

func TestRDPReducer_parabola(t *testing.T) {
	t.Parallel()

	ps := make([]Point, 10)
	for i := range ps {
		ps[i] = Point{X: float64(i), Y: float64(i * i)}
	}
	data := ArrayDataOfPoints(ps)

	got, err := NewRDPReducer().Reduce(data, fullRange(t, data), 3)
	if err != nil {
		t.Fatal(err)
	}

	// The interior point farthest from the chord joins the anchors.
	want := []Point{{X: 0, Y: 0}, {X: 4, Y: 16}, {X: 9, Y: 81}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Error(diff)
	}
}

func TestRDPReducer_passThrough(t *testing.T) {
	t.Parallel()

	ps := []Point{{X: 0, Y: 5}, {X: 1, Y: -2}, {X: 2, Y: 9}, {X: 3, Y: 0}}
	data := ArrayDataOfPoints(ps)

	got, err := NewRDPReducer().Reduce(data, fullRange(t, data), 10)
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(ps, got); diff != "" {
		t.Error(diff)
	}
}

func TestRDPReducer_windowed(t *testing.T) {
	t.Parallel()

	ps := make([]Point, 10)
	for i := range ps {
		ps[i] = Point{X: float64(i), Y: float64(i)}
	}
	data := ArrayDataOfPoints(ps)

	xRange, err := NewRange(2.0, 5.0)
	if err != nil {
		t.Fatal(err)
	}

	got, err := NewRDPReducer().Reduce(data, xRange, 10)
	if err != nil {
		t.Fatal(err)
	}

	want := ps[2:6]
	if diff := cmp.Diff(want, got); diff != "" {
		t.Error(diff)
	}
}

func TestRDPReducer_empty(t *testing.T) {
	t.Parallel()

	got, err := NewRDPReducer().Reduce(ArrayDataOfPoints(nil), Range[float64]{0, 1}, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("got: %v, want: empty", got)
	}
}

func TestRDPReducer_badArgs(t *testing.T) {
	t.Parallel()

	r := NewRDPReducer()
	data := ArrayDataOfPoints([]Point{{X: 0}, {X: 1}})

	if _, err := r.Reduce(nil, Range[float64]{0, 1}, 2); err != ErrNilData {
		t.Errorf("nil data: got: %v, want: %v", err, ErrNilData)
	}
	if _, err := r.Reduce(data, Range[float64]{0, 1}, 1); err == nil {
		t.Error("budget 1: expected error")
	}
}

func TestRDPReducer_deterministic(t *testing.T) {
	t.Parallel()

	ps := make([]Point, 100)
	for i := range ps {
		ps[i] = Point{X: float64(i), Y: float64((i * 37) % 11)}
	}
	data := ArrayDataOfPoints(ps)
	r := NewRDPReducer()

	first, err := r.Reduce(data, fullRange(t, data), 17)
	if err != nil {
		t.Fatal(err)
	}
	second, err := r.Reduce(data, fullRange(t, data), 17)
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(first, second); diff != "" {
		t.Error(diff)
	}

	if got, want := len(first), 17; got != want {
		t.Errorf("output size: got: %d, want: %d", got, want)
	}
}

func TestRDPReducer_keepsSourceIntact(t *testing.T) {
	t.Parallel()

	l := NewPointList()
	for i := 0; i < 50; i++ {
		l.Append(Point{X: float64(i), Y: float64(i % 7)})
	}
	data := NewListData(l)

	if _, err := NewRDPReducer().Reduce(data, fullRange(t, data), 5); err != nil {
		t.Fatal(err)
	}

	if got, want := l.Len(), 50; got != want {
		t.Errorf("source length: got: %d, want: %d", got, want)
	}
	for i := 0; i < 50; i++ {
		if got, want := l.At(i), (Point{X: float64(i), Y: float64(i % 7)}); !got.Equal(want) {
			t.Fatalf("source point %d changed: got: %v", i, got)
		}
	}
}
