package extjfx

import (
	"math"
	"math/rand"
	"testing"

	"github.com/bmizerany/perks/quantile"
	gk "github.com/dgryski/go-gk"
	streadway "github.com/streadway/quantile"
)

func TestSeriesStats(t *testing.T) {
	t.Parallel()

	st := NewSeriesStats(nil)
	for i := 0; i < 100; i++ {
		st.Add(Point{X: float64(i), Y: float64(i)})
	}
	st.Close()

	if got, want := st.Count, 100; got != want {
		t.Errorf("Count: got: %d, want: %d", got, want)
	}
	if got, want := st.XMin, 0.0; got != want {
		t.Errorf("XMin: got: %g, want: %g", got, want)
	}
	if got, want := st.XMax, 99.0; got != want {
		t.Errorf("XMax: got: %g, want: %g", got, want)
	}
	if got, want := st.YMin, 0.0; got != want {
		t.Errorf("YMin: got: %g, want: %g", got, want)
	}
	if got, want := st.YMax, 99.0; got != want {
		t.Errorf("YMax: got: %g, want: %g", got, want)
	}
	if got, want := st.YMean, 49.5; got != want {
		t.Errorf("YMean: got: %g, want: %g", got, want)
	}
	if math.Abs(st.P50-49.5) > 2 {
		t.Errorf("P50: got: %g, want: ~49.5", st.P50)
	}
	if math.Abs(st.P99-98) > 2 {
		t.Errorf("P99: got: %g, want: ~98", st.P99)
	}
}

func TestSeriesStats_empty(t *testing.T) {
	t.Parallel()

	st := NewSeriesStats(nil)
	st.Close()

	if st.Count != 0 || st.XMin != 0 || st.XMax != 0 || st.YMin != 0 || st.YMax != 0 {
		t.Errorf("zero stats expected, got: %+v", st)
	}
}

func TestStatsOf(t *testing.T) {
	t.Parallel()

	st := StatsOf(ArrayDataOfY([]float64{3, 1, 2}))
	if got, want := st.Count, 3; got != want {
		t.Errorf("Count: got: %d, want: %d", got, want)
	}
	if got, want := st.YMin, 1.0; got != want {
		t.Errorf("YMin: got: %g, want: %g", got, want)
	}
	if got, want := st.YMean, 2.0; got != want {
		t.Errorf("YMean: got: %g, want: %g", got, want)
	}
}

// TestEstimators_agree cross-checks the wired estimators against two
// independent streaming quantile implementations on the same sample
// stream.
func TestEstimators_agree(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(42))

	td := NewTdigestEstimator(100)
	sq := NewQuantileEstimator(
		streadway.Known(0.50, 0.005),
		streadway.Known(0.90, 0.005),
		streadway.Known(0.99, 0.001),
	)
	perksStream := quantile.NewTargeted(0.50, 0.90, 0.99)
	gkStream := gk.New(0.005)

	for i := 0; i < 50000; i++ {
		v := rng.Float64() * 100
		td.Add(v)
		sq.Add(v)
		perksStream.Insert(v)
		gkStream.Insert(v)
	}

	for _, q := range []float64{0.50, 0.90, 0.99} {
		want := q * 100 // true quantile of Uniform(0, 100)
		for name, got := range map[string]float64{
			"tdigest":   td.Get(q),
			"streadway": sq.Get(q),
			"perks":     perksStream.Query(q),
			"gk":        gkStream.Query(q),
		} {
			if math.Abs(got-want) > 3 {
				t.Errorf("%s quantile %g: got: %g, want: ~%g", name, q, got, want)
			}
		}
	}
}
