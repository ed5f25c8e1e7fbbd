package extjfx

import (
	"math"

	"github.com/influxdata/tdigest"
	"github.com/streadway/quantile"
)

// SeriesStats summarizes the Y distribution and X extent of chart data.
type SeriesStats struct {
	// Count is the number of samples summarized.
	Count int `json:"count"`
	// X extent of the data.
	XMin float64 `json:"x_min"`
	XMax float64 `json:"x_max"`
	// Y distribution.
	YMin  float64 `json:"y_min"`
	YMax  float64 `json:"y_max"`
	YMean float64 `json:"y_mean"`
	P50   float64 `json:"y_p50"`
	P90   float64 `json:"y_p90"`
	P95   float64 `json:"y_p95"`
	P99   float64 `json:"y_p99"`

	estimator Estimator
	ysum      float64
}

// NewSeriesStats returns an empty summary using the given quantile
// estimator, or the t-digest default if est is nil.
func NewSeriesStats(est Estimator) *SeriesStats {
	if est == nil {
		est = NewTdigestEstimator(100)
	}
	return &SeriesStats{
		YMin:      math.Inf(1),
		YMax:      math.Inf(-1),
		XMin:      math.Inf(1),
		XMax:      math.Inf(-1),
		estimator: est,
	}
}

// Add folds one sample into the summary.
func (st *SeriesStats) Add(p Point) {
	st.Count++
	st.XMin = math.Min(st.XMin, p.X)
	st.XMax = math.Max(st.XMax, p.X)
	st.YMin = math.Min(st.YMin, p.Y)
	st.YMax = math.Max(st.YMax, p.Y)
	st.ysum += p.Y
	st.estimator.Add(p.Y)
}

// Close finalizes the derived fields. The summary must not be Added to
// after Close.
func (st *SeriesStats) Close() {
	if st.Count == 0 {
		st.XMin, st.XMax, st.YMin, st.YMax = 0, 0, 0, 0
		return
	}
	st.YMean = st.ysum / float64(st.Count)
	st.P50 = st.estimator.Get(0.50)
	st.P90 = st.estimator.Get(0.90)
	st.P95 = st.estimator.Get(0.95)
	st.P99 = st.estimator.Get(0.99)
}

// StatsOf summarizes all samples of data with the default estimator.
func StatsOf(data ChartData) *SeriesStats {
	st := NewSeriesStats(nil)
	for i := 0; i < data.Size(); i++ {
		st.Add(data.At(i))
	}
	st.Close()
	return st
}

// An Estimator estimates quantiles of a stream of samples.
type Estimator interface {
	Add(sample float64)
	Get(quantile float64) float64
}

type quantileEstimator struct{ *quantile.Estimator }

// NewQuantileEstimator returns a streadway/quantile backed Estimator with
// the given target invariants.
func NewQuantileEstimator(estimates ...quantile.Estimate) Estimator {
	return &quantileEstimator{Estimator: quantile.New(estimates...)}
}

func (e *quantileEstimator) Add(s float64) { e.Estimator.Add(s) }

func (e *quantileEstimator) Get(q float64) float64 { return e.Estimator.Get(q) }

type tdigestEstimator struct{ *tdigest.TDigest }

// NewTdigestEstimator returns a t-digest backed Estimator with the given
// compression.
func NewTdigestEstimator(compression float64) Estimator {
	return &tdigestEstimator{TDigest: tdigest.NewWithCompression(compression)}
}

func (e *tdigestEstimator) Add(s float64) { e.TDigest.Add(s, 1) }

func (e *tdigestEstimator) Get(q float64) float64 { return e.TDigest.Quantile(q) }
