package prom

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	extjfx "github.com/extjfx/extjfx/lib"
)

// Metrics observes series reductions and exposes them on a Prometheus
// metrics endpoint.
type Metrics struct {
	reduceSecondsHistogram *prometheus.HistogramVec
	reduceCounter          *prometheus.CounterVec
	pointsInCounter        *prometheus.CounterVec
	pointsOutCounter       *prometheus.CounterVec
	srv                    http.Server
	registry               *prometheus.Registry
}

// NewMetrics same as NewMetricsWithParams with default params:
func NewMetrics() (*Metrics, error) {
	return NewMetricsWithParams("http://0.0.0.0:8880")
}

// NewMetricsWithParams creates a new Prometheus Metrics to observe series
// reductions and expose metrics. For example, after using
// NewMetricsWithParams("http://0.0.0.0:8880"), while a stream is being
// reduced you can call "curl http://127.0.0.1:8880" to see current metrics.
// This endpoint can be configured in the scrape section of your Prometheus
// server.
func NewMetricsWithParams(bindURL string) (*Metrics, error) {
	p, err := url.Parse(bindURL)
	if err != nil {
		return nil, fmt.Errorf("invalid bindURL %s. Must be in format 'http://0.0.0.0:8880'. err=%s", bindURL, err)
	}
	bindHost, bindPort, err := net.SplitHostPort(p.Host)
	if err != nil {
		return nil, fmt.Errorf("invalid bindURL %s. Must be in format 'http://0.0.0.0:8880'. err=%s", bindURL, err)
	}

	pm := &Metrics{
		registry: prometheus.NewRegistry(),
	}

	pm.reduceSecondsHistogram = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "reduce_seconds",
		Help:    "Time spent recomputing the reduced point list",
		Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0},
	}, []string{
		"series",
	})
	pm.registry.MustRegister(pm.reduceSecondsHistogram)

	pm.reduceCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "reduce_count",
		Help: "Completed reductions",
	}, []string{
		"series",
		"source_size",
	})
	pm.registry.MustRegister(pm.reduceCounter)

	pm.pointsInCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "reduce_points_in",
		Help: "Source points examined by reductions",
	}, []string{
		"series",
	})
	pm.registry.MustRegister(pm.pointsInCounter)

	pm.pointsOutCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "reduce_points_out",
		Help: "Points kept by reductions",
	}, []string{
		"series",
	})
	pm.registry.MustRegister(pm.pointsOutCounter)

	pm.srv = http.Server{
		Addr:    fmt.Sprintf("%s:%s", bindHost, bindPort),
		Handler: promhttp.HandlerFor(pm.registry, promhttp.HandlerOpts{}),
	}

	go func() {
		pm.srv.ListenAndServe()
	}()

	return pm, nil
}

// Close shuts down the http server exposing the Prometheus metrics.
func (pm *Metrics) Close() error {
	return pm.srv.Shutdown(context.Background())
}

// Observer returns a reduce event observer that records metrics under the
// given series label. The returned func is suitable for
// extjfx.WithObserver.
func (pm *Metrics) Observer(series string) func(extjfx.ReduceEvent) {
	return func(ev extjfx.ReduceEvent) {
		size := strconv.Itoa(ev.SourceSize)
		pm.reduceCounter.WithLabelValues(series, size).Inc()
		pm.pointsInCounter.WithLabelValues(series).Add(float64(ev.SourceSize))
		pm.pointsOutCounter.WithLabelValues(series).Add(float64(ev.OutputSize))
		pm.reduceSecondsHistogram.WithLabelValues(series).Observe(float64(ev.Took) / float64(time.Second))
	}
}
