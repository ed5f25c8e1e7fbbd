// Package plot renders labeled point series as an interactive HTML line
// chart, reducing each series to a bounded number of visually equivalent
// points before serialization.
package plot

import (
	"encoding/json"
	"html/template"
	"io"
	"math"
	"sort"
	"strconv"

	extjfx "github.com/extjfx/extjfx/lib"
)

// A Plot represents an interactive HTML chart of one or more labeled
// series. Added points are held tsz-compressed in memory until WriteTo.
type Plot struct {
	title     string
	threshold int
	reducer   extjfx.DataReducer
	series    map[string]*timeSeries
}

// An Opt is a functional option type for Plot.
type Opt func(*Plot)

// Title returns an Opt that sets the title of a Plot.
func Title(title string) Opt {
	return func(p *Plot) { p.title = title }
}

// MaxPoints returns an Opt that bounds the number of rendered data points
// per labeled series.
func MaxPoints(threshold int) Opt {
	return func(p *Plot) { p.threshold = threshold }
}

// Reducer returns an Opt that sets the reduction strategy applied to each
// labeled series before rendering.
func Reducer(r extjfx.DataReducer) Opt {
	return func(p *Plot) { p.reducer = r }
}

// New returns a Plot with the given Opts applied. Unless opts say
// otherwise, series are reduced with the default rank-based
// Ramer-Douglas-Peucker strategy down to extjfx.DefaultMaxPointsCount
// points.
func New(opts ...Opt) *Plot {
	p := &Plot{
		threshold: extjfx.DefaultMaxPointsCount,
		reducer:   extjfx.NewRDPReducer(),
		series:    map[string]*timeSeries{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Add adds a value at t milliseconds since the plot's origin to the series
// with the given label. Points of one series must be added in
// non-decreasing time order.
func (p *Plot) Add(label string, t uint64, v float64) error {
	s, ok := p.series[label]
	if !ok {
		s = newTimeSeries(label)
		p.series[label] = s
	}
	return s.add(t, v)
}

// Close closes the in-memory series for writing.
func (p *Plot) Close() {
	for _, ts := range p.series {
		ts.data.Finish()
	}
}

// WriteTo writes the HTML plot to the given io.Writer.
func (p *Plot) WriteTo(w io.Writer) (n int64, err error) {
	type dygraphsOpts struct {
		Title       string   `json:"title"`
		Labels      []string `json:"labels,omitempty"`
		YLabel      string   `json:"ylabel"`
		XLabel      string   `json:"xlabel"`
		Legend      string   `json:"legend"`
		ShowRoller  bool     `json:"showRoller"`
		StrokeWidth float64  `json:"strokeWidth"`
	}

	type plotData struct {
		Title string
		Data  template.JS
		Opts  template.JS
	}

	dp, labels, err := p.data()
	if err != nil {
		return 0, err
	}

	var sz int
	if len(dp) > 0 {
		sz = len(dp) * len(dp[0]) * 12 // heuristic
	}

	data := dp.Append(make([]byte, 0, sz))

	opts := dygraphsOpts{
		Title:       p.title,
		Labels:      labels,
		YLabel:      "Value",
		XLabel:      "Seconds",
		Legend:      "always",
		ShowRoller:  true,
		StrokeWidth: 1.3,
	}

	optsJSON, err := json.MarshalIndent(&opts, "    ", " ")
	if err != nil {
		return 0, err
	}

	cw := countingWriter{w: w}
	err = plotTemplate.Execute(&cw, &plotData{
		Title: p.title,
		Data:  template.JS(data),
		Opts:  template.JS(optsJSON),
	})

	return cw.n, err
}

// data aligns all series into dygraphs native format rows.
// See http://dygraphs.com/data.html
func (p *Plot) data() (dataPoints, []string, error) {
	var (
		series []*timeSeries
		count  int
	)

	for _, s := range p.series {
		series = append(series, s)
		count += s.len
	}

	var (
		size   = 1 + len(series)
		nan    = math.NaN()
		labels = make([]string, size)
		data   = make(dataPoints, 0, count)
	)

	labels[0] = "Seconds"

	sort.Slice(series, func(i, j int) bool {
		return series[i].label < series[j].label
	})

	for i, s := range series {
		ps, err := s.points()
		if err != nil {
			return nil, nil, err
		}

		var reduced []extjfx.Point
		if p.reducer == nil || len(ps) <= p.threshold {
			reduced = ps
		} else {
			src := extjfx.ArrayDataOfPoints(ps)
			xRange, err := extjfx.NewRange(ps[0].X, ps[len(ps)-1].X)
			if err != nil {
				return nil, nil, err
			}
			if reduced, err = p.reducer.Reduce(src, xRange, p.threshold); err != nil {
				return nil, nil, err
			}
		}

		for _, pt := range reduced {
			row := make([]float64, size)
			for j := range row {
				row[j] = nan
			}
			row[0], row[i+1] = pt.X, pt.Y
			data = append(data, row)
		}

		labels[i+1] = s.label
	}

	sort.Sort(data)

	return data, labels, nil
}

type countingWriter struct {
	n int64
	w io.Writer
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}

type dataPoints [][]float64

func (ps dataPoints) Len() int { return len(ps) }

func (ps dataPoints) Less(i, j int) bool {
	// Sort by X axis (seconds elapsed)
	return ps[i][0] < ps[j][0]
}

func (ps dataPoints) Swap(i, j int) {
	ps[i], ps[j] = ps[j], ps[i]
}

func (ps dataPoints) Append(buf []byte) []byte {
	buf = append(buf, "[\n  "...)

	for i, p := range ps {
		buf = append(buf, "  ["...)

		for j, f := range p {
			if math.IsNaN(f) {
				buf = append(buf, "NaN"...)
			} else {
				buf = strconv.AppendFloat(buf, f, 'f', -1, 64)
			}

			if j < len(p)-1 {
				buf = append(buf, ',')
			}
		}

		if buf = append(buf, "]"...); i < len(ps)-1 {
			buf = append(buf, ",\n  "...)
		}
	}

	return append(buf, "  ]"...)
}

var plotTemplate = template.Must(template.New("plot").Parse(`<!doctype html>
<html>
<head>
  <title>{{.Title}}</title>
  <meta charset="utf-8">
  <link rel="stylesheet" href="https://cdnjs.cloudflare.com/ajax/libs/dygraph/2.2.1/dygraph.min.css">
  <script src="https://cdnjs.cloudflare.com/ajax/libs/dygraph/2.2.1/dygraph.min.js"></script>
</head>
<body>
  <div id="plot" style="width: 100%; height: 600px"></div>
  <script>
  new Dygraph(
    document.getElementById("plot"),
    {{.Data}},
    {{.Opts}}
  );
  </script>
</body>
</html>
`))
