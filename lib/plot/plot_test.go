package plot

import (
	"io"
	"math"
	"strings"
	"testing"
)

func TestPlot_WriteTo(t *testing.T) {
	t.Parallel()

	p := New(Title("test plot"), MaxPoints(100))

	for i := 0; i < 1000; i++ {
		ms := uint64(i * 50)
		if err := p.Add("cpu", ms, math.Sin(float64(i)/100)); err != nil {
			t.Fatal(err)
		}
		if err := p.Add("mem", ms, float64(i)); err != nil {
			t.Fatal(err)
		}
	}
	p.Close()

	var sb strings.Builder
	n, err := p.WriteTo(&sb)
	if err != nil {
		t.Fatal(err)
	}

	html := sb.String()
	if int64(len(html)) != n {
		t.Errorf("WriteTo returned %d, wrote %d bytes", n, len(html))
	}

	for _, want := range []string{
		"<title>test plot</title>",
		`"labels": [`,
		`"Seconds"`,
		`"cpu"`,
		`"mem"`,
		"new Dygraph(",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestPlot_Add_monotonicity(t *testing.T) {
	t.Parallel()

	p := New()
	if err := p.Add("a", 100, 1); err != nil {
		t.Fatal(err)
	}
	if err := p.Add("a", 50, 1); err != errMonotonicTimestamp {
		t.Errorf("got: %v, want: %v", err, errMonotonicTimestamp)
	}

	// Other series are unaffected.
	if err := p.Add("b", 50, 1); err != nil {
		t.Fatal(err)
	}
}

func TestPlot_WriteTo_empty(t *testing.T) {
	t.Parallel()

	p := New()
	p.Close()

	var sb strings.Builder
	if _, err := p.WriteTo(&sb); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(sb.String(), "new Dygraph(") {
		t.Error("empty plot should still render the chart scaffold")
	}
}

func BenchmarkPlot(b *testing.B) {
	p := New(Title("bench"), MaxPoints(5000))

	b.Run("Add", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = p.Add("series", uint64(i*50), float64(i%600))
		}
	})

	p.Close()

	b.Run("WriteTo", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = p.WriteTo(io.Discard)
		}
	})
}
