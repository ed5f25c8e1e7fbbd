package prom

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	extjfx "github.com/extjfx/extjfx/lib"
)

func TestMetrics_Observer(t *testing.T) {
	pm, err := NewMetricsWithParams("http://127.0.0.1:0")
	if err != nil {
		t.Fatal("error creating metrics", err)
	}
	defer pm.Close()

	srv := httptest.NewServer(pm.srv.Handler)
	defer srv.Close()

	observe := pm.Observer("cpu")
	observe(extjfx.ReduceEvent{
		SourceSize: 100000,
		OutputSize: 200,
		Took:       3 * time.Millisecond,
	})
	observe(extjfx.ReduceEvent{
		SourceSize: 100000,
		OutputSize: 180,
		Took:       2 * time.Millisecond,
	})

	resp, err := http.Get(srv.URL)
	if err != nil {
		t.Fatalf("failed to get prometheus metrics. err=%s", err)
	}

	if resp.StatusCode != 200 {
		t.Fatalf("status code should be 200. code=%d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Errorf("error reading response body: err=%v", err)
	}

	t.Log(string(data))

	body := string(data)
	for _, want := range []string{
		`reduce_count{series="cpu",source_size="100000"} 2`,
		`reduce_points_in{series="cpu"} 200000`,
		`reduce_points_out{series="cpu"} 380`,
		`reduce_seconds_count{series="cpu"} 2`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("missing metric: %s", want)
		}
	}
}

func TestNewMetricsWithParams_badURL(t *testing.T) {
	for _, bindURL := range []string{"http://noport", "://"} {
		if _, err := NewMetricsWithParams(bindURL); err == nil {
			t.Errorf("NewMetricsWithParams(%q): want error, got nil", bindURL)
		}
	}
}
