package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"
)

func TestCounterAndGauge(t *testing.T) {
	r := NewRegistry()
	c := r.Counter("queries_total", "total queries")
	c.Inc()
	c.Add(2)
	if c.Value() != 3 {
		t.Errorf("counter = %d", c.Value())
	}

	g := r.Gauge("corpus_records", "records loaded")
	g.Set(10)
	g.Inc()
	g.Dec()
	if g.Value() != 10 {
		t.Errorf("gauge = %d", g.Value())
	}

	// Same name returns the same metric.
	if r.Counter("queries_total", "") != c {
		t.Error("expected identical counter instance")
	}
}

func TestWithLabels(t *testing.T) {
	got := WithLabels("queries_total", "lang", "hi")
	if got != `queries_total{lang="hi"}` {
		t.Errorf("WithLabels = %s", got)
	}
	if WithLabels("x", "odd") != "x" {
		t.Error("odd label count should return name unchanged")
	}
}

func TestHistogramRender(t *testing.T) {
	r := NewRegistry()
	h := r.Histogram("search_seconds", "search latency", []float64{0.1, 1})
	h.Observe(0.05)
	h.Observe(0.5)
	h.Observe(5) // above all buckets

	out := r.Render()
	for _, want := range []string{
		"# TYPE search_seconds histogram",
		`search_seconds_bucket{le="0.1"} 1`,
		`search_seconds_bucket{le="1"} 2`,
		`search_seconds_bucket{le="+Inf"} 3`,
		"search_seconds_count 3",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q in:\n%s", want, out)
		}
	}
}

func TestRenderLabelledCounters(t *testing.T) {
	r := NewRegistry()
	r.Counter(WithLabels("queries_total", "lang", "en"), "queries").Inc()
	r.Counter(WithLabels("queries_total", "lang", "hi"), "").Add(2)

	out := r.Render()
	if !strings.Contains(out, `queries_total{lang="en"} 1`) {
		t.Errorf("missing en series:\n%s", out)
	}
	if !strings.Contains(out, `queries_total{lang="hi"} 2`) {
		t.Errorf("missing hi series:\n%s", out)
	}
	if strings.Count(out, "# TYPE queries_total") != 1 {
		t.Error("TYPE line should appear once per base name")
	}
}

func TestHandler(t *testing.T) {
	r := NewRegistry()
	r.Counter("up", "").Inc()

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	if rec.Code != 200 || !strings.Contains(rec.Body.String(), "up 1") {
		t.Errorf("handler response: %d %s", rec.Code, rec.Body.String())
	}
}
