package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
)

func counterValue(t *testing.T, name, label, value string) float64 {
	t.Helper()
	families, err := Registry.Gather()
	if err != nil {
		t.Fatalf("Gather failed: %v", err)
	}
	for _, f := range families {
		if f.GetName() != name {
			continue
		}
		for _, m := range f.GetMetric() {
			for _, l := range m.GetLabel() {
				if l.GetName() == label && l.GetValue() == value {
					return m.GetCounter().GetValue()
				}
			}
		}
	}
	return 0
}

func TestRoundsClosedCounter(t *testing.T) {
	before := counterValue(t, "tableround_rounds_closed_total", "trigger", "manual")
	RoundsClosed.WithLabelValues("manual").Inc()
	after := counterValue(t, "tableround_rounds_closed_total", "trigger", "manual")
	if after-before != 1 {
		t.Errorf("expected counter to grow by 1, got %v", after-before)
	}
}

func TestHandler(t *testing.T) {
	CheckoutsSettled.Inc()

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	if rec.Code != 200 {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body, _ := io.ReadAll(rec.Body)
	if !strings.Contains(string(body), "tableround_checkouts_settled_total") {
		t.Error("expected settled checkouts counter in exposition")
	}
}
