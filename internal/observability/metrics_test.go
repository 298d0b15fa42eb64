package observability

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

func TestRegisterMetricsAndRecordersAreSafe(t *testing.T) {
	RegisterMetrics()
	RegisterMetrics()

	RecordHTTPRequest("POST", "/launch", 202, 12*time.Millisecond)
	RecordLaunch("started")
	RecordLaunchPhase("fetch", 40*time.Millisecond)

	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	found := map[string]bool{}
	for _, mf := range families {
		found[mf.GetName()] = true
	}
	for _, name := range []string{
		"kawaii_http_requests_total",
		"kawaii_launch_attempts_total",
		"kawaii_launch_phase_duration_seconds",
	} {
		if !found[name] {
			t.Fatalf("metric %s not registered", name)
		}
	}
}
