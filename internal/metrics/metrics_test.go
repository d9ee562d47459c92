package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestInitializeMetrics(t *testing.T) {
	InitializeMetrics()

	if n := testutil.CollectAndCount(ScrapesTotal); n != 5 {
		t.Errorf("ScrapesTotal series = %d, want 5", n)
	}
	if n := testutil.CollectAndCount(PlaylistsGenerated); n != 2 {
		t.Errorf("PlaylistsGenerated series = %d, want 2", n)
	}
}

func TestCountersIncrement(t *testing.T) {
	before := testutil.ToFloat64(ScrapesTotal.WithLabelValues("not_found"))
	ScrapesTotal.WithLabelValues("not_found").Inc()
	after := testutil.ToFloat64(ScrapesTotal.WithLabelValues("not_found"))

	if after-before != 1 {
		t.Errorf("counter moved by %v, want 1", after-before)
	}
}
