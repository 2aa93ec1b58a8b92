package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/iho/blockview/internal/domain"
	"github.com/iho/blockview/internal/usecase"
)

var _ usecase.Observer = (*Observer)(nil)

func TestNewWithRegistererRegistersMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewWithRegisterer(registry)

	if m.BlocksProjected == nil || m.HTTPRequests == nil || m.OwnershipCache == nil {
		t.Fatalf("expected key metrics to be initialized: %+v", m)
	}

	m.HTTPRequestsInFlight.Inc()

	metricFamilies, err := registry.Gather()
	if err != nil {
		t.Fatalf("failed to gather metrics: %v", err)
	}

	if len(metricFamilies) == 0 {
		t.Fatalf("expected registered metrics, got none")
	}
}

func TestObserverCountsEvents(t *testing.T) {
	m := NewWithRegisterer(prometheus.NewRegistry())
	o := m.Observer()

	o.BlockProjected(domain.StatusSent, 0)
	o.BlockProjected(domain.StatusReceived, 1)
	o.BlockProjected(domain.StatusReceived, 0)
	o.BlocksRecorded(3)
	o.HoldingAccountRegistered()
	o.OwnershipCacheLookup(true)
	o.OwnershipCacheLookup(false)
	o.OwnershipCacheLookup(false)

	checks := []struct {
		name string
		got  float64
		want float64
	}{
		{"sent", testutil.ToFloat64(m.BlocksProjected.WithLabelValues("sent")), 1},
		{"received", testutil.ToFloat64(m.BlocksProjected.WithLabelValues("received")), 2},
		{"placeholders", testutil.ToFloat64(m.PayloadPlaceholders), 1},
		{"recorded", testutil.ToFloat64(m.BlocksRecorded), 3},
		{"holdings", testutil.ToFloat64(m.HoldingAccountsRegistered), 1},
		{"cache hit", testutil.ToFloat64(m.OwnershipCache.WithLabelValues("hit")), 1},
		{"cache miss", testutil.ToFloat64(m.OwnershipCache.WithLabelValues("miss")), 2},
	}

	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}
}
