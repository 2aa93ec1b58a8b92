package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/iho/blockview/internal/domain"
)

// Metrics holds all Prometheus metrics.
type Metrics struct {
	// Projection metrics
	BlocksProjected     *prometheus.CounterVec
	PayloadPlaceholders prometheus.Counter

	// Ingestion metrics
	BlocksRecorded            prometheus.Counter
	HoldingAccountsRegistered prometheus.Counter

	// Cache metrics
	OwnershipCache *prometheus.CounterVec

	// API metrics
	HTTPRequests         *prometheus.CounterVec
	HTTPDuration         *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge
}

// New creates and registers all metrics with the default registerer.
func New() *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

// NewWithRegisterer creates and registers all metrics with reg.
func NewWithRegisterer(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		BlocksProjected: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "blockview_blocks_projected_total",
				Help: "Total number of blocks projected by viewer status",
			},
			[]string{"status"},
		),
		PayloadPlaceholders: factory.NewCounter(prometheus.CounterOpts{
			Name: "blockview_payload_placeholders_total",
			Help: "Total number of detail rows rendered with the placeholder value",
		}),

		BlocksRecorded: factory.NewCounter(prometheus.CounterOpts{
			Name: "blockview_blocks_recorded_total",
			Help: "Total number of blocks ingested",
		}),
		HoldingAccountsRegistered: factory.NewCounter(prometheus.CounterOpts{
			Name: "blockview_holding_accounts_registered_total",
			Help: "Total number of holding accounts registered",
		}),

		OwnershipCache: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "blockview_ownership_cache_total",
				Help: "Ownership snapshot cache lookups by result",
			},
			[]string{"result"},
		),

		HTTPRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "blockview_http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "blockview_http_duration_seconds",
				Help:    "HTTP request duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		HTTPRequestsInFlight: factory.NewGauge(prometheus.GaugeOpts{
			Name: "blockview_http_requests_in_flight",
			Help: "Current number of HTTP requests being served",
		}),
	}
}

// Observer adapts Metrics to usecase.Observer.
type Observer struct {
	m *Metrics
}

// Observer returns the use case observer backed by m.
func (m *Metrics) Observer() *Observer {
	return &Observer{m: m}
}

func (o *Observer) BlockProjected(status domain.Status, placeholders int) {
	o.m.BlocksProjected.WithLabelValues(string(status)).Inc()
	if placeholders > 0 {
		o.m.PayloadPlaceholders.Add(float64(placeholders))
	}
}

func (o *Observer) BlocksRecorded(n int) {
	o.m.BlocksRecorded.Add(float64(n))
}

func (o *Observer) HoldingAccountRegistered() {
	o.m.HoldingAccountsRegistered.Inc()
}

func (o *Observer) OwnershipCacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	o.m.OwnershipCache.WithLabelValues(result).Inc()
}
