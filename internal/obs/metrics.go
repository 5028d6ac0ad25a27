package obs

import (
	"sort"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// HTTPMetrics groups Prometheus collectors for HTTP observability.
type HTTPMetrics struct {
	ReqTotal *prometheus.CounterVec
	ReqDur   *prometheus.HistogramVec
	InFlight prometheus.Gauge
}

// NewHTTPMetrics registers and returns HTTP metrics collectors.
func NewHTTPMetrics(namespace string, buckets []float64, reg prometheus.Registerer) *HTTPMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if len(buckets) == 0 {
		buckets = []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000}
	} else {
		sort.Float64s(buckets)
	}
	m := &HTTPMetrics{
		ReqTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests handled by the server.",
		}, []string{"method", "route", "status"}),
		ReqDur: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_ms",
			Help:      "HTTP request latency distribution in milliseconds.",
			Buckets:   buckets,
		}, []string{"method", "route"}),
		InFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_in_flight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		}),
	}
	reg.MustRegister(m.ReqTotal, m.ReqDur, m.InFlight)
	return m
}

// DurationMillis converts a duration to fractional milliseconds.
func DurationMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

var (
	domainOnce sync.Once

	// SheetRowsAddedTotal counts rows appended to the sheet by source.
	SheetRowsAddedTotal *prometheus.CounterVec
	// SheetRowsRemovedTotal counts rows deleted from the sheet.
	SheetRowsRemovedTotal prometheus.Counter
	// SheetRecomputeTotal counts full totals recomputations.
	SheetRecomputeTotal prometheus.Counter
)

// MustRegisterDomainMetrics initialises and registers sheet-domain Prometheus collectors.
func MustRegisterDomainMetrics(namespace string, reg prometheus.Registerer) {
	domainOnce.Do(func() {
		if reg == nil {
			reg = prometheus.DefaultRegisterer
		}
		SheetRowsAddedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sheet_rows_added_total",
			Help:      "Count of rows added to the quotation sheet by source.",
		}, []string{"source"})
		SheetRowsRemovedTotal = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sheet_rows_removed_total",
			Help:      "Count of rows removed from the quotation sheet.",
		})
		SheetRecomputeTotal = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sheet_recompute_total",
			Help:      "Count of full totals recomputations.",
		})
		reg.MustRegister(SheetRowsAddedTotal, SheetRowsRemovedTotal, SheetRecomputeTotal)
	})
}

// CountRowAdded increments the rows-added counter when metrics are registered.
func CountRowAdded(source string) {
	if SheetRowsAddedTotal != nil {
		SheetRowsAddedTotal.WithLabelValues(source).Inc()
	}
}

// CountRowRemoved increments the rows-removed counter when metrics are registered.
func CountRowRemoved() {
	if SheetRowsRemovedTotal != nil {
		SheetRowsRemovedTotal.Inc()
	}
}

// CountRecompute increments the recompute counter when metrics are registered.
func CountRecompute() {
	if SheetRecomputeTotal != nil {
		SheetRecomputeTotal.Inc()
	}
}
